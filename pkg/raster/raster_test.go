package raster

import (
	"errors"
	"fmt"
	"image/color"
	"testing"

	"github.com/shouni/go-favicon-kit/pkg/domain"
)

var (
	bg   = color.NRGBA{R: 26, G: 58, B: 42, A: 255}
	gold = color.NRGBA{R: 212, G: 165, B: 116, A: 255}
	vein = color.NRGBA{R: 26, G: 58, B: 42, A: 200}
)

// rgbaAt はキャンバスのピクセルをアルファ乗算済みの値で返すのだ
func rgbaAt(s Surface, x, y int) color.RGBA {
	return color.RGBAModel.Convert(s.Image().At(x, y)).(color.RGBA)
}

func premul(c color.NRGBA) color.RGBA {
	if c.A == 0xff {
		return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
	}
	return premultiply(c)
}

func square() []domain.Point {
	return []domain.Point{{X: 2, Y: 2}, {X: 2, Y: 8}, {X: 8, Y: 8}, {X: 8, Y: 2}}
}

func TestNewFactory(t *testing.T) {
	tests := []struct {
		name     string
		renderer string
		wantErr  bool
	}{
		{"空文字は vector なのだ", "", false},
		{"vector", "vector", false},
		{"大文字でも受け付けるのだ", "GG", false},
		{"未知のレンダラーはエラーなのだ", "cairo", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFactory(Options{Renderer: tt.renderer})
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownRenderer) {
					t.Fatalf("ErrUnknownRenderer を期待したのだ: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("予期しないエラーなのだ: %v", err)
			}
			s := f(16)
			if b := s.Image().Bounds(); b.Dx() != 16 || b.Dy() != 16 {
				t.Errorf("サーフェスの大きさが違うのだ: %v", b)
			}
		})
	}
}

func TestVectorSurface_FillPolygon(t *testing.T) {
	for _, antialias := range []bool{false, true} {
		s := newVectorSurface(16, antialias)
		s.Fill(bg)
		s.FillPolygon(square(), gold)

		if got := rgbaAt(s, 5, 5); got != premul(gold) {
			t.Errorf("antialias=%v: 内部のピクセルが塗られていないのだ: %+v", antialias, got)
		}
		for _, p := range [][2]int{{0, 0}, {15, 15}, {12, 3}, {5, 12}} {
			if got := rgbaAt(s, p[0], p[1]); got != premul(bg) {
				t.Errorf("antialias=%v: 外部のピクセル %v が背景色ではないのだ: %+v", antialias, p, got)
			}
		}
	}
}

func TestVectorSurface_StrokeLineKeepsAlpha(t *testing.T) {
	s := newVectorSurface(16, false)
	s.Fill(bg)
	s.FillPolygon(square(), gold)
	s.StrokeLine(domain.Point{X: 5, Y: 2}, domain.Point{X: 5, Y: 8}, vein, 2)

	// 完全に覆われたピクセルは合成せずにインクそのものになるのだ
	if got := rgbaAt(s, 5, 5); got != premul(vein) {
		t.Errorf("葉脈のピクセルが違うのだ。期待: %+v, 実際: %+v", vein, got)
	}
	if got := rgbaAt(s, 3, 5); got != premul(gold) {
		t.Errorf("葉脈の外側まで塗られているのだ: %+v", got)
	}
}

func TestVectorSurface_StrokePolygonJoins(t *testing.T) {
	s := newVectorSurface(16, false)
	s.Fill(gold)
	s.StrokePolygon(square(), bg, 2)

	// 角は辺と継ぎ目の円が重なるけれど、打ち消し合わずに塗られるのだ
	for _, p := range [][2]int{{2, 2}, {2, 8}, {8, 8}, {8, 2}, {2, 5}, {5, 8}} {
		if got := rgbaAt(s, p[0], p[1]); got != premul(bg) {
			t.Errorf("輪郭のピクセル %v が塗られていないのだ: %+v", p, got)
		}
	}
	if got := rgbaAt(s, 5, 5); got != premul(gold) {
		t.Errorf("内部まで塗られているのだ: %+v", got)
	}
}

// countColumn は列 x のうち色 c のピクセル数を数えるのだ
func countColumn(s Surface, x int, c color.NRGBA) int {
	n := 0
	for y := 0; y < s.Image().Bounds().Dy(); y++ {
		if rgbaAt(s, x, y) == premul(c) {
			n++
		}
	}
	return n
}

// countRow は行 y のうち色 c のピクセル数を数えるのだ
func countRow(s Surface, y int, c color.NRGBA) int {
	n := 0
	for x := 0; x < s.Image().Bounds().Dx(); x++ {
		if rgbaAt(s, x, y) == premul(c) {
			n++
		}
	}
	return n
}

func TestVectorSurface_StrokeWidthInPixels(t *testing.T) {
	for _, width := range []int{1, 2, 4} {
		t.Run(fmt.Sprintf("幅%dの線はちょうど%dピクセルなのだ", width, width), func(t *testing.T) {
			w := float64(width)

			horizontal := newVectorSurface(32, false)
			horizontal.Fill(bg)
			horizontal.StrokeLine(domain.Point{X: 4, Y: 16}, domain.Point{X: 28, Y: 16}, gold, w)
			if got := countColumn(horizontal, 16, gold); got != width {
				t.Errorf("横線の太さが違うのだ。期待 %d, 実際 %d", width, got)
			}

			vertical := newVectorSurface(32, false)
			vertical.Fill(bg)
			vertical.StrokeLine(domain.Point{X: 16, Y: 4}, domain.Point{X: 16, Y: 28}, vein, w)
			if got := countRow(vertical, 16, vein); got != width {
				t.Errorf("縦線の太さが違うのだ。期待 %d, 実際 %d", width, got)
			}

			outline := newVectorSurface(32, false)
			outline.Fill(gold)
			box := []domain.Point{{X: 4, Y: 4}, {X: 4, Y: 24}, {X: 24, Y: 24}, {X: 24, Y: 4}}
			outline.StrokePolygon(box, bg, w)
			if got := countColumn(outline, 14, bg); got != 2*width {
				t.Errorf("上下の輪郭の太さの合計が違うのだ。期待 %d, 実際 %d", 2*width, got)
			}
			if got := countRow(outline, 14, bg); got != 2*width {
				t.Errorf("左右の輪郭の太さの合計が違うのだ。期待 %d, 実際 %d", 2*width, got)
			}
		})
	}
}

func TestIconStrokeWidths(t *testing.T) {
	for _, size := range domain.DefaultSizes {
		s := newVectorSurface(size, false)
		s.Fill(bg)
		leaf := domain.NewLeaf(size)
		s.FillPolygon(leaf.Polygon, gold)
		s.StrokePolygon(leaf.Polygon, bg, float64(domain.OutlineWidth(size)))
		s.StrokeLine(leaf.VeinTop, leaf.VeinEnd, vein, float64(domain.VeinWidth(size)))

		if got := countRow(s, int(leaf.Center.Y), vein); got != domain.VeinWidth(size) {
			t.Errorf("size=%d: 葉脈の太さが違うのだ。期待 %d, 実際 %d", size, domain.VeinWidth(size), got)
		}
	}
}

func TestPremultiply(t *testing.T) {
	tests := []color.NRGBA{
		vein,
		bg,
		gold,
		{R: 255, G: 1, B: 0, A: 200},
		{R: 0, G: 0, B: 0, A: 0},
	}
	for _, c := range tests {
		p := premultiply(c)
		if p.R > p.A || p.G > p.A || p.B > p.A {
			t.Errorf("%+v: 乗算済みの値がアルファを超えているのだ: %+v", c, p)
		}
		if c.A == 0 {
			continue
		}
		// PNG の書き出しと同じ式で乗算を外すと元の色に戻るのだ
		back := color.NRGBAModel.Convert(p).(color.NRGBA)
		if back != c {
			t.Errorf("%+v: 乗算を外すと %+v になってしまうのだ", c, back)
		}
	}
}

func TestSegmentQuad(t *testing.T) {
	if q := segmentQuad(domain.Point{X: 1, Y: 1}, domain.Point{X: 1, Y: 1}, 2); q != nil {
		t.Errorf("長さ0の線分は nil になるべきなのだ: %v", q)
	}
	a := signedArea(segmentQuad(domain.Point{}, domain.Point{X: 4}, 2))
	b := signedArea(segmentQuad(domain.Point{}, domain.Point{Y: 4}, 2))
	if a == 0 || (a > 0) != (b > 0) {
		t.Errorf("線分の向きで回転方向が変わってはいけないのだ: %v %v", a, b)
	}
}

func TestGGSurface(t *testing.T) {
	s := newGGSurface(32)
	s.Fill(bg)
	leaf := domain.NewLeaf(32)
	s.FillPolygon(leaf.Polygon, gold)
	s.StrokePolygon(leaf.Polygon, bg, 1)
	s.StrokeLine(leaf.VeinTop, leaf.VeinEnd, vein, 1)

	if got := rgbaAt(s, 0, 0); got != premul(bg) {
		t.Errorf("角のピクセルが背景色ではないのだ: %+v", got)
	}
	if got := rgbaAt(s, 12, 16); got != premul(gold) {
		t.Errorf("葉の内部が塗られていないのだ: %+v", got)
	}
}
