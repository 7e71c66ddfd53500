package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/shouni/go-favicon-kit/pkg/domain"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

const (
	// joinSegments は線の継ぎ目を埋める円の分割数です。
	joinSegments = 16
	// coverageThreshold 以上の被覆率のピクセルだけを塗ります（アンチエイリアス無効時）。
	coverageThreshold = 0x80
)

// vectorSurface は x/image/vector で被覆マスクを作り、RGBA キャンバスにインクを置くサーフェスです。
// インクは合成せずに置き換えるので、完全に覆われたピクセルは指定色（アルファ含む）そのものになります。
type vectorSurface struct {
	img       *image.RGBA
	mask      *image.Alpha
	size      int
	antialias bool
	r         vector.Rasterizer
}

func newVectorSurface(size int, antialias bool) *vectorSurface {
	bounds := image.Rect(0, 0, size, size)
	return &vectorSurface{
		img:       image.NewRGBA(bounds),
		mask:      image.NewAlpha(bounds),
		size:      size,
		antialias: antialias,
	}
}

func (s *vectorSurface) Fill(c color.NRGBA) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (s *vectorSurface) FillPolygon(points []domain.Point, c color.NRGBA) {
	s.paint([][]domain.Point{points}, c, pixelCenter)
}

func (s *vectorSurface) StrokePolygon(points []domain.Point, c color.NRGBA, width float64) {
	var paths [][]domain.Point
	for i := range points {
		from, to := points[i], points[(i+1)%len(points)]
		if q := segmentQuad(from, to, width); q != nil {
			paths = append(paths, q)
		}
		paths = append(paths, disc(from, width/2))
	}
	s.paint(paths, c, strokeOffset(width))
}

func (s *vectorSurface) StrokeLine(from, to domain.Point, c color.NRGBA, width float64) {
	q := segmentQuad(from, to, width)
	if q == nil {
		return
	}
	s.paint([][]domain.Point{q}, c, strokeOffset(width))
}

func (s *vectorSurface) Image() image.Image {
	return s.img
}

// paint はパス群の被覆マスクを作り、その範囲にインクを置きます。
func (s *vectorSurface) paint(paths [][]domain.Point, c color.NRGBA, offset float64) {
	s.r.Reset(s.size, s.size)
	for _, p := range paths {
		s.addPath(p, offset)
	}

	clear(s.mask.Pix)
	s.r.Draw(s.mask, s.mask.Bounds(), image.Opaque, image.Point{})
	if !s.antialias {
		binarize(s.mask)
	}

	// 不透明なインクなら Over 合成は被覆率での置き換えと同じ結果になるのだ
	if c.A == 0xff {
		draw.DrawMask(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, s.mask, image.Point{}, draw.Over)
		return
	}
	s.replace(c)
}

// replace は半透明のインクを下地と混ぜずに、被覆率に応じて置き換えます。
// draw.Src はマスク外のピクセルも消してしまうので、ここだけは自前で書き込みます。
func (s *vectorSurface) replace(c color.NRGBA) {
	ink := premultiply(c)
	for i, a := range s.mask.Pix {
		if a == 0 {
			continue
		}
		p := s.img.Pix[i*4 : i*4+4 : i*4+4]
		p[0] = mix(p[0], ink.R, a)
		p[1] = mix(p[1], ink.G, a)
		p[2] = mix(p[2], ink.B, a)
		p[3] = mix(p[3], ink.A, a)
	}
}

// addPath は閉じたパスをラスタライザに追加します。
// 重なったサブパスが打ち消し合わないよう、回転方向を揃えてから渡します。
func (s *vectorSurface) addPath(points []domain.Point, offset float64) {
	if len(points) < 3 {
		return
	}
	ordered := points
	if signedArea(points) > 0 {
		ordered = make([]domain.Point, len(points))
		for i, p := range points {
			ordered[len(points)-1-i] = p
		}
	}

	s.r.MoveTo(float32(ordered[0].X+offset), float32(ordered[0].Y+offset))
	for _, p := range ordered[1:] {
		s.r.LineTo(float32(p.X+offset), float32(p.Y+offset))
	}
	s.r.ClosePath()
}

// strokeOffset は線幅に応じて線の縁をピクセル境界に揃えるオフセットを返します。
// 奇数幅はピクセル中心、偶数幅はピクセルの角を通せば、幅 w の線がちょうど w ピクセルになります。
func strokeOffset(width float64) float64 {
	if math.Mod(width, 2) == 1 {
		return pixelCenter
	}
	return 0
}

// binarize はマスクを閾値で 0 か 0xff に揃えます。
func binarize(mask *image.Alpha) {
	for i, a := range mask.Pix {
		if a >= coverageThreshold {
			mask.Pix[i] = 0xff
		} else {
			mask.Pix[i] = 0
		}
	}
}

// segmentQuad は線分を幅 width の長方形に変換します。長さ0の線分は nil です。
func segmentQuad(from, to domain.Point, width float64) []domain.Point {
	dx, dy := to.X-from.X, to.Y-from.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	return []domain.Point{
		{X: from.X + nx, Y: from.Y + ny},
		{X: to.X + nx, Y: to.Y + ny},
		{X: to.X - nx, Y: to.Y - ny},
		{X: from.X - nx, Y: from.Y - ny},
	}
}

// disc は線の継ぎ目を丸く埋めるための多角形を返します。
func disc(center domain.Point, radius float64) []domain.Point {
	points := make([]domain.Point, joinSegments)
	for i := range points {
		theta := 2 * math.Pi * float64(i) / joinSegments
		points[i] = domain.Point{
			X: center.X + radius*math.Cos(theta),
			Y: center.Y + radius*math.Sin(theta),
		}
	}
	return points
}

// signedArea は靴紐公式による符号付き面積です。
func signedArea(points []domain.Point) float64 {
	var sum float64
	for i, p := range points {
		q := points[(i+1)%len(points)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// premultiply は c をアルファ乗算済みの値にします。
// 切り捨てで変換すると PNG に書き出したときに元の色から1ずれるので、
// 乗算を外したときに c へ戻る値（あれば）を切り上げで選びます。
func premultiply(c color.NRGBA) color.RGBA {
	ch := func(v uint8) uint8 {
		return uint8((uint32(v)*uint32(c.A)*0x100 + 0xfffe) / 0xffff)
	}
	return color.RGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: c.A}
}

// mix は被覆率 a で d から s へ補間します。
func mix(d, s, a uint8) uint8 {
	if a == 0xff {
		return s
	}
	return uint8((uint32(d)*uint32(0xff-a) + uint32(s)*uint32(a) + 0x7f) / 0xff)
}
