package encoder

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/shouni/go-favicon-kit/pkg/domain"

	ico "github.com/sergeymakinen/go-ico"
)

// canvasOf は背景色で塗り、中央に半透明の葉脈色を置いたキャンバスを返すのだ
func canvasOf(size int) domain.Canvas {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	bg := color.RGBAModel.Convert(domain.TeaPalette.Background)
	vein := color.RGBAModel.Convert(domain.TeaPalette.Vein)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, bg)
		}
	}
	for y := 0; y < size; y++ {
		img.Set(size/2, y, vein)
	}
	return domain.Canvas{Size: size, Image: img}
}

func testCanvases() domain.Canvases {
	var cs domain.Canvases
	for _, s := range domain.DefaultSizes {
		cs = append(cs, canvasOf(s))
	}
	return cs
}

func TestPNGEncoder_Encode(t *testing.T) {
	e := NewPNGEncoder()
	c := canvasOf(16)

	first, err := e.Encode(c)
	if err != nil {
		t.Fatalf("エンコードに失敗したのだ: %v", err)
	}
	second, err := e.Encode(c)
	if err != nil {
		t.Fatalf("エンコードに失敗したのだ: %v", err)
	}
	if &first[0] != &second[0] {
		t.Error("2回目はキャッシュを返すべきなのだ")
	}

	img, err := png.Decode(bytes.NewReader(first))
	if err != nil {
		t.Fatalf("PNG のデコードに失敗したのだ: %v", err)
	}
	got := color.NRGBAModel.Convert(img.At(8, 3))
	if want := color.NRGBAModel.Convert(c.Image.At(8, 3)); got != want {
		t.Errorf("半透明の色が保たれていないのだ。期待 %+v, 実際 %+v", want, got)
	}

	if again, err := NewPNGEncoder().Encode(c); err != nil || !bytes.Equal(first, again) {
		t.Errorf("同じキャンバスは同じバイト列になるべきなのだ: %v", err)
	}
}

func TestPremultiplied(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if premultiplied(rgba) != rgba {
		t.Error("RGBA はそのまま使うのだ")
	}

	nrgba := image.NewNRGBA(image.Rect(2, 2, 6, 6))
	nrgba.SetNRGBA(3, 3, domain.TeaPalette.Vein)
	got := premultiplied(nrgba)
	if b := got.Bounds(); b != image.Rect(0, 0, 4, 4) {
		t.Fatalf("原点にそろえるべきなのだ: %v", b)
	}
	if want := color.RGBAModel.Convert(nrgba.At(3, 3)); got.At(1, 1) != want {
		t.Errorf("NRGBA は乗算済みの値に変換するのだ。期待 %+v, 実際 %+v", want, got.At(1, 1))
	}
}

func TestPNGEncoder_EncodeICO(t *testing.T) {
	e := NewPNGEncoder()
	canvases := testCanvases()
	carrier, _ := canvases.Smallest()

	data, err := e.EncodeICO(carrier, canvases)
	if err != nil {
		t.Fatalf("ICO のエンコードに失敗したのだ: %v", err)
	}
	entries, err := ico.DecodeAll(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ICO のデコードに失敗したのだ: %v", err)
	}
	if len(entries) != len(domain.DefaultSizes) {
		t.Fatalf("エントリ数が違うのだ: %d", len(entries))
	}
	for i, entry := range entries {
		size := domain.DefaultSizes[i]
		if b := entry.Bounds(); b.Dx() != size || b.Dy() != size {
			t.Errorf("エントリ %d の大きさが違うのだ: %v", i, b)
			continue
		}

		// 256 は PNG、それ以外は BMP で埋め込まれるけれど、どれも単体 PNG と同じ値に戻るのだ
		standalone, _ := e.Encode(canvases[i])
		img, err := png.Decode(bytes.NewReader(standalone))
		if err != nil {
			t.Fatalf("PNG のデコードに失敗したのだ: %v", err)
		}
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				a := color.NRGBAModel.Convert(entry.At(x, y))
				b := color.NRGBAModel.Convert(img.At(x, y))
				if a != b {
					t.Fatalf("size=%d (%d,%d): ICO %+v, PNG %+v", size, x, y, a, b)
				}
			}
		}
	}
}

func TestPNGEncoder_EncodeICODuplicateSize(t *testing.T) {
	canvases := domain.Canvases{canvasOf(16), canvasOf(32), canvasOf(16)}
	if _, err := NewPNGEncoder().EncodeICO(canvases[0], canvases); !errors.Is(err, domain.ErrInvalidSize) {
		t.Errorf("同じサイズが2枚あればエラーなのだ: %v", err)
	}
}
