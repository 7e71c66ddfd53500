package encoder

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strconv"

	"github.com/shouni/go-favicon-kit/pkg/domain"

	"github.com/patrickmn/go-cache"
	ico "github.com/sergeymakinen/go-ico"
	"golang.org/x/image/draw"
)

// PNGEncoder はキャンバスを PNG と ICO に変換します。PNG は実行中サイズごとに保持します。
// どちらの形式もアルファ乗算済みの RGBA から書き出すので、
// ICO のエントリと単体 PNG はデコードするとピクセル単位で一致します。
type PNGEncoder struct {
	encoder png.Encoder
	cache   *cache.Cache
}

// NewPNGEncoder は PNGEncoder の新しいインスタンスを生成します。
func NewPNGEncoder() *PNGEncoder {
	return &PNGEncoder{
		encoder: png.Encoder{CompressionLevel: png.BestCompression},
		cache:   cache.New(cache.NoExpiration, 0),
	}
}

// Encode はキャンバスを PNG バイト列にします。同じサイズの2回目以降はキャッシュを返します。
func (e *PNGEncoder) Encode(c domain.Canvas) ([]byte, error) {
	key := strconv.Itoa(c.Size)
	if cached, ok := e.cache.Get(key); ok {
		return cached.([]byte), nil
	}

	var buf bytes.Buffer
	if err := e.encoder.Encode(&buf, premultiplied(c.Image)); err != nil {
		return nil, fmt.Errorf("png encoding for size %d failed: %w", c.Size, err)
	}
	data := buf.Bytes()
	e.cache.Set(key, data, cache.NoExpiration)
	return data, nil
}

// EncodeICO は全キャンバスを埋め込んだ ICO コンテナのバイト列を返します。
// carrier が先頭になり、残りは canvases の順に並びます。
func (e *PNGEncoder) EncodeICO(carrier domain.Canvas, canvases domain.Canvases) ([]byte, error) {
	images := []image.Image{premultiplied(carrier.Image)}
	carried := false
	for _, c := range canvases {
		if c.Size == carrier.Size && !carried {
			carried = true
			continue
		}
		if c.Size == carrier.Size {
			return nil, fmt.Errorf("%w: duplicate size %d", domain.ErrInvalidSize, c.Size)
		}
		images = append(images, premultiplied(c.Image))
	}

	var buf bytes.Buffer
	if err := ico.EncodeAll(&buf, images); err != nil {
		return nil, fmt.Errorf("ico encoding failed: %w", err)
	}
	return buf.Bytes(), nil
}

// premultiplied は画像を *image.RGBA にそろえます。
func premultiplied(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
