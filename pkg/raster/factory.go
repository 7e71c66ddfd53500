package raster

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// RendererVector は golang.org/x/image/vector を使うレンダラーです。
	RendererVector = "vector"
	// RendererGG は github.com/fogleman/gg を使うレンダラーです。
	RendererGG = "gg"

	// pixelCenter は整数座標をピクセル中心に合わせるためのオフセットです。
	pixelCenter = 0.5
)

// ErrUnknownRenderer は未対応のレンダラー名が指定された場合のエラーです。
var ErrUnknownRenderer = errors.New("unknown renderer")

// Options はサーフェス生成の設定項目です。
type Options struct {
	Renderer  string
	Antialias bool
}

// NewFactory はレンダラー名に対応する Factory を返します。
func NewFactory(opts Options) (Factory, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Renderer)) {
	case "", RendererVector:
		antialias := opts.Antialias
		return func(size int) Surface {
			return newVectorSurface(size, antialias)
		}, nil
	case RendererGG:
		return newGGSurface, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRenderer, opts.Renderer)
	}
}
