package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shouni/go-favicon-kit/pkg/domain"
	"github.com/shouni/go-favicon-kit/pkg/raster"

	"golang.org/x/sync/errgroup"
)

// IconGenerator は、注入された raster.Factory を使って葉のアイコンを描画します。
// 形状の計算は domain の純粋関数に任せ、ここでは描画の手順だけを扱います。
type IconGenerator struct {
	newSurface raster.Factory
	palette    domain.Palette
	workers    int
}

// NewIconGenerator は IconGenerator の新しいインスタンスを初期化します。
// workers が1未満の場合は DefaultWorkers を使います。
func NewIconGenerator(factory raster.Factory, palette domain.Palette, workers int) *IconGenerator {
	if workers < 1 {
		workers = DefaultWorkers
	}
	return &IconGenerator{
		newSurface: factory,
		palette:    palette,
		workers:    workers,
	}
}

// Render は一辺 size ピクセルのキャンバスに背景、葉、輪郭、葉脈の順で描画します。
func (g *IconGenerator) Render(size int) (domain.Canvas, error) {
	if size <= 0 {
		return domain.Canvas{}, fmt.Errorf("%w: %d", domain.ErrInvalidSize, size)
	}

	surface := g.newSurface(size)
	surface.Fill(g.palette.Background)

	leaf := domain.NewLeaf(size)
	surface.FillPolygon(leaf.Polygon, g.palette.Accent)
	surface.StrokePolygon(leaf.Polygon, g.palette.Background, float64(domain.OutlineWidth(size)))
	surface.StrokeLine(leaf.VeinTop, leaf.VeinEnd, g.palette.Vein, float64(domain.VeinWidth(size)))

	img := surface.Image()
	if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
		return domain.Canvas{}, fmt.Errorf("size %d: surface returned %dx%d image", size, b.Dx(), b.Dy())
	}
	return domain.Canvas{Size: size, Image: img}, nil
}

// RenderAll は全サイズのキャンバスを描画し、入力と同じ順序で返します。
// 各キャンバスは自分のタスクだけが所有するので、workers を増やしても結果は変わりません。
func (g *IconGenerator) RenderAll(ctx context.Context, sizes []int) (domain.Canvases, error) {
	if err := domain.ValidateSizes(sizes); err != nil {
		return nil, err
	}

	canvases := make(domain.Canvases, len(sizes))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)

	for i, size := range sizes {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			startTime := time.Now()
			canvas, err := g.Render(size)
			if err != nil {
				return fmt.Errorf("rendering size %d failed: %w", size, err)
			}

			slog.Debug("Canvas rendered", "size", size, "duration", time.Since(startTime).Round(time.Microsecond))
			canvases[i] = canvas
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return canvases, nil
}
