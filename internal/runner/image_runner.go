package runner

import (
	"context"
	"log/slog"
	"time"

	"github.com/shouni/go-favicon-kit/pkg/domain"
	"github.com/shouni/go-favicon-kit/pkg/generator"
)

// RenderRunner は、サイズの集合からアイコンのキャンバスを描画するためのインターフェース。
type RenderRunner interface {
	// Run は全サイズのキャンバスを描画し、サイズの順で返す。
	Run(ctx context.Context) (domain.Canvases, error)
}

// IconRenderRunner は、注入されたジェネレーターで全サイズを描画する実体。
type IconRenderRunner struct {
	generator generator.SetRenderer // 葉のアイコンを描くジェネレーター
	sizes     []int                 // 描画するサイズの集合
	renderer  string                // ログ用のレンダラー名
}

// NewIconRenderRunner は、IconRenderRunnerの新しいインスタンスを生成して返す。
func NewIconRenderRunner(gen generator.SetRenderer, sizes []int, renderer string) *IconRenderRunner {
	return &IconRenderRunner{
		generator: gen,
		sizes:     sizes,
		renderer:  renderer,
	}
}

// Run はキャンバスの描画を実行するのだ。
func (r *IconRenderRunner) Run(ctx context.Context) (domain.Canvases, error) {
	slog.Info("キャンバスの描画を開始するのだ", "sizes", r.sizes, "renderer", r.renderer)
	startTime := time.Now()

	canvases, err := r.generator.RenderAll(ctx, r.sizes)
	if err != nil {
		slog.Error("キャンバスの描画に失敗したのだ", "error", err)
		return nil, err
	}

	slog.Info("すべてのキャンバスを描画したのだ", "total", len(canvases), "duration", time.Since(startTime).Round(time.Millisecond))
	return canvases, nil
}
