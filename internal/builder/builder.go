package builder

import (
	"fmt"

	"github.com/shouni/go-favicon-kit/internal/runner"
	"github.com/shouni/go-favicon-kit/pkg/generator"
	"github.com/shouni/go-favicon-kit/pkg/publisher"
	"github.com/shouni/go-favicon-kit/pkg/raster"
	"github.com/shouni/go-favicon-kit/pkg/verifier"
)

// BuildRenderRunner は全サイズのキャンバス描画を担当する Runner を構築します。
func BuildRenderRunner(appCtx *AppContext) (runner.RenderRunner, error) {
	cfg := appCtx.Config
	factory, err := raster.NewFactory(raster.Options{
		Renderer:  cfg.Renderer,
		Antialias: cfg.Antialias,
	})
	if err != nil {
		return nil, fmt.Errorf("サーフェスの初期化に失敗したのだ: %w", err)
	}

	gen := generator.NewIconGenerator(factory, cfg.Palette, cfg.Workers)
	return runner.NewIconRenderRunner(gen, cfg.Sizes, cfg.Renderer), nil
}

// BuildPublisherRunner は ICO と PNG の保存を行う Runner を構築します。
func BuildPublisherRunner(appCtx *AppContext) (runner.PublisherRunner, error) {
	if appCtx.Writer == nil {
		return nil, fmt.Errorf("OutputWriterが設定されていないのだ")
	}
	pub := publisher.NewIconPublisher(appCtx.Writer, appCtx.Encoder)
	return runner.NewDefaultPublisherRunner(appCtx.Config.OutputDir, pub), nil
}

// BuildVerifyRunner は成果物の整合性を確認する Runner を構築します。
func BuildVerifyRunner(appCtx *AppContext) (runner.VerifyRunner, error) {
	if appCtx.Reader == nil {
		return nil, fmt.Errorf("InputReaderが設定されていないのだ")
	}
	v := verifier.NewVerifier(appCtx.Reader)
	return runner.NewDefaultVerifyRunner(v, appCtx.Config.OutputDir, appCtx.Config.Sizes), nil
}
