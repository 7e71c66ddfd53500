package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-favicon-kit/internal/builder"
	"github.com/shouni/go-favicon-kit/internal/config"
	"github.com/shouni/go-favicon-kit/pkg/domain"
	"github.com/shouni/go-favicon-kit/pkg/encoder"
	"github.com/shouni/go-favicon-kit/pkg/publisher"

	"github.com/shouni/go-remote-io/remoteio"
	"github.com/shouni/go-remote-io/remoteio/gcs"
	"github.com/shouni/go-remote-io/remoteio/s3"
)

// Execute は、全サイズのキャンバスを描画し（Phase 1）、
// ICO と PNG を書き出す（Phase 2）のだ。
func Execute(ctx context.Context, cfg *config.Config) (publisher.PublishResult, error) {
	appCtx, closeStore, err := setupAppContext(ctx, cfg)
	if err != nil {
		return publisher.PublishResult{}, err
	}
	defer closeStore()

	// --- Phase 1: Render Phase (キャンバス描画) ---
	canvases, err := runRenderStep(ctx, appCtx)
	if err != nil {
		return publisher.PublishResult{}, err
	}

	// --- Phase 2: Publish Phase (保存) ---
	result, err := runPublishStep(ctx, appCtx, canvases)
	if err != nil {
		return result, err
	}

	slog.Info("ファビコンの生成が完了したのだ！", "ico", result.ICOPath, "png_count", len(result.PNGPaths))
	return result, nil
}

// ExecuteVerify は、書き出し済みの ICO と PNG を読み戻して整合性を確認するのだ。
func ExecuteVerify(ctx context.Context, cfg *config.Config) error {
	appCtx, closeStore, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	verifyRunner, err := builder.BuildVerifyRunner(appCtx)
	if err != nil {
		return fmt.Errorf("VerifyRunnerの構築に失敗したのだ: %w", err)
	}

	report, err := verifyRunner.Run(ctx)
	if err != nil {
		return fmt.Errorf("成果物の検証に失敗したのだ: %w", err)
	}

	slog.Info("成果物の検証に成功したのだ！", "ico", report.ICOPath, "sizes", report.Sizes)
	return nil
}

// setupAppContext は、出力先のスキームに合ったストアを用意してアプリケーションコンテキストを初期化するのだ。
// 返す関数はクラウドのクライアントを閉じるので、実行が終わったら必ず呼ぶのだ。
func setupAppContext(ctx context.Context, cfg *config.Config) (*builder.AppContext, func(), error) {
	store, closeStore, err := newStore(ctx, cfg.OutputDir)
	if err != nil {
		return nil, nil, err
	}

	appCtx := builder.NewAppContext(cfg, store, store, encoder.NewPNGEncoder())
	return &appCtx, closeStore, nil
}

// newStore は gs:// なら GCS、s3:// なら S3 のクライアントを作り、
// それ以外はローカルファイルシステムだけを扱うストアを返すのだ。
func newStore(ctx context.Context, outputDir string) (remoteio.Store, func(), error) {
	var (
		factory remoteio.Factory
		err     error
	)
	switch remoteio.Scheme(outputDir) {
	case gcs.Scheme:
		factory, err = gcs.New(ctx)
	case s3.Scheme:
		factory, err = s3.New(ctx)
	default:
		return remoteio.NewStore(), func() {}, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create storage client for %s: %w", outputDir, err)
	}

	store, err := factory.Store()
	if err != nil {
		_ = factory.Close()
		return nil, nil, err
	}
	return store, func() {
		if err := factory.Close(); err != nil {
			slog.Warn("ストレージクライアントのクローズに失敗したのだ", "error", err)
		}
	}, nil
}

// runRenderStep は RenderRunner を使って全サイズのキャンバスを描画するのだ
func runRenderStep(ctx context.Context, appCtx *builder.AppContext) (domain.Canvases, error) {
	slog.Info("Phase 1: キャンバスの描画を開始するのだ...")
	renderRunner, err := builder.BuildRenderRunner(appCtx)
	if err != nil {
		return nil, fmt.Errorf("RenderRunnerの構築に失敗したのだ: %w", err)
	}

	canvases, err := renderRunner.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("キャンバスの描画に失敗したのだ: %w", err)
	}
	return canvases, nil
}

// runPublishStep は PublisherRunner を使って ICO と PNG を保存するのだ
func runPublishStep(ctx context.Context, appCtx *builder.AppContext, canvases domain.Canvases) (publisher.PublishResult, error) {
	slog.Info("Phase 2: 保存処理を開始するのだ...", "output_dir", appCtx.Config.OutputDir)
	publishRunner, err := builder.BuildPublisherRunner(appCtx)
	if err != nil {
		return publisher.PublishResult{}, fmt.Errorf("PublishRunnerの構築に失敗したのだ: %w", err)
	}

	result, err := publishRunner.Run(ctx, canvases)
	if err != nil {
		return result, fmt.Errorf("保存処理に失敗したのだ: %w", err)
	}
	return result, nil
}
