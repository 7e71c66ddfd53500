package runner

import (
	"context"

	"github.com/shouni/go-favicon-kit/pkg/domain"
	"github.com/shouni/go-favicon-kit/pkg/publisher"
)

// PublisherRunner はパブリッシュ処理のインターフェースです。
type PublisherRunner interface {
	Run(ctx context.Context, canvases domain.Canvases) (publisher.PublishResult, error)
}

// DefaultPublisherRunner は pkg/publisher を利用した標準実装です。
type DefaultPublisherRunner struct {
	outputDir string
	publisher *publisher.IconPublisher
}

func NewDefaultPublisherRunner(outputDir string, pub *publisher.IconPublisher) *DefaultPublisherRunner {
	return &DefaultPublisherRunner{
		outputDir: outputDir,
		publisher: pub,
	}
}

func (pr *DefaultPublisherRunner) Run(ctx context.Context, canvases domain.Canvases) (publisher.PublishResult, error) {
	// internal/config の値を pkg/publisher 用の構造体に詰め替えます。
	opts := publisher.Options{
		OutputDir: pr.outputDir,
	}

	return pr.publisher.Publish(ctx, canvases, opts)
}
