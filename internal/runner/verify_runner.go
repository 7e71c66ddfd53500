package runner

import (
	"context"

	"github.com/shouni/go-favicon-kit/pkg/verifier"
)

// VerifyRunner は書き出し済みの成果物を検証する処理のインターフェースです。
type VerifyRunner interface {
	Run(ctx context.Context) (verifier.Report, error)
}

// DefaultVerifyRunner は pkg/verifier を利用した標準実装です。
type DefaultVerifyRunner struct {
	verifier  *verifier.Verifier
	outputDir string
	sizes     []int
}

func NewDefaultVerifyRunner(v *verifier.Verifier, outputDir string, sizes []int) *DefaultVerifyRunner {
	return &DefaultVerifyRunner{
		verifier:  v,
		outputDir: outputDir,
		sizes:     sizes,
	}
}

func (vr *DefaultVerifyRunner) Run(ctx context.Context) (verifier.Report, error) {
	return vr.verifier.Verify(ctx, vr.outputDir, vr.sizes)
}
