package generator

import (
	"context"

	"github.com/shouni/go-favicon-kit/pkg/domain"
)

// SetRenderer は、サイズの集合に対してキャンバスを入力順に生成します。
// 途中で失敗した場合はキャンバスを返さずにエラーを出力します。
type SetRenderer interface {
	RenderAll(ctx context.Context, sizes []int) (domain.Canvases, error)
}
