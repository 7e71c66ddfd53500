package builder

import (
	"github.com/shouni/go-favicon-kit/internal/config"

	"github.com/shouni/go-favicon-kit/pkg/encoder"

	"github.com/shouni/go-remote-io/remoteio"
)

// AppContext は、アプリケーション実行に必要な共通コンテキストを保持する
// これを各Build関数に渡すことで、依存関係の注入を簡素化します。
type AppContext struct {
	Config  *config.Config      // Configは、環境変数とフラグから組み立てた設定です（出力先、レンダラーなど）。
	Reader  remoteio.Reader     // Readerは、検証時に成果物を読み戻すための入力元です。
	Writer  remoteio.Writer     // Writerは、生成した ICO と PNG の出力先です（ローカル、GCS、S3）。
	Encoder *encoder.PNGEncoder // Encoderは、ICO と単体 PNG で共有する PNG エンコーダーです。
}

// NewAppContext は AppContext の新しいインスタンスを生成する
func NewAppContext(
	cfg *config.Config,
	reader remoteio.Reader,
	writer remoteio.Writer,
	enc *encoder.PNGEncoder,
) AppContext {
	return AppContext{
		Config:  cfg,
		Reader:  reader,
		Writer:  writer,
		Encoder: enc,
	}
}
