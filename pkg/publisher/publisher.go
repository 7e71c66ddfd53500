package publisher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shouni/go-favicon-kit/pkg/domain"
	"github.com/shouni/go-favicon-kit/pkg/encoder"

	"github.com/shouni/go-remote-io/remoteio"
)

const (
	contentTypeICO = "image/x-icon"
	contentTypePNG = "image/png"
)

// ErrNoCanvas は保存するキャンバスが1枚もない場合のエラーです。
var ErrNoCanvas = errors.New("no canvas to publish")

// Options はパブリッシュ動作を制御する設定項目です。
type Options struct {
	OutputDir string
}

// PublishResult はパブリッシュ処理で書き出したファイルの情報を保持します。
type PublishResult struct {
	ICOPath  string   // favicon.ico のパス
	PNGPaths []string // 単体 PNG のパス（キャンバスの順）
}

// IconPublisher は描画済みキャンバスの永続化を担います。
type IconPublisher struct {
	writer  remoteio.Writer
	encoder *encoder.PNGEncoder
}

// NewIconPublisher は IconPublisher の新しいインスタンスを生成します。
func NewIconPublisher(writer remoteio.Writer, enc *encoder.PNGEncoder) *IconPublisher {
	return &IconPublisher{
		writer:  writer,
		encoder: enc,
	}
}

// Publish は最小サイズのキャンバスを土台に全サイズを埋め込んだ ICO を書き出し、
// 続けて各キャンバスを単体の PNG として書き出します。
func (p *IconPublisher) Publish(ctx context.Context, canvases domain.Canvases, opts Options) (PublishResult, error) {
	result := PublishResult{}

	carrier, ok := canvases.Smallest()
	if !ok {
		return result, ErrNoCanvas
	}

	// 1. ICO コンテナ
	icoPath := ResolveOutputPath(opts.OutputDir, ICOFileName)
	icoData, err := p.encoder.EncodeICO(carrier, canvases)
	if err != nil {
		return result, err
	}
	if err := p.writer.Write(ctx, icoPath, bytes.NewReader(icoData), remoteio.WithContentType(contentTypeICO)); err != nil {
		return result, fmt.Errorf("writing %s failed: %w", icoPath, err)
	}
	result.ICOPath = icoPath
	slog.Info("Favicon created", "path", icoPath, "sizes", canvases.Sizes())

	// 2. 単体 PNG
	for _, c := range canvases {
		pngPath := ResolveOutputPath(opts.OutputDir, PNGFileName(c.Size))
		data, err := p.encoder.Encode(c)
		if err != nil {
			return result, err
		}
		if err := p.writer.Write(ctx, pngPath, bytes.NewReader(data), remoteio.WithContentType(contentTypePNG)); err != nil {
			return result, fmt.Errorf("writing %s failed: %w", pngPath, err)
		}
		result.PNGPaths = append(result.PNGPaths, pngPath)
		slog.Info("PNG created", "path", pngPath, "size", c.Size)
	}

	return result, nil
}
