package publisher

import (
	"fmt"

	"github.com/shouni/go-remote-io/remoteio"
)

const (
	// ICOFileName はマルチサイズ ICO コンテナのファイル名です。
	ICOFileName = "favicon.ico"
	// pngFileFormat は単体 PNG のファイル名の書式です。
	pngFileFormat = "favicon-%d.png"
)

// PNGFileName はサイズを埋め込んだ単体 PNG のファイル名を返します。
func PNGFileName(size int) string {
	return fmt.Sprintf(pngFileFormat, size)
}

// ResolveOutputPath は、ベースとなるディレクトリとファイル名から最終的な出力パスを生成します。
// gs:// や s3:// のベースは "/" で、それ以外はローカルパスとして結合します。
func ResolveOutputPath(baseDir, fileName string) string {
	return remoteio.Join(baseDir, fileName)
}
