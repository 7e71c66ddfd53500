package verifier

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"

	"github.com/shouni/go-favicon-kit/pkg/publisher"

	ico "github.com/sergeymakinen/go-ico"
	"github.com/shouni/go-remote-io/remoteio"
)

// ErrMismatch は ICO コンテナと単体 PNG の内容が食い違う場合のエラーです。
var ErrMismatch = errors.New("favicon artifacts mismatch")

// Report は検証結果です。
type Report struct {
	ICOPath string
	Sizes   []int
}

// Verifier は書き出された成果物を読み戻して整合性を確認します。
type Verifier struct {
	reader remoteio.Reader
}

// NewVerifier は Verifier を生成します。
func NewVerifier(reader remoteio.Reader) *Verifier {
	return &Verifier{reader: reader}
}

// Verify は ICO コンテナがちょうど sizes の順でエントリを持ち、
// 各エントリが同じサイズの単体 PNG とピクセル単位で一致することを確認します。
func (v *Verifier) Verify(ctx context.Context, outputDir string, sizes []int) (Report, error) {
	report := Report{}

	icoPath := publisher.ResolveOutputPath(outputDir, publisher.ICOFileName)
	report.ICOPath = icoPath

	entries, err := v.readICO(ctx, icoPath)
	if err != nil {
		return report, err
	}
	if len(entries) != len(sizes) {
		return report, fmt.Errorf("%w: %s has %d entries, want %d", ErrMismatch, icoPath, len(entries), len(sizes))
	}

	for i, size := range sizes {
		embedded := entries[i]
		if b := embedded.Bounds(); b.Dx() != size || b.Dy() != size {
			return report, fmt.Errorf("%w: entry %d is %dx%d, want %dx%d", ErrMismatch, i, b.Dx(), b.Dy(), size, size)
		}

		pngPath := publisher.ResolveOutputPath(outputDir, publisher.PNGFileName(size))
		standalone, err := v.readPNG(ctx, pngPath)
		if err != nil {
			return report, err
		}

		if err := samePixels(embedded, standalone); err != nil {
			return report, fmt.Errorf("%w: size %d: %v", ErrMismatch, size, err)
		}
		report.Sizes = append(report.Sizes, size)
		slog.Debug("Entry verified", "size", size, "path", pngPath)
	}

	return report, nil
}

// readICO はコンテナの全エントリをディレクトリの順に読み出します。
func (v *Verifier) readICO(ctx context.Context, path string) ([]image.Image, error) {
	rc, err := v.reader.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("opening %s failed: %w", path, err)
	}
	defer rc.Close()

	entries, err := ico.DecodeAll(rc)
	if err != nil {
		return nil, fmt.Errorf("decoding %s failed: %w", path, err)
	}
	return entries, nil
}

func (v *Verifier) readPNG(ctx context.Context, path string) (image.Image, error) {
	rc, err := v.reader.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("opening %s failed: %w", path, err)
	}
	defer rc.Close()

	img, err := png.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("decoding %s failed: %w", path, err)
	}
	return img, nil
}

// samePixels は2枚の画像が同じ大きさで、全ピクセルの NRGBA 値が等しいかを確認します。
func samePixels(a, b image.Image) error {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return fmt.Errorf("bounds %v != %v", ab, bb)
	}
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			pa := color.NRGBAModel.Convert(a.At(ab.Min.X+x, ab.Min.Y+y))
			pb := color.NRGBAModel.Convert(b.At(bb.Min.X+x, bb.Min.Y+y))
			if pa != pb {
				return fmt.Errorf("pixel (%d,%d) differs: %v != %v", x, y, pa, pb)
			}
		}
	}
	return nil
}
