package raster

import (
	"image"
	"image/color"

	"github.com/shouni/go-favicon-kit/pkg/domain"
)

// Surface は1枚のキャンバスに対する描画操作を抽象化したインターフェースです。
// ジェネレーターは具体的な画像ライブラリを知らずに、この操作だけで葉を描きます。
type Surface interface {
	// Fill はキャンバス全体を指定色で塗りつぶします。
	Fill(c color.NRGBA)
	// FillPolygon は閉じたポリゴンの内部を塗りつぶします。
	FillPolygon(points []domain.Point, c color.NRGBA)
	// StrokePolygon は閉じたポリゴンの輪郭を指定幅で描きます。
	StrokePolygon(points []domain.Point, c color.NRGBA, width float64)
	// StrokeLine は2点間の直線を指定幅で描きます。
	StrokeLine(from, to domain.Point, c color.NRGBA, width float64)
	// Image は描画結果を返します。
	Image() image.Image
}

// Factory は一辺 size ピクセルの新しい Surface を生成します。
type Factory func(size int) Surface
