package domain

import (
	"image"
	"image/color"
)

// DefaultSizes は生成するアイコンの一辺のピクセル数です。ICO コンテナにもこの順で格納されます。
var DefaultSizes = []int{16, 32, 64, 128, 256}

// Palette はアイコン描画に使う色の組み合わせです。
type Palette struct {
	Background color.NRGBA // 背景と葉のアウトライン (#1a3a2a)
	Accent     color.NRGBA // 葉の塗りつぶし (#D4A574)
	Vein       color.NRGBA // 中央の葉脈
}

// TeaPalette はティーフォレストの背景にティーゴールドの葉を置く配色です。
var TeaPalette = Palette{
	Background: color.NRGBA{R: 26, G: 58, B: 42, A: 255},
	Accent:     color.NRGBA{R: 212, G: 165, B: 116, A: 255},
	Vein:       color.NRGBA{R: 26, G: 58, B: 42, A: 200},
}

const (
	// LeafRatio はキャンバスに対する葉の大きさの割合です。
	LeafRatio = 0.35
	// VeinTailRatio は中心から葉脈の下端までの距離（葉のエクステント比）です。
	VeinTailRatio = 0.5
	// OutlineDivisor はアウトライン線幅を求める際の除数です。
	OutlineDivisor = 128
	// VeinDivisor は葉脈の線幅を求める際の除数です。
	VeinDivisor = 64
)

// Point はキャンバス上の座標です。
type Point struct {
	X float64
	Y float64
}

// Canvas は1サイズ分の描画済みラスタ画像です。
type Canvas struct {
	Size  int
	Image image.Image
}

// Canvases はサイズ順に並んだキャンバスの集合です。
type Canvases []Canvas

// Leaf は1サイズ分の葉の形状（ポリゴンと葉脈）です。
type Leaf struct {
	Center  Point
	Extent  int
	Polygon []Point
	VeinTop Point
	VeinEnd Point
}
