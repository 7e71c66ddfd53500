package domain

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSize はサイズに正の整数以外が指定された場合のエラーです。
var ErrInvalidSize = errors.New("invalid icon size")

// leafOutline は葉の外形を中心からの相対ベクトルで表したものです。
// 上端から時計回りに並び、縦軸について左右対称になっています。
var leafOutline = []Point{
	{X: 0, Y: -1},
	{X: 0.6, Y: -0.5},
	{X: 0.7, Y: 0},
	{X: 0.5, Y: 0.4},
	{X: 0, Y: 0.5},
	{X: -0.5, Y: 0.4},
	{X: -0.7, Y: 0},
	{X: -0.6, Y: -0.5},
}

// ValidateSizes はサイズの集合が空でなく、すべて正の値で重複がないことを確認します。
func ValidateSizes(sizes []int) error {
	if len(sizes) == 0 {
		return fmt.Errorf("%w: no sizes given", ErrInvalidSize)
	}
	seen := make(map[int]bool, len(sizes))
	for _, s := range sizes {
		if s <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidSize, s)
		}
		if seen[s] {
			return fmt.Errorf("%w: duplicate size %d", ErrInvalidSize, s)
		}
		seen[s] = true
	}
	return nil
}

// LeafExtent は floor(size * LeafRatio) を返します。
func LeafExtent(size int) int {
	return int(math.Floor(float64(size) * LeafRatio))
}

// OutlineWidth は max(1, floor(size/128)) を返します。
func OutlineWidth(size int) int {
	return max(1, size/OutlineDivisor)
}

// VeinWidth は max(1, floor(size/64)) を返します。
func VeinWidth(size int) int {
	return max(1, size/VeinDivisor)
}

// NewLeaf は指定サイズのキャンバス中央に置く葉の形状を計算します。
func NewLeaf(size int) Leaf {
	c := Point{X: float64(size / 2), Y: float64(size / 2)}
	extent := LeafExtent(size)
	e := float64(extent)

	polygon := make([]Point, len(leafOutline))
	for i, v := range leafOutline {
		polygon[i] = Point{X: c.X + e*v.X, Y: c.Y + e*v.Y}
	}

	return Leaf{
		Center:  c,
		Extent:  extent,
		Polygon: polygon,
		VeinTop: polygon[0],
		VeinEnd: Point{X: c.X, Y: c.Y + e*VeinTailRatio},
	}
}

// Sizes はキャンバスのサイズを順番どおりに返します。
func (cs Canvases) Sizes() []int {
	sizes := make([]int, 0, len(cs))
	for _, c := range cs {
		sizes = append(sizes, c.Size)
	}
	return sizes
}

// Smallest は最小サイズのキャンバスを返します。空の場合は false です。
func (cs Canvases) Smallest() (Canvas, bool) {
	if len(cs) == 0 {
		return Canvas{}, false
	}
	smallest := cs[0]
	for _, c := range cs[1:] {
		if c.Size < smallest.Size {
			smallest = c
		}
	}
	return smallest, true
}
