package raster

import (
	"image"
	"image/color"

	"github.com/shouni/go-favicon-kit/pkg/domain"

	"github.com/fogleman/gg"
)

// ggSurface は fogleman/gg のコンテキストに描画するサーフェスです。
// gg は Over 合成なので、半透明の葉脈は下地と混ざります。
type ggSurface struct {
	dc *gg.Context
}

func newGGSurface(size int) Surface {
	return &ggSurface{dc: gg.NewContext(size, size)}
}

func (s *ggSurface) Fill(c color.NRGBA) {
	s.dc.SetColor(c)
	s.dc.Clear()
}

func (s *ggSurface) FillPolygon(points []domain.Point, c color.NRGBA) {
	s.polygon(points, pixelCenter)
	s.dc.SetColor(c)
	s.dc.Fill()
}

func (s *ggSurface) StrokePolygon(points []domain.Point, c color.NRGBA, width float64) {
	s.polygon(points, strokeOffset(width))
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.dc.SetLineJoin(gg.LineJoinRound)
	s.dc.Stroke()
}

func (s *ggSurface) StrokeLine(from, to domain.Point, c color.NRGBA, width float64) {
	o := strokeOffset(width)
	s.dc.DrawLine(from.X+o, from.Y+o, to.X+o, to.Y+o)
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.dc.SetLineCap(gg.LineCapButt)
	s.dc.Stroke()
}

func (s *ggSurface) Image() image.Image {
	return s.dc.Image()
}

func (s *ggSurface) polygon(points []domain.Point, offset float64) {
	s.dc.NewSubPath()
	for i, p := range points {
		if i == 0 {
			s.dc.MoveTo(p.X+offset, p.Y+offset)
			continue
		}
		s.dc.LineTo(p.X+offset, p.Y+offset)
	}
	s.dc.ClosePath()
}
