//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps one board-sized image and repaints it from cell data.
type GridPainter struct {
	layout Layout
	img    *ebiten.Image
	buf    []byte
}

// NewGridPainter allocates a painter for the given layout.
func NewGridPainter(l Layout) *GridPainter {
	w, h := l.Bounds()
	return &GridPainter{layout: l, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Draw rasterizes cells over background and draws the result onto dst.
func (gp *GridPainter) Draw(dst *ebiten.Image, cells []uint8, palette []color.RGBA, background color.RGBA) {
	if len(cells) != gp.layout.Cols*gp.layout.Rows {
		return
	}
	Rasterize(gp.buf, gp.layout, cells, palette, background)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, nil)
}

// Size returns the pixel dimensions of the board image.
func (gp *GridPainter) Size() (int, int) { return gp.layout.Bounds() }
