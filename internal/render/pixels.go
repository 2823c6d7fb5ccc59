package render

import (
	"image"
	"image/color"

	"gridsnake/internal/core"
)

const (
	// CellSize is the edge length of one grid cell in pixels.
	CellSize = 20
	// Margin is the gap left on each side of a drawn cell.
	Margin = 1
)

// Layout maps grid cells to pixel rectangles.
type Layout struct {
	Cols, Rows int
	CellSize   int
	Margin     int
}

// NewLayout returns the layout for a grid of the given size using the
// package cell size and margin.
func NewLayout(size core.Size) Layout {
	return Layout{Cols: size.W, Rows: size.H, CellSize: CellSize, Margin: Margin}
}

// Bounds returns the pixel dimensions of the whole board.
func (l Layout) Bounds() (int, int) {
	return l.Cols * l.CellSize, l.Rows * l.CellSize
}

// CellRect returns the drawn area of cell (x, y), inset by the margin.
func (l Layout) CellRect(x, y int) image.Rectangle {
	x0 := x*l.CellSize + l.Margin
	y0 := y*l.CellSize + l.Margin
	side := l.CellSize - 2*l.Margin
	if side < 0 {
		side = 0
	}
	return image.Rect(x0, y0, x0+side, y0+side)
}

// Rasterize paints the board into buf, an RGBA buffer of the layout's bounds.
// The whole buffer is filled with background first; cells whose palette entry
// is transparent or missing are left as background.
func Rasterize(buf []byte, l Layout, cells []uint8, palette []color.RGBA, background color.RGBA) {
	w, h := l.Bounds()
	if len(buf) < 4*w*h {
		return
	}
	fillRect(buf, w, image.Rect(0, 0, w, h), background)

	for i, c := range cells {
		if c == 0 || int(c) >= len(palette) {
			continue
		}
		col := palette[c]
		if col.A == 0 {
			continue
		}
		fillRect(buf, w, l.CellRect(i%l.Cols, i/l.Cols), col)
	}
}

// fillRect writes col into every pixel of r in a row-major RGBA buffer of the
// given stride in pixels.
func fillRect(buf []byte, stride int, r image.Rectangle, col color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		base := (y*stride + r.Min.X) * 4
		for x := r.Min.X; x < r.Max.X; x++ {
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
			base += 4
		}
	}
}
