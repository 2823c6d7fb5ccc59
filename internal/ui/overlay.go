//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"gridsnake/internal/snake"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// bannerTarget is where the state banner is stretched to on an 800x600 board.
var bannerTarget = image.Rect(100, 150, 700, 450)

// Overlay draws the "PAUSED" / "GAME OVER" banner and the score line.
type Overlay struct {
	banner    *ebiten.Image
	bannerMsg string
	bannerCol color.RGBA
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Draw renders the banner for the snapshot's state. Nothing is drawn while
// the game is playing.
func (o *Overlay) Draw(screen *ebiten.Image, snap snake.Snapshot) {
	msg, col, ok := snake.Overlay(snap.State)
	if !ok {
		return
	}
	o.ensureBanner(msg, col)

	bw, bh := o.banner.Bounds().Dx(), o.banner.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bannerTarget.Dx())/float64(bw), float64(bannerTarget.Dy())/float64(bh))
	op.GeoM.Translate(float64(bannerTarget.Min.X), float64(bannerTarget.Min.Y))
	screen.DrawImage(o.banner, op)

	face := basicfont.Face7x13
	score := fmt.Sprintf("SCORE %d", snap.Score)
	b := text.BoundString(face, score)
	x := (screen.Bounds().Dx() - b.Dx()) / 2
	text.Draw(screen, score, face, x, bannerTarget.Max.Y+24, color.RGBA{R: 220, G: 220, B: 230, A: 255})
}

// ensureBanner renders msg at native font size into a tight image that Draw
// scales up. The image is cached until the message changes.
func (o *Overlay) ensureBanner(msg string, col color.RGBA) {
	if o.banner != nil && o.bannerMsg == msg && o.bannerCol == col {
		return
	}
	face := basicfont.Face7x13
	b := text.BoundString(face, msg)
	if o.banner != nil {
		o.banner.Dispose()
	}
	o.banner = ebiten.NewImage(b.Dx(), b.Dy())
	text.Draw(o.banner, msg, face, -b.Min.X, -b.Min.Y, col)
	o.bannerMsg = msg
	o.bannerCol = col
}
