// Package export draws a Slash board as an image with gg, for screenshots and
// the export command.
package export

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/tui-slash/internal/geom"
)

// Padding is the border around the playfield in pixels.
const Padding = 8

// Board is everything needed to draw one moment of a game.
type Board struct {
	Width, Height float64 // playfield size in area units
	Start         geom.Quad
	Area          geom.Quad
	Anchor        int
	Balls         []geom.Point
	BallRadius    float64
	Discarded     []geom.Triangle // regions already cut away, oldest first
	Preview       *geom.Line      // pending cut from the anchor to its exit
	Slasher       *geom.Point
}

// Render draws b at scale pixels per area unit.
func Render(b Board, scale float64) (image.Image, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("export: invalid scale %g", scale)
	}
	if b.Width <= 0 || b.Height <= 0 {
		return nil, fmt.Errorf("export: invalid board size %gx%g", b.Width, b.Height)
	}

	width := int(scale*b.Width) + Padding*2
	height := int(scale*b.Height) + Padding*2
	c := gg.NewContext(width, height)

	c.SetRGB(0.05, 0.05, 0.08)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Area units are y-down like image space, so no flip is needed.
	c.Translate(Padding, Padding)
	c.Scale(scale, scale)

	c.SetLineWidth(1)
	polygon(c, b.Start[:]...)
	c.SetRGB(0.25, 0.25, 0.3)
	c.Stroke()

	for _, t := range b.Discarded {
		polygon(c, t.A, t.B, t.C)
		c.SetRGBA(0.6, 0.1, 0.1, 0.35)
		c.Fill()
	}

	polygon(c, b.Area[:]...)
	c.SetRGB(0, 0.35, 0.35)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.SetLineWidth(2 / scale)
	c.Stroke()

	anchor := b.Area[geom.CircularIndex(b.Anchor, 4)]
	c.DrawCircle(anchor.X, anchor.Y, 3/scale+1)
	c.SetRGB(1, 0.85, 0)
	c.Fill()

	if b.Preview != nil {
		c.MoveTo(b.Preview.P.X, b.Preview.P.Y)
		c.LineTo(b.Preview.Q.X, b.Preview.Q.Y)
		c.SetRGB(0.3, 1, 0.3)
		c.SetLineWidth(1.5 / scale)
		c.Stroke()
	}

	r := b.BallRadius
	if r <= 0 {
		r = 1
	}
	for _, p := range b.Balls {
		c.DrawCircle(p.X, p.Y, r)
		c.SetRGB(1, 0.3, 0.3)
		c.Fill()
	}

	if b.Slasher != nil {
		c.DrawCircle(b.Slasher.X, b.Slasher.Y, r)
		c.SetRGB(1, 1, 1)
		c.Fill()
	}

	return c.Image(), nil
}

func polygon(c *gg.Context, pts ...geom.Point) {
	c.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}

// WritePNG renders b and saves it at path, creating parent directories.
func WritePNG(b Board, scale float64, path string) error {
	img, err := Render(b, scale)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: cannot create directory: %w", err)
		}
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("export: cannot write %s: %w", path, err)
	}
	return nil
}

// EncodePNG renders b and writes PNG bytes to w.
func EncodePNG(b Board, scale float64, w io.Writer) error {
	img, err := Render(b, scale)
	if err != nil {
		return err
	}
	c := gg.NewContextForImage(img)
	if err := c.EncodePNG(w); err != nil {
		return fmt.Errorf("export: cannot encode png: %w", err)
	}
	return nil
}
