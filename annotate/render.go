package annotate

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/maastricht-university/gesture-pipeline/emotion"
)

var (
	Green = color.RGBA{0, 255, 0, 255}
	Black = color.RGBA{0, 0, 0, 255}
)

const (
	thickness = 2
	barHeight = 35
)

// Render draws a box and label bar for every face and returns the labels
// in face order.
func Render(dst draw.Image, faces []emotion.Face) []string {
	labels := make([]string, 0, len(faces))
	for _, f := range faces {
		label := f.Label()
		labels = append(labels, label)

		strokeRect(dst, f.Box, Green, thickness)

		bar := image.Rect(f.Box.Min.X, f.Box.Min.Y-barHeight, f.Box.Max.X, f.Box.Min.Y)
		fillRect(dst, bar, Green)

		drawText(dst, label, image.Pt(f.Box.Min.X+5, f.Box.Min.Y-10), Black)
	}
	return labels
}

func fillRect(dst draw.Image, r image.Rectangle, c color.Color) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func strokeRect(dst draw.Image, r image.Rectangle, c color.Color, t int) {
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+t), c)
	fillRect(dst, image.Rect(r.Min.X, r.Max.Y-t, r.Max.X, r.Max.Y), c)
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+t, r.Max.Y), c)
	fillRect(dst, image.Rect(r.Max.X-t, r.Min.Y, r.Max.X, r.Max.Y), c)
}

// drawText writes s with its baseline at p.
func drawText(dst draw.Image, s string, p image.Point, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(p.X, p.Y),
	}
	d.DrawString(s)
}
