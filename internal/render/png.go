package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"quadnet/internal/label"
	"quadnet/internal/trainer"
)

const pointRadius = 5

var labelColors = map[label.Label]color.NRGBA{
	label.Blue:   {R: 0, G: 0, B: 255, A: 255},
	label.Red:    {R: 255, G: 0, B: 0, A: 255},
	label.Green:  {R: 0, G: 128, B: 0, A: 255},
	label.Purple: {R: 128, G: 0, B: 128, A: 255},
}

// fallback colours for labels outside the reference space
var fallbackColors = []color.NRGBA{
	{R: 255, G: 165, B: 0, A: 255},
	{R: 0, G: 128, B: 128, A: 255},
	{R: 165, G: 42, B: 42, A: 255},
	{R: 128, G: 128, B: 128, A: 255},
}

// Color returns the drawing colour for l.
func Color(space label.Space, l label.Label) color.NRGBA {
	if c, ok := labelColors[l]; ok {
		return c
	}
	idx, err := space.Index(l)
	if err != nil {
		return color.NRGBA{A: 255}
	}
	return fallbackColors[idx%len(fallbackColors)]
}

// WritePNG draws the classified points on a size x size canvas covering
// [-1,1] x [-1,1], with tinted quadrants and axes, and encodes it as PNG.
func WritePNG(w io.Writer, space label.Space, classified []trainer.Classified, size int) error {
	if size <= 0 {
		return errors.New("render: size must be > 0")
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	half := size / 2
	tint := func(r image.Rectangle, c color.NRGBA) {
		c.A = 51
		draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Over)
	}
	tint(image.Rect(0, 0, half, half), color.NRGBA{G: 255})
	tint(image.Rect(half, 0, size, half), color.NRGBA{R: 225, B: 255})
	tint(image.Rect(0, half, half, size), color.NRGBA{B: 255})
	tint(image.Rect(half, half, size, size), color.NRGBA{R: 255})

	black := color.RGBA{A: 255}
	for i := 0; i < size; i++ {
		img.Set(i, half, black)
		img.Set(half, i, black)
	}

	for _, c := range classified {
		px, py := ToCanvas(c.Point.X, c.Point.Y, size)
		fillCircle(img, px, py, pointRadius, Color(space, c.Predicted))
	}

	return png.Encode(w, img)
}

// ToCanvas maps plane coordinates in [-1,1] to pixel coordinates with the
// y axis pointing up.
func ToCanvas(x, y float64, size int) (int, int) {
	s := float64(size)
	return int((x + 1) * s / 2), int(s - (y+1)*s/2)
}

func fillCircle(img *image.RGBA, cx, cy, r int, c color.Color) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			p := image.Pt(cx+dx, cy+dy)
			if p.In(img.Bounds()) {
				img.Set(p.X, p.Y, c)
			}
		}
	}
}
