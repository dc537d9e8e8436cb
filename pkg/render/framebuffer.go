// Package render draws echomath geometry into a pixel buffer and onto the
// terminal.
package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Framebuffer is a row-major pixel grid. One terminal cell shows two
// vertically stacked pixels, so Height is twice the row count.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []color.RGBA
}

// NewFramebuffer creates a framebuffer of width x height pixels.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{}
	fb.Resize(width, height)
	return fb
}

// ForTerminal creates a framebuffer covering cols x rows terminal cells.
func ForTerminal(cols, rows int) *Framebuffer {
	return NewFramebuffer(cols, rows*2)
}

// Resize changes the dimensions, reusing the backing slice when it is large
// enough. Contents are undefined afterwards; call Clear.
func (fb *Framebuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	n := width * height
	if cap(fb.Pixels) >= n {
		fb.Pixels = fb.Pixels[:n]
	} else {
		fb.Pixels = make([]color.RGBA, n)
	}
	fb.Width, fb.Height = width, height
}

// Clear fills the framebuffer with c.
func (fb *Framebuffer) Clear(c color.RGBA) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

func (fb *Framebuffer) inside(x, y int) bool {
	return x >= 0 && x < fb.Width && y >= 0 && y < fb.Height
}

// SetPixel sets the pixel at (x, y). Out of range writes are dropped.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if fb.inside(x, y) {
		fb.Pixels[y*fb.Width+x] = c
	}
}

// GetPixel returns the pixel at (x, y), or transparent black out of range.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if !fb.inside(x, y) {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// DrawLine draws from (x0, y0) to (x1, y1) inclusive with Bresenham's
// algorithm.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Count returns how many pixels equal c.
func (fb *Framebuffer) Count(c color.RGBA) int {
	n := 0
	for _, p := range fb.Pixels {
		if p == c {
			n++
		}
	}
	return n
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToImage copies the framebuffer into an image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := range fb.Height {
		for x := range fb.Width {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// SavePNG writes the framebuffer to path as a PNG.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, fb.ToImage()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
