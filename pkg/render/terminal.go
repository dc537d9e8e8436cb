package render

import (
	"fmt"
	"image/color"
	"strings"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/lucasb-eyer/go-colorful"
)

// upperHalf is drawn with the top pixel as foreground and the bottom pixel
// as background.
const upperHalf = "▀"

// Draw implements uv.Drawable. Terminal row r shows framebuffer rows 2r and
// 2r+1.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		top := (row - area.Min.Y) * 2
		if top >= fb.Height {
			break
		}
		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= fb.Width {
				break
			}
			scr.SetCell(col, row, &uv.Cell{
				Content: upperHalf,
				Width:   1,
				Style: uv.Style{
					Fg: cellColor(fb.GetPixel(x, top)),
					Bg: cellColor(fb.GetPixel(x, top+1)),
				},
			})
		}
	}
}

// cellColor maps transparent pixels to the terminal default.
func cellColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil
	}
	return c
}

// Color is a framebuffer pixel value.
type Color = color.RGBA

var (
	ColorBlack = color.RGBA{0, 0, 0, 255}
	ColorWhite = color.RGBA{255, 255, 255, 255}
	ColorRed   = color.RGBA{255, 0, 0, 255}
	ColorGreen = color.RGBA{0, 255, 0, 255}
	ColorBlue  = color.RGBA{0, 0, 255, 255}
	ColorCyan  = color.RGBA{0, 255, 255, 255}
	ColorGray  = color.RGBA{128, 128, 128, 255}
)

// RGB creates an opaque color.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// ParseColor parses a "#rgb"/"#rrggbb" hex color or an "R,G,B" triple.
func ParseColor(s string) (color.RGBA, error) {
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return color.RGBA{}, err
		}
		r, g, b := c.RGB255()
		return RGB(r, g, b), nil
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%d,%d,%d", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return RGB(r, g, b), nil
}
