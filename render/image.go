package render

import (
	"fmt"
	"image"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// Blit renders an image into the world-coordinate extent using half-block
// cells: every cell shows two vertically stacked pixels, the upper one as
// the foreground of '▀' and the lower one as the background.
func (ctx *Context) Blit(img image.Image, extent Bounds) {
	cx0, cy0 := ctx.ToCell(extent.XMin, extent.YMax)
	cx1, cy1 := ctx.ToCell(extent.XMax, extent.YMin)
	if cx1 < cx0 {
		cx0, cx1 = cx1, cx0
	}
	if cy1 < cy0 {
		cy0, cy1 = cy1, cy0
	}
	cw := cx1 - cx0 + 1
	ch := cy1 - cy0 + 1
	if cw < 1 || ch < 1 {
		return
	}

	// Two pixel rows per cell row.
	scaled := image.NewRGBA(image.Rect(0, 0, cw, ch*2))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	for y := 0; y < ch; y++ {
		cy := cy0 + y
		if cy < ctx.Y || cy >= ctx.Y+ctx.H {
			continue
		}
		for x := 0; x < cw; x++ {
			cx := cx0 + x
			if cx < ctx.X || cx >= ctx.X+ctx.W {
				continue
			}
			top := hexColor(scaled.At(x, y*2))
			bot := hexColor(scaled.At(x, y*2+1))
			st := lipgloss.NewStyle().Foreground(top).Background(bot)
			ctx.Canvas.SetCell(cx, cy, '▀', st)
		}
	}
}

func hexColor(c interface{ RGBA() (r, g, b, a uint32) }) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", uint8(r>>8), uint8(g>>8), uint8(b>>8)))
}
