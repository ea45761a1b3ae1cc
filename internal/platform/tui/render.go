package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilerunner/internal/core"
)

// halfBlock shows the upper pixel in the foreground and the lower one in
// the background, so each terminal cell carries two frame rows.
const halfBlock = "▀"

// frameScale returns the smallest integer downscale that fits a frame into
// cols x rows terminal cells.
func frameScale(fw, fh, cols, rows int) int {
	if cols < 1 || rows < 1 {
		return 1
	}
	s := 1
	for fw/s > cols || (fh/s+1)/2 > rows {
		s++
		if s >= fw && s >= fh {
			break
		}
	}
	return s
}

// RenderFrame converts an RGBA frame to a truecolor half-block string that
// fits in cols x rows cells. Adjacent cells with the same colors share one
// style to minimize ANSI escape sequences.
func RenderFrame(f *core.Frame, cols, rows int) string {
	scale := frameScale(f.Width(), f.Height(), cols, rows)
	w := f.Width() / scale
	h := f.Height() / scale
	lines := (h + 1) / 2

	var sb strings.Builder
	sb.Grow(w*lines*4 + lines)

	for l := range lines {
		if l > 0 {
			sb.WriteByte('\n')
		}
		top := 2 * l * scale
		bottom := (2*l + 1) * scale

		x := 0
		for x < w {
			fg := f.At(x*scale, top)
			bg := pixelOrBlack(f, x*scale, bottom)

			n := 0
			for x < w && f.At(x*scale, top) == fg && pixelOrBlack(f, x*scale, bottom) == bg {
				n++
				x++
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hex(fg))).
				Background(lipgloss.Color(hex(bg)))
			sb.WriteString(style.Render(strings.Repeat(halfBlock, n)))
		}
	}
	return sb.String()
}

func pixelOrBlack(f *core.Frame, x, y int) color.RGBA {
	if y >= f.Height() {
		return color.RGBA{A: 255}
	}
	return f.At(x, y)
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
