package export

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/san-kum/ballpit/internal/arena"
)

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ArenaToSVG draws one frame: the tinted play area, the control bar and
// every ball. Arena y grows upward, SVG y grows downward.
func ArenaToSVG(balls []arena.BallView, bounds arena.Bounds, background color.RGBA) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<rect x="0" y="%.1f" width="%.0f" height="%.1f" fill="#1a1a1a"/>
<g>
`, bounds.Width, bounds.Height, bounds.Width, bounds.Height, hex(background),
		bounds.Height-bounds.Floor, bounds.Width, bounds.Floor))

	for _, b := range balls {
		cx := b.CenterX()
		cy := bounds.Height - b.CenterY()
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, b.Radius(), hex(b.Color)))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// TimelineToSVG plots values against their index as a single line.
func TimelineToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	minY, maxY := values[0], values[0]
	for _, v := range values {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}

	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY
	rangeX := float64(len(values) - 1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, v := range values {
		x := float64(i) / rangeX * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
