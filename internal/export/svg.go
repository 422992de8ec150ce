package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/ballsim/internal/sim"
)

// palette cycles across bodies so neighboring trails stay distinguishable.
var palette = []string{"#00ff88", "#ff5577", "#55aaff", "#ffcc33", "#cc77ff", "#66ddcc"}

// TrailsToSVG renders every body's trajectory across the recorded frames as
// an SVG path, drawn in window coordinates (world y up, SVG y down). Bodies
// present in only one frame are skipped; a path needs at least two points.
func TrailsToSVG(frames []sim.Frame, windowWidth, windowHeight, scale float64) string {
	if len(frames) == 0 {
		return ""
	}

	trails := make(map[int64][][2]float64)
	var order []int64
	for _, f := range frames {
		for _, b := range f.Bodies {
			if _, seen := trails[b.ID]; !seen {
				order = append(order, b.ID)
			}
			trails[b.ID] = append(trails[b.ID], [2]float64{b.X * scale, b.Y * scale})
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, windowWidth, windowHeight, windowWidth, windowHeight))

	for i, id := range order {
		points := trails[id]
		if len(points) < 2 {
			continue
		}
		color := palette[i%len(palette)]
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))
		for j, p := range points {
			x := p[0] + windowWidth/2
			y := windowHeight/2 - p[1]
			if j == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
