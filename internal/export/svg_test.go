package export

import (
	"image/color"
	"strings"
	"testing"

	"github.com/san-kum/ballpit/internal/arena"
)

func TestArenaToSVG(t *testing.T) {
	bounds := arena.Bounds{Width: 800, Height: 600, Floor: 90}
	balls := []arena.BallView{
		{X: 100, Y: 90, Size: 40, Color: color.RGBA{R: 255, A: 255}},
		{X: 400, Y: 500, Size: 20, Color: color.RGBA{G: 255, B: 16, A: 255}},
	}

	svg := ArenaToSVG(balls, bounds, color.RGBA{R: 250, G: 240, B: 230, A: 255})

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("not a complete SVG document")
	}
	if n := strings.Count(svg, "<circle"); n != 2 {
		t.Errorf("expected 2 circles, got %d", n)
	}
	// resting on the bar: center y = 600 - (90+20)
	if !strings.Contains(svg, `cx="120.0" cy="490.0" r="20.0" fill="#ff0000"`) {
		t.Errorf("first ball misplaced:\n%s", svg)
	}
	if !strings.Contains(svg, `fill="#00ff10"`) {
		t.Error("second ball color missing")
	}
	if !strings.Contains(svg, `fill="#faf0e6"`) {
		t.Error("background color missing")
	}
}

func TestArenaToSVGEmpty(t *testing.T) {
	svg := ArenaToSVG(nil, arena.Bounds{Width: 10, Height: 10}, color.RGBA{})
	if strings.Contains(svg, "<circle") {
		t.Error("empty arena should draw no balls")
	}
}

func TestTimelineToSVG(t *testing.T) {
	if TimelineToSVG([]float64{1}, 100, 50, "#fff") != "" {
		t.Error("single point should produce no plot")
	}

	svg := TimelineToSVG([]float64{0, 5, 3, 8}, 300, 100, "#00ffcc")
	if !strings.Contains(svg, `stroke="#00ffcc"`) {
		t.Error("stroke color missing")
	}
	if strings.Count(svg, " L") != 3 {
		t.Errorf("expected 3 line segments in %s", svg)
	}
}
