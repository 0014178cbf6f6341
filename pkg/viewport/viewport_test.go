package viewport

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/quaygrc/assetgraph/pkg/graph"
)

func TestRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("screenToWorld inverts worldToScreen", prop.ForAll(
		func(zoom, panX, panY, x, y float64) bool {
			v := &Viewport{Zoom: clampZoom(math.Abs(zoom) + MinZoom), PanX: panX, PanY: panY}
			sx, sy := v.WorldToScreen(x, y)
			wx, wy := v.ScreenToWorld(sx, sy)
			return math.Abs(wx-x) < 1e-6 && math.Abs(wy-y) < 1e-6
		},
		gen.Float64Range(0, 10),
		gen.Float64Range(-5000, 5000),
		gen.Float64Range(-5000, 5000),
		gen.Float64Range(-10000, 10000),
		gen.Float64Range(-10000, 10000),
	))

	properties.TestingRun(t)
}

func TestZoomClampProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("repeated zoomAt never escapes the clamp bounds", prop.ForAll(
		func(factors []float64) bool {
			v := New()
			for _, f := range factors {
				v.ZoomAt(100, 100, math.Abs(f)+0.01)
				if v.Zoom < MinZoom || v.Zoom > MaxZoom {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Float64Range(0, 20)),
	))

	properties.TestingRun(t)
}

func TestZoomAtIsInvertible(t *testing.T) {
	v := New()
	v.PanX, v.PanY = 42, -17

	v.ZoomAt(100, 100, 1.1)
	v.ZoomAt(100, 100, 1/1.1)

	assert.InDelta(t, 1.0, v.Zoom, 1e-9)
	assert.InDelta(t, 42.0, v.PanX, 1e-9)
	assert.InDelta(t, -17.0, v.PanY, 1e-9)
}

func TestZoomAtKeepsCursorPointFixed(t *testing.T) {
	v := New()
	v.PanX, v.PanY = 30, 60

	wx, wy := v.ScreenToWorld(100, 100)
	v.ZoomAt(100, 100, 1.7)
	wx2, wy2 := v.ScreenToWorld(100, 100)

	assert.InDelta(t, wx, wx2, 1e-9)
	assert.InDelta(t, wy, wy2, 1e-9)
}

func TestFitToBoundsCentersBox(t *testing.T) {
	v := New()
	b := graph.Bounds{MinX: -100, MinY: -50, MaxX: 300, MaxY: 150}

	v.FitToBounds(b, 800, 600)

	sx, sy := v.WorldToScreen(b.CenterX(), b.CenterY())
	assert.InDelta(t, 400.0, sx, 1e-9)
	assert.InDelta(t, 300.0, sy, 1e-9)

	// The padded box fits inside the viewport.
	x1, y1 := v.WorldToScreen(b.MinX, b.MinY)
	x2, y2 := v.WorldToScreen(b.MaxX, b.MaxY)
	assert.GreaterOrEqual(t, x1, 0.0)
	assert.GreaterOrEqual(t, y1, 0.0)
	assert.LessOrEqual(t, x2, 800.0)
	assert.LessOrEqual(t, y2, 600.0)
}

func TestFitToBoundsCapsZoomForTinyGraphs(t *testing.T) {
	v := New()
	v.FitToBounds(graph.Bounds{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}, 1920, 1080)
	assert.Equal(t, FitMaxZoom, v.Zoom)
}

func TestFitToBoundsFloorsZoomForHugeGraphs(t *testing.T) {
	v := New()
	v.FitToBounds(graph.Bounds{MinX: 0, MinY: 0, MaxX: 1e6, MaxY: 1e6}, 800, 600)
	assert.Equal(t, MinZoom, v.Zoom)
}
