// Package viewport converts between world coordinates (layout space) and
// screen coordinates (pointer and drawing space) under a pan/zoom transform.
package viewport

import (
	"math"

	"github.com/quaygrc/assetgraph/pkg/graph"
)

// Zoom clamp bounds. Operations that would violate them clamp, never reject.
const (
	MinZoom = 0.15
	MaxZoom = 5.0

	// FitMaxZoom caps fit-all so small graphs are not blown up past 1.5x.
	FitMaxZoom = 1.5

	// FitPadding is the world-space margin added around the bounding box
	// when fitting.
	FitPadding = 80
)

// Viewport holds the current zoom factor and pan offset. Pan is the
// world-to-screen translation in screen pixels at the current zoom.
type Viewport struct {
	Zoom       float64
	PanX, PanY float64
}

// New returns a viewport at identity: zoom 1, no pan.
func New() *Viewport {
	return &Viewport{Zoom: 1}
}

// WorldToScreen projects a world point to screen space.
func (v *Viewport) WorldToScreen(x, y float64) (float64, float64) {
	return x*v.Zoom + v.PanX, y*v.Zoom + v.PanY
}

// ScreenToWorld is the inverse projection. It satisfies
// ScreenToWorld(WorldToScreen(p)) == p up to floating-point epsilon.
func (v *Viewport) ScreenToWorld(sx, sy float64) (float64, float64) {
	return (sx - v.PanX) / v.Zoom, (sy - v.PanY) / v.Zoom
}

// ZoomAt multiplies zoom by factor, clamps it, and recomputes pan so the
// world point under (sx, sy) stays visually fixed.
func (v *Viewport) ZoomAt(sx, sy, factor float64) {
	next := clampZoom(v.Zoom * factor)
	scale := next / v.Zoom
	v.PanX = sx - (sx-v.PanX)*scale
	v.PanY = sy - (sy-v.PanY)*scale
	v.Zoom = next
}

// FitToBounds computes the zoom that fits the padded bounding box inside a
// viewport of the given pixel size, then centers the pan on the box center.
func (v *Viewport) FitToBounds(b graph.Bounds, width, height float64) {
	w := b.Width() + 2*FitPadding
	h := b.Height() + 2*FitPadding
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}

	zoom := math.Min(width/w, height/h)
	zoom = math.Min(zoom, FitMaxZoom)
	zoom = math.Max(zoom, MinZoom)

	v.Zoom = zoom
	v.PanX = width/2 - b.CenterX()*zoom
	v.PanY = height/2 - b.CenterY()*zoom
}

func clampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}
