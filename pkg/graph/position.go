package graph

// Position is the mutable layout state for one node. X/Y are world-space
// coordinates; VX/VY accumulate velocity during force refinement. Fixed is
// set while the node is pinned by an active drag: a fixed node must never
// be moved by the refiner.
type Position struct {
	X, Y   float64
	VX, VY float64
	Fixed  bool
}

// PositionTable maps node id to its position record. The table is created
// once per data load and mutated in place; a fresh load discards it
// entirely (no incremental diffing).
type PositionTable map[string]*Position

// Bounds is an axis-aligned bounding box in world space.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the horizontal extent of the box.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent of the box.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// CenterX returns the horizontal center of the box.
func (b Bounds) CenterX() float64 { return (b.MinX + b.MaxX) / 2 }

// CenterY returns the vertical center of the box.
func (b Bounds) CenterY() float64 { return (b.MinY + b.MaxY) / 2 }

// Bounds scans the table and returns the bounding box of all positions.
// ok is false for an empty table.
func (t PositionTable) Bounds() (b Bounds, ok bool) {
	first := true
	for _, p := range t {
		if first {
			b = Bounds{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
			first = false
			continue
		}
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}
	return b, !first
}
