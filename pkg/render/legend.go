package render

import (
	"strings"

	"github.com/quaygrc/assetgraph/pkg/graph"
)

// Edge, ring, and badge colors. One fixed table per relation type; the
// legend shown by the UI chrome is generated from the same table.
var (
	ColorSelected = RGB(0x61, 0xaf, 0xef) // selection ring, blue
	ColorBadge    = RGB(0xe0, 0x6c, 0x75) // risk badge, red
	ColorRingHigh = RGB(0xe0, 0x6c, 0x75)
	ColorRingMed  = RGB(0xe5, 0xc0, 0x7b)
	ColorRingLow  = RGB(0x98, 0xc3, 0x79)
)

var edgeColors = map[graph.RelationType]Color{
	graph.RelationDependsOn:  RGB(0xe0, 0x6c, 0x75),
	graph.RelationSupports:   RGB(0x61, 0xaf, 0xef),
	graph.RelationConnectsTo: RGB(0x56, 0xb6, 0xc2),
	graph.RelationContains:   RGB(0xc6, 0x78, 0xdd),
	graph.RelationBackupOf:   RGB(0x98, 0xc3, 0x79),
	graph.RelationReplaces:   RGB(0xd1, 0x9a, 0x66),
}

var edgeLabels = map[graph.RelationType]string{
	graph.RelationDependsOn:  "depends on",
	graph.RelationSupports:   "supports",
	graph.RelationConnectsTo: "connects to",
	graph.RelationContains:   "contains",
	graph.RelationBackupOf:   "backup of",
	graph.RelationReplaces:   "replaces",
}

// EdgeColor returns the display color of a relation type.
func EdgeColor(t graph.RelationType) Color {
	if c, ok := edgeColors[t]; ok {
		return c
	}
	return RGB(0xab, 0xb2, 0xbf)
}

// EdgeLabel returns the inline label of a relation type.
func EdgeLabel(t graph.RelationType) string {
	if l, ok := edgeLabels[t]; ok {
		return l
	}
	return string(t)
}

// LegendEntry maps one relation type to its display color and label.
type LegendEntry struct {
	Type  graph.RelationType
	Label string
	Color Color
}

// Legend returns the static relation-type legend in display order.
func Legend() []LegendEntry {
	types := graph.RelationTypes()
	entries := make([]LegendEntry, len(types))
	for i, t := range types {
		entries[i] = LegendEntry{Type: t, Label: EdgeLabel(t), Color: EdgeColor(t)}
	}
	return entries
}

// CriticalityColor maps an asset's criticality classification to its ring
// color: red family for high/critical, amber for medium, green otherwise.
func CriticalityColor(name string) Color {
	switch strings.ToLower(name) {
	case "critical", "very high", "high":
		return ColorRingHigh
	case "medium", "moderate":
		return ColorRingMed
	default:
		return ColorRingLow
	}
}

// Glyph derives the one-or-two-character type glyph drawn inside a node:
// the initials of the first two words of the asset type name.
func Glyph(assetType string) string {
	fields := strings.Fields(assetType)
	if len(fields) == 0 {
		return "?"
	}
	g := string([]rune(fields[0])[0])
	if len(fields) > 1 {
		g += string([]rune(fields[1])[0])
	}
	return strings.ToUpper(g)
}
