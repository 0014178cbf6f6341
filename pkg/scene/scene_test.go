package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quaygrc/assetgraph/pkg/config"
	"github.com/quaygrc/assetgraph/pkg/graph"
	"github.com/quaygrc/assetgraph/pkg/render"
)

func payload() *graph.Payload {
	return &graph.Payload{
		Nodes: []graph.Node{
			{ID: "a", Name: "App"},
			{ID: "b", Name: "DB"},
			{ID: "c", Name: "Backup DB"},
		},
		Edges: []graph.Edge{
			{ID: "e1", Source: "a", Target: "b", Type: graph.RelationDependsOn},
			{ID: "e2", Source: "c", Target: "b", Type: graph.RelationBackupOf},
			{ID: "e3", Source: "a", Target: "gone", Type: graph.RelationSupports},
		},
	}
}

func TestLoadBuildsPositionsForEveryNode(t *testing.T) {
	s := New(Options{})
	s.Load(payload(), 800, 600)

	require.True(t, s.Running())
	assert.Len(t, s.Positions(), 3)
	assert.Equal(t, 0, s.Ticks())
	assert.Equal(t, 1, s.Graph().DroppedEdges)
}

func TestEmptyPayloadStopsScheduler(t *testing.T) {
	s := New(Options{})
	s.Load(&graph.Payload{}, 800, 600)

	assert.False(t, s.Running())

	// Step must be a harmless no-op.
	rec := render.NewRecorder(800, 600)
	s.Step(rec)
	assert.Empty(t, rec.Ops)
}

func TestStepRefinesUntilTickCapThenOnlyRenders(t *testing.T) {
	cfg := config.Default()
	cfg.TickCap = 5
	s := New(Options{Config: cfg})
	s.Load(payload(), 800, 600)

	rec := render.NewRecorder(800, 600)
	for i := 0; i < 8; i++ {
		s.Step(rec)
	}

	assert.Equal(t, 5, s.Ticks(), "ticks stop at the cap")
	assert.Equal(t, 8, rec.Count(render.OpClear), "every step renders")
}

func TestReloadResetsTickCounter(t *testing.T) {
	cfg := config.Default()
	cfg.TickCap = 5
	s := New(Options{Config: cfg})

	s.Load(payload(), 800, 600)
	s.Settle()
	require.Equal(t, 5, s.Ticks())

	s.Load(payload(), 800, 600)
	assert.Equal(t, 0, s.Ticks())
	assert.True(t, s.Running())
}

func TestStopHaltsFrames(t *testing.T) {
	s := New(Options{})
	s.Load(payload(), 800, 600)
	s.Stop()

	rec := render.NewRecorder(800, 600)
	s.Step(rec)
	assert.Empty(t, rec.Ops)
}

func TestSelectionFlow(t *testing.T) {
	s := New(Options{})
	s.Load(payload(), 800, 600)

	// Drag node a wherever fit-all projected it.
	p := s.Positions()["a"]
	sx, sy := s.Viewport().WorldToScreen(p.X, p.Y)
	s.PointerDown(sx, sy)

	n, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "a", n.ID)
	assert.True(t, p.Fixed)

	s.PointerUp()
	assert.False(t, p.Fixed)

	// Background press clears the selection.
	s.PointerDown(-10000, -10000)
	_, ok = s.Selected()
	assert.False(t, ok)
}

func TestDraggedNodeIgnoredByRefiner(t *testing.T) {
	s := New(Options{})
	s.Load(payload(), 800, 600)

	p := s.Positions()["b"]
	sx, sy := s.Viewport().WorldToScreen(p.X, p.Y)
	s.PointerDown(sx, sy)

	x, y := p.X, p.Y
	for i := 0; i < 20; i++ {
		s.Step(nil)
	}
	assert.Equal(t, x, p.X)
	assert.Equal(t, y, p.Y)
}

func TestZoomActionsStayClamped(t *testing.T) {
	s := New(Options{})
	s.Load(payload(), 800, 600)

	for i := 0; i < 50; i++ {
		s.ZoomIn()
	}
	assert.LessOrEqual(t, s.Viewport().Zoom, 5.0)
	for i := 0; i < 100; i++ {
		s.ZoomOut()
	}
	assert.GreaterOrEqual(t, s.Viewport().Zoom, 0.15)
}
