// Package scene owns the per-view lifecycle: it threads the graph model
// through cluster detection, layout, bounded force refinement, and
// rendering, and routes pointer gestures at the shared state. Everything is
// single-threaded and frame-driven; the caller invokes Step once per frame.
package scene

import (
	"time"

	"github.com/quaygrc/assetgraph/pkg/cluster"
	"github.com/quaygrc/assetgraph/pkg/config"
	"github.com/quaygrc/assetgraph/pkg/graph"
	"github.com/quaygrc/assetgraph/pkg/interact"
	"github.com/quaygrc/assetgraph/pkg/layout"
	"github.com/quaygrc/assetgraph/pkg/logging"
	"github.com/quaygrc/assetgraph/pkg/metrics"
	"github.com/quaygrc/assetgraph/pkg/render"
	"github.com/quaygrc/assetgraph/pkg/viewport"
)

// Options configures a Scene. Zero values fall back to defaults.
type Options struct {
	Config  *config.Config
	Logger  logging.Logger
	Metrics *metrics.Registry
}

// Scene is the frame scheduler and owner of the view's mutable state: the
// current graph, its position table, the viewport, and the gesture
// controller all live here and are rebuilt on every data load.
type Scene struct {
	cfg *config.Config
	log logging.Logger
	met *metrics.Registry

	builder  *layout.Hierarchical
	refiner  *layout.Refiner
	renderer *render.Renderer

	g   *graph.Graph
	pos graph.PositionTable
	vp  *viewport.Viewport
	ctl *interact.Controller

	width, height float64
	ticks         int
	running       bool
}

// New creates an empty scene; nothing is scheduled until Load succeeds.
func New(opts Options) *Scene {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}

	style := render.DefaultStyle()
	style.GridStep = cfg.Render.GridStep
	style.NodeRadius = cfg.Render.NodeRadius
	style.NameLimit = cfg.Render.NameLimit

	vp := viewport.New()
	return &Scene{
		cfg: cfg,
		log: log,
		met: opts.Metrics,
		builder: layout.NewHierarchical(layout.Config{
			NodeSpacing:  cfg.Layout.NodeSpacing,
			LayerSpacing: cfg.Layout.LayerSpacing,
			ClusterGap:   cfg.Layout.ClusterGap,
		}),
		refiner: layout.NewRefiner(layout.Physics{
			Repulsion:   cfg.Physics.Repulsion,
			Spring:      cfg.Physics.Spring,
			IdealLength: cfg.Physics.IdealLength,
			Damping:     cfg.Physics.Damping,
		}),
		renderer: render.NewRenderer(style),
		vp:       vp,
		ctl:      interact.New(vp, cfg.Render.NodeRadius),
	}
}

// Load replaces the view's data: dangling edges are filtered, clusters
// detected, the initial layout computed, and a fresh position table
// installed. The tick counter resets and the viewport fits the whole graph.
// An empty payload stops the scheduler instead.
func (s *Scene) Load(p *graph.Payload, width, height float64) {
	s.width, s.height = width, height
	s.ticks = 0

	g := graph.New(p.Nodes, p.Edges)
	if len(g.Nodes) == 0 {
		s.g = nil
		s.pos = nil
		s.running = false
		s.ctl.Bind(g, graph.PositionTable{})
		s.log.Info("empty graph, frame loop stopped")
		return
	}

	start := time.Now()
	clusters := cluster.Detect(g)
	pos := s.builder.Compute(g)
	elapsed := time.Since(start)

	s.g = g
	s.pos = pos
	s.running = true
	s.ctl.Bind(g, pos)
	s.FitAll()

	s.met.ObserveLayout(elapsed, len(g.Nodes), len(g.Edges), len(clusters), g.DroppedEdges)
	s.log.Info("graph loaded",
		logging.F("nodes", len(g.Nodes)),
		logging.F("edges", len(g.Edges)),
		logging.F("clusters", len(clusters)),
		logging.F("dropped_edges", g.DroppedEdges),
		logging.F("layout_ms", elapsed.Milliseconds()),
	)
}

// Step runs one frame: a refinement tick while the bounded run lasts, then
// a render onto c. A nil canvas skips drawing (used when settling
// headless). No-op while the scene is stopped.
func (s *Scene) Step(c render.Canvas) {
	if !s.running {
		return
	}
	start := time.Now()

	if s.ticks < s.cfg.TickCap {
		s.refiner.Tick(s.g, s.pos)
		s.ticks++
		s.met.RecordTick()
		if s.ticks == s.cfg.TickCap {
			s.log.Debug("refinement settled", logging.F("ticks", s.ticks))
		}
	}

	if c != nil {
		selected, _ := s.ctl.Selected()
		s.renderer.Frame(c, s.g, s.pos, s.vp, selected)
		s.met.RecordFrame(time.Since(start))
	}
}

// Settle runs the remaining refinement ticks without rendering.
func (s *Scene) Settle() {
	for s.running && s.ticks < s.cfg.TickCap {
		s.Step(nil)
	}
}

// Stop halts the frame loop; Step becomes a no-op until the next Load.
func (s *Scene) Stop() {
	s.running = false
}

// Running reports whether Step does work.
func (s *Scene) Running() bool { return s.running }

// Ticks returns the refinement ticks executed since the last Load.
func (s *Scene) Ticks() int { return s.ticks }

// Graph returns the current graph, nil when empty.
func (s *Scene) Graph() *graph.Graph { return s.g }

// Positions returns the live position table.
func (s *Scene) Positions() graph.PositionTable { return s.pos }

// Viewport returns the live viewport.
func (s *Scene) Viewport() *viewport.Viewport { return s.vp }

// Selected returns the currently inspected node.
func (s *Scene) Selected() (graph.Node, bool) {
	if s.g == nil {
		return graph.Node{}, false
	}
	id, ok := s.ctl.Selected()
	if !ok {
		return graph.Node{}, false
	}
	return s.g.Node(id)
}

// Resize updates the viewport pixel size used by fit-all.
func (s *Scene) Resize(width, height float64) {
	s.width, s.height = width, height
}

// PointerDown forwards a pointer press to the gesture controller.
func (s *Scene) PointerDown(sx, sy float64) { s.ctl.PointerDown(sx, sy) }

// PointerMove forwards pointer motion.
func (s *Scene) PointerMove(sx, sy float64) { s.ctl.PointerMove(sx, sy) }

// PointerUp ends the active gesture.
func (s *Scene) PointerUp() { s.ctl.PointerUp() }

// Wheel zooms toward the pointer.
func (s *Scene) Wheel(sx, sy, factor float64) { s.ctl.Wheel(sx, sy, factor) }

// ZoomIn zooms toward the view center.
func (s *Scene) ZoomIn() { s.vp.ZoomAt(s.width/2, s.height/2, 1.2) }

// ZoomOut zooms away from the view center.
func (s *Scene) ZoomOut() { s.vp.ZoomAt(s.width/2, s.height/2, 1/1.2) }

// FitAll reframes the viewport around the whole graph.
func (s *Scene) FitAll() {
	b, ok := s.pos.Bounds()
	if !ok {
		return
	}
	s.vp.FitToBounds(b, s.width, s.height)
}
