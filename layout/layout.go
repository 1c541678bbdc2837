// Package layout implements AutoLayout, the six-pass constraint solver
// that turns a uicomponent.Tree's desired sizes into world-space
// rectangles. Grounded in style on terminal/tui/layout.go's
// SplitH/SplitV/GridLayout (small top-level pass functions, explicit
// rounding-to-last-child-gets-remainder distribution), generalized from
// that file's single-pass ratio splits into a full multi-pass
// constraint solver.
package layout

import (
	"log/slog"

	"github.com/ashenforge/ecsui/ecs"
	"github.com/ashenforge/ecsui/render"
	"github.com/ashenforge/ecsui/uicomponent"
)

// Resolution is the viewport size layout measures ScreenPercent against.
type Resolution struct {
	Width, Height float64
}

// baselineHeight is the reference resolution GridSnapUnit is defined
// against; snapping at other resolutions scales the unit accordingly.
const baselineHeight = 720

// maxViolationIterations bounds the shrink-solving loop in Pass 4.
const maxViolationIterations = 10

// Options configures a single AutoLayout pass.
type Options struct {
	Resolution   Resolution
	GridSnap     bool
	GridSnapUnit float64 // pixels at the 720p baseline; defaults to 4
	UIScale      float64
	Measurer     render.FontBackend
	Logger       *slog.Logger
}

// Solver runs AutoLayout over one Tree rooted at a single node.
type Solver struct {
	collection *ecs.EntityCollection
	tree       *uicomponent.Tree
	opts       Options
}

// NewSolver builds a Solver bound to a collection/tree pair.
func NewSolver(c *ecs.EntityCollection, tree *uicomponent.Tree, opts Options) *Solver {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.UIScale == 0 {
		opts.UIScale = 1
	}
	if opts.GridSnapUnit == 0 {
		opts.GridSnapUnit = 4
	}
	return &Solver{collection: c, tree: tree, opts: opts}
}

// Solve runs all six passes rooted at root.
func (s *Solver) Solve(root ecs.EntityID) {
	node, ok := s.tree.Get(root)
	if !ok {
		return
	}
	s.pass0Reset(node)
	s.pass1Standalone(node)
	s.pass2ParentDependent(node, nil)
	s.pass3ChildDependent(node)
	s.pass4ViolationSolve(node)
	s.pass5Position(node, 0, 0)
	s.pass6Absolute(node, 0, 0)
}

func (s *Solver) children(n *uicomponent.UIComponent) []*uicomponent.UIComponent {
	out := make([]*uicomponent.UIComponent, 0, len(n.Children()))
	for _, id := range n.Children() {
		if c, ok := s.tree.Get(id); ok && !c.ShouldHide {
			out = append(out, c)
		}
	}
	return out
}

// gridSnapTolerance returns the grid-snap tolerance for a container
// with childCount children, scaled up for larger child counts to
// avoid false wrap triggers on Children-sized containers.
func (s *Solver) gridSnapTolerance(childCount int) float64 {
	if !s.opts.GridSnap {
		return 0
	}
	unit := s.opts.GridSnapUnit * (s.opts.Resolution.Height / baselineHeight)
	if unit <= 0 {
		unit = s.opts.GridSnapUnit
	}
	if childCount > 1 {
		return unit * float64(childCount)
	}
	return unit
}

func (s *Solver) snap(v float64) float64 {
	if !s.opts.GridSnap {
		return v
	}
	unit := s.opts.GridSnapUnit * (s.opts.Resolution.Height / baselineHeight)
	if unit <= 0 {
		return v
	}
	return float64(round(v/unit)) * unit
}

func round(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}
