// Package runtime wires one frame's collaborators together: the entity
// collection, the layout tree, the imm input/focus context, and the
// layout solver, the same sequential-driver role engine/world.go's
// World.Update plays for systems, generalized from "run every system in
// registration order" to "run input, then widget calls (each of which
// draws itself), then the layout solve".
package runtime

import (
	"log/slog"

	"github.com/ashenforge/ecsui/config"
	"github.com/ashenforge/ecsui/ecs"
	"github.com/ashenforge/ecsui/imm"
	"github.com/ashenforge/ecsui/layout"
	"github.com/ashenforge/ecsui/render"
	"github.com/ashenforge/ecsui/theme"
	"github.com/ashenforge/ecsui/uicomponent"
	"github.com/ashenforge/ecsui/widget"
)

// Root is the single top-level entity every widget call ultimately
// nests under, created once by New and never reused for anything else.
const Root ecs.EntityID = 1

// Frame bundles everything one running application needs across
// frames: the collection/tree pair widgets resolve against, the imm
// input context, the widget call surface, and the layout solver that
// turns the tree's desired sizes into world-space rectangles each
// frame. Mirrors World's role of bundling ResourceStore/Components/
// systems behind one Update call.
type Frame struct {
	Collection *ecs.EntityCollection
	Tree       *uicomponent.Tree
	Imm        *imm.Context
	Widgets    *widget.Context
	solver     *layout.Solver
	logger     *slog.Logger
}

// New builds a Frame rooted at Root, sized to resolution and sized/
// snapped per cfg, ready for BeginFrame/EndFrame calls around a
// frame's widget construction.
func New(cfg config.Config, resolution layout.Resolution, th theme.Theme, r render.Renderer, fonts render.FontBackend, logger *slog.Logger) *Frame {
	if logger == nil {
		logger = slog.Default()
	}
	collection := ecs.NewEntityCollection(cfg.AssignHandlesOnCreate).WithLogger(logger)
	tree := uicomponent.NewTree(collection)
	immCtx := imm.NewContext(logger)

	rootEntity := collection.CreatePermanentEntity()
	if rootEntity.ID != Root {
		logger.Warn("runtime: root entity id deviated from the expected constant", "got", rootEntity.ID)
	}
	rootNode := uicomponent.New(rootEntity.ID)
	rootNode.WithDesired(uicomponent.AxisX, uicomponent.Pixels(resolution.Width))
	rootNode.WithDesired(uicomponent.AxisY, uicomponent.Pixels(resolution.Height))
	tree.Attach(rootEntity, rootNode)
	collection.MergeEntityArrays()

	opts := layout.Options{
		Resolution:   resolution,
		GridSnap:     cfg.GridSnapUnit > 0,
		GridSnapUnit: cfg.GridSnapUnit,
		UIScale:      cfg.UIScale,
		Measurer:     fonts,
		Logger:       logger,
	}
	solver := layout.NewSolver(collection, tree, opts)

	return &Frame{
		Collection: collection,
		Tree:       tree,
		Imm:        immCtx,
		Widgets:    widget.New(collection, tree, immCtx, th, r, fonts, logger),
		solver:     solver,
		logger:     logger,
	}
}

// BeginFrame copies the host's input snapshot into the imm context.
// Call this before any widget calls for the frame.
func (f *Frame) BeginFrame(dt float64, mouse imm.MouseState, actions imm.ActionSet, textInput []rune) {
	f.Imm.BeginFrame(dt, mouse, actions, textInput)
}

// EndFrame merges any entities widget calls created this frame,
// resolves tab traversal, and runs the six-pass layout solve so the
// rectangles widgets read next frame (via Rect()) reflect this frame's
// tree shape. The one-frame lag between "tree built" and "rect
// available" is widget's documented convention, not a bug here.
func (f *Frame) EndFrame() {
	f.Collection.MergeEntityArrays()
	f.Imm.EndFrame()
	f.solver.Solve(Root)
	f.Collection.Cleanup()
}

// Resize updates the root node's desired size, taking effect on the
// next EndFrame's solve.
func (f *Frame) Resize(width, height float64) {
	node, ok := f.Tree.Get(Root)
	if !ok {
		return
	}
	node.WithDesired(uicomponent.AxisX, uicomponent.Pixels(width))
	node.WithDesired(uicomponent.AxisY, uicomponent.Pixels(height))
}
