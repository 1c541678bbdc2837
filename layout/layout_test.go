package layout

import (
	"testing"

	"github.com/ashenforge/ecsui/ecs"
	"github.com/ashenforge/ecsui/render"
	"github.com/ashenforge/ecsui/uicomponent"
)

func newTestTree() (*ecs.EntityCollection, *uicomponent.Tree) {
	c := ecs.NewEntityCollection(false)
	return c, uicomponent.NewTree(c)
}

func defaultOptions() Options {
	return Options{
		Resolution: Resolution{Width: 1280, Height: 720},
		UIScale:    1,
		Measurer:   render.NewMonospaceMeasurer(),
	}
}

// buildRowOfThree builds root(row, 300x100 pixels) -> three children,
// each Pixels(80) on the main axis and Percent(1) on the cross axis,
// which together fit inside root with slack left over.
func buildRowOfThree(t *testing.T) (*ecs.EntityCollection, *uicomponent.Tree, ecs.EntityID, []ecs.EntityID) {
	t.Helper()
	c, tree := newTestTree()

	rootEntity := c.CreateEntity()
	root := uicomponent.New(rootEntity.ID)
	root.FlexDirection = uicomponent.FlexRow
	root.WithDesired(uicomponent.AxisX, uicomponent.Pixels(300))
	root.WithDesired(uicomponent.AxisY, uicomponent.Pixels(100))
	tree.Attach(rootEntity, root)

	var childIDs []ecs.EntityID
	for i := 0; i < 3; i++ {
		e := c.CreateEntity()
		n := uicomponent.New(e.ID)
		n.WithDesired(uicomponent.AxisX, uicomponent.Pixels(80))
		n.WithDesired(uicomponent.AxisY, uicomponent.Percent(1))
		n.SetParent(rootEntity.ID)
		tree.Attach(e, n)
		root.AddChild(e.ID)
		childIDs = append(childIDs, e.ID)
	}

	c.MergeEntityArrays()
	return c, tree, rootEntity.ID, childIDs
}

func TestSolveBasicRowFitsChildrenWithinParent(t *testing.T) {
	c, tree, rootID, children := buildRowOfThree(t)
	s := NewSolver(c, tree, defaultOptions())
	s.Solve(rootID)

	root, _ := tree.Get(rootID)
	for _, id := range children {
		child, _ := tree.Get(id)
		x, _, w, h := child.Rect()
		if w != 80 {
			t.Errorf("child width = %v, want 80", w)
		}
		if h != 100 {
			t.Errorf("child height = %v, want 100 (Percent of root)", h)
		}
		if x < root.ComputedRel[uicomponent.AxisX] {
			t.Errorf("child x %v starts before root %v", x, root.ComputedRel[uicomponent.AxisX])
		}
	}
}

// TestChildNeverExceedsParentContentBox is the core AutoLayout
// invariant: after solving, every node's computed size on each axis
// fits within its parent's content box (size minus padding and
// margin), up to floating point slack.
func TestChildNeverExceedsParentContentBox(t *testing.T) {
	const eps = 1e-6
	c, tree := newTestTree()

	rootEntity := c.CreateEntity()
	root := uicomponent.New(rootEntity.ID)
	root.FlexDirection = uicomponent.FlexColumn
	root.WithDesired(uicomponent.AxisX, uicomponent.Pixels(200))
	root.WithDesired(uicomponent.AxisY, uicomponent.Pixels(150))
	root.WithPadding(uicomponent.Uniform(uicomponent.Pixels(10)))
	tree.Attach(rootEntity, root)

	for i := 0; i < 5; i++ {
		e := c.CreateEntity()
		n := uicomponent.New(e.ID)
		n.WithDesired(uicomponent.AxisX, uicomponent.Pixels(60))
		n.WithDesired(uicomponent.AxisY, uicomponent.PixelsElastic(50, 0.5))
		n.SetParent(rootEntity.ID)
		tree.Attach(e, n)
		root.AddChild(e.ID)
	}
	c.MergeEntityArrays()

	s := NewSolver(c, tree, defaultOptions())
	s.Solve(rootEntity.ID)

	for _, id := range root.Children() {
		child, _ := tree.Get(id)
		for axis := uicomponent.AxisX; axis <= uicomponent.AxisY; axis++ {
			box := parentContentBox(root, axis)
			if child.Computed[axis] > box+eps {
				t.Errorf("child computed[%v] = %v exceeds parent content box %v", axis, child.Computed[axis], box)
			}
			if child.Computed[axis] < -eps {
				t.Errorf("child computed[%v] = %v is negative", axis, child.Computed[axis])
			}
		}
	}
}

func TestChildrenDimSumsMainAxisAndMaxesCrossAxis(t *testing.T) {
	c, tree := newTestTree()

	rootEntity := c.CreateEntity()
	root := uicomponent.New(rootEntity.ID)
	root.FlexDirection = uicomponent.FlexRow
	root.WithDesired(uicomponent.AxisX, uicomponent.Children())
	root.WithDesired(uicomponent.AxisY, uicomponent.Children())
	tree.Attach(rootEntity, root)

	sizes := []struct{ w, h float64 }{{40, 10}, {20, 30}, {15, 5}}
	for _, sz := range sizes {
		e := c.CreateEntity()
		n := uicomponent.New(e.ID)
		n.WithDesired(uicomponent.AxisX, uicomponent.Pixels(sz.w))
		n.WithDesired(uicomponent.AxisY, uicomponent.Pixels(sz.h))
		n.SetParent(rootEntity.ID)
		tree.Attach(e, n)
		root.AddChild(e.ID)
	}
	c.MergeEntityArrays()

	s := NewSolver(c, tree, defaultOptions())
	s.Solve(rootEntity.ID)

	if root.Computed[uicomponent.AxisX] != 75 {
		t.Errorf("root width = %v, want 75 (40+20+15)", root.Computed[uicomponent.AxisX])
	}
	if root.Computed[uicomponent.AxisY] != 30 {
		t.Errorf("root height = %v, want 30 (max of 10,30,5)", root.Computed[uicomponent.AxisY])
	}
}

// TestChildrenSizingScenarioMatchesThreeEqualChildrenAtRoot matches
// the documented scenario: a root with padding and desired
// {Children, Children}, three 100x100 children in a row, ends up
// sized to their sum plus padding with each child's relative x at a
// distinct 100-pixel step.
func TestChildrenSizingScenarioMatchesThreeEqualChildrenAtRoot(t *testing.T) {
	c, tree := newTestTree()

	rootEntity := c.CreateEntity()
	root := uicomponent.New(rootEntity.ID)
	root.FlexDirection = uicomponent.FlexRow
	root.WithDesired(uicomponent.AxisX, uicomponent.Children())
	root.WithDesired(uicomponent.AxisY, uicomponent.Children())
	root.WithPadding(uicomponent.Uniform(uicomponent.Pixels(5)))
	tree.Attach(rootEntity, root)

	var childIDs []ecs.EntityID
	for i := 0; i < 3; i++ {
		e := c.CreateEntity()
		n := uicomponent.New(e.ID)
		n.WithDesired(uicomponent.AxisX, uicomponent.Pixels(100))
		n.WithDesired(uicomponent.AxisY, uicomponent.Pixels(100))
		n.SetParent(rootEntity.ID)
		tree.Attach(e, n)
		root.AddChild(e.ID)
		childIDs = append(childIDs, e.ID)
	}
	c.MergeEntityArrays()

	opts := defaultOptions()
	opts.Resolution = Resolution{Width: 1280, Height: 720}
	s := NewSolver(c, tree, opts)
	s.Solve(rootEntity.ID)

	if root.Computed[uicomponent.AxisX] != 310 {
		t.Errorf("root width = %v, want 310 (300 + 2*5 padding)", root.Computed[uicomponent.AxisX])
	}
	if root.Computed[uicomponent.AxisY] != 110 {
		t.Errorf("root height = %v, want 110 (100 + 2*5 padding)", root.Computed[uicomponent.AxisY])
	}

	wantX := map[int]float64{0: 0, 1: 100, 2: 200}
	for i, id := range childIDs {
		child, _ := tree.Get(id)
		x, _, _, _ := child.Rect()
		// child x is absolute; subtract the root's own absolute origin
		// plus its padding to get the relative step the scenario names.
		relX := x - root.ComputedRel[uicomponent.AxisX] - root.ComputedPadd.Left.Value
		if relX != wantX[i] {
			t.Errorf("child %d relative x = %v, want %v", i, relX, wantX[i])
		}
	}
}

func TestExpandChildrenSplitLeftoverSpaceByWeight(t *testing.T) {
	c, tree := newTestTree()

	rootEntity := c.CreateEntity()
	root := uicomponent.New(rootEntity.ID)
	root.FlexDirection = uicomponent.FlexRow
	root.WithDesired(uicomponent.AxisX, uicomponent.Pixels(300))
	root.WithDesired(uicomponent.AxisY, uicomponent.Pixels(50))
	tree.Attach(rootEntity, root)

	fixed := c.CreateEntity()
	fixedNode := uicomponent.New(fixed.ID)
	fixedNode.WithDesired(uicomponent.AxisX, uicomponent.Pixels(100))
	fixedNode.WithDesired(uicomponent.AxisY, uicomponent.Pixels(50))
	fixedNode.SetParent(rootEntity.ID)
	tree.Attach(fixed, fixedNode)
	root.AddChild(fixed.ID)

	weights := []float64{1, 3}
	var expandIDs []ecs.EntityID
	for _, w := range weights {
		e := c.CreateEntity()
		n := uicomponent.New(e.ID)
		n.WithDesired(uicomponent.AxisX, uicomponent.Expand(w))
		n.WithDesired(uicomponent.AxisY, uicomponent.Pixels(50))
		n.SetParent(rootEntity.ID)
		tree.Attach(e, n)
		root.AddChild(e.ID)
		expandIDs = append(expandIDs, e.ID)
	}
	c.MergeEntityArrays()

	s := NewSolver(c, tree, defaultOptions())
	s.Solve(rootEntity.ID)

	// 300 - 100 fixed = 200 leftover, split 1:3 => 50 and 150.
	first, _ := tree.Get(expandIDs[0])
	second, _ := tree.Get(expandIDs[1])
	if first.Computed[uicomponent.AxisX] != 50 {
		t.Errorf("first expand child width = %v, want 50", first.Computed[uicomponent.AxisX])
	}
	if second.Computed[uicomponent.AxisX] != 150 {
		t.Errorf("second expand child width = %v, want 150", second.Computed[uicomponent.AxisX])
	}
}

func TestOverflowShrinksElasticChildrenBeforeRigid(t *testing.T) {
	c, tree := newTestTree()

	rootEntity := c.CreateEntity()
	root := uicomponent.New(rootEntity.ID)
	root.FlexDirection = uicomponent.FlexRow
	root.WithDesired(uicomponent.AxisX, uicomponent.Pixels(100))
	root.WithDesired(uicomponent.AxisY, uicomponent.Pixels(50))
	tree.Attach(rootEntity, root)

	rigid := c.CreateEntity()
	rigidNode := uicomponent.New(rigid.ID)
	rigidNode.WithDesired(uicomponent.AxisX, uicomponent.Pixels(60))
	rigidNode.WithDesired(uicomponent.AxisY, uicomponent.Pixels(50))
	rigidNode.SetParent(rootEntity.ID)
	tree.Attach(rigid, rigidNode)
	root.AddChild(rigid.ID)

	elastic := c.CreateEntity()
	elasticNode := uicomponent.New(elastic.ID)
	elasticNode.WithDesired(uicomponent.AxisX, uicomponent.PixelsElastic(80, 0))
	elasticNode.WithDesired(uicomponent.AxisY, uicomponent.Pixels(50))
	elasticNode.SetParent(rootEntity.ID)
	tree.Attach(elastic, elasticNode)
	root.AddChild(elastic.ID)

	c.MergeEntityArrays()

	s := NewSolver(c, tree, defaultOptions())
	s.Solve(rootEntity.ID)

	rigidGot, _ := tree.Get(rigid.ID)
	elasticGot, _ := tree.Get(elastic.ID)

	if rigidGot.Computed[uicomponent.AxisX] != 60 {
		t.Errorf("rigid child shrank to %v, want 60 (untouched)", rigidGot.Computed[uicomponent.AxisX])
	}
	if elasticGot.Computed[uicomponent.AxisX] != 40 {
		t.Errorf("elastic child = %v, want 40 (100-60)", elasticGot.Computed[uicomponent.AxisX])
	}
}

func TestAbsoluteChildIgnoresFlow(t *testing.T) {
	c, tree := newTestTree()

	rootEntity := c.CreateEntity()
	root := uicomponent.New(rootEntity.ID)
	root.FlexDirection = uicomponent.FlexRow
	root.WithDesired(uicomponent.AxisX, uicomponent.Pixels(200))
	root.WithDesired(uicomponent.AxisY, uicomponent.Pixels(200))
	tree.Attach(rootEntity, root)

	abs := c.CreateEntity()
	absNode := uicomponent.New(abs.ID)
	absNode.Absolute = true
	absNode.AbsolutePos[uicomponent.AxisX] = 15
	absNode.AbsolutePos[uicomponent.AxisY] = 25
	absNode.WithDesired(uicomponent.AxisX, uicomponent.Pixels(10))
	absNode.WithDesired(uicomponent.AxisY, uicomponent.Pixels(10))
	absNode.SetParent(rootEntity.ID)
	tree.Attach(abs, absNode)
	root.AddChild(abs.ID)

	c.MergeEntityArrays()

	s := NewSolver(c, tree, defaultOptions())
	s.Solve(rootEntity.ID)

	got, _ := tree.Get(abs.ID)
	x, y, _, _ := got.Rect()
	if x != 15 || y != 25 {
		t.Errorf("absolute child at (%v,%v), want (15,25)", x, y)
	}
}

func TestMinMaxClampApplied(t *testing.T) {
	c, tree := newTestTree()

	rootEntity := c.CreateEntity()
	root := uicomponent.New(rootEntity.ID)
	root.FlexDirection = uicomponent.FlexRow
	root.WithDesired(uicomponent.AxisX, uicomponent.Pixels(500))
	root.WithDesired(uicomponent.AxisY, uicomponent.Pixels(50))
	tree.Attach(rootEntity, root)

	e := c.CreateEntity()
	n := uicomponent.New(e.ID)
	n.WithDesired(uicomponent.AxisX, uicomponent.Expand(1))
	n.WithDesired(uicomponent.AxisY, uicomponent.Pixels(50))
	n.WithMaxSize(uicomponent.AxisX, uicomponent.Pixels(120))
	n.SetParent(rootEntity.ID)
	tree.Attach(e, n)
	root.AddChild(e.ID)

	c.MergeEntityArrays()

	s := NewSolver(c, tree, defaultOptions())
	s.Solve(rootEntity.ID)

	got, _ := tree.Get(e.ID)
	if got.Computed[uicomponent.AxisX] != 120 {
		t.Errorf("expand child width = %v, want clamped to 120", got.Computed[uicomponent.AxisX])
	}
}

// TestPercentChildUnderChildrenParentLeftUnresolved matches the
// documented error scenario: a Children-sized parent can't host a
// Percent child on the same axis (computing the parent's size needs
// the child's size, and the child's size needs the parent's), so the
// child's computed value on that axis stays at its -1 sentinel.
func TestPercentChildUnderChildrenParentLeftUnresolved(t *testing.T) {
	c, tree := newTestTree()

	rootEntity := c.CreateEntity()
	root := uicomponent.New(rootEntity.ID)
	root.FlexDirection = uicomponent.FlexRow
	root.WithDesired(uicomponent.AxisX, uicomponent.Children())
	root.WithDesired(uicomponent.AxisY, uicomponent.Children())
	tree.Attach(rootEntity, root)

	e := c.CreateEntity()
	n := uicomponent.New(e.ID)
	n.WithDesired(uicomponent.AxisX, uicomponent.Percent(0.5))
	n.WithDesired(uicomponent.AxisY, uicomponent.Pixels(10))
	n.SetParent(rootEntity.ID)
	tree.Attach(e, n)
	root.AddChild(e.ID)

	c.MergeEntityArrays()

	s := NewSolver(c, tree, defaultOptions())
	s.Solve(rootEntity.ID)

	got, _ := tree.Get(e.ID)
	if got.Computed[uicomponent.AxisX] != -1 {
		t.Errorf("percent child under children-sized parent computed[X] = %v, want -1", got.Computed[uicomponent.AxisX])
	}
	if got.Computed[uicomponent.AxisY] != 10 {
		t.Errorf("percent child computed[Y] = %v, want 10 (unaffected, different axis)", got.Computed[uicomponent.AxisY])
	}
}
