package uicomponent

import (
	"testing"

	"github.com/ashenforge/ecsui/ecs"
)

func TestAddChildRemoveChild(t *testing.T) {
	c := New(1)
	c.AddChild(2).AddChild(3)

	children := c.Children()
	if len(children) != 2 || children[0] != 2 || children[1] != 3 {
		t.Fatalf("expected [2 3], got %v", children)
	}

	c.RemoveChild(2)
	children = c.Children()
	if len(children) != 1 || children[0] != 3 {
		t.Errorf("expected [3] after RemoveChild(2), got %v", children)
	}
}

func TestResetComputedValuesSentinels(t *testing.T) {
	c := New(1)
	c.Computed[AxisX] = 100
	c.Computed[AxisY] = 50
	c.IsVisible = true

	c.ResetComputedValues()

	if c.Computed[AxisX] != -1 || c.Computed[AxisY] != -1 {
		t.Errorf("expected computed sizes reset to -1, got %v", c.Computed)
	}
	if c.IsVisible {
		t.Errorf("expected IsVisible reset to false")
	}
}

func TestContentSizeSubtractsPaddingAndMargin(t *testing.T) {
	c := New(1)
	c.Computed[AxisX] = 100
	c.ComputedPadd = Uniform(Pixels(10))
	c.ComputedMargin = Uniform(Pixels(5))

	if got := c.ContentSize(AxisX); got != 70 {
		t.Errorf("expected content size 70 (100-10-10-5-5), got %v", got)
	}
}

func TestTreeReparent(t *testing.T) {
	c := ecs.NewEntityCollection(false)
	tr := NewTree(c)

	root := c.CreateEntity()
	a := c.CreateEntity()
	b := c.CreateEntity()
	c.MergeEntityArrays()

	tr.Attach(root, New(root.ID))
	tr.Attach(a, New(a.ID).SetParent(root.ID))
	tr.Attach(b, New(b.ID))

	rootComp, _ := tr.Get(root.ID)
	rootComp.AddChild(a.ID)

	tr.Reparent(a.ID, b.ID)

	rootComp, _ = tr.Get(root.ID)
	if len(rootComp.Children()) != 0 {
		t.Errorf("expected root to lose child a after reparent, got %v", rootComp.Children())
	}
	bComp, _ := tr.Get(b.ID)
	if len(bComp.Children()) != 1 || bComp.Children()[0] != a.ID {
		t.Errorf("expected b to gain child a, got %v", bComp.Children())
	}
	aComp, _ := tr.Get(a.ID)
	if aComp.Parent() != b.ID {
		t.Errorf("expected a's parent to be b, got %v", aComp.Parent())
	}
}

func TestTreeRemoveFromParent(t *testing.T) {
	c := ecs.NewEntityCollection(false)
	tr := NewTree(c)

	root := c.CreateEntity()
	child := c.CreateEntity()
	c.MergeEntityArrays()

	tr.Attach(root, New(root.ID))
	tr.Attach(child, New(child.ID).SetParent(root.ID))
	rootComp, _ := tr.Get(root.ID)
	rootComp.AddChild(child.ID)

	tr.RemoveFromParent(child.ID)

	rootComp, _ = tr.Get(root.ID)
	if len(rootComp.Children()) != 0 {
		t.Errorf("expected root to have no children, got %v", rootComp.Children())
	}
	childComp, _ := tr.Get(child.ID)
	if childComp.Parent() != NoParent {
		t.Errorf("expected child's parent reset to NoParent, got %v", childComp.Parent())
	}
}
