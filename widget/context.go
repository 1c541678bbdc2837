// Package widget implements the library's widget functions: small
// stateless calls that resolve a stable entity for their call site,
// declare its layout box, update its hot/active/focus state, and draw
// it. Grounded file-for-file on terminal/tui's widget kit (button.go,
// checkbox.go, tabs.go, progress.go, scroll*.go, tree*.go,
// textfield*.go, editor*.go), adapted from Region.Cell terminal-grid
// drawing to calls against the render.Renderer interface.
package widget

import (
	"log/slog"

	"github.com/ashenforge/ecsui/ecs"
	"github.com/ashenforge/ecsui/imm"
	"github.com/ashenforge/ecsui/render"
	"github.com/ashenforge/ecsui/theme"
	"github.com/ashenforge/ecsui/uicolor"
	"github.com/ashenforge/ecsui/uicomponent"
)

// Result is every widget function's return value: whether the backing
// value changed this frame, the entity it lives on, and (for
// multi-valued widgets like button_group) an extra payload.
type Result struct {
	Changed bool
	Entity  ecs.EntityID
	Value   any
}

// Context bundles the collaborators every widget call needs. One
// Context is built once per host and threaded through every widget
// call, the same role engine/world.go's World plays for systems.
type Context struct {
	Collection *ecs.EntityCollection
	Tree       *uicomponent.Tree
	Imm        *imm.Context
	Theme      theme.Theme
	Renderer   render.Renderer
	Fonts      render.FontBackend
	Logger     *slog.Logger
}

// New builds a Context from its collaborators.
func New(collection *ecs.EntityCollection, tree *uicomponent.Tree, immCtx *imm.Context, th theme.Theme, r render.Renderer, fonts render.FontBackend, logger *slog.Logger) *Context {
	if logger == nil {
		logger = slog.Default()
	}
	return &Context{Collection: collection, Tree: tree, Imm: immCtx, Theme: th, Renderer: r, Fonts: fonts, Logger: logger}
}

// resolve returns the stable UIComponent for the call site skip frames
// above its caller, creating and attaching it under parent the first
// time the site is seen, plus ct's theme-resolved config.
func (c *Context) resolve(parent ecs.EntityID, disambiguator uint64, ct theme.ComponentType, cfg theme.ComponentConfig, skip int) (*uicomponent.UIComponent, *ecs.Entity, theme.ComponentConfig) {
	site := imm.CallerSite(parent, disambiguator, skip+1)
	e, created := imm.Resolve(c.Collection, site, c.Logger)

	node, ok := c.Tree.Get(e.ID)
	if !ok {
		node = uicomponent.New(e.ID)
		c.Tree.Attach(e, node)
		if parent != uicomponent.NoParent {
			c.Tree.Reparent(e.ID, parent)
		}
	}
	if created && parent != uicomponent.NoParent {
		c.Tree.Reparent(e.ID, parent)
	}
	return node, e, theme.Resolve(cfg, ct, c.Theme)
}

// rect reads back node's world-space box from the previous frame's
// AutoLayout solve, converted to the imm/render Rect shape. A brand
// new node (never solved) reports a zero rect, which simply can't be
// hot until the next frame lays it out.
func rect(node *uicomponent.UIComponent) render.Rect {
	x, y, w, h := node.Rect()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return render.Rect{X: x, Y: y, W: w, H: h}
}

func boxAt(x, y, w, h float64) render.Rect {
	return render.Rect{X: x, Y: y, W: w, H: h}
}

func immRect(r render.Rect) imm.Rect {
	return imm.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

func toRenderColor(c uicolor.Color) render.Color {
	r, g, b := c.Float3()[0], c.Float3()[1], c.Float3()[2]
	return render.Color{R: r, G: g, B: b, A: 1}
}

func toCornerMask(rc theme.RoundedCorners) render.CornerMask {
	var m render.CornerMask
	if rc&theme.CornerTopLeft != 0 {
		m |= render.CornerTopLeft
	}
	if rc&theme.CornerTopRight != 0 {
		m |= render.CornerTopRight
	}
	if rc&theme.CornerBottomLeft != 0 {
		m |= render.CornerBottomLeft
	}
	if rc&theme.CornerBottomRight != 0 {
		m |= render.CornerBottomRight
	}
	return m
}

func clickActivation(cfg theme.ComponentConfig, th theme.Theme) imm.ClickActivation {
	return th.ClickActivationMode
}

func colorOrRole(ref *uicolor.Color, role uicolor.Color) uicolor.Color {
	if ref != nil {
		return *ref
	}
	return role
}

func roundedOrDefault(ref *theme.RoundedCorners, th theme.Theme) theme.RoundedCorners {
	if ref != nil {
		return *ref
	}
	return th.RoundedCorners
}

func roundnessOrDefault(ref *float64, th theme.Theme) float64 {
	if ref != nil {
		return *ref
	}
	return th.Roundness
}

// defaultPadding is the uniform content inset leaf widgets use absent
// a theme.SizeDefault override; there's no per-widget pixel budget in
// the theme itself, so every widget shares one constant the way
// button.go's ButtonBarOpts.Gap has one process-wide default (2).
var defaultPadding = uicomponent.Uniform(uicomponent.Pixels(8))

// applySize sets node's desired size to cfg's override if the theme
// merge produced one, else to the widget's own fallback.
func applySize(node *uicomponent.UIComponent, cfg theme.ComponentConfig, defaultX, defaultY uicomponent.Size) {
	if cfg.Size != nil {
		node.WithDesired(uicomponent.AxisX, cfg.Size.X)
		node.WithDesired(uicomponent.AxisY, cfg.Size.Y)
		return
	}
	node.WithDesired(uicomponent.AxisX, defaultX)
	node.WithDesired(uicomponent.AxisY, defaultY)
}

// labelNode resolves a plain text-sized node (no background, no
// interaction) and draws it, the shared body behind any widget that
// needs a bare label inside a larger composite (navigation_bar's
// centered title, progress_bar's percentage text).
func (c *Context) labelNode(parent ecs.EntityID, disambiguator uint64, text string, fg uicolor.Color, align uicomponent.TextAlign) ecs.EntityID {
	node, entity, _ := c.resolve(parent, disambiguator, theme.ComponentDiv, theme.ComponentConfig{}, 2)
	node.WithDesired(uicomponent.AxisX, uicomponent.Text())
	node.WithDesired(uicomponent.AxisY, uicomponent.Text())
	ecs.SetComponent(c.Collection, entity, uicomponent.HasLabel{Text: text, Align: align})
	if c.Renderer != nil {
		c.drawLabel(rect(node), text, fg, align, 16)
	}
	return entity.ID
}

// drawPanel draws a themed rounded rectangle, the shared body of any
// widget whose visible frame is a single colored box (the generalized
// form of Region.Cell-per-cell rect fills).
func (c *Context) drawPanel(box render.Rect, bg uicolor.Color, cfg theme.ComponentConfig) {
	corners := roundedOrDefault(cfg.RoundedCorners, c.Theme)
	if corners == theme.CornerNone {
		c.Renderer.DrawRectangle(box, toRenderColor(bg))
		return
	}
	roundness := roundnessOrDefault(cfg.Roundness, c.Theme)
	c.Renderer.DrawRectangleRounded(box, roundness, c.Theme.Segments, toRenderColor(bg), toCornerMask(corners))
}

// drawLabel centers text inside box using the font backend's own
// measurement, matching Region.Text's baseline-left convention but
// adding the center/right alignment HasLabel supports.
func (c *Context) drawLabel(box render.Rect, text string, fg uicolor.Color, align uicomponent.TextAlign, fontSize float64) {
	if text == "" {
		return
	}
	w, h := c.Fonts.MeasureText(nil, text, fontSize, 0)
	y := box.Y + (box.H-h)/2
	var x float64
	switch align {
	case uicomponent.AlignTextCenter:
		x = box.X + (box.W-w)/2
	case uicomponent.AlignTextRight:
		x = box.X + box.W - w
	default:
		x = box.X
	}
	c.Renderer.DrawTextEx(nil, text, x, y, fontSize, 0, toRenderColor(fg))
}
