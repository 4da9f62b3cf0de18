// Package ui implements the Gio drafting editor: a toolbar, the
// canvas viewport, and a status bar over a drawing session.
package ui

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/OpenDraftLab/OpenDraft2D/pkg/draft"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/geometry"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/session"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/snap"
)

type toolEntry struct {
	tool  session.Tool
	name  string
	click widget.Clickable
}

// previewDash is the pattern used for rubber-band previews.
var previewDash = []float64{6, 4}

// strokePalette lists the stroke colors the toolbar cycles through.
var strokePalette = []string{"black", "red", "green", "blue", "orange", "gray"}

// Editor drives the Gio drafting window.
type Editor struct {
	Window  *app.Window
	Theme   *material.Theme
	Session *session.Session

	// SaveFunc persists the current shapes when the save button is
	// pressed. Nil hides the button.
	SaveFunc func([]draft.Shape) error

	ops    op.Ops
	camera *Camera

	tools     []toolEntry
	selectBtn widget.Clickable
	undoBtn   widget.Clickable
	redoBtn   widget.Clickable
	deleteBtn widget.Clickable
	dupBtn    widget.Clickable
	fitBtn    widget.Clickable
	saveBtn   widget.Clickable
	snapBtn   widget.Clickable
	dimBtn    widget.Clickable

	colorBtn     widget.Clickable
	widthUpBtn   widget.Clickable
	widthDownBtn widget.Clickable
	dashBtn      widget.Clickable
	snapEndBtn   widget.Clickable
	snapMidBtn   widget.Clickable
	snapIntBtn   widget.Clickable

	undoIcon   *widget.Icon
	redoIcon   *widget.Icon
	deleteIcon *widget.Icon
	dupIcon    *widget.Icon
	saveIcon   *widget.Icon

	canvasTag struct{}

	selectMode  bool
	activeTool  session.Tool
	snapEnabled bool

	colorIdx    int
	strokeWidth float64
	dashOn      bool

	drawing      bool
	panning      bool
	lastPan      f32.Point
	moveDrag     bool
	moveStart    f32.Point
	resizeDrag   bool
	resizeID     draft.ID
	resizeHandle int
	cursorWorld  string
	status       string
}

// NewEditor wires the Gio window, theme, and session together.
func NewEditor(window *app.Window, sess *session.Session) *Editor {
	if sess == nil {
		sess = session.New()
	}
	theme := material.NewTheme()
	theme.Palette = material.Palette{
		Bg:         color.NRGBA{R: 245, G: 246, B: 252, A: 255},
		Fg:         color.NRGBA{R: 34, G: 37, B: 49, A: 255},
		ContrastBg: color.NRGBA{R: 80, G: 120, B: 255, A: 255},
		ContrastFg: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}

	makeIcon := func(data []byte, name string) *widget.Icon {
		icon, err := widget.NewIcon(data)
		if err != nil {
			log.Printf("ui: failed to load %s icon: %v", name, err)
			return nil
		}
		return icon
	}

	ed := &Editor{
		Window:      window,
		Theme:       theme,
		Session:     sess,
		camera:      NewCamera(800, 600),
		snapEnabled: true,
		activeTool:  session.ToolLine,
		strokeWidth: 1,
		undoIcon:    makeIcon(icons.ContentUndo, "undo"),
		redoIcon:    makeIcon(icons.ContentRedo, "redo"),
		deleteIcon:  makeIcon(icons.ActionDelete, "delete"),
		dupIcon:     makeIcon(icons.ContentContentCopy, "duplicate"),
		saveIcon:    makeIcon(icons.ContentSave, "save"),
		tools: []toolEntry{
			{tool: session.ToolLine, name: "Line"},
			{tool: session.ToolRectangle, name: "Rect"},
			{tool: session.ToolCircle, name: "Circle"},
			{tool: session.ToolPolygon, name: "Poly"},
		},
	}
	sess.SetViewTransform(ed.camera)
	return ed
}

// Run processes Gio events until the window is closed.
func (ed *Editor) Run() error {
	for {
		e := ed.Window.Event()
		switch ev := e.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ed.ops, ev)
			ed.layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

func (ed *Editor) invalidate() {
	ed.Window.Invalidate()
}

func (ed *Editor) layout(gtx layout.Context) layout.Dimensions {
	paint.FillShape(gtx.Ops, ed.Theme.Palette.Bg, clip.Rect{Max: gtx.Constraints.Max}.Op())

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return ed.layoutToolbar(gtx)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return ed.layoutCanvas(gtx)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return ed.layoutStatus(gtx)
		}),
	)
}

func (ed *Editor) layoutToolbar(gtx layout.Context) layout.Dimensions {
	ed.handleToolbarClicks(gtx)

	inactive := color.NRGBA{R: 120, G: 128, B: 150, A: 255}
	var children []layout.FlexChild
	addButton := func(w layout.Widget) {
		children = append(children,
			layout.Rigid(w),
			layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
		)
	}

	for i := range ed.tools {
		entry := &ed.tools[i]
		addButton(func(gtx layout.Context) layout.Dimensions {
			btn := material.Button(ed.Theme, &entry.click, entry.name)
			btn.Inset = layout.UniformInset(unit.Dp(6))
			if ed.selectMode || ed.activeTool != entry.tool {
				btn.Background = inactive
			}
			return btn.Layout(gtx)
		})
	}

	addButton(func(gtx layout.Context) layout.Dimensions {
		btn := material.Button(ed.Theme, &ed.selectBtn, "Select")
		btn.Inset = layout.UniformInset(unit.Dp(6))
		if !ed.selectMode {
			btn.Background = inactive
		}
		return btn.Layout(gtx)
	})

	iconButton := func(click *widget.Clickable, icon *widget.Icon, label string) layout.Widget {
		return func(gtx layout.Context) layout.Dimensions {
			if icon == nil {
				btn := material.Button(ed.Theme, click, label)
				btn.Inset = layout.UniformInset(unit.Dp(6))
				return btn.Layout(gtx)
			}
			btn := material.IconButton(ed.Theme, click, icon, label)
			btn.Size = unit.Dp(20)
			btn.Inset = layout.UniformInset(unit.Dp(6))
			return btn.Layout(gtx)
		}
	}
	addButton(iconButton(&ed.undoBtn, ed.undoIcon, "Undo"))
	addButton(iconButton(&ed.redoBtn, ed.redoIcon, "Redo"))
	addButton(iconButton(&ed.deleteBtn, ed.deleteIcon, "Delete"))
	addButton(iconButton(&ed.dupBtn, ed.dupIcon, "Duplicate"))
	if ed.SaveFunc != nil {
		addButton(iconButton(&ed.saveBtn, ed.saveIcon, "Save"))
	}

	toggle := func(click *widget.Clickable, label string, on bool) layout.Widget {
		return func(gtx layout.Context) layout.Dimensions {
			btn := material.Button(ed.Theme, click, label)
			btn.Inset = layout.UniformInset(unit.Dp(6))
			if !on {
				btn.Background = inactive
			}
			return btn.Layout(gtx)
		}
	}
	addButton(toggle(&ed.snapBtn, "Snap", ed.snapEnabled))
	addButton(toggle(&ed.dimBtn, "Dims", ed.Session.ShowDimensions()))
	addButton(func(gtx layout.Context) layout.Dimensions {
		btn := material.Button(ed.Theme, &ed.fitBtn, "Fit")
		btn.Inset = layout.UniformInset(unit.Dp(6))
		return btn.Layout(gtx)
	})
	mainRow := children

	// Second row: stroke appearance and per-kind snap toggles.
	children = nil
	addButton(func(gtx layout.Context) layout.Dimensions {
		btn := material.Button(ed.Theme, &ed.colorBtn, "Stroke: "+strokePalette[ed.colorIdx])
		btn.Inset = layout.UniformInset(unit.Dp(6))
		return btn.Layout(gtx)
	})
	addButton(func(gtx layout.Context) layout.Dimensions {
		btn := material.Button(ed.Theme, &ed.widthDownBtn, "W-")
		btn.Inset = layout.UniformInset(unit.Dp(6))
		return btn.Layout(gtx)
	})
	addButton(func(gtx layout.Context) layout.Dimensions {
		btn := material.Button(ed.Theme, &ed.widthUpBtn, fmt.Sprintf("W+ (%g)", ed.strokeWidth))
		btn.Inset = layout.UniformInset(unit.Dp(6))
		return btn.Layout(gtx)
	})
	addButton(toggle(&ed.dashBtn, "Dash", ed.dashOn))
	opts := ed.Session.SnapOptions()
	addButton(toggle(&ed.snapEndBtn, "End", opts.Endpoints))
	addButton(toggle(&ed.snapMidBtn, "Mid", opts.Midpoints))
	addButton(toggle(&ed.snapIntBtn, "Int", opts.Intersections))
	styleRow := children

	row := func(children []layout.FlexChild) layout.Widget {
		return func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx, children...)
		}
	}
	return layout.Inset{
		Top: unit.Dp(8), Bottom: unit.Dp(8), Left: unit.Dp(12), Right: unit.Dp(12),
	}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(row(mainRow)),
			layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout),
			layout.Rigid(row(styleRow)),
		)
	})
}

func (ed *Editor) handleToolbarClicks(gtx layout.Context) {
	for i := range ed.tools {
		entry := &ed.tools[i]
		for entry.click.Clicked(gtx) {
			ed.Session.CancelDraw()
			ed.selectMode = false
			ed.activeTool = entry.tool
			ed.setStatus("tool: " + entry.tool.String())
		}
	}
	for ed.selectBtn.Clicked(gtx) {
		ed.Session.CancelDraw()
		ed.selectMode = true
		ed.setStatus("tool: select")
	}
	for ed.undoBtn.Clicked(gtx) {
		ed.undo()
	}
	for ed.redoBtn.Clicked(gtx) {
		ed.redo()
	}
	for ed.deleteBtn.Clicked(gtx) {
		ed.deleteSelected()
	}
	for ed.dupBtn.Clicked(gtx) {
		ed.duplicateSelected()
	}
	for ed.saveBtn.Clicked(gtx) {
		ed.save()
	}
	for ed.snapBtn.Clicked(gtx) {
		ed.snapEnabled = !ed.snapEnabled
		ed.invalidate()
	}
	for ed.dimBtn.Clicked(gtx) {
		ed.Session.SetShowDimensions(!ed.Session.ShowDimensions())
		ed.invalidate()
	}
	for ed.fitBtn.Clicked(gtx) {
		if bbox, ok := ed.Session.Set().BBox(); ok {
			ed.camera.Fit(bbox)
			ed.invalidate()
		}
	}
	for ed.colorBtn.Clicked(gtx) {
		ed.colorIdx = (ed.colorIdx + 1) % len(strokePalette)
		stroke := strokePalette[ed.colorIdx]
		if err := ed.Session.SetStrokeColor(stroke); err != nil {
			ed.setStatus(fmt.Sprintf("stroke failed: %v", err))
			continue
		}
		ed.setStatus("stroke: " + stroke)
	}
	for ed.widthUpBtn.Clicked(gtx) {
		ed.applyStrokeWidth(ed.strokeWidth + 1)
	}
	for ed.widthDownBtn.Clicked(gtx) {
		ed.applyStrokeWidth(ed.strokeWidth - 1)
	}
	for ed.dashBtn.Clicked(gtx) {
		ed.dashOn = !ed.dashOn
		var pattern []float64
		if ed.dashOn {
			pattern = previewDash
		}
		if err := ed.Session.SetDash(pattern); err != nil {
			ed.setStatus(fmt.Sprintf("dash failed: %v", err))
			continue
		}
		ed.invalidate()
	}
	for ed.snapEndBtn.Clicked(gtx) {
		ed.toggleSnapKind(func(o *snap.Options) { o.Endpoints = !o.Endpoints })
	}
	for ed.snapMidBtn.Clicked(gtx) {
		ed.toggleSnapKind(func(o *snap.Options) { o.Midpoints = !o.Midpoints })
	}
	for ed.snapIntBtn.Clicked(gtx) {
		ed.toggleSnapKind(func(o *snap.Options) { o.Intersections = !o.Intersections })
	}
}

func (ed *Editor) applyStrokeWidth(w float64) {
	if w < 1 {
		w = 1
	}
	if w > 10 {
		w = 10
	}
	ed.strokeWidth = w
	if err := ed.Session.SetStrokeWidth(w); err != nil {
		ed.setStatus(fmt.Sprintf("width failed: %v", err))
		return
	}
	ed.setStatus(fmt.Sprintf("width: %g", w))
}

func (ed *Editor) toggleSnapKind(flip func(*snap.Options)) {
	opts := ed.Session.SnapOptions()
	flip(&opts)
	ed.Session.SetSnapOptions(opts)
	ed.invalidate()
}

func (ed *Editor) layoutStatus(gtx layout.Context) layout.Dimensions {
	mode := "draw " + ed.activeTool.String()
	if ed.selectMode {
		mode = fmt.Sprintf("select (%d)", len(ed.Session.Selected()))
	}
	snapState := "snap off"
	if ed.snapEnabled {
		snapState = "snap on"
	}
	line := fmt.Sprintf("%s | %s | %d shapes | %s", mode, snapState, ed.Session.Set().Len(), ed.cursorWorld)
	if ed.status != "" {
		line += " | " + ed.status
	}

	return layout.Inset{
		Top: unit.Dp(4), Bottom: unit.Dp(4), Left: unit.Dp(12), Right: unit.Dp(12),
	}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		lbl := material.Label(ed.Theme, unit.Sp(12), line)
		lbl.Color = ed.Theme.Palette.Fg
		return lbl.Layout(gtx)
	})
}

func (ed *Editor) setStatus(s string) {
	ed.status = s
	ed.invalidate()
}

func (ed *Editor) undo() {
	if ed.Session.Undo() {
		ed.setStatus("undo")
	}
}

func (ed *Editor) redo() {
	if ed.Session.Redo() {
		ed.setStatus("redo")
	}
}

func (ed *Editor) deleteSelected() {
	n, err := ed.Session.DeleteSelected()
	if err != nil {
		ed.setStatus(fmt.Sprintf("delete failed: %v", err))
		return
	}
	if n > 0 {
		ed.setStatus(fmt.Sprintf("deleted %d shape(s)", n))
	}
}

func (ed *Editor) duplicateSelected() {
	copies, err := ed.Session.DuplicateSelected()
	if err != nil {
		ed.setStatus(fmt.Sprintf("duplicate failed: %v", err))
		return
	}
	if len(copies) > 0 {
		ed.setStatus(fmt.Sprintf("duplicated %d shape(s)", len(copies)))
	}
}

func (ed *Editor) save() {
	if ed.SaveFunc == nil {
		return
	}
	if err := ed.SaveFunc(ed.Session.Export()); err != nil {
		ed.setStatus(fmt.Sprintf("save failed: %v", err))
		return
	}
	ed.setStatus("saved")
}

func (ed *Editor) layoutCanvas(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	ed.camera.UpdateScreenSize(size.X, size.Y)

	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	paint.FillShape(gtx.Ops, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, clip.Rect{Max: size}.Op())

	ed.handleCanvasInput(gtx)
	event.Op(gtx.Ops, &ed.canvasTag)

	ed.render(gtx)
	return layout.Dimensions{Size: size}
}

func (ed *Editor) render(gtx layout.Context) {
	state := ed.Session.Snapshot()

	selected := make(map[draft.ID]bool, len(state.Selected))
	for _, id := range state.Selected {
		selected[id] = true
	}

	for _, shape := range state.Shapes {
		col := strokeColor(shape.Style.Stroke)
		width := float32(shape.Style.Width)
		if width < 1 {
			width = 1
		}
		if selected[shape.ID] {
			col = namedColors["blue"]
		}
		drawShape(gtx.Ops, ed.camera, shape, col, width)
		if selected[shape.ID] {
			drawSelectionHandles(gtx.Ops, ed.camera, shape)
		}
	}

	if state.Preview != nil {
		prev := *state.Preview
		if prev.Kind != draft.KindCircle {
			style := prev.Style
			style.Dash = previewDash
			prev = prev.WithStyle(style)
		}
		col := strokeColor(prev.Style.Stroke)
		col.A = 150
		drawShape(gtx.Ops, ed.camera, prev, col, 1)
	}

	if state.Snap != nil {
		drawSnapMarker(gtx.Ops, ed.camera, state.Snap.Point)
	}

	if state.Dimensions != nil {
		for _, shape := range state.Shapes {
			for _, dim := range state.Dimensions[shape.ID] {
				ed.drawDimensionLabel(gtx, dim.Label, dim.Anchors)
			}
		}
	}
}

// drawDimensionLabel centers a measurement label over the midpoint of
// its anchors.
func (ed *Editor) drawDimensionLabel(gtx layout.Context, label string, anchors []geometry.Point) {
	if len(anchors) == 0 || label == "" {
		return
	}
	var cx, cy float64
	for _, a := range anchors {
		sp := ed.camera.WorldToScreen(a)
		cx += sp.X
		cy += sp.Y
	}
	cx /= float64(len(anchors))
	cy /= float64(len(anchors))

	lbl := material.Label(ed.Theme, unit.Sp(11), label)
	lbl.Color = namedColors["gray"]
	lbl.Alignment = text.Middle

	// Measure first so the label can be centered.
	macro := op.Record(gtx.Ops)
	dims := lbl.Layout(gtx)
	_ = macro.Stop()

	stack := op.Offset(image.Pt(int(cx)-dims.Size.X/2, int(cy)-dims.Size.Y/2-10)).Push(gtx.Ops)
	lbl.Layout(gtx)
	stack.Pop()
}

func (ed *Editor) handleCanvasInput(gtx layout.Context) {
	ed.handleKeys(gtx)

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  &ed.canvasTag,
			Kinds:   pointer.Press | pointer.Release | pointer.Drag | pointer.Move | pointer.Scroll,
			ScrollY: pointer.ScrollRange{Min: -120, Max: 120},
		})
		if !ok {
			break
		}
		pev, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		ed.handlePointer(pev)
	}
}

func (ed *Editor) handlePointer(pev pointer.Event) {
	world := ed.camera.ScreenToWorld(float64(pev.Position.X), float64(pev.Position.Y))
	ed.cursorWorld = fmt.Sprintf("(%.1f, %.1f)", world.X, world.Y)

	switch pev.Kind {
	case pointer.Scroll:
		factor := 1.1
		if pev.Scroll.Y > 0 {
			factor = 1 / 1.1
		}
		ed.camera.ZoomAt(float64(pev.Position.X), float64(pev.Position.Y), factor)
		ed.invalidate()

	case pointer.Press:
		switch pev.Buttons {
		case pointer.ButtonPrimary:
			ed.primaryPress(pev, world)
		case pointer.ButtonSecondary:
			ed.secondaryPress(pev)
		}

	case pointer.Drag:
		if ed.panning {
			delta := pev.Position.Sub(ed.lastPan)
			ed.camera.Pan(float64(delta.X), float64(delta.Y))
			ed.lastPan = pev.Position
			ed.invalidate()
			return
		}
		if ed.drawing {
			ed.Session.UpdateDraw(world, ed.snapEnabled)
			ed.invalidate()
		}

	case pointer.Move:
		// Rubber band for in-progress polygons.
		if _, active := ed.Session.Preview(); active {
			ed.Session.UpdateDraw(world, ed.snapEnabled)
		}
		ed.invalidate()

	case pointer.Release:
		ed.release(pev, world)
	}
}

func (ed *Editor) primaryPress(pev pointer.Event, world geometry.Point) {
	if ed.selectMode {
		if pev.Modifiers.Contain(key.ModCtrl) || pev.Modifiers.Contain(key.ModShift) {
			ed.Session.ToggleAt(world)
			ed.invalidate()
			return
		}
		// Grips of the current selection take priority over re-picking.
		if id, handle, ok := ed.Session.HandleAt(world); ok {
			ed.resizeDrag = true
			ed.resizeID = id
			ed.resizeHandle = handle
			ed.invalidate()
			return
		}
		if _, hit := ed.Session.SelectAt(world); hit {
			ed.moveDrag = true
			ed.moveStart = pev.Position
		}
		ed.invalidate()
		return
	}

	if ed.activeTool == session.ToolPolygon {
		if _, active := ed.Session.Preview(); active {
			if err := ed.Session.AddVertex(world, ed.snapEnabled); err != nil {
				ed.setStatus(fmt.Sprintf("vertex: %v", err))
			}
		} else {
			ed.Session.BeginDraw(session.ToolPolygon, world, ed.snapEnabled)
		}
		ed.invalidate()
		return
	}

	ed.Session.BeginDraw(ed.activeTool, world, ed.snapEnabled)
	ed.drawing = true
	ed.invalidate()
}

func (ed *Editor) secondaryPress(pev pointer.Event) {
	if !ed.selectMode && ed.activeTool == session.ToolPolygon {
		if _, active := ed.Session.Preview(); active {
			ed.commitDraw()
			return
		}
	}
	ed.panning = true
	ed.lastPan = pev.Position
}

func (ed *Editor) release(pev pointer.Event, world geometry.Point) {
	if ed.panning {
		ed.panning = false
		return
	}
	if ed.drawing {
		ed.Session.UpdateDraw(world, ed.snapEnabled)
		ed.drawing = false
		ed.commitDraw()
		return
	}
	if ed.resizeDrag {
		ed.resizeDrag = false
		if err := ed.Session.ResizeSelected(ed.resizeID, ed.resizeHandle, world); err != nil {
			ed.setStatus(fmt.Sprintf("resize failed: %v", err))
		}
		ed.invalidate()
		return
	}
	if ed.moveDrag {
		ed.moveDrag = false
		delta := pev.Position.Sub(ed.moveStart)
		dx := float64(delta.X) / ed.camera.Zoom
		dy := float64(delta.Y) / ed.camera.Zoom
		if dx != 0 || dy != 0 {
			if err := ed.Session.MoveSelected(dx, dy); err != nil {
				ed.setStatus(fmt.Sprintf("move failed: %v", err))
			}
		}
		ed.invalidate()
	}
}

func (ed *Editor) commitDraw() {
	if _, err := ed.Session.CommitDraw(); err != nil {
		ed.Session.CancelDraw()
		ed.setStatus(fmt.Sprintf("discarded: %v", err))
		return
	}
	ed.setStatus("")
	ed.invalidate()
}

func (ed *Editor) handleKeys(gtx layout.Context) {
	filters := []event.Filter{
		key.Filter{Name: "Z", Required: key.ModCtrl},
		key.Filter{Name: "Y", Required: key.ModCtrl},
		key.Filter{Name: "A", Required: key.ModCtrl},
		key.Filter{Name: "D", Required: key.ModCtrl},
		key.Filter{Name: key.NameDeleteForward},
		key.Filter{Name: key.NameDeleteBackward},
		key.Filter{Name: key.NameEscape},
	}
	for {
		ev, ok := gtx.Event(filters...)
		if !ok {
			break
		}
		kev, ok := ev.(key.Event)
		if !ok || kev.State != key.Press {
			continue
		}
		switch kev.Name {
		case "Z":
			ed.undo()
		case "Y":
			ed.redo()
		case "A":
			ed.Session.SelectAll()
			ed.invalidate()
		case "D":
			ed.duplicateSelected()
		case key.NameDeleteForward, key.NameDeleteBackward:
			ed.deleteSelected()
		case key.NameEscape:
			ed.Session.CancelDraw()
			ed.Session.ClearSelection()
			ed.invalidate()
		}
	}
}
