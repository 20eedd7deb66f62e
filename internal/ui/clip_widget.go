package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/cutline/internal/geom"
	"github.com/ytget/cutline/internal/model"
)

// ClipWidget renders one clip and handles its drag. During a drag only the
// widget's draft position moves; the committed start frame is written solely
// on release, through the placement resolver, so overlap checks always see
// the other clips' committed intervals.
type ClipWidget struct {
	widget.BaseWidget

	clip  *model.Clip
	track *model.Track
	view  *TimelineView

	dragging bool
	dragX    float32 // draft left edge in scene space during a drag
	fixedY   float32 // lane top, pinned on every position change
}

// NewClipWidget creates a widget for the given clip on its track
func NewClipWidget(clip *model.Clip, track *model.Track, view *TimelineView) *ClipWidget {
	cw := &ClipWidget{clip: clip, track: track, view: view}
	cw.ExtendBaseWidget(cw)
	return cw
}

// SetGeometry positions and sizes the widget, pinning its lane Y
func (cw *ClipWidget) SetGeometry(x, y, width, height float32) {
	cw.fixedY = y
	cw.Move(fyne.NewPos(x, y))
	cw.Resize(fyne.NewSize(width, height))
}

// Selected reports whether this clip is the view's current selection
func (cw *ClipWidget) Selected() bool {
	return cw.view.SelectedClipID() == cw.clip.ID
}

// Tapped selects the clip
func (cw *ClipWidget) Tapped(_ *fyne.PointEvent) {
	cw.view.SelectClip(cw.clip.ID)
}

// Dragged moves the draft position horizontally. The model is not touched;
// vertical motion is discarded so the clip stays in its lane.
func (cw *ClipWidget) Dragged(event *fyne.DragEvent) {
	if !cw.dragging {
		cw.dragging = true
		cw.dragX = cw.Position().X
		cw.view.SelectClip(cw.clip.ID)
	}
	cw.dragX += event.Dragged.DX
	cw.Move(fyne.NewPos(cw.dragX, cw.fixedY))
}

// DragEnd commits the drag: the resolver turns the draft position into a
// snapped, overlap-checked start frame, and the layout pass repositions the
// widget onto the committed frame.
func (cw *ClipWidget) DragEnd() {
	if !cw.dragging {
		return
	}
	cw.dragging = false
	cw.view.commitClipDrag(cw.clip, cw.track, cw.dragX)
}

// CreateRenderer builds the clip's canvas objects
func (cw *ClipWidget) CreateRenderer() fyne.WidgetRenderer {
	palette := cw.view.Palette()
	body := canvas.NewRectangle(palette.ClipFill)
	body.StrokeColor = palette.ClipBorder
	body.StrokeWidth = 1

	start := canvas.NewText("", palette.TrackHeaderText)
	start.TextSize = ClipTimecodeSize
	end := canvas.NewText("", palette.TrackHeaderText)
	end.TextSize = ClipTimecodeSize
	title := canvas.NewText("", palette.TrackHeaderText)
	title.TextSize = ClipTitleSize

	r := &clipRenderer{clip: cw, body: body, start: start, end: end, title: title}
	r.Refresh()
	return r
}

// clipRenderer renders the clip body with its timecodes and title
type clipRenderer struct {
	clip  *ClipWidget
	body  *canvas.Rectangle
	start *canvas.Text
	end   *canvas.Text
	title *canvas.Text
}

func (r *clipRenderer) Layout(size fyne.Size) {
	r.body.Resize(size)

	r.start.Move(fyne.NewPos(ClipLabelMargin, ClipLabelMargin))

	endSize := r.end.MinSize()
	r.end.Move(fyne.NewPos(size.Width-endSize.Width-ClipLabelMargin, ClipLabelMargin))

	titleSize := r.title.MinSize()
	r.title.Move(fyne.NewPos(
		(size.Width-titleSize.Width)/2,
		(size.Height-titleSize.Height)/2,
	))
}

func (r *clipRenderer) MinSize() fyne.Size {
	return fyne.NewSize(1, 1)
}

func (r *clipRenderer) Refresh() {
	palette := r.clip.view.Palette()

	fill := palette.ClipFill
	if r.clip.Selected() {
		fill = palette.ClipFillSel
	}
	r.body.FillColor = fill
	r.body.StrokeColor = palette.ClipBorder

	clip := r.clip.clip
	r.start.Text = geom.Timecode(float64(clip.StartFrame))
	r.start.Color = palette.TrackHeaderText
	r.end.Text = geom.Timecode(float64(clip.EndFrame()))
	r.end.Color = palette.TrackHeaderText
	r.title.Text = clip.GetDisplayTitle()
	r.title.Color = palette.TrackHeaderText

	r.Layout(r.clip.Size())
	canvas.Refresh(r.body)
	canvas.Refresh(r.start)
	canvas.Refresh(r.end)
	canvas.Refresh(r.title)
}

func (r *clipRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.body, r.start, r.end, r.title}
}

func (r *clipRenderer) Destroy() {}
