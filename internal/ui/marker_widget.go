package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// MarkerWidget is a draggable marker constrained to the horizontal axis: the
// playhead line, its grab handle, and the end line. Vertical pointer motion
// is discarded before the position reaches the controller, and the view pins
// the widget's Y on every layout pass.
type MarkerWidget struct {
	widget.BaseWidget

	fill color.Color

	// halfWidth offsets the widget's left edge from the marked position
	halfWidth float32

	dragging bool
	dragX    float32 // pointer anchor in scene space during a drag

	// onDrag feeds the anchor X to the marker's controller; it fires on
	// every position change and once more on release
	onDrag func(anchorX float32)
}

// NewMarkerWidget creates a marker with the given fill and drag handler
func NewMarkerWidget(fill color.Color, halfWidth float32, onDrag func(anchorX float32)) *MarkerWidget {
	mw := &MarkerWidget{fill: fill, halfWidth: halfWidth, onDrag: onDrag}
	mw.ExtendBaseWidget(mw)
	return mw
}

// SetFill updates the marker color after a theme change
func (mw *MarkerWidget) SetFill(fill color.Color) {
	mw.fill = fill
	mw.Refresh()
}

// AnchorX returns the marked scene position (the widget's center line)
func (mw *MarkerWidget) AnchorX() float32 {
	return mw.Position().X + mw.halfWidth
}

// Dragged accumulates horizontal pointer deltas and pushes the anchor
// through the controller. The vertical delta is dropped entirely; the layout
// pass triggered by the controller repositions the marker onto its committed
// frame.
func (mw *MarkerWidget) Dragged(event *fyne.DragEvent) {
	if !mw.dragging {
		mw.dragging = true
		mw.dragX = mw.AnchorX()
	}
	mw.dragX += event.Dragged.DX
	if mw.onDrag != nil {
		mw.onDrag(mw.dragX)
	}
}

// DragEnd commits the final pointer position once more, matching the
// release-time update of the drag contract
func (mw *MarkerWidget) DragEnd() {
	if !mw.dragging {
		return
	}
	mw.dragging = false
	if mw.onDrag != nil {
		mw.onDrag(mw.dragX)
	}
}

// CreateRenderer builds the marker's canvas objects
func (mw *MarkerWidget) CreateRenderer() fyne.WidgetRenderer {
	body := canvas.NewRectangle(mw.fill)
	return &markerRenderer{marker: mw, body: body}
}

// markerRenderer renders the marker as a single filled rectangle
type markerRenderer struct {
	marker *MarkerWidget
	body   *canvas.Rectangle
}

func (r *markerRenderer) Layout(size fyne.Size) {
	r.body.Resize(size)
}

func (r *markerRenderer) MinSize() fyne.Size {
	return fyne.NewSize(1, 1)
}

func (r *markerRenderer) Refresh() {
	r.body.FillColor = r.marker.fill
	canvas.Refresh(r.body)
}

func (r *markerRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.body}
}

func (r *markerRenderer) Destroy() {}
