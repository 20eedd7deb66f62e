package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/cutline/internal/config"
	"github.com/ytget/cutline/internal/control"
	"github.com/ytget/cutline/internal/geom"
	"github.com/ytget/cutline/internal/model"
)

// TimelineView is the editor surface: ruler, time label, track headers and
// lanes, clips, playhead and end markers. It owns no business state beyond
// the current selection; every pixel it shows is re-derived from the model
// through the mapper on each layout pass.
type TimelineView struct {
	widget.BaseWidget

	timeline    *model.Timeline
	mapper      *geom.Mapper
	resolver    *control.Resolver
	playheadCtl *control.PlayheadController
	endCtl      *control.EndMarkerController
	palette     Palette

	content      *fyne.Container
	clipWidgets  map[string]*ClipWidget
	playheadLine *MarkerWidget
	playheadGrip *MarkerWidget
	endLine      *MarkerWidget

	selectedID string
	sceneSize  fyne.Size
}

// NewTimelineView creates the editor surface over the given model
func NewTimelineView(timeline *model.Timeline, mapper *geom.Mapper, cfg config.Theme) *TimelineView {
	tv := &TimelineView{
		timeline:    timeline,
		mapper:      mapper,
		resolver:    control.NewResolver(mapper),
		playheadCtl: control.NewPlayheadController(timeline, mapper),
		endCtl:      control.NewEndMarkerController(timeline, mapper),
		palette:     NewPalette(cfg),
		content:     container.NewWithoutLayout(),
		clipWidgets: make(map[string]*ClipWidget),
	}

	tv.playheadLine = NewMarkerWidget(tv.palette.Playhead, MarkerLineWidth/2, tv.dragPlayhead)
	tv.playheadGrip = NewMarkerWidget(tv.palette.Playhead, MarkerGripWidth/2, tv.dragPlayhead)
	tv.endLine = NewMarkerWidget(tv.palette.EndLine, EndMarkerWidth/2, tv.dragEndMarker)

	timeline.SetInvalidateCallback(tv.Relayout)

	tv.ExtendBaseWidget(tv)
	tv.Relayout()
	return tv
}

// Palette returns the parsed theme colors
func (tv *TimelineView) Palette() Palette {
	return tv.palette
}

// SetTheme swaps the palette and re-derives the scene
func (tv *TimelineView) SetTheme(cfg config.Theme) {
	tv.palette = NewPalette(cfg)
	tv.playheadLine.SetFill(tv.palette.Playhead)
	tv.playheadGrip.SetFill(tv.palette.Playhead)
	tv.endLine.SetFill(tv.palette.EndLine)
	tv.Relayout()
}

// SetHZoom sets the horizontal zoom factor and re-derives the scene
func (tv *TimelineView) SetHZoom(zoom float64) {
	tv.mapper.SetHZoom(zoom)
	tv.Relayout()
}

// SetVZoom sets the vertical zoom factor and re-derives the scene
func (tv *TimelineView) SetVZoom(zoom float64) {
	tv.mapper.SetVZoom(zoom)
	tv.Relayout()
}

// SelectedClipID returns the ID of the selected clip, or ""
func (tv *TimelineView) SelectedClipID() string {
	return tv.selectedID
}

// SelectClip marks the clip as selected and repaints the clips
func (tv *TimelineView) SelectClip(id string) {
	if tv.selectedID == id {
		return
	}
	tv.selectedID = id
	for _, cw := range tv.clipWidgets {
		cw.Refresh()
	}
}

// StepFrame nudges the playhead by the given number of frames. The raw
// setter path is shared with scrubbing; stepping below zero or past the end
// is allowed, matching the scrub contract.
func (tv *TimelineView) StepFrame(delta int) {
	tv.timeline.SetPlayheadFrame(float64(tv.timeline.PlayheadFrame() + delta))
	tv.Relayout()
}

// dragPlayhead routes a marker drag through the playhead controller
func (tv *TimelineView) dragPlayhead(anchorX float32) {
	tv.playheadCtl.Drag(anchorX)
	tv.Relayout()
}

// dragEndMarker routes a marker drag through the end marker controller
func (tv *TimelineView) dragEndMarker(anchorX float32) {
	tv.endCtl.Drag(anchorX)
	tv.Relayout()
}

// commitClipDrag resolves a released clip drag into committed model state
func (tv *TimelineView) commitClipDrag(clip *model.Clip, track *model.Track, releaseX float32) {
	frame, _ := tv.resolver.Commit(clip, track, releaseX)
	log.Printf("clip %q committed at frame %d", clip.GetDisplayTitle(), frame)
	tv.Relayout()
}

// Relayout is the layout pass: it re-derives the whole scene's geometry from
// the model and the current zoom. Calling it twice with unchanged state
// produces identical geometry.
func (tv *TimelineView) Relayout() {
	layout := tv.mapper.Layout()
	tracks := tv.timeline.Tracks()

	endX := tv.mapper.FrameToX(float64(tv.timeline.EndFrame()))
	sceneW := endX + SceneRightPadding
	if sceneW < MinSceneWidth {
		sceneW = MinSceneWidth
	}
	sceneH := tv.mapper.SceneHeight(tracks)
	tv.sceneSize = fyne.NewSize(sceneW, sceneH)

	objects := make([]fyne.CanvasObject, 0, 16)

	background := canvas.NewRectangle(tv.palette.Background)
	background.Resize(tv.sceneSize)
	objects = append(objects, background)

	objects = append(objects, tv.rulerObjects(sceneW)...)
	objects = append(objects, tv.laneObjects(sceneW, tracks)...)
	objects = append(objects, tv.clipObjects(tracks)...)
	objects = append(objects, tv.headerObjects(tracks)...)
	objects = append(objects, tv.timeLabelObjects()...)

	tv.endLine.SetFill(tv.palette.EndLine)
	endHeight := sceneH - layout.TopMargin - layout.BottomMargin
	tv.placeMarker(tv.endLine, endX, layout.TopMargin, EndMarkerWidth, endHeight)
	objects = append(objects, tv.endLine)

	playheadX := tv.playheadCtl.X()
	tv.placeMarker(tv.playheadLine, playheadX, layout.TopMargin, MarkerLineWidth, sceneH-layout.TopMargin)
	tv.placeMarker(tv.playheadGrip, playheadX, layout.TopMargin-MarkerGripHeight, MarkerGripWidth, MarkerGripHeight)
	objects = append(objects, tv.playheadLine, tv.playheadGrip)

	tv.content.Objects = objects
	tv.content.Refresh()
}

// placeMarker centers a marker widget on the given scene X
func (tv *TimelineView) placeMarker(marker *MarkerWidget, x, y, width, height float32) {
	marker.Move(fyne.NewPos(x-width/2, y))
	marker.Resize(fyne.NewSize(width, height))
}

// rulerObjects builds the ruler strip with minor ticks per frame and major
// ticks with timecode labels on each second
func (tv *TimelineView) rulerObjects(sceneW float32) []fyne.CanvasObject {
	layout := tv.mapper.Layout()

	strip := canvas.NewRectangle(tv.palette.RulerBG)
	strip.Move(fyne.NewPos(layout.LeftMargin, 0))
	strip.Resize(fyne.NewSize(sceneW-layout.LeftMargin, layout.TopMargin))
	objects := []fyne.CanvasObject{strip}

	step := tv.mapper.PixelsPerFrame()
	if step <= 0 {
		return objects
	}

	bottom := layout.TopMargin
	for frame, x := 0, layout.LeftMargin; x < sceneW; frame, x = frame+1, x+step {
		if frame%geom.FPS == 0 {
			tick := canvas.NewLine(tv.palette.RulerTickMajor)
			tick.Position1 = fyne.NewPos(x, bottom)
			tick.Position2 = fyne.NewPos(x, bottom-RulerMajorTickLength)
			objects = append(objects, tick)

			label := canvas.NewText(geom.Timecode(float64(frame)), tv.palette.RulerTickMajor)
			label.TextSize = RulerLabelSize
			label.Move(fyne.NewPos(x+2, bottom-RulerLabelOffset-RulerLabelSize))
			objects = append(objects, label)
		} else {
			tick := canvas.NewLine(tv.palette.RulerTickMinor)
			tick.Position1 = fyne.NewPos(x, bottom)
			tick.Position2 = fyne.NewPos(x, bottom-RulerMinorTickLength)
			objects = append(objects, tick)
		}
	}
	return objects
}

// laneObjects builds the track lane backgrounds, alternating the fill on the
// track name
func (tv *TimelineView) laneObjects(sceneW float32, tracks []*model.Track) []fyne.CanvasObject {
	layout := tv.mapper.Layout()

	objects := make([]fyne.CanvasObject, 0, len(tracks))
	for i, track := range tracks {
		fill := tv.palette.TrackLaneBG1
		if track.AlternateLane() {
			fill = tv.palette.TrackLaneBG2
		}
		lane := canvas.NewRectangle(fill)
		lane.StrokeColor = tv.palette.TrackLaneBorder
		lane.StrokeWidth = 1
		lane.Move(fyne.NewPos(layout.LeftMargin, tv.mapper.TrackTop(tracks, i)))
		lane.Resize(fyne.NewSize(sceneW-layout.LeftMargin, tv.mapper.TrackHeight(track)))
		objects = append(objects, lane)
	}
	return objects
}

// clipObjects positions a widget for every clip, creating widgets lazily so
// drag state survives layout passes
func (tv *TimelineView) clipObjects(tracks []*model.Track) []fyne.CanvasObject {
	var objects []fyne.CanvasObject
	for i, track := range tracks {
		top := tv.mapper.TrackTop(tracks, i)
		height := tv.mapper.TrackHeight(track)
		for _, clip := range track.Clips {
			cw, ok := tv.clipWidgets[clip.ID]
			if !ok {
				cw = NewClipWidget(clip, track, tv)
				tv.clipWidgets[clip.ID] = cw
			}
			cw.SetGeometry(tv.mapper.ClipX(clip), top, tv.mapper.ClipWidth(clip), height)
			cw.Refresh()
			objects = append(objects, cw)
		}
	}
	return objects
}

// headerObjects builds the track header column
func (tv *TimelineView) headerObjects(tracks []*model.Track) []fyne.CanvasObject {
	layout := tv.mapper.Layout()

	var objects []fyne.CanvasObject
	for i, track := range tracks {
		top := tv.mapper.TrackTop(tracks, i)
		height := tv.mapper.TrackHeight(track)

		header := canvas.NewRectangle(tv.palette.TrackHeaderBG)
		header.Move(fyne.NewPos(0, top))
		header.Resize(fyne.NewSize(layout.LeftMargin, height))
		objects = append(objects, header)

		name := canvas.NewText(track.Name, tv.palette.TrackHeaderText)
		name.TextSize = TrackHeaderSize
		name.Move(fyne.NewPos(TrackHeaderInset, top+(height-TrackHeaderSize)/2))
		objects = append(objects, name)

		border := canvas.NewLine(tv.palette.TrackLaneBorder)
		border.Position1 = fyne.NewPos(0, top+height)
		border.Position2 = fyne.NewPos(layout.LeftMargin, top+height)
		objects = append(objects, border)
	}
	return objects
}

// timeLabelObjects builds the playhead timecode box above the headers
func (tv *TimelineView) timeLabelObjects() []fyne.CanvasObject {
	layout := tv.mapper.Layout()

	box := canvas.NewRectangle(tv.palette.TimeLabelBG)
	box.Resize(fyne.NewSize(layout.LeftMargin, layout.TopMargin))

	label := canvas.NewText(geom.Timecode(float64(tv.timeline.PlayheadFrame())), tv.palette.TimeLabelText)
	label.TextSize = TimeLabelTextSize
	size := label.MinSize()
	label.Move(fyne.NewPos(
		(layout.LeftMargin-size.Width)/2,
		(layout.TopMargin-size.Height)/2,
	))

	return []fyne.CanvasObject{box, label}
}

// CreateRenderer builds the scene renderer
func (tv *TimelineView) CreateRenderer() fyne.WidgetRenderer {
	return &timelineRenderer{view: tv}
}

// timelineRenderer sizes the scene container to the derived scene bounds so
// the surrounding scroller can pan it
type timelineRenderer struct {
	view *TimelineView
}

func (r *timelineRenderer) Layout(_ fyne.Size) {
	r.view.content.Resize(r.view.sceneSize)
}

func (r *timelineRenderer) MinSize() fyne.Size {
	return r.view.sceneSize
}

func (r *timelineRenderer) Refresh() {
	r.view.Relayout()
}

func (r *timelineRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.view.content}
}

func (r *timelineRenderer) Destroy() {}
