package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/cutline/internal/config"
)

// Toolbar is the transport and zoom strip above the timeline
type Toolbar struct {
	playBtn     *widget.Button
	backBtn     *widget.Button
	forwardBtn  *widget.Button
	settingsBtn *widget.Button
	hZoomSlider *widget.Slider
	vZoomSlider *widget.Slider
	container   *fyne.Container

	// Callbacks into RootUI
	onPlayStop    func()
	onStepBack    func()
	onStepForward func()
	onHZoom       func(value float64)
	onVZoom       func(value float64)
	onSettings    func()
}

// NewToolbar creates the toolbar with slider positions restored from settings
func NewToolbar(settings *config.Settings) *Toolbar {
	tb := &Toolbar{}

	tb.playBtn = widget.NewButton(IconPlay, func() {
		if tb.onPlayStop != nil {
			tb.onPlayStop()
		}
	})
	tb.playBtn.Importance = widget.HighImportance

	tb.backBtn = widget.NewButton(IconBack, func() {
		if tb.onStepBack != nil {
			tb.onStepBack()
		}
	})
	tb.forwardBtn = widget.NewButton(IconForward, func() {
		if tb.onStepForward != nil {
			tb.onStepForward()
		}
	})

	tb.settingsBtn = widget.NewButton(IconSettings, func() {
		if tb.onSettings != nil {
			tb.onSettings()
		}
	})
	tb.settingsBtn.Importance = widget.LowImportance

	tb.hZoomSlider = widget.NewSlider(ZoomSliderMin, ZoomSliderMax)
	tb.hZoomSlider.Value = float64(settings.GetHZoomSlider())
	tb.hZoomSlider.OnChanged = func(value float64) {
		if tb.onHZoom != nil {
			tb.onHZoom(value)
		}
	}

	tb.vZoomSlider = widget.NewSlider(ZoomSliderMin, ZoomSliderMax)
	tb.vZoomSlider.Value = float64(settings.GetVZoomSlider())
	tb.vZoomSlider.OnChanged = func(value float64) {
		if tb.onVZoom != nil {
			tb.onVZoom(value)
		}
	}

	transport := container.NewHBox(tb.backBtn, tb.playBtn, tb.forwardBtn)

	zoomRow := container.New(&zoomRowLayout{},
		widget.NewLabel(LabelHZoom), tb.hZoomSlider,
		widget.NewLabel(LabelVZoom), tb.vZoomSlider,
	)

	tb.container = container.NewBorder(nil, nil, transport, tb.settingsBtn, zoomRow)
	return tb
}

// SetCallbacks wires the toolbar actions
func (tb *Toolbar) SetCallbacks(
	onPlayStop, onStepBack, onStepForward func(),
	onHZoom, onVZoom func(value float64),
	onSettings func(),
) {
	tb.onPlayStop = onPlayStop
	tb.onStepBack = onStepBack
	tb.onStepForward = onStepForward
	tb.onHZoom = onHZoom
	tb.onVZoom = onVZoom
	tb.onSettings = onSettings
}

// Container returns the toolbar's root container
func (tb *Toolbar) Container() *fyne.Container {
	return tb.container
}

// HZoomValue returns the horizontal zoom slider position
func (tb *Toolbar) HZoomValue() float64 {
	return tb.hZoomSlider.Value
}

// VZoomValue returns the vertical zoom slider position
func (tb *Toolbar) VZoomValue() float64 {
	return tb.vZoomSlider.Value
}

// SetPlaying flips the play button between play and stop glyphs
func (tb *Toolbar) SetPlaying(playing bool) {
	if playing {
		tb.playBtn.SetText(IconStop)
	} else {
		tb.playBtn.SetText(IconPlay)
	}
}

// zoomRowLayout spreads two label+slider pairs across the row, giving each
// slider an equal share of the remaining width. Sliders collapse to zero
// width inside a plain HBox, hence the custom layout.
type zoomRowLayout struct{}

func (l *zoomRowLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var width, height float32
	for _, obj := range objects {
		size := obj.MinSize()
		width += size.Width
		if size.Height > height {
			height = size.Height
		}
	}
	return fyne.NewSize(width, height)
}

func (l *zoomRowLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	var fixed float32
	sliders := 0
	for _, obj := range objects {
		if _, ok := obj.(*widget.Slider); ok {
			sliders++
			continue
		}
		fixed += obj.MinSize().Width
	}

	var sliderWidth float32
	if sliders > 0 {
		sliderWidth = (size.Width - fixed) / float32(sliders)
		if sliderWidth < 0 {
			sliderWidth = 0
		}
	}

	var x float32
	for _, obj := range objects {
		width := obj.MinSize().Width
		if _, ok := obj.(*widget.Slider); ok {
			width = sliderWidth
		}
		obj.Resize(fyne.NewSize(width, size.Height))
		obj.Move(fyne.NewPos(x, 0))
		x += width
	}
}
