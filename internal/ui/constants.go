package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (symbols)
const (
	IconPlay     = "▶"
	IconStop     = "⏹"
	IconBack     = "<<"
	IconForward  = ">>"
	IconSettings = "⚙"
)

// Labels
const (
	LabelHZoom = "H-Zoom:"
	LabelVZoom = "V-Zoom:"
)

// Scene sizing
const (
	// MinSceneWidth keeps the timeline scrollable past the end marker
	MinSceneWidth float32 = 2000

	// SceneRightPadding is the space kept visible past the end marker
	SceneRightPadding float32 = 200
)

// Marker sizing
const (
	MarkerLineWidth   float32 = 4
	MarkerGripWidth   float32 = 15
	MarkerGripHeight  float32 = 15
	EndMarkerWidth    float32 = 4
	MarkerGrabPadding float32 = 3
)

// Ruler tick sizing
const (
	RulerMajorTickLength float32 = 15
	RulerMinorTickLength float32 = 5
	RulerLabelOffset     float32 = 17
	RulerLabelSize       float32 = 10
)

// Clip label sizing
const (
	ClipLabelMargin   float32 = 2
	ClipTimecodeSize  float32 = 8
	ClipTitleSize     float32 = 10
	TrackHeaderInset  float32 = 5
	TrackHeaderSize   float32 = 10
	TimeLabelTextSize float32 = 10
)

// Zoom slider scale (toolbar sliders run 1..100)
const (
	ZoomSliderMin float64 = 1
	ZoomSliderMax float64 = 100
)

// HZoomFromSlider maps the 1..100 toolbar slider onto the 0.535..4.0
// horizontal zoom range
func HZoomFromSlider(value float64) float64 {
	return 0.5 + (value/100.0)*3.5
}

// VZoomFromSlider maps the 1..100 toolbar slider onto the 0.515..2.0
// vertical zoom range
func VZoomFromSlider(value float64) float64 {
	return 0.5 + (value/100.0)*1.5
}
