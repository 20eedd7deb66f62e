package ui

// Package ui contains the Fyne-based desktop surface for the timeline
// editor. It is a pure consumer of the core: every rectangle it shows is
// re-derived from the model through the geometry mapper on each layout pass,
// and every pointer drag reaches the model only through the controllers in
// internal/control.
