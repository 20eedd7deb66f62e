package geom

// Package geom converts between the frame domain and pixel space. The mapper
// is a pure function set over the layout constants and the current zoom
// factors; it owns no model state. The rendering layer re-derives every
// rectangle from the model through this package on each layout pass.
