package control

// Package control turns pointer positions into committed model state: the
// clip drag-snap-overlap resolver and the constrained-drag controllers for
// the playhead and end markers. Controllers receive raw pixel positions from
// the input layer and always project them onto the horizontal axis before
// they reach the timeline.
