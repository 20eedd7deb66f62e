package model

// Package model defines the timeline domain data structures: tracks, clips,
// the timeline itself, and the playback state enum. Structures hold committed
// state only; draft positions during a drag live in the UI layer until the
// drag commits.
