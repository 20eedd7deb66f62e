package config

// Package config holds the immutable theme object (layout constants plus a
// named color palette) threaded to every component that needs them, and the
// persisted user settings backed by Fyne preferences. Components never read
// shared mutable globals; they receive a Theme value at construction.
