// Package processor contains the core generation pipeline: it translates
// the caption into search keywords, resolves a background image, runs the
// compositor and writes the downloadable artifact. This package serves as
// the main coordinator between all other components.
package processor
