// Package server exposes the generation pipeline over HTTP for the
// browser frontend: keyword resolution as JSON and composited exports as
// PNG downloads.
package server
