// Package compose renders word-wrapped caption text over a background
// image and serializes the result to PNG. Drawing happens at the source
// image's native resolution to avoid scaling artifacts.
package compose
