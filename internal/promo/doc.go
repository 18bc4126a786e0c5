// Package promo defines the core request types for promotional image
// generation: the user request, the supported aspect ratios and their
// mapping to search orientations, and the per-request generation state
// machine consumed by the CLI and HTTP surfaces.
package promo
