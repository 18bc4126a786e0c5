// Package image resolves search keywords to stock photo URLs. It wraps
// the Unsplash and Pixabay search APIs behind a common Searcher interface
// and layers a self-healing Resolver on top: every failure mode degrades
// to a deterministic placeholder URL, so callers never see an error.
package image
