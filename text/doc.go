// Package text provides the text-metrics collaborator of the label renderer:
// a Measurer interface, an LRU-backed width cache tuned for price strings,
// and a go-text/typesetting HarfBuzz-shaped implementation.
//
// The renderer itself never measures text; it is handed widths and baseline
// corrections that this package computes and caches. Cache results are
// treated as up to date for the current font, so callers must purge the
// cache when a font changes.
package text
