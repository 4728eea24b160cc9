// Package priceaxis renders the interactive labels of a chart's price scale:
// last-price tags, the crosshair label, draggable price-line labels and
// their close buttons.
//
// The package splits into a pure geometry engine and a layered drawer.
// ComputeGeometry resolves a label's placement into an immutable Geometry
// record holding both bitmap-space (physical pixel) and media-space (logical
// pixel) values; DrawLabel consumes the record and issues an ordered
// sequence of canvas operations. The engine has no drawing side effects and
// the drawer does no arithmetic beyond offsetting record fields, so each
// half is testable on its own.
//
// Crispness comes from the geometry engine's rounding discipline: all fill
// and stroke coordinates are integer physical pixels, and the label height
// is nudged so its parity matches the tick mark's height. Equal parity is
// what keeps a tick centered on the anchor line instead of straddling two
// pixel rows as a blurred band.
//
// Geometry records are ephemeral: computed fresh per draw call, never
// cached, never mutated. Drawing is stateless and idempotent; identical
// inputs produce the identical operation sequence.
package priceaxis
