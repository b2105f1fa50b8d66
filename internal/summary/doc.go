// Package summary turns a flat trade list into per-stock summaries.
//
// Everything here is a pure function of its arguments: callers load the
// trades, pass them in together with the active filters, and render the
// result. Nothing is cached between calls.
package summary
