// Package tui implements the interactive debug console over the
// capture stores.
//
// The console is strictly a reader: it snapshots the selected store on
// every frame, applies the view filter at read time, and never mutates
// captured history. While following, the viewport shows the trailing
// records that fit; pausing (p) switches to scrollback over the full
// store, and the filter panel (f) adjusts the severity threshold and
// source scope at runtime.
package tui
