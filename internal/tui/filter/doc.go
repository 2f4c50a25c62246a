// Package filter implements the console's view-side filtering: a
// minimum-severity threshold and a source scope, both adjustable at
// runtime without touching captured history.
//
// Scope selection is a store-selection decision: the console first
// picks which capture store to read (primary, or one tracked source's
// secondary store), then applies the severity predicate to each record
// drawn from it. The predicate is pure and boundary-inclusive.
package filter
