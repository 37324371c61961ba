// Package view provides a non-owning window over a contiguous run of
// elements, plus a read-only random-access cursor into it.
//
// A View is the pointer/length pair of a Go slice header and nothing more:
// constructing one copies no elements, destroying one frees nothing. The
// backing store exclusively owns the elements; the View must not outlive it
// and must not observe a relocation of the underlying array (e.g. an append
// that grows it) — both are the caller's responsibility and are not checked.
//
// Views bridge contiguous stores into the traverse and splice packages:
// Begin/End yield cursors at the random-access tier, so every algorithm
// takes its O(1) path over a View.
package view
