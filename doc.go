// Package lvlseq is a small toolbox for traversing and splicing linear
// sequences through capability-tagged cursors — from plain slices to
// linked stores you bring yourself.
//
// 🚀 What is lvlseq?
//
//	A pure, synchronous library that brings together:
//		• Cursors: opaque positions with a static capability tier
//		  (forward-only < bidirectional < random-access)
//		• Views: non-owning windows over contiguous caller-owned data
//		• Traversal: Advance, Next, Prev, Distance — O(1) where the
//		  tier allows it, stepping loops where it does not
//		• Splicing: copy any cursor range into a destination through a
//		  pluggable insertion strategy (append vs positional)
//		• Reference stores: Slice, List and Chain, one per tier
//
// ✨ Why choose lvlseq?
//
//   - Capability as a type property – a forward-only cursor simply has
//     no Back method; misuse fails with a sentinel, never a hang
//   - Zero ownership surprises – views and cursors never own, copy or
//     free the data they point into
//   - Pure Go – no cgo, no I/O, no hidden goroutines
//
// Everything is organized under five subpackages:
//
//	cursor/   — capability contract, tiers and shared sentinel errors
//	view/     — non-owning contiguous windows + random-access cursor
//	traverse/ — Advance / Next / Prev / Distance over any cursor
//	splice/   — insertion-copy with append / insert-before strategies
//	seq/      — reference backing stores (Slice, List, Chain)
//
// Quick ASCII example:
//
//	dst: [-1, -2]          src: [0 1 2 3 4 5]
//	splice.Copy(src.Begin(), src.End(), splice.Before[int](dst, at))
//	dst: [-1, 0, 1, 2, 3, 4, 5, -2]
//
//	go get github.com/katalvlaran/lvlseq
package lvlseq
