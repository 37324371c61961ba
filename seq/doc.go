// Package seq ships the reference backing stores of lvlseq — one container
// per capability tier, so every traversal and splice path has a concrete
// collaborator:
//
//	Slice[T] — growable contiguous store; random-access cursors,
//	           amortized O(1) Append, O(m) InsertBefore (suffix shift)
//	List[T]  — doubly linked ring with a sentinel root; bidirectional
//	           cursors, O(1) Append and O(1) InsertBefore
//	Chain[T] — singly linked with a tail pointer; forward-only cursors,
//	           O(1) Append, no positional insertion (the method simply
//	           does not exist, so the limitation is a compile-time fact)
//
// All three expose Begin/End cursor accessors and satisfy the destination
// contracts of the splice package that their structure can honor.
//
// Cursor validity: mutating a container may invalidate cursors obtained
// before the mutation (a Slice append can relocate the backing array; a
// Chain Begin taken while empty stays the end sentinel). Containers verify
// that a cursor handed to a mutation primitive belongs to them — a foreign
// cursor fails with cursor.ErrInvalidPosition — but staleness is the
// caller's responsibility, as with every Go container.
//
// None of the containers is safe for concurrent use; callers synchronize.
package seq
