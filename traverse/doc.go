// Package traverse implements the generic movement algorithms of lvlseq:
// Advance, Next, Prev and Distance over any cursor satisfying the
// capability contract of package cursor.
//
// Every algorithm is generic over the concrete cursor type C and picks its
// complexity tier from the capabilities C actually implements:
//
//   - random-access cursors take the O(1) Seek / DistanceTo path,
//   - bidirectional cursors may move backward one step at a time,
//   - forward-only cursors may only step forward; a requested retreat
//     fails with cursor.ErrUnsupported.
//
// The tier is a property of the concrete type, so the forward-loop and the
// O(1) jump are guaranteed to land on the same position for any well-formed
// cursor (see the package tests).
//
// All functions are pure: the input cursor is never mutated, the moved copy
// is returned. On failure, the cursor reached so far is returned alongside
// the error.
package traverse
