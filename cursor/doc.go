// Package cursor defines the capability contract every lvlseq position
// satisfies, plus the shared sentinel errors of the module.
//
// A cursor is an opaque, capability-tagged handle to one location inside a
// sequence: either a live element or the sequence's end sentinel (one past
// the last element, never dereferenceable). Cursors are small value types
// and never own the sequence or its elements; every movement returns a new
// cursor instead of mutating the receiver.
//
// Capability tiers form a strict interface hierarchy, so the tier of a
// concrete cursor type is a compile-time property, not a runtime flag:
//
//	Forward[C]        — Step, Equal               (forward-only)
//	Bidirectional[C]  — Forward[C] + Back         (can retreat)
//	RandomAccess[C]   — Bidirectional[C] + Seek,
//	                    DistanceTo, both O(1)     (can jump)
//
// Element access is a separate concern: Reader[T] exposes Value, and
// ValueCursor[C, T] combines it with movement for algorithms that copy
// elements (see the splice package).
//
// Backing containers create cursors through their Begin/End accessors and
// must honor the validity rules: a cursor is invalidated when the container
// relocates or removes the element it denotes. The library documents this
// precondition and does not check it.
//
// Errors:
//
//	ErrInvalidPosition – dereferencing the end sentinel, or handing a
//	                     cursor to a container it does not belong to
//	ErrUnsupported     – operation above the cursor's capability tier
//	ErrOutOfRange      – movement past the sequence bounds
//	ErrUnreachable     – bounded scan never reached its target
package cursor
