// SPDX-License-Identifier: MIT
// Package cursor: sentinel error set shared by every lvlseq package.
// All algorithms MUST return these sentinels and tests MUST check them via
// errors.Is. No algorithm panics on user-triggered conditions; panics are
// reserved for programmer errors in private helpers (if any).

package cursor

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "cursor: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidPosition is returned when a cursor is dereferenced at the
	// end sentinel, or when a cursor is handed to a container instance it
	// does not belong to.
	ErrInvalidPosition = errors.New("cursor: position is not dereferenceable")

	// ErrUnsupported is returned when an operation requires a capability
	// tier the cursor does not have (e.g. retreat on a forward-only cursor).
	ErrUnsupported = errors.New("cursor: operation not supported by capability tier")

	// ErrOutOfRange is returned when a movement would leave the sequence
	// bounds: stepping past the end sentinel, retreating before the first
	// element, or seeking outside [begin, end].
	ErrOutOfRange = errors.New("cursor: movement out of sequence bounds")

	// ErrUnreachable is returned by bounded scans (traverse.Distance) when
	// the target position was never reached.
	ErrUnreachable = errors.New("cursor: target position not forward-reachable")
)
