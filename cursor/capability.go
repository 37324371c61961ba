package cursor

// Capability names the traversal tier of a concrete cursor type.
//
//   - CapForwardOnly   — Step only; retreat and jumps are unsupported.
//   - CapBidirectional — Step and Back; jumps remain O(n).
//   - CapRandomAccess  — Step, Back, Seek and DistanceTo, the latter two O(1).
//
// The tier is a static property of the concrete type (which interfaces it
// implements); Capability exists for diagnostics and tests, never for
// dispatch.
type Capability uint8

const (
	// CapForwardOnly cursors implement Forward[C] only.
	CapForwardOnly Capability = iota

	// CapBidirectional cursors additionally implement Bidirectional[C].
	CapBidirectional

	// CapRandomAccess cursors additionally implement RandomAccess[C].
	CapRandomAccess
)

// String returns the human-readable tier name.
func (c Capability) String() string {
	switch c {
	case CapForwardOnly:
		return "ForwardOnly"
	case CapBidirectional:
		return "Bidirectional"
	case CapRandomAccess:
		return "RandomAccess"
	default:
		return "Unknown"
	}
}

// Of reports the capability tier of a concrete cursor type. The result is
// determined entirely by the type, not by the cursor's location.
func Of[C Forward[C]](c C) Capability {
	switch any(c).(type) {
	case RandomAccess[C]:
		return CapRandomAccess
	case Bidirectional[C]:
		return CapBidirectional
	default:
		return CapForwardOnly
	}
}
