package proto

import "strings"

// DndAction is the wl_data_device_manager.dnd_action bitfield: the set of
// drag-and-drop actions a source offers or a destination accepts.
type DndAction uint32

const (
	DndActionNone DndAction = 0
	DndActionCopy DndAction = 1 << 0
	DndActionMove DndAction = 1 << 1
	DndActionAsk  DndAction = 1 << 2
)

var dndActionNames = []struct {
	bit  DndAction
	name string
}{
	{DndActionCopy, "COPY"},
	{DndActionMove, "MOVE"},
	{DndActionAsk, "ASK"},
}

// Empty returns the zero DndAction.
func Empty() DndAction { return DndActionNone }

// IsEmpty reports whether no bits are set.
func (a DndAction) IsEmpty() bool {
	return a == DndActionNone
}

// AllKnown returns the union of every bit this version of the proxy
// recognizes; bits outside this set render as hex residue by String.
func AllKnown() DndAction {
	return DndActionCopy | DndActionMove | DndActionAsk
}

// Bits returns the individual set bits of a, low-bit first.
func (a DndAction) Bits() []DndAction {
	var bits []DndAction
	for b := DndAction(1); b != 0 && b <= a; b <<= 1 {
		if a&b != 0 {
			bits = append(bits, b)
		}
	}
	return bits
}

// Contains reports whether every bit set in other is also set in a.
func (a DndAction) Contains(other DndAction) bool {
	return a&other == other
}

// Intersects reports whether a and other share at least one set bit.
func (a DndAction) Intersects(other DndAction) bool {
	return a&other != 0
}

// Union returns the bitwise OR of a and other.
func (a DndAction) Union(other DndAction) DndAction {
	return a | other
}

// Intersection returns the bitwise AND of a and other.
func (a DndAction) Intersection(other DndAction) DndAction {
	return a & other
}

// String renders the action set in ascending bit order, e.g. "COPY | MOVE".
// A zero value renders as "NONE". Bits outside the known set are appended
// as a trailing hex residue rather than dropped silently.
func (a DndAction) String() string {
	if a == DndActionNone {
		return "NONE"
	}

	var parts []string
	remaining := a
	for _, kv := range dndActionNames {
		if a&kv.bit != 0 {
			parts = append(parts, kv.name)
			remaining &^= kv.bit
		}
	}
	if remaining != 0 {
		parts = append(parts, formatUnknownBits(remaining))
	}
	return strings.Join(parts, " | ")
}

func formatUnknownBits(remaining DndAction) string {
	const hex = "0123456789abcdef"
	var buf [8]byte
	v := uint32(remaining)
	for i := 7; i >= 0; i-- {
		buf[i] = hex[v&0xf]
		v >>= 4
	}
	return "0x" + string(buf[:])
}
