package proto

import "github.com/mahkoh/wl-proxy-sub012/internal/wire"

// viewport request opcodes, per the registered wp_viewport schema.
const (
	viewportOpSetSource      = 1
	viewportOpSetDestination = 2
)

// ViewportHandler validates wp_viewport's crop-and-scale requests against
// the bounds the real protocol documents, raising the matching numbered
// protocol error instead of relaying an out-of-range request upstream.
type ViewportHandler struct{}

func (ViewportHandler) HandleRequest(opcode uint16, words []uint32) error {
	switch opcode {
	case viewportOpSetSource:
		return checkViewportSource(words)
	case viewportOpSetDestination:
		return checkViewportDestination(words)
	default:
		return nil
	}
}

func checkViewportSource(words []uint32) error {
	if len(words) != 4 {
		return nil // let the dispatcher's own argument-count check fire
	}
	x := wire.FixedFromWire(int32(words[0]))
	y := wire.FixedFromWire(int32(words[1]))
	width := wire.FixedFromWire(int32(words[2]))
	height := wire.FixedFromWire(int32(words[3]))

	unset := wire.FixedFromInt(-1)
	if x == unset && y == unset && width == unset && height == unset {
		return nil
	}
	if x.Wire() < 0 || y.Wire() < 0 {
		return &ProtocolError{Interface: "wp_viewport", Code: uint32(WpViewportErrorBadValue), Message: "negative source position"}
	}
	if width.Wire() <= 0 || height.Wire() <= 0 {
		return &ProtocolError{Interface: "wp_viewport", Code: uint32(WpViewportErrorBadValue), Message: "non-positive source size"}
	}
	return nil
}

func checkViewportDestination(words []uint32) error {
	if len(words) != 2 {
		return nil
	}
	width := int32(words[0])
	height := int32(words[1])
	if width == -1 && height == -1 {
		return nil
	}
	if width <= 0 || height <= 0 {
		return &ProtocolError{Interface: "wp_viewport", Code: uint32(WpViewportErrorBadValue), Message: "non-positive destination size"}
	}
	return nil
}
