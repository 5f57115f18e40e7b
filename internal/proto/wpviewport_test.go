package proto

import "testing"

func TestViewportHandlerRejectsNegativeSourcePosition(t *testing.T) {
	h := ViewportHandler{}
	words := []uint32{wpFixedWord(-1), wpFixedWord(0), wpFixedWord(10), wpFixedWord(10)}
	err := h.HandleRequest(viewportOpSetSource, words)
	pe, ok := err.(*ProtocolError)
	if !ok || pe.Code != uint32(WpViewportErrorBadValue) {
		t.Fatalf("err = %v, want ProtocolError{Code: BadValue}", err)
	}
}

func TestViewportHandlerAllowsUnsetSource(t *testing.T) {
	h := ViewportHandler{}
	unset := wpFixedWord(-1)
	words := []uint32{unset, unset, unset, unset}
	if err := h.HandleRequest(viewportOpSetSource, words); err != nil {
		t.Fatalf("HandleRequest(unset) = %v, want nil", err)
	}
}

func TestViewportHandlerRejectsNonPositiveDestination(t *testing.T) {
	h := ViewportHandler{}
	err := h.HandleRequest(viewportOpSetDestination, []uint32{0, 10})
	pe, ok := err.(*ProtocolError)
	if !ok || pe.Code != uint32(WpViewportErrorBadValue) {
		t.Fatalf("err = %v, want ProtocolError{Code: BadValue}", err)
	}
}

func TestViewportHandlerAllowsUnsetDestination(t *testing.T) {
	h := ViewportHandler{}
	var negOneI32 int32 = -1
	negOne := uint32(negOneI32) // destination args are plain ints, not fixed-point
	if err := h.HandleRequest(viewportOpSetDestination, []uint32{negOne, negOne}); err != nil {
		t.Fatalf("HandleRequest(unset) = %v, want nil", err)
	}
}

func TestViewportHandlerIgnoresOtherOpcodes(t *testing.T) {
	h := ViewportHandler{}
	if err := h.HandleRequest(0, nil); err != nil {
		t.Fatalf("HandleRequest(destroy) = %v, want nil", err)
	}
}

// wpFixedWord returns the raw wire word for the integer i (zero fractional
// part), matching wire.Fixed's 24.8 encoding.
func wpFixedWord(i int32) uint32 {
	return uint32(i * 256)
}
