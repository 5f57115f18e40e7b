package proto

import "testing"

func TestColorManagementSurfaceHandlerRejectsUnknownRenderIntent(t *testing.T) {
	h := ColorManagementSurfaceHandler{}
	err := h.HandleRequest(colorManagementOpSetImageDescription, []uint32{42, maxKnownRenderIntent + 1})
	pe, ok := err.(*ProtocolError)
	if !ok || pe.Code != uint32(WpColorManagementSurfaceV1ErrorRenderIntent) {
		t.Fatalf("err = %v, want ProtocolError{Code: RenderIntent}", err)
	}
}

func TestColorManagementSurfaceHandlerAllowsKnownRenderIntent(t *testing.T) {
	h := ColorManagementSurfaceHandler{}
	if err := h.HandleRequest(colorManagementOpSetImageDescription, []uint32{42, maxKnownRenderIntent}); err != nil {
		t.Fatalf("HandleRequest(max known intent) = %v, want nil", err)
	}
}

func TestColorManagementSurfaceHandlerIgnoresOtherOpcodes(t *testing.T) {
	h := ColorManagementSurfaceHandler{}
	if err := h.HandleRequest(0, nil); err != nil {
		t.Fatalf("HandleRequest(destroy) = %v, want nil", err)
	}
}
