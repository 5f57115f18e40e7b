package proto

import "testing"

func TestNewHandlerForKnownInterfaces(t *testing.T) {
	if _, ok := NewHandlerFor("wp_viewport").(ViewportHandler); !ok {
		t.Fatal("NewHandlerFor(wp_viewport) did not return a ViewportHandler")
	}
	if _, ok := NewHandlerFor("wp_color_management_surface_v1").(ColorManagementSurfaceHandler); !ok {
		t.Fatal("NewHandlerFor(wp_color_management_surface_v1) did not return a ColorManagementSurfaceHandler")
	}
}

func TestNewHandlerForUnknownInterfaceIsNil(t *testing.T) {
	if h := NewHandlerFor("wl_surface"); h != nil {
		t.Fatalf("NewHandlerFor(wl_surface) = %v, want nil", h)
	}
}

func TestViewporterAndColorManagerConstructViewport(t *testing.T) {
	viewporter, ok := Lookup("wp_viewporter")
	if !ok {
		t.Fatal("expected wp_viewporter to be registered")
	}
	sig, ok := viewporter.Request(1)
	if !ok || sig.Name != "get_viewport" {
		t.Fatalf("Request(1) = %+v, %v, want get_viewport, true", sig, ok)
	}
	if len(sig.Args) != 2 || sig.Args[0].Kind != ArgNewID || sig.Args[0].Iface != "wp_viewport" {
		t.Fatalf("get_viewport args = %+v, want new_id wp_viewport first", sig.Args)
	}

	colorManager, ok := Lookup("wp_color_manager_v1")
	if !ok {
		t.Fatal("expected wp_color_manager_v1 to be registered")
	}
	sig, ok = colorManager.Request(2)
	if !ok || sig.Name != "get_surface" {
		t.Fatalf("Request(2) = %+v, %v, want get_surface, true", sig, ok)
	}
	if len(sig.Args) != 2 || sig.Args[0].Kind != ArgNewID || sig.Args[0].Iface != "wp_color_management_surface_v1" {
		t.Fatalf("get_surface args = %+v, want new_id wp_color_management_surface_v1 first", sig.Args)
	}
}
