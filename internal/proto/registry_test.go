package proto

import "testing"

func TestLookupKnownInterface(t *testing.T) {
	schema, ok := Lookup("wl_surface")
	if !ok {
		t.Fatal("expected wl_surface to be registered")
	}
	if schema.Interface != "wl_surface" {
		t.Fatalf("Interface = %q, want wl_surface", schema.Interface)
	}
	sig, ok := schema.Request(6)
	if !ok || sig.Name != "commit" {
		t.Fatalf("Request(6) = %+v, %v, want commit, true", sig, ok)
	}
}

func TestLookupUnknownInterface(t *testing.T) {
	if _, ok := Lookup("xdg_toplevel"); ok {
		t.Fatal("xdg_toplevel should not have a registered schema")
	}
}

func TestDisplayGetRegistryIsNewID(t *testing.T) {
	schema, _ := Lookup("wl_display")
	sig, ok := schema.Request(1)
	if !ok || sig.Name != "get_registry" {
		t.Fatalf("Request(1) = %+v, %v, want get_registry, true", sig, ok)
	}
	if len(sig.Args) != 1 || sig.Args[0].Kind != ArgNewID {
		t.Fatalf("get_registry args = %+v, want single ArgNewID", sig.Args)
	}
}

func TestFixedArity(t *testing.T) {
	surface, _ := Lookup("wl_surface")
	destroy, _ := surface.Request(0)
	if n, ok := destroy.FixedArity(); !ok || n != 0 {
		t.Errorf("destroy FixedArity = %d, %v, want 0, true", n, ok)
	}
	attach, _ := surface.Request(1)
	if n, ok := attach.FixedArity(); !ok || n != 3 {
		t.Errorf("attach FixedArity = %d, %v, want 3, true", n, ok)
	}

	registry, _ := Lookup("wl_registry")
	bind, _ := registry.Request(0)
	if _, ok := bind.FixedArity(); ok {
		t.Error("bind carries a string argument and must not report fixed arity")
	}

	syncobj, _ := Lookup("wp_linux_drm_syncobj_manager_v1")
	importTimeline, _ := syncobj.Request(2)
	if n, ok := importTimeline.FixedArity(); !ok || n != 1 {
		t.Errorf("import_timeline FixedArity = %d, %v, want 1, true (fd is out-of-band)", n, ok)
	}
}

func TestInterfacesIncludesAllRegistered(t *testing.T) {
	names := Interfaces()
	found := make(map[string]bool, len(names))
	for _, n := range names {
		found[n] = true
	}
	for _, want := range []string{"wl_registry", "wl_compositor", "wl_data_device", "wp_viewport"} {
		if !found[want] {
			t.Errorf("Interfaces() missing %q", want)
		}
	}
}
