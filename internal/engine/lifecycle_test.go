package engine

import (
	"testing"

	"github.com/mahkoh/wl-proxy-sub012/internal/object"
)

func TestClientDestroyRemovesClientBindingOnly(t *testing.T) {
	clientTable := object.NewTable()
	serverTable := object.NewTable()
	core := object.NewCore(5, object.ClientIDBase, "wl_surface", 6, 1)
	clientTable.Insert(core)
	serverTable.Insert(core)

	ClientDestroy(core, clientTable)

	if !core.Destroyed {
		t.Fatal("expected core to be marked destroyed")
	}
	if _, ok := clientTable.LookupClient(object.ClientIDBase); ok {
		t.Fatal("expected client binding to be removed")
	}
	if _, ok := serverTable.LookupServer(5); !ok {
		t.Fatal("expected server binding to survive until delete_id")
	}
}

func TestClientDestroyIsIdempotent(t *testing.T) {
	clientTable := object.NewTable()
	core := object.NewCore(5, object.ClientIDBase, "wl_surface", 6, 1)
	clientTable.Insert(core)

	ClientDestroy(core, clientTable)
	ClientDestroy(core, clientTable) // must not panic or double-remove
}

func TestServerDestroyRemovesServerBindingOnly(t *testing.T) {
	clientTable := object.NewTable()
	serverTable := object.NewTable()
	core := object.NewCore(5, object.ClientIDBase, "wl_surface", 6, 1)
	clientTable.Insert(core)
	serverTable.Insert(core)

	ServerDestroy(core, serverTable)

	if _, ok := serverTable.LookupServer(5); ok {
		t.Fatal("expected server binding to be removed")
	}
	if _, ok := clientTable.LookupClient(object.ClientIDBase); !ok {
		t.Fatal("expected client binding to be left for the caller to tear down")
	}
}

func TestReleaseDeletedIDRemovesBothBindings(t *testing.T) {
	clientTable := object.NewTable()
	serverTable := object.NewTable()
	core := object.NewCore(5, object.ClientIDBase, "wl_surface", 6, 1)
	clientTable.Insert(core)
	serverTable.Insert(core)
	ClientDestroy(core, clientTable)

	ReleaseDeletedID(core, clientTable, serverTable)

	if _, ok := serverTable.LookupServer(5); ok {
		t.Fatal("expected server binding to be removed")
	}
	if !core.Destroyed {
		t.Fatal("expected core to remain marked destroyed")
	}
}
