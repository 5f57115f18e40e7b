package engine

import "github.com/mahkoh/wl-proxy-sub012/internal/object"

// ClientDestroy runs the client side of the destroy handshake: the
// object becomes inert immediately and its client-namespace binding is
// removed from clientTable. The server-side
// binding is left alone; it is only released once the upstream's
// delete_id acknowledgement arrives (see ReleaseDeletedID). Idempotent: a
// second call on an already-destroyed object is a no-op.
func ClientDestroy(core *object.Core, clientTable *object.Table) {
	if core.Destroyed {
		return
	}
	core.Destroyed = true
	clientTable.DeleteClient(core)
}

// ServerDestroy mirrors ClientDestroy for server-initiated teardown (e.g.
// a global going away): the object becomes inert and its server-namespace
// binding is released immediately. Any client-side binding is left for
// the caller to tear down via its own relay of the destroying event.
// Idempotent.
func ServerDestroy(core *object.Core, serverTable *object.Table) {
	if core.Destroyed {
		return
	}
	core.Destroyed = true
	serverTable.DeleteServer(core)
}

// ReleaseDeletedID completes the handshake begun by ClientDestroy: the
// upstream server has confirmed (via wl_display.delete_id) that core's
// server-namespace id is free. Both tables drop every remaining binding
// for core; the object is now fully gone from both namespaces. Idempotent.
func ReleaseDeletedID(core *object.Core, clientTable, serverTable *object.Table) {
	core.Destroyed = true
	clientTable.Delete(core)
	serverTable.Delete(core)
}
