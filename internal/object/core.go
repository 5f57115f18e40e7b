package object

import "fmt"

// HandlerBorrowedError is returned when a request arrives for an object
// whose handler is already being invoked reentrantly. The proxy has no
// threads to race against itself, but a handler can still call back into
// the dispatcher (e.g. while relaying a request) before it returns, and
// that nested call must be rejected rather than deadlocked.
type HandlerBorrowedError struct {
	Interface string
	ServerID  uint32
}

func (e *HandlerBorrowedError) Error() string {
	return fmt.Sprintf("handler already borrowed: %s@%d", e.Interface, e.ServerID)
}

// Core is the identity and lifecycle state shared by every proxied
// object: its id in both namespaces, the interface it implements, and
// whether it has already been destroyed.
//
// A Core with ClientID == 0 has no client-side binding (e.g. a server
// object the proxy created for its own bookkeeping, not yet relayed).
type Core struct {
	ServerID   uint32
	ClientID   uint32
	Interface  string
	Version    uint32
	EndpointID uint64 // owning client connection; 0 selects the server endpoint itself
	Destroyed  bool

	// ForwardToServer and ForwardToClient gate the default handler's relay
	// in each direction. Both default true; a handler override clears one
	// to turn its object into a one-shot or inert-in-that-direction sink
	// without touching the other direction's traffic.
	ForwardToServer bool
	ForwardToClient bool

	// Handler is the optional override for this object's typed handler.
	// Nil means "use the default forward-unchanged behaviour"; a non-nil
	// value is a per-interface RequestHandler constructed for this
	// object's interface at creation time.
	Handler RequestHandler

	borrowed bool
}

// NewCore constructs a Core for a freshly allocated object. Forwarding in
// both directions defaults to enabled; callers clear
// ForwardToServer/ForwardToClient explicitly when a handler wants
// one-shot or suppressed relay semantics.
func NewCore(serverID, clientID uint32, iface string, version uint32, endpointID uint64) *Core {
	return &Core{
		ServerID:        serverID,
		ClientID:        clientID,
		Interface:       iface,
		Version:         version,
		EndpointID:      endpointID,
		ForwardToServer: true,
		ForwardToClient: true,
	}
}

// Borrow marks the object's handler as in use for the duration of one
// dispatch call, returning a release function to call on the way out.
// It fails if the handler is already borrowed by an enclosing call.
func (c *Core) Borrow() (release func(), err error) {
	if c.borrowed {
		return nil, &HandlerBorrowedError{Interface: c.Interface, ServerID: c.ServerID}
	}
	c.borrowed = true
	return func() { c.borrowed = false }, nil
}

// MarkDestroyed flips the object to inert. Destroyed objects still exist
// in the table until the peer acknowledges deletion (delete_id for
// client-allocated ids), but no further requests or events may target them.
func (c *Core) MarkDestroyed() {
	c.Destroyed = true
}
