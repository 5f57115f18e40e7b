package engine

import (
	"net"

	"github.com/google/uuid"

	"github.com/mahkoh/wl-proxy-sub012/internal/object"
	"github.com/mahkoh/wl-proxy-sub012/internal/wire"
)

// Endpoint is one downstream client connection: its own object namespace
// (client_table, client-side allocator for server-originated new_ids) and
// the socket plumbing to read requests from and write events to it.
//
// Server-namespace state (the upstream connection and its object table)
// lives on State instead, since every Endpoint shares the same upstream.
type Endpoint struct {
	ID      uint64
	TraceID string

	Conn   *net.UnixConn
	Reader *wire.Reader
	Writer *wire.Writer
	Out    *Outbound

	ClientTable *object.Table
	ClientAlloc *object.ClientAllocator

	closed bool
}

// NewEndpoint wires up a new client connection's namespace and seeds its
// local view of the well-known wl_display object.
func NewEndpoint(id uint64, conn *net.UnixConn) *Endpoint {
	e := &Endpoint{
		ID:          id,
		TraceID:     uuid.NewString(),
		Conn:        conn,
		Reader:      wire.NewReader(conn),
		Writer:      wire.NewWriter(conn),
		ClientTable: object.NewTable(),
		ClientAlloc: object.NewClientAllocator(),
	}
	e.Out = NewOutbound(e.Writer)

	display := object.NewCore(DisplayServerID, DisplayClientID, "wl_display", 1, id)
	e.ClientTable.Insert(display)

	return e
}

// Close marks the endpoint as gone and closes its connection. Idempotent.
func (e *Endpoint) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	return e.Conn.Close()
}
