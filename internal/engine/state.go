package engine

import (
	"net"
	"sync/atomic"

	"github.com/mahkoh/wl-proxy-sub012/internal/object"
	"github.com/mahkoh/wl-proxy-sub012/internal/wire"
)

// State is the process-wide data the dispatch loop owns: the single
// upstream connection and its object table (server ids are unique across
// the whole proxy, not per client), plus the log-enabled toggle every
// hot-path log call checks before formatting anything.
type State struct {
	LogEnabled atomic.Bool

	UpstreamConn   *net.UnixConn
	UpstreamReader *wire.Reader
	UpstreamWriter *wire.Writer
	ToUpstream     *Outbound

	ServerTable *object.Table
	ServerAlloc *object.ServerAllocator

	nextEndpointID atomic.Uint64
}

// NewState wires up process-wide state around the upstream compositor
// connection. The well-known wl_display object occupies id 1 in every
// namespace simultaneously (it is the one object every client shares
// without ever going through generate_server_id), so unlike every other
// object it is never inserted into ServerTable keyed by id: routing its
// two events (error, delete_id) instead follows the object their argument
// names, handled specially in Engine.handleDisplayEventLocked.
func NewState(upstream *net.UnixConn, logEnabled bool) *State {
	s := &State{
		UpstreamConn:   upstream,
		UpstreamReader: wire.NewReader(upstream),
		UpstreamWriter: wire.NewWriter(upstream),
		ServerTable:    object.NewTable(),
		ServerAlloc:    object.NewServerAllocator(),
	}
	s.ToUpstream = NewOutbound(s.UpstreamWriter)
	s.LogEnabled.Store(logEnabled)
	s.ServerAlloc.Next() // reserve id 1 for wl_display, never handed out again

	return s
}

// DisplayServerID is the fixed, shared object id of wl_display in the
// upstream namespace.
const DisplayServerID = 1

// DisplayClientID is the fixed object id every client sees for its own
// wl_display, matching libwayland's convention of always using id 1.
const DisplayClientID = 1

// NextEndpointID returns a fresh, process-unique client endpoint id.
func (s *State) NextEndpointID() uint64 {
	return s.nextEndpointID.Add(1)
}
