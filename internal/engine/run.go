package engine

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/mahkoh/wl-proxy-sub012/internal/dispatch"
	"github.com/mahkoh/wl-proxy-sub012/internal/logger"
	"github.com/mahkoh/wl-proxy-sub012/internal/metrics"
	"github.com/mahkoh/wl-proxy-sub012/internal/object"
	"github.com/mahkoh/wl-proxy-sub012/internal/proto"
	"github.com/mahkoh/wl-proxy-sub012/internal/wire"
)

// Engine is the dispatch + handler pipeline wired around one
// process-wide State and a set of live client Endpoints.
//
// The underlying protocol model is a single-threaded, cooperative event
// loop: every table, buffer and fd queue is touched without locks by one
// task. Go's idiomatic translation of that model is one goroutine per
// blocking I/O source (one per client connection, one for the upstream
// socket) with a single mutex serializing the message-processing critical
// section — table lookups, translation, and queue/flush — rather than a
// hand-rolled epoll loop. Engine.mu is that mutex; it is held for the
// whole of one message's dispatch, so from the tables' point of view
// there is still exactly one writer at a time, preserving the ordering
// guarantees the cooperative model assumes.
type Engine struct {
	State   *State
	Metrics *metrics.Metrics

	mu        sync.Mutex
	endpoints map[uint64]*Endpoint
}

// NewEngine returns an Engine ready to serve client endpoints against state.
// m may be nil to disable metrics collection entirely.
func NewEngine(state *State, m *metrics.Metrics) *Engine {
	return &Engine{
		State:     state,
		Metrics:   m,
		endpoints: make(map[uint64]*Endpoint),
	}
}

func (e *Engine) addEndpoint(ep *Endpoint) {
	e.mu.Lock()
	e.endpoints[ep.ID] = ep
	n := len(e.endpoints)
	e.mu.Unlock()
	e.Metrics.SetClientsCurrent(n)
}

// removeEndpoint drops ep from the live set and closes the connection.
// Objects the client still owns are not destroyed: nothing is relayed
// upstream for them and their bindings stay in State.ServerTable. Events
// later addressed to them are dropped because their endpoint is gone.
func (e *Engine) removeEndpoint(ep *Endpoint) {
	e.mu.Lock()
	delete(e.endpoints, ep.ID)
	n := len(e.endpoints)
	e.mu.Unlock()
	e.Metrics.SetClientsCurrent(n)
	_ = ep.Close()
}

// ServeClient runs the request-reading loop for one client connection
// until the connection errors out or is closed, then tears the endpoint
// down. It is meant to run in its own goroutine per connection.
func (e *Engine) ServeClient(ep *Endpoint) error {
	e.addEndpoint(ep)
	defer e.removeEndpoint(ep)

	for {
		msg, err := ep.Reader.ReadMessage()
		if err != nil {
			return err
		}

		e.mu.Lock()
		e.handleRequestLocked(ep, msg)
		n := e.State.ServerTable.Len()
		e.mu.Unlock()
		e.Metrics.SetLiveObjects("server", n)
	}
}

// ServeUpstream runs the event-reading loop for the single upstream
// connection. Its return is the proxy's only fatal condition: the
// caller is expected to tear down every client endpoint in response.
func (e *Engine) ServeUpstream() error {
	for {
		msg, err := e.State.UpstreamReader.ReadMessage()
		if err != nil {
			return err
		}

		e.mu.Lock()
		e.handleEventLocked(msg)
		e.mu.Unlock()
	}
}

// Shutdown closes every live client endpoint. Called once ServeUpstream
// returns, the proxy's "loss of the upstream socket" fatal path.
func (e *Engine) Shutdown() {
	e.mu.Lock()
	eps := make([]*Endpoint, 0, len(e.endpoints))
	for _, ep := range e.endpoints {
		eps = append(eps, ep)
	}
	e.mu.Unlock()

	for _, ep := range eps {
		e.removeEndpoint(ep)
	}
}

// handleRequestLocked implements the dispatcher's request path: resolve
// the receiver, parse/translate its arguments, relay to the upstream
// server, logging and counting (never propagating) any error along the
// way.
func (e *Engine) handleRequestLocked(ep *Endpoint, msg *wire.Message) {
	recv, ok := ep.ClientTable.LookupClient(msg.SenderID)
	if !ok {
		e.logDispatchError(&dispatch.Error{Kind: dispatch.NoClientObject, ObjectID: msg.SenderID}, "forward")
		return
	}

	release, err := recv.Borrow()
	if err != nil {
		e.logDispatchError(err, "forward")
		return
	}
	defer release()

	schema, hasSchema := proto.Lookup(recv.Interface)
	var sig proto.MessageSig
	var hasSig bool
	if hasSchema {
		sig, hasSig = schema.Request(msg.Opcode)
		if !hasSig {
			e.logDispatchError(&dispatch.Error{Kind: dispatch.UnknownMessageID, Interface: recv.Interface, Opcode: msg.Opcode}, "forward")
			return
		}
	}

	// The message's fds must leave the reader's queue even if the message
	// is then dropped: a skipped pop would pair them with the next
	// fd-carrying message on this connection.
	if hasSig && sig.FdCount() > 0 {
		n := sig.FdCount()
		if err := ep.Reader.FillFds(n); err != nil {
			return
		}
		fds := make([]int, 0, n)
		for i := 0; i < n; i++ {
			fd, _ := ep.Reader.PopFd()
			fds = append(fds, fd)
		}
		msg.Fds = fds
	}

	if recv.Destroyed {
		// Inert, not unknown: a destroyed receiver is distinct from a bad id.
		// Silent, no outbound traffic, no error counted.
		closeFds(msg.Fds)
		return
	}

	if hasSig && sig.IsDestroy() {
		ClientDestroy(recv, ep.ClientTable)
	}

	if recv.Handler != nil {
		if err := recv.Handler.HandleRequest(msg.Opcode, msg.Words); err != nil {
			closeFds(msg.Fds)
			e.logDroppedRequest(ep, recv, hasSig, sig, msg.Words)
			e.sendProtocolErrorLocked(ep, recv, err)
			return
		}
	}

	if !recv.ForwardToServer {
		closeFds(msg.Fds)
		return
	}

	translated, err := dispatch.TranslateRequest(ep.ClientTable, e.State.ServerTable, e.State.ServerAlloc, recv, msg, ep.ID)
	if err != nil {
		closeFds(msg.Fds)
		e.logDroppedRequest(ep, recv, hasSig, sig, msg.Words)
		e.logDispatchError(err, "forward")
		return
	}

	if e.State.LogEnabled.Load() && hasSig {
		logger.Debug(logger.RequestLine(ep.ID, recv.Interface, recv.ClientID, sig.Name, formatWords(translated.Words)))
	}

	e.State.ToUpstream.Queue(recv.ServerID, msg.Opcode, translated.Words, msg.Fds)
	e.Metrics.ObserveFdsQueued(len(msg.Fds))
	if err := e.State.ToUpstream.Flush(); err != nil {
		e.logDispatchError(err, "send")
		return
	}
	e.Metrics.ObserveMessage("request", wireSize(translated.Words))
	e.Metrics.ObserveFdsFlushed(len(msg.Fds))
}

// handleEventLocked implements the dispatcher's event path, the mirror of
// handleRequestLocked for server -> client traffic.
func (e *Engine) handleEventLocked(msg *wire.Message) {
	if msg.SenderID == DisplayServerID {
		e.handleDisplayEventLocked(msg)
		return
	}

	recv, ok := e.State.ServerTable.LookupServer(msg.SenderID)
	if !ok {
		e.logDispatchError(&dispatch.Error{Kind: dispatch.NoServerObject, ObjectID: msg.SenderID}, "forward")
		return
	}

	release, err := recv.Borrow()
	if err != nil {
		e.logDispatchError(err, "forward")
		return
	}
	defer release()

	schema, hasSchema := proto.Lookup(recv.Interface)
	var sig proto.MessageSig
	var hasSig bool
	if hasSchema {
		sig, hasSig = schema.Event(msg.Opcode)
		if !hasSig {
			e.logDispatchError(&dispatch.Error{Kind: dispatch.UnknownMessageID, Interface: recv.Interface, Opcode: msg.Opcode}, "forward")
			return
		}
	}

	if recv.Destroyed {
		return
	}

	ep, ok := e.endpoints[recv.EndpointID]
	if !ok {
		return // owning client already disconnected
	}

	if !recv.ForwardToClient {
		return
	}

	translated, err := dispatch.TranslateEvent(ep.ClientTable, e.State.ServerTable, ep.ClientAlloc, recv, msg, recv.EndpointID)
	if errors.Is(err, dispatch.ErrCrossEndpoint) {
		// A privacy constraint, not an error: events never cross endpoints.
		return
	}
	if err != nil {
		e.logDroppedEvent(recv, hasSig, sig, msg.Words)
		e.logDispatchError(err, "forward")
		return
	}

	if e.State.LogEnabled.Load() && hasSig {
		logger.Debug(logger.EventLine(recv.Interface, recv.ClientID, sig.Name, formatWords(translated.Words)))
	}

	ep.Out.Queue(recv.ClientID, msg.Opcode, translated.Words, nil)
	if err := ep.Out.Flush(); err != nil {
		e.logDispatchError(err, "send")
		return
	}
	e.Metrics.ObserveMessage("event", wireSize(translated.Words))
}

// handleDisplayEventLocked special-cases wl_display's two events, which
// are never routed through an ordinary ObjectCore lookup: error and
// delete_id both name their subject object by a plain uint32 argument
// rather than an object_id, and delete_id additionally drives the
// lifecycle engine.
func (e *Engine) handleDisplayEventLocked(msg *wire.Message) {
	schema, ok := proto.Lookup("wl_display")
	if !ok {
		return
	}
	sig, ok := schema.Event(msg.Opcode)
	if !ok {
		e.logDispatchError(&dispatch.Error{Kind: dispatch.UnknownMessageID, Interface: "wl_display", Opcode: msg.Opcode}, "forward")
		return
	}

	switch sig.Name {
	case "delete_id":
		if len(msg.Words) < 1 {
			return
		}
		serverID := msg.Words[0]
		obj, ok := e.State.ServerTable.LookupServer(serverID)
		if !ok {
			return // already released; nothing to acknowledge
		}
		if ep, ok := e.endpoints[obj.EndpointID]; ok && obj.ClientID != 0 {
			ep.Out.Queue(DisplayClientID, msg.Opcode, []uint32{obj.ClientID}, nil)
			_ = ep.Out.Flush()
			ReleaseDeletedID(obj, ep.ClientTable, e.State.ServerTable)
		} else {
			e.State.ServerTable.DeleteServer(obj)
		}

	case "error":
		if len(msg.Words) < 2 {
			return
		}
		obj, ok := e.State.ServerTable.LookupServer(msg.Words[0])
		if !ok {
			return
		}
		ep, ok := e.endpoints[obj.EndpointID]
		if !ok {
			return
		}
		words := append([]uint32{obj.ClientID}, msg.Words[1:]...)
		ep.Out.Queue(DisplayClientID, msg.Opcode, words, nil)
		_ = ep.Out.Flush()
	}
}

// logDispatchError logs a dispatch-time failure and records it in
// metrics, per the "log and continue" error propagation policy.
// source is "send" for a failure originating in the proxy's own relay
// attempt, "forward" for one discovered while parsing an inbound message.
func (e *Engine) logDispatchError(err error, source string) {
	kind := errorKind(err)
	e.Metrics.ObserveError(kind)
	if !e.State.LogEnabled.Load() {
		return
	}
	logger.Warn("dispatch error", logger.ErrorKind(kind), logger.Source(source), logger.Err(err))
}

// logDroppedRequest emits the reverse-arrow wire log line for a client
// request that was vetoed or failed translation and so was never relayed
// upstream.
func (e *Engine) logDroppedRequest(ep *Endpoint, recv *object.Core, hasSig bool, sig proto.MessageSig, words []uint32) {
	if !e.State.LogEnabled.Load() || !hasSig {
		return
	}
	logger.Debug(logger.DroppedRequestLine(ep.ID, recv.Interface, recv.ClientID, sig.Name, formatWords(words)))
}

// logDroppedEvent is logDroppedRequest's mirror for an event that was
// vetoed or failed translation and so was never relayed to its client.
func (e *Engine) logDroppedEvent(recv *object.Core, hasSig bool, sig proto.MessageSig, words []uint32) {
	if !e.State.LogEnabled.Load() || !hasSig {
		return
	}
	logger.Debug(logger.DroppedEventLine(recv.Interface, recv.ClientID, sig.Name, formatWords(words)))
}

// displayErrorOpcode is wl_display.error's fixed event opcode.
const displayErrorOpcode = 0

// sendProtocolErrorLocked reports a RequestHandler veto to the client that
// sent the offending request, as a wl_display.error event naming recv as
// the object at fault. A *proto.ProtocolError supplies the real numbered
// code and message; any other error (a veto with no numbered code behind
// it) is reported as code 0 with the error's own text.
func (e *Engine) sendProtocolErrorLocked(ep *Endpoint, recv *object.Core, cause error) {
	e.Metrics.ObserveError(errorKind(cause))
	if e.State.LogEnabled.Load() {
		logger.Warn("protocol error", logger.Interface(recv.Interface), logger.ClientObjectID(recv.ClientID), logger.Err(cause))
	}

	var code uint32
	message := cause.Error()
	var pe *proto.ProtocolError
	if errors.As(cause, &pe) {
		code = pe.Code
		message = pe.Message
	}

	words := append([]uint32{recv.ClientID, code}, wire.EncodeString(message)...)
	ep.Out.Queue(DisplayClientID, displayErrorOpcode, words, nil)
	if err := ep.Out.Flush(); err != nil {
		e.logDispatchError(err, "send")
	}
}

func errorKind(err error) string {
	var de *dispatch.Error
	if errors.As(err, &de) {
		return string(de.Kind)
	}
	var we *wire.Error
	if errors.As(err, &we) {
		return string(we.Kind)
	}
	var hb *object.HandlerBorrowedError
	if errors.As(err, &hb) {
		return string(dispatch.HandlerBorrowed)
	}
	var pe *proto.ProtocolError
	if errors.As(err, &pe) {
		return "ProtocolError:" + pe.Interface
	}
	return "Unknown"
}

// closeFds closes file descriptors that arrived with a message the engine
// decided to drop. Fds move by ownership: once popped off the reader they
// either leave on a sendmsg or get closed here, never both.
func closeFds(fds []int) {
	for _, fd := range fds {
		_ = unix.Close(fd)
	}
}

func wireSize(words []uint32) int {
	return (wire.HeaderWords + len(words)) * 4
}

// formatWords renders a translated argument list for a wire log line.
// This is a byte-word dump, not a schema-aware pretty-printer: decoding
// strings/fixed-point/enum args back into their typed form for logging
// is left to a future pass: richer Debug formatting is an
// interface-by-interface concern, not a dispatcher one.
func formatWords(words []uint32) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = fmt.Sprintf("%d", w)
	}
	return strings.Join(parts, ", ")
}
