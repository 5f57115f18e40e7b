package logger

import (
	"log/slog"
)

// Standard field keys for structured logging across the proxy's two
// endpoints (server-facing and client-facing). Use these keys consistently
// across all log statements for log aggregation and querying.
const (
	// ========================================================================
	// Distributed Tracing / Correlation
	// ========================================================================
	KeyTraceID = "trace_id" // per-connection correlation id

	// ========================================================================
	// Protocol & Dispatch
	// ========================================================================
	KeyInterface = "interface" // schema interface name, e.g. "wl_surface"
	KeyMessage   = "message"   // request/event name, e.g. "get_subsurface"
	KeyOpcode    = "opcode"    // numeric opcode within the interface
	KeyDirection = "direction" // "request" or "event"

	// ========================================================================
	// Object & Endpoint Identification
	// ========================================================================
	KeyObjectID   = "object_id"   // id in the sender's namespace
	KeyServerID   = "server_id"   // id in the upstream server's namespace
	KeyClientID   = "client_id"   // id in a client's namespace
	KeyEndpointID = "endpoint_id" // numeric endpoint id (0 = server, >0 = client)

	// ========================================================================
	// Wire Framing
	// ========================================================================
	KeyWordCount = "word_count" // message length in 32-bit words
	KeyFdCount   = "fd_count"   // number of fds attached to a message

	// ========================================================================
	// Operation Metadata
	// ========================================================================
	KeyDurationMs = "duration_ms" // dispatch duration in milliseconds
	KeyError      = "error"       // error message
	KeyErrorKind  = "error_kind"  // dispatcher/codec error taxonomy name
	KeySource     = "source"      // "send" or "forward"

	// ========================================================================
	// Object Lifecycle
	// ========================================================================
	KeyDestroyed = "destroyed" // whether the target object was already inert
	KeyLiveCount = "live_count"
)

// TraceID returns a slog.Attr for the connection correlation id
func TraceID(id string) slog.Attr {
	return slog.String(KeyTraceID, id)
}

// Interface returns a slog.Attr for the schema interface name
func Interface(name string) slog.Attr {
	return slog.String(KeyInterface, name)
}

// Message returns a slog.Attr for the request/event name
func Message(name string) slog.Attr {
	return slog.String(KeyMessage, name)
}

// Opcode returns a slog.Attr for the numeric opcode
func Opcode(op uint32) slog.Attr {
	return slog.Any(KeyOpcode, op)
}

// Direction returns a slog.Attr for "request" or "event"
func Direction(dir string) slog.Attr {
	return slog.String(KeyDirection, dir)
}

// ObjectID returns a slog.Attr for an object id
func ObjectID(id uint32) slog.Attr {
	return slog.Any(KeyObjectID, id)
}

// ServerID returns a slog.Attr for an upstream-namespace object id
func ServerID(id uint32) slog.Attr {
	return slog.Any(KeyServerID, id)
}

// ClientObjectID returns a slog.Attr for a client-namespace object id
func ClientObjectID(id uint32) slog.Attr {
	return slog.Any(KeyClientID, id)
}

// EndpointID returns a slog.Attr for a numeric endpoint id
func EndpointID(id uint64) slog.Attr {
	return slog.Any(KeyEndpointID, id)
}

// WordCount returns a slog.Attr for a message's word length
func WordCount(n int) slog.Attr {
	return slog.Int(KeyWordCount, n)
}

// FdCount returns a slog.Attr for the number of fds carried by a message
func FdCount(n int) slog.Attr {
	return slog.Int(KeyFdCount, n)
}

// DurationMs returns a slog.Attr for duration in milliseconds
func DurationMs(ms float64) slog.Attr {
	return slog.Float64(KeyDurationMs, ms)
}

// Err returns a slog.Attr for an error
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// ErrorKind returns a slog.Attr for the dispatcher/codec error taxonomy name
func ErrorKind(kind string) slog.Attr {
	return slog.String(KeyErrorKind, kind)
}

// Source returns a slog.Attr distinguishing a locally originated send from
// a relayed forward.
func Source(src string) slog.Attr {
	return slog.String(KeySource, src)
}

// Destroyed returns a slog.Attr for whether an object was already inert
func Destroyed(v bool) slog.Attr {
	return slog.Bool(KeyDestroyed, v)
}

// LiveCount returns a slog.Attr for the number of live objects in a table
func LiveCount(n int) slog.Attr {
	return slog.Int(KeyLiveCount, n)
}
