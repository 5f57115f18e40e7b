package logger

import (
	"fmt"
	"time"
)

// processStart anchors the monotonic "[MMM.uuu]" timestamp used for wire
// log lines: milliseconds.microseconds since process start, not
// wall-clock time.
var processStart = time.Now()

// elapsed renders the time since process start in the "MMM.uuu" form.
func elapsed() string {
	d := time.Since(processStart)
	ms := d.Milliseconds()
	us := (d.Microseconds()) % 1000
	return fmt.Sprintf("%d.%03d", ms, us)
}

// RequestLine renders a client request relayed toward the upstream
// server:
//
//	[MMM.uuu] client#N  -> iface#id.msg(args)
//
// Callers format args lazily and only call this behind a state.LogEnabled
// branch, since formatting a full argument list costs real time on a hot
// path; the function itself does no gating.
func RequestLine(clientID uint64, iface string, objectID uint32, message, args string) string {
	return fmt.Sprintf("[%s] client#%d  -> %s#%d.%s(%s)", elapsed(), clientID, iface, objectID, message, args)
}

// EventLine renders a server event relayed toward a client, in the form:
//
//	[MMM.uuu] server      -> iface#id.msg(args)
//
// The padding after "server" lines its arrow up with RequestLine's
// "client#N" column for a fixed-width clientID, matching libwayland's own
// debug dump alignment.
func EventLine(iface string, objectID uint32, message, args string) string {
	return fmt.Sprintf("[%s] server      -> %s#%d.%s(%s)", elapsed(), iface, objectID, message, args)
}

// DroppedRequestLine renders the reverse-arrow form for a client request
// that was not relayed (vetoed by its handler, or failed translation):
// the arrow points back at the client instead of toward the server.
func DroppedRequestLine(clientID uint64, iface string, objectID uint32, message, args string) string {
	return fmt.Sprintf("[%s] client#%d  <- %s#%d.%s(%s)", elapsed(), clientID, iface, objectID, message, args)
}

// DroppedEventLine is EventLine's reverse-arrow counterpart for an event
// that was not relayed to its client.
func DroppedEventLine(iface string, objectID uint32, message, args string) string {
	return fmt.Sprintf("[%s] server      <- %s#%d.%s(%s)", elapsed(), iface, objectID, message, args)
}
