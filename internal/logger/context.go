package logger

import (
	"context"
	"time"
)

// contextKey is a private type for context keys to avoid collisions
type contextKey struct{}

// logContextKey is the key for LogContext in context.Context
var logContextKey = contextKey{}

// LogContext holds request-scoped logging context for a single dispatched
// message: which endpoint and object it targeted, and when dispatch began.
type LogContext struct {
	TraceID   string // correlation id for the owning client connection
	Interface string // schema interface name, e.g. "wl_subcompositor"
	Message   string // request or event name, e.g. "get_subsurface"
	ObjectID  uint32 // id in the sender's namespace
	ClientID  uint64 // numeric endpoint id of the client, 0 for the server endpoint
	Direction string // "request" or "event"
	StartTime time.Time
}

// WithContext returns a new context with the given LogContext
func WithContext(ctx context.Context, lc *LogContext) context.Context {
	return context.WithValue(ctx, logContextKey, lc)
}

// FromContext retrieves the LogContext from context, or nil if not present
func FromContext(ctx context.Context) *LogContext {
	if ctx == nil {
		return nil
	}
	lc, _ := ctx.Value(logContextKey).(*LogContext)
	return lc
}

// NewLogContext creates a new LogContext for a message about to be dispatched.
func NewLogContext(clientID uint64) *LogContext {
	return &LogContext{
		ClientID:  clientID,
		StartTime: time.Now(),
	}
}

// Clone creates a copy of the LogContext
func (lc *LogContext) Clone() *LogContext {
	if lc == nil {
		return nil
	}
	cloned := *lc
	return &cloned
}

// WithMessage returns a copy with the interface/message/object set
func (lc *LogContext) WithMessage(iface, message string, objectID uint32, direction string) *LogContext {
	clone := lc.Clone()
	if clone != nil {
		clone.Interface = iface
		clone.Message = message
		clone.ObjectID = objectID
		clone.Direction = direction
	}
	return clone
}

// WithTrace returns a copy with trace info set
func (lc *LogContext) WithTrace(traceID string) *LogContext {
	clone := lc.Clone()
	if clone != nil {
		clone.TraceID = traceID
	}
	return clone
}

// DurationMs returns the duration since StartTime in milliseconds
func (lc *LogContext) DurationMs() float64 {
	if lc == nil || lc.StartTime.IsZero() {
		return 0
	}
	return float64(time.Since(lc.StartTime).Microseconds()) / 1000.0
}
