package object

// RequestHandler lets a specific object override the dispatcher's default
// "translate and forward unchanged" behavior for its own incoming
// requests. Core.Handler holds one, and the dispatcher calls it through
// this interface; a nil Handler means plain forwarding applies.
type RequestHandler interface {
	// HandleRequest runs against the message's raw, untranslated argument
	// words before the default translate-and-forward step. A non-nil
	// error vetoes the request: the caller must log it and never relay it
	// upstream.
	HandleRequest(opcode uint16, words []uint32) error
}
