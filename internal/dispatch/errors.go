package dispatch

import "fmt"

// ErrorKind names a dispatch-level failure: the wire frame itself decoded
// fine (see internal/wire), but routing it between the client and server
// object namespaces failed.
type ErrorKind string

const (
	// ReceiverNoServerID fires when a request's receiver object has no
	// known server-namespace id to relay the request to.
	ReceiverNoServerID ErrorKind = "ReceiverNoServerId"

	// ReceiverNoClient fires when an event's receiver object has no
	// client-namespace binding to deliver the event to.
	ReceiverNoClient ErrorKind = "ReceiverNoClient"

	// ArgNoServerID fires when an object argument names a client
	// object that has no server-namespace id.
	ArgNoServerID ErrorKind = "ArgNoServerId"

	// ArgNoClientID fires when an object argument in an event names a
	// server object with no client-namespace binding.
	ArgNoClientID ErrorKind = "ArgNoClientId"

	// GenerateServerID fires when allocating a fresh server-namespace id
	// for a client new_id argument fails (allocator exhaustion).
	GenerateServerID ErrorKind = "GenerateServerId"

	// GenerateClientID fires when allocating a fresh client-namespace id
	// for a server-originated new_id fails.
	GenerateClientID ErrorKind = "GenerateClientId"

	// SetClientID fires when binding a client id to an existing server
	// object would overwrite a binding that is already set.
	SetClientID ErrorKind = "SetClientId"

	// SetServerID fires when binding a server id to an existing client
	// object would overwrite a binding that is already set.
	SetServerID ErrorKind = "SetServerId"

	// NoClientObject fires when a request names a client-namespace id with
	// no entry in the client's object table at all.
	NoClientObject ErrorKind = "NoClientObject"

	// NoServerObject fires when an event names a server-namespace id with
	// no entry in the server object table at all.
	NoServerObject ErrorKind = "NoServerObject"

	// WrongObjectType fires when an object argument resolves to an object
	// whose interface doesn't match what the schema declares for that
	// argument position.
	WrongObjectType ErrorKind = "WrongObjectType"

	// UnknownMessageID fires when an opcode has no entry in the
	// receiver's interface schema.
	UnknownMessageID ErrorKind = "UnknownMessageId"

	// MissingArgument fires when a message's word count runs out before
	// all of its schema's arguments have been decoded.
	MissingArgument ErrorKind = "MissingArgument"

	// HandlerBorrowed mirrors object.HandlerBorrowedError in the dispatch
	// taxonomy so callers can type-switch on dispatch.Error uniformly.
	HandlerBorrowed ErrorKind = "HandlerBorrowed"
)

// Error is a dispatch-level error, carrying enough of the message context
// to log or translate into a protocol error event without re-deriving it.
type Error struct {
	Kind      ErrorKind
	Interface string
	ObjectID  uint32
	Opcode    uint16
	Arg       string
}

func (e *Error) Error() string {
	switch e.Kind {
	case ReceiverNoServerID:
		return fmt.Sprintf("object %d (%s) has no server id", e.ObjectID, e.Interface)
	case ReceiverNoClient:
		return fmt.Sprintf("object %d (%s) has no client binding", e.ObjectID, e.Interface)
	case ArgNoServerID:
		return fmt.Sprintf("argument %q: object has no server id", e.Arg)
	case ArgNoClientID:
		return fmt.Sprintf("argument %q: object has no client binding", e.Arg)
	case GenerateServerID:
		return "server id allocator exhausted"
	case GenerateClientID:
		return "client id allocator exhausted"
	case SetClientID:
		return fmt.Sprintf("object %d (%s) already has a client binding", e.ObjectID, e.Interface)
	case SetServerID:
		return fmt.Sprintf("object %d (%s) already has a server binding", e.ObjectID, e.Interface)
	case NoClientObject:
		return fmt.Sprintf("no such client object: %d", e.ObjectID)
	case NoServerObject:
		return fmt.Sprintf("no such server object: %d", e.ObjectID)
	case WrongObjectType:
		return fmt.Sprintf("argument %q: wrong object type, expected %s", e.Arg, e.Interface)
	case UnknownMessageID:
		return fmt.Sprintf("unknown opcode %d for interface %s", e.Opcode, e.Interface)
	case MissingArgument:
		return fmt.Sprintf("argument %q: message ran out of words", e.Arg)
	case HandlerBorrowed:
		return fmt.Sprintf("object %d (%s): handler already borrowed", e.ObjectID, e.Interface)
	default:
		return string(e.Kind)
	}
}
