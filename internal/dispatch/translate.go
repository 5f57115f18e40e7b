// Package dispatch translates decoded Wayland messages between a client's
// object namespace and the proxy's upstream (server-facing) namespace,
// rewriting object/new_id arguments in place while leaving every other
// argument word untouched.
package dispatch

import (
	"errors"

	"github.com/mahkoh/wl-proxy-sub012/internal/object"
	"github.com/mahkoh/wl-proxy-sub012/internal/proto"
	"github.com/mahkoh/wl-proxy-sub012/internal/wire"
)

// ErrCrossEndpoint indicates an event argument names an object owned by a
// different client endpoint than the event's receiver (e.g. a drag
// surface owned by one client reported in a gesture event delivered to
// another). This is not a protocol error: the event carries no
// information the receiving client is entitled to see, so it is dropped
// silently rather than logged as a failure.
var ErrCrossEndpoint = errors.New("dispatch: event argument belongs to a different client endpoint")

// Direction distinguishes a client request (flowing client -> upstream)
// from a server event (flowing upstream -> client); the two flow in
// opposite namespace directions and allocate new objects on opposite sides.
type Direction string

const (
	DirRequest Direction = "request"
	DirEvent   Direction = "event"
)

// Translated is the result of rewriting one message's object arguments.
type Translated struct {
	Words []uint32
	// New holds a Core for every new_id argument the message introduced,
	// already inserted into both tables and with its Handler already set
	// from proto.NewHandlerFor; the caller needs no further setup.
	New []*object.Core
}

// resolveFunc rewrites one object/new_id argument word. For new_id
// arguments iface and version carry the interface and version of the
// object being created; for plain object arguments they are unused (the
// type check runs against spec.Iface).
type resolveFunc func(spec proto.ArgSpec, raw uint32, iface string, version uint32) (uint32, *object.Core, error)

// TranslateRequest rewrites a client request's object/new_id arguments into
// upstream (server-namespace) ids, allocating fresh server ids for any
// new_id arguments and registering the resulting objects in both tables.
//
// recv is the Core the request was sent to (already resolved from the
// client-namespace sender id in msg); its Interface selects the schema.
func TranslateRequest(clientTable, serverTable *object.Table, alloc *object.ServerAllocator, recv *object.Core, msg *wire.Message, endpointID uint64) (*Translated, error) {
	if recv.ServerID == 0 {
		return nil, &Error{Kind: ReceiverNoServerID, Interface: recv.Interface, ObjectID: recv.ClientID}
	}

	schema, ok := proto.Lookup(recv.Interface)
	if !ok {
		return &Translated{Words: append([]uint32(nil), msg.Words...)}, nil
	}
	sig, ok := schema.Request(msg.Opcode)
	if !ok {
		return nil, &Error{Kind: UnknownMessageID, Interface: recv.Interface, Opcode: msg.Opcode}
	}

	return translate(sig, schema.Version, msg, func(spec proto.ArgSpec, raw uint32, iface string, version uint32) (uint32, *object.Core, error) {
		if raw == 0 && spec.Kind == proto.ArgObject {
			// A null object argument carries no id to translate; a malformed
			// non-nullable null is left for the receiving side to reject,
			// matching how a real compositor would see it.
			return 0, nil, nil
		}

		if spec.Kind == proto.ArgNewID {
			if existing, ok := clientTable.LookupClient(raw); ok {
				return 0, nil, &Error{Kind: SetClientID, Interface: existing.Interface, ObjectID: raw}
			}
			// Skip any id already live in the server namespace.
			serverID := alloc.Next()
			for {
				if _, live := serverTable.LookupServer(serverID); !live {
					break
				}
				serverID = alloc.Next()
			}
			obj := object.NewCore(serverID, raw, iface, version, endpointID)
			obj.Handler = proto.NewHandlerFor(iface)
			clientTable.Insert(obj)
			serverTable.Insert(obj)
			return serverID, obj, nil
		}

		client, ok := clientTable.LookupClient(raw)
		if !ok {
			return 0, nil, &Error{Kind: NoClientObject, ObjectID: raw, Arg: spec.Name}
		}
		if spec.Iface != "" && client.Interface != spec.Iface {
			return 0, nil, &Error{Kind: WrongObjectType, Interface: spec.Iface, ObjectID: raw, Arg: spec.Name}
		}
		if client.ServerID == 0 {
			return 0, nil, &Error{Kind: ArgNoServerID, Arg: spec.Name}
		}
		return client.ServerID, nil, nil
	})
}

// TranslateEvent rewrites a server event's object/new_id arguments into
// client-namespace ids, allocating fresh client ids for any new_id
// arguments (e.g. wl_registry.global's implicit bindings never use this
// path, but events like wl_data_device.data_offer do).
func TranslateEvent(clientTable, serverTable *object.Table, alloc *object.ClientAllocator, recv *object.Core, msg *wire.Message, endpointID uint64) (*Translated, error) {
	if recv.ClientID == 0 {
		return nil, &Error{Kind: ReceiverNoClient, Interface: recv.Interface, ObjectID: recv.ServerID}
	}

	schema, ok := proto.Lookup(recv.Interface)
	if !ok {
		return &Translated{Words: append([]uint32(nil), msg.Words...)}, nil
	}
	sig, ok := schema.Event(msg.Opcode)
	if !ok {
		return nil, &Error{Kind: UnknownMessageID, Interface: recv.Interface, Opcode: msg.Opcode}
	}

	return translate(sig, schema.Version, msg, func(spec proto.ArgSpec, raw uint32, iface string, version uint32) (uint32, *object.Core, error) {
		if raw == 0 && spec.Kind == proto.ArgObject {
			return 0, nil, nil
		}

		if spec.Kind == proto.ArgNewID {
			if existing, ok := serverTable.LookupServer(raw); ok {
				return 0, nil, &Error{Kind: SetServerID, Interface: existing.Interface, ObjectID: raw}
			}
			clientID := alloc.Next()
			obj := object.NewCore(raw, clientID, iface, version, endpointID)
			obj.Handler = proto.NewHandlerFor(iface)
			clientTable.Insert(obj)
			serverTable.Insert(obj)
			return clientID, obj, nil
		}

		server, ok := serverTable.LookupServer(raw)
		if !ok {
			return 0, nil, &Error{Kind: NoServerObject, ObjectID: raw, Arg: spec.Name}
		}
		if server.EndpointID != recv.EndpointID {
			return 0, nil, ErrCrossEndpoint
		}
		if spec.Iface != "" && server.Interface != spec.Iface {
			return 0, nil, &Error{Kind: WrongObjectType, Interface: spec.Iface, ObjectID: raw, Arg: spec.Name}
		}
		if server.ClientID == 0 {
			return 0, nil, &Error{Kind: ArgNoClientID, Arg: spec.Name}
		}
		return server.ClientID, nil, nil
	})
}

// translate walks sig's argument list against msg's words, invoking
// resolveID for every object/new_id argument and copying every other
// argument's words through unchanged.
//
// version is the receiver schema's version, used for objects created by
// typed new_id arguments. An untyped new_id (wl_registry.bind) instead
// takes its interface and version from the string and uint words that
// precede it on the wire, which translate tracks as it walks.
func translate(sig proto.MessageSig, version uint32, msg *wire.Message, resolveID resolveFunc) (*Translated, error) {
	if n, ok := sig.FixedArity(); ok && len(msg.Words) != n {
		return nil, wire.WrongSize((wire.HeaderWords+len(msg.Words))*4, (wire.HeaderWords+n)*4)
	}

	walker := newArgWalker(msg.Words, msg.Fds)
	out := make([]uint32, 0, len(msg.Words))
	var newObjs []*object.Core
	var lastString string
	var lastUint uint32

	for _, spec := range sig.Args {
		switch spec.Kind {
		case proto.ArgFd:
			if _, ok := walker.nextFd(); !ok {
				return nil, wire.NoFd(spec.Name)
			}
			continue
		case proto.ArgString, proto.ArgArray:
			payload, ok := walker.skipPayload()
			if !ok {
				return nil, &Error{Kind: MissingArgument, Arg: spec.Name}
			}
			if spec.Kind == proto.ArgString {
				lastString = decodeStringArg(payload)
			}
			out = append(out, payload...)
			continue
		}

		raw, ok := walker.nextWord()
		if !ok {
			return nil, &Error{Kind: MissingArgument, Arg: spec.Name}
		}

		switch spec.Kind {
		case proto.ArgObject, proto.ArgNewID:
			iface, ver := spec.Iface, version
			if spec.Kind == proto.ArgNewID && iface == "" {
				iface = lastString
				if lastUint != 0 {
					ver = lastUint
				}
			}
			translated, obj, err := resolveID(spec, raw, iface, ver)
			if err != nil {
				return nil, err
			}
			if obj != nil {
				newObjs = append(newObjs, obj)
			}
			out = append(out, translated)
		default:
			if spec.Kind == proto.ArgUint {
				lastUint = raw
			}
			out = append(out, raw)
		}
	}

	if walker.remaining() > 0 {
		return nil, wire.Trailing(walker.remaining())
	}

	return &Translated{Words: out, New: newObjs}, nil
}
