package engine

import (
	"testing"
	"time"

	"github.com/mahkoh/wl-proxy-sub012/internal/object"
	"github.com/mahkoh/wl-proxy-sub012/internal/proto"
	"github.com/mahkoh/wl-proxy-sub012/internal/wire"
)

func TestHandleRequestForwardsCreateSurfaceAndAllocatesServerID(t *testing.T) {
	eng, upstreamPeer, ep, _ := newTestEngine(t)

	compositor := object.NewCore(2, 100, "wl_compositor", 6, ep.ID)
	ep.ClientTable.Insert(compositor)
	eng.State.ServerTable.Insert(compositor)

	const clientChosenSurfaceID = 200
	msg := &wire.Message{SenderID: 100, Opcode: 0, Words: []uint32{clientChosenSurfaceID}}

	eng.mu.Lock()
	eng.handleRequestLocked(ep, msg)
	eng.mu.Unlock()

	upstreamPeer.SetReadDeadline(time.Now().Add(2 * time.Second))
	upstreamReader := wire.NewReader(upstreamPeer)
	got, err := upstreamReader.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	if got.SenderID != compositor.ServerID || got.Opcode != 0 {
		t.Fatalf("got SenderID=%d Opcode=%d, want %d, 0", got.SenderID, got.Opcode, compositor.ServerID)
	}
	if len(got.Words) != 1 {
		t.Fatalf("Words = %v, want 1 word", got.Words)
	}
	allocatedServerID := got.Words[0]

	surface, ok := ep.ClientTable.LookupClient(clientChosenSurfaceID)
	if !ok {
		t.Fatal("expected new surface registered in the client table")
	}
	if surface.ServerID != allocatedServerID {
		t.Errorf("surface.ServerID = %d, want %d", surface.ServerID, allocatedServerID)
	}
}

func TestHandleRequestOnDestroyedReceiverIsSilentlyDropped(t *testing.T) {
	eng, upstreamPeer, ep, _ := newTestEngine(t)

	surface := object.NewCore(10, 300, "wl_surface", 6, ep.ID)
	surface.Destroyed = true
	ep.ClientTable.Insert(surface)
	eng.State.ServerTable.Insert(surface)

	msg := &wire.Message{SenderID: 300, Opcode: 6} // commit
	eng.mu.Lock()
	eng.handleRequestLocked(ep, msg)
	eng.mu.Unlock()

	upstreamPeer.SetReadDeadline(time.Now().Add(50 * time.Millisecond))
	r := wire.NewReader(upstreamPeer)
	if _, err := r.ReadMessage(); err == nil {
		t.Fatal("expected no message forwarded for a destroyed receiver")
	}
}

func TestHandleRequestDestroyCompletesClientSideHandshake(t *testing.T) {
	eng, upstreamPeer, ep, _ := newTestEngine(t)

	surface := object.NewCore(10, 300, "wl_surface", 6, ep.ID)
	ep.ClientTable.Insert(surface)
	eng.State.ServerTable.Insert(surface)

	msg := &wire.Message{SenderID: 300, Opcode: 0} // destroy
	eng.mu.Lock()
	eng.handleRequestLocked(ep, msg)
	eng.mu.Unlock()

	if !surface.Destroyed {
		t.Fatal("expected surface to be marked destroyed")
	}
	if _, ok := ep.ClientTable.LookupClient(300); ok {
		t.Fatal("expected client-namespace binding to be removed immediately")
	}
	if _, ok := eng.State.ServerTable.LookupServer(10); !ok {
		t.Fatal("expected server-namespace binding to survive until delete_id")
	}

	upstreamPeer.SetReadDeadline(time.Now().Add(2 * time.Second))
	r := wire.NewReader(upstreamPeer)
	got, err := r.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	if got.SenderID != 10 || got.Opcode != 0 {
		t.Fatalf("got SenderID=%d Opcode=%d, want 10, 0", got.SenderID, got.Opcode)
	}
}

func TestHandleDisplayEventDeleteIDCompletesHandshake(t *testing.T) {
	eng, _, ep, clientPeer := newTestEngine(t)

	surface := object.NewCore(10, 300, "wl_surface", 6, ep.ID)
	eng.State.ServerTable.Insert(surface)
	ClientDestroy(surface, ep.ClientTable) // client already destroyed its side

	msg := &wire.Message{SenderID: DisplayServerID, Opcode: 1, Words: []uint32{10}} // wl_display.delete_id
	eng.mu.Lock()
	eng.handleEventLocked(msg)
	eng.mu.Unlock()

	if _, ok := eng.State.ServerTable.LookupServer(10); ok {
		t.Fatal("expected server-namespace binding to be released")
	}

	clientPeer.SetReadDeadline(time.Now().Add(2 * time.Second))
	r := wire.NewReader(clientPeer)
	got, err := r.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	if got.SenderID != DisplayClientID || got.Opcode != 1 {
		t.Fatalf("got SenderID=%d Opcode=%d, want %d, 1", got.SenderID, got.Opcode, DisplayClientID)
	}
	if len(got.Words) != 1 || got.Words[0] != 300 {
		t.Fatalf("Words = %v, want [300] (client id)", got.Words)
	}
}

func TestHandleRequestHandlerVetoSendsProtocolErrorAndDoesNotForward(t *testing.T) {
	eng, upstreamPeer, ep, clientPeer := newTestEngine(t)

	viewport := object.NewCore(10, 300, "wp_viewport", 1, ep.ID)
	viewport.Handler = proto.NewHandlerFor("wp_viewport")
	ep.ClientTable.Insert(viewport)
	eng.State.ServerTable.Insert(viewport)

	// set_destination(width=0, height=0): non-positive, rejected by ViewportHandler.
	msg := &wire.Message{SenderID: 300, Opcode: 2, Words: []uint32{0, 0}}
	eng.mu.Lock()
	eng.handleRequestLocked(ep, msg)
	eng.mu.Unlock()

	upstreamPeer.SetReadDeadline(time.Now().Add(50 * time.Millisecond))
	if _, err := wire.NewReader(upstreamPeer).ReadMessage(); err == nil {
		t.Fatal("expected the vetoed request not to be forwarded upstream")
	}

	clientPeer.SetReadDeadline(time.Now().Add(2 * time.Second))
	got, err := wire.NewReader(clientPeer).ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	if got.SenderID != DisplayClientID || got.Opcode != displayErrorOpcode {
		t.Fatalf("got SenderID=%d Opcode=%d, want %d, %d", got.SenderID, got.Opcode, DisplayClientID, displayErrorOpcode)
	}
	if len(got.Words) < 2 || got.Words[0] != viewport.ClientID || got.Words[1] != uint32(proto.WpViewportErrorBadValue) {
		t.Fatalf("Words = %v, want [%d %d ...]", got.Words, viewport.ClientID, proto.WpViewportErrorBadValue)
	}
}

func TestHandleEventDropsCrossEndpointArgumentSilently(t *testing.T) {
	eng, _, ep, clientPeer := newTestEngine(t)

	const otherEndpoint = 999
	gesture := object.NewCore(7, 50, "zwp_pointer_gesture_swipe_v1", 3, ep.ID)
	ep.ClientTable.Insert(gesture)
	eng.State.ServerTable.Insert(gesture)

	otherSurface := object.NewCore(8, 60, "wl_surface", 6, otherEndpoint)
	eng.State.ServerTable.Insert(otherSurface)

	// begin(serial, time, surface, fingers) where surface belongs to a
	// different client than the gesture object.
	msg := &wire.Message{SenderID: 7, Opcode: 0, Words: []uint32{1, 100, 8, 3}}
	eng.mu.Lock()
	eng.handleEventLocked(msg)
	eng.mu.Unlock()

	clientPeer.SetReadDeadline(time.Now().Add(50 * time.Millisecond))
	r := wire.NewReader(clientPeer)
	if _, err := r.ReadMessage(); err == nil {
		t.Fatal("expected the cross-endpoint event to be dropped, not relayed")
	}
}
