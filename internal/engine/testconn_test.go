package engine

import (
	"net"
	"os"
	"testing"

	"golang.org/x/sys/unix"
)

// socketPair returns a connected pair of *net.UnixConn, closed on test
// cleanup. Shared by every engine test that needs to drive Reader/Writer
// through a real socket rather than constructing a wire.Message by hand.
func socketPair(t *testing.T) (*net.UnixConn, *net.UnixConn) {
	t.Helper()
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		t.Fatalf("socketpair: %v", err)
	}

	connFromFd := func(fd int) *net.UnixConn {
		f := os.NewFile(uintptr(fd), "sock")
		c, err := net.FileConn(f)
		if err != nil {
			t.Fatalf("FileConn: %v", err)
		}
		f.Close()
		uc, ok := c.(*net.UnixConn)
		if !ok {
			t.Fatalf("FileConn did not return *net.UnixConn")
		}
		return uc
	}

	a := connFromFd(fds[0])
	b := connFromFd(fds[1])
	t.Cleanup(func() { a.Close(); b.Close() })
	return a, b
}

// newTestEngine wires an Engine around a fresh upstream socketpair and one
// client Endpoint, mirroring how cmd/wlproxy assembles these at startup.
// Returns the engine, the test's peer end of the upstream socket (the
// "real compositor" side) and the endpoint plus its peer end (the "real
// client" side).
func newTestEngine(t *testing.T) (eng *Engine, upstreamPeer *net.UnixConn, ep *Endpoint, clientPeer *net.UnixConn) {
	t.Helper()

	upstreamProxySide, upstreamPeerSide := socketPair(t)
	state := NewState(upstreamProxySide, false)

	clientProxySide, clientPeerSide := socketPair(t)
	endpoint := NewEndpoint(state.NextEndpointID(), clientProxySide)

	e := NewEngine(state, nil)
	e.addEndpoint(endpoint)

	return e, upstreamPeerSide, endpoint, clientPeerSide
}
