package wire

import (
	"encoding/binary"
	"fmt"
	"net"

	"golang.org/x/sys/unix"
)

// Writer encodes Wayland wire messages onto a Unix domain socket,
// attaching file descriptors via SCM_RIGHTS to the exact sendmsg(2) call
// that carries the words referencing them.
type Writer struct {
	conn *net.UnixConn
}

// NewWriter returns a Writer that writes bytes and fds to conn.
func NewWriter(conn *net.UnixConn) *Writer {
	return &Writer{conn: conn}
}

// EncodeHeader packs a message header into two wire words.
func EncodeHeader(senderID uint32, opcode uint16, argWords int) [2]uint32 {
	size := uint32((HeaderWords + argWords) * 4)
	return [2]uint32{senderID, size<<16 | uint32(opcode)}
}

// WriteMessage sends a complete message (header + argument words) along
// with any fds that must accompany it. The fds ride the first sendmsg(2)
// call; a short write is resumed with further calls for the remaining bytes.
func (w *Writer) WriteMessage(senderID uint32, opcode uint16, words []uint32, fds []int) error {
	header := EncodeHeader(senderID, opcode, len(words))

	buf := make([]byte, (HeaderWords+len(words))*4)
	binary.LittleEndian.PutUint32(buf[0:4], header[0])
	binary.LittleEndian.PutUint32(buf[4:8], header[1])
	for i, word := range words {
		off := 8 + i*4
		binary.LittleEndian.PutUint32(buf[off:off+4], word)
	}

	var oob []byte
	if len(fds) > 0 {
		oob = unix.UnixRights(fds...)
	}

	rawConn, err := w.conn.SyscallConn()
	if err != nil {
		return fmt.Errorf("wire: get raw conn: %w", err)
	}

	// A short sendmsg leaves the unsent tail of buf to retry: libwayland's
	// non-blocking writer handles this by re-registering for writability
	// and resuming from the same offset, which is what the sent/oob state
	// below tracks across repeated invocations of this closure. oob rides
	// only the call that actually lands bytes, since SCM_RIGHTS is atomic
	// per sendmsg and must not be attached twice.
	var sent int
	var writeErr error
	err = rawConn.Write(func(fd uintptr) bool {
		for sent < len(buf) {
			n, sendErr := unix.SendmsgN(int(fd), buf[sent:], oob, nil, 0)
			if sendErr == unix.EAGAIN {
				return false
			}
			if sendErr != nil {
				writeErr = sendErr
				return true
			}
			oob = nil
			sent += n
		}
		return true
	})
	if err != nil {
		return fmt.Errorf("wire: sendmsg: %w", err)
	}
	if writeErr != nil {
		return fmt.Errorf("wire: sendmsg: %w", writeErr)
	}

	return nil
}
