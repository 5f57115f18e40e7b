package wire

import (
	"encoding/binary"
	"fmt"
	"net"

	"golang.org/x/sys/unix"
)

// maxMessageWords bounds a single message's argument words, guarding
// against a malformed or hostile header claiming an unreasonable size.
const maxMessageWords = 1 << 16

// recvBufWords is the chunk size used for each underlying recvmsg(2) call.
const recvBufWords = 1 << 12

// Reader decodes Wayland wire messages from a Unix domain socket,
// buffering both the byte stream and any file descriptors received via
// SCM_RIGHTS ancillary data alongside it.
type Reader struct {
	conn *net.UnixConn
	buf  []byte
	fds  []int
}

// NewReader returns a Reader that pulls bytes and fds from conn.
func NewReader(conn *net.UnixConn) *Reader {
	return &Reader{conn: conn}
}

// fill performs one recvmsg(2) call, appending any payload bytes and
// received file descriptors to the reader's buffers.
func (r *Reader) fill() error {
	payload := make([]byte, recvBufWords*4)
	oob := make([]byte, unix.CmsgSpace(64*4)) // room for a burst of fds

	rawConn, err := r.conn.SyscallConn()
	if err != nil {
		return fmt.Errorf("wire: get raw conn: %w", err)
	}

	var n, oobn int
	var readErr error
	err = rawConn.Read(func(fd uintptr) bool {
		n, oobn, _, _, readErr = unix.Recvmsg(int(fd), payload, oob, 0)
		if readErr == unix.EAGAIN {
			return false
		}
		return true
	})
	if err != nil {
		return fmt.Errorf("wire: recvmsg: %w", err)
	}
	if readErr != nil {
		return fmt.Errorf("wire: recvmsg: %w", readErr)
	}
	if n == 0 {
		return fmt.Errorf("wire: %w", net.ErrClosed)
	}

	r.buf = append(r.buf, payload[:n]...)

	if oobn > 0 {
		scms, err := unix.ParseSocketControlMessage(oob[:oobn])
		if err != nil {
			return fmt.Errorf("wire: parse control message: %w", err)
		}
		for _, scm := range scms {
			newFds, err := unix.ParseUnixRights(&scm)
			if err != nil {
				continue
			}
			r.fds = append(r.fds, newFds...)
		}
	}

	return nil
}

// ensure makes sure at least n bytes are buffered, performing additional
// recvmsg calls as needed.
func (r *Reader) ensure(n int) error {
	for len(r.buf) < n {
		if err := r.fill(); err != nil {
			return err
		}
	}
	return nil
}

// ReadMessage decodes the next message from the stream, blocking until a
// full message (and any fds its header implies, via later arg decoding)
// is available.
func (r *Reader) ReadMessage() (*Message, error) {
	if err := r.ensure(8); err != nil {
		return nil, err
	}

	senderID := binary.LittleEndian.Uint32(r.buf[0:4])
	sizeAndOp := binary.LittleEndian.Uint32(r.buf[4:8])
	size := int(sizeAndOp >> 16)
	opcode := uint16(sizeAndOp & 0xffff)

	if size < 8 || size%4 != 0 {
		return nil, WrongSize(size, 8)
	}
	wordCount := size/4 - HeaderWords
	if wordCount > maxMessageWords {
		return nil, WrongSize(size, 8)
	}

	if err := r.ensure(size); err != nil {
		return nil, err
	}

	words := make([]uint32, wordCount)
	for i := 0; i < wordCount; i++ {
		off := 8 + i*4
		words[i] = binary.LittleEndian.Uint32(r.buf[off : off+4])
	}

	r.buf = r.buf[size:]

	return &Message{SenderID: senderID, Opcode: opcode, Words: words}, nil
}

// PopFd removes and returns the oldest buffered file descriptor, or
// (-1, false) if none are available yet. Callers that need more fds than
// are currently buffered should keep pulling messages until the needed fd
// arrives attached to a subsequent recvmsg call.
func (r *Reader) PopFd() (int, bool) {
	if len(r.fds) == 0 {
		return -1, false
	}
	fd := r.fds[0]
	r.fds = r.fds[1:]
	return fd, true
}

// FillFds performs additional recvmsg calls until at least n fds are
// buffered or the connection errors out.
func (r *Reader) FillFds(n int) error {
	for len(r.fds) < n {
		if err := r.fill(); err != nil {
			return err
		}
	}
	return nil
}
