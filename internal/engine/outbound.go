package engine

import "github.com/mahkoh/wl-proxy-sub012/internal/wire"

// queuedMessage is one fully-translated outbound message waiting to be
// flushed in order.
type queuedMessage struct {
	senderID uint32
	opcode   uint16
	words    []uint32
	fds      []int
}

// Outbound batches messages destined for one peer and flushes them in
// arrival order. Only the engine's single dispatch goroutine ever touches
// an Outbound, so it carries no lock of its own (see internal/object.Core
// for the same single-writer assumption applied to handler reentrancy).
type Outbound struct {
	writer *wire.Writer
	queue  []queuedMessage
}

// NewOutbound returns an Outbound that flushes onto writer.
func NewOutbound(writer *wire.Writer) *Outbound {
	return &Outbound{writer: writer}
}

// Queue appends a message without writing it yet. Each message's fds ride
// alongside its own words so the eventual sendmsg call keeps them paired.
func (o *Outbound) Queue(senderID uint32, opcode uint16, words []uint32, fds []int) {
	o.queue = append(o.queue, queuedMessage{senderID, opcode, words, fds})
}

// Flush writes every queued message to the peer in order, stopping at the
// first failure; messages after the failed one remain queued.
func (o *Outbound) Flush() error {
	for len(o.queue) > 0 {
		m := o.queue[0]
		if err := o.writer.WriteMessage(m.senderID, m.opcode, m.words, m.fds); err != nil {
			return err
		}
		o.queue = o.queue[1:]
	}
	return nil
}

// Pending reports how many messages are queued but not yet flushed.
func (o *Outbound) Pending() int {
	return len(o.queue)
}
