package object

// ClientIDBase is the first id a proxy-generated client-side new_id
// allocates, matching the libwayland convention that reserves ids below
// this value for the client's own allocations and treats this range as
// compositor/server-allocated.
const ClientIDBase = 0xff000000

// ServerAllocator hands out sequential object ids in the proxy's own
// upstream-facing namespace, starting at 1 (id 0 is never a valid object).
type ServerAllocator struct {
	next uint32
}

// NewServerAllocator returns an allocator starting at 1.
func NewServerAllocator() *ServerAllocator {
	return &ServerAllocator{next: 1}
}

// Next returns the next unused server-namespace id.
func (a *ServerAllocator) Next() uint32 {
	id := a.next
	a.next++
	return id
}

// ClientAllocator hands out sequential object ids in the range reserved
// for server-allocated objects in a client's namespace (ids the proxy
// itself generates on the client's behalf, such as the offers created by
// wl_data_device.data_offer).
type ClientAllocator struct {
	next uint32
}

// NewClientAllocator returns an allocator starting at ClientIDBase.
func NewClientAllocator() *ClientAllocator {
	return &ClientAllocator{next: ClientIDBase}
}

// Next returns the next unused id in the server-allocated range.
func (a *ClientAllocator) Next() uint32 {
	id := a.next
	a.next++
	return id
}
