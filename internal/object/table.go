package object

// Table indexes a set of objects by both their server-namespace and
// client-namespace ids. A proxy keeps one Table per client connection:
// client ids are unique within that table, server ids are unique within
// the whole proxy process and so may also appear, unioned, in a
// process-wide table the engine keeps for routing server-originated
// events back to the right client.
type Table struct {
	byServerID map[uint32]*Core
	byClientID map[uint32]*Core
}

// NewTable returns an empty object table.
func NewTable() *Table {
	return &Table{
		byServerID: make(map[uint32]*Core),
		byClientID: make(map[uint32]*Core),
	}
}

// Insert adds c to the table, indexed by whichever of its ids are non-zero.
func (t *Table) Insert(c *Core) {
	if c.ServerID != 0 {
		t.byServerID[c.ServerID] = c
	}
	if c.ClientID != 0 {
		t.byClientID[c.ClientID] = c
	}
}

// LookupServer finds an object by its server-namespace id.
func (t *Table) LookupServer(id uint32) (*Core, bool) {
	c, ok := t.byServerID[id]
	return c, ok
}

// LookupClient finds an object by its client-namespace id.
func (t *Table) LookupClient(id uint32) (*Core, bool) {
	c, ok := t.byClientID[id]
	return c, ok
}

// Delete removes c from both indexes.
func (t *Table) Delete(c *Core) {
	if c.ServerID != 0 {
		delete(t.byServerID, c.ServerID)
	}
	if c.ClientID != 0 {
		delete(t.byClientID, c.ClientID)
	}
}

// DeleteClient removes only c's client-namespace binding, leaving any
// server-namespace entry untouched. Used by the destroy handshake: the
// client-side id is freed as soon as the client sends destroy, while the
// server-side id lingers until the upstream delete_id acknowledgement.
func (t *Table) DeleteClient(c *Core) {
	if c.ClientID != 0 {
		delete(t.byClientID, c.ClientID)
	}
}

// DeleteServer removes only c's server-namespace binding, leaving any
// client-namespace entry untouched.
func (t *Table) DeleteServer(c *Core) {
	if c.ServerID != 0 {
		delete(t.byServerID, c.ServerID)
	}
}

// Len returns the number of live entries in the server-id index, which is
// populated for every tracked object regardless of whether it also has a
// client-side binding.
func (t *Table) Len() int {
	return len(t.byServerID)
}
