package internal

import "sync"

// Cell is the mutable value behind a held property. It keeps an explicit
// link to the node it is bound to and the update sink it registered there.
type Cell struct {
	mu    sync.Mutex
	value any

	owner *Node
	sink  *Effect
}

func NewCell(initial any) *Cell {
	return &Cell{value: initial}
}

func (c *Cell) Get() any {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.value
}

func (c *Cell) Set(v any) {
	c.mu.Lock()
	c.value = v
	c.mu.Unlock()
}

// Bind registers the cell as an update sink of n. A cell binds at most once.
func (c *Cell) Bind(n *Node) {
	c.mu.Lock()
	if c.owner != nil {
		c.mu.Unlock()
		return
	}
	c.owner = n
	c.sink = NewEffect(c.Set)
	c.mu.Unlock()

	n.AddUpdate(c.sink)
}

// Detach removes the update sink; the cell keeps its last value.
func (c *Cell) Detach() {
	c.mu.Lock()
	owner, sink := c.owner, c.sink
	c.owner, c.sink = nil, nil
	c.mu.Unlock()

	if owner != nil {
		owner.RemoveUpdate(sink)
	}
}

// Owner returns the node the cell is bound to, nil once detached.
func (c *Cell) Owner() *Node {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.owner
}
