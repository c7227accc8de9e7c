package internal

import "github.com/zoobzio/capitan"

// Refs counts the observers and update sinks attached directly to n.
func (n *Node) Refs() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return len(n.observers) + len(n.updates)
}

// DeepRefs sums Refs over n and everything reachable through next and
// lazyNext. A node reachable through two paths is counted on each.
func (n *Node) DeepRefs() int {
	e := n.edges()

	total := len(e.observers) + len(e.updates)
	for _, child := range e.next {
		total += child.DeepRefs()
	}
	for _, m := range e.lazyNext {
		total += m.DeepRefs()
	}

	return total
}

// Reaches reports whether target is n or lies anywhere below it.
func (n *Node) Reaches(target *Node) bool {
	seen := make(map[*Node]bool)

	var walk func(*Node) bool
	walk = func(m *Node) bool {
		if m == target {
			return true
		}
		if seen[m] {
			return false
		}
		seen[m] = true

		e := m.edges()
		for _, child := range e.next {
			if walk(child) {
				return true
			}
		}
		for _, child := range e.lazyNext {
			if walk(child) {
				return true
			}
		}
		return false
	}

	return walk(n)
}

// Clear empties the edge sets of n and of every node below it. Parents of n
// keep their edge to it; propagation into n simply stops there.
func (r *Runtime) Clear(n *Node) error {
	if n == nil {
		return ErrNotStream
	}

	n.clear()

	r.logger.Debug("stream cleared",
		"node", n.id,
		"name", n.Name(),
	)
	capitan.Emit(r.ctx, StreamCleared,
		KeyNode.Field(n.id.String()),
		KeyKind.Field(string(n.kind)),
	)

	return nil
}

func (n *Node) clear() {
	e := n.edges()
	for _, child := range e.next {
		child.clear()
	}
	for _, m := range e.lazyNext {
		m.clear()
	}

	n.mu.Lock()
	n.next = nil
	n.lazyNext = nil
	n.observers = nil
	n.updates = nil
	n.mu.Unlock()
}
