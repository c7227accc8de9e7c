package internal

// flow applies n's functor to value and walks n's direct children. A
// failing functor only voids this subtree; siblings elsewhere are unaffected.
// The result holds n's own effects first, then each child's in child order.
func (r *Runtime) flow(value any, n *Node) FlowingState {
	result, err := n.apply(value)
	if err != nil {
		r.nodeFailed(n, err)
		return FlowingState{}
	}

	e := n.edges()

	var state FlowingState
	for _, observer := range e.observers {
		state.observers = append(state.observers, observer.bind(result))
	}
	for _, update := range e.updates {
		state.updates = append(state.updates, update.bind(result))
	}
	for _, m := range e.lazyNext {
		state.waiting = append(state.waiting, pending{node: m, value: result})
	}

	for _, child := range e.next {
		if !child.accepts(result) {
			continue
		}

		state = state.fold(r.flow(result, child))
	}

	return state
}

// flowLazy runs flow then feeds each merge node every value that reached it,
// as a single Arrivals group, exactly once. A merge node handed an empty
// group aborts the whole drip rather than folding nothing.
func (r *Runtime) flowLazy(value any, n *Node) FlowingState {
	if values, ok := value.(Arrivals); ok && len(values) == 0 && n.kind == KindMerge {
		panic(ErrEmptyMerge)
	}

	state := r.flow(value, n)

	groups := state.groups()
	state.waiting = nil

	for _, g := range groups {
		state = state.fold(r.flowLazy(g.values, g.node))
	}

	return state
}
