package internal

// Arrivals is the ordered group of values that reached a merge node during
// one propagation.
type Arrivals []any

type pending struct {
	node  *Node
	value any
}

type group struct {
	node   *Node
	values Arrivals
}

// FlowingState is what one propagation walk produced: merge values still
// waiting to be grouped, observer thunks and update thunks. Nothing in it
// runs until the drip that built it consumes it.
type FlowingState struct {
	waiting   []pending
	observers []func()
	updates   []func()
}

// fold appends other after s. Folding is associative and keeps order.
func (s FlowingState) fold(other FlowingState) FlowingState {
	s.waiting = append(s.waiting, other.waiting...)
	s.observers = append(s.observers, other.observers...)
	s.updates = append(s.updates, other.updates...)
	return s
}

// groups collects waiting values per merge node, in order of first arrival.
func (s FlowingState) groups() []group {
	var groups []group
	index := make(map[*Node]int)

	for _, p := range s.waiting {
		i, ok := index[p.node]
		if !ok {
			i = len(groups)
			index[p.node] = i
			groups = append(groups, group{node: p.node})
		}
		groups[i].values = append(groups[i].values, p.value)
	}

	return groups
}

func (s FlowingState) runObservers() {
	for _, observer := range s.observers {
		observer()
	}
}

func (s FlowingState) commit() {
	for _, update := range s.updates {
		update()
	}
}

// Observers returns the number of observer calls the propagation scheduled.
func (s FlowingState) Observers() int { return len(s.observers) }

// Updates returns the number of property updates the propagation scheduled.
func (s FlowingState) Updates() int { return len(s.updates) }

// Pending returns the number of merge values not yet grouped.
func (s FlowingState) Pending() int { return len(s.waiting) }

// Empty reports whether the propagation had no observable effect.
func (s FlowingState) Empty() bool {
	return len(s.waiting) == 0 && len(s.observers) == 0 && len(s.updates) == 0
}
