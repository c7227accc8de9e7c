package internal

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Kind records which combinator built a node.
type Kind string

const (
	KindStream   Kind = "stream"
	KindPipe     Kind = "pipe"
	KindFilter   Kind = "filter"
	KindMerge    Kind = "merge"
	KindSnapshot Kind = "snapshot"
	KindShed     Kind = "shed"
)

// Functor transforms a value reaching a node. A returned error, like a
// panic, voids the node's subtree for the current propagation.
type Functor func(any) (any, error)

// Predicate decides whether a value may enter a node.
type Predicate func(any) bool

// Identity passes its input through unchanged.
func Identity(v any) (any, error) { return v, nil }

type Node struct {
	id   uuid.UUID
	name string
	kind Kind

	runtime *Runtime

	functor Functor
	filter  Predicate

	// guards name and the edge sets, never held while user code runs
	mu sync.Mutex

	next      []*Node
	lazyNext  []*Node
	observers []*Effect
	updates   []*Effect
}

// edges is an immutable copy of a node's edge sets taken before iterating.
type edges struct {
	next      []*Node
	lazyNext  []*Node
	observers []*Effect
	updates   []*Effect
}

func (r *Runtime) NewNode(kind Kind, fn Functor) (*Node, error) {
	if fn == nil {
		return nil, ErrNilFunctor
	}

	return &Node{
		id:      uuid.Must(uuid.NewV7()),
		kind:    kind,
		runtime: r,
		functor: fn,
	}, nil
}

// Pipe creates a child node computing fn over this node's output.
func (n *Node) Pipe(kind Kind, fn Functor) (*Node, error) {
	child, err := n.runtime.NewNode(kind, fn)
	if err != nil {
		return nil, err
	}

	n.Link(child)
	return child, nil
}

// Filter creates an identity child that only accepts values satisfying pred.
func (n *Node) Filter(pred Predicate) (*Node, error) {
	if pred == nil {
		return nil, ErrNilPredicate
	}

	child, err := n.runtime.NewNode(KindFilter, Identity)
	if err != nil {
		return nil, err
	}
	child.filter = pred

	n.Link(child)
	return child, nil
}

func (n *Node) ID() uuid.UUID { return n.id }
func (n *Node) Kind() Kind { return n.kind }
func (n *Node) Runtime() *Runtime { return n.runtime }

func (n *Node) Name() string {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.name
}

// SetName may be called at any time, including while producers drip.
func (n *Node) SetName(name string) {
	n.mu.Lock()
	n.name = name
	n.mu.Unlock()
}

func (n *Node) String() string {
	if name := n.Name(); name != "" {
		return name
	}

	return string(n.kind) + ":" + n.id.String()[:8]
}

// Link adds child to the direct children of n.
func (n *Node) Link(child *Node) {
	n.mu.Lock()
	n.next = add(n.next, child)
	n.mu.Unlock()
}

// Unlink removes child from the direct children of n.
func (n *Node) Unlink(child *Node) {
	n.mu.Lock()
	n.next = remove(n.next, child)
	n.mu.Unlock()
}

// LinkLazy registers m as a merge node fed by n.
func (n *Node) LinkLazy(m *Node) {
	n.mu.Lock()
	n.lazyNext = add(n.lazyNext, m)
	n.mu.Unlock()
}

// Observe registers fn to be called with every output of n.
func (n *Node) Observe(fn func(any)) *Effect {
	e := NewEffect(fn)

	n.mu.Lock()
	n.observers = add(n.observers, e)
	n.mu.Unlock()

	return e
}

func (n *Node) RemoveObserver(e *Effect) {
	n.mu.Lock()
	n.observers = remove(n.observers, e)
	n.mu.Unlock()
}

// AddUpdate registers a committed mutation run after all observers.
func (n *Node) AddUpdate(e *Effect) {
	n.mu.Lock()
	n.updates = add(n.updates, e)
	n.mu.Unlock()
}

func (n *Node) RemoveUpdate(e *Effect) {
	n.mu.Lock()
	n.updates = remove(n.updates, e)
	n.mu.Unlock()
}

func (n *Node) edges() edges {
	n.mu.Lock()
	defer n.mu.Unlock()

	return edges{
		next:      slices.Clone(n.next),
		lazyNext:  slices.Clone(n.lazyNext),
		observers: slices.Clone(n.observers),
		updates:   slices.Clone(n.updates),
	}
}

// apply runs the functor, turning a panic into an error.
func (n *Node) apply(value any) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = asError(r)
		}
	}()

	return n.functor(value)
}

// accepts runs the filter outside of any recovery: a panicking predicate
// aborts the whole drip.
func (n *Node) accepts(value any) bool {
	return n.filter == nil || n.filter(value)
}

func add[T comparable](set []T, v T) []T {
	if slices.Contains(set, v) {
		return set
	}

	return append(set, v)
}

func remove[T comparable](set []T, v T) []T {
	if i := slices.Index(set, v); i >= 0 {
		return slices.Delete(set, i, i+1)
	}

	return set
}
