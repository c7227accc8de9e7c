package frp

import (
	"context"
	"log/slog"

	"github.com/AnatoleLucet/frp/internal"
)

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}

// Engine owns the drip lock and the reentrancy guard shared by every
// stream built on it. Streams built with New, NewFunc and the combinators
// live on the engine of their first source.
type Engine struct {
	runtime *internal.Runtime
}

// Option configures an Engine.
type Option = internal.Option

// WithLogger sets the logger used for functor failures and aborted drips.
func WithLogger(logger *slog.Logger) Option {
	return internal.WithLogger(logger)
}

// WithContext sets the context engine signals are emitted with.
func WithContext(ctx context.Context) Option {
	return internal.WithContext(ctx)
}

// NewEngine creates an engine independent from the default one.
func NewEngine(opts ...Option) *Engine {
	return &Engine{internal.NewRuntime(opts...)}
}

// Default returns the process-wide engine used by New and NewFunc.
func Default() *Engine {
	return &Engine{internal.GetRuntime()}
}

// Logger returns the engine's logger.
func (e *Engine) Logger() *slog.Logger {
	return e.runtime.Logger()
}

// Context returns the context engine signals are emitted with.
func (e *Engine) Context() context.Context {
	return e.runtime.Context()
}

// FlowingState is what one Drip produced. See internal.FlowingState.
type FlowingState = internal.FlowingState

// Node is implemented by every stream, whatever its value types.
type Node interface {
	node() *internal.Node
}

// Source is implemented by every stream whose output values are T.
type Source[T any] interface {
	Node
	emits(T)
}

// Stream is a node of the dataflow graph turning I values into O values.
type Stream[I, O any] struct {
	n *internal.Node
}

func (s *Stream[I, O]) node() *internal.Node {
	if s == nil {
		return nil
	}

	return s.n
}

func (s *Stream[I, O]) emits(O) {}

// ID returns the stream's unique id.
func (s *Stream[I, O]) ID() string { return s.n.ID().String() }

// Name returns the name given with Named, if any.
func (s *Stream[I, O]) Name() string { return s.n.Name() }

func (s *Stream[I, O]) String() string { return s.n.String() }

// lookup returns the node behind s, or nil.
func lookup(s Node) *internal.Node {
	if s == nil {
		return nil
	}

	return s.node()
}

func nodeOf(s Node) *internal.Node {
	n := lookup(s)
	if n == nil {
		panic(internal.ErrNotStream)
	}

	return n
}

func wrap[I, O any](n *internal.Node) *Stream[I, O] {
	return &Stream[I, O]{n}
}

// IsStream reports whether v is a stream.
func IsStream(v any) bool {
	s, ok := v.(Node)
	return ok && lookup(s) != nil
}

// Named attaches a debug name to s and returns it.
func Named[S Node](s S, name string) S {
	nodeOf(s).SetName(name)
	return s
}

// New creates an identity stream on the default engine.
func New[T any]() *Stream[T, T] {
	return NewIn[T](Default())
}

// NewIn creates an identity stream on e.
func NewIn[T any](e *Engine) *Stream[T, T] {
	return wrap[T, T](must(e.runtime.NewNode(internal.KindStream, internal.Identity)))
}

// NewFunc creates a root stream applying fn to every dripped value.
// It panics with ErrNilFunctor if fn is nil.
func NewFunc[I, O any](fn func(I) O) *Stream[I, O] {
	return NewFuncIn(Default(), fn)
}

// NewFuncIn is NewFunc on e.
func NewFuncIn[I, O any](e *Engine, fn func(I) O) *Stream[I, O] {
	if fn == nil {
		panic(internal.ErrNilFunctor)
	}

	return wrap[I, O](must(e.runtime.NewNode(internal.KindStream, functor(fn))))
}

func functor[I, O any](fn func(I) O) internal.Functor {
	return func(v any) (any, error) {
		return fn(as[I](v)), nil
	}
}

// Pipe creates a stream receiving fn(v) for every v src emits.
// It panics with ErrNilFunctor if fn is nil.
//
// Pipe must not be called from a functor while a drip walks src.
func Pipe[I, O any](src Source[I], fn func(I) O) *Stream[I, O] {
	if fn == nil {
		panic(internal.ErrNilFunctor)
	}

	return wrap[I, O](must(nodeOf(src).Pipe(internal.KindPipe, functor(fn))))
}

// TryPipe is Pipe for fallible functors. A returned error is logged and
// stops the value there, as a panicking functor would.
func TryPipe[I, O any](src Source[I], fn func(I) (O, error)) *Stream[I, O] {
	if fn == nil {
		panic(internal.ErrNilFunctor)
	}

	n := must(nodeOf(src).Pipe(internal.KindPipe, func(v any) (any, error) {
		return fn(as[I](v))
	}))
	return wrap[I, O](n)
}

// Filter creates a stream passing on the values of src for which pred holds.
// Other children of src are unaffected.
func Filter[T any](src Source[T], pred func(T) bool) *Stream[T, T] {
	if pred == nil {
		panic(internal.ErrNilPredicate)
	}

	n := must(nodeOf(src).Filter(func(v any) bool {
		return pred(as[T](v))
	}))
	return wrap[T, T](n)
}

// Merge creates a stream fed by every source. When several sources fire
// during the same drip, combine folds their values left to right in
// arrival order; a lone value passes through unchanged.
func Merge[T any](combine func(T, T) T, sources ...Source[T]) *Stream[T, T] {
	if combine == nil {
		panic(internal.ErrNilFunctor)
	}
	if len(sources) == 0 {
		panic(internal.ErrNoSources)
	}

	nodes := make([]*internal.Node, len(sources))
	for i, s := range sources {
		nodes[i] = nodeOf(s)
	}

	m := must(nodes[0].Runtime().NewMerge(func(acc, v any) any {
		return combine(as[T](acc), as[T](v))
	}, nodes...))
	return wrap[T, T](m)
}

// Shed follows the latest stream emitted by outer: values of the current
// inner stream reach the returned stream, values of earlier ones no longer do.
// An inner stream fed by the returned stream itself would form a cycle: it is
// logged with ErrCycle and ignored, leaving Shed silent until the next one.
func Shed[T any](outer Source[Source[T]]) *Stream[T, T] {
	on := nodeOf(outer)
	r := on.Runtime()
	out := must(r.NewNode(internal.KindShed, internal.Identity))

	// observers run before updates, so current still holds the previous inner
	current := HoldCell[Source[T]](outer, nil)
	Listen(outer, func(inner Source[T]) {
		if prev := lookup(current.Get()); prev != nil {
			prev.Unlink(out)
		}

		next := lookup(inner)
		if next == nil {
			return
		}
		if out.Reaches(next) {
			r.Logger().Warn("shed ignored inner stream",
				"node", out.ID(),
				"inner", next.ID(),
				"error", internal.ErrCycle,
			)
			return
		}
		next.Link(out)
	})

	return wrap[T, T](out)
}

// Snapshot creates a stream that, whenever src fires, emits p's value at
// that moment.
func Snapshot[A, T any](src Source[A], p Prop[T]) *Stream[A, T] {
	if p == nil {
		panic(internal.ErrNilFunctor)
	}

	n := must(nodeOf(src).Pipe(internal.KindSnapshot, func(any) (any, error) {
		return p(), nil
	}))
	return wrap[A, T](n)
}

// Listen calls observer with every value s emits, during the observer phase
// of each drip. The returned function unsubscribes.
func Listen[T any](s Source[T], observer func(T)) (unsubscribe func()) {
	if observer == nil {
		panic(internal.ErrNilFunctor)
	}

	n := nodeOf(s)
	e := n.Observe(func(v any) { observer(as[T](v)) })

	return func() { n.RemoveObserver(e) }
}

// Drip injects v into s and runs the whole propagation before returning.
//
// It returns ErrReentrantDrip when called from an observer of the same
// engine, and an error matching ErrDripAborted, with an empty state, when
// the propagation failed as a whole; in both cases no observer ran.
func Drip[I, O any](s *Stream[I, O], v I) (FlowingState, error) {
	n := lookup(s)
	if n == nil {
		return FlowingState{}, internal.ErrNotStream
	}

	return n.Runtime().Drip(n, v)
}

// CountRefs returns a property counting the observers and held properties
// attached to s, or, when deep, to s and everything downstream of it.
func CountRefs(s Node, deep bool) Prop[int] {
	n := nodeOf(s)

	if deep {
		return n.DeepRefs
	}
	return n.Refs
}

// Clear detaches everything downstream of s, leaving it inert. Parents of s
// keep their edge to it.
func Clear(s Node) error {
	n := lookup(s)
	if n == nil {
		return internal.ErrNotStream
	}

	return n.Runtime().Clear(n)
}
