package frp

import "github.com/AnatoleLucet/frp/internal"

// Prop reads the current value of a time-varying quantity.
type Prop[T any] func() T

// Cell is a property held from a stream. It keeps its own link to the
// stream it listens to, so it can be detached explicitly.
type Cell[T any] struct {
	cell *internal.Cell
}

// Get returns the held value.
func (c *Cell[T]) Get() T {
	return as[T](c.cell.Get())
}

// Prop returns Get as a Prop.
func (c *Cell[T]) Prop() Prop[T] {
	return c.Get
}

// Detach stops the cell from following its stream. It keeps its last value.
func (c *Cell[T]) Detach() {
	c.cell.Detach()
}

// HoldCell holds the latest value of s, starting at initial. The value
// changes during the update phase of a drip, after every observer ran.
func HoldCell[T any](s Source[T], initial T) *Cell[T] {
	n := nodeOf(s)

	c := internal.NewCell(initial)
	c.Bind(n)

	return &Cell[T]{c}
}

// Hold is HoldCell returning only the reader.
func Hold[T any](s Source[T], initial T) Prop[T] {
	return HoldCell(s, initial).Get
}

// Accum folds every value of s into a property: for each v the property
// becomes reducer(v, current), starting from seed.
func Accum[A, T any](s Source[A], reducer func(A, T) T, seed T) Prop[T] {
	if reducer == nil {
		panic(internal.ErrNilFunctor)
	}

	// the cell exists before the stream reading it, and is bound after
	c := &Cell[T]{internal.NewCell(seed)}
	derived := Pipe(s, func(v A) T {
		return reducer(v, c.Get())
	})
	c.cell.Bind(derived.n)

	return c.Get
}

// Lift derives a property folding the current values of props with
// combine on every read. Nothing is cached; an empty list reads as the zero
// value.
func Lift[T any](combine func(T, T) T, props ...Prop[T]) Prop[T] {
	if combine == nil {
		panic(internal.ErrNilFunctor)
	}

	return func() T {
		var acc T
		for i, p := range props {
			if i == 0 {
				acc = p()
				continue
			}
			acc = combine(acc, p())
		}
		return acc
	}
}

// Lift2 derives a property from two properties of different types.
func Lift2[A, B, T any](a Prop[A], b Prop[B], combine func(A, B) T) Prop[T] {
	if combine == nil {
		panic(internal.ErrNilFunctor)
	}

	return func() T {
		return combine(a(), b())
	}
}

// Constant is a property that never changes.
func Constant[T any](v T) Prop[T] {
	return func() T { return v }
}
