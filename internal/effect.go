package internal

// Effect is an observer or update sink attached to a node. Effects are
// compared by identity, so the same callback can be registered twice.
type Effect struct {
	fn func(any)
}

func NewEffect(fn func(any)) *Effect {
	return &Effect{fn: fn}
}

// bind captures v for the observer or update phase.
func (e *Effect) bind(v any) func() {
	return func() { e.fn(v) }
}
