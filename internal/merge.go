package internal

// Combine folds two values arriving at a merge node.
type Combine func(acc, v any) any

// NewMerge creates a node fed lazily by every source. Its functor receives
// the Arrivals of one propagation and folds them left to right.
func (r *Runtime) NewMerge(combine Combine, sources ...*Node) (*Node, error) {
	if combine == nil {
		return nil, ErrNilFunctor
	}
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	for _, s := range sources {
		if s == nil {
			return nil, ErrNotStream
		}
		if s.runtime != r {
			return nil, ErrForeignNode
		}
	}

	m, err := r.NewNode(KindMerge, func(v any) (any, error) {
		return Fold(v, combine)
	})
	if err != nil {
		return nil, err
	}

	for _, s := range sources {
		s.LinkLazy(m)
	}

	return m, nil
}

// Fold combines arrivals left to right. A value dripped straight into a
// merge node is not an Arrivals group and passes through.
func Fold(v any, combine Combine) (any, error) {
	values, ok := v.(Arrivals)
	if !ok {
		return v, nil
	}
	if len(values) == 0 {
		return nil, ErrEmptyMerge
	}

	acc := values[0]
	for _, value := range values[1:] {
		acc = combine(acc, value)
	}

	return acc, nil
}
