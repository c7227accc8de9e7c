package frp

import "github.com/AnatoleLucet/frp/internal"

var (
	ErrNilFunctor    = internal.ErrNilFunctor
	ErrNilPredicate  = internal.ErrNilPredicate
	ErrNotStream     = internal.ErrNotStream
	ErrReentrantDrip = internal.ErrReentrantDrip
	ErrDripAborted   = internal.ErrDripAborted
	ErrEmptyMerge    = internal.ErrEmptyMerge
	ErrNoSources     = internal.ErrNoSources
	ErrForeignNode   = internal.ErrForeignNode
	ErrCycle         = internal.ErrCycle
)

type (
	// NodeError is logged when a functor fails.
	NodeError = internal.NodeError

	// AbortError is returned by Drip when a whole propagation failed.
	AbortError = internal.AbortError
)
