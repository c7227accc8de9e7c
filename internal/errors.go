package internal

import (
	"errors"
	"fmt"
)

var (
	ErrNilFunctor    = errors.New("frp: functor must not be nil")
	ErrNilPredicate  = errors.New("frp: filter predicate must not be nil")
	ErrNotStream     = errors.New("frp: value is not a stream")
	ErrReentrantDrip = errors.New("frp: drip called from inside an observer")
	ErrDripAborted   = errors.New("frp: drip aborted")
	ErrEmptyMerge    = errors.New("frp: merge received no values")
	ErrNoSources     = errors.New("frp: merge needs at least one source")
	ErrForeignNode   = errors.New("frp: nodes belong to different runtimes")
	ErrCycle         = errors.New("frp: stream would feed itself")
)

// NodeError describes a functor failure. It is logged and voids the
// failing node's subtree for the current propagation.
type NodeError struct {
	Node  *Node
	Cause error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("frp: node %s failed: %v", e.Node, e.Cause)
}

func (e *NodeError) Unwrap() error {
	return e.Cause
}

// AbortError is returned by Drip when the pure phase failed as a whole.
type AbortError struct {
	Cause error
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("%v: %v", ErrDripAborted, e.Cause)
}

func (e *AbortError) Unwrap() []error {
	return []error{ErrDripAborted, e.Cause}
}

// asError turns a recovered panic value into an error.
func asError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}

	return fmt.Errorf("panic: %v", r)
}
