package internal

import (
	"context"
	"log/slog"
	"sync"

	"github.com/zoobzio/capitan"
)

// Runtime owns the state shared by every node built on it: the observer
// phase guard, the lock serializing drips, and the logger.
type Runtime struct {
	// held for a whole drip, so goroutine-backed producers never interleave
	mu sync.Mutex

	scheduler *Scheduler

	logger *slog.Logger
	ctx    context.Context
}

func NewRuntime(opts ...Option) *Runtime {
	r := &Runtime{
		scheduler: NewScheduler(),
		logger:    slog.Default(),
		ctx:       context.Background(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

var (
	once          sync.Once
	globalRuntime *Runtime
)

// GetRuntime returns the process-wide default runtime.
func GetRuntime() *Runtime {
	once.Do(func() {
		globalRuntime = NewRuntime()
	})

	return globalRuntime
}

func (r *Runtime) Logger() *slog.Logger {
	return r.logger
}

func (r *Runtime) Context() context.Context {
	return r.ctx
}

// Drip injects value at n and runs the propagation to completion: the pure
// walk first, then every observer, then every update. Observers therefore
// read properties as they were before the value arrived.
//
// A panic escaping the pure walk aborts the call: no observer and no update
// runs, and an *AbortError is returned with an empty state. Dripping again
// from the goroutine running a drip, whether from a functor, a filter or an
// observer, fails with ErrReentrantDrip.
func (r *Runtime) Drip(n *Node, value any) (FlowingState, error) {
	if n == nil {
		return FlowingState{}, ErrNotStream
	}
	if n.runtime != r {
		return FlowingState{}, ErrForeignNode
	}

	// a drip owned by this goroutine would deadlock on r.mu
	if r.scheduler.Dripping() || r.scheduler.Observing() {
		capitan.Emit(r.ctx, DripReentrant,
			KeyNode.Field(n.id.String()),
		)
		return FlowingState{}, ErrReentrantDrip
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var (
		state FlowingState
		err   error
	)
	r.scheduler.RunDrip(func() {
		state, err = r.pure(n, value)
		if err != nil {
			return
		}

		r.scheduler.RunObservers(state.runObservers)
		state.commit()
	})

	if err != nil {
		r.logger.Error("drip aborted",
			"node", n.id,
			"name", n.Name(),
			"error", err,
		)
		capitan.Emit(r.ctx, DripAborted,
			KeyNode.Field(n.id.String()),
			KeyError.Field(err.Error()),
		)
		return FlowingState{}, err
	}

	return state, nil
}

func (r *Runtime) pure(n *Node, value any) (state FlowingState, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			state = FlowingState{}
			err = &AbortError{Cause: asError(rec)}
		}
	}()

	return r.flowLazy(value, n), nil
}

func (r *Runtime) nodeFailed(n *Node, err error) {
	nodeErr := &NodeError{Node: n, Cause: err}

	r.logger.Error("node functor failed",
		"node", n.id,
		"name", n.Name(),
		"kind", n.kind,
		"error", nodeErr.Cause,
	)
	capitan.Emit(r.ctx, NodeFailed,
		KeyNode.Field(n.id.String()),
		KeyKind.Field(string(n.kind)),
		KeyError.Field(nodeErr.Error()),
	)
}
