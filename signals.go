package frp

import "github.com/AnatoleLucet/frp/internal"

// Signals emitted through capitan. Hook them to observe the engine.
var (
	SignalNodeFailed      = internal.NodeFailed
	SignalDripAborted     = internal.DripAborted
	SignalDripReentrant   = internal.DripReentrant
	SignalStreamCleared   = internal.StreamCleared
	SignalProducerStopped = internal.ProducerStopped
)

// Field keys carried by the signals above.
var (
	KeyNode     = internal.KeyNode
	KeyKind     = internal.KeyKind
	KeyError    = internal.KeyError
	KeyProducer = internal.KeyProducer
	KeyEmitted  = internal.KeyEmitted
	KeyPeriod   = internal.KeyPeriod
)
