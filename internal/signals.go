package internal

import "github.com/zoobzio/capitan"

// Propagation signals.
var (
	// NodeFailed is emitted when a functor panics or returns an error.
	NodeFailed = capitan.NewSignal(
		"frp.node.failed",
		"Node functor failed, subtree skipped",
	)

	// DripAborted is emitted when a whole drip call is abandoned.
	DripAborted = capitan.NewSignal(
		"frp.drip.aborted",
		"Drip aborted before any effect ran",
	)

	// DripReentrant is emitted when an observer tries to drip.
	DripReentrant = capitan.NewSignal(
		"frp.drip.reentrant",
		"Drip rejected inside observer phase",
	)
)

// Lifecycle signals.
var (
	// StreamCleared is emitted when a subtree is made inert.
	StreamCleared = capitan.NewSignal(
		"frp.stream.cleared",
		"Stream subtree cleared",
	)

	// ProducerStopped is emitted when a leaf producer stops rescheduling.
	ProducerStopped = capitan.NewSignal(
		"frp.producer.stopped",
		"Leaf producer stopped",
	)
)
