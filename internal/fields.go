package internal

import "github.com/zoobzio/capitan"

// Field keys for engine events.
var (
	// KeyNode is the id of the node involved.
	KeyNode = capitan.NewStringKey("node")

	// KeyKind is the construction kind of the node involved.
	KeyKind = capitan.NewStringKey("kind")

	// KeyError is the error message when something fails.
	KeyError = capitan.NewStringKey("error")

	// KeyProducer is the leaf producer type.
	KeyProducer = capitan.NewStringKey("producer")

	// KeyEmitted is the number of values a producer emitted.
	KeyEmitted = capitan.NewIntKey("emitted")

	// KeyPeriod is the producer period.
	KeyPeriod = capitan.NewDurationKey("period")
)
