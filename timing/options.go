package timing

import (
	"time"

	"github.com/zoobzio/clockz"

	"github.com/AnatoleLucet/frp"
)

const defaultFrameRate = 60

type config struct {
	clock     clockz.Clock
	engine    *frp.Engine
	frameRate int
}

// Option configures a producer.
type Option func(*config)

// WithClock sets the clock producers wait on.
// Use this with clockz.FakeClock for deterministic tests.
func WithClock(clock clockz.Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithEngine builds the producer's stream on engine instead of the default one.
func WithEngine(engine *frp.Engine) Option {
	return func(c *config) {
		c.engine = engine
	}
}

// WithFrameRate sets how many frames per second FrameCount emits.
func WithFrameRate(fps int) Option {
	return func(c *config) {
		if fps > 0 {
			c.frameRate = fps
		}
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		clock:     clockz.RealClock,
		engine:    frp.Default(),
		frameRate: defaultFrameRate,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *config) frameDuration() time.Duration {
	return time.Second / time.Duration(c.frameRate)
}
