// Package timing provides leaf streams fed by a clock. Each producer waits
// on its own goroutine and injects values with frp.Drip; it stops once its
// context is done or, for repeating producers, once nothing listens anymore.
package timing

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"

	"github.com/AnatoleLucet/frp"
)

// Frame is the value FrameCount emits for every frame.
type Frame struct {
	// Count starts at 1 for the first frame.
	Count   int
	Elapsed time.Duration
	Delta   time.Duration
}

// producer is the bookkeeping shared by every leaf stream.
type producer[T any] struct {
	name   string
	period time.Duration

	cfg    *config
	stream *frp.Stream[T, T]

	start   time.Time
	emitted int
}

func newProducer[T any](name string, period time.Duration, cfg *config) *producer[T] {
	return &producer[T]{
		name:   name,
		period: period,
		cfg:    cfg,
		stream: frp.Named(frp.NewIn[T](cfg.engine), name),
		start:  cfg.clock.Now(),
	}
}

// listened reports whether anything is still attached downstream.
func (p *producer[T]) listened() bool {
	return frp.CountRefs(p.stream, true)() > 0
}

func (p *producer[T]) drip(v T) {
	if _, err := frp.Drip(p.stream, v); err != nil {
		p.cfg.engine.Logger().Warn("producer drip failed",
			"producer", p.name,
			"error", err,
		)
		return
	}
	p.emitted++
}

func (p *producer[T]) stopped(ctx context.Context) {
	capitan.Emit(context.WithoutCancel(ctx), frp.SignalProducerStopped,
		frp.KeyProducer.Field(p.name),
		frp.KeyEmitted.Field(p.emitted),
		frp.KeyPeriod.Field(p.period),
	)
}

// Timeout emits the elapsed time once, d after it was created.
func Timeout(ctx context.Context, d time.Duration, opts ...Option) *frp.Stream[time.Duration, time.Duration] {
	p := newProducer[time.Duration]("timeout", d, newConfig(opts))
	timer := p.cfg.clock.NewTimer(d)

	go func() {
		defer p.stopped(ctx)

		select {
		case <-ctx.Done():
			timer.Stop()
		case <-timer.C():
			p.drip(p.cfg.clock.Since(p.start))
		}
	}()

	return p.stream
}

// Interval emits the elapsed time every d. At each tick it first checks
// that something still listens downstream, and stops for good otherwise.
func Interval(ctx context.Context, d time.Duration, opts ...Option) *frp.Stream[time.Duration, time.Duration] {
	p := newProducer[time.Duration]("interval", d, newConfig(opts))
	ticker := p.cfg.clock.NewTicker(d)

	go func() {
		defer p.stopped(ctx)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C():
				if !p.listened() {
					return
				}

				p.drip(p.cfg.clock.Since(p.start))
			}
		}
	}()

	return p.stream
}

// FrameCount emits a Frame at the configured frame rate until limit frames
// were emitted or nothing listens anymore. A limit of 0 or less only stops
// on the latter.
func FrameCount(ctx context.Context, limit int, opts ...Option) *frp.Stream[Frame, Frame] {
	cfg := newConfig(opts)
	period := cfg.frameDuration()

	p := newProducer[Frame]("framecount", period, cfg)
	ticker := p.cfg.clock.NewTicker(period)

	go func() {
		defer p.stopped(ctx)
		defer ticker.Stop()

		last := p.start
		for count := 1; ; count++ {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C():
			}

			if !p.listened() {
				return
			}

			now := p.cfg.clock.Now()
			p.drip(Frame{
				Count:   count,
				Elapsed: now.Sub(p.start),
				Delta:   now.Sub(last),
			})
			last = now

			if limit > 0 && count >= limit {
				return
			}
		}
	}()

	return p.stream
}
