package frp

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrip(t *testing.T) {
	t.Run("observers see pre-event properties", func(t *testing.T) {
		e, _ := newTestEngine(t)
		log := []string{}

		s := NewIn[int](e)
		held := Hold(s, -1)
		doubled := Hold(Pipe(s, func(n int) int { return n * 2 }), 0)

		Listen(s, func(v int) {
			log = append(log, fmt.Sprintf("got %d held %d doubled %d", v, held(), doubled()))
		})

		assert.Equal(t, -1, held())

		Drip(s, 5)
		assert.Equal(t, 5, held())
		assert.Equal(t, 10, doubled())

		Drip(s, 6)

		assert.Equal(t, []string{
			"got 5 held -1 doubled 0",
			"got 6 held 5 doubled 10",
		}, log)
	})

	t.Run("flowing state", func(t *testing.T) {
		e, _ := newTestEngine(t)

		s := NewIn[int](e)
		Listen(s, func(int) {})
		Hold(s, 0)
		Hold(Pipe(s, func(n int) int { return n }), 0)

		state, err := Drip(s, 1)
		require.NoError(t, err)

		assert.Equal(t, 1, state.Observers())
		assert.Equal(t, 2, state.Updates())
		assert.Equal(t, 0, state.Pending())
		assert.False(t, state.Empty())

		state, err = Drip(NewIn[int](e), 1)
		require.NoError(t, err)
		assert.True(t, state.Empty())
	})

	t.Run("functor panic voids only its subtree", func(t *testing.T) {
		e, logs := newTestEngine(t)
		log := []string{}

		s := NewIn[int](e)
		bad := Named(Pipe(s, func(n int) int {
			if n == 0 {
				panic("division by zero")
			}
			return 100 / n
		}), "divide")
		Listen(bad, func(v int) { log = append(log, fmt.Sprintf("bad %d", v)) })
		Listen(Pipe(bad, func(n int) int { return n }), func(v int) { log = append(log, "below bad") })
		Listen(Pipe(s, func(n int) int { return n }), func(v int) { log = append(log, fmt.Sprintf("good %d", v)) })

		_, err := Drip(s, 0)
		require.NoError(t, err)
		Drip(s, 4)

		assert.Equal(t, []string{
			"good 0",
			"bad 25",
			"below bad",
			"good 4",
		}, log)
		assert.Contains(t, logs.String(), "node functor failed")
		assert.Contains(t, logs.String(), "name=divide")
		assert.Contains(t, logs.String(), "division by zero")
	})

	t.Run("try pipe error voids only its subtree", func(t *testing.T) {
		e, logs := newTestEngine(t)
		log := []string{}

		s := NewIn[string](e)
		parsed := TryPipe(s, func(v string) (int, error) {
			if v == "" {
				return 0, errors.New("empty input")
			}
			return len(v), nil
		})
		Listen(parsed, func(v int) { log = append(log, fmt.Sprintf("parsed %d", v)) })
		Listen(s, func(v string) { log = append(log, "raw "+v) })

		Drip(s, "")
		Drip(s, "abc")

		assert.Equal(t, []string{"raw ", "raw abc", "parsed 3"}, log)
		assert.Contains(t, logs.String(), "empty input")
	})

	t.Run("panicking filter aborts the whole drip", func(t *testing.T) {
		e, logs := newTestEngine(t)
		log := []string{}

		s := NewIn[int](e)
		held := Hold(s, 0)
		Listen(s, func(v int) { log = append(log, "observer") })
		Filter(s, func(n int) bool {
			if n < 0 {
				panic("negative")
			}
			return true
		})

		state, err := Drip(s, -1)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDripAborted)

		var abort *AbortError
		require.True(t, errors.As(err, &abort))
		assert.EqualError(t, abort.Cause, "panic: negative")

		assert.True(t, state.Empty())
		assert.Empty(t, log)
		assert.Equal(t, 0, held())
		assert.Contains(t, logs.String(), "drip aborted")

		_, err = Drip(s, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"observer"}, log)
		assert.Equal(t, 2, held())
	})

	t.Run("reentrant drip fails", func(t *testing.T) {
		e, _ := newTestEngine(t)
		errs := []error{}
		log := []int{}

		a := NewIn[int](e)
		b := NewIn[int](e)
		Listen(a, func(v int) {
			_, err := Drip(a, v+1)
			errs = append(errs, err)

			_, err = Drip(b, v+1)
			errs = append(errs, err)
		})
		Listen(b, func(v int) { log = append(log, v) })

		_, err := Drip(a, 1)
		require.NoError(t, err)
		assert.Equal(t, []error{ErrReentrantDrip, ErrReentrantDrip}, errs)
		assert.Empty(t, log)

		_, err = Drip(b, 7)
		require.NoError(t, err)
		assert.Equal(t, []int{7}, log)
	})

	t.Run("drip from a functor fails instead of blocking", func(t *testing.T) {
		e, _ := newTestEngine(t)
		errs := []error{}
		log := []int{}

		a := NewIn[int](e)
		b := NewIn[int](e)
		Listen(b, func(v int) { log = append(log, v) })
		relay := Pipe(a, func(n int) int {
			_, err := Drip(b, n)
			errs = append(errs, err)
			return n
		})
		Listen(relay, func(v int) { log = append(log, -v) })

		done := make(chan error, 1)
		go func() {
			_, err := Drip(a, 1)
			done <- err
		}()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("drip from a functor never returned")
		}

		assert.Equal(t, []error{ErrReentrantDrip}, errs)
		assert.Equal(t, []int{-1}, log)

		_, err := Drip(b, 2)
		require.NoError(t, err)
		assert.Equal(t, []int{-1, 2}, log)
	})

	t.Run("drip from a filter or a property fails", func(t *testing.T) {
		e, _ := newTestEngine(t)
		errs := []error{}

		a := NewIn[int](e)
		Filter(a, func(n int) bool {
			_, err := Drip(a, n)
			errs = append(errs, err)
			return true
		})
		Snapshot(a, Prop[int](func() int {
			_, err := Drip(a, 0)
			errs = append(errs, err)
			return 0
		}))
		total := Accum(a, func(v, acc int) int {
			_, err := Drip(a, v)
			errs = append(errs, err)
			return acc + v
		}, 0)

		_, err := Drip(a, 5)
		require.NoError(t, err)

		assert.Equal(t, []error{ErrReentrantDrip, ErrReentrantDrip, ErrReentrantDrip}, errs)
		assert.Equal(t, 5, total())
	})

	t.Run("guard is reset after a panicking observer", func(t *testing.T) {
		e, _ := newTestEngine(t)
		log := []int{}

		a := NewIn[int](e)
		unsubscribe := Listen(a, func(int) { panic("observer failed") })

		assert.PanicsWithValue(t, "observer failed", func() { Drip(a, 1) })

		unsubscribe()
		Listen(a, func(v int) { log = append(log, v) })

		_, err := Drip(a, 2)
		require.NoError(t, err)
		assert.Equal(t, []int{2}, log)
	})

	t.Run("engines have separate guards", func(t *testing.T) {
		e1, _ := newTestEngine(t)
		e2, _ := newTestEngine(t)
		log := []int{}

		a := NewIn[int](e1)
		b := NewIn[int](e2)
		Listen(b, func(v int) { log = append(log, v) })
		Listen(a, func(v int) {
			_, err := Drip(b, v*10)
			assert.NoError(t, err)
		})

		Drip(a, 3)

		assert.Equal(t, []int{30}, log)
	})

	t.Run("concurrent drips are serialized", func(t *testing.T) {
		e, _ := newTestEngine(t)
		var wg sync.WaitGroup

		s := NewIn[int](e)
		total := Accum(s, func(v, acc int) int { return acc + v }, 0)

		for range 4 {
			wg.Go(func() {
				for range 50 {
					Drip(s, 1)
				}
			})
		}

		wg.Wait()
		assert.Equal(t, 200, total())
	})
}
