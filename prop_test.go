package frp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHold(t *testing.T) {
	t.Run("initial then latest", func(t *testing.T) {
		e, _ := newTestEngine(t)

		s := NewIn[string](e)
		p := Hold(s, "init")
		assert.Equal(t, "init", p())

		Drip(s, "a")
		assert.Equal(t, "a", p())

		Drip(s, "b")
		assert.Equal(t, "b", p())
	})

	t.Run("zero values", func(t *testing.T) {
		e, _ := newTestEngine(t)

		s := NewIn[error](e)
		p := Hold[error](s, nil)
		assert.Nil(t, p())

		Drip(s, assert.AnError)
		assert.ErrorIs(t, p(), assert.AnError)

		Drip[error, error](s, nil)
		assert.Nil(t, p())
	})

	t.Run("detached cell keeps its last value", func(t *testing.T) {
		e, _ := newTestEngine(t)

		s := NewIn[int](e)
		c := HoldCell(s, 0)
		p := c.Prop()

		Drip(s, 1)
		assert.Equal(t, 1, c.Get())
		assert.Equal(t, 1, CountRefs(s, false)())

		c.Detach()
		Drip(s, 2)

		assert.Equal(t, 1, p())
		assert.Equal(t, 0, CountRefs(s, false)())
	})
}

func TestAccum(t *testing.T) {
	t.Run("folds every value", func(t *testing.T) {
		e, _ := newTestEngine(t)
		log := []int{}

		s := NewIn[int](e)
		p := Accum(s, func(v, acc int) int { return acc*10 + v }, 0)
		log = append(log, p())

		for _, v := range []int{1, 2, 3} {
			Drip(s, v)
			log = append(log, p())
		}

		assert.Equal(t, []int{0, 1, 12, 123}, log)
	})

	t.Run("observers see the previous total", func(t *testing.T) {
		e, _ := newTestEngine(t)
		log := []int{}

		s := NewIn[int](e)
		total := Accum(s, func(v, acc int) int { return acc + v }, 100)
		Listen(s, func(int) { log = append(log, total()) })

		Drip(s, 1)
		Drip(s, 2)

		assert.Equal(t, []int{100, 101}, log)
		assert.Equal(t, 103, total())
	})

	t.Run("different input and state types", func(t *testing.T) {
		e, _ := newTestEngine(t)

		words := NewIn[string](e)
		lengths := Accum(words, func(w string, acc []int) []int {
			return append(append([]int{}, acc...), len(w))
		}, []int{})

		Drip(words, "go")
		Drip(words, "rust")

		assert.Equal(t, []int{2, 4}, lengths())
	})
}

func TestLift(t *testing.T) {
	t.Run("recomputes on every read", func(t *testing.T) {
		e, _ := newTestEngine(t)

		a := NewIn[int](e)
		b := NewIn[int](e)
		sum := Lift(func(x, y int) int { return x + y }, Hold(a, 1), Hold(b, 2), Constant(10))
		assert.Equal(t, 13, sum())

		Drip(a, 5)
		assert.Equal(t, 17, sum())

		// lifted properties register nothing
		assert.Equal(t, 1, CountRefs(a, false)())
	})

	t.Run("no properties reads as zero", func(t *testing.T) {
		assert.Equal(t, "", Lift(func(x, y string) string { return x + y })())
	})

	t.Run("lift2", func(t *testing.T) {
		e, _ := newTestEngine(t)

		names := NewIn[string](e)
		counts := NewIn[int](e)
		label := Lift2(Hold(names, "x"), Hold(counts, 0), func(n string, c int) string {
			return n + ":" + string(rune('0'+c))
		})

		Drip(counts, 3)
		assert.Equal(t, "x:3", label())
	})
}
