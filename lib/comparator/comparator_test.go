package comparator

import (
	"strings"
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
)

type score float64

type item struct {
	name string
	rank int
}

func byRank(a, b item) int { return Ordered(a.rank, b.rank) }

func TestComparator(t *testing.T) {
	t.Run("DefaultNumeric", func(t *testing.T) {
		c := New[int](nil)

		check.True(t, c.Equal(0, 0))
		check.True(t, !c.Equal(0, 1))
		check.True(t, c.LessThan(1, 2))
		check.True(t, !c.LessThan(2, 1))
		check.True(t, !c.LessThan(2, 2))
		check.True(t, c.GreaterThan(2, 1))
		check.True(t, !c.GreaterThan(1, 2))
		check.True(t, c.LessThanOrEqual(1, 2))
		check.True(t, c.LessThanOrEqual(2, 2))
		check.True(t, !c.LessThanOrEqual(3, 2))
		check.True(t, c.GreaterThanOrEqual(2, 1))
		check.True(t, c.GreaterThanOrEqual(2, 2))
		check.True(t, !c.GreaterThanOrEqual(1, 2))
	})

	t.Run("DefaultKinds", func(t *testing.T) {
		check.Equal(t, -1, Default[uint8](1, 200))
		check.Equal(t, 1, Default[float32](1.5, -0.5))
		check.Equal(t, 0, Default("a", "a"))
		check.Equal(t, -1, Default("a", "b"))
		check.Equal(t, 1, Default[score](2.5, 1))
		check.Equal(t, -1, Default[int64](-9, 0))
	})

	t.Run("DefaultPanicsOnUnordered", func(t *testing.T) {
		var recovered any
		func() {
			defer func() { recovered = recover() }()
			Default(item{rank: 1}, item{rank: 2})
		}()
		assert.True(t, recovered != nil)
		msg, ok := recovered.(string)
		assert.True(t, ok)
		check.True(t, strings.Contains(msg, "no default ordering"))
	})

	t.Run("CustomFunction", func(t *testing.T) {
		c := New[item](byRank)
		a := item{name: "a", rank: 1}
		b := item{name: "b", rank: 1}
		z := item{name: "z", rank: 26}

		check.True(t, c.Equal(a, b))
		check.True(t, c.LessThan(a, z))
		check.True(t, c.GreaterThan(z, b))
	})

	t.Run("Reverse", func(t *testing.T) {
		c := New[int](Ordered[int])

		c.Reverse()
		check.True(t, c.Equal(0, 0))
		check.True(t, c.LessThan(2, 1))
		check.True(t, !c.LessThan(1, 2))
		check.True(t, c.GreaterThan(1, 2))
		check.True(t, c.LessThanOrEqual(2, 1))
		check.True(t, c.GreaterThanOrEqual(1, 2))
		check.Equal(t, 1, c.Compare(1, 2))

		c.Reverse()
		check.True(t, c.LessThan(1, 2))
		check.True(t, !c.GreaterThan(1, 2))
		check.Equal(t, -1, c.Compare(1, 2))
	})

	t.Run("SharedReverse", func(t *testing.T) {
		c := New[string](nil)
		holder := c

		holder.Reverse()
		check.True(t, c.GreaterThan("a", "b"))
	})
}
