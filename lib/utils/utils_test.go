package utils

import (
	"testing"

	"github.com/tychoish/fun/assert/check"
)

type boxed struct {
	v interface{}
}

func TestEquals(t *testing.T) {
	t.Run("Primitives", func(t *testing.T) {
		check.True(t, Equals(1, 1))
		check.True(t, Equals("key", "key"))
		check.True(t, !Equals(1, 2))
		check.True(t, !Equals(int64(1), 1))
		check.True(t, !Equals(1.0, 1))
	})
	t.Run("Nil", func(t *testing.T) {
		check.True(t, Equals(nil, nil))
		check.True(t, !Equals(nil, 0))
		check.True(t, !Equals("", nil))
	})
	t.Run("Bytes", func(t *testing.T) {
		check.True(t, Equals([]byte("abc"), []byte("abc")))
		check.True(t, !Equals([]byte("abc"), []byte("abd")))
		check.True(t, !Equals([]byte{}, []byte(nil)))
	})
	t.Run("NotComparable", func(t *testing.T) {
		check.True(t, !Equals([]int{1}, []int{1}))
		check.True(t, !Equals(map[string]int{}, map[string]int{}))
		check.True(t, !Equals(boxed{v: []int{1}}, boxed{v: []int{1}}))
		check.True(t, Equals(boxed{v: 1}, boxed{v: 1}))
	})
}

func TestConvertRange(t *testing.T) {
	for _, tc := range []struct {
		name       string
		start, end int64
		size       int64
		from, to   int
	}{
		{name: "Whole", start: 0, end: -1, size: 5, from: 0, to: 5},
		{name: "Middle", start: 1, end: 2, size: 5, from: 1, to: 3},
		{name: "NegativeStart", start: -2, end: -1, size: 5, from: 3, to: 5},
		{name: "EndPastSize", start: 0, end: 100, size: 5, from: 0, to: 5},
		{name: "StartPastSize", start: 5, end: 6, size: 5, from: -1, to: -1},
		{name: "StartBeforeHead", start: -6, end: 2, size: 5, from: -1, to: -1},
		{name: "Inverted", start: 3, end: 1, size: 5, from: -1, to: -1},
		{name: "Empty", start: 0, end: -1, size: 0, from: -1, to: -1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			from, to := ConvertRange(tc.start, tc.end, tc.size)
			check.Equal(t, tc.from, from)
			check.Equal(t, tc.to, to)
		})
	}
}
