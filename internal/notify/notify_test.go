package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed(t *testing.T) {
	t.Run("Collects in order", func(t *testing.T) {
		f := NewFeed(10)
		f.Success("Order placed successfully!")
		f.Error("Failed to update status")

		notices := f.Drain()
		require.Len(t, notices, 2)
		assert.Equal(t, KindSuccess, notices[0].Kind)
		assert.Equal(t, "Order placed successfully!", notices[0].Message)
		assert.Equal(t, KindError, notices[1].Kind)
	})

	t.Run("Drain clears", func(t *testing.T) {
		f := NewFeed(10)
		f.Success("one")
		f.Drain()
		assert.Empty(t, f.Drain())
	})

	t.Run("Overflow drops oldest", func(t *testing.T) {
		f := NewFeed(2)
		f.Success("first")
		f.Success("second")
		f.Success("third")

		notices := f.Drain()
		require.Len(t, notices, 2)
		assert.Equal(t, "second", notices[0].Message)
		assert.Equal(t, "third", notices[1].Message)
	})

	t.Run("Capacity floor", func(t *testing.T) {
		f := NewFeed(0)
		f.Success("a")
		f.Success("b")
		notices := f.Drain()
		require.Len(t, notices, 1)
		assert.Equal(t, "b", notices[0].Message)
	})
}

func TestMulti(t *testing.T) {
	a := NewFeed(5)
	b := NewFeed(5)

	n := Multi(a, b)
	n.Success("hello")
	n.Error("oops")

	assert.Len(t, a.Drain(), 2)
	assert.Len(t, b.Drain(), 2)
}

func TestLog(t *testing.T) {
	l := NewLog()
	assert.NotPanics(t, func() {
		l.Success("ok")
		l.Error("fail")
	})
}
