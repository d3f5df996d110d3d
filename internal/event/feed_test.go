package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitInSubscriptionOrder(t *testing.T) {
	var f Feed[int]
	var got []string
	f.Subscribe(func(v int) { got = append(got, "a") })
	f.Subscribe(func(v int) { got = append(got, "b") })

	f.Emit(1)

	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 2, f.Len())
}

func TestEmitCarriesPayload(t *testing.T) {
	type widthChange struct{ StrokeWidth float64 }
	var f Feed[widthChange]
	var got widthChange
	f.Subscribe(func(v widthChange) { got = v })

	f.Emit(widthChange{StrokeWidth: 7})

	assert.Equal(t, 7.0, got.StrokeWidth)
}

func TestUnsubscribe(t *testing.T) {
	var f Feed[struct{}]
	calls := 0
	sub := f.Subscribe(func(struct{}) { calls++ })

	sub.Unsubscribe()
	sub.Unsubscribe()
	f.Emit(struct{}{})

	assert.Zero(t, calls)
	assert.Zero(t, f.Len())
}

func TestUnsubscribeDuringEmit(t *testing.T) {
	var f Feed[int]
	var order []string
	var subA, subB *Subscription
	subA = f.Subscribe(func(int) {
		order = append(order, "a")
		subA.Unsubscribe()
		subB.Unsubscribe()
	})
	subB = f.Subscribe(func(int) { order = append(order, "b") })

	f.Emit(1)
	f.Emit(2)

	assert.Equal(t, []string{"a", "b"}, order, "first emit still reaches b, second reaches nobody")
	assert.Zero(t, f.Len())
}

func TestNilSubscriptionIsSafe(t *testing.T) {
	var s *Subscription
	assert.NotPanics(t, s.Unsubscribe)
}

func TestUnsubscribeOnlyRemovesOwnEntry(t *testing.T) {
	var f Feed[int]
	var got []int
	first := f.Subscribe(func(v int) { got = append(got, v) })
	f.Subscribe(func(v int) { got = append(got, v*10) })

	first.Unsubscribe()
	f.Emit(2)

	assert.Equal(t, []int{20}, got)
}
