package status

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFuncSink(t *testing.T) {
	var got []string
	sink := Func(func(msg string) { got = append(got, msg) })
	sink.Notify("one")
	sink.Notify("two")
	require.Equal(t, []string{"one", "two"}, got)
}

func TestNopSink(t *testing.T) {
	require.NotPanics(t, func() { Nop.Notify("dropped") })
}

func TestBusDelivers(t *testing.T) {
	bus := NewBus(4)
	bus.Notify("hello")

	select {
	case msg := <-bus.Messages():
		require.Equal(t, "hello", msg)
	default:
		t.Fatal("expected a buffered message")
	}
}

func TestBusNeverBlocks(t *testing.T) {
	bus := NewBus(1)
	bus.Notify("kept")
	// The buffer is full, further messages are dropped rather than blocking
	// the scrape worker.
	bus.Notify("dropped")
	bus.Notify("dropped")

	require.Equal(t, "kept", <-bus.Messages())
	select {
	case msg := <-bus.Messages():
		t.Fatalf("unexpected extra message %q", msg)
	default:
	}
}

func TestBusCloseIsSafe(t *testing.T) {
	bus := NewBus(1)
	bus.Close()
	bus.Close()
	require.NotPanics(t, func() { bus.Notify("late") })
}
