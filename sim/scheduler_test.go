package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimerListOrder(t *testing.T) {
	var fired []uint64
	record := func(tm *Timer) uint8 {
		fired = append(fired, tm.WakeTime)
		return SF_DONE
	}

	var l timerList
	for _, at := range []uint64{30, 10, 20, 10, 5} {
		l.insert(&Timer{WakeTime: at, Handler: record})
	}

	l.dispatch(15)
	require.Equal(t, []uint64{5, 10, 10}, fired)

	l.dispatch(100)
	require.Equal(t, []uint64{5, 10, 10, 20, 30}, fired)
	require.Nil(t, l.head)
}

func TestTimerReschedule(t *testing.T) {
	count := 0
	tm := &Timer{WakeTime: 2}
	tm.Handler = func(tm *Timer) uint8 {
		count++
		tm.WakeTime += 2
		return SF_RESCHEDULE
	}

	clock := NewClock()
	clock.Schedule(tm)
	clock.Advance(10)

	require.Equal(t, 5, count)
	require.Equal(t, uint64(12), tm.WakeTime)

	clock.Cancel(tm)
	clock.Advance(10)
	require.Equal(t, 5, count)
}

func TestClockAt(t *testing.T) {
	clock := NewClock()
	var at uint64
	clock.At(7, func() { at = clock.Now() })

	clock.Advance(6)
	require.Zero(t, at)
	clock.Advance(1)
	require.Equal(t, uint64(7), at)
}
