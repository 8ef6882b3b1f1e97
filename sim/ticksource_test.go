package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"capmeter/core"
)

func TestTickSourceOneMicrosecondPerTick(t *testing.T) {
	for _, clockHz := range []uint32{1000000, 48000000, 72000000, 125000000} {
		cfg := core.DefaultConfig()
		cfg.ClockHz = clockHz
		require.NoError(t, cfg.Validate())

		clock := NewClock()
		ticks := NewTickSource(clock, cfg)

		for i := 0; i < 100; i++ {
			ticks.WaitTick()
		}

		require.Equal(t, uint64(100), clock.Now())
		require.Equal(t, uint64(100), ticks.Waits())
		require.Equal(t, uint64(100)*uint64(cfg.TicksPerMicrosecond()), ticks.Cycles())
		require.Equal(t, cfg.TimerReload(), ticks.Reload())
	}
}

func TestDelayOnSimulatedTimer(t *testing.T) {
	cfg := core.DefaultConfig()
	clock := NewClock()
	ticks := NewTickSource(clock, cfg)
	d := core.NewDelayEngine(ticks, nil)

	d.Microseconds(40)
	require.Equal(t, uint64(40), clock.Now())

	d.Milliseconds(20)
	require.Equal(t, uint64(20040), clock.Now())
	require.Equal(t, uint64(20040), ticks.Waits())
}
