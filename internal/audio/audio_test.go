package audio

import (
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestSoundFor(t *testing.T) {
	tests := []struct {
		ev    core.Event
		sound Sound
		ok    bool
	}{
		{core.EventRegularEaten, SoundEat, true},
		{core.EventBonusEaten, SoundBonus, true},
		{core.EventPoisonEaten, SoundPoison, true},
		{core.EventGameOver, SoundGameOver, true},
		{core.EventPoisonExpired, 0, false},
		{core.EventRestarted, 0, false},
		{core.EventQuit, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.ev.String(), func(t *testing.T) {
			s, ok := soundFor(tc.ev)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.sound, s)
		})
	}
}

func TestSynthesize(t *testing.T) {
	for _, s := range []Sound{SoundEat, SoundBonus, SoundPoison, SoundGameOver} {
		buf := synthesize(s)
		require.NotEmpty(t, buf)
		require.Zero(t, len(buf)%frameBytes, "whole frames only")

		peak := 0.0
		for i := 0; i < len(buf); i += frameBytes {
			left := math.Float32frombits(binary.LittleEndian.Uint32(buf[i:]))
			right := math.Float32frombits(binary.LittleEndian.Uint32(buf[i+4:]))
			require.Equal(t, left, right, "mono content in both channels")
			require.LessOrEqual(t, math.Abs(float64(left)), 1.0)
			peak = math.Max(peak, math.Abs(float64(left)))
		}
		assert.Greater(t, peak, 0.05, "sound %d is audible", s)
	}

	assert.Nil(t, synthesize(Sound(99)))
}

func TestSweepLength(t *testing.T) {
	buf := sweep(0.1, 400, 800, 0.5)
	assert.Len(t, buf, int(0.1*sampleRate)*frameBytes)
}

func TestEnvelope(t *testing.T) {
	assert.InDelta(t, 0.0, envelope(0, 0.1, 0.1), 1e-9)
	assert.InDelta(t, 0.5, envelope(0.05, 0.1, 0.1), 1e-9)
	assert.InDelta(t, 1.0, envelope(0.5, 0.1, 0.1), 1e-9)
	assert.InDelta(t, 0.5, envelope(0.95, 0.1, 0.1), 1e-9)
	assert.InDelta(t, 0.0, envelope(1, 0.1, 0.1), 1e-9)
}

func TestBufferReader(t *testing.T) {
	r := &bufferReader{data: []byte{1, 2, 3, 4, 5}}
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, got)

	n, err := r.Read(make([]byte, 4))
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestNop(t *testing.T) {
	var out Output = Nop{}
	out.Notify(core.EventRegularEaten)
	assert.NoError(t, out.Close())
}

func TestOpenMuted(t *testing.T) {
	out := Open(true, 0.5, nil)
	assert.IsType(t, Nop{}, out)
}
