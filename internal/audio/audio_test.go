package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestOscillator_Length(t *testing.T) {
	rate := beep.SampleRate(1000)
	samples := drain(t, NewOscillator(100, 250*time.Millisecond, WaveSquare, rate))
	assert.Len(t, samples, 250)
	for _, s := range samples {
		assert.Contains(t, []float64{-1, 1}, s[0])
		assert.Equal(t, s[0], s[1], "channels must match")
	}
}

func TestOscillator_SilenceIsZero(t *testing.T) {
	rate := beep.SampleRate(1000)
	for _, s := range drain(t, silence(50*time.Millisecond, rate)) {
		assert.Zero(t, s[0])
	}
}

func TestEnvelope_RampsFromZero(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	osc := NewOscillator(0, d, WaveSquare, rate) // phase stays 0 => constant +1
	samples := drain(t, NewEnvelope(osc, d, 10*time.Millisecond, 10*time.Millisecond, rate))
	require.Len(t, samples, 100)
	assert.Zero(t, samples[0][0], "attack starts silent")
	assert.InDelta(t, 1.0, samples[50][0], 1e-9, "sustain is full scale")
	assert.Less(t, samples[99][0], 0.2, "release fades out")
}

func TestBank_EveryCueRendered(t *testing.T) {
	bank := NewBank()
	for _, s := range Sounds() {
		assert.Positive(t, bank.Len(s), "cue %s is empty", s)
		assert.NotEqual(t, "unknown", s.String())
	}
}

func TestBank_LoopLengths(t *testing.T) {
	bank := NewBank()
	assert.InDelta(t, 2*time.Second, bank.Duration(SoundAmbience), float64(time.Millisecond))
	assert.InDelta(t, 2*time.Second, bank.Duration(SoundSiren), float64(time.Millisecond))
	assert.Less(t, bank.Duration(SoundEmptyShot), 100*time.Millisecond)
}

func TestSound_StringOutOfRange(t *testing.T) {
	assert.Equal(t, "unknown", soundCount.String())
	assert.Equal(t, "empty shot", SoundEmptyShot.String())
}

func TestPlayer_MutedTracksLoops(t *testing.T) {
	p := NewPlayer(NewBank(), 1, true, zerolog.Nop())
	require.True(t, p.Silent())

	p.Loop(SoundAmbience)
	assert.True(t, p.Looping(SoundAmbience))
	p.Loop(SoundAmbience) // no-op while already looping
	assert.True(t, p.Looping(SoundAmbience))

	p.Play(SoundGunshot)
	assert.False(t, p.Looping(SoundGunshot))

	p.Stop(SoundAmbience)
	assert.False(t, p.Looping(SoundAmbience))
	p.Stop(SoundSiren) // never started
	p.Close()
}

func TestPlayer_ZeroVolumeIsSilent(t *testing.T) {
	p := NewPlayer(NewBank(), 0, false, zerolog.Nop())
	assert.True(t, p.Silent())
}
