package audio

import (
	"time"

	"github.com/gopxl/beep"
)

const (
	sampleRate = beep.SampleRate(44100)
	ms         = time.Millisecond
)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// recipe builds a finite streamer for one cue.
type recipe func(rate beep.SampleRate) beep.Streamer

var recipes = [soundCount]recipe{
	SoundAmbience: func(r beep.SampleRate) beep.Streamer {
		// 2s is a whole number of periods for both tones so the loop is seamless.
		return beep.Mix(
			shaped(WaveSine, 55, 2*time.Second, 0, 0, 0.25, r),
			shaped(WaveSine, 110, 2*time.Second, 0, 0, 0.08, r),
		)
	},
	SoundGunshot: func(r beep.SampleRate) beep.Streamer {
		return beep.Mix(
			shaped(WaveNoise, 0, 260*ms, 1*ms, 230*ms, 0.9, r),
			shaped(WaveSine, 80, 200*ms, 1*ms, 180*ms, 0.7, r),
		)
	},
	SoundEquip: func(r beep.SampleRate) beep.Streamer {
		return beep.Seq(
			shaped(WaveSquare, 900, 35*ms, 2*ms, 25*ms, 0.3, r),
			silence(90*ms, r),
			shaped(WaveSquare, 650, 50*ms, 2*ms, 40*ms, 0.3, r),
		)
	},
	SoundDoor: func(r beep.SampleRate) beep.Streamer {
		return beep.Mix(
			newVolume(NewEnvelope(NewGlide(160, 110, 600*ms, WaveSaw, r), 600*ms, 40*ms, 300*ms, r), 0.25),
			shaped(WaveNoise, 0, 600*ms, 100*ms, 400*ms, 0.1, r),
		)
	},
	SoundFlesh: func(r beep.SampleRate) beep.Streamer {
		return beep.Mix(
			shaped(WaveNoise, 0, 140*ms, 2*ms, 120*ms, 0.4, r),
			shaped(WaveSine, 65, 160*ms, 2*ms, 140*ms, 0.8, r),
		)
	},
	SoundLock: func(r beep.SampleRate) beep.Streamer {
		return beep.Seq(
			shaped(WaveSquare, 1200, 40*ms, 1*ms, 30*ms, 0.35, r),
			shaped(WaveSquare, 780, 80*ms, 1*ms, 70*ms, 0.35, r),
		)
	},
	SoundReload: func(r beep.SampleRate) beep.Streamer {
		return beep.Seq(
			shaped(WaveNoise, 0, 30*ms, 1*ms, 25*ms, 0.5, r),
			silence(450*ms, r),
			shaped(WaveNoise, 0, 40*ms, 1*ms, 30*ms, 0.5, r),
			silence(900*ms, r),
			shaped(WaveSquare, 600, 45*ms, 1*ms, 35*ms, 0.3, r),
		)
	},
	SoundEmptyShot: func(r beep.SampleRate) beep.Streamer {
		return shaped(WaveSquare, 2000, 25*ms, 1*ms, 20*ms, 0.3, r)
	},
	SoundTrash: func(r beep.SampleRate) beep.Streamer {
		return beep.Mix(
			shaped(WaveNoise, 0, 450*ms, 5*ms, 380*ms, 0.45, r),
			shaped(WaveSquare, 210, 300*ms, 5*ms, 250*ms, 0.15, r),
		)
	},
	SoundSiren: func(r beep.SampleRate) beep.Streamer {
		return beep.Seq(
			newVolume(NewGlide(650, 1250, time.Second, WaveSine, r), 0.35),
			newVolume(NewGlide(1250, 650, time.Second, WaveSine, r), 0.35),
		)
	},
}

// Bank holds every cue pre-rendered into memory.
type Bank struct {
	buffers [soundCount]*beep.Buffer
}

// NewBank renders all recipes. Rendering is deterministic and allocation
// happens once at startup.
func NewBank() *Bank {
	b := &Bank{}
	for s, build := range recipes {
		buf := beep.NewBuffer(format)
		buf.Append(build(sampleRate))
		b.buffers[s] = buf
	}
	return b
}

// Len returns the cue length in samples.
func (b *Bank) Len(s Sound) int {
	return b.buffers[s].Len()
}

// Duration returns the cue length as wall time.
func (b *Bank) Duration(s Sound) time.Duration {
	return sampleRate.D(b.Len(s))
}

// Streamer returns a fresh seekable stream over the cue.
func (b *Bank) Streamer(s Sound) beep.StreamSeeker {
	buf := b.buffers[s]
	return buf.Streamer(0, buf.Len())
}
