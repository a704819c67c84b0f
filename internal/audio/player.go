package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

// Player plays cues from a Bank through the system speaker. When no audio
// device is available it runs silently instead of failing.
type Player struct {
	mu     sync.Mutex
	bank   *Bank
	mixer  *beep.Mixer
	latest [soundCount]*beep.Ctrl // most recent instance per cue, for Stop
	looped [soundCount]bool
	silent bool
	log    zerolog.Logger
}

// NewPlayer initialises the speaker and starts the mixer. volume is linear
// in [0,1]; mute skips speaker initialisation entirely.
func NewPlayer(bank *Bank, volume float64, mute bool, log zerolog.Logger) *Player {
	p := &Player{
		bank:  bank,
		mixer: &beep.Mixer{},
		log:   log.With().Str("component", "audio").Logger(),
	}
	if mute || volume <= 0 {
		p.silent = true
		p.log.Info().Msg("audio muted")
		return p
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		p.silent = true
		p.log.Warn().Err(err).Msg("no audio device, running silent")
		return p
	}
	speaker.Play(newVolume(p.mixer, volume))
	return p
}

// Silent reports whether the player is discarding all cues.
func (p *Player) Silent() bool {
	return p.silent
}

// Play starts one instance of s.
func (p *Player) Play(s Sound) {
	p.start(s, p.bank.Streamer(s), false)
}

// Loop starts s repeating until Stop. A cue that is already looping is left
// alone.
func (p *Player) Loop(s Sound) {
	p.mu.Lock()
	already := p.looped[s]
	p.mu.Unlock()
	if already {
		return
	}
	p.start(s, beep.Loop(-1, p.bank.Streamer(s)), true)
}

// Stop silences the latest instance of s.
func (p *Player) Stop(s Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ctrl := p.latest[s]
	if ctrl == nil {
		return
	}
	p.latest[s] = nil
	p.looped[s] = false
	if p.silent {
		return
	}
	speaker.Lock()
	ctrl.Paused = true
	ctrl.Streamer = nil
	speaker.Unlock()
	p.log.Debug().Stringer("sound", s).Msg("stop")
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	if p.silent {
		return
	}
	speaker.Clear()
	speaker.Close()
}

// Looping reports whether s is currently repeating.
func (p *Player) Looping(s Sound) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.looped[s]
}

func (p *Player) start(s Sound, st beep.Streamer, loop bool) {
	ctrl := &beep.Ctrl{Streamer: st}

	p.mu.Lock()
	p.latest[s] = ctrl
	p.looped[s] = loop
	p.mu.Unlock()

	if p.silent {
		return
	}
	speaker.Lock()
	p.mixer.Add(ctrl)
	speaker.Unlock()
	p.log.Debug().Stringer("sound", s).Msg("play")
}
