// Package audio plays the game's synthesized sound effects and music
// through the system speaker. Every failure is logged and swallowed: a
// missing audio device never affects the game.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes sound effects and background music onto one speaker stream.
// Methods are safe to call before Initialize (they only track toggles).
type Player struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	logger      *log.Logger
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicOn     bool
	sfxOn       bool
	initialized bool
	seed        uint64
}

// NewPlayer creates a player with the initial toggles from cfg.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		cfg:     cfg,
		logger:  logger,
		mixer:   &beep.Mixer{},
		musicOn: cfg.Music,
		sfxOn:   cfg.SFX,
		seed:    uint64(time.Now().UnixNano()), //#nosec G115 -- noise seed
	}
}

// Initialize opens the speaker. It is idempotent.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops all sound.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.music = nil
	p.initialized = false
	speaker.Close()
}

// PlayShoot plays the fire blip.
func (p *Player) PlayShoot() {
	p.playEffect(NewShootGenerator(sampleRate))
}

// PlayExplosion plays the hit/outcome noise burst.
func (p *Player) PlayExplosion() {
	p.mu.Lock()
	p.seed++
	seed := p.seed
	p.mu.Unlock()

	p.playEffect(NewNoiseBurstGenerator(sampleRate, seed))
}

func (p *Player) playEffect(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || !p.sfxOn {
		return
	}
	p.add(volume(s, p.cfg.SFXVolume))
}

// StartMusic (re)starts the background loop from its first note.
// Does nothing while music is toggled off.
func (p *Player) StartMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || !p.musicOn {
		return
	}
	p.stopMusicLocked()
	p.music = &beep.Ctrl{Streamer: volume(NewChiptuneGenerator(sampleRate), p.cfg.MusicVolume)}
	p.add(p.music)
}

// StopMusic stops the background loop.
func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopMusicLocked()
}

func (p *Player) stopMusicLocked() {
	if p.music == nil {
		return
	}
	// A Ctrl with no streamer reports drained and the mixer drops it.
	speaker.Lock()
	p.music.Streamer = nil
	speaker.Unlock()
	p.music = nil
}

// ToggleMusic flips the music switch, starting or stopping the loop.
// Returns the new state.
func (p *Player) ToggleMusic() bool {
	p.mu.Lock()
	p.musicOn = !p.musicOn
	on := p.musicOn
	p.mu.Unlock()

	if on {
		p.StartMusic()
	} else {
		p.StopMusic()
	}
	p.logger.Debug("music toggled", "on", on)
	return on
}

// ToggleSFX flips the sound effects switch. Returns the new state.
func (p *Player) ToggleSFX() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.sfxOn = !p.sfxOn
	p.logger.Debug("sfx toggled", "on", p.sfxOn)
	return p.sfxOn
}

// MusicEnabled reports the music switch.
func (p *Player) MusicEnabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.musicOn
}

// SFXEnabled reports the sound effects switch.
func (p *Player) SFXEnabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sfxOn
}

func (p *Player) add(s beep.Streamer) {
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// volume scales s by a linear gain in [0, 1].
func volume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
