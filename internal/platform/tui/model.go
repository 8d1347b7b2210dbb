package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// Sounds is the audio collaborator. Implementations swallow their own
// failures; the game never learns whether a sound played.
type Sounds interface {
	PlayShoot()
	PlayExplosion()
	StartMusic()
	StopMusic()
	ToggleMusic() bool
	ToggleSFX() bool
	MusicEnabled() bool
	SFXEnabled() bool
}

// silentSounds tracks the toggles without producing sound.
type silentSounds struct {
	music bool
	sfx   bool
}

func (s *silentSounds) PlayShoot()         {}
func (s *silentSounds) PlayExplosion()     {}
func (s *silentSounds) StartMusic()        {}
func (s *silentSounds) StopMusic()         {}
func (s *silentSounds) MusicEnabled() bool { return s.music }
func (s *silentSounds) SFXEnabled() bool   { return s.sfx }

func (s *silentSounds) ToggleMusic() bool {
	s.music = !s.music
	return s.music
}

func (s *silentSounds) ToggleSFX() bool {
	s.sfx = !s.sfx
	return s.sfx
}

// Options holds the optional collaborators of the model.
type Options struct {
	Logger *log.Logger // Defaults to a discarding logger
	Sounds Sounds      // Defaults to silence
}

// Model is the Bubble Tea model running one Invaders session at a time.
type Model struct {
	game     *invaders.Game
	cadence  *teaCadence
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	hold     *holdTracker
	sounds   Sounds
	logger   *log.Logger
	config   core.RuntimeConfig
	lastTick time.Time
	now      func() time.Time
	quitting bool
}

// NewModel creates the model and its session.
func NewModel(cfg config.InvadersConfig, rt core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sounds := opts.Sounds
	if sounds == nil {
		sounds = &silentSounds{music: cfg.Audio.Music, sfx: cfg.Audio.SFX}
	}

	cadence := &teaCadence{}
	game := invaders.New(cfg, cadence)
	game.OnEvent(eventHandler(logger, sounds))

	return Model{
		game:    game,
		cadence: cadence,
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		hold:    newHoldTracker(holdTimeout),
		sounds:  sounds,
		logger:  logger,
		config:  rt,
		now:     time.Now,
	}
}

// eventHandler reacts to simulation events with sound and logging.
func eventHandler(logger *log.Logger, sounds Sounds) invaders.EventHandler {
	return func(e invaders.Event) {
		if e.Terminal() {
			logger.Info("session over", "outcome", e.Type, "cause", e.Cause, "score", e.Score)
		} else {
			logger.Debug("enemy destroyed", "row", e.Row, "col", e.Col, "score", e.Score)
		}
		sounds.PlayExplosion()
	}
}

// Init starts the frame loop, the formation cadence and the music.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "fps", m.config.TickRate)
	m.sounds.StartMusic()
	return tea.Batch(tickCmd(m.config.TickRate), m.cadence.Take())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The session keeps running; only the drawing scale changes.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case FormationMsg:
		return m.handleFormation(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := m.now()

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.sounds.StopMusic()
		return m, tea.Quit
	case core.ActionLeft:
		m.hold.press(invaders.DirLeft, now)
	case core.ActionRight:
		m.hold.press(invaders.DirRight, now)
	case core.ActionFire:
		if m.game.Fire() {
			m.sounds.PlayShoot()
		}
	case core.ActionRestart:
		m.game.Reset()
		m.hold.releaseAll()
		m.sounds.StartMusic()
		m.logger.Info("session reset")
	case core.ActionPause:
		paused := m.game.TogglePause()
		m.hold.releaseAll()
		m.logger.Debug("pause toggled", "paused", paused)
	case core.ActionToggleMusic:
		m.sounds.ToggleMusic()
	case core.ActionToggleSFX:
		m.sounds.ToggleSFX()
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	// Reset and resume re-arm the cadence
	return m, m.cadence.Take()
}

// handleTick runs one simulation frame.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = t.Sub(m.lastTick)
	}
	m.lastTick = t

	now := m.now()
	m.game.SetDirectionHeld(invaders.DirLeft, m.hold.held(invaders.DirLeft, now))
	m.game.SetDirectionHeld(invaders.DirRight, m.hold.held(invaders.DirRight, now))
	m.game.Tick(dt)

	return m, tickCmd(m.config.TickRate)
}

// handleFormation runs one formation step if msg is from the current arming.
func (m Model) handleFormation(msg FormationMsg) (tea.Model, tea.Cmd) {
	if !m.cadence.Accept(msg) {
		return m, nil
	}
	m.game.FormationTick()
	return m, m.cadence.Next()
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(cfg config.InvadersConfig, rt core.RuntimeConfig, opts Options) error {
	model := NewModel(cfg, rt, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
