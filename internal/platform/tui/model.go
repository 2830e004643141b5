package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/aztec-shuffle/internal/aztec"
	"github.com/vovakirdan/aztec-shuffle/internal/core"
	"github.com/vovakirdan/aztec-shuffle/internal/render"
	"github.com/vovakirdan/aztec-shuffle/internal/storage"
)

// Playback rate bounds.
const (
	minFPS = 1
	maxFPS = 30
)

// Model is the Bubble Tea model for stepping through a generation run.
type Model struct {
	id        int64
	config    core.RuntimeConfig
	record    *aztec.GenerationRecord
	frames    []*aztec.Grid
	playback  core.PlaybackState
	screen    *core.Screen
	palette   Palette
	keyMapper *KeyMapper
	help      help.Model
	store     *storage.Store
	logger    *log.Logger
	status    string // One-line feedback shown next to the help bar
	loaded    bool   // Record came from a file or the store; no regeneration
	child     bool   // Embedded in a session; Back returns control instead of quitting
	quitting  bool
	goingBack bool
}

// ModelOption configures a viewer Model.
type ModelOption func(*Model)

// WithRecord plays back an existing record instead of generating one.
func WithRecord(rec *aztec.GenerationRecord) ModelOption {
	return func(m *Model) {
		m.record = rec
		m.loaded = rec != nil
	}
}

// WithStore saves freshly generated runs to the store.
func WithStore(store *storage.Store) ModelOption {
	return func(m *Model) {
		m.store = store
	}
}

// WithPalette sets the colors used for rendering.
func WithPalette(p Palette) ModelOption {
	return func(m *Model) {
		m.palette = p
	}
}

// WithLogger sets the logger for engine and storage diagnostics. It must not
// write to the terminal the program draws on.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		m.logger = l
	}
}

func asChild() ModelOption {
	return func(m *Model) {
		m.child = true
	}
}

// NewModel creates a viewer. Without WithRecord it generates a run from
// cfg.Seed and cfg.Order.
func NewModel(cfg core.RuntimeConfig, opts ...ModelOption) (Model, error) {
	if cfg.FPS <= 0 {
		cfg.FPS = core.DefaultConfig().FPS
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		id:        nextViewerID(),
		config:    cfg,
		screen:    core.NewScreen(cfg.ScreenW, viewerScreenHeight(cfg.ScreenH)),
		palette:   DefaultPalette(),
		keyMapper: NewKeyMapper(),
		help:      h,
		logger:    log.New(io.Discard),
	}
	m.help.Width = cfg.ScreenW
	for _, opt := range opts {
		opt(&m)
	}

	if m.record == nil {
		if err := m.generate(); err != nil {
			return Model{}, err
		}
	} else if err := m.load(m.record); err != nil {
		return Model{}, err
	}

	return m, nil
}

// viewerScreenHeight leaves one row for the help bar.
func viewerScreenHeight(h int) int {
	return core.Max(h-1, 1)
}

// generate runs the engine for the configured seed and order.
func (m *Model) generate() error {
	rec, err := aztec.Generate(m.config.Seed, m.config.Order, aztec.WithLogger(m.logger))
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if err := m.load(rec); err != nil {
		return err
	}

	if m.store != nil {
		id, err := m.store.SaveGeneration(rec)
		if err != nil {
			m.logger.Warn("could not save run", "seed", rec.Seed, "error", err)
			m.status = "run not saved"
		} else {
			m.status = fmt.Sprintf("saved as run #%d", id)
		}
	}
	return nil
}

// load replays a record into per-iteration frames.
func (m *Model) load(rec *aztec.GenerationRecord) error {
	frames, err := aztec.Frames(rec)
	if err != nil {
		return fmt.Errorf("tui: cannot replay record: %w", err)
	}
	m.record = rec
	m.frames = frames
	m.config.Seed = rec.Seed
	m.config.Order = rec.Size
	m.playback = core.PlaybackState{
		Frame:   0,
		Frames:  len(frames),
		Playing: m.config.Autoplay && len(frames) > 1,
	}
	return nil
}

// Init starts the playback clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.id, m.config.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, viewerScreenHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.ID != m.id {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.keyMapper.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.goingBack = true
		if m.child {
			return m, nil
		}
		return m, tea.Quit

	case core.ActionNext:
		m.seek(m.playback.Frame + 1)
	case core.ActionPrev:
		m.seek(m.playback.Frame - 1)
	case core.ActionFirst:
		m.seek(0)
	case core.ActionLast:
		m.seek(m.playback.Frames - 1)

	case core.ActionTogglePlay:
		if m.playback.Playing {
			m.playback.Playing = false
		} else {
			if m.playback.AtEnd() {
				m.playback.Frame = 0
			}
			m.playback.Playing = true
		}

	case core.ActionFaster:
		m.config.FPS = core.Clamp(m.config.FPS+1, minFPS, maxFPS)
	case core.ActionSlower:
		m.config.FPS = core.Clamp(m.config.FPS-1, minFPS, maxFPS)

	case core.ActionToggleIDs:
		m.config.ShowIDs = !m.config.ShowIDs

	case core.ActionRestart:
		if m.loaded {
			m.status = "saved runs replay their own seed"
			return m, nil
		}
		m.config.Seed = ""
		if err := m.generate(); err != nil {
			m.status = err.Error()
		}
	}

	return m, nil
}

// seek jumps to a frame and pauses playback.
func (m *Model) seek(frame int) {
	if m.playback.Frames == 0 {
		return
	}
	m.playback.Frame = core.Clamp(frame, 0, m.playback.Frames-1)
	m.playback.Playing = false
}

// handleTick advances autoplay by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.playback.Playing {
		if m.playback.AtEnd() {
			m.playback.Playing = false
		} else {
			m.playback.Frame++
		}
	}
	return m, tickCmd(m.id, m.config.FPS)
}

// current returns the displayed grid, or nil for an empty run.
func (m Model) current() *aztec.Grid {
	if len(m.frames) == 0 {
		return nil
	}
	return m.frames[m.playback.Frame]
}

// saveScreenshot writes the displayed tiling to ~/.aztec/screenshots.
func (m *Model) saveScreenshot() {
	g := m.current()
	if g == nil {
		return
	}

	home, err := os.UserHomeDir()
	if err != nil {
		m.status = "screenshot failed"
		return
	}
	dir := filepath.Join(home, ".aztec", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.status = "screenshot failed"
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%d_%s.txt", m.config.Seed, m.playback.Frame+1, timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(render.RenderASCII(g)), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		m.status = "screenshot failed"
		return
	}
	m.status = "screenshot saved to " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || (m.goingBack && !m.child) {
		return ""
	}

	render.Draw(m.screen, m.current(), render.Frame{
		Seed:       m.config.Seed,
		Iteration:  m.playback.Frame,
		Iterations: m.playback.Frames,
		Playing:    m.playback.Playing,
		FPS:        m.config.FPS,
	}, render.Options{ShowIDs: m.config.ShowIDs})

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	footer := helpStyle.Render(m.help.View(m.keyMapper.Keys()))
	if m.status != "" {
		footer += "  " + m.palette[core.ColorAccent].Render(m.status)
	}

	return RenderScreen(m.screen, m.palette) + "\n" + footer
}

// Record returns the record being played back.
func (m Model) Record() *aztec.GenerationRecord {
	return m.record
}

// Playback returns the current playback position.
func (m Model) Playback() core.PlaybackState {
	return m.playback
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back.
func (m Model) BackToMenu() bool {
	return m.goingBack
}

// Run starts the viewer as a standalone Bubble Tea program.
func Run(cfg core.RuntimeConfig, opts ...ModelOption) error {
	model, err := NewModel(cfg, opts...)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
