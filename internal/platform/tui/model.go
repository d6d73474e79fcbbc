// Package tui provides the Bubble Tea integration for 2048.
// It handles the terminal UI loop, input mapping, menus and the scoreboard.
package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/spawn"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Options configures a game session.
type Options struct {
	Config   config.Config
	Seed     int64           // 0 = random based on time
	Store    *storage.Store  // Optional; nil disables scores and saves
	Logger   *log.Logger     // Optional
	Resume   *t2048.Snapshot // Continue this game instead of starting a new one
	Autosave bool            // Save the game in progress after every move
	Width    int
	Height   int
}

// Result summarizes a finished session.
type Result struct {
	Score    int
	MaxTile  int
	Moves    int
	GameOver bool
}

// Model is the Bubble Tea model for a 2048 game.
type Model struct {
	game       *t2048.Model
	spawner    *spawn.Spawner
	store      *storage.Store
	logger     *log.Logger
	cfg        config.Config
	keys       KeyMap
	help       help.Model
	merged     map[t2048.Coord]bool // Cells that received a merge on the last tilt
	moves      int
	autosave   bool
	scoreSaved bool // Whether the score has been saved for the current game over
	quitting   bool
	width      int
	height     int
}

// NewModel creates a game model, either resuming opts.Resume or starting a
// fresh board with the configured number of tiles.
func NewModel(opts Options) (Model, error) {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := opts.Config

	best := 0
	if opts.Store != nil {
		var err error
		best, err = opts.Store.BestScore(cfg.Board.Size)
		if err != nil {
			logger.Warn("could not load best score", "error", err)
		}
	}

	gameOpts := []t2048.Option{
		t2048.WithMaxPiece(cfg.Board.MaxPiece),
		t2048.WithStationarySlides(cfg.Rules.CountStationarySlides),
		t2048.WithMaxScore(best),
	}

	m := Model{
		spawner:  spawn.New(opts.Seed, cfg.Spawn),
		store:    opts.Store,
		logger:   logger,
		cfg:      cfg,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		autosave: opts.Autosave && opts.Store != nil,
		width:    opts.Width,
		height:   opts.Height,
	}

	if opts.Resume != nil {
		if opts.Resume.Size != cfg.Board.Size {
			return Model{}, fmt.Errorf("tui: saved game is %dx%d, board is %dx%d",
				opts.Resume.Size, opts.Resume.Size, cfg.Board.Size, cfg.Board.Size)
		}
		game, err := t2048.FromSnapshot(*opts.Resume, gameOpts...)
		if err != nil {
			return Model{}, fmt.Errorf("tui: cannot resume game: %w", err)
		}
		m.game = game
		logger.Info("resumed game", "size", cfg.Board.Size, "score", game.Score())
	} else {
		m.game = t2048.NewModel(cfg.Board.Size, gameOpts...)
		m.spawner.Fill(m.game, cfg.Spawn.InitialTiles)
		logger.Info("new game", "size", cfg.Board.Size, "seed", opts.Seed)
	}
	m.game.Changed()

	return m, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.saveProgress()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.restart()
		return m, nil
	}

	if side, ok := m.keys.Side(msg); ok {
		m.tilt(side)
	}
	return m, nil
}

// tilt applies one move. A move that changed the board spawns a new tile.
func (m *Model) tilt(side t2048.Side) {
	if m.game.GameOver() {
		return
	}

	res := m.game.TiltDetailed(side)
	if !res.Changed {
		return
	}

	m.moves++
	m.merged = make(map[t2048.Coord]bool, res.Merges())
	for _, mv := range res.Moves {
		if mv.Merged {
			m.merged[t2048.Coord{Col: mv.ToCol, Row: mv.ToRow}] = true
		}
	}
	m.spawner.Fill(m.game, 1)
	m.game.Changed()

	m.logger.Debug("tilt",
		"side", side,
		"score", m.game.Score(),
		"gained", res.Score,
		"merges", res.Merges(),
	)

	if m.game.GameOver() {
		m.finish()
		return
	}
	m.saveProgress()
}

// restart clears the board and spawns the opening tiles.
func (m *Model) restart() {
	if !m.game.GameOver() && m.moves > 0 {
		m.logger.Info("game abandoned", "score", m.game.Score(), "moves", m.moves)
	}
	m.game.Clear()
	m.spawner.Fill(m.game, m.cfg.Spawn.InitialTiles)
	m.game.Changed()
	m.moves = 0
	m.merged = nil
	m.scoreSaved = false
	m.deleteProgress()
}

// finish records a finished game once.
func (m *Model) finish() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	res := m.Result()
	m.logger.Info("game over",
		"score", res.Score,
		"max_tile", res.MaxTile,
		"moves", res.Moves,
		"won", m.won(),
	)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveGame(storage.GameRecord{
		Size:    m.game.Size(),
		Score:   res.Score,
		MaxTile: res.MaxTile,
		Moves:   res.Moves,
	}); err != nil {
		m.logger.Error("could not save game", "error", err)
	}
	m.deleteProgress()
}

// saveProgress stores the game in progress when autosave is enabled.
func (m *Model) saveProgress() {
	if !m.autosave || m.game.GameOver() {
		return
	}
	if err := m.store.SaveSnapshot(m.game.Snapshot()); err != nil {
		m.logger.Error("could not save game in progress", "error", err)
	}
}

func (m *Model) deleteProgress() {
	if !m.autosave {
		return
	}
	if err := m.store.DeleteSnapshot(m.game.Size()); err != nil {
		m.logger.Error("could not delete saved game", "error", err)
	}
}

// won reports whether the game ended on the winning tile.
func (m Model) won() bool {
	return t2048.MaxTileExists(m.game, m.game.MaxPiece())
}

// Game returns the underlying game state.
func (m Model) Game() *t2048.Model {
	return m.game
}

// Result returns a summary of the current game.
func (m Model) Result() Result {
	return Result{
		Score:    m.game.Score(),
		MaxTile:  t2048.HighestTile(m.game),
		Moves:    m.moves,
		GameOver: m.game.GameOver(),
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("2 0 4 8"))
	b.WriteString("\n")
	best := max(m.game.MaxScore(), m.game.Score())
	b.WriteString(statusStyle.Render(fmt.Sprintf("Score: %d   Best: %d   Moves: %d", m.game.Score(), best, m.moves)))
	b.WriteString("\n")
	b.WriteString(RenderBoard(m.game, m.merged))
	b.WriteString("\n")

	if m.game.GameOver() {
		if m.won() {
			b.WriteString(winStyle.Render(fmt.Sprintf("You reached %d!", m.game.MaxPiece())))
		} else {
			b.WriteString(gameOverStyle.Render("No moves left."))
		}
		b.WriteString(statusStyle.Render("  Press r to play again."))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	if m.width == 0 || m.height == 0 {
		return b.String()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// Run starts the Bubble Tea program and plays one session.
func Run(opts Options) (Result, error) {
	model, err := NewModel(opts)
	if err != nil {
		return Result{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return model.Result(), nil
	}
	return m.Result(), nil
}
