package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

// MenuChoice is the entry picked from the start menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceNewGame
	ChoiceResume
	ChoiceEndless
	ChoiceScores
)

// String returns the menu label of the choice.
func (c MenuChoice) String() string {
	switch c {
	case ChoiceNewGame:
		return "New game"
	case ChoiceResume:
		return "Resume saved game"
	case ChoiceEndless:
		return "Endless game"
	case ChoiceScores:
		return "High scores"
	default:
		return ""
	}
}

// Board sizes offered by the menu.
const (
	MinBoardSize = 3
	MaxBoardSize = 8
)

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	store    *storage.Store
	size     int
	cursor   int
	items    []MenuChoice
	width    int
	height   int
	choice   MenuChoice
	quitting bool
}

// NewMenuModel creates a start menu for a board of the given size.
func NewMenuModel(store *storage.Store, size, width, height int) MenuModel {
	m := MenuModel{
		store:  store,
		size:   min(max(size, MinBoardSize), MaxBoardSize),
		width:  width,
		height: height,
	}
	m.refreshItems()
	return m
}

// refreshItems rebuilds the entries; resuming is only offered when a game
// of the selected size is saved.
func (m *MenuModel) refreshItems() {
	m.items = []MenuChoice{ChoiceNewGame}
	if m.store != nil {
		if snap, err := m.store.LoadSnapshot(m.size); err == nil && snap != nil {
			m.items = append(m.items, ChoiceResume)
		}
	}
	m.items = append(m.items, ChoiceEndless, ChoiceScores)
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if m.size > MinBoardSize {
			m.size--
			m.refreshItems()
		}

	case MenuActionRight:
		if m.size < MaxBoardSize {
			m.size++
			m.refreshItems()
		}

	case MenuActionSelect:
		m.choice = m.items[m.cursor]
		return m, tea.Quit

	case MenuActionScoreboard:
		m.choice = ChoiceScores
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("2 0 4 8"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("< Board: %dx%d >", m.size, m.size), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.String(), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Size  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(helpStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the selected entry, or ChoiceNone if the user quit.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Size returns the selected board size.
func (m MenuModel) Size() int {
	return m.size
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Size   int
	Width  int
	Height int
}

// RunMenu runs the start menu and returns the selection.
func RunMenu(store *storage.Store, size, width, height int) (MenuResult, error) {
	model := NewMenuModel(store, size, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Size: size, Width: width, Height: height}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Size: size, Width: width, Height: height}, nil
	}

	return MenuResult{
		Choice: m.Choice(),
		Size:   m.Size(),
		Width:  m.width,
		Height: m.height,
	}, nil
}
