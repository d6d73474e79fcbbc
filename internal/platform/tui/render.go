package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Board cell dimensions in terminal cells.
const (
	cellWidth  = 7
	cellHeight = 3
)

var cellBase = lipgloss.NewStyle().
	Width(cellWidth).
	Height(cellHeight).
	Align(lipgloss.Center, lipgloss.Center)

// tileColors maps tile values to background/foreground colors.
// Values above 2048 share the 2048 style.
var tileColors = map[int][2]string{
	0:    {"237", "237"},
	2:    {"254", "235"},
	4:    {"223", "235"},
	8:    {"215", "231"},
	16:   {"209", "231"},
	32:   {"203", "231"},
	64:   {"160", "231"},
	128:  {"228", "235"},
	256:  {"227", "235"},
	512:  {"220", "235"},
	1024: {"214", "231"},
	2048: {"226", "232"},
}

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
	gameOverStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203"))
	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("226"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// tileStyle returns the style for a cell holding value (0 = empty).
func tileStyle(value int, merged bool) lipgloss.Style {
	colors, ok := tileColors[value]
	if !ok {
		colors = tileColors[2048]
	}
	return cellBase.
		Background(lipgloss.Color(colors[0])).
		Foreground(lipgloss.Color(colors[1])).
		Bold(merged)
}

// RenderBoard draws g with the top row first. Cells listed in merged are bold.
func RenderBoard(g t2048.Grid, merged map[t2048.Coord]bool) string {
	size := g.Size()
	rows := make([]string, 0, size)
	for row := size - 1; row >= 0; row-- {
		cells := make([]string, 0, size)
		for col := range size {
			text := ""
			value := 0
			if tile, ok := g.Tile(col, row); ok {
				value = tile.Value
				text = strconv.Itoa(value)
			}
			style := tileStyle(value, merged[t2048.Coord{Col: col, Row: row}])
			cells = append(cells, style.Render(text))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
