package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"twenty48/internal/game"
)

const cellWidth = 7

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#776E65")).
			Padding(0, 1)

	emptyCellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("#4A4A4A"))

	spawnCellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Center).
			Bold(true).
			Underline(true)

	fallbackTileStyle = lipgloss.NewStyle().
				Width(cellWidth).
				Align(lipgloss.Center).
				Bold(true).
				Foreground(lipgloss.Color("#F9F6F2")).
				Background(lipgloss.Color("#3C3A32"))
)

// The classic 2048 palette; values outside it fall back to the dark
// super-tile style.
var tileStyles = map[int]lipgloss.Style{
	2:    tileStyle("#776E65", "#EEE4DA"),
	4:    tileStyle("#776E65", "#EDE0C8"),
	8:    tileStyle("#F9F6F2", "#F2B179"),
	16:   tileStyle("#F9F6F2", "#F59563"),
	32:   tileStyle("#F9F6F2", "#F67C5F"),
	64:   tileStyle("#F9F6F2", "#F65E3B"),
	128:  tileStyle("#776E65", "#EDCF72"),
	256:  tileStyle("#776E65", "#EDCC61"),
	512:  tileStyle("#776E65", "#EDC850"),
	1024: tileStyle("#776E65", "#EDC53F"),
	2048: tileStyle("#776E65", "#EDC22E"),
}

func tileStyle(fg, bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(cellWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg))
}

// renderBoard draws the grid, underlining freshly spawned tiles.
func renderBoard(grid [][]int, spawns []game.SpawnLocation) string {
	spawned := make(map[game.SpawnLocation]bool, len(spawns))
	for _, loc := range spawns {
		spawned[loc] = true
	}

	rows := make([]string, 0, len(grid))
	for r, row := range grid {
		cells := make([]string, 0, len(row))
		for c, v := range row {
			cells = append(cells, renderCell(v, spawned[game.SpawnLocation{Row: r, Col: c}]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func renderCell(value int, justSpawned bool) string {
	if value == 0 {
		return emptyCellStyle.Render("·")
	}
	label := strconv.Itoa(value)
	if justSpawned {
		return spawnCellStyle.Render(label)
	}
	if style, ok := tileStyles[value]; ok {
		return style.Render(label)
	}
	return fallbackTileStyle.Render(label)
}
