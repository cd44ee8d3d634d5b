package terminal

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var (
	cellStyle = lipgloss.NewStyle().Width(3).Align(lipgloss.Center)
	xStyle    = cellStyle.Bold(true).Foreground(lipgloss.Color("204"))
	oStyle    = cellStyle.Bold(true).Foreground(lipgloss.Color("45"))
	hintStyle = cellStyle.Foreground(lipgloss.Color("241"))
	gridStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// RenderBoard draws the 3x3 grid. Empty cells show the 1-9 number the player types to claim them.
func RenderBoard(board entity.Board) string {
	rows := make([]string, 0, 5)

	for row := range 3 {
		cells := make([]string, 0, 5)
		for col := range 3 {
			if col > 0 {
				cells = append(cells, gridStyle.Render("│"))
			}
			cells = append(cells, renderCell(board, row*3+col))
		}

		if row > 0 {
			rows = append(rows, gridStyle.Render("───┼───┼───"))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func renderCell(board entity.Board, cell int) string {
	switch board[cell] {
	case entity.PlayerX:
		return xStyle.Render(string(entity.PlayerX))
	case entity.PlayerO:
		return oStyle.Render(string(entity.PlayerO))
	default:
		return hintStyle.Render(strconv.Itoa(cell + 1))
	}
}

func renderGame(game entity.Game) string {
	return lipgloss.JoinVertical(lipgloss.Left, RenderBoard(game.Board), statusStyle.Render(game.Message()))
}
