package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-replay/internal/game"
)

const helpText = "arrows/hjkl move • enter play • [/] jump • g/G start/latest • r new game • q quit"

type styles struct {
	title     lipgloss.Style
	pane      lipgloss.Style
	cellEmpty lipgloss.Style
	cellWin   lipgloss.Style
	markX     lipgloss.Style
	markO     lipgloss.Style
	status    lipgloss.Style
	hint      lipgloss.Style
	selected  lipgloss.Style
	help      lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		pane:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		cellEmpty: lipgloss.NewStyle().Faint(true),
		cellWin:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		markX:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		markO:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
		status:    lipgloss.NewStyle().Bold(true),
		hint:      lipgloss.NewStyle().Faint(true).Italic(true),
		selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		help:      lipgloss.NewStyle().Faint(true),
	}
}

func (that Model) View() string {
	if that.quitting {
		return ""
	}

	board := that.session.Board()
	outcome := that.session.Outcome()

	boardPane := that.styles.pane.Render(that.renderBoard(board, outcome))
	historyPane := that.styles.pane.Render(that.history.View())

	var view strings.Builder
	view.WriteString(that.styles.title.Render("tic-tac-toe") + "\n")
	view.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, boardPane, " ", historyPane) + "\n")
	view.WriteString(that.styles.status.Render(that.statusLine(outcome)) + "\n")

	if that.hint != "" {
		view.WriteString(that.styles.hint.Render(that.hint) + "\n")
	}

	view.WriteString(that.styles.help.Render(helpText))

	return view.String()
}

func (that Model) statusLine(outcome game.Outcome) string {
	switch {
	case outcome.HasWinner():
		return "winner: " + string(outcome.Winner)
	case outcome.IsDraw:
		return "draw"
	default:
		return "turn: " + string(that.session.Turn())
	}
}

func (that Model) renderBoard(board game.Board, outcome game.Outcome) string {
	rows := make([]string, 0, gridHeight)
	for row := 0; row < gridHeight; row++ {
		cells := make([]string, 0, gridWidth)
		for col := 0; col < gridWidth; col++ {
			cells = append(cells, that.renderCell(board, outcome, row*gridWidth+col))
		}
		rows = append(rows, strings.Join(cells, "│"))
	}

	return strings.Join(rows, "\n───┼───┼───\n")
}

func (that Model) renderCell(board game.Board, outcome game.Outcome, idx int) string {
	label := " "
	style := that.styles.cellEmpty

	switch board[idx] {
	case game.PlayerX:
		label = string(game.PlayerX)
		style = that.styles.markX
	case game.PlayerO:
		label = string(game.PlayerO)
		style = that.styles.markO
	default:
		if that.showCellNumbers {
			label = strconv.Itoa(idx)
		}
	}

	if outcome.HasWinner() && onLine(outcome.Line, idx) {
		style = that.styles.cellWin
	}

	if idx == that.cell {
		style = style.Reverse(true)
	}

	return style.Render(" " + label + " ")
}

func onLine(line [3]int, idx int) bool {
	return line[0] == idx || line[1] == idx || line[2] == idx
}

// renderHistory builds the jump list: one row per snapshot, the cursor row
// marked as selected.
func (that Model) renderHistory() string {
	var list strings.Builder
	for i := 0; i < that.session.MoveCount(); i++ {
		label := "go to game start"
		if i > 0 {
			label = fmt.Sprintf("go to move #%d", i)
		}

		if i == that.session.Cursor() {
			list.WriteString(that.styles.selected.Render("> " + label))
		} else {
			list.WriteString("  " + label)
		}
		list.WriteByte('\n')
	}

	return list.String()
}
