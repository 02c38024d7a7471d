// Package tui renders one game session as an interactive terminal UI.
//
// The model is single-threaded inside the bubbletea event loop: every key
// press is one atomic transition on the underlying session, and invalid
// inputs (occupied cell, move after the game is over) change nothing beyond
// a status-line hint.
package tui

import (
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-replay/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-replay/internal/config"
	"github.com/rocketscienceinc/tictactoe-replay/internal/session"
)

const (
	gridWidth  = 3
	gridHeight = 3

	historyPaneWidth  = 24
	historyPaneHeight = 9
)

// Model is the bubbletea model for one game session.
type Model struct {
	logger  *slog.Logger
	session *session.Session

	showCellNumbers bool

	cell    int // board cursor, 0..8
	history viewport.Model
	hint    string

	width    int
	height   int
	quitting bool

	styles styles
}

func New(logger *slog.Logger, conf *config.Config, gameSession *session.Session) Model {
	history := viewport.New(historyPaneWidth, historyPaneHeight)

	model := Model{
		logger:          logger.With("component", "tui"),
		session:         gameSession,
		showCellNumbers: conf.UI.ShowCellNumbers,
		cell:            4, // start on the center cell
		history:         history,
		styles:          defaultStyles(),
	}
	model.history.SetContent(model.renderHistory())

	return model
}

func (that Model) Init() tea.Cmd {
	return nil
}

func (that Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		that.width = msg.Width
		that.height = msg.Height

		// title, status, help and pane borders claim the rest
		paneHeight := msg.Height - 6
		if paneHeight < gridHeight {
			paneHeight = gridHeight
		}
		if paneHeight > historyPaneHeight {
			paneHeight = historyPaneHeight
		}
		that.history.Height = paneHeight
		that.scrollHistoryToCursor()

		return that, nil

	case tea.KeyMsg:
		return that.handleKey(msg)
	}

	return that, nil
}

func (that Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		that.quitting = true
		return that, tea.Quit

	case "up", "k":
		if that.cell >= gridWidth {
			that.cell -= gridWidth
		}
	case "down", "j":
		if that.cell < gridWidth*(gridHeight-1) {
			that.cell += gridWidth
		}
	case "left", "h":
		if that.cell%gridWidth > 0 {
			that.cell--
		}
	case "right", "l":
		if that.cell%gridWidth < gridWidth-1 {
			that.cell++
		}

	case "enter", " ":
		that = that.playMove()

	case "[", "p":
		that = that.jumpTo(that.session.Cursor() - 1)
	case "]", "n":
		that = that.jumpTo(that.session.Cursor() + 1)
	case "g":
		that = that.jumpTo(0)
	case "G":
		that = that.jumpTo(that.session.MoveCount() - 1)

	case "r":
		that.session = session.New(that.logger)
		that.hint = "new game"
	}

	that.history.SetContent(that.renderHistory())
	that.scrollHistoryToCursor()

	return that, nil
}

// playMove applies the board cursor as a move. Rejections are the normal
// flow for an interactive board, so they turn into hints, not errors.
func (that Model) playMove() Model {
	if err := that.session.PlayMove(that.cell); err != nil {
		switch {
		case errors.Is(err, apperror.ErrCellOccupied):
			that.hint = "that cell is occupied"
		case errors.Is(err, apperror.ErrGameFinished):
			that.hint = "game over: jump back in history or press r"
		default:
			that.hint = err.Error()
		}

		that.logger.Debug("move rejected", "cell", that.cell, "error", err)

		return that
	}

	that.hint = ""

	return that
}

func (that Model) jumpTo(index int) Model {
	if err := that.session.JumpTo(index); err != nil {
		that.logger.Debug("jump rejected", "index", index, "error", err)
		return that
	}

	that.hint = ""

	return that
}

// scrollHistoryToCursor keeps the selected history row inside the viewport.
func (that *Model) scrollHistoryToCursor() {
	cursor := that.session.Cursor()

	if cursor < that.history.YOffset {
		that.history.SetYOffset(cursor)
		return
	}

	if cursor >= that.history.YOffset+that.history.Height {
		that.history.SetYOffset(cursor - that.history.Height + 1)
	}
}
