package session

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-replay/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-replay/internal/game"
)

// Session owns the move history of one game: an ordered sequence of board
// snapshots plus a cursor selecting the currently displayed board. Index 0
// is always the empty initial board. State lives only in memory for the
// lifetime of the session.
type Session struct {
	logger *slog.Logger

	history []game.Board
	cursor  int
}

func New(logger *slog.Logger) *Session {
	return &Session{
		logger:  logger.With("component", "session"),
		history: []game.Board{{}},
	}
}

// Board returns the snapshot at the cursor.
func (that *Session) Board() game.Board {
	return that.history[that.cursor]
}

// Outcome is recomputed from the current board on every call, never cached.
func (that *Session) Outcome() game.Outcome {
	return game.Evaluate(that.Board())
}

// Turn returns whose mark moves next, derived from cursor parity.
func (that *Session) Turn() game.Mark {
	return game.TurnFor(that.cursor)
}

// MoveCount returns the history length, for rendering a jump list.
func (that *Session) MoveCount() int {
	return len(that.history)
}

func (that *Session) Cursor() int {
	return that.cursor
}

// PlayMove writes the next mark into the given cell of a copy of the current
// board, discards any history beyond the cursor and appends the new board.
// It rejects moves into occupied cells and moves on a finished board; the
// caller is expected to treat a rejection as a no-op.
func (that *Session) PlayMove(cell int) error {
	board := that.Board()

	if cell < 0 || cell >= len(board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Outcome().IsTerminal() {
		return apperror.ErrGameFinished
	}

	if board[cell] != game.EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	mark := that.Turn()
	board[cell] = mark

	// playing from a rewound cursor makes the abandoned future unrecoverable
	that.history = append(that.history[:that.cursor+1], board)
	that.cursor = len(that.history) - 1

	that.logger.Debug("move played", "cell", cell, "mark", mark, "move", that.cursor)

	return nil
}

// JumpTo moves the cursor without altering history contents. An out-of-range
// index is rejected and leaves the cursor unchanged.
func (that *Session) JumpTo(index int) error {
	if index < 0 || index >= len(that.history) {
		return fmt.Errorf("%w: index %d", apperror.ErrIndexOutOfRange, index)
	}

	that.cursor = index

	that.logger.Debug("cursor moved", "index", index)

	return nil
}
