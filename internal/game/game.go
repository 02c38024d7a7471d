package game

// Mark is the content of a single board cell.
type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

// BoardSize is fixed: this is a 3x3, two-symbol game.
const BoardSize = 9

// WinCombos enumerates the 8 winning triples: 3 rows, 3 columns, 2 diagonals.
// The order is fixed so that Evaluate resolves multi-win boards deterministically.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board holds the 9 cells in row-major order.
type Board [BoardSize]Mark

// Outcome is the result of evaluating a board. It is always derived from the
// board on demand and never stored alongside it.
type Outcome struct {
	Winner Mark
	Line   [3]int
	IsDraw bool
}

func (that Outcome) HasWinner() bool {
	return that.Winner != EmptyCell
}

// IsTerminal reports whether the board accepts no further moves.
func (that Outcome) IsTerminal() bool {
	return that.HasWinner() || that.IsDraw
}

// Evaluate checks every winning triple in WinCombos order and returns the
// first one whose three cells hold the same non-empty mark, together with
// that mark. A full board with no winner is a draw.
func Evaluate(board Board) Outcome {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return Outcome{Winner: a, Line: combo}
		}
	}

	// the game continues until all the squares are full
	for _, cell := range board {
		if cell == EmptyCell {
			return Outcome{}
		}
	}

	return Outcome{IsDraw: true}
}

// TurnFor returns the mark that moves at the given move number: X opens and
// the marks strictly alternate.
func TurnFor(moveNumber int) Mark {
	if moveNumber%2 == 0 {
		return PlayerX
	}
	return PlayerO
}
