package tictactoe

import "fmt"

type Status uint8

const (
	Ongoing Status = iota
	Draw
	Won
)

func (that Status) String() string {
	switch that {
	case Ongoing:
		return "ongoing"
	case Draw:
		return "draw"
	case Won:
		return "won"
	default:
		return fmt.Sprintf("Status(%d)", uint8(that))
	}
}

// Outcome - evaluated state of a board. Winner is set only when Status is Won.
type Outcome struct {
	Status Status `json:"status"`
	Winner Cell   `json:"winner"`
}

var (
	OutcomeOngoing = Outcome{Status: Ongoing}
	OutcomeDraw    = Outcome{Status: Draw}
	WinnerX        = WonBy(MarkX)
	WinnerO        = WonBy(MarkO)
)

func WonBy(mark Cell) Outcome {
	return Outcome{Status: Won, Winner: mark}
}

func (that Outcome) IsOver() bool {
	return that.Status != Ongoing
}

func (that Outcome) String() string {
	if that.Status == Won {
		return that.Winner.String() + " wins"
	}

	return that.Status.String()
}

type Line [Size]Position

// lines - every line checked for a win, in scan order: rows top to bottom,
// columns left to right, then the main and anti diagonals.
var lines = [8]Line{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Lines - copy of the win lines in scan order.
func Lines() [8]Line {
	return lines
}

// Owner - returns the mark filling the whole line, Empty if the line is not complete.
func (that Line) Owner(board Board) Cell {
	a := board[that[0].Row][that[0].Col]
	b := board[that[1].Row][that[1].Col]
	c := board[that[2].Row][that[2].Col]

	if a != Empty && a == b && b == c {
		return a
	}

	return Empty
}

// CheckWinner - evaluates the board: the first complete line in Lines() order wins,
// a full board without a winner is a draw, anything else is still ongoing.
func CheckWinner(board Board) Outcome {
	for _, line := range lines {
		if mark := line.Owner(board); mark != Empty {
			return WonBy(mark)
		}
	}

	// the game will continue until all the squares are full
	if !board.IsFull() {
		return OutcomeOngoing
	}

	return OutcomeDraw
}
