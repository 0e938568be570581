package tictactoe

import (
	"errors"
	"fmt"
	"strings"
)

const Size = 3

var (
	ErrOutOfBounds = errors.New("coordinates out of bounds")
	ErrUnknownCell = errors.New("unknown cell value")
)

// Cell - content of one board position. The zero value is Empty.
type Cell uint8

const (
	Empty Cell = iota
	MarkX
	MarkO
)

func (that Cell) String() string {
	switch that {
	case Empty:
		return " "
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return fmt.Sprintf("Cell(%d)", uint8(that))
	}
}

// Opponent - returns the other player's mark, Empty for anything that is not a mark.
func (that Cell) Opponent() Cell {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return Empty
	}
}

func (that Cell) MarshalText() ([]byte, error) {
	switch that {
	case Empty, MarkX, MarkO:
		return []byte(strings.TrimSpace(that.String())), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCell, uint8(that))
	}
}

func (that *Cell) UnmarshalText(text []byte) error {
	cell, err := ParseCell(string(text))
	if err != nil {
		return err
	}

	*that = cell

	return nil
}

// ParseCell - parses "X", "O" (any case) or a blank string into a Cell.
func ParseCell(s string) (Cell, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return Empty, nil
	case "X":
		return MarkX, nil
	case "O":
		return MarkO, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrUnknownCell, s)
	}
}

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board - 3x3 grid, rows top to bottom, columns left to right.
type Board [Size][Size]Cell

// InitializeBoard - returns a new board with every cell Empty.
func InitializeBoard() Board {
	return Board{}
}

// ResetGame - returns a fresh empty board for a new game.
func ResetGame() Board {
	return InitializeBoard()
}

func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// MakeMove - places mark at (row, col) when the cell is empty.
// Coordinates outside the board fail with ErrOutOfBounds, an occupied cell returns false.
// The mark is written as given; alternating turns is up to the caller.
func MakeMove(board *Board, row, col int, mark Cell) (bool, error) {
	if !InBounds(row, col) {
		return false, fmt.Errorf("%w: row %d, col %d", ErrOutOfBounds, row, col)
	}

	if board[row][col] != Empty {
		return false, nil
	}

	board[row][col] = mark

	return true, nil
}

// EmptyCells - empty positions in row-major order.
func (that Board) EmptyCells() []Position {
	cells := make([]Position, 0, Size*Size)
	for row := range that {
		for col, cell := range that[row] {
			if cell == Empty {
				cells = append(cells, Position{Row: row, Col: col})
			}
		}
	}

	return cells
}

func (that Board) IsFull() bool {
	for row := range that {
		for _, cell := range that[row] {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

func (that Board) String() string {
	var sb strings.Builder

	for row := range that {
		if row > 0 {
			sb.WriteString("-+-+-\n")
		}

		for col, cell := range that[row] {
			if col > 0 {
				sb.WriteByte('|')
			}
			sb.WriteString(cell.String())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
