package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/pkg/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game - one hot-seat game: the board plus the turn order kept on top of the engine.
type Game struct {
	ID        string          `json:"id"`
	Board     tictactoe.Board `json:"board"`
	Winner    tictactoe.Cell  `json:"winner"`
	Draw      bool            `json:"draw,omitempty"`
	Status    string          `json:"status"`
	Turn      tictactoe.Cell  `json:"player_turn"`
	FirstMark tictactoe.Cell  `json:"first_mark"`
}

func NewGame(id string, first tictactoe.Cell) *Game {
	return &Game{
		ID:        id,
		Board:     tictactoe.InitializeBoard(),
		Turn:      first,
		FirstMark: first,
		Status:    StatusOngoing,
	}
}

// Outcome - evaluates the board, the stored fields only mirror it.
func (that *Game) Outcome() tictactoe.Outcome {
	return tictactoe.CheckWinner(that.Board)
}

func (that *Game) UpdateGameState() {
	switch outcome := that.Outcome(); outcome.Status {
	// one player wins
	case tictactoe.Won:
		that.Winner = outcome.Winner
		that.Draw = false
		that.Status = StatusFinished
		that.Turn = tictactoe.Empty
	// tie
	case tictactoe.Draw:
		that.Winner = tictactoe.Empty
		that.Draw = true
		that.Status = StatusFinished
		that.Turn = tictactoe.Empty
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) MakeTurn(playerMark tictactoe.Cell, row, col int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !tictactoe.InBounds(row, col) {
		return fmt.Errorf("%w: row %d, col %d", tictactoe.ErrOutOfBounds, row, col)
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	placed, err := tictactoe.MakeMove(&that.Board, row, col, playerMark)
	if err != nil {
		return fmt.Errorf("failed to make move: %w", err)
	}

	if !placed {
		return apperror.ErrCellOccupied
	}

	that.Turn = playerMark.Opponent()

	that.UpdateGameState()

	return nil
}

// Reset - starts the game over with a fresh board and the same first mark.
func (that *Game) Reset() {
	that.Board = tictactoe.ResetGame()
	that.Winner = tictactoe.Empty
	that.Draw = false
	that.Status = StatusOngoing
	that.Turn = that.FirstMark
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
