package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrNoActiveGame = errors.New("no active game")
	ErrCellOccupied = errors.New("cell is already occupied")
)
