package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidMove      = errors.New("invalid move")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrQuit             = errors.New("player quit")
)
