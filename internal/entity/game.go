package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

var (
	ErrInvalidCell     = errors.New("invalid cell index")
	ErrGameNotFinished = errors.New("game is not finished")
)

// Game is one round between the human and the bot. X always moves first.
type Game struct {
	Board     *Board
	Turn      Mark
	Status    string
	HumanMark Mark
	BotMark   Mark
}

func NewGame(humanMark Mark) *Game {
	return &Game{
		Board:     NewBoard(),
		Turn:      MarkX,
		Status:    StatusOngoing,
		HumanMark: humanMark,
		BotMark:   humanMark.Opponent(),
	}
}

func (that *Game) MakeTurn(playerMark Mark, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !IsValidCell(cell) {
		return fmt.Errorf("%w: cell %d", ErrInvalidCell, cell)
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if !that.Board.ApplyMove(cell, playerMark) {
		return apperror.ErrCellOccupied
	}

	that.UpdateGameState()

	return nil
}

func (that *Game) UpdateGameState() {
	if that.Board.Outcome().IsOver() {
		that.Status = StatusFinished
		that.Turn = Empty

		return
	}

	that.Status = StatusOngoing
	that.Turn = that.Turn.Opponent()
}

func (that *Game) Outcome() Outcome {
	return that.Board.Outcome()
}

// Result maps a finished game to the side that won it.
func (that *Game) Result() (Result, error) {
	outcome := that.Board.Outcome()

	switch {
	case outcome.IsWin(that.HumanMark):
		return ResultHuman, nil
	case outcome.IsWin(that.BotMark):
		return ResultBot, nil
	case outcome.Kind == Tie:
		return ResultTie, nil
	default:
		return "", ErrGameNotFinished
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// GetRandomMarks returns the human and bot marks in random order.
func GetRandomMarks() (Mark, Mark) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return MarkX, MarkO
	}
	return MarkO, MarkX
}
