package player

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const invalidMoveMessage = "Invalid square. Try again."

// MoveReader is the front end side of a human player.
type MoveReader interface {
	ReadMove(ctx context.Context, board *entity.Board, mark entity.Mark) (int, error)
	ShowMessage(message string)
}

type HumanPlayer struct {
	mark   entity.Mark
	reader MoveReader
}

func NewHumanPlayer(mark entity.Mark, reader MoveReader) *HumanPlayer {
	return &HumanPlayer{
		mark:   mark,
		reader: reader,
	}
}

func (that *HumanPlayer) Mark() entity.Mark {
	return that.mark
}

// GetMove asks the reader until it returns one of the available cells.
func (that *HumanPlayer) GetMove(ctx context.Context, board *entity.Board) (int, error) {
	for {
		cell, err := that.reader.ReadMove(ctx, board, that.mark)
		if errors.Is(err, apperror.ErrInvalidMove) {
			that.reader.ShowMessage(invalidMoveMessage)
			continue
		}

		if err != nil {
			return 0, fmt.Errorf("failed to read move: %w", err)
		}

		if !slices.Contains(board.AvailableMoves(), cell) {
			that.reader.ShowMessage(invalidMoveMessage)
			continue
		}

		return cell, nil
	}
}
