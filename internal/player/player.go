package player

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// MoveSource supplies the next cell for one side of a game.
type MoveSource interface {
	Mark() entity.Mark
	GetMove(ctx context.Context, board *entity.Board) (int, error)
}
