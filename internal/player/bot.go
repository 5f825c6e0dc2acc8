package player

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type moveChooser interface {
	ChooseMove(board *entity.Board, mark entity.Mark) (int, error)
}

type BotPlayer struct {
	mark    entity.Mark
	chooser moveChooser
}

func NewBotPlayer(mark entity.Mark, chooser moveChooser) *BotPlayer {
	return &BotPlayer{
		mark:    mark,
		chooser: chooser,
	}
}

func (that *BotPlayer) Mark() entity.Mark {
	return that.mark
}

// GetMove runs the search to completion; ctx is only checked before it starts.
func (that *BotPlayer) GetMove(ctx context.Context, board *entity.Board) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	cell, err := that.chooser.ChooseMove(board, that.mark)
	if err != nil {
		return 0, fmt.Errorf("bot failed to choose move: %w", err)
	}

	return cell, nil
}
