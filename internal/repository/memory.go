package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type memoryScore struct {
	mu     sync.Mutex
	scores map[string]entity.Score
}

// NewMemoryScoreRepository keeps the tally for the lifetime of the process.
func NewMemoryScoreRepository() ScoreRepository {
	return &memoryScore{
		scores: make(map[string]entity.Score),
	}
}

func (that *memoryScore) Record(_ context.Context, player string, result entity.Result) error {
	if !result.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownResult, result)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	score := that.scores[player]
	score.Add(result)
	that.scores[player] = score

	return nil
}

func (that *memoryScore) Get(_ context.Context, player string) (*entity.Score, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	score := that.scores[player]

	return &score, nil
}
