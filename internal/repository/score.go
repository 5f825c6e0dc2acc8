package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var ErrUnknownResult = errors.New("unknown game result")

type ScoreRepository interface {
	Record(ctx context.Context, player string, result entity.Result) error
	Get(ctx context.Context, player string) (*entity.Score, error)
}

type dbScore struct {
	client *redis.Client
}

// NewScoreRepository keeps one hash per player, "score:<player>", with a
// counter per result.
func NewScoreRepository(client *redis.Client) ScoreRepository {
	return &dbScore{
		client: client,
	}
}

func (that *dbScore) Record(ctx context.Context, player string, result entity.Result) error {
	if !result.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownResult, result)
	}

	scoreKey := "score:" + player

	if err := that.client.HIncrBy(ctx, scoreKey, string(result), 1).Err(); err != nil {
		return fmt.Errorf("failed to record score: %w", err)
	}

	return nil
}

func (that *dbScore) Get(ctx context.Context, player string) (*entity.Score, error) {
	scoreKey := "score:" + player

	response, err := that.client.HGetAll(ctx, scoreKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	score := &entity.Score{}
	for field, value := range response {
		count, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s count: %w", field, err)
		}

		switch entity.Result(field) {
		case entity.ResultHuman:
			score.Human = count
		case entity.ResultBot:
			score.Bot = count
		case entity.ResultTie:
			score.Tie = count
		}
	}

	return score, nil
}
