package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/player"
)

type frontend interface {
	player.MoveReader

	ShowBoard(board *entity.Board)
	ShowOutcome(message string, score *entity.Score)
	AskReplay(ctx context.Context) (bool, error)
}

type scoreRepo interface {
	Record(ctx context.Context, player string, result entity.Result) error
	Get(ctx context.Context, player string) (*entity.Score, error)
}

type moveChooser interface {
	ChooseMove(board *entity.Board, mark entity.Mark) (int, error)
}

// GameManager drives rounds between the human at the front end and the bot
// until the human declines a replay.
type GameManager struct {
	logger    *slog.Logger
	frontend  frontend
	scoreRepo scoreRepo
	chooser   moveChooser

	playerName string
	humanMark  entity.Mark
}

// NewGameManager builds a manager. An Empty humanMark draws the marks at
// random for every round.
func NewGameManager(
	logger *slog.Logger,
	frontend frontend,
	scoreRepo scoreRepo,
	chooser moveChooser,
	playerName string,
	humanMark entity.Mark,
) *GameManager {
	return &GameManager{
		logger:    logger.With("component", "game_manager"),
		frontend:  frontend,
		scoreRepo: scoreRepo,
		chooser:   chooser,

		playerName: playerName,
		humanMark:  humanMark,
	}
}

func (that *GameManager) Play(ctx context.Context) error {
	log := that.logger.With("method", "Play")

	for round := 1; ; round++ {
		result, err := that.PlayRound(ctx)
		if err != nil {
			return fmt.Errorf("failed to play round %d: %w", round, err)
		}

		log.Info("game finished", "round", round, "result", result)

		that.frontend.ShowOutcome(result.Message(), that.recordResult(ctx, result))

		again, err := that.frontend.AskReplay(ctx)
		if err != nil {
			return fmt.Errorf("failed to ask for replay: %w", err)
		}

		if !again {
			return nil
		}
	}
}

// PlayRound plays a single game to its end and returns who took it.
func (that *GameManager) PlayRound(ctx context.Context) (entity.Result, error) {
	log := that.logger.With("method", "PlayRound")

	humanMark, botMark := that.pickMarks()
	game := entity.NewGame(humanMark)

	players := map[entity.Mark]player.MoveSource{
		humanMark: player.NewHumanPlayer(humanMark, that.frontend),
		botMark:   player.NewBotPlayer(botMark, that.chooser),
	}

	log.Info("game started", "human", humanMark, "bot", botMark)

	that.frontend.ShowMessage(fmt.Sprintf("You play %s.", humanMark))
	that.frontend.ShowBoard(game.Board)

	for game.IsOngoing() {
		source := players[game.Turn]

		cell, err := source.GetMove(ctx, game.Board)
		if err != nil {
			return "", fmt.Errorf("failed to get %s move: %w", source.Mark(), err)
		}

		if err = game.MakeTurn(source.Mark(), cell); err != nil {
			return "", fmt.Errorf("failed to make turn: %w", err)
		}

		log.Debug("turn made", "mark", source.Mark(), "cell", cell)

		that.frontend.ShowBoard(game.Board)
	}

	return game.Result()
}

func (that *GameManager) pickMarks() (entity.Mark, entity.Mark) {
	if !that.humanMark.IsPlayer() {
		return entity.GetRandomMarks()
	}

	return that.humanMark, that.humanMark.Opponent()
}

// recordResult stores the result and returns the updated tally, or nil when
// the tally is unavailable. Storage failures never end the session.
func (that *GameManager) recordResult(ctx context.Context, result entity.Result) *entity.Score {
	log := that.logger.With("method", "recordResult", "player", that.playerName)

	if err := that.scoreRepo.Record(ctx, that.playerName, result); err != nil {
		log.Error("failed to record result", "error", err)
		return nil
	}

	score, err := that.scoreRepo.Get(ctx, that.playerName)
	if err != nil {
		log.Error("failed to get score", "error", err)
		return nil
	}

	return score
}
