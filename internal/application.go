package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/player"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/search"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/ui/console"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/ui/terminal"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

type frontend interface {
	player.MoveReader

	ShowBoard(board *entity.Board)
	ShowOutcome(message string, score *entity.Score)
	AskReplay(ctx context.Context) (bool, error)
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	scoreRepo, closeScores, err := initScoreRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeScores()

	front, closeFront, err := initFrontend(conf)
	if err != nil {
		return err
	}
	defer closeFront()

	agent := search.NewAgent(
		search.WithWorkers(conf.Search.Workers),
		search.WithLogger(logger),
	)

	manager := usecase.NewGameManager(logger, front, scoreRepo, agent, conf.PlayerName, humanMark(conf.HumanMark))

	log.Info("Starting game session", "ui", conf.UI, "human_mark", conf.HumanMark, "workers", conf.Search.Workers)

	err = manager.Play(ctx)
	switch {
	case err == nil:
		log.Info("Game session finished")
		return nil
	case errors.Is(err, apperror.ErrQuit), errors.Is(err, context.Canceled):
		log.Info("Game session interrupted", "reason", err)
		return nil
	default:
		return fmt.Errorf("game session failed: %w", err)
	}
}

// initScoreRepository picks redis when it is enabled, an in-memory tally otherwise.
func initScoreRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.ScoreRepository, func(), error) {
	if !conf.Redis.Enabled {
		return repository.NewMemoryScoreRepository(), func() {}, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if conf.Redis.Host == "" || conf.Redis.Port == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeFn := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewScoreRepository(redisStorage), closeFn, nil
}

func initFrontend(conf *config.Config) (frontend, func(), error) {
	if conf.UI == config.UIConsole {
		return console.New(os.Stdin, os.Stdout), func() {}, nil
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, nil, fmt.Errorf("could not create terminal screen: %w", err)
	}

	front, err := terminal.New(screen)
	if err != nil {
		return nil, nil, fmt.Errorf("could not start terminal front end: %w", err)
	}

	return front, front.Close, nil
}

func humanMark(value string) entity.Mark {
	if value == config.MarkRandom {
		return entity.Empty
	}

	return entity.Mark(value)
}
