package search

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// centerCell is played on an empty board without searching.
const centerCell = 4

var ErrInvalidMark = errors.New("invalid mark")

// Stats describes a finished search.
type Stats struct {
	Result

	Nodes    int
	Shortcut bool
	Elapsed  time.Duration
}

type Option func(agent *Agent)

// WithWorkers splits the root moves among n goroutines, each searching its
// own copy of the board. The chosen move is the same as with one worker.
func WithWorkers(workers int) Option {
	return func(agent *Agent) {
		if workers > 0 {
			agent.workers = workers
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(agent *Agent) {
		if logger != nil {
			agent.logger = logger
		}
	}
}

// Agent picks moves for the automated player with a full-depth minimax.
type Agent struct {
	logger  *slog.Logger
	workers int
}

func NewAgent(options ...Option) *Agent {
	agent := &Agent{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		workers: 1,
	}

	for _, option := range options {
		option(agent)
	}

	agent.logger = agent.logger.With("component", "search")

	return agent
}

// ChooseMove returns the cell the agent plays for mark. The board is left
// exactly as it was passed in.
func (that *Agent) ChooseMove(board *entity.Board, mark entity.Mark) (int, error) {
	stats, err := that.Search(board, mark)
	if err != nil {
		return NoMove, err
	}

	return stats.Index, nil
}

func (that *Agent) Search(board *entity.Board, mark entity.Mark) (Stats, error) {
	log := that.logger.With("method", "Search", "mark", mark)

	if !mark.IsPlayer() {
		return Stats{}, fmt.Errorf("%w: %q", ErrInvalidMark, mark)
	}

	if board.IsFull() || board.Outcome().IsOver() {
		return Stats{}, apperror.ErrNoAvailableMoves
	}

	if board.EmptyCount() == entity.BoardSize {
		log.Debug("opening move", "cell", centerCell)

		return Stats{Result: Result{Index: centerCell}, Shortcut: true}, nil
	}

	start := time.Now()

	var stats Stats
	if that.workers > 1 {
		var err error
		if stats, err = that.searchParallel(board, mark); err != nil {
			return Stats{}, fmt.Errorf("failed to search in parallel: %w", err)
		}
	} else {
		s := &searcher{board: board, maximizingFor: mark}
		stats = Stats{Result: s.minimax(mark), Nodes: s.nodes}
	}

	stats.Elapsed = time.Since(start)

	log.Debug("move chosen",
		"cell", stats.Index,
		"score", stats.Score,
		"nodes", stats.Nodes,
		"workers", that.workers,
		"elapsed", stats.Elapsed,
	)

	return stats, nil
}

// searchParallel scores every root move on its own board copy and then
// folds the scores in ascending cell order, which keeps the tie-break of
// the sequential search.
func (that *Agent) searchParallel(board *entity.Board, mark entity.Mark) (Stats, error) {
	moves := board.AvailableMoves()
	results := make([]Result, len(moves))
	nodes := make([]int, len(moves))

	var group errgroup.Group
	group.SetLimit(that.workers)

	for i, index := range moves {
		clone := board.Clone()

		group.Go(func() error {
			if !clone.ApplyMove(index, mark) {
				return fmt.Errorf("%w: cell %d", apperror.ErrInvalidMove, index)
			}

			s := &searcher{board: clone, maximizingFor: mark}
			result := s.minimax(mark.Opponent())
			result.Index = index

			results[i] = result
			nodes[i] = s.nodes

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return Stats{}, err
	}

	stats := Stats{Result: worst(true), Nodes: 1}
	for i, result := range results {
		if improves(true, result, stats.Result) {
			stats.Result = result
		}
		stats.Nodes += nodes[i]
	}

	return stats, nil
}
