package search

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// NoMove marks a Result produced at a terminal position.
const NoMove = -1

// Result is the outcome of a search: the move to play and its score from
// the maximizing mark's point of view. Faster wins score higher and slower
// losses score higher than faster ones.
type Result struct {
	Index int
	Score int
}

// Minimax searches the whole remaining game tree with playerToMove on move
// and returns the best move for maximizingFor. The board is mutated during
// the search and restored before returning.
func Minimax(board *entity.Board, playerToMove, maximizingFor entity.Mark) Result {
	s := &searcher{board: board, maximizingFor: maximizingFor}
	return s.minimax(playerToMove)
}

type searcher struct {
	board         *entity.Board
	maximizingFor entity.Mark
	nodes         int
}

func (that *searcher) minimax(playerToMove entity.Mark) Result {
	that.nodes++

	opponent := playerToMove.Opponent()

	if that.board.Outcome().IsWin(opponent) {
		score := that.board.EmptyCount() + 1
		if opponent != that.maximizingFor {
			score = -score
		}

		return Result{Index: NoMove, Score: score}
	}

	if that.board.IsFull() {
		return Result{Index: NoMove, Score: 0}
	}

	best := worst(playerToMove == that.maximizingFor)

	for _, index := range that.board.AvailableMoves() {
		that.board.ApplyMove(index, playerToMove)
		result := that.minimax(opponent)
		that.board.UndoMove(index)

		result.Index = index
		if improves(playerToMove == that.maximizingFor, result, best) {
			best = result
		}
	}

	return best
}

func worst(maximizing bool) Result {
	if maximizing {
		return Result{Index: NoMove, Score: math.MinInt}
	}

	return Result{Index: NoMove, Score: math.MaxInt}
}

// improves uses strict comparison so the earliest of equal moves is kept.
func improves(maximizing bool, candidate, best Result) bool {
	if maximizing {
		return candidate.Score > best.Score
	}

	return candidate.Score < best.Score
}
