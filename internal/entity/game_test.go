package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// Given: a new game where the human plays O
	game := NewGame(MarkO)

	// Then: X moves first and the bot holds X
	assert.Equal(t, MarkX, game.Turn)
	assert.Equal(t, MarkO, game.HumanMark)
	assert.Equal(t, MarkX, game.BotMark)
	assert.True(t, game.IsOngoing())
	assert.False(t, game.IsFinished())
	assert.Equal(t, BoardSize, game.Board.EmptyCount())
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		// Given: A new game
		game := NewGame(MarkX)

		// When: Player X makes a valid turn
		err := game.MakeTurn(MarkX, 0)
		require.NoError(t, err)

		// Then: The board holds the mark and the turn switches
		assert.Equal(t, MarkX, game.Board.Cell(0))
		assert.Equal(t, MarkO, game.Turn)
		assert.Equal(t, StatusOngoing, game.Status)
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		// Given: A game where cell 0 is occupied by Player X
		game := NewGame(MarkX)
		require.NoError(t, game.MakeTurn(MarkX, 0))

		// When: Player O tries to make a move to the same cell
		err := game.MakeTurn(MarkO, 0)

		// Then: An ErrCellOccupied error should be returned
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		// And: The game state should remain unchanged
		assert.Equal(t, MarkO, game.Turn)
		assert.Equal(t, 8, game.Board.EmptyCount())
	})

	t.Run("Error on Playing Out of Turn", func(t *testing.T) {
		// Given: A new game where it's Player X's turn
		game := NewGame(MarkX)

		// When: Player O tries to make a move
		err := game.MakeTurn(MarkO, 1)

		// Then: An ErrNotYourTurn error should be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, BoardSize, game.Board.EmptyCount())
	})

	t.Run("Error on Invalid Cell Index (Greater than Range)", func(t *testing.T) {
		game := NewGame(MarkX)

		err := game.MakeTurn(MarkX, 20)

		assert.ErrorIs(t, err, ErrInvalidCell)
	})

	t.Run("Error on Invalid Cell Index (Negative)", func(t *testing.T) {
		game := NewGame(MarkX)

		err := game.MakeTurn(MarkX, -1)

		assert.ErrorIs(t, err, ErrInvalidCell)
	})

	t.Run("Finishes on a win", func(t *testing.T) {
		// Given: a game one move from an X row
		game := NewGame(MarkX)
		for _, cell := range []int{0, 3, 1, 4} {
			require.NoError(t, game.MakeTurn(game.Turn, cell))
		}

		// When: X completes the row
		require.NoError(t, game.MakeTurn(MarkX, 2))

		// Then: the game is finished and the human won
		assert.True(t, game.IsFinished())
		assert.Equal(t, Empty, game.Turn)

		result, err := game.Result()
		require.NoError(t, err)
		assert.Equal(t, ResultHuman, result)

		// And: further turns are refused
		assert.ErrorIs(t, game.MakeTurn(MarkO, 5), apperror.ErrGameFinished)
	})

	t.Run("Finishes on a tie", func(t *testing.T) {
		game := NewGame(MarkO)
		for _, cell := range []int{0, 1, 2, 4, 3, 5, 7, 6, 8} {
			require.NoError(t, game.MakeTurn(game.Turn, cell))
		}

		assert.True(t, game.IsFinished())

		result, err := game.Result()
		require.NoError(t, err)
		assert.Equal(t, ResultTie, result)
	})
}

func TestGame_Result(t *testing.T) {
	t.Run("Bot win", func(t *testing.T) {
		// Given: the bot holds X and completes the left column
		game := NewGame(MarkO)
		for _, cell := range []int{0, 1, 3, 2, 6} {
			require.NoError(t, game.MakeTurn(game.Turn, cell))
		}

		// Then: the result is a bot win
		result, err := game.Result()
		require.NoError(t, err)
		assert.Equal(t, ResultBot, result)
		assert.Equal(t, "Computer wins!", result.Message())
	})

	t.Run("Unfinished game has no result", func(t *testing.T) {
		game := NewGame(MarkX)

		_, err := game.Result()

		assert.ErrorIs(t, err, ErrGameNotFinished)
	})
}

func TestGetRandomMarks(t *testing.T) {
	for range 20 {
		human, bot := GetRandomMarks()

		assert.True(t, human.IsPlayer())
		assert.Equal(t, human.Opponent(), bot)
	}
}

func TestScore_Add(t *testing.T) {
	var score Score

	score.Add(ResultHuman)
	score.Add(ResultTie)
	score.Add(ResultTie)
	score.Add(Result("bogus"))

	assert.Equal(t, Score{Human: 1, Tie: 2}, score)
	assert.Equal(t, 3, score.Total())
}
