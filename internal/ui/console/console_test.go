package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/player"
)

func TestConsole_ReadMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Parses a cell number", func(t *testing.T) {
		// Given: input with a cell number surrounded by spaces
		var out bytes.Buffer
		front := New(strings.NewReader("  7 \n"), &out)

		// When: a move is read for X
		cell, err := front.ReadMove(ctx, entity.NewBoard(), entity.MarkX)

		// Then: the number is returned after the prompt
		require.NoError(t, err)
		assert.Equal(t, 7, cell)
		assert.Equal(t, "X's turn. Input move (0-8): ", out.String())
	})

	t.Run("Reports unparsable input as an invalid move", func(t *testing.T) {
		front := New(strings.NewReader("center\n"), io.Discard)

		_, err := front.ReadMove(ctx, entity.NewBoard(), entity.MarkO)

		assert.ErrorIs(t, err, apperror.ErrInvalidMove)
	})

	t.Run("Reports end of input as a quit", func(t *testing.T) {
		front := New(strings.NewReader(""), io.Discard)

		_, err := front.ReadMove(ctx, entity.NewBoard(), entity.MarkO)

		assert.ErrorIs(t, err, apperror.ErrQuit)
	})

	t.Run("Gives up on a canceled context", func(t *testing.T) {
		reader, writer := io.Pipe()
		t.Cleanup(func() { _ = writer.Close() })

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := New(reader, io.Discard).ReadMove(canceled, entity.NewBoard(), entity.MarkX)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestConsole_HumanPlayer(t *testing.T) {
	// Given: a human typing garbage, a taken cell and then a free one
	board := entity.NewBoard()
	require.True(t, board.ApplyMove(4, entity.MarkO))

	var out bytes.Buffer
	human := player.NewHumanPlayer(entity.MarkX, New(strings.NewReader("abc\n4\n5\n"), &out))

	// When: the human is asked for a move
	cell, err := human.GetMove(context.Background(), board)

	// Then: the free cell is played after two warnings
	require.NoError(t, err)
	assert.Equal(t, 5, cell)
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid square. Try again."))
	assert.Equal(t, 3, strings.Count(out.String(), "X's turn. Input move (0-8): "))
}

func TestConsole_ShowBoard(t *testing.T) {
	var out bytes.Buffer
	board := entity.NewBoard()
	require.True(t, board.ApplyMove(0, entity.MarkX))

	New(strings.NewReader(""), &out).ShowBoard(board)

	assert.Equal(t, "| X |   |   |\n|   |   |   |\n|   |   |   |\n\n", out.String())
}

func TestConsole_ShowOutcome(t *testing.T) {
	t.Run("With a tally", func(t *testing.T) {
		var out bytes.Buffer

		New(strings.NewReader(""), &out).ShowOutcome("It's a tie!", &entity.Score{Human: 0, Bot: 2, Tie: 1})

		assert.Equal(t, "It's a tie!\nScore - you: 0, computer: 2, ties: 1\n", out.String())
	})

	t.Run("Without a tally", func(t *testing.T) {
		var out bytes.Buffer

		New(strings.NewReader(""), &out).ShowOutcome("Computer wins!", nil)

		assert.Equal(t, "Computer wins!\n", out.String())
	})
}

func TestConsole_AskReplay(t *testing.T) {
	ctx := context.Background()

	t.Run("Accepts yes after a bad answer", func(t *testing.T) {
		var out bytes.Buffer
		front := New(strings.NewReader("maybe\nYES\n"), &out)

		again, err := front.AskReplay(ctx)

		require.NoError(t, err)
		assert.True(t, again)
		assert.Contains(t, out.String(), "Please answer y or n.")
	})

	t.Run("Declines on n", func(t *testing.T) {
		again, err := New(strings.NewReader("n\n"), io.Discard).AskReplay(ctx)

		require.NoError(t, err)
		assert.False(t, again)
	})

	t.Run("Quits at end of input", func(t *testing.T) {
		_, err := New(strings.NewReader(""), io.Discard).AskReplay(ctx)

		assert.ErrorIs(t, err, apperror.ErrQuit)
	})
}
