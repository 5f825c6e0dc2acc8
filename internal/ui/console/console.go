// Package console is a line-oriented front end reading moves from a text
// stream, one cell number per line.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type Console struct {
	out   io.Writer
	lines <-chan string
}

// New starts reading in in the background so that prompts can be abandoned
// when the context is canceled.
func New(in io.Reader, out io.Writer) *Console {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	return &Console{
		out:   out,
		lines: lines,
	}
}

func (that *Console) ReadMove(ctx context.Context, _ *entity.Board, mark entity.Mark) (int, error) {
	fmt.Fprintf(that.out, "%s's turn. Input move (0-8): ", mark)

	line, err := that.readLine(ctx)
	if err != nil {
		return 0, err
	}

	cell, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidMove, line)
	}

	return cell, nil
}

func (that *Console) ShowMessage(message string) {
	fmt.Fprintln(that.out, message)
}

func (that *Console) ShowBoard(board *entity.Board) {
	fmt.Fprintln(that.out, board.String())
}

func (that *Console) ShowOutcome(message string, score *entity.Score) {
	fmt.Fprintln(that.out, message)

	if score != nil {
		fmt.Fprintf(that.out, "Score - you: %d, computer: %d, ties: %d\n", score.Human, score.Bot, score.Tie)
	}
}

func (that *Console) AskReplay(ctx context.Context) (bool, error) {
	for {
		fmt.Fprint(that.out, "Do you want to play again? [y/n]: ")

		line, err := that.readLine(ctx)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		fmt.Fprintln(that.out, "Please answer y or n.")
	}
}

// readLine returns the next trimmed line. End of input means the player quit.
func (that *Console) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if !ok {
			return "", apperror.ErrQuit
		}

		return strings.TrimSpace(line), nil
	}
}
