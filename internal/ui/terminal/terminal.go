// Package terminal draws the board as a grid of buttons on a tcell screen.
// Cells are picked with the mouse, the 1-9 keys, or the arrows and Enter.
package terminal

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	cellWidth  = 7
	cellHeight = 3
	gap        = 1

	originX = 2
	originY = 1

	side = 3

	statusY = originY + side*(cellHeight+gap)
)

var (
	cellStyle   = tcell.StyleDefault.Background(tcell.ColorLightBlue).Foreground(tcell.ColorBlack)
	cursorStyle = cellStyle.Background(tcell.ColorYellow)
	numberStyle = cellStyle.Foreground(tcell.ColorGray)
	statusStyle = tcell.StyleDefault.Bold(true)
	hintStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}

	cells     [entity.BoardSize]entity.Mark
	cursor    int
	selecting bool
	status    string
	hint      string
}

// New takes ownership of screen and initializes it. Close must be called
// to restore the terminal.
func New(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}

	screen.EnableMouse()
	screen.Clear()

	terminal := &Terminal{
		screen: screen,
		events: make(chan tcell.Event),
		quit:   make(chan struct{}),
		cursor: 4,
	}

	go terminal.poll()

	return terminal, nil
}

func (that *Terminal) Close() {
	close(that.quit)
	that.screen.Fini()
}

func (that *Terminal) ReadMove(ctx context.Context, board *entity.Board, mark entity.Mark) (int, error) {
	that.cells = board.Cells()
	that.selecting = true
	that.hint = fmt.Sprintf("%s's turn: click a square, press 1-9 or use arrows and Enter. Esc quits.", mark)
	that.draw()

	defer func() {
		that.selecting = false
	}()

	for {
		event, err := that.nextEvent(ctx)
		if err != nil {
			return 0, err
		}

		switch event := event.(type) {
		case *tcell.EventResize:
			that.screen.Sync()
			that.draw()
		case *tcell.EventMouse:
			if event.Buttons()&tcell.Button1 == 0 {
				continue
			}

			if cell, ok := hitTest(event.Position()); ok {
				that.status = ""
				return cell, nil
			}
		case *tcell.EventKey:
			if isQuit(event) {
				return 0, apperror.ErrQuit
			}

			if cell, ok := that.handleKey(event); ok {
				that.status = ""
				return cell, nil
			}
		}
	}
}

func (that *Terminal) ShowMessage(message string) {
	that.status = message
	that.draw()
}

func (that *Terminal) ShowBoard(board *entity.Board) {
	that.cells = board.Cells()
	that.draw()
}

func (that *Terminal) ShowOutcome(message string, score *entity.Score) {
	that.status = message
	if score != nil {
		that.status += fmt.Sprintf("  You %d - Computer %d - Ties %d", score.Human, score.Bot, score.Tie)
	}

	that.hint = ""
	that.draw()
}

func (that *Terminal) AskReplay(ctx context.Context) (bool, error) {
	that.hint = "Do you want to play again? [y/n]"
	that.draw()

	for {
		event, err := that.nextEvent(ctx)
		if err != nil {
			return false, err
		}

		switch event := event.(type) {
		case *tcell.EventResize:
			that.screen.Sync()
			that.draw()
		case *tcell.EventKey:
			switch {
			case event.Key() == tcell.KeyCtrlC:
				return false, apperror.ErrQuit
			case event.Key() == tcell.KeyEscape:
				return false, nil
			case event.Key() != tcell.KeyRune:
				continue
			}

			switch event.Rune() {
			case 'y', 'Y':
				return true, nil
			case 'n', 'N':
				return false, nil
			}
		}
	}
}

// handleKey moves the cursor or picks a cell.
func (that *Terminal) handleKey(event *tcell.EventKey) (int, bool) {
	row, col := entity.Row(that.cursor), entity.Col(that.cursor)

	switch event.Key() {
	case tcell.KeyEnter:
		return that.cursor, true
	case tcell.KeyUp:
		row = (row + side - 1) % side
	case tcell.KeyDown:
		row = (row + 1) % side
	case tcell.KeyLeft:
		col = (col + side - 1) % side
	case tcell.KeyRight:
		col = (col + 1) % side
	case tcell.KeyRune:
		switch r := event.Rune(); {
		case r >= '1' && r <= '9':
			return int(r - '1'), true
		case r == ' ':
			return that.cursor, true
		}

		return 0, false
	default:
		return 0, false
	}

	that.cursor = row*side + col
	that.draw()

	return 0, false
}

func (that *Terminal) draw() {
	that.screen.Clear()

	for index, mark := range that.cells {
		x, y := cellOrigin(index)

		style := cellStyle
		if that.selecting && index == that.cursor {
			style = cursorStyle
		}

		for dy := range cellHeight {
			for dx := range cellWidth {
				that.screen.SetContent(x+dx, y+dy, ' ', nil, style)
			}
		}

		label, labelStyle := string(mark), style.Bold(true)
		if mark == entity.Empty {
			label, labelStyle = strconv.Itoa(index+1), numberStyle
			if that.selecting && index == that.cursor {
				labelStyle = cursorStyle.Foreground(tcell.ColorGray)
			}
		}

		that.drawText(x+cellWidth/2, y+cellHeight/2, labelStyle, label)
	}

	that.drawText(originX, statusY, statusStyle, that.status)
	that.drawText(originX, statusY+1, hintStyle, that.hint)

	that.screen.Show()
}

func (that *Terminal) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		that.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (that *Terminal) poll() {
	defer close(that.events)

	for {
		event := that.screen.PollEvent()
		if event == nil {
			return
		}

		select {
		case that.events <- event:
		case <-that.quit:
			return
		}
	}
}

// nextEvent waits for input. A closed screen counts as the player quitting.
func (that *Terminal) nextEvent(ctx context.Context) (tcell.Event, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case event, ok := <-that.events:
		if !ok {
			return nil, apperror.ErrQuit
		}

		return event, nil
	}
}

func isQuit(event *tcell.EventKey) bool {
	return event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyCtrlC
}

func cellOrigin(index int) (int, int) {
	return originX + entity.Col(index)*(cellWidth+gap), originY + entity.Row(index)*(cellHeight+gap)
}

// hitTest maps screen coordinates to the cell drawn there. Gaps between
// cells do not count.
func hitTest(x, y int) (int, bool) {
	x, y = x-originX, y-originY
	if x < 0 || y < 0 {
		return 0, false
	}

	col, dx := x/(cellWidth+gap), x%(cellWidth+gap)
	row, dy := y/(cellHeight+gap), y%(cellHeight+gap)

	if col >= side || row >= side || dx >= cellWidth || dy >= cellHeight {
		return 0, false
	}

	return row*side + col, true
}
