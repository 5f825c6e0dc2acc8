package entity

import "strings"

// BoardSize is the number of cells on the 3x3 board.
const BoardSize = 9

const boardSide = 3

type Mark string

const (
	Empty Mark = ""
	MarkX Mark = "X"
	MarkO Mark = "O"
)

// Opponent returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return Empty
	}
}

func (that Mark) IsPlayer() bool {
	return that == MarkX || that == MarkO
}

type OutcomeKind int

const (
	InProgress OutcomeKind = iota
	Win
	Tie
)

func (that OutcomeKind) String() string {
	switch that {
	case Win:
		return "win"
	case Tie:
		return "tie"
	default:
		return "in progress"
	}
}

// Outcome classifies a board. Winner is set only when Kind is Win.
type Outcome struct {
	Kind   OutcomeKind
	Winner Mark
}

func (that Outcome) IsOver() bool {
	return that.Kind != InProgress
}

func (that Outcome) IsWin(mark Mark) bool {
	return that.Kind == Win && that.Winner == mark
}

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// linesByCell holds, for every cell, the lines that pass through it:
// its row, its column and whichever diagonals contain it.
var linesByCell = func() [BoardSize][][3]int {
	var lines [BoardSize][][3]int

	for index := range BoardSize {
		row, col := Row(index), Col(index)

		lines[index] = append(lines[index],
			[3]int{row * boardSide, row*boardSide + 1, row*boardSide + 2},
			[3]int{col, col + boardSide, col + 2*boardSide},
		)

		switch index {
		case 0, 8:
			lines[index] = append(lines[index], [3]int{0, 4, 8})
		case 2, 6:
			lines[index] = append(lines[index], [3]int{2, 4, 6})
		case 4:
			lines[index] = append(lines[index], [3]int{0, 4, 8}, [3]int{2, 4, 6})
		}
	}

	return lines
}()

func Row(index int) int {
	return index / boardSide
}

func Col(index int) int {
	return index % boardSide
}

func IsValidCell(index int) bool {
	return index >= 0 && index < BoardSize
}

// Board is the mutable 3x3 grid. The outcome is cached and recomputed on
// every ApplyMove from the lines through the last placed cell, so a Board
// must be built move by move or through BoardFromCells.
//
// A Board is not safe for concurrent use.
type Board struct {
	cells   [BoardSize]Mark
	outcome Outcome
}

func NewBoard() *Board {
	return &Board{}
}

// BoardFromCells builds a board from an arbitrary grid. The outcome is
// derived from a scan of every line since no last move is known.
func BoardFromCells(cells [BoardSize]Mark) *Board {
	board := &Board{cells: cells}
	board.outcome = board.scanOutcome()

	return board
}

func (that *Board) Cell(index int) Mark {
	if !IsValidCell(index) {
		return Empty
	}

	return that.cells[index]
}

func (that *Board) Cells() [BoardSize]Mark {
	return that.cells
}

func (that *Board) Outcome() Outcome {
	return that.outcome
}

// AvailableMoves returns the empty cells in ascending order.
func (that *Board) AvailableMoves() []int {
	moves := make([]int, 0, BoardSize)
	for index, cell := range that.cells {
		if cell == Empty {
			moves = append(moves, index)
		}
	}

	return moves
}

func (that *Board) EmptyCount() int {
	count := 0
	for _, cell := range that.cells {
		if cell == Empty {
			count++
		}
	}

	return count
}

func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == Empty {
			return false
		}
	}

	return true
}

// ApplyMove places mark at index. It reports false and leaves the board
// untouched when the index is out of range, the cell is taken or mark is
// not a player mark.
func (that *Board) ApplyMove(index int, mark Mark) bool {
	if !IsValidCell(index) || !mark.IsPlayer() || that.cells[index] != Empty {
		return false
	}

	that.cells[index] = mark
	that.outcome = that.outcomeAfter(index, mark)

	return true
}

// UndoMove clears the cell at index and resets the outcome to InProgress.
// The caller must only undo cells it placed itself.
func (that *Board) UndoMove(index int) {
	if !IsValidCell(index) {
		return
	}

	that.cells[index] = Empty
	that.outcome = Outcome{}
}

func (that *Board) Clone() *Board {
	clone := *that
	return &clone
}

func (that *Board) outcomeAfter(index int, mark Mark) Outcome {
	for _, line := range linesByCell[index] {
		if that.lineOf(line, mark) {
			return Outcome{Kind: Win, Winner: mark}
		}
	}

	if that.IsFull() {
		return Outcome{Kind: Tie}
	}

	return Outcome{}
}

func (that *Board) scanOutcome() Outcome {
	for _, combo := range WinCombos {
		mark := that.cells[combo[0]]
		if mark != Empty && that.lineOf(combo, mark) {
			return Outcome{Kind: Win, Winner: mark}
		}
	}

	if that.IsFull() {
		return Outcome{Kind: Tie}
	}

	return Outcome{}
}

func (that *Board) lineOf(line [3]int, mark Mark) bool {
	return that.cells[line[0]] == mark && that.cells[line[1]] == mark && that.cells[line[2]] == mark
}

// String renders the board one row per line, e.g. "| X | O |   |".
func (that *Board) String() string {
	var builder strings.Builder

	for row := range boardSide {
		builder.WriteString("|")
		for col := range boardSide {
			cell := that.cells[row*boardSide+col]
			if cell == Empty {
				cell = " "
			}
			builder.WriteString(" " + string(cell) + " |")
		}
		builder.WriteString("\n")
	}

	return builder.String()
}
