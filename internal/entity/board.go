package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-web/internal/apperror"
)

const (
	PlayerX = "X"
	PlayerO = "O"

	boardSize = 3
	cellCount = boardSize * boardSize

	CenterMove = 5
)

// Board - 3x3 grid in row-major order. An unplayed cell holds its move label ("1".."9").
type Board [boardSize][boardSize]string

func NewBoard() Board {
	var board Board
	for move := 1; move <= cellCount; move++ {
		row, col := CoordinatesFor(move)
		board[row][col] = strconv.Itoa(move)
	}

	return board
}

// CoordinatesFor - maps a move 1..9 to its row and column. Panics outside that range.
func CoordinatesFor(move int) (int, int) {
	if !IsMoveInRange(move) {
		panic(fmt.Sprintf("move %d is outside 1..%d", move, cellCount))
	}

	return (move - 1) / boardSize, (move - 1) % boardSize
}

func IsMoveInRange(move int) bool {
	return move >= 1 && move <= cellCount
}

// AvailableMoves - unplayed positions in row-major scan order.
func (that Board) AvailableMoves() []int {
	moves := make([]int, 0, cellCount)
	for move := 1; move <= cellCount; move++ {
		if that.IsAvailable(move) {
			moves = append(moves, move)
		}
	}

	return moves
}

func (that Board) IsAvailable(move int) bool {
	if !IsMoveInRange(move) {
		return false
	}

	row, col := CoordinatesFor(move)
	return that[row][col] == strconv.Itoa(move)
}

func (that *Board) Place(move int, symbol string) error {
	mustBeSymbol(symbol)

	if !that.IsAvailable(move) {
		return fmt.Errorf("%w: move %d", apperror.ErrInvalidMove, move)
	}

	row, col := CoordinatesFor(move)
	that[row][col] = symbol

	return nil
}

// HasWinner - reports whether symbol fills a row, a column or either diagonal.
func (that Board) HasWinner(symbol string) bool {
	mustBeSymbol(symbol)

	for row := 0; row < boardSize; row++ {
		if that.lineHolds(symbol, func(i int) string { return that[row][i] }) {
			return true
		}
	}

	for col := 0; col < boardSize; col++ {
		if that.lineHolds(symbol, func(i int) string { return that[i][col] }) {
			return true
		}
	}

	if that.lineHolds(symbol, func(i int) string { return that[i][i] }) {
		return true
	}

	return that.lineHolds(symbol, func(i int) string { return that[i][boardSize-1-i] })
}

// Rows - each row rendered as its cells joined by " | ".
func (that Board) Rows() []string {
	rows := make([]string, 0, boardSize)
	for _, row := range that {
		rows = append(rows, strings.Join(row[:], " | "))
	}

	return rows
}

func (that Board) lineHolds(symbol string, cellAt func(i int) string) bool {
	for i := 0; i < boardSize; i++ {
		if cellAt(i) != symbol {
			return false
		}
	}

	return true
}

func mustBeSymbol(symbol string) {
	if symbol != PlayerX && symbol != PlayerO {
		panic(fmt.Sprintf("unknown symbol %q", symbol))
	}
}
