package service

import (
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-web/internal/entity"
)

type randomSource interface {
	Intn(n int) int
}

type BotService interface {
	ChooseMove(board entity.Board) (int, bool)
}

type botService struct {
	logger *slog.Logger
	random randomSource
}

// NewBotService - opponent that wins if it can, blocks if it must, prefers the center, otherwise plays at random.
func NewBotService(logger *slog.Logger, random randomSource) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
		random: random,
	}
}

// ChooseMove - picks the opponent's move. Reports false when the board has no moves left.
// Only one ply is looked ahead, so forks set up by the player are not defended.
func (that *botService) ChooseMove(board entity.Board) (int, bool) {
	log := that.logger.With("method", "ChooseMove")

	availableMoves := board.AvailableMoves()
	if len(availableMoves) == 0 {
		return 0, false
	}

	if move, ok := findWinningMove(board, availableMoves, entity.PlayerO); ok {
		log.Debug("taking winning move", "move", move)
		return move, true
	}

	if move, ok := findWinningMove(board, availableMoves, entity.PlayerX); ok {
		log.Debug("blocking player", "move", move)
		return move, true
	}

	if board.IsAvailable(entity.CenterMove) {
		log.Debug("taking the center")
		return entity.CenterMove, true
	}

	move := availableMoves[that.random.Intn(len(availableMoves))]
	log.Debug("playing random move", "move", move, "available", availableMoves)

	return move, true
}

// findWinningMove - first move, in the given order, that completes a line for symbol.
func findWinningMove(board entity.Board, availableMoves []int, symbol string) (int, bool) {
	for _, move := range availableMoves {
		candidate := board
		if err := candidate.Place(move, symbol); err != nil {
			continue
		}

		if candidate.HasWinner(symbol) {
			return move, true
		}
	}

	return 0, false
}
