package tictactoe

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-web/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-web/internal/entity"
)

type botDep interface {
	ChooseMove(board entity.Board) (int, bool)
}

// GameController - drives a game through the player's move and the opponent's reply.
type GameController struct {
	logger        *slog.Logger
	bot           botDep
	thinkingDelay time.Duration
}

func NewGameController(logger *slog.Logger, bot botDep, thinkingDelay time.Duration) *GameController {
	return &GameController{
		logger:        logger.With("component", "game_controller"),
		bot:           bot,
		thinkingDelay: thinkingDelay,
	}
}

// MakeTurn - applies the player's move and, unless that ends the game, the opponent's reply.
// On error the game is left exactly as it was.
func (that *GameController) MakeTurn(ctx context.Context, game *entity.Game, move int) error {
	log := that.logger.With("method", "MakeTurn", "gameID", game.ID)

	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	// work on a copy so that a cancelled pause leaves the game untouched
	board := game.Board

	if err := board.Place(move, entity.PlayerX); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	if board.HasWinner(entity.PlayerX) {
		game.Board = board
		game.Winner = entity.WinnerPlayer
		log.Info("player won", "move", move)

		return nil
	}

	if err := that.think(ctx); err != nil {
		return fmt.Errorf("opponent interrupted: %w", err)
	}

	opponentMove, ok := that.bot.ChooseMove(board)
	if !ok {
		game.Board = board
		game.Winner = entity.WinnerDraw
		log.Info("game drawn", "move", move)

		return nil
	}

	if err := board.Place(opponentMove, entity.PlayerO); err != nil {
		return fmt.Errorf("opponent made an invalid turn: %w", err)
	}

	game.Board = board
	game.History = append(game.History, entity.Turn{PlayerMove: move, OpponentMove: opponentMove})

	if board.HasWinner(entity.PlayerO) {
		game.Winner = entity.WinnerOpponent
		log.Info("opponent won", "move", opponentMove)
	}

	log.Debug("turn applied", "move", move, "reply", opponentMove, "status", game.Status())

	return nil
}

// think - cosmetic pause before the opponent replies.
func (that *GameController) think(ctx context.Context) error {
	if that.thinkingDelay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(that.thinkingDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
