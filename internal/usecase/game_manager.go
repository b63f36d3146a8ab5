package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-web/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-web/internal/entity"
	"github.com/rocketscienceinc/tictactoe-web/internal/repository"
)

const resetToken = "r"

type gameRepoDep interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type gameControllerDep interface {
	MakeTurn(ctx context.Context, game *entity.Game, move int) error
}

type GameManager struct {
	logger         *slog.Logger
	gameRepo       gameRepoDep
	gameController gameControllerDep
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepoDep, gameController gameControllerDep) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo:       gameRepo,
		gameController: gameController,
	}
}

// GetOrCreateGame - the session's game, starting a fresh one if the session has none.
func (that *GameManager) GetOrCreateGame(ctx context.Context, sessionID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, sessionID)
	if err == nil {
		return game, nil
	}

	if !errors.Is(err, repository.ErrGameNotFound) {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	game = entity.NewGame(sessionID)
	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	that.logger.Info("new game started", "gameID", sessionID)

	return game, nil
}

// ResetGame - discards the session's game, finished or not, and starts a new one.
func (that *GameManager) ResetGame(ctx context.Context, sessionID string) (*entity.Game, error) {
	if err := that.gameRepo.DeleteByID(ctx, sessionID); err != nil && !errors.Is(err, repository.ErrGameNotFound) {
		return nil, fmt.Errorf("failed to delete game: %w", err)
	}

	game := entity.NewGame(sessionID)
	if err := that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	that.logger.Info("game reset", "gameID", sessionID)

	return game, nil
}

// SubmitMove - handles a raw move token from the player: "r" resets, an integer plays that space.
// Rejections that leave the game as it was (apperror.ErrUnrecognisedMove, apperror.ErrInvalidMove,
// apperror.ErrGameFinished) are returned together with the current game.
func (that *GameManager) SubmitMove(ctx context.Context, sessionID, token string) (*entity.Game, error) {
	log := that.logger.With("method", "SubmitMove", "gameID", sessionID)

	token = strings.TrimSpace(token)
	if strings.EqualFold(token, resetToken) {
		return that.ResetGame(ctx, sessionID)
	}

	game, err := that.GetOrCreateGame(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if game.IsFinished() {
		return game, apperror.ErrGameFinished
	}

	move, err := strconv.Atoi(token)
	if errors.Is(err, strconv.ErrRange) {
		// an integer, just not one on the board
		log.Debug("rejected move", "token", token)
		return game, apperror.ErrInvalidMove
	}

	if err != nil {
		log.Debug("unrecognised move", "token", token)
		return game, apperror.ErrUnrecognisedMove
	}

	if err = that.gameController.MakeTurn(ctx, game, move); err != nil {
		if errors.Is(err, apperror.ErrInvalidMove) {
			log.Debug("rejected move", "move", move)
			return game, apperror.ErrInvalidMove
		}

		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
