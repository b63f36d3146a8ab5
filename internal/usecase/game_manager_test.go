package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-web/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-web/internal/entity"
	"github.com/rocketscienceinc/tictactoe-web/internal/repository"
	"github.com/rocketscienceinc/tictactoe-web/internal/service"
	"github.com/rocketscienceinc/tictactoe-web/internal/tictactoe"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-web/mocks/usecase"
)

var errRedisDown = errors.New("redis down")

func newTestManager(t *testing.T, gameRepo gameRepoDep) *GameManager {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bot := service.NewBotService(logger, rand.New(rand.NewSource(1))) //nolint: gosec // it's ok
	controller := tictactoe.NewGameController(logger, bot, 0)

	return NewGameManager(logger, gameRepo, controller)
}

// finishedGame - a game the opponent won on the diagonal.
func finishedGame(id string) *entity.Game {
	return &entity.Game{
		ID:      id,
		Board:   entity.Board{{"O", "X", "X"}, {"X", "O", "6"}, {"7", "8", "O"}},
		History: []entity.Turn{{PlayerMove: 2, OpponentMove: 5}, {PlayerMove: 3, OpponentMove: 1}, {PlayerMove: 4, OpponentMove: 9}},
		Winner:  entity.WinnerOpponent,
	}
}

func TestGameManager_GetOrCreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates a new game when the session has none", func(t *testing.T) {
		// Given: a repository without a game for the session
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		manager := newTestManager(t, mockGameRepo)

		mockGameRepo.EXPECT().
			GetByID(mock.Anything, "s1").
			Return(nil, repository.ErrGameNotFound).
			Once()
		mockGameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Return(nil).
			Once()

		// When: the game is requested
		game, err := manager.GetOrCreateGame(ctx, "s1")

		// Then: a fresh game is created and stored
		require.NoError(t, err)
		assert.Equal(t, entity.NewGame("s1"), game)
	})

	t.Run("Returns the existing game", func(t *testing.T) {
		existingGame := entity.NewGame("s2")
		require.NoError(t, existingGame.Board.Place(1, entity.PlayerX))

		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		manager := newTestManager(t, mockGameRepo)

		mockGameRepo.EXPECT().
			GetByID(mock.Anything, "s2").
			Return(existingGame, nil).
			Once()

		game, err := manager.GetOrCreateGame(ctx, "s2")

		require.NoError(t, err)
		assert.Same(t, existingGame, game)
		mockGameRepo.AssertNotCalled(t, "CreateOrUpdate", mock.Anything, mock.Anything)
	})

	t.Run("Returns error if storage fails", func(t *testing.T) {
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		manager := newTestManager(t, mockGameRepo)

		mockGameRepo.EXPECT().
			GetByID(mock.Anything, "s3").
			Return(nil, errRedisDown).
			Once()

		game, err := manager.GetOrCreateGame(ctx, "s3")

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, game)
	})
}

func TestGameManager_ResetGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Finished game is replaced by a fresh one", func(t *testing.T) {
		// Given: the session's stored game was won by the opponent
		stored := finishedGame("s1")
		require.True(t, stored.IsFinished())

		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		manager := newTestManager(t, mockGameRepo)

		var saved *entity.Game
		mockGameRepo.EXPECT().
			DeleteByID(mock.Anything, "s1").
			Return(nil).
			Once()
		mockGameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Run(func(_ context.Context, game *entity.Game) { saved = game }).
			Return(nil).
			Once()

		// When: the game is reset
		game, err := manager.ResetGame(ctx, "s1")

		// Then: the stored game is new and awaits a move
		require.NoError(t, err)
		assert.Equal(t, entity.NewGame("s1"), saved)
		assert.Same(t, saved, game)
		assert.Equal(t, entity.StatusAwaitingMove, game.Status())
		assert.Equal(t, entity.WinnerOpponent, stored.Winner)
	})

	t.Run("Session without a stored game still gets a new one", func(t *testing.T) {
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		manager := newTestManager(t, mockGameRepo)

		mockGameRepo.EXPECT().
			DeleteByID(mock.Anything, "s2").
			Return(repository.ErrGameNotFound).
			Once()
		mockGameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Return(nil).
			Once()

		game, err := manager.ResetGame(ctx, "s2")

		require.NoError(t, err)
		assert.Equal(t, entity.NewGame("s2"), game)
	})

	t.Run("Returns error if deleting fails", func(t *testing.T) {
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		manager := newTestManager(t, mockGameRepo)

		mockGameRepo.EXPECT().
			DeleteByID(mock.Anything, "s3").
			Return(errRedisDown).
			Once()

		game, err := manager.ResetGame(ctx, "s3")

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, game)
		mockGameRepo.AssertNotCalled(t, "CreateOrUpdate", mock.Anything, mock.Anything)
	})
}

func TestGameManager_SubmitMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Reset token restarts a played game", func(t *testing.T) {
		for _, token := range []string{"r", "R", " r "} {
			// Given: a stored game with history and a winner
			stored := finishedGame("s1")

			mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
			manager := newTestManager(t, mockGameRepo)

			var saved *entity.Game
			mockGameRepo.EXPECT().
				DeleteByID(mock.Anything, "s1").
				Return(nil).
				Once()
			mockGameRepo.EXPECT().
				CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Game")).
				Run(func(_ context.Context, game *entity.Game) { saved = game }).
				Return(nil).
				Once()

			// When: the reset token is submitted
			game, err := manager.SubmitMove(ctx, "s1", token)

			// Then: the saved game is unplayed with no history and no winner
			require.NoError(t, err)
			assert.Equal(t, entity.NewGame("s1"), saved)
			assert.Equal(t, entity.NewGame("s1"), game)
			assert.NotEqual(t, stored, game)
			mockGameRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		}
	})

	t.Run("Finished game can be played again after reset", func(t *testing.T) {
		// Given: the opponent has won the stored game
		stored := finishedGame("s1")

		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		manager := newTestManager(t, mockGameRepo)

		mockGameRepo.EXPECT().
			DeleteByID(mock.Anything, "s1").
			Run(func(_ context.Context, _ string) { stored = nil }).
			Return(nil).
			Once()
		mockGameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Run(func(_ context.Context, game *entity.Game) { stored = game }).
			Return(nil).
			Twice()
		mockGameRepo.EXPECT().
			GetByID(mock.Anything, "s1").
			RunAndReturn(func(_ context.Context, _ string) (*entity.Game, error) { return stored, nil }).
			Once()

		// When: the player resets and then takes the center
		_, err := manager.SubmitMove(ctx, "s1", "r")
		require.NoError(t, err)

		game, err := manager.SubmitMove(ctx, "s1", "5")

		// Then: the move is played on the new board
		require.NoError(t, err)
		require.Len(t, game.History, 1)
		assert.Equal(t, 5, game.History[0].PlayerMove)
		assert.Equal(t, entity.WinnerNone, game.Winner)
		assert.Len(t, game.Board.AvailableMoves(), 7)
	})

	t.Run("Non-integer token is unrecognised", func(t *testing.T) {
		// Given: a game with one turn played
		existingGame := entity.NewGame("s1")
		require.NoError(t, existingGame.Board.Place(1, entity.PlayerX))
		require.NoError(t, existingGame.Board.Place(5, entity.PlayerO))
		existingGame.History = append(existingGame.History, entity.Turn{PlayerMove: 1, OpponentMove: 5})
		before := *existingGame

		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		manager := newTestManager(t, mockGameRepo)

		mockGameRepo.EXPECT().
			GetByID(mock.Anything, "s1").
			Return(existingGame, nil).
			Once()

		// When: "abc" is submitted
		game, err := manager.SubmitMove(ctx, "s1", "abc")

		// Then: ErrUnrecognisedMove is returned and nothing is written
		require.ErrorIs(t, err, apperror.ErrUnrecognisedMove)
		assert.Equal(t, before, *game)
		mockGameRepo.AssertNotCalled(t, "CreateOrUpdate", mock.Anything, mock.Anything)
	})

	t.Run("Out of range move cannot be played", func(t *testing.T) {
		existingGame := entity.NewGame("s1")

		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		manager := newTestManager(t, mockGameRepo)

		mockGameRepo.EXPECT().
			GetByID(mock.Anything, "s1").
			Return(existingGame, nil).
			Once()

		// When: "10" is submitted
		game, err := manager.SubmitMove(ctx, "s1", "10")

		// Then: ErrInvalidMove is returned and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, entity.NewGame("s1"), game)
		mockGameRepo.AssertNotCalled(t, "CreateOrUpdate", mock.Anything, mock.Anything)
	})

	t.Run("Integer too large for an int cannot be played", func(t *testing.T) {
		for _, token := range []string{"99999999999999999999", "-99999999999999999999"} {
			existingGame := entity.NewGame("s1")

			mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
			manager := newTestManager(t, mockGameRepo)

			mockGameRepo.EXPECT().
				GetByID(mock.Anything, "s1").
				Return(existingGame, nil).
				Once()

			// When: an integer beyond the int range is submitted
			game, err := manager.SubmitMove(ctx, "s1", token)

			// Then: it is an invalid move, not an unrecognised one
			require.ErrorIs(t, err, apperror.ErrInvalidMove)
			assert.NotErrorIs(t, err, apperror.ErrUnrecognisedMove)
			assert.Equal(t, entity.NewGame("s1"), game)
			mockGameRepo.AssertNotCalled(t, "CreateOrUpdate", mock.Anything, mock.Anything)
		}
	})

	t.Run("Taken space cannot be played", func(t *testing.T) {
		existingGame := entity.NewGame("s1")
		require.NoError(t, existingGame.Board.Place(5, entity.PlayerO))

		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		manager := newTestManager(t, mockGameRepo)

		mockGameRepo.EXPECT().
			GetByID(mock.Anything, "s1").
			Return(existingGame, nil).
			Once()

		_, err := manager.SubmitMove(ctx, "s1", "5")

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		mockGameRepo.AssertNotCalled(t, "CreateOrUpdate", mock.Anything, mock.Anything)
	})

	t.Run("Valid move is played and saved", func(t *testing.T) {
		// Given: a new session
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		manager := newTestManager(t, mockGameRepo)

		mockGameRepo.EXPECT().
			GetByID(mock.Anything, "s1").
			Return(nil, repository.ErrGameNotFound).
			Once()
		mockGameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Return(nil).
			Twice()

		// When: the player takes the center
		game, err := manager.SubmitMove(ctx, "s1", "5")

		// Then: the opponent replied with one of the remaining spaces
		require.NoError(t, err)
		require.Len(t, game.History, 1)
		assert.Equal(t, 5, game.History[0].PlayerMove)
		assert.Contains(t, []int{1, 2, 3, 4, 6, 7, 8, 9}, game.History[0].OpponentMove)
		assert.Len(t, game.Board.AvailableMoves(), 7)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: X holds 1 and 2
		existingGame := &entity.Game{
			ID:      "s1",
			Board:   entity.Board{{"X", "X", "3"}, {"4", "O", "6"}, {"O", "8", "9"}},
			History: []entity.Turn{{PlayerMove: 1, OpponentMove: 5}, {PlayerMove: 2, OpponentMove: 7}},
		}

		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		manager := newTestManager(t, mockGameRepo)

		mockGameRepo.EXPECT().
			GetByID(mock.Anything, "s1").
			Return(existingGame, nil).
			Once()
		mockGameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, existingGame).
			Return(nil).
			Once()

		// When: the player plays 3
		game, err := manager.SubmitMove(ctx, "s1", "3")

		// Then: the player wins
		require.NoError(t, err)
		assert.Equal(t, entity.WinnerPlayer, game.Winner)
		assert.Equal(t, "CONGRATULATIONS, YOU WON!!", game.WinnerMessage())
		assert.Equal(t, entity.StatusGameOver, game.Status())
		assert.Len(t, game.History, 2)
	})

	t.Run("Finished game rejects moves", func(t *testing.T) {
		existingGame := &entity.Game{
			ID:     "s1",
			Board:  entity.Board{{"X", "X", "X"}, {"4", "O", "6"}, {"O", "8", "9"}},
			Winner: entity.WinnerPlayer,
		}

		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		manager := newTestManager(t, mockGameRepo)

		mockGameRepo.EXPECT().
			GetByID(mock.Anything, "s1").
			Return(existingGame, nil).
			Once()

		game, err := manager.SubmitMove(ctx, "s1", "4")

		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, entity.WinnerPlayer, game.Winner)
		mockGameRepo.AssertNotCalled(t, "CreateOrUpdate", mock.Anything, mock.Anything)
	})

	t.Run("Returns error if saving fails", func(t *testing.T) {
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		manager := newTestManager(t, mockGameRepo)

		mockGameRepo.EXPECT().
			GetByID(mock.Anything, "s1").
			Return(entity.NewGame("s1"), nil).
			Once()
		mockGameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Return(errRedisDown).
			Once()

		game, err := manager.SubmitMove(ctx, "s1", "1")

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, game)
	})
}
