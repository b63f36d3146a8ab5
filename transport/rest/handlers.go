package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-web/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-web/internal/config"
	"github.com/rocketscienceinc/tictactoe-web/internal/entity"
)

const moveFormField = "player_game_move"

type GameHandler interface {
	GetGame(w http.ResponseWriter, r *http.Request)
	SubmitMove(w http.ResponseWriter, r *http.Request)
}

type gameUseCaseDep interface {
	GetOrCreateGame(ctx context.Context, sessionID string) (*entity.Game, error)
	SubmitMove(ctx context.Context, sessionID, token string) (*entity.Game, error)
}

type gameHandler struct {
	logger  *slog.Logger
	session *sessionCookie
	game    gameUseCaseDep
}

func NewGameHandler(logger *slog.Logger, conf config.Session, game gameUseCaseDep) GameHandler {
	return &gameHandler{
		logger: logger.With("component", "game_handler"),
		session: &sessionCookie{
			name:   conf.CookieName,
			ttl:    conf.TTL,
			secure: conf.Secure,
		},
		game: game,
	}
}

// GetGame - renders the session's board, starting a game on the first visit.
func (that *gameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "GetGame")

	sessionID := that.session.sessionID(w, r, log)

	game, err := that.game.GetOrCreateGame(r.Context(), sessionID)
	if err != nil {
		log.Error("failed to get game", "session", sessionID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	that.render(w, log, newGameView(game, ""))
}

// SubmitMove - applies the posted move or reset and renders the outcome.
func (that *gameHandler) SubmitMove(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "SubmitMove")

	sessionID := that.session.sessionID(w, r, log)

	if err := r.ParseForm(); err != nil {
		log.Error("failed to parse form", "error", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	game, err := that.game.SubmitMove(r.Context(), sessionID, r.PostForm.Get(moveFormField))
	switch {
	case err == nil, errors.Is(err, apperror.ErrGameFinished):
		that.render(w, log, newGameView(game, ""))
	case errors.Is(err, apperror.ErrUnrecognisedMove), errors.Is(err, apperror.ErrInvalidMove):
		that.render(w, log, newGameView(game, userMessage(err)))
	default:
		log.Error("failed to submit move", "session", sessionID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (that *gameHandler) render(w http.ResponseWriter, log *slog.Logger, view gameView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := gameTemplate.Execute(w, view); err != nil {
		log.Error("failed to render game page", "error", err)
	}
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, apperror.ErrUnrecognisedMove):
		return apperror.ErrUnrecognisedMove.Error()
	case errors.Is(err, apperror.ErrInvalidMove):
		return apperror.ErrInvalidMove.Error()
	default:
		return ""
	}
}

func ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}
