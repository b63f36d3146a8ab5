package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/tictactoe-web/internal/pkg"
)

type sessionCookie struct {
	name   string
	ttl    time.Duration
	secure bool
}

// sessionID - the browser's session ID, issuing a new cookie when it has none or an unusable one.
func (that *sessionCookie) sessionID(writer http.ResponseWriter, req *http.Request, log *slog.Logger) string {
	cookie, err := req.Cookie(that.name)
	if err == nil && pkg.IsValidSessionID(cookie.Value) {
		return cookie.Value
	}

	id := pkg.GenerateNewSessionID()
	http.SetCookie(writer, &http.Cookie{
		Name:     that.name,
		Value:    id,
		Path:     "/",
		Expires:  time.Now().Add(that.ttl),
		MaxAge:   int(that.ttl.Seconds()),
		HttpOnly: true,
		Secure:   that.secure,
		SameSite: http.SameSiteLaxMode,
	})
	log.Info("session cookie not found, new one created", "session", id)

	return id
}
