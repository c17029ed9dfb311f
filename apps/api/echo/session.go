package echoapi

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/wcccd/mihistory/core/session"
	memstore "github.com/wcccd/mihistory/storage/memory"
)

const (
	sessionCookieName = "sessionid"
	sessionContextKey = "app.session"
)

var errSessNotFoundInCtx = errors.New("session object not found in echo.Context")

// sessionMiddleware resolves the caller's session from the sessionid cookie,
// creating a fresh one (and setting the cookie) when absent or expired.
// Sessions are anonymous; the cookie is the only handle.
func sessionMiddleware(sessions *memstore.SessionRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			var id uuid.UUID
			if cookie, err := ctx.Cookie(sessionCookieName); err == nil {
				id, _ = uuid.Parse(cookie.Value) // zero id on garbage -> new session
			}

			sess := sessions.GetOrCreate(id)
			if sess.ID != id {
				ctx.SetCookie(&http.Cookie{
					Name:     sessionCookieName,
					Value:    sess.ID.String(),
					Path:     "/",
					Expires:  time.Now().Add(365 * 24 * time.Hour),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			ctx.Set(sessionContextKey, sess)
			return next(ctx)
		}
	}
}

func getContextSession(ctx echo.Context) (*session.Session, error) {
	sess, ok := ctx.Get(sessionContextKey).(*session.Session)
	if !ok {
		return nil, errSessNotFoundInCtx
	}
	return sess, nil
}
