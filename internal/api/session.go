package api

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/qa-forum-api/internal/service"
	"github.com/rs/zerolog"
)

// Session keys. authEmailKey holds the logged-in account's email;
// viewedEmailKey is set when an admin opens another user's profile so that
// subsequent content operations act on that user's behalf.
const (
	authEmailKey   = "email"
	viewedEmailKey = "user_email"
)

// requireSession rejects requests that carry no authenticated session
func requireSession(c *gin.Context) {
	if sessionEmail(c) == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, "error")
		return
	}
	c.Next()
}

// sessionEmail returns the authenticated account's email, or ""
func sessionEmail(c *gin.Context) string {
	if email, ok := sessions.Default(c).Get(authEmailKey).(string); ok {
		return email
	}
	return ""
}

// actingEmail resolves the email a content operation should act as: the
// viewed user's email when an admin is on another user's profile, the
// session owner's otherwise. Only operations on existing content honor the
// viewed-user key; fetching one's own profile and posting new questions or
// answers always act as the session owner.
func actingEmail(c *gin.Context) string {
	session := sessions.Default(c)
	if email, ok := session.Get(viewedEmailKey).(string); ok && email != "" {
		return email
	}
	return sessionEmail(c)
}

func setSessionEmail(c *gin.Context, email string) error {
	session := sessions.Default(c)
	session.Set(authEmailKey, email)
	session.Delete(viewedEmailKey)
	return session.Save()
}

func setViewedEmail(c *gin.Context, email string) error {
	session := sessions.Default(c)
	session.Set(viewedEmailKey, email)
	return session.Save()
}

func clearSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	return session.Save()
}

// respondError translates a typed operation error into the legacy response
// string the UI matches on. A missing entity yields an empty 200 body,
// which the UI treats as "no data"; unexpected failures are logged and
// surface as the generic "error" payload.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		log.Warn().Str("path", c.Request.URL.Path).Msg("Entity not found")
		c.Status(http.StatusOK)
	case errors.Is(err, service.ErrDuplicateEmail), errors.Is(err, service.ErrEmailNotFound):
		c.JSON(http.StatusOK, "email")
	case errors.Is(err, service.ErrPasswordMismatch):
		c.JSON(http.StatusOK, "password")
	case errors.Is(err, service.ErrInsufficientReputation):
		c.JSON(http.StatusOK, "reputation")
	case errors.Is(err, service.ErrDuplicateTagName), errors.Is(err, service.ErrTagInUse):
		c.JSON(http.StatusOK, "tag")
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Operation failed")
		c.JSON(http.StatusOK, "error")
	}
}
