package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qa-forum-api/internal/service"
	"github.com/qa-forum-api/internal/validation"
	"github.com/rs/zerolog"
)

// AccountHandler handles registration, login and profile requests
type AccountHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(services *service.Services, log zerolog.Logger) *AccountHandler {
	return &AccountHandler{
		services: services,
		log:      log.With().Str("handler", "account").Logger(),
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type emailRequest struct {
	Email string `json:"email"`
}

// Register handles POST /register
func (h *AccountHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if errs := validation.ValidateRegistration(req.Username, req.Email, req.Password); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	if err := h.services.Account.Register(c.Request.Context(), req.Username, req.Email, req.Password); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, "success")
}

// Login handles POST /login. A successful login establishes the session
// cookie before the success payload goes out.
func (h *AccountHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.services.Account.Login(c.Request.Context(), req.Email, req.Password); err != nil {
		respondError(c, h.log, err)
		return
	}
	if err := setSessionEmail(c, req.Email); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, "success")
}

// Logout handles POST /logout
func (h *AccountHandler) Logout(c *gin.Context) {
	if err := clearSession(c); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, "success")
}

// GetProfile handles GET /userprofile. Always the session owner's own
// profile, even while a viewed-user email is set from ViewProfile.
func (h *AccountHandler) GetProfile(c *gin.Context) {
	profile, err := h.services.Account.GetProfile(c.Request.Context(), sessionEmail(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ViewProfile handles POST /userprofile: an admin opens another user's
// profile. The viewed email is remembered in the session so follow-up
// operations act on that user.
func (h *AccountHandler) ViewProfile(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	profile, err := h.services.Account.GetProfile(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if err := setViewedEmail(c, req.Email); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DeleteAccount handles POST /deleteaccount, cascading deletion of the
// user's tags, answers and questions. Returns the requesting admin's
// refreshed profile.
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	profile, err := h.services.Account.RemoveAccount(c.Request.Context(), req.Email, sessionEmail(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
