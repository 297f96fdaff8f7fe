package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dmorgachev/ce-tracker/internal/config"
	"github.com/dmorgachev/ce-tracker/internal/dto"
	"github.com/dmorgachev/ce-tracker/internal/service"
	"github.com/dmorgachev/ce-tracker/internal/session"
)

// AuthHandler handles signup, login and logout. The session lives entirely
// in an http-only cookie holding the provider token pair.
type AuthHandler struct {
	authService service.AuthService
	cookies     config.SessionConfig
	logger      *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService, cookies config.SessionConfig, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookies:     cookies,
		logger:      logger,
	}
}

// Signup registers a new account with the identity provider.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Validation failed",
			Message: err.Error(),
		})
		return
	}

	if err := h.authService.SignUp(c.Request.Context(), req.Email, req.Password); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessResponse{
		Message: "Account created, you can sign in now",
	})
}

// Login exchanges credentials for a provider token pair and stores it in the
// session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Validation failed",
			Message: err.Error(),
		})
		return
	}

	pair, err := h.authService.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	credential, err := session.EncodeCredential(*pair)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.setSessionCookie(c, credential, int(h.cookies.MaxAge.Duration.Seconds()))

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Logged in",
	})
}

// Logout revokes the current access token and clears the cookie. A missing
// or malformed cookie still clears cleanly.
func (h *AuthHandler) Logout(c *gin.Context) {
	if raw, err := c.Cookie(h.cookies.CookieName); err == nil {
		if pair, decodeErr := session.DecodeCredential(raw); decodeErr == nil {
			if err := h.authService.SignOut(c.Request.Context(), pair.AccessToken); err != nil {
				respondError(c, h.logger, err)
				return
			}
		}
	}

	h.setSessionCookie(c, "", -1)

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Logged out",
	})
}

// Me returns the resolved identity of the caller.
func (h *AuthHandler) Me(c *gin.Context) {
	ident, err := identityFromContext(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.IdentityResponse{
		ID:    ident.ID,
		Email: ident.Email,
		State: ident.State,
		IsPro: ident.IsPro,
	})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookies.CookieName, value, maxAge, "/", "", h.cookies.Secure, true)
}
