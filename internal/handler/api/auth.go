package api

import (
	"net/http"

	reqdto "groundio/internal/handler/dto/request"
	resdto "groundio/internal/handler/dto/response"
	"groundio/internal/handler/httperr"
	"groundio/internal/handler/middleware"
	"groundio/internal/pkg/config"
	"groundio/internal/pkg/cookie"
	"groundio/internal/pkg/errs"
	"groundio/internal/pkg/jwt"
	"groundio/internal/pkg/session"
	"groundio/internal/usecase/commands"
	"groundio/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	users     queries.UserQueries
	hub       *session.Hub
	tokens    *jwt.Service
	cookieCfg config.CookieConfig
}

func NewAuthHandler(
	cmds commands.AuthCommands,
	users queries.UserQueries,
	hub *session.Hub,
	tokens *jwt.Service,
	cfg config.Config,
) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		users:     users,
		hub:       hub,
		tokens:    tokens,
		cookieCfg: cfg.Cookie,
	}
}

// @Summary Sign up
// @Description Register a customer or merchant account and sign it in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignupRequest true "Signup request"
// @Success 201 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req reqdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", err.Error())
		return
	}

	result, err := h.cmds.Signup(c.Request.Context(), req.ToInput())
	if err != nil {
		h.abortWithAuthError(c, err)
		return
	}

	h.setTokenCookies(c, result.TokenPair)
	c.JSON(http.StatusCreated, resdto.FromLoginResult(result))
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.ToInput())
	if err != nil {
		h.abortWithAuthError(c, err)
		return
	}

	h.setTokenCookies(c, result.TokenPair)
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Refresh tokens
// @Description Issue a new token pair from the refresh cookie or the request body
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh request"
// @Success 200 {object} map[string]string
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := cookie.GetRefreshToken(c)
	if refreshToken == "" {
		var req reqdto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}
	if refreshToken == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrTokenValidation, "Refresh token required", nil)
		return
	}

	pair, err := h.cmds.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		h.abortWithAuthError(c, err)
		return
	}

	h.setTokenCookies(c, pair)
	c.JSON(http.StatusOK, gin.H{"access_token": pair.AccessToken})
}

// @Summary User logout
// @Description Clear the session cookies and notify open session streams
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cookieCfg)
	if principal, ok := middleware.GetPrincipal(c); ok {
		h.cmds.Logout(c.Request.Context(), principal)
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	view, err := h.users.GetCurrentUser(c.Request.Context(), principal.UserID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errs.Is(err, queries.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// @Summary Auth state events
// @Description Server-sent stream of signed_in and signed_out events for the current user
// @Tags auth
// @Security BearerAuth
// @Produce text/event-stream
// @Success 200 {object} session.Event
// @Failure 401 {object} httperr.Response
// @Router /auth/events [get]
func (h *AuthHandler) Events(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	sub := h.hub.Subscribe(principal.UserID)
	defer sub.Close()

	streamEvents(c, sub.Next, func(ev session.Event) string { return string(ev.Kind) })
}

func (h *AuthHandler) setTokenCookies(c *gin.Context, pair *commands.TokenPair) {
	cookie.SetTokenCookies(c, h.cookieCfg, pair.AccessToken, pair.RefreshToken,
		h.tokens.AccessTokenDuration(), h.tokens.RefreshTokenDuration())
}

func (h *AuthHandler) abortWithAuthError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrInvalidCredentials),
		errs.Is(err, commands.ErrUserNotFound),
		errs.Is(err, commands.ErrAuthenticationFailed):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
	case errs.Is(err, commands.ErrTokenValidation):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired refresh token", nil)
	case errs.Is(err, commands.ErrUserInactive):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
	default:
		httperr.AbortWithDomainError(c, err)
	}
}
