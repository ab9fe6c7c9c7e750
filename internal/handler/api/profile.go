package api

import (
	"net/http"

	reqdto "groundio/internal/handler/dto/request"
	resdto "groundio/internal/handler/dto/response"
	"groundio/internal/handler/httperr"
	"groundio/internal/pkg/errs"
	"groundio/internal/usecase/commands"
	"groundio/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	cmds  commands.ProfileCommands
	users queries.UserQueries
}

func NewProfileHandler(cmds commands.ProfileCommands, users queries.UserQueries) *ProfileHandler {
	return &ProfileHandler{cmds: cmds, users: users}
}

// @Summary Get profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	h.respond(c, principal.UserID)
}

// @Summary Update profile
// @Description Update display name, phone and push device token
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /profile [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", err.Error())
		return
	}

	if err := h.cmds.UpdateProfile(c.Request.Context(), principal.UserID, req.ToInput()); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.respond(c, principal.UserID)
}

// @Summary Update business profile
// @Description Set the merchant's business and tax details
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.MerchantProfileRequest true "Business profile"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /profile/merchant [put]
func (h *ProfileHandler) UpdateMerchant(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req reqdto.MerchantProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", err.Error())
		return
	}

	if err := h.cmds.UpdateMerchantProfile(c.Request.Context(), principal.UserID, req.ToInput()); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.respond(c, principal.UserID)
}

func (h *ProfileHandler) respond(c *gin.Context, userID uuid.UUID) {
	view, err := h.users.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errs.Is(err, queries.ErrUserNotFound) || errs.Is(err, queries.ErrUserInactive) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Profile not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}
