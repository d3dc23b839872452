package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Marmoset/internal/dto"
	"github.com/rs/zerolog/log"
)

// LoginHandler godoc
// @Summary Log a user in by client-supplied identifier
// @Description Creates the user on first login and refreshes profile fields on every later login.
// @Tags User
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Client identity"
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 400 {object} dto.Response "Missing user identifier"
// @Failure 500 {object} dto.Response
// @Router /user/login [post]
func (ctrl *Controller) LoginHandler(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Missing user identifier")
		return
	}

	user, err := ctrl.userSvc.Login(req)
	if err != nil {
		log.Error().Err(err).Str("openID", req.OpenID).Msg("LoginHandler: service error")
		respondError(ctx, err)
		return
	}
	respondOK(ctx, "Login successful", user)
}

// GetUserHandler godoc
// @Summary Get a user by identifier
// @Tags User
// @Produce json
// @Param openId path string true "Client-supplied user identifier"
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 404 {object} dto.Response "User not found"
// @Failure 500 {object} dto.Response
// @Router /user/{openId} [get]
func (ctrl *Controller) GetUserHandler(ctx *gin.Context) {
	openID := ctx.Param("openId")

	user, err := ctrl.userSvc.GetByOpenID(openID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, "", user)
}
