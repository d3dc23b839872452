package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Marmoset/internal/dto"
	"github.com/rs/zerolog/log"
)

// CreateBabyHandler godoc
// @Summary Create a baby profile
// @Tags Baby
// @Accept json
// @Produce json
// @Param baby body dto.BabyCreateRequest true "Baby profile"
// @Success 200 {object} dto.Response{data=dto.BabyResponse}
// @Failure 400 {object} dto.Response "Incomplete baby profile"
// @Failure 500 {object} dto.Response
// @Router /baby [post]
func (ctrl *Controller) CreateBabyHandler(ctx *gin.Context) {
	var req dto.BabyCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Please provide the complete baby profile")
		return
	}

	baby, err := ctrl.babySvc.Create(req)
	if err != nil {
		log.Error().Err(err).Str("userID", req.UserID).Msg("CreateBabyHandler: service error")
		respondError(ctx, err)
		return
	}
	respondOK(ctx, "Baby profile created", baby)
}

// ListBabiesHandler godoc
// @Summary List a user's baby profiles
// @Tags Baby
// @Produce json
// @Param userId query string true "Owning user ID"
// @Success 200 {object} dto.Response{data=[]dto.BabyResponse}
// @Failure 400 {object} dto.Response "Missing userId"
// @Failure 500 {object} dto.Response
// @Router /baby [get]
func (ctrl *Controller) ListBabiesHandler(ctx *gin.Context) {
	userID := ctx.Query("userId")
	if userID == "" {
		respondBadRequest(ctx, "Please provide a user ID")
		return
	}

	babies, err := ctrl.babySvc.ListByUser(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, "", babies)
}

// GetBabyHandler godoc
// @Summary Get one baby profile
// @Tags Baby
// @Produce json
// @Param id path string true "Baby ID"
// @Success 200 {object} dto.Response{data=dto.BabyResponse}
// @Failure 404 {object} dto.Response "Baby profile not found"
// @Failure 500 {object} dto.Response
// @Router /baby/{id} [get]
func (ctrl *Controller) GetBabyHandler(ctx *gin.Context) {
	baby, err := ctrl.babySvc.GetByID(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, "", baby)
}

// UpdateBabyHandler godoc
// @Summary Update a baby profile
// @Tags Baby
// @Accept json
// @Produce json
// @Param id path string true "Baby ID"
// @Param baby body dto.BabyUpdateRequest true "New nickname and birthday"
// @Success 200 {object} dto.Response{data=dto.BabyResponse}
// @Failure 400 {object} dto.Response "Incomplete baby profile"
// @Failure 404 {object} dto.Response "Baby profile not found"
// @Failure 500 {object} dto.Response
// @Router /baby/{id} [put]
func (ctrl *Controller) UpdateBabyHandler(ctx *gin.Context) {
	var req dto.BabyUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Please provide the complete baby profile")
		return
	}

	baby, err := ctrl.babySvc.Update(ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, "Baby profile updated", baby)
}

// DeleteBabyHandler godoc
// @Summary Delete a baby profile and its assessment records
// @Tags Baby
// @Produce json
// @Param id path string true "Baby ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response "Baby profile not found"
// @Failure 500 {object} dto.Response
// @Router /baby/{id} [delete]
func (ctrl *Controller) DeleteBabyHandler(ctx *gin.Context) {
	if err := ctrl.babySvc.Delete(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, "Baby profile deleted", nil)
}
