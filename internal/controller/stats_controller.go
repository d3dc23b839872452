package controller

import (
	"github.com/gin-gonic/gin"
)

// GetStatsHandler godoc
// @Summary Summary statistics for a baby's assessment history
// @Description Count, average score rounded to one decimal, and most recent assessment date.
// @Tags Stats
// @Produce json
// @Param babyId query string true "Baby ID"
// @Success 200 {object} dto.Response{data=dto.StatsResponse}
// @Failure 400 {object} dto.Response "Missing babyId"
// @Failure 500 {object} dto.Response
// @Router /stats [get]
func (ctrl *Controller) GetStatsHandler(ctx *gin.Context) {
	babyID := ctx.Query("babyId")
	if babyID == "" {
		respondBadRequest(ctx, "Please provide a baby ID")
		return
	}

	stats, err := ctrl.statsSvc.Summarize(babyID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, "", stats)
}
