package controller

import (
	"github.com/gin-gonic/gin"
)

// ListRecordsHandler godoc
// @Summary List assessment records for a baby
// @Description Same data as /assessment/records/{babyId}, addressed by query parameter.
// @Tags Records
// @Produce json
// @Param babyId query string true "Baby ID"
// @Success 200 {object} dto.Response{data=[]dto.RecordResponse}
// @Failure 400 {object} dto.Response "Missing babyId"
// @Failure 500 {object} dto.Response
// @Router /records [get]
func (ctrl *Controller) ListRecordsHandler(ctx *gin.Context) {
	babyID := ctx.Query("babyId")
	if babyID == "" {
		respondBadRequest(ctx, "Please provide a baby ID")
		return
	}

	records, err := ctrl.assessmentSvc.ListByBaby(babyID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, "", records)
}

// GetRecordHandler godoc
// @Summary Get a single assessment record
// @Tags Records
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} dto.Response{data=dto.RecordResponse}
// @Failure 404 {object} dto.Response "Record not found"
// @Failure 500 {object} dto.Response
// @Router /records/{id} [get]
func (ctrl *Controller) GetRecordHandler(ctx *gin.Context) {
	record, err := ctrl.assessmentSvc.GetByID(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, "", record)
}
