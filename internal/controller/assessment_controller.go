package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Marmoset/internal/apperrors"
	"github.com/lshigami/Marmoset/internal/dto"
	"github.com/rs/zerolog/log"
)

// GetAssessmentDataHandler godoc
// @Summary Get the full questionnaire collection
// @Description Returns every age bracket's questionnaire, keyed by month.
// @Tags Assessment
// @Produce json
// @Success 200 {object} dto.Response{data=model.QuestionnaireSet}
// @Router /assessment/data [get]
func (ctrl *Controller) GetAssessmentDataHandler(ctx *gin.Context) {
	respondOK(ctx, "", ctrl.questionnaireSvc.GetAll())
}

// GetAssessmentByMonthHandler godoc
// @Summary Get one age bracket's questionnaire
// @Tags Assessment
// @Produce json
// @Param month path int true "Age bracket in months"
// @Success 200 {object} dto.Response{data=model.Questionnaire}
// @Failure 404 {object} dto.Response "No content for this age bracket"
// @Router /assessment/data/{month} [get]
func (ctrl *Controller) GetAssessmentByMonthHandler(ctx *gin.Context) {
	// Bracket keys are numeric, so anything unparseable is just a bracket
	// that does not exist.
	month, err := strconv.Atoi(ctx.Param("month"))
	if err != nil {
		respondError(ctx, apperrors.ErrAssessmentNotFound)
		return
	}

	questionnaire, err := ctrl.questionnaireSvc.GetByMonth(month)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, "", questionnaire)
}

// SubmitAssessmentHandler godoc
// @Summary Submit an assessment outcome
// @Description Stores one assessment result for a baby. Scores of zero are valid values, not missing ones.
// @Tags Assessment
// @Accept json
// @Produce json
// @Param assessment body dto.AssessmentSubmitRequest true "Assessment outcome"
// @Success 200 {object} dto.Response{data=dto.SubmitResponse}
// @Failure 400 {object} dto.Response "Missing babyId, score or rank"
// @Failure 500 {object} dto.Response
// @Router /assessment [post]
func (ctrl *Controller) SubmitAssessmentHandler(ctx *gin.Context) {
	var req dto.AssessmentSubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Missing required parameters")
		return
	}

	result, err := ctrl.assessmentSvc.Submit(req)
	if err != nil {
		log.Error().Err(err).Str("babyID", req.BabyID).Msg("SubmitAssessmentHandler: service error")
		respondError(ctx, err)
		return
	}
	respondOK(ctx, "Assessment result saved", result)
}

// GetBabyRecordsHandler godoc
// @Summary List a baby's assessment records
// @Description Most recent first. An unknown baby yields an empty list, not 404.
// @Tags Assessment
// @Produce json
// @Param babyId path string true "Baby ID"
// @Success 200 {object} dto.Response{data=[]dto.RecordResponse}
// @Failure 500 {object} dto.Response
// @Router /assessment/records/{babyId} [get]
func (ctrl *Controller) GetBabyRecordsHandler(ctx *gin.Context) {
	records, err := ctrl.assessmentSvc.ListByBaby(ctx.Param("babyId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, "", records)
}
