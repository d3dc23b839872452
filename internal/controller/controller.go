package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Marmoset/internal/apperrors"
	"github.com/lshigami/Marmoset/internal/dto"
	"github.com/lshigami/Marmoset/internal/service"
)

type Controller struct {
	userSvc          service.UserService
	babySvc          service.BabyService
	questionnaireSvc service.QuestionnaireService
	assessmentSvc    service.AssessmentService
	statsSvc         service.StatsService
}

func NewController(
	userSvc service.UserService,
	babySvc service.BabyService,
	questionnaireSvc service.QuestionnaireService,
	assessmentSvc service.AssessmentService,
	statsSvc service.StatsService,
) *Controller {
	return &Controller{
		userSvc:          userSvc,
		babySvc:          babySvc,
		questionnaireSvc: questionnaireSvc,
		assessmentSvc:    assessmentSvc,
		statsSvc:         statsSvc,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", ctrl.HealthHandler)

	api := router.Group("/api")
	{
		user := api.Group("/user")
		user.POST("/login", ctrl.LoginHandler)
		user.GET("/:openId", ctrl.GetUserHandler)

		baby := api.Group("/baby")
		baby.POST("", ctrl.CreateBabyHandler)
		baby.GET("", ctrl.ListBabiesHandler)
		baby.GET("/:id", ctrl.GetBabyHandler)
		baby.PUT("/:id", ctrl.UpdateBabyHandler)
		baby.DELETE("/:id", ctrl.DeleteBabyHandler)

		assessment := api.Group("/assessment")
		assessment.GET("/data", ctrl.GetAssessmentDataHandler)
		assessment.GET("/data/:month", ctrl.GetAssessmentByMonthHandler)
		assessment.POST("", ctrl.SubmitAssessmentHandler)
		assessment.GET("/records/:babyId", ctrl.GetBabyRecordsHandler)

		records := api.Group("/records")
		records.GET("", ctrl.ListRecordsHandler)
		records.GET("/:id", ctrl.GetRecordHandler)

		api.GET("/stats", ctrl.GetStatsHandler)
	}
}

// HealthHandler godoc
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} dto.Response
// @Router /health [get]
func (ctrl *Controller) HealthHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.Response{Success: true, Message: "Growth assessment API is running"})
}

func respondOK(ctx *gin.Context, message string, data interface{}) {
	ctx.JSON(http.StatusOK, dto.Response{Success: true, Message: message, Data: data})
}

func respondBadRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, dto.Response{Success: false, Message: message})
}

// respondError maps service errors onto the HTTP status and envelope every
// endpoint shares. Storage failures stay generic outside gin debug mode.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		respondBadRequest(ctx, err.Error())
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrBabyNotFound),
		errors.Is(err, apperrors.ErrRecordNotFound),
		errors.Is(err, apperrors.ErrAssessmentNotFound):
		ctx.JSON(http.StatusNotFound, dto.Response{Success: false, Message: err.Error()})
	default:
		message := "Internal server error"
		if gin.Mode() == gin.DebugMode {
			message = err.Error()
		}
		ctx.JSON(http.StatusInternalServerError, dto.Response{Success: false, Message: message})
	}
}
