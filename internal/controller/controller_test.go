package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Marmoset/internal/apperrors"
	"github.com/lshigami/Marmoset/internal/dto"
	"github.com/lshigami/Marmoset/internal/model"
	"github.com/stretchr/testify/require"
)

type stubUserService struct{}

func (stubUserService) Login(req dto.LoginRequest) (*dto.UserResponse, error) {
	return &dto.UserResponse{ID: "user-1", OpenID: req.OpenID}, nil
}
func (stubUserService) GetByOpenID(openID string) (*dto.UserResponse, error) {
	if openID == "known" {
		return &dto.UserResponse{ID: "user-1", OpenID: openID}, nil
	}
	return nil, apperrors.ErrUserNotFound
}

type stubBabyService struct{}

func (stubBabyService) Create(req dto.BabyCreateRequest) (*dto.BabyResponse, error) {
	return &dto.BabyResponse{ID: "baby-1", UserID: req.UserID, Nickname: req.Nickname}, nil
}
func (stubBabyService) ListByUser(string) ([]dto.BabyResponse, error) {
	return []dto.BabyResponse{}, nil
}
func (stubBabyService) GetByID(id string) (*dto.BabyResponse, error) {
	return nil, apperrors.ErrBabyNotFound
}
func (stubBabyService) Update(string, dto.BabyUpdateRequest) (*dto.BabyResponse, error) {
	return nil, apperrors.ErrBabyNotFound
}
func (stubBabyService) Delete(string) error { return apperrors.ErrBabyNotFound }

type stubQuestionnaireService struct{}

func (stubQuestionnaireService) GetAll() *model.QuestionnaireSet {
	return &model.QuestionnaireSet{Assessments: map[string]model.Questionnaire{
		"6": {Month: 6, Title: "6-Month Development Assessment"},
	}}
}
func (stubQuestionnaireService) GetByMonth(month int) (*model.Questionnaire, error) {
	if month == 6 {
		return &model.Questionnaire{Month: 6, Title: "6-Month Development Assessment"}, nil
	}
	return nil, apperrors.ErrAssessmentNotFound
}

type stubAssessmentService struct{}

func (stubAssessmentService) Submit(req dto.AssessmentSubmitRequest) (*dto.SubmitResponse, error) {
	return &dto.SubmitResponse{ID: "rec-1"}, nil
}
func (stubAssessmentService) ListByBaby(string) ([]dto.RecordResponse, error) {
	return []dto.RecordResponse{}, nil
}
func (stubAssessmentService) GetByID(id string) (*dto.RecordResponse, error) {
	return nil, apperrors.ErrRecordNotFound
}

type stubStatsService struct{}

func (stubStatsService) Summarize(string) (*dto.StatsResponse, error) {
	return &dto.StatsResponse{TotalAssessments: 0, AverageScore: 0, LastAssessment: "No data yet"}, nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewController(
		stubUserService{},
		stubBabyService{},
		stubQuestionnaireService{},
		stubAssessmentService{},
		stubStatsService{},
	)
	ctrl.RegisterRoutes(router)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, dto.Response) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var envelope dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	w, envelope := doRequest(t, router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, envelope.Success)
}

func TestGetAssessmentByMonth_UnknownBracketIs404(t *testing.T) {
	router := newTestRouter()

	w, envelope := doRequest(t, router, http.MethodGet, "/api/assessment/data/999", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.False(t, envelope.Success)
	require.NotEmpty(t, envelope.Message)
}

func TestGetAssessmentByMonth_NonNumericIs404(t *testing.T) {
	// A bracket key that cannot even parse is an unknown bracket, same as
	// a numeric month with no content.
	router := newTestRouter()

	w, envelope := doRequest(t, router, http.MethodGet, "/api/assessment/data/six", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.False(t, envelope.Success)
}

func TestGetAssessmentByMonth_Known(t *testing.T) {
	router := newTestRouter()

	w, envelope := doRequest(t, router, http.MethodGet, "/api/assessment/data/6", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, envelope.Success)
}

func TestSubmitAssessment_MissingRequiredFieldsIs400(t *testing.T) {
	router := newTestRouter()

	// No babyId at all.
	w, envelope := doRequest(t, router, http.MethodPost, "/api/assessment", `{"score": 10, "rank": 5}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.False(t, envelope.Success)

	// Zero score must be accepted; zero is a value, not an absence.
	w, envelope = doRequest(t, router, http.MethodPost, "/api/assessment",
		`{"babyId": "baby-1", "score": 0, "rank": 0}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, envelope.Success)
}

func TestListBabyRecords_EmptyIs200(t *testing.T) {
	router := newTestRouter()

	w, envelope := doRequest(t, router, http.MethodGet, "/api/assessment/records/baby-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, envelope.Success)
}

func TestListRecords_MissingBabyIDIs400(t *testing.T) {
	router := newTestRouter()

	w, envelope := doRequest(t, router, http.MethodGet, "/api/records", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.False(t, envelope.Success)
}

func TestGetRecord_MissingIs404(t *testing.T) {
	router := newTestRouter()

	w, envelope := doRequest(t, router, http.MethodGet, "/api/records/nope", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.False(t, envelope.Success)
}

func TestGetStats_MissingBabyIDIs400(t *testing.T) {
	router := newTestRouter()

	w, envelope := doRequest(t, router, http.MethodGet, "/api/stats", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.False(t, envelope.Success)
}

func TestGetStats_OK(t *testing.T) {
	router := newTestRouter()

	w, envelope := doRequest(t, router, http.MethodGet, "/api/stats?babyId=baby-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, envelope.Success)
}

func TestGetUser_MissingIs404(t *testing.T) {
	router := newTestRouter()

	w, envelope := doRequest(t, router, http.MethodGet, "/api/user/unknown", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.False(t, envelope.Success)
}

func TestLogin_MissingOpenIDIs400(t *testing.T) {
	router := newTestRouter()

	w, envelope := doRequest(t, router, http.MethodPost, "/api/user/login", `{"nickName": "Sam"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.False(t, envelope.Success)
}

func TestListBabies_MissingUserIDIs400(t *testing.T) {
	router := newTestRouter()

	w, envelope := doRequest(t, router, http.MethodGet, "/api/baby", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.False(t, envelope.Success)
}
