package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lshigami/Marmoset/internal/apperrors"
	"github.com/lshigami/Marmoset/internal/dto"
	"github.com/lshigami/Marmoset/internal/model"
	"github.com/lshigami/Marmoset/internal/repository"
	"github.com/rs/zerolog/log"
)

type AssessmentService interface {
	Submit(req dto.AssessmentSubmitRequest) (*dto.SubmitResponse, error)
	ListByBaby(babyID string) ([]dto.RecordResponse, error)
	GetByID(id string) (*dto.RecordResponse, error)
}

type assessmentService struct {
	assessmentRepo    repository.AssessmentRepository
	questionnaireRepo repository.QuestionnaireRepository
	scoringSvc        ScoringService
}

func NewAssessmentService(
	assessmentRepo repository.AssessmentRepository,
	questionnaireRepo repository.QuestionnaireRepository,
	scoringSvc ScoringService,
) AssessmentService {
	return &assessmentService{
		assessmentRepo:    assessmentRepo,
		questionnaireRepo: questionnaireRepo,
		scoringSvc:        scoringSvc,
	}
}

// Submit persists one assessment outcome. Score and rank are stored as the
// client computed them; when the bracket's questionnaire is known the score
// is recomputed from the answers and a mismatch is logged, not rejected.
func (s *assessmentService) Submit(req dto.AssessmentSubmitRequest) (*dto.SubmitResponse, error) {
	if req.BabyID == "" || req.Score == nil || req.Rank == nil {
		return nil, apperrors.ErrValidation
	}

	answersJSON, err := json.Marshal(req.Answers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode answers: %w", err)
	}

	assessmentDate := time.Now()
	if req.AssessmentDate != nil {
		assessmentDate = *req.AssessmentDate
	}

	s.auditClientScore(req)

	assessment := model.Assessment{
		BabyID:         req.BabyID,
		Score:          *req.Score,
		Rank:           *req.Rank,
		Answers:        string(answersJSON),
		AssessmentAge:  req.AssessmentAge,
		ActualAge:      req.ActualAge,
		AssessmentDate: assessmentDate,
	}

	if err := s.assessmentRepo.Create(&assessment); err != nil {
		log.Error().Err(err).Str("babyID", req.BabyID).Msg("Submit: failed to store assessment")
		return nil, fmt.Errorf("failed to store assessment: %w", err)
	}

	return &dto.SubmitResponse{ID: assessment.ID}, nil
}

// auditClientScore recomputes the score server-side from the submitted
// answers and flags disagreements with the client-supplied value. The
// submission endpoint still trusts the client; this only leaves a trace.
func (s *assessmentService) auditClientScore(req dto.AssessmentSubmitRequest) {
	if len(req.Answers) == 0 {
		return
	}
	questionnaire, err := s.questionnaireRepo.FindByMonth(req.AssessmentAge)
	if err != nil {
		return
	}
	result, err := s.scoringSvc.ComputeResult(questionnaire.Questions, req.Answers)
	if err != nil {
		log.Warn().Err(err).Str("babyID", req.BabyID).Int("month", req.AssessmentAge).
			Msg("Submit: could not recompute score from answers")
		return
	}
	if result.TotalScore != *req.Score {
		log.Warn().Str("babyID", req.BabyID).Int("month", req.AssessmentAge).
			Int("clientScore", *req.Score).Int("recomputedScore", result.TotalScore).
			Msg("Submit: client score does not match recomputed score")
	}
}

func (s *assessmentService) ListByBaby(babyID string) ([]dto.RecordResponse, error) {
	assessments, err := s.assessmentRepo.FindByBabyID(babyID)
	if err != nil {
		log.Error().Err(err).Str("babyID", babyID).Msg("ListByBaby: failed to fetch assessment records")
		return nil, fmt.Errorf("failed to fetch assessment records: %w", err)
	}

	records := make([]dto.RecordResponse, 0, len(assessments))
	for _, assessment := range assessments {
		records = append(records, s.toRecordResponse(&assessment))
	}
	return records, nil
}

func (s *assessmentService) GetByID(id string) (*dto.RecordResponse, error) {
	assessment, err := s.assessmentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrRecordNotFound) {
			return nil, err
		}
		log.Error().Err(err).Str("recordID", id).Msg("GetByID: failed to fetch assessment record")
		return nil, fmt.Errorf("failed to fetch assessment record: %w", err)
	}
	record := s.toRecordResponse(assessment)
	return &record, nil
}

// toRecordResponse is the one place storage rows become wire records, so the
// snake_case column names never leak into a response.
func (s *assessmentService) toRecordResponse(assessment *model.Assessment) dto.RecordResponse {
	return dto.RecordResponse{
		ID:             assessment.ID,
		BabyID:         assessment.BabyID,
		Score:          assessment.Score,
		Rank:           assessment.Rank,
		Answers:        decodeAnswers(assessment),
		AssessmentAge:  assessment.AssessmentAge,
		ActualAge:      assessment.ActualAge,
		AssessmentDate: assessment.AssessmentDate,
	}
}

// decodeAnswers turns the stored blob back into a sequence of option indices.
// A corrupt blob degrades to an empty sequence so one bad row never breaks a
// whole listing, but the corruption is logged rather than swallowed silently.
func decodeAnswers(assessment *model.Assessment) []*int {
	answers := []*int{}
	if assessment.Answers == "" {
		return answers
	}
	if err := json.Unmarshal([]byte(assessment.Answers), &answers); err != nil {
		log.Warn().Err(err).Str("recordID", assessment.ID).
			Msg("Corrupt answers blob in stored assessment, substituting empty list")
		return []*int{}
	}
	if answers == nil {
		return []*int{}
	}
	return answers
}
