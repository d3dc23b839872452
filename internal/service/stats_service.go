package service

import (
	"fmt"
	"math"

	"github.com/lshigami/Marmoset/internal/dto"
	"github.com/lshigami/Marmoset/internal/repository"
	"github.com/rs/zerolog/log"
)

// NoDataSentinel is returned as the last-assessment date for babies without
// any stored records.
const NoDataSentinel = "No data yet"

// lastAssessmentLayout renders the most recent assessment timestamp as a
// plain calendar date.
const lastAssessmentLayout = "2006-01-02"

type StatsService interface {
	Summarize(babyID string) (*dto.StatsResponse, error)
}

type statsService struct {
	assessmentRepo repository.AssessmentRepository
}

func NewStatsService(assessmentRepo repository.AssessmentRepository) StatsService {
	return &statsService{assessmentRepo: assessmentRepo}
}

// Summarize derives count, mean score and last assessment date for one baby.
// With zero records the average is 0 and the date is the no-data sentinel;
// an average that is genuinely zero looks identical, matching the behaviour
// clients already rely on.
func (s *statsService) Summarize(babyID string) (*dto.StatsResponse, error) {
	summary, err := s.assessmentRepo.Summarize(babyID)
	if err != nil {
		log.Error().Err(err).Str("babyID", babyID).Msg("Summarize: failed to read aggregates")
		return nil, fmt.Errorf("failed to compute statistics: %w", err)
	}

	resp := &dto.StatsResponse{
		TotalAssessments: summary.Total,
		AverageScore:     roundToOneDecimal(summary.Average),
		LastAssessment:   NoDataSentinel,
	}
	if summary.Latest != nil {
		resp.LastAssessment = summary.Latest.Format(lastAssessmentLayout)
	}
	return resp, nil
}

// roundToOneDecimal rounds half up on the scaled integer: round(mean*10)/10.
func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
