package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/lshigami/Marmoset/config"
	"github.com/lshigami/Marmoset/internal/apperrors"
	"github.com/lshigami/Marmoset/internal/model"
	"github.com/rs/zerolog/log"
)

// QuestionnaireRepository serves the static assessment content. The JSON file
// is read once at startup and held in memory; content never changes at
// runtime.
type QuestionnaireRepository interface {
	FindAll() *model.QuestionnaireSet
	FindByMonth(month int) (*model.Questionnaire, error)
	// Months returns the available age brackets in ascending order.
	Months() []int
}

type questionnaireRepository struct {
	set *model.QuestionnaireSet
}

func NewQuestionnaireRepository(cfg *config.Config) (QuestionnaireRepository, error) {
	return NewQuestionnaireRepositoryFromFile(cfg.Assessment.DataFile)
}

func NewQuestionnaireRepositoryFromFile(path string) (QuestionnaireRepository, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read assessment data file %s: %w", path, err)
	}

	var set model.QuestionnaireSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("failed to parse assessment data file %s: %w", path, err)
	}

	log.Info().Str("file", path).Int("brackets", len(set.Assessments)).Msg("Assessment content loaded")
	return &questionnaireRepository{set: &set}, nil
}

func (r *questionnaireRepository) FindAll() *model.QuestionnaireSet {
	return r.set
}

func (r *questionnaireRepository) FindByMonth(month int) (*model.Questionnaire, error) {
	q, ok := r.set.Assessments[strconv.Itoa(month)]
	if !ok {
		return nil, apperrors.ErrAssessmentNotFound
	}
	return &q, nil
}

func (r *questionnaireRepository) Months() []int {
	months := make([]int, 0, len(r.set.Assessments))
	for _, q := range r.set.Assessments {
		months = append(months, q.Month)
	}
	sort.Ints(months)
	return months
}
