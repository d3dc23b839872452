package repository

import (
	"errors"
	"time"

	"github.com/lshigami/Marmoset/internal/apperrors"
	"github.com/lshigami/Marmoset/internal/model"
	"gorm.io/gorm"
)

// BabySummary carries the aggregates behind the stats endpoint. Latest is nil
// when the baby has no records.
type BabySummary struct {
	Total   int64
	Average float64
	Latest  *time.Time
}

type AssessmentRepository interface {
	Create(assessment *model.Assessment) error
	FindByID(id string) (*model.Assessment, error)
	FindByBabyID(babyID string) ([]model.Assessment, error)
	Summarize(babyID string) (*BabySummary, error)
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

// Create is the only write path for assessments; there is no update or
// delete counterpart.
func (r *assessmentRepository) Create(assessment *model.Assessment) error {
	return r.db.Create(assessment).Error
}

func (r *assessmentRepository) FindByID(id string) (*model.Assessment, error) {
	var assessment model.Assessment
	if err := r.db.First(&assessment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) FindByBabyID(babyID string) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.db.
		Where("baby_id = ?", babyID).
		Order("assessment_date desc").
		Find(&assessments).Error
	if err != nil {
		return nil, err
	}
	return assessments, nil
}

// Summarize computes count, mean score and most recent assessment date for a
// baby. Aggregates are read fresh on every call; nothing is cached.
func (r *assessmentRepository) Summarize(babyID string) (*BabySummary, error) {
	summary := &BabySummary{}

	if err := r.db.Model(&model.Assessment{}).
		Where("baby_id = ?", babyID).
		Count(&summary.Total).Error; err != nil {
		return nil, err
	}
	if summary.Total == 0 {
		return summary, nil
	}

	// COALESCE covers records deleted between the count and this read;
	// AVG over zero rows is NULL.
	var avg struct{ Average float64 }
	if err := r.db.Model(&model.Assessment{}).
		Select("COALESCE(AVG(score), 0) as average").
		Where("baby_id = ?", babyID).
		Scan(&avg).Error; err != nil {
		return nil, err
	}
	summary.Average = avg.Average

	var latest model.Assessment
	err := r.db.
		Where("baby_id = ?", babyID).
		Order("assessment_date desc").
		First(&latest).Error
	switch {
	case err == nil:
		summary.Latest = &latest.AssessmentDate
	case errors.Is(err, gorm.ErrRecordNotFound):
		// The records were deleted after the count; report no data
		// instead of failing the read.
		return &BabySummary{}, nil
	default:
		return nil, err
	}

	return summary, nil
}
