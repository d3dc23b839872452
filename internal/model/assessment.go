package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Assessment is one submitted assessment outcome for a baby. Rows are written
// once at submission and never updated; no exposed operation deletes them,
// but deleting a baby profile soft-deletes its assessments with it.
//
// Answers holds the JSON-encoded list of selected option indices, one entry
// per question, null where the question was left unanswered.
type Assessment struct {
	ID             string         `gorm:"type:uuid;primarykey" json:"id"`
	BabyID         string         `json:"baby_id" gorm:"type:uuid;not null;index"`
	Score          int            `json:"score" gorm:"not null"`
	Rank           int            `json:"rank" gorm:"not null"`
	Answers        string         `json:"-" gorm:"type:text"`
	AssessmentAge  int            `json:"assessment_age" gorm:"not null"`
	ActualAge      int            `json:"actual_age" gorm:"not null"`
	AssessmentDate time.Time      `json:"assessment_date" gorm:"index"`
	CreatedAt      time.Time      `json:"created_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (a *Assessment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
