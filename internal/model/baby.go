package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Baby is one child profile, owned by exactly one user.
// Birthday is a calendar date with no time component ("2006-01-02").
type Baby struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	UserID    string         `json:"user_id" gorm:"type:uuid;not null;index"`
	Nickname  string         `json:"nickname" gorm:"not null"`
	Birthday  string         `json:"birthday" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (b *Baby) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
