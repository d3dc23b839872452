package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is created the first time a client identifier is seen at login and
// updated on every subsequent login. Users are never deleted.
type User struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	OpenID    string    `json:"open_id" gorm:"uniqueIndex;not null"`
	NickName  string    `json:"nick_name"`
	AvatarURL string    `json:"avatar_url"`
	LoginTime time.Time `json:"login_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
