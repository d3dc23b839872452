package dto

import "time"

// LoginRequest carries the client-supplied identity on login. OpenID is the
// opaque user key; there is no credential verification behind it.
type LoginRequest struct {
	OpenID    string     `json:"openId" binding:"required"`
	NickName  string     `json:"nickName"`
	AvatarURL string     `json:"avatarUrl"`
	LoginTime *time.Time `json:"loginTime"`
}

type BabyCreateRequest struct {
	UserID   string `json:"userId" binding:"required"`
	Nickname string `json:"nickname" binding:"required"`
	Birthday string `json:"birthday" binding:"required,datetime=2006-01-02"`
}

type BabyUpdateRequest struct {
	Nickname string `json:"nickname" binding:"required"`
	Birthday string `json:"birthday" binding:"required,datetime=2006-01-02"`
}

// AssessmentSubmitRequest is one full assessment outcome as computed by the
// client. Score and Rank are pointers so that zero values survive the
// required check: 0 is a valid score and a valid rank.
type AssessmentSubmitRequest struct {
	BabyID         string     `json:"babyId" binding:"required"`
	Score          *int       `json:"score" binding:"required"`
	Rank           *int       `json:"rank" binding:"required"`
	Answers        []*int     `json:"answers"`
	AssessmentAge  int        `json:"assessmentAge"`
	ActualAge      int        `json:"actualAge"`
	AssessmentDate *time.Time `json:"assessmentDate"`
}
