package dto

import "time"

// Response is the envelope every endpoint returns: a success flag, a human
// readable message, and an optional payload.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	OpenID    string    `json:"openId"`
	NickName  string    `json:"nickName"`
	AvatarURL string    `json:"avatarUrl"`
	LoginTime time.Time `json:"loginTime"`
	CreatedAt time.Time `json:"createdAt"`
}

type BabyResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Nickname  string    `json:"nickname"`
	Birthday  string    `json:"birthday"`
	CreatedAt time.Time `json:"createdAt"`
}

// RecordResponse is the single wire shape for assessment records. Field names
// are camelCase everywhere; the storage layer's snake_case never leaks out.
type RecordResponse struct {
	ID             string    `json:"id"`
	BabyID         string    `json:"babyId"`
	Score          int       `json:"score"`
	Rank           int       `json:"rank"`
	Answers        []*int    `json:"answers"`
	AssessmentAge  int       `json:"assessmentAge"`
	ActualAge      int       `json:"actualAge"`
	AssessmentDate time.Time `json:"assessmentDate"`
}

type SubmitResponse struct {
	ID string `json:"id"`
}

// StatsResponse summarises a baby's assessment history. LastAssessment is a
// formatted calendar date, or the "No data yet" sentinel when no records
// exist.
type StatsResponse struct {
	TotalAssessments int64   `json:"totalAssessments"`
	AverageScore     float64 `json:"averageScore"`
	LastAssessment   string  `json:"lastAssessment"`
}
