package apperrors

import "errors"

// Sentinel errors shared across services and controllers. Controllers map
// these onto HTTP statuses with errors.Is.
var (
	// Resource errors
	ErrUserNotFound       = errors.New("user not found")
	ErrBabyNotFound       = errors.New("baby profile not found")
	ErrRecordNotFound     = errors.New("assessment record not found")
	ErrAssessmentNotFound = errors.New("no assessment content for this age bracket")

	// Scoring errors
	ErrEmptyQuestionnaire = errors.New("questionnaire has no questions")
	ErrInvalidAnswer      = errors.New("answer option index out of range")

	// Input errors
	ErrValidation = errors.New("missing or malformed required fields")
)
