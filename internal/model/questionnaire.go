package model

// Questionnaire types mirror the static assessment content file. They are
// plain JSON structs, not database tables: content ships with the binary and
// is read-only at runtime.

// Option is one selectable answer carrying a point value.
type Option struct {
	Label string `json:"label"`
	Score int    `json:"score"`
}

// Question is one questionnaire item with its ordered answer options.
type Question struct {
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// Questionnaire is the full assessment sheet for one age bracket (in months).
type Questionnaire struct {
	Month       int        `json:"month"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

// QuestionnaireSet is the content file root: brackets keyed by month string.
type QuestionnaireSet struct {
	Assessments map[string]Questionnaire `json:"assessments"`
}
