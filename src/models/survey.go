package models

import "time"

// Survey statuses as shown in the teacher's survey list.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Survey is the local display record of a survey on the upstream platform.
type Survey struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	QuestionCount int    `json:"questionCount"`
	Status        string `json:"status" example:"published"`
	CreatedAt     string `json:"createdAt" example:"2026-01-20"`
	PublishedAt   string `json:"publishedAt,omitempty" example:"2026-01-21"`
}

// AuthoringSession holds one teacher's in-progress survey: metadata, the
// finalized questions collected so far, and the editor working state for the
// question currently being written.
type AuthoringSession struct {
	ID          string          `json:"id"`
	TeacherID   string          `json:"teacherId"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Questions   []QuestionDraft `json:"questions"`
	Editor      EditorState     `json:"editor"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// OptionPayload is an option as sent upstream: the isCorrect flag is
// stripped and surfaced separately as the question's correctAnswer key.
type OptionPayload struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// QuestionPayload is the wire record for one question in a create-survey
// request. CorrectAnswer is the key string for single-choice questions and
// the ordered answer array for fill-blank questions.
type QuestionPayload struct {
	QuestionType      string          `json:"questionType"`
	QuestionText      string          `json:"questionText"`
	QuestionOrder     int             `json:"questionOrder"`
	Score             float64         `json:"score"`
	AnswerExplanation string          `json:"answerExplanation,omitempty"`
	Options           []OptionPayload `json:"options,omitempty"`
	CorrectAnswer     interface{}     `json:"correctAnswer,omitempty"`

	// ReferenceFiles is a pointer so an essay question whose uploads all
	// failed still serializes an empty array instead of dropping the field.
	ReferenceFiles  *[]string        `json:"referenceFiles,omitempty"`
	MinWordCount    *int             `json:"minWordCount,omitempty"`
	GradingCriteria *GradingCriteria `json:"gradingCriteria,omitempty"`
}

// SurveyPayload is the create-survey request body for the upstream API.
type SurveyPayload struct {
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Questions   []QuestionPayload `json:"questions"`
}
