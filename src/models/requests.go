package models

// Request bodies accepted by the authoring endpoints.

type MetadataRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type QuestionTypeRequest struct {
	QuestionType string `json:"questionType" validate:"required,oneof=single_choice fill_blank essay" example:"single_choice"`
}

// QuestionFieldsRequest updates the common editor fields. Nil pointers leave
// the current value untouched.
type QuestionFieldsRequest struct {
	QuestionText      *string  `json:"questionText"`
	Score             *float64 `json:"score"`
	AnswerExplanation *string  `json:"answerExplanation"`
}

type ValueRequest struct {
	Value string `json:"value"`
}

type TextRequest struct {
	Text string `json:"text" validate:"required"`
}

// ScoreItemRequest mirrors the rubric row editor: one named field changes
// per call.
type ScoreItemRequest struct {
	Field string      `json:"field" validate:"required,oneof=item score description"`
	Value interface{} `json:"value"`
}
