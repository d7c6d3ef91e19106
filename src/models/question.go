package models

// Question types supported by the authoring editor.
const (
	SingleChoice = "single_choice"
	FillBlank    = "fill_blank"
	Essay        = "essay"
)

// Option is one selectable answer of a single-choice question.
type Option struct {
	Key       string `json:"key" example:"A"`
	Value     string `json:"value" example:"4"`
	IsCorrect bool   `json:"isCorrect"`
}

// ScoreItem is one weighted row of an essay grading rubric.
type ScoreItem struct {
	Item        string  `json:"item" example:"Content completeness"`
	Score       float64 `json:"score" example:"4"`
	Description string  `json:"description"`
}

// GradingCriteria describes how an essay answer is graded.
type GradingCriteria struct {
	TotalScore        float64     `json:"totalScore"`
	ScoreDistribution []ScoreItem `json:"scoreDistribution"`
	Keywords          []string    `json:"keywords"`
	Requirements      []string    `json:"requirements"`
}

// Attachment is an essay reference file parked in the authoring session.
// The bytes stay local until the submission pipeline uploads them.
type Attachment struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"`
}

// QuestionDraft is a finalized question. Only the fields of its variant are
// populated; cross-variant fields are dropped at finalization, not merely
// left unused.
type QuestionDraft struct {
	QuestionType      string  `json:"questionType" example:"single_choice"`
	QuestionText      string  `json:"questionText" example:"2+2=?"`
	Score             float64 `json:"score" example:"10"`
	AnswerExplanation string  `json:"answerExplanation,omitempty"`

	// single_choice
	Options []Option `json:"options,omitempty"`

	// fill_blank
	CorrectAnswers []string `json:"correctAnswers,omitempty"`

	// essay
	ReferenceFiles  []Attachment     `json:"referenceFiles,omitempty"`
	MinWordCount    int              `json:"minWordCount,omitempty"`
	GradingCriteria *GradingCriteria `json:"gradingCriteria,omitempty"`
}

// EditorState is the mutable working copy of the question being authored.
// Every variant's fields are kept at the same time so that switching the
// question type and switching back does not lose prior input.
type EditorState struct {
	QuestionType      string  `json:"questionType"`
	QuestionText      string  `json:"questionText"`
	Score             float64 `json:"score"`
	AnswerExplanation string  `json:"answerExplanation"`

	Options []Option `json:"options"`
	// NextOptionKey only ever increases, so a removed option's letter is
	// never handed out again.
	NextOptionKey int `json:"nextOptionKey"`

	CorrectAnswers []string `json:"correctAnswers"`

	ReferenceFiles  []Attachment    `json:"referenceFiles"`
	MinWordCount    int             `json:"minWordCount"`
	GradingCriteria GradingCriteria `json:"gradingCriteria"`
}

// NewEditorState returns the fresh default working state: a single-choice
// question with four empty options A-D, one empty blank, and a three-row
// default rubric.
func NewEditorState() EditorState {
	return EditorState{
		QuestionType: SingleChoice,
		Score:        10,
		Options: []Option{
			{Key: "A"},
			{Key: "B"},
			{Key: "C"},
			{Key: "D"},
		},
		NextOptionKey:   4,
		CorrectAnswers:  []string{""},
		ReferenceFiles:  []Attachment{},
		MinWordCount:    100,
		GradingCriteria: DefaultGradingCriteria(),
	}
}

// DefaultGradingCriteria pre-seeds the essay rubric the same way the
// authoring form does.
func DefaultGradingCriteria() GradingCriteria {
	return GradingCriteria{
		TotalScore: 10,
		ScoreDistribution: []ScoreItem{
			{Item: "Content completeness", Score: 4},
			{Item: "Logical clarity", Score: 3},
			{Item: "Language quality", Score: 3},
		},
		Keywords:     []string{},
		Requirements: []string{},
	}
}
