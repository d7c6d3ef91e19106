package editor

import (
	"fmt"
	"strings"

	"Backend-SurveyStudio/src/models"
)

// The editor mutates exactly one models.EditorState at a time. There is no
// intermediate "saved" state: ValidateAndFinalize emits an immutable draft
// and resets the working state, Cancel discards it unconditionally.

const (
	minOptions    = 2
	maxOptions    = 26 // keys are single letters A-Z
	minBlanks     = 1
	minScoreItems = 1
)

// SetType switches the active variant. Fields of the previous variant stay
// in memory so switching back restores prior input.
func SetType(s *models.EditorState, questionType string) error {
	switch questionType {
	case models.SingleChoice, models.FillBlank, models.Essay:
		s.QuestionType = questionType
		return nil
	default:
		return fmt.Errorf("unknown question type: %s", questionType)
	}
}

func SetText(s *models.EditorState, text string) {
	s.QuestionText = text
}

func SetScore(s *models.EditorState, score float64) {
	s.Score = score
}

func SetExplanation(s *models.EditorState, text string) {
	s.AnswerExplanation = text
}

// AddOption appends an empty option carrying the next sequential letter.
// Removed letters are never reassigned. Once Z has been handed out the call
// is a no-op.
func AddOption(s *models.EditorState) {
	if s.NextOptionKey >= maxOptions {
		return
	}
	key := string(rune('A' + s.NextOptionKey))
	s.Options = append(s.Options, models.Option{Key: key})
	s.NextOptionKey++
}

// RemoveOption deletes the option at index. Below two remaining options the
// call is a no-op; the surviving options keep their letters.
func RemoveOption(s *models.EditorState, index int) error {
	if err := checkIndex(index, len(s.Options)); err != nil {
		return err
	}
	if len(s.Options) <= minOptions {
		return nil
	}
	s.Options = append(s.Options[:index], s.Options[index+1:]...)
	return nil
}

func SetOptionValue(s *models.EditorState, index int, value string) error {
	if err := checkIndex(index, len(s.Options)); err != nil {
		return err
	}
	s.Options[index].Value = value
	return nil
}

// SetCorrectOption marks exactly the selected option correct and clears the
// flag on every other option, modeling a single-select radio group.
func SetCorrectOption(s *models.EditorState, index int) error {
	if err := checkIndex(index, len(s.Options)); err != nil {
		return err
	}
	for i := range s.Options {
		s.Options[i].IsCorrect = i == index
	}
	return nil
}

func AddBlank(s *models.EditorState) {
	s.CorrectAnswers = append(s.CorrectAnswers, "")
}

// RemoveBlank is a no-op at exactly one remaining blank.
func RemoveBlank(s *models.EditorState, index int) error {
	if err := checkIndex(index, len(s.CorrectAnswers)); err != nil {
		return err
	}
	if len(s.CorrectAnswers) <= minBlanks {
		return nil
	}
	s.CorrectAnswers = append(s.CorrectAnswers[:index], s.CorrectAnswers[index+1:]...)
	return nil
}

func SetBlank(s *models.EditorState, index int, value string) error {
	if err := checkIndex(index, len(s.CorrectAnswers)); err != nil {
		return err
	}
	s.CorrectAnswers[index] = value
	return nil
}

// AddFile parks a reference file in the working state. Nothing is uploaded
// here; the submission pipeline resolves attachments to durable URLs.
func AddFile(s *models.EditorState, att models.Attachment) {
	s.ReferenceFiles = append(s.ReferenceFiles, att)
}

func RemoveFile(s *models.EditorState, index int) error {
	if err := checkIndex(index, len(s.ReferenceFiles)); err != nil {
		return err
	}
	s.ReferenceFiles = append(s.ReferenceFiles[:index], s.ReferenceFiles[index+1:]...)
	return nil
}

func SetMinWordCount(s *models.EditorState, count int) error {
	if count < 0 {
		return fmt.Errorf("minimum word count cannot be negative")
	}
	s.MinWordCount = count
	return nil
}

// AddKeyword appends a trimmed keyword; blank input is a no-op.
func AddKeyword(s *models.EditorState, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	s.GradingCriteria.Keywords = append(s.GradingCriteria.Keywords, text)
}

func RemoveKeyword(s *models.EditorState, index int) error {
	if err := checkIndex(index, len(s.GradingCriteria.Keywords)); err != nil {
		return err
	}
	s.GradingCriteria.Keywords = append(s.GradingCriteria.Keywords[:index], s.GradingCriteria.Keywords[index+1:]...)
	return nil
}

// AddRequirement appends a trimmed requirement; blank input is a no-op.
func AddRequirement(s *models.EditorState, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	s.GradingCriteria.Requirements = append(s.GradingCriteria.Requirements, text)
}

func RemoveRequirement(s *models.EditorState, index int) error {
	if err := checkIndex(index, len(s.GradingCriteria.Requirements)); err != nil {
		return err
	}
	s.GradingCriteria.Requirements = append(s.GradingCriteria.Requirements[:index], s.GradingCriteria.Requirements[index+1:]...)
	return nil
}

func AddScoreItem(s *models.EditorState) {
	s.GradingCriteria.ScoreDistribution = append(s.GradingCriteria.ScoreDistribution, models.ScoreItem{})
}

// RemoveScoreItem is a no-op at exactly one remaining rubric row.
func RemoveScoreItem(s *models.EditorState, index int) error {
	if err := checkIndex(index, len(s.GradingCriteria.ScoreDistribution)); err != nil {
		return err
	}
	if len(s.GradingCriteria.ScoreDistribution) <= minScoreItems {
		return nil
	}
	s.GradingCriteria.ScoreDistribution = append(
		s.GradingCriteria.ScoreDistribution[:index],
		s.GradingCriteria.ScoreDistribution[index+1:]...)
	return nil
}

// SetScoreItem updates one field of a rubric row. Field is "item", "score"
// or "description", matching the row editor in the authoring form.
func SetScoreItem(s *models.EditorState, index int, field string, value interface{}) error {
	if err := checkIndex(index, len(s.GradingCriteria.ScoreDistribution)); err != nil {
		return err
	}
	row := &s.GradingCriteria.ScoreDistribution[index]
	switch field {
	case "item":
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("score item name must be a string")
		}
		row.Item = str
	case "score":
		num, ok := value.(float64)
		if !ok {
			return fmt.Errorf("score item score must be a number")
		}
		row.Score = num
	case "description":
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("score item description must be a string")
		}
		row.Description = str
	default:
		return fmt.Errorf("unknown score item field: %s", field)
	}
	return nil
}

// ValidateAndFinalize runs the variant's invariant checks in fixed priority
// order: question text, positive score, type-specific completeness, and for
// single-choice a selected correct answer. On success it returns the frozen
// draft with only the variant's fields populated and resets the working
// state for the next question. On failure the working state is untouched.
func ValidateAndFinalize(s *models.EditorState) (models.QuestionDraft, error) {
	if err := validate(s); err != nil {
		return models.QuestionDraft{}, err
	}

	draft := models.QuestionDraft{
		QuestionType:      s.QuestionType,
		QuestionText:      strings.TrimSpace(s.QuestionText),
		Score:             s.Score,
		AnswerExplanation: strings.TrimSpace(s.AnswerExplanation),
	}

	switch s.QuestionType {
	case models.SingleChoice:
		draft.Options = append([]models.Option(nil), s.Options...)
	case models.FillBlank:
		draft.CorrectAnswers = append([]string(nil), s.CorrectAnswers...)
	case models.Essay:
		draft.ReferenceFiles = append([]models.Attachment(nil), s.ReferenceFiles...)
		draft.MinWordCount = s.MinWordCount
		gc := copyCriteria(s.GradingCriteria)
		draft.GradingCriteria = &gc
	}

	*s = models.NewEditorState()
	return draft, nil
}

// Cancel discards the working state unconditionally and restores fresh
// defaults. Calling it twice, or with no edits, is indistinguishable from
// calling it once.
func Cancel(s *models.EditorState) {
	*s = models.NewEditorState()
}

func validate(s *models.EditorState) error {
	if strings.TrimSpace(s.QuestionText) == "" {
		return models.NewValidationError("question text is required")
	}
	if s.Score <= 0 {
		return models.NewValidationError("score must be positive")
	}

	switch s.QuestionType {
	case models.SingleChoice:
		if len(s.Options) < minOptions {
			return models.NewValidationError("a single-choice question needs at least 2 options")
		}
		for _, opt := range s.Options {
			if strings.TrimSpace(opt.Value) == "" {
				return models.NewValidationError("every option needs a value")
			}
		}
		if !hasCorrectOption(s.Options) {
			return models.NewValidationError("a correct answer must be selected")
		}
	case models.FillBlank:
		if len(s.CorrectAnswers) < minBlanks {
			return models.NewValidationError("a fill-blank question needs at least 1 answer")
		}
		for _, ans := range s.CorrectAnswers {
			if strings.TrimSpace(ans) == "" {
				return models.NewValidationError("every blank needs an answer")
			}
		}
	case models.Essay:
		if len(s.GradingCriteria.ScoreDistribution) < minScoreItems {
			return models.NewValidationError("the grading rubric needs at least 1 row")
		}
		for _, row := range s.GradingCriteria.ScoreDistribution {
			if strings.TrimSpace(row.Item) == "" || row.Score <= 0 {
				return models.NewValidationError("every rubric row needs a name and a positive score")
			}
		}
	default:
		return models.NewValidationError("unknown question type")
	}
	return nil
}

func hasCorrectOption(options []models.Option) bool {
	for _, opt := range options {
		if opt.IsCorrect {
			return true
		}
	}
	return false
}

func copyCriteria(gc models.GradingCriteria) models.GradingCriteria {
	out := gc
	out.ScoreDistribution = append([]models.ScoreItem(nil), gc.ScoreDistribution...)
	out.Keywords = append([]string(nil), gc.Keywords...)
	out.Requirements = append([]string(nil), gc.Requirements...)
	return out
}

func checkIndex(index, length int) error {
	if index < 0 || index >= length {
		return fmt.Errorf("index %d out of range", index)
	}
	return nil
}
