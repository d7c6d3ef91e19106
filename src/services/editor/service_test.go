package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Backend-SurveyStudio/src/models"
)

func TestDefaultWorkingState(t *testing.T) {
	s := models.NewEditorState()

	assert.Equal(t, models.SingleChoice, s.QuestionType)
	assert.Equal(t, float64(10), s.Score)

	require.Len(t, s.Options, 4)
	assert.Equal(t, []string{"A", "B", "C", "D"}, optionKeys(s.Options))
	for _, opt := range s.Options {
		assert.Empty(t, opt.Value)
		assert.False(t, opt.IsCorrect)
	}

	assert.Equal(t, []string{""}, s.CorrectAnswers)
	assert.Equal(t, 100, s.MinWordCount)
	require.Len(t, s.GradingCriteria.ScoreDistribution, 3)
	assert.Empty(t, s.GradingCriteria.Keywords)
	assert.Empty(t, s.GradingCriteria.Requirements)
}

func TestOptionEditing(t *testing.T) {
	t.Run("AddAssignsSequentialLetters", func(t *testing.T) {
		s := models.NewEditorState()
		AddOption(&s)
		AddOption(&s)

		assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, optionKeys(s.Options))
	})

	t.Run("RemovedLettersAreNeverReused", func(t *testing.T) {
		s := models.NewEditorState()
		require.NoError(t, RemoveOption(&s, 1)) // drop B
		assert.Equal(t, []string{"A", "C", "D"}, optionKeys(s.Options))

		AddOption(&s)
		assert.Equal(t, []string{"A", "C", "D", "E"}, optionKeys(s.Options))
	})

	t.Run("RemoveBelowTwoIsNoOp", func(t *testing.T) {
		s := models.NewEditorState()
		require.NoError(t, SetOptionValue(&s, 0, "yes"))
		require.NoError(t, SetOptionValue(&s, 1, "no"))
		require.NoError(t, RemoveOption(&s, 2))
		require.NoError(t, RemoveOption(&s, 2))
		require.Len(t, s.Options, 2)

		// at the minimum now; nothing may change
		require.NoError(t, RemoveOption(&s, 0))
		require.Len(t, s.Options, 2)
		assert.Equal(t, "yes", s.Options[0].Value)
		assert.Equal(t, "no", s.Options[1].Value)
	})

	t.Run("RemoveOutOfRangeFails", func(t *testing.T) {
		s := models.NewEditorState()
		assert.Error(t, RemoveOption(&s, 4))
		assert.Error(t, RemoveOption(&s, -1))
	})

	t.Run("AddStopsAtZ", func(t *testing.T) {
		s := models.NewEditorState()
		for i := 0; i < 30; i++ {
			AddOption(&s)
		}
		assert.Len(t, s.Options, 26)
		assert.Equal(t, "Z", s.Options[25].Key)
	})
}

func TestSetCorrectOptionIsExclusive(t *testing.T) {
	s := models.NewEditorState()

	sequences := [][]int{
		{0},
		{0, 1},
		{3, 3},
		{2, 0, 1, 3, 2},
	}
	for _, seq := range sequences {
		var last int
		for _, index := range seq {
			require.NoError(t, SetCorrectOption(&s, index))
			last = index
		}

		correct := 0
		for i, opt := range s.Options {
			if opt.IsCorrect {
				correct++
				assert.Equal(t, last, i)
			}
		}
		assert.Equal(t, 1, correct, "exactly one option must be correct after %v", seq)
	}
}

func TestBlankEditing(t *testing.T) {
	s := models.NewEditorState()
	AddBlank(&s)
	AddBlank(&s)
	require.Len(t, s.CorrectAnswers, 3)

	require.NoError(t, SetBlank(&s, 0, "stack"))
	require.NoError(t, SetBlank(&s, 1, "queue"))
	require.NoError(t, RemoveBlank(&s, 2))
	assert.Equal(t, []string{"stack", "queue"}, s.CorrectAnswers)

	// removal is a no-op at exactly one remaining blank
	require.NoError(t, RemoveBlank(&s, 1))
	require.NoError(t, RemoveBlank(&s, 0))
	require.Len(t, s.CorrectAnswers, 1)
	assert.Equal(t, "stack", s.CorrectAnswers[0])
}

func TestKeywordAndRequirementEditing(t *testing.T) {
	s := models.NewEditorState()

	AddKeyword(&s, "  recursion ")
	AddKeyword(&s, "")
	AddKeyword(&s, "   ")
	AddKeyword(&s, "recursion") // duplicates permitted
	assert.Equal(t, []string{"recursion", "recursion"}, s.GradingCriteria.Keywords)

	AddRequirement(&s, " cite the textbook ")
	AddRequirement(&s, "\t")
	assert.Equal(t, []string{"cite the textbook"}, s.GradingCriteria.Requirements)

	require.NoError(t, RemoveKeyword(&s, 0))
	assert.Equal(t, []string{"recursion"}, s.GradingCriteria.Keywords)
	assert.Error(t, RemoveKeyword(&s, 5))
}

func TestScoreItemEditing(t *testing.T) {
	s := models.NewEditorState()

	AddScoreItem(&s)
	require.Len(t, s.GradingCriteria.ScoreDistribution, 4)

	require.NoError(t, SetScoreItem(&s, 3, "item", "Originality"))
	require.NoError(t, SetScoreItem(&s, 3, "score", float64(2)))
	require.NoError(t, SetScoreItem(&s, 3, "description", "novel argument"))
	row := s.GradingCriteria.ScoreDistribution[3]
	assert.Equal(t, models.ScoreItem{Item: "Originality", Score: 2, Description: "novel argument"}, row)

	assert.Error(t, SetScoreItem(&s, 3, "score", "two"))
	assert.Error(t, SetScoreItem(&s, 3, "weight", float64(1)))

	require.NoError(t, RemoveScoreItem(&s, 3))
	require.NoError(t, RemoveScoreItem(&s, 2))
	require.NoError(t, RemoveScoreItem(&s, 1))
	require.Len(t, s.GradingCriteria.ScoreDistribution, 1)

	// removal is a no-op at exactly one remaining row
	before := s.GradingCriteria.ScoreDistribution[0]
	require.NoError(t, RemoveScoreItem(&s, 0))
	require.Len(t, s.GradingCriteria.ScoreDistribution, 1)
	assert.Equal(t, before, s.GradingCriteria.ScoreDistribution[0])
}

func TestTypeSwitchRetainsOtherVariants(t *testing.T) {
	s := models.NewEditorState()
	require.NoError(t, SetOptionValue(&s, 0, "3"))
	require.NoError(t, SetOptionValue(&s, 1, "4"))

	require.NoError(t, SetType(&s, models.FillBlank))
	require.NoError(t, SetBlank(&s, 0, "four"))

	require.NoError(t, SetType(&s, models.SingleChoice))
	assert.Equal(t, "3", s.Options[0].Value)
	assert.Equal(t, "4", s.Options[1].Value)

	require.NoError(t, SetType(&s, models.FillBlank))
	assert.Equal(t, "four", s.CorrectAnswers[0])

	assert.Error(t, SetType(&s, "matching"))
}

func TestValidateAndFinalizeSingleChoice(t *testing.T) {
	t.Run("FailsWithoutText", func(t *testing.T) {
		s := models.NewEditorState()
		SetText(&s, "   ")
		_, err := ValidateAndFinalize(&s)
		var vErr *models.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "question text is required", vErr.Message)
	})

	t.Run("FailsWithNonPositiveScore", func(t *testing.T) {
		s := models.NewEditorState()
		SetText(&s, "2+2=?")
		SetScore(&s, 0)
		_, err := ValidateAndFinalize(&s)
		var vErr *models.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "score must be positive", vErr.Message)
	})

	t.Run("FailsWithEmptyOptionValue", func(t *testing.T) {
		s := models.NewEditorState()
		SetText(&s, "2+2=?")
		require.NoError(t, SetOptionValue(&s, 0, "3"))
		_, err := ValidateAndFinalize(&s)
		var vErr *models.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "every option needs a value", vErr.Message)
	})

	t.Run("FailsWithoutCorrectAnswerThenSucceeds", func(t *testing.T) {
		s := models.NewEditorState()
		SetText(&s, "2+2=?")
		for i, v := range []string{"3", "4", "5", "6"} {
			require.NoError(t, SetOptionValue(&s, i, v))
		}

		_, err := ValidateAndFinalize(&s)
		var vErr *models.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "a correct answer must be selected", vErr.Message)
		// failed finalization must not touch the working state
		assert.Equal(t, "2+2=?", s.QuestionText)

		require.NoError(t, SetCorrectOption(&s, 1))
		draft, err := ValidateAndFinalize(&s)
		require.NoError(t, err)

		assert.Equal(t, models.SingleChoice, draft.QuestionType)
		assert.Equal(t, "2+2=?", draft.QuestionText)
		require.Len(t, draft.Options, 4)
		assert.True(t, draft.Options[1].IsCorrect)

		// cross-variant fields are dropped, not merely unused
		assert.Nil(t, draft.CorrectAnswers)
		assert.Nil(t, draft.ReferenceFiles)
		assert.Nil(t, draft.GradingCriteria)
		assert.Zero(t, draft.MinWordCount)

		// the editor resets for the next question
		assert.Equal(t, models.NewEditorState(), s)
	})
}

func TestValidateAndFinalizeFillBlank(t *testing.T) {
	s := models.NewEditorState()
	require.NoError(t, SetType(&s, models.FillBlank))
	SetText(&s, "A ___ is FIFO, a ___ is LIFO.")
	AddBlank(&s)
	require.NoError(t, SetBlank(&s, 0, "queue"))

	_, err := ValidateAndFinalize(&s)
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "every blank needs an answer", vErr.Message)

	require.NoError(t, SetBlank(&s, 1, "stack"))
	draft, err := ValidateAndFinalize(&s)
	require.NoError(t, err)

	assert.Equal(t, models.FillBlank, draft.QuestionType)
	assert.Equal(t, []string{"queue", "stack"}, draft.CorrectAnswers)
	assert.Nil(t, draft.Options)
	assert.Nil(t, draft.GradingCriteria)
}

func TestValidateAndFinalizeEssay(t *testing.T) {
	s := models.NewEditorState()
	require.NoError(t, SetType(&s, models.Essay))
	SetText(&s, "Explain tail recursion.")
	AddScoreItem(&s)

	_, err := ValidateAndFinalize(&s)
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "every rubric row needs a name and a positive score", vErr.Message)

	require.NoError(t, SetScoreItem(&s, 3, "item", "Examples"))
	require.NoError(t, SetScoreItem(&s, 3, "score", float64(2)))
	AddKeyword(&s, "base case")
	AddFile(&s, models.Attachment{ID: "a1", Filename: "notes.pdf"})

	draft, err := ValidateAndFinalize(&s)
	require.NoError(t, err)

	assert.Equal(t, models.Essay, draft.QuestionType)
	assert.Equal(t, 100, draft.MinWordCount)
	require.NotNil(t, draft.GradingCriteria)
	assert.Len(t, draft.GradingCriteria.ScoreDistribution, 4)
	assert.Equal(t, []string{"base case"}, draft.GradingCriteria.Keywords)
	require.Len(t, draft.ReferenceFiles, 1)
	assert.Equal(t, "notes.pdf", draft.ReferenceFiles[0].Filename)
	assert.Nil(t, draft.Options)
	assert.Nil(t, draft.CorrectAnswers)
}

func TestCancelIsIdempotent(t *testing.T) {
	fresh := models.NewEditorState()

	s := models.NewEditorState()
	SetText(&s, "half-written question")
	require.NoError(t, SetType(&s, models.Essay))
	AddKeyword(&s, "dropped")

	Cancel(&s)
	assert.Equal(t, fresh, s)

	Cancel(&s)
	assert.Equal(t, fresh, s)

	// cancelling an untouched editor changes nothing either
	untouched := models.NewEditorState()
	Cancel(&untouched)
	assert.Equal(t, fresh, untouched)
}

func optionKeys(options []models.Option) []string {
	keys := make([]string, 0, len(options))
	for _, opt := range options {
		keys = append(keys, opt.Key)
	}
	return keys
}
