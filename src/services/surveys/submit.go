package surveys

import (
	"context"
	"log"
	"strings"
	"time"

	"Backend-SurveyStudio/src/models"
)

// Submit runs the full submission pipeline for a session: precondition
// checks, wire-payload assembly with sequential reference-file uploads,
// create, publish, and reconciliation of the local survey list.
//
// Failure semantics: per-file upload failures are logged and the file is
// skipped; create/publish failures are terminal for this attempt but the
// session is preserved so the teacher can retry without re-entering
// questions. Validation failures never reach the network.
func (s *Service) Submit(ctx context.Context, teacherID, token, sessionID string) (*models.Survey, error) {
	session, err := s.sessions.Get(ctx, teacherID, sessionID)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(session.Title)
	if title == "" {
		return nil, models.NewValidationError("survey title is required")
	}
	if len(session.Questions) == 0 {
		return nil, models.NewValidationError("a survey needs at least one question")
	}

	payload := models.SurveyPayload{
		Title:       title,
		Description: strings.TrimSpace(session.Description),
		Questions:   make([]models.QuestionPayload, 0, len(session.Questions)),
	}
	for i, question := range session.Questions {
		payload.Questions = append(payload.Questions, s.buildQuestionPayload(ctx, token, question, i+1))
	}

	created, err := s.api.CreateSurvey(ctx, token, payload)
	if err != nil {
		return nil, &models.SubmissionError{Op: "create", Err: err}
	}
	if created.ID == "" {
		// The survey may exist upstream without an id we can act on; do not
		// attempt to publish.
		return nil, &models.IdentifierResolutionError{Raw: created.Raw}
	}

	published, err := s.api.PublishSurvey(ctx, token, created.ID)
	if err != nil {
		return nil, &models.SubmissionError{Op: "publish", Err: err}
	}

	survey := models.Survey{
		ID:            created.ID,
		Title:         title,
		Description:   strings.TrimSpace(session.Description),
		QuestionCount: len(session.Questions),
		Status:        models.StatusPublished,
		CreatedAt:     formatDate(created.CreatedAt),
		PublishedAt:   formatDate(published.PublishedAt),
	}
	if err := s.surveys.Prepend(ctx, teacherID, survey); err != nil {
		return nil, err
	}

	// Authoring is done; the draft state is cleared by dropping the session.
	if err := s.sessions.Delete(ctx, teacherID, sessionID); err != nil {
		log.Printf("failed to clear authoring session %s: %v", sessionID, err)
	}
	return &survey, nil
}

// buildQuestionPayload converts one finalized draft to its wire record.
// order is the question's 1-based position in the current list.
func (s *Service) buildQuestionPayload(ctx context.Context, token string, question models.QuestionDraft, order int) models.QuestionPayload {
	payload := models.QuestionPayload{
		QuestionType:      question.QuestionType,
		QuestionText:      question.QuestionText,
		QuestionOrder:     order,
		Score:             question.Score,
		AnswerExplanation: question.AnswerExplanation,
	}

	switch question.QuestionType {
	case models.SingleChoice:
		options := make([]models.OptionPayload, 0, len(question.Options))
		for _, opt := range question.Options {
			options = append(options, models.OptionPayload{Key: opt.Key, Value: opt.Value})
			if opt.IsCorrect {
				payload.CorrectAnswer = opt.Key
			}
		}
		payload.Options = options
	case models.FillBlank:
		payload.CorrectAnswer = question.CorrectAnswers
	case models.Essay:
		if len(question.ReferenceFiles) > 0 {
			urls := s.uploadReferenceFiles(ctx, token, question.ReferenceFiles)
			payload.ReferenceFiles = &urls
		}
		minWords := question.MinWordCount
		payload.MinWordCount = &minWords
		payload.GradingCriteria = question.GradingCriteria
	}
	return payload
}

// uploadReferenceFiles resolves attachments to durable URLs one at a time.
// Uploads are deliberately serialized, and a failing upload only costs that
// file: it is logged, skipped, and the submission proceeds with whatever
// URLs succeeded.
func (s *Service) uploadReferenceFiles(ctx context.Context, token string, files []models.Attachment) []string {
	urls := make([]string, 0, len(files))
	for _, file := range files {
		url, err := s.api.UploadFile(ctx, token, file.Filename, file.Data)
		if err != nil {
			log.Printf("%v", &models.UploadError{Filename: file.Filename, Err: err})
			continue
		}
		urls = append(urls, url)
	}
	return urls
}

// formatDate reduces an upstream timestamp to its date part, falling back to
// today when the response carried none.
func formatDate(value string) string {
	if value == "" {
		return time.Now().Format("2006-01-02")
	}
	if i := strings.IndexByte(value, 'T'); i > 0 {
		return value[:i]
	}
	return value
}
