// Package surveys owns the authoring session lifecycle: survey metadata, the
// ordered list of finalized questions, and submission to the upstream
// platform.
package surveys

import (
	"context"
	"time"

	"github.com/google/uuid"

	"Backend-SurveyStudio/src/models"
	"Backend-SurveyStudio/src/services/editor"
	"Backend-SurveyStudio/src/store"
	"Backend-SurveyStudio/src/surveyapi"
)

// SurveyAPI is the slice of the upstream client the service needs. Tests
// substitute a stub.
type SurveyAPI interface {
	UploadFile(ctx context.Context, token, filename string, data []byte) (string, error)
	CreateSurvey(ctx context.Context, token string, payload models.SurveyPayload) (surveyapi.CreateResult, error)
	PublishSurvey(ctx context.Context, token, surveyID string) (surveyapi.PublishResult, error)
	UnpublishSurvey(ctx context.Context, token, surveyID string) error
	DeleteSurvey(ctx context.Context, token, surveyID string) error
}

type Service struct {
	sessions store.SessionStore
	surveys  store.SurveyStore
	api      SurveyAPI
}

func NewService(sessions store.SessionStore, surveys store.SurveyStore, api SurveyAPI) *Service {
	return &Service{sessions: sessions, surveys: surveys, api: api}
}

// StartSession opens a fresh authoring session: empty survey draft, editor
// at its defaults.
func (s *Service) StartSession(ctx context.Context, teacherID string) (*models.AuthoringSession, error) {
	now := time.Now()
	session := &models.AuthoringSession{
		ID:        uuid.NewString(),
		TeacherID: teacherID,
		Questions: []models.QuestionDraft{},
		Editor:    models.NewEditorState(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Service) GetSession(ctx context.Context, teacherID, sessionID string) (*models.AuthoringSession, error) {
	return s.sessions.Get(ctx, teacherID, sessionID)
}

// CancelSession discards the whole draft.
func (s *Service) CancelSession(ctx context.Context, teacherID, sessionID string) error {
	return s.sessions.Delete(ctx, teacherID, sessionID)
}

// SetMetadata updates the survey title and description.
func (s *Service) SetMetadata(ctx context.Context, teacherID, sessionID, title, description string) (*models.AuthoringSession, error) {
	return s.update(ctx, teacherID, sessionID, func(session *models.AuthoringSession) error {
		session.Title = title
		session.Description = description
		return nil
	})
}

// UpdateEditor loads the session, applies one editor operation to its
// working state and saves the result. Handlers funnel every editing
// operation through here so mutations apply atomically per request.
func (s *Service) UpdateEditor(ctx context.Context, teacherID, sessionID string, op func(*models.EditorState) error) (*models.AuthoringSession, error) {
	return s.update(ctx, teacherID, sessionID, func(session *models.AuthoringSession) error {
		return op(&session.Editor)
	})
}

// SaveQuestion validates and finalizes the current working question,
// appends the frozen draft to the survey in authoring order, and leaves the
// editor reset for the next question.
func (s *Service) SaveQuestion(ctx context.Context, teacherID, sessionID string) (*models.AuthoringSession, error) {
	return s.update(ctx, teacherID, sessionID, func(session *models.AuthoringSession) error {
		draft, err := editor.ValidateAndFinalize(&session.Editor)
		if err != nil {
			return err
		}
		session.Questions = append(session.Questions, draft)
		return nil
	})
}

// CancelQuestion discards the current working question only; saved
// questions are untouched.
func (s *Service) CancelQuestion(ctx context.Context, teacherID, sessionID string) (*models.AuthoringSession, error) {
	return s.update(ctx, teacherID, sessionID, func(session *models.AuthoringSession) error {
		editor.Cancel(&session.Editor)
		return nil
	})
}

// RemoveQuestion deletes a saved question by position. Order numbers are not
// renumbered here; they are computed fresh from list position at submission.
func (s *Service) RemoveQuestion(ctx context.Context, teacherID, sessionID string, index int) (*models.AuthoringSession, error) {
	return s.update(ctx, teacherID, sessionID, func(session *models.AuthoringSession) error {
		if index < 0 || index >= len(session.Questions) {
			return models.NewValidationError("question index out of range")
		}
		session.Questions = append(session.Questions[:index], session.Questions[index+1:]...)
		return nil
	})
}

// TotalScore sums the scores of the finalized questions. Display only; the
// total is not capped.
func TotalScore(questions []models.QuestionDraft) float64 {
	var total float64
	for _, q := range questions {
		total += q.Score
	}
	return total
}

// ListSurveys returns the teacher's local survey list, newest first.
func (s *Service) ListSurveys(ctx context.Context, teacherID string) ([]models.Survey, error) {
	return s.surveys.List(ctx, teacherID)
}

// PublishExisting publishes a survey already in the list and flips its local
// status.
func (s *Service) PublishExisting(ctx context.Context, teacherID, token, surveyID string) (*models.Survey, error) {
	surveys, err := s.surveys.List(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	survey, ok := findSurvey(surveys, surveyID)
	if !ok {
		return nil, store.ErrSurveyNotFound
	}

	result, err := s.api.PublishSurvey(ctx, token, surveyID)
	if err != nil {
		return nil, &models.SubmissionError{Op: "publish", Err: err}
	}

	survey.Status = models.StatusPublished
	survey.PublishedAt = formatDate(result.PublishedAt)
	if err := s.surveys.Update(ctx, teacherID, survey); err != nil {
		return nil, err
	}
	return &survey, nil
}

// UnpublishExisting pulls a survey back to draft.
func (s *Service) UnpublishExisting(ctx context.Context, teacherID, token, surveyID string) (*models.Survey, error) {
	surveys, err := s.surveys.List(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	survey, ok := findSurvey(surveys, surveyID)
	if !ok {
		return nil, store.ErrSurveyNotFound
	}

	if err := s.api.UnpublishSurvey(ctx, token, surveyID); err != nil {
		return nil, &models.SubmissionError{Op: "unpublish", Err: err}
	}

	survey.Status = models.StatusDraft
	survey.PublishedAt = ""
	if err := s.surveys.Update(ctx, teacherID, survey); err != nil {
		return nil, err
	}
	return &survey, nil
}

// DeleteSurvey removes a survey upstream and from the local list.
func (s *Service) DeleteSurvey(ctx context.Context, teacherID, token, surveyID string) error {
	if err := s.api.DeleteSurvey(ctx, token, surveyID); err != nil {
		return &models.SubmissionError{Op: "delete", Err: err}
	}
	err := s.surveys.Remove(ctx, teacherID, surveyID)
	if err == store.ErrSurveyNotFound {
		// Upstream deletion succeeded; a missing local entry is not an error.
		return nil
	}
	return err
}

func (s *Service) update(ctx context.Context, teacherID, sessionID string, mutate func(*models.AuthoringSession) error) (*models.AuthoringSession, error) {
	session, err := s.sessions.Get(ctx, teacherID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := mutate(session); err != nil {
		return nil, err
	}
	session.UpdatedAt = time.Now()
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func findSurvey(surveys []models.Survey, surveyID string) (models.Survey, bool) {
	for _, survey := range surveys {
		if survey.ID == surveyID {
			return survey, true
		}
	}
	return models.Survey{}, false
}
