package store

import (
	"context"
	"errors"
	"sync"

	"Backend-SurveyStudio/src/models"
)

var (
	ErrSessionNotFound = errors.New("authoring session not found")
	ErrSurveyNotFound  = errors.New("survey not found")
)

// SessionStore keeps authoring sessions, keyed per teacher.
type SessionStore interface {
	Get(ctx context.Context, teacherID, sessionID string) (*models.AuthoringSession, error)
	Save(ctx context.Context, session *models.AuthoringSession) error
	Delete(ctx context.Context, teacherID, sessionID string) error
}

// SurveyStore owns the teacher's local survey list, the single source of
// truth the dashboard renders. The submission pipeline holds the only
// mutation path besides the thin CRUD handlers.
type SurveyStore interface {
	List(ctx context.Context, teacherID string) ([]models.Survey, error)
	Prepend(ctx context.Context, teacherID string, survey models.Survey) error
	Update(ctx context.Context, teacherID string, survey models.Survey) error
	Remove(ctx context.Context, teacherID, surveyID string) error
}

// MemorySessionStore is the in-process store used when Redis is not
// configured, and in tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]models.AuthoringSession
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]models.AuthoringSession)}
}

func sessionKey(teacherID, sessionID string) string {
	return teacherID + ":" + sessionID
}

func (m *MemorySessionStore) Get(_ context.Context, teacherID, sessionID string) (*models.AuthoringSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[sessionKey(teacherID, sessionID)]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (m *MemorySessionStore) Save(_ context.Context, session *models.AuthoringSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sessionKey(session.TeacherID, session.ID)] = *session
	return nil
}

func (m *MemorySessionStore) Delete(_ context.Context, teacherID, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := sessionKey(teacherID, sessionID)
	if _, ok := m.sessions[key]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, key)
	return nil
}

// MemorySurveyStore keeps each teacher's survey list in insertion order,
// newest first.
type MemorySurveyStore struct {
	mu      sync.Mutex
	surveys map[string][]models.Survey
}

func NewMemorySurveyStore() *MemorySurveyStore {
	return &MemorySurveyStore{surveys: make(map[string][]models.Survey)}
}

func (m *MemorySurveyStore) List(_ context.Context, teacherID string) ([]models.Survey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Survey(nil), m.surveys[teacherID]...), nil
}

func (m *MemorySurveyStore) Prepend(_ context.Context, teacherID string, survey models.Survey) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.surveys[teacherID] = append([]models.Survey{survey}, m.surveys[teacherID]...)
	return nil
}

func (m *MemorySurveyStore) Update(_ context.Context, teacherID string, survey models.Survey) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.surveys[teacherID]
	for i := range list {
		if list[i].ID == survey.ID {
			list[i] = survey
			return nil
		}
	}
	return ErrSurveyNotFound
}

func (m *MemorySurveyStore) Remove(_ context.Context, teacherID, surveyID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.surveys[teacherID]
	for i := range list {
		if list[i].ID == surveyID {
			m.surveys[teacherID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return ErrSurveyNotFound
}
