package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"Backend-SurveyStudio/src/models"
)

// SessionTTL bounds how long an abandoned authoring session survives.
const SessionTTL = 24 * time.Hour

// RedisSessionStore persists authoring sessions as JSON values with a TTL,
// so drafts survive a restart of this service.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func redisSessionKey(teacherID, sessionID string) string {
	return "authoring:session:" + teacherID + ":" + sessionID
}

func (r *RedisSessionStore) Get(ctx context.Context, teacherID, sessionID string) (*models.AuthoringSession, error) {
	data, err := r.client.Get(ctx, redisSessionKey(teacherID, sessionID)).Bytes()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var session models.AuthoringSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *RedisSessionStore) Save(ctx context.Context, session *models.AuthoringSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, redisSessionKey(session.TeacherID, session.ID), data, SessionTTL).Err()
}

func (r *RedisSessionStore) Delete(ctx context.Context, teacherID, sessionID string) error {
	deleted, err := r.client.Del(ctx, redisSessionKey(teacherID, sessionID)).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// RedisSurveyStore keeps each teacher's survey list as one JSON value. The
// list is small (display data only), so read-modify-write is fine here.
type RedisSurveyStore struct {
	client *redis.Client
}

func NewRedisSurveyStore(client *redis.Client) *RedisSurveyStore {
	return &RedisSurveyStore{client: client}
}

func redisSurveyKey(teacherID string) string {
	return "teacher:surveys:" + teacherID
}

func (r *RedisSurveyStore) List(ctx context.Context, teacherID string) ([]models.Survey, error) {
	data, err := r.client.Get(ctx, redisSurveyKey(teacherID)).Bytes()
	if err == redis.Nil {
		return []models.Survey{}, nil
	}
	if err != nil {
		return nil, err
	}
	var surveys []models.Survey
	if err := json.Unmarshal(data, &surveys); err != nil {
		return nil, err
	}
	return surveys, nil
}

func (r *RedisSurveyStore) save(ctx context.Context, teacherID string, surveys []models.Survey) error {
	data, err := json.Marshal(surveys)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, redisSurveyKey(teacherID), data, 0).Err()
}

func (r *RedisSurveyStore) Prepend(ctx context.Context, teacherID string, survey models.Survey) error {
	surveys, err := r.List(ctx, teacherID)
	if err != nil {
		return err
	}
	return r.save(ctx, teacherID, append([]models.Survey{survey}, surveys...))
}

func (r *RedisSurveyStore) Update(ctx context.Context, teacherID string, survey models.Survey) error {
	surveys, err := r.List(ctx, teacherID)
	if err != nil {
		return err
	}
	for i := range surveys {
		if surveys[i].ID == survey.ID {
			surveys[i] = survey
			return r.save(ctx, teacherID, surveys)
		}
	}
	return ErrSurveyNotFound
}

func (r *RedisSurveyStore) Remove(ctx context.Context, teacherID, surveyID string) error {
	surveys, err := r.List(ctx, teacherID)
	if err != nil {
		return err
	}
	for i := range surveys {
		if surveys[i].ID == surveyID {
			return r.save(ctx, teacherID, append(surveys[:i], surveys[i+1:]...))
		}
	}
	return ErrSurveyNotFound
}
