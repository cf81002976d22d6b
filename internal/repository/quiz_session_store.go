package repository

import (
	"career_coach_backend/internal/quiz"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// sessionTTL bounds how long an abandoned quiz survives in Redis.
const sessionTTL = 24 * time.Hour

// QuizSessionStore persists serialized quiz sessions in Redis, one per
// user, so a quiz can be paused and resumed across requests and server
// restarts.
type QuizSessionStore struct {
	RDB *redis.Client
}

func NewQuizSessionStore(rdb *redis.Client) *QuizSessionStore {
	return &QuizSessionStore{RDB: rdb}
}

func sessionKey(userID uint) string {
	return fmt.Sprintf("interview:session:%d", userID)
}

// Load returns the user's session, or nil when none exists.
func (s *QuizSessionStore) Load(ctx context.Context, userID uint) (*quiz.Session, error) {
	data, err := s.RDB.Get(ctx, sessionKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var sess quiz.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("decode quiz session: %w", err)
	}
	return &sess, nil
}

func (s *QuizSessionStore) Save(ctx context.Context, userID uint, sess *quiz.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode quiz session: %w", err)
	}
	return s.RDB.Set(ctx, sessionKey(userID), data, sessionTTL).Err()
}

func (s *QuizSessionStore) Delete(ctx context.Context, userID uint) error {
	return s.RDB.Del(ctx, sessionKey(userID)).Err()
}
