package appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"theorybook/models"
	"theorybook/utils"

	"github.com/go-redis/redis/v8"
)

// attemptTTL bounds how long an abandoned wizard keeps its session alive.
const attemptTTL = 30 * time.Minute

// AttemptStore persists booking attempt records between wizard steps.
// The surrounding web server serializes requests per session, so no
// locking happens here.
type AttemptStore interface {
	Get(ctx context.Context, sessionID string) (*models.BookingAttempt, error)
	Save(ctx context.Context, attempt *models.BookingAttempt) error
	Delete(ctx context.Context, sessionID string) error
}

type redisAttemptStore struct {
	client *redis.Client
}

// NewRedisAttemptStore returns the production AttemptStore over the
// session cache.
func NewRedisAttemptStore() AttemptStore {
	return &redisAttemptStore{client: utils.GetSessionCacheClient()}
}

func (s *redisAttemptStore) Get(ctx context.Context, sessionID string) (*models.BookingAttempt, error) {
	data, err := s.client.Get(ctx, attemptKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("booking attempt not found or expired: %w", err)
	}
	var attempt models.BookingAttempt
	if err := json.Unmarshal([]byte(data), &attempt); err != nil {
		return nil, fmt.Errorf("failed to parse booking attempt %s: %w", sessionID, err)
	}
	return &attempt, nil
}

func (s *redisAttemptStore) Save(ctx context.Context, attempt *models.BookingAttempt) error {
	data, err := json.Marshal(attempt)
	if err != nil {
		return fmt.Errorf("failed to marshal booking attempt: %w", err)
	}
	if err := s.client.Set(ctx, attemptKey(attempt.SessionID), data, attemptTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking attempt: %w", err)
	}
	return nil
}

func (s *redisAttemptStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, attemptKey(sessionID)).Err()
}

func attemptKey(sessionID string) string {
	return "attempt:" + sessionID
}
