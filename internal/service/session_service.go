package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"healthconnect/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionService is the server-side session store. Sessions are JSON values
// in Redis under session:<id> and expire with the configured TTL.
type SessionService interface {
	Create(ctx context.Context, session *entity.Session) (string, error)
	Get(ctx context.Context, sessionID string) (*entity.Session, error)
	Destroy(ctx context.Context, sessionID string) error
	TTL() time.Duration
}

type sessionService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewSessionService(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) SessionService {
	return &sessionService{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

func (s *sessionService) Create(ctx context.Context, session *entity.Session) (string, error) {
	sessionID := uuid.New().String()

	payload, err := json.Marshal(session)
	if err != nil {
		return "", err
	}

	if err := s.redisClient.Set(ctx, sessionKey(sessionID), payload, s.ttl).Err(); err != nil {
		s.log.Warnf("Failed to store session in Redis: %+v", err)
		return "", err
	}

	return sessionID, nil
}

func (s *sessionService) Get(ctx context.Context, sessionID string) (*entity.Session, error) {
	payload, err := s.redisClient.Get(ctx, sessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		s.log.Warnf("Failed to read session from Redis: %+v", err)
		return nil, err
	}

	var session entity.Session
	if err := json.Unmarshal([]byte(payload), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Destroy removes the session. A destruction failure is reported to the
// caller rather than silently swallowed.
func (s *sessionService) Destroy(ctx context.Context, sessionID string) error {
	if err := s.redisClient.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		s.log.Warnf("Failed to destroy session %s: %+v", sessionID, err)
		return err
	}
	return nil
}

func (s *sessionService) TTL() time.Duration {
	return s.ttl
}
