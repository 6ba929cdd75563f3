package user

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const resetTokenTTL = 24 * time.Hour

var ErrResetTokenInvalid = errors.New("invalid or expired reset token")

// ResetTokenStore holds single-use password-reset tokens.
type ResetTokenStore interface {
	Save(ctx context.Context, token string, userID int) error
	// Consume returns the user id for a token and invalidates it.
	Consume(ctx context.Context, token string) (int, error)
}

type redisResetStore struct {
	redis *redis.Client
}

func NewResetTokenStore(client *redis.Client) ResetTokenStore {
	return &redisResetStore{redis: client}
}

func resetKey(token string) string {
	return "password-reset:" + token
}

func (s *redisResetStore) Save(ctx context.Context, token string, userID int) error {
	return s.redis.Set(ctx, resetKey(token), userID, resetTokenTTL).Err()
}

func (s *redisResetStore) Consume(ctx context.Context, token string) (int, error) {
	value, err := s.redis.GetDel(ctx, resetKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrResetTokenInvalid
		}
		return 0, err
	}

	userID, err := strconv.Atoi(value)
	if err != nil {
		return 0, ErrResetTokenInvalid
	}

	return userID, nil
}

// NewResetToken returns a 64-hex-char random token.
func NewResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
