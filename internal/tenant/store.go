package tenant

import (
	"context"
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"
)

var ErrNoCurrentGym = errors.New("no current gym selected")

const currentGymKeyPrefix = "current-gym:"

// Store keeps each user's current gym selection. Selections have no expiry;
// they live until cleared or overwritten.
type Store interface {
	Load(ctx context.Context, userID int) (string, error)
	Save(ctx context.Context, userID int, gymID string) error
	Clear(ctx context.Context, userID int) error
}

type redisStore struct {
	client *redis.Client
}

func NewStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func currentGymKey(userID int) string {
	return currentGymKeyPrefix + strconv.Itoa(userID)
}

func (s *redisStore) Load(ctx context.Context, userID int) (string, error) {
	val, err := s.client.Get(ctx, currentGymKey(userID)).Result()
	if err == redis.Nil {
		return "", ErrNoCurrentGym
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *redisStore) Save(ctx context.Context, userID int, gymID string) error {
	return s.client.Set(ctx, currentGymKey(userID), gymID, 0).Err()
}

func (s *redisStore) Clear(ctx context.Context, userID int) error {
	return s.client.Del(ctx, currentGymKey(userID)).Err()
}
