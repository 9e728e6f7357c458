package flights

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the set that holds flight numbers.
const DefaultRedisKey = "structkit:flights"

// RedisStore keeps flight numbers in a Redis set.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore returns a store using client. An empty key selects
// [DefaultRedisKey]. The caller owns client and closes it.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key}
}

func (r *RedisStore) Add(ctx context.Context, number string) (bool, error) {
	n, err := r.client.SAdd(ctx, r.key, number).Result()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *RedisStore) All(ctx context.Context) ([]string, error) {
	return r.client.SMembers(ctx, r.key).Result()
}
