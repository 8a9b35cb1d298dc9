package repos

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisOpTimeout = 2 * time.Second

// RedisKV keeps session key/value pairs in redis under "<prefix>:<sid>:<key>".
type RedisKV struct {
	client *redis.Client
	prefix string
}

func NewRedisClient(addr, password string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
}

func NewRedisKV(client *redis.Client, prefix string) *RedisKV {
	if prefix == "" {
		prefix = "platemarket"
	}
	return &RedisKV{client: client, prefix: prefix}
}

func (r *RedisKV) key(sessionID, key string) string {
	return r.prefix + ":" + sessionID + ":" + key
}

func (r *RedisKV) Get(sessionID, key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	v, err := r.client.Get(ctx, r.key(sessionID, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r *RedisKV) Set(sessionID, key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	return r.client.Set(ctx, r.key(sessionID, key), value, 0).Err()
}

func (r *RedisKV) Scope(sessionID string) *RedisSessionKV {
	return &RedisSessionKV{kv: r, sid: sessionID}
}

type RedisSessionKV struct {
	kv  *RedisKV
	sid string
}

func (s *RedisSessionKV) Get(key string) (string, bool, error) { return s.kv.Get(s.sid, key) }
func (s *RedisSessionKV) Set(key, value string) error          { return s.kv.Set(s.sid, key, value) }
