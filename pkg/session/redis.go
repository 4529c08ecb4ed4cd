package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis"
)

// RedisStore keeps sessions in Redis so they survive process restarts and
// can be shared between instances.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "session",
		ttl:    ttl,
	}
}

func MustEstablishConn(addr, password string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := client.Ping().Err(); err != nil {
		panic("redis ping failed: " + err.Error())
	}

	return client
}

func (r *RedisStore) Get(_ context.Context, id string) (Session, bool, error) {
	raw, err := r.client.Get(r.key(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return Session{}, false, nil
		}
		return Session{}, false, err
	}

	var s Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return Session{}, false, err
	}
	return s, true, nil
}

func (r *RedisStore) Save(_ context.Context, id string, s Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.client.Set(r.key(id), string(raw), r.ttl).Err()
}

func (r *RedisStore) Delete(_ context.Context, id string) error {
	return r.client.Del(r.key(id)).Err()
}

func (r *RedisStore) key(id string) string {
	return r.prefix + ":" + id
}
