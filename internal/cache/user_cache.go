package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"kosovai-backend/internal/model"
)

// UserCache is a read-through Redis cache in front of the credential
// store. Users are created once at seeding and never updated, so a
// plain TTL entry with no invalidation is enough.
type UserCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

// cachedUser carries the password hash, which model.User hides from
// every API-facing encoder with json:"-".
type cachedUser struct {
	ID           uint      `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewUserCache(client *redisv9.Client, ttl time.Duration) *UserCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &UserCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *UserCache) GetUser(ctx context.Context, username string) (*model.User, bool, error) {
	raw, err := c.client.Get(ctx, c.userKey(username)).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get user failed: %w", err)
	}

	var entry cachedUser
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached user failed: %w", err)
	}
	return &model.User{
		ID:           entry.ID,
		Username:     entry.Username,
		PasswordHash: entry.PasswordHash,
		CreatedAt:    entry.CreatedAt,
	}, true, nil
}

func (c *UserCache) SetUser(ctx context.Context, user *model.User) error {
	payload, err := json.Marshal(cachedUser{
		ID:           user.ID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal user cache failed: %w", err)
	}
	if err := c.client.Set(ctx, c.userKey(user.Username), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set user failed: %w", err)
	}
	return nil
}

func (c *UserCache) userKey(username string) string {
	return fmt.Sprintf("auth:user:%s", username)
}
