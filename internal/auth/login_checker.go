package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

func (lc *LoginChecker) IsLogged(ctx context.Context, token string) (bool, error) {
	sessionKey := sessionKeyPrefix + token
	createdAtUnixStr, err := lc.redisClient.Get(ctx, sessionKey).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	createdAtUnix, err := strconv.ParseInt(createdAtUnixStr, 10, 64)
	if err != nil {
		return false, err
	}

	createdAt := time.Unix(createdAtUnix, 0)
	return time.Since(createdAt) <= lc.ttl, nil
}
