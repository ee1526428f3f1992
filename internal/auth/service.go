package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/2beens/fittrack/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "fittrack-admin-session||"
	tokensSetKey     = "fittrack-admin-sessions"
	tokenLength      = 35
)

var (
	ErrWrongUsername = errors.New("wrong username")
	ErrWrongPassword = errors.New("wrong password")
)

// Admin is the single dashboard operator, configured from env vars.
type Admin struct {
	Username     string
	PasswordHash string
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Service manages admin dashboard sessions stored in redis.
// Mobile users never hit it, they come with identity provider JWTs.
type Service struct {
	admin       *Admin
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewAuthService(
	admin *Admin,
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		admin:          admin,
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func (as *Service) Login(ctx context.Context, credentials Credentials, createdAt time.Time) (string, error) {
	if credentials.Username != as.admin.Username {
		return "", ErrWrongUsername
	}
	if !pkg.CheckPasswordHash(credentials.Password, as.admin.PasswordHash) {
		return "", ErrWrongPassword
	}

	token, err := as.RandStringFunc(tokenLength)
	if err != nil {
		return "", err
	}

	sessionKey := sessionKeyPrefix + token
	if err := as.redisClient.Set(ctx, sessionKey, createdAt.Unix(), as.ttl).Err(); err != nil {
		return "", err
	}

	// add token to the set of sessions, so ScanAndClean can find it
	if err := as.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return "", err
	}

	return token, nil
}

// Logout returns false if the token was not an active session.
func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	sessionKey := sessionKeyPrefix + token
	createdAtUnixStr, err := as.redisClient.Get(ctx, sessionKey).Result()
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

	if err := as.redisClient.Del(ctx, sessionKey).Err(); err != nil {
		return false, err
	}

	if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return false, err
	}

	return createdAtUnix > 0, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old.
// Redis expiry normally does the job, this catches keys written without a TTL
// and keeps the tokens set from growing forever.
func (as *Service) ScanAndClean(ctx context.Context) {
	sessionTokens, err := as.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		log.Errorf("auth service, scan and clean, get sessions: %s", err)
		return
	}

	if len(sessionTokens) == 0 {
		log.Debugln("auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		sessionKey := sessionKeyPrefix + token
		createdAtUnixStr, err := as.redisClient.Get(ctx, sessionKey).Result()
		if errors.Is(err, redis.Nil) {
			// expired by redis already
			toRemove = append(toRemove, token)
			continue
		}
		if err != nil {
			log.Errorf("auth service, scan and clean token %s: %s", token, err)
			continue
		}

		createdAtUnix, err := strconv.ParseInt(createdAtUnixStr, 10, 64)
		if err != nil {
			log.Errorf("auth service, scan and clean token %s: %s", token, err)
			continue
		}

		if time.Since(time.Unix(createdAtUnix, 0)) > as.ttl {
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		if err := as.redisClient.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
			log.Errorf("auth service, clean token %s: %s", token, err)
			continue
		}
		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("auth service, clean token %s: %s", token, err)
			continue
		}
	}

	log.Debugf("auth service, scan and clean done, removed %d sessions", len(toRemove))
}
