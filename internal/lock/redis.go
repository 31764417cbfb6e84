package lock

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLocked is returned when the session lock could not be acquired within
// the retry budget.
var ErrLocked = errors.New("session is locked by another request")

// releaseScript deletes the lock only when it still holds this caller's
// token, so an expired-and-reacquired lock is never released by the old
// owner.
const releaseScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`

// SessionLocker serializes writers per session with a redis SetNX mutex.
// The TTL bounds how long a crashed request can hold a session hostage.
type SessionLocker struct {
	client     *redis.Client
	ttl        time.Duration
	retries    int
	retryDelay time.Duration
}

func NewSessionLocker(client *redis.Client, ttl time.Duration) *SessionLocker {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &SessionLocker{
		client:     client,
		ttl:        ttl,
		retries:    3,
		retryDelay: 50 * time.Millisecond,
	}
}

// Acquire takes the per-session lock and returns a release func. The release
// func is safe to call after the TTL expired.
func (l *SessionLocker) Acquire(ctx context.Context, tenant, sessionID string) (func(), error) {
	key := fmt.Sprintf("session_lock:%s:%s", tenant, sessionID)
	token := uuid.NewString()

	for attempt := 0; ; attempt++ {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire session lock: %w", err)
		}
		if ok {
			break
		}
		if attempt >= l.retries {
			return nil, ErrLocked
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.retryDelay):
		}
	}

	release := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := l.client.Eval(ctx, releaseScript, []string{key}, token).Err(); err != nil {
			log.Printf("Failed to release session lock %s, held until TTL: %v", key, err)
		}
	}
	return release, nil
}
