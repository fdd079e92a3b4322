package middlewares

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter is a fixed-window limiter backed by INCR/EXPIRE.
// Fails open: if redis is unreachable the request goes through, so a
// cache outage never takes the API down with it.
type RedisRateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRedisRateLimiter dials redis and returns nil when addr is empty or
// the ping fails; callers fall back to the in-process limiter.
func NewRedisRateLimiter(addr, password string, db, limit int, window time.Duration) *RedisRateLimiter {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := client.Ping(ctx).Err()

	if err != nil {
		return nil
	}

	return &RedisRateLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

func (rl *RedisRateLimiter) Middleware(keyFn func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := keyFn(c)

		if key == "" {
			key = clientIP(c)
		}

		key = "rl:" + strconv.FormatInt(int64(rl.window.Seconds()), 10) + ":" + key
		ctx := c.Request.Context()

		count, err := rl.client.Incr(ctx, key).Result()

		if err != nil {
			c.Header("X-RateLimit-Error", "redis-error")
			c.Next()
			return
		}

		if count == 1 {
			rl.client.Expire(ctx, key, rl.window)
		}

		if count > int64(rl.limit) {
			abortRateLimited(c)
			return
		}

		c.Next()
	}
}
