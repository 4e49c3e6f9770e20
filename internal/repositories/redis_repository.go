package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/api/middleware"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RateLimitRepository interface {
	CheckCheckoutRateLimit(ctx context.Context, userID string) (bool, int, int, error)
}

// CartLockRepository serializes checkouts per cart. The holder gets a token
// back; release is a no-op unless the token still matches, so a lock that
// expired and was re-acquired by someone else cannot be released from under
// them.
type CartLockRepository interface {
	AcquireCartLock(ctx context.Context, cartID uuid.UUID) (string, bool, error)
	ReleaseCartLock(ctx context.Context, cartID uuid.UUID, token string) error
}

type redisRepository struct {
	client *redis.Client
	cfg    *config.Config
}

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {

	redisURL := cfg.RedisConnect.GetDSN()
	slog.Info("Connecting to Redis", slog.String("host", cfg.RedisConnect.Host), slog.Int("db", cfg.RedisConnect.DB))

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		slog.Error("Failed to parse Redis URL", slog.Any("error", err))
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	opt.DB = cfg.RedisConnect.DB

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Test the connection
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Error("Failed to connect to Redis", slog.Any("error", err))
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("✅ Successfully connected to Redis")
	return client, nil

}

func NewRateLimitRepo(client *redis.Client, cfg *config.Config) RateLimitRepository {
	return &redisRepository{client: client, cfg: cfg}
}

func NewCartLockRepo(client *redis.Client, cfg *config.Config) CartLockRepository {
	return &redisRepository{client: client, cfg: cfg}
}

// Returns isAllowed, attempts left, seconds to wait, error
func (r *redisRepository) CheckCheckoutRateLimit(ctx context.Context, userID string) (bool, int, int, error) {

	logger := middleware.LoggerFromContext(ctx)

	key := fmt.Sprintf("checkout_attempts:%s", userID)

	now := time.Now().Unix()

	// This means only checkout attempts after 'this time' are counted.
	windowStart := now - int64(r.cfg.RateConfig.WindowSize.Seconds())

	// redis pipeline for executing multiple commands
	pipe := r.client.Pipeline()

	// remove old entries from the window
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart))

	// add the current checkout attempt
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})

	// count the number of attempts currently in the window
	count := pipe.ZCard(ctx, key)

	// delete the redis key after expiry
	pipe.Expire(ctx, key, r.cfg.RateConfig.WindowSize)

	_, err := pipe.Exec(ctx)
	if err != nil {
		logger.Error("Redis pipeline execution failed for rate limit", slog.String("key", key), slog.Any("error", err))
		return false, 0, 0, fmt.Errorf("redis pipeline error for rate limit check: %w", err)
	}

	attempts := count.Val()
	remaining := r.cfg.RateConfig.MaxAttempts - attempts

	if attempts >= r.cfg.RateConfig.MaxAttempts {

		oldestScoreCmd := r.client.ZRangeArgsWithScores(ctx, redis.ZRangeArgs{
			Key: key, Start: 0, Stop: 0,
		})

		scores, err := oldestScoreCmd.Result()
		if err != nil || len(scores) == 0 {
			logger.Error("Failed to get oldest attempt time for rate limit", slog.String("key", key), slog.Any("error", err))
			return false, 0, int(r.cfg.RateConfig.WindowSize.Seconds()), fmt.Errorf("failed to get oldest attempt time: %w", err)
		}

		oldestTimestamp := int64(scores[0].Score)

		retryAfter := max((oldestTimestamp+int64(r.cfg.RateConfig.WindowSize.Seconds()))-now, 0)

		logger.Warn("Rate limit exceeded for user", slog.String("userID", userID), slog.Int64("attempts", attempts))
		return false, 0, int(retryAfter), nil
	}

	logger.Debug("Rate limit check passed", slog.String("userID", userID), slog.Int64("attempts", attempts), slog.Int64("remaining", remaining))
	return true, int(remaining), 0, nil
}

// releaseScript deletes the lock key only while it still holds our token.
var releaseScript = redis.NewScript(`
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	else
		return 0
	end
`)

func cartLockKey(cartID uuid.UUID) string {
	return fmt.Sprintf("checkout_lock:cart:%s", cartID)
}

// AcquireCartLock returns the holder token and whether the lock was taken.
// A false result with nil error means another checkout is in flight.
func (r *redisRepository) AcquireCartLock(ctx context.Context, cartID uuid.UUID) (string, bool, error) {

	logger := middleware.LoggerFromContext(ctx)

	key := cartLockKey(cartID)
	token := uuid.New().String()

	acquired, err := r.client.SetNX(ctx, key, token, r.cfg.Checkout.LockTTL).Result()
	if err != nil {
		logger.Error("Failed to acquire cart lock", slog.String("key", key), slog.Any("error", err))
		return "", false, fmt.Errorf("failed to acquire cart lock: %w", err)
	}

	if !acquired {
		logger.Warn("Cart lock already held", slog.String("cartID", cartID.String()))
		return "", false, nil
	}

	return token, true, nil
}

func (r *redisRepository) ReleaseCartLock(ctx context.Context, cartID uuid.UUID, token string) error {

	logger := middleware.LoggerFromContext(ctx)

	key := cartLockKey(cartID)

	if err := releaseScript.Run(ctx, r.client, []string{key}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
		logger.Error("Failed to release cart lock", slog.String("key", key), slog.Any("error", err))
		return fmt.Errorf("failed to release cart lock: %w", err)
	}

	return nil
}
