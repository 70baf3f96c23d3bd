package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript удаляет ключ, только если он все еще принадлежит владельцу
const releaseScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

// RedisLocker сериализует критические секции через SET NX PX в Redis.
// Подходит, когда экземпляры сервиса делят Redis, но не хочется держать соединение с БД.
type RedisLocker struct {
	client   redis.Cmdable
	opts     Options
	newToken func() string
}

// NewRedisLocker создает блокировщик на Redis
func NewRedisLocker(client redis.Cmdable, opts Options) *RedisLocker {
	return &RedisLocker{
		client:   client,
		opts:     opts.withDefaults(),
		newToken: uuid.NewString,
	}
}

// WithLock берет все ключи с одним токеном владельца, выполняет fn и освобождает ключи.
// Ключи не продлеваются: контекст fn отменяется по истечении TTL, и транзакция внутри fn
// откатывается раньше, чем ключ сможет взять другой владелец.
func (l *RedisLocker) WithLock(ctx context.Context, keys []string, fn func(ctx context.Context) error) error {
	keys = normalizeKeys(keys)
	if len(keys) == 0 {
		return fn(ctx)
	}

	token := l.newToken()
	deadline := time.Now().Add(l.opts.Wait)
	releaseCtx := context.WithoutCancel(ctx)

	locked := make([]string, 0, len(keys))
	defer func() {
		for i := len(locked) - 1; i >= 0; i-- {
			_ = l.client.Eval(releaseCtx, releaseScript, []string{locked[i]}, token).Err()
		}
	}()

	for _, key := range keys {
		if err := l.acquire(ctx, key, token, deadline); err != nil {
			return err
		}
		locked = append(locked, key)
	}

	fnCtx, cancel := context.WithTimeout(ctx, l.opts.TTL)
	defer cancel()

	return fn(fnCtx)
}

func (l *RedisLocker) acquire(ctx context.Context, key, token string, deadline time.Time) error {
	for {
		ok, err := l.client.SetNX(ctx, key, token, l.opts.TTL).Result()
		if err != nil {
			return fmt.Errorf("%w: setnx %s: %w", ErrLockBackend, key, err)
		}
		if ok {
			return nil
		}

		if !time.Now().Add(l.opts.Retry).Before(deadline) {
			return fmt.Errorf("%w: %s", ErrLockTimeout, key)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.opts.Retry):
		}
	}
}
