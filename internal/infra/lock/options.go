package lock

import (
	"slices"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Options параметры ожидания и удержания блокировок
type Options struct {
	// TTL время жизни ключа в Redis, страхует от зависших владельцев.
	// Должен превышать худшее время транзакции: по его истечении контекст fn отменяется
	TTL time.Duration
	// Wait сколько ждать блокировку, прежде чем вернуть ErrLockTimeout
	Wait time.Duration
	// Retry пауза между попытками взять ключ в Redis
	Retry time.Duration
}

func (o Options) withDefaults() Options {
	if o.TTL <= 0 {
		o.TTL = domain.DefaultLockTTLSeconds * time.Second
	}
	if o.Wait <= 0 {
		o.Wait = domain.DefaultLockWaitMillis * time.Millisecond
	}
	if o.Retry <= 0 {
		o.Retry = domain.DefaultLockRetryMillis * time.Millisecond
	}
	return o
}

// normalizeKeys сортирует ключи и убирает повторы: все владельцы берут ключи
// в одном порядке, поэтому взаимных блокировок нет
func normalizeKeys(keys []string) []string {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}
