package resilience

import (
	"context"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"
)

// RetryConfig параметры повторов с экспоненциальным backoff.
type RetryConfig struct {
	// MaxAttempts общее количество попыток, включая первую
	MaxAttempts uint64
	// BaseDelay начальная задержка между попытками
	BaseDelay time.Duration
	// MaxDelay потолок задержки при экспоненциальном росте
	MaxDelay time.Duration
	// CallTimeout таймаут каждого отдельного вызова; 0 отключает
	CallTimeout time.Duration
}

// DefaultRetryConfig возвращает конфигурацию повторов по умолчанию.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   500 * time.Millisecond,
		MaxDelay:    10 * time.Second,
		CallTimeout: 15 * time.Second,
	}
}

// Retrier оборачивает вызовы транспорта экспоненциальным backoff.
// Решение о повторяемости ошибки делегируется классификатору retryable:
// ErrCircuitOpen и локальные ошибки валидации повтору не подлежат и
// возвращаются немедленно, не расходуя бюджет попыток.
type Retrier struct {
	retryable func(error) bool
	logger    *slog.Logger
	cfg       RetryConfig
}

// NewRetrier создает политику повторов.
// retryable сообщает, является ли ошибка временной; nil означает
// "ничего не повторять".
func NewRetrier(cfg RetryConfig, retryable func(error) bool, logger *slog.Logger) *Retrier {
	def := DefaultRetryConfig()
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = def.MaxAttempts
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = def.BaseDelay
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = def.MaxDelay
	}

	return &Retrier{
		cfg:       cfg,
		retryable: retryable,
		logger:    logger,
	}
}

// Do выполняет fn с повторами. Каждая попытка получает собственный
// контекст с CallTimeout; ошибка после исчерпания бюджета возвращается
// вызывающему как итог раунда.
func (r *Retrier) Do(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	backoff := retry.NewExponential(r.cfg.BaseDelay)
	backoff = retry.WithCappedDuration(r.cfg.MaxDelay, backoff)
	backoff = retry.WithMaxRetries(r.cfg.MaxAttempts-1, backoff)

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		callCtx := ctx
		if r.cfg.CallTimeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, r.cfg.CallTimeout)
			defer cancel()
		}

		err := fn(callCtx)
		if err == nil {
			return nil
		}

		if r.retryable == nil || !r.retryable(err) {
			return err
		}

		r.logger.Warn("Transient error, will retry",
			"operation", op,
			"attempt", attempt,
			"max_attempts", r.cfg.MaxAttempts,
			"error", err)
		return retry.RetryableError(err)
	})
}
