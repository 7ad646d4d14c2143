package resilience

import (
	"errors"
	"log/slog"
	"sync"
	"time"
)

// ErrCircuitOpen вызов отклонен немедленно: breaker разомкнут,
// сетевой вызов не выполняется и retry-бюджет не расходуется.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// State состояние circuit breaker. Переходы выражены явным enum,
// а не типами исключений.
type State int

const (
	// StateClosed вызовы проходят насквозь
	StateClosed State = iota
	// StateOpen вызовы немедленно завершаются ErrCircuitOpen
	StateOpen
	// StateHalfOpen разрешен единственный пробный вызов
	StateHalfOpen
)

// String возвращает строковое представление состояния.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

// BreakerConfig конфигурация circuit breaker.
type BreakerConfig struct {
	// WindowSize размер скользящего окна исходов вызовов
	WindowSize int
	// FailureThreshold доля отказов в окне (0..1), при превышении которой breaker размыкается
	FailureThreshold float64
	// ResetTimeout пауза в Open, после которой разрешается пробный вызов
	ResetTimeout time.Duration
}

// DefaultBreakerConfig возвращает конфигурацию breaker по умолчанию.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		WindowSize:       8,
		FailureThreshold: 0.5,
		ResetTimeout:     30 * time.Second,
	}
}

// Breaker защищает оркестратор от повторных обращений к нездоровому
// удаленному эндпоинту. Closed -> Open при превышении доли отказов в
// скользящем окне, Open -> HalfOpen по истечении ResetTimeout,
// HalfOpen -> Closed при успехе пробного вызова и обратно в Open при отказе.
//
// Доля отказов считается относительно размера окна, а не количества уже
// записанных исходов: свежий breaker не размыкается от первой же ошибки.
type Breaker struct {
	logger   *slog.Logger
	now      func() time.Time
	window   []bool
	cfg      BreakerConfig
	openedAt time.Time
	idx      int
	count    int
	failures int
	state    State
	trial    bool
	mu       sync.Mutex
}

// NewBreaker создает circuit breaker в состоянии Closed.
func NewBreaker(cfg BreakerConfig, logger *slog.Logger) *Breaker {
	def := DefaultBreakerConfig()
	if cfg.WindowSize <= 0 {
		cfg.WindowSize = def.WindowSize
	}
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = def.FailureThreshold
	}
	if cfg.ResetTimeout <= 0 {
		cfg.ResetTimeout = def.ResetTimeout
	}

	return &Breaker{
		cfg:    cfg,
		window: make([]bool, cfg.WindowSize),
		state:  StateClosed,
		logger: logger,
		now:    time.Now,
	}
}

// State возвращает текущее состояние breaker.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.maybeHalfOpen()
	return b.state
}

// Allow сообщает, разрешен ли вызов. В Open возвращает ErrCircuitOpen,
// в HalfOpen пропускает ровно один пробный вызов.
func (b *Breaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.maybeHalfOpen()

	switch b.state {
	case StateOpen:
		return ErrCircuitOpen
	case StateHalfOpen:
		if b.trial {
			return ErrCircuitOpen
		}
		b.trial = true
		return nil
	default:
		return nil
	}
}

// Record фиксирует исход разрешенного вызова и выполняет переходы состояний.
func (b *Breaker) Record(success bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateHalfOpen {
		b.trial = false
		if success {
			b.toClosed()
		} else {
			b.toOpen()
		}
		return
	}

	b.record(success)

	if b.state == StateClosed && b.failureRate() > b.cfg.FailureThreshold {
		b.toOpen()
	}
}

// maybeHalfOpen переводит Open -> HalfOpen по истечении ResetTimeout.
// Вызывается под мьютексом.
func (b *Breaker) maybeHalfOpen() {
	if b.state == StateOpen && b.now().Sub(b.openedAt) >= b.cfg.ResetTimeout {
		b.state = StateHalfOpen
		b.trial = false
		b.logger.Info("Circuit breaker half-open, allowing trial call")
	}
}

func (b *Breaker) record(success bool) {
	if b.count == len(b.window) {
		// Окно полное: вытесняемый исход покидает статистику
		if !b.window[b.idx] {
			b.failures--
		}
	} else {
		b.count++
	}

	b.window[b.idx] = success
	if !success {
		b.failures++
	}
	b.idx = (b.idx + 1) % len(b.window)
}

// failureRate считает долю отказов относительно полного размера окна.
func (b *Breaker) failureRate() float64 {
	return float64(b.failures) / float64(len(b.window))
}

func (b *Breaker) toOpen() {
	b.state = StateOpen
	b.openedAt = b.now()
	b.logger.Warn("Circuit breaker opened",
		"failures", b.failures,
		"window", len(b.window),
		"reset_timeout", b.cfg.ResetTimeout)
}

func (b *Breaker) toClosed() {
	b.state = StateClosed
	b.window = make([]bool, b.cfg.WindowSize)
	b.idx = 0
	b.count = 0
	b.failures = 0
	b.logger.Info("Circuit breaker closed after successful trial")
}
