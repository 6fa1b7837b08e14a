package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/postomat-service/internal/config"
	"github.com/SergeyBogomolovv/postomat-service/internal/entities"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ErrQueueFull = errors.New("notification queue is full")
	ErrClosed    = errors.New("notification dispatcher is closed")
)

var notificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "postomat_service",
		Subsystem: "notify",
		Name:      "notifications_total",
		Help:      "Notifications handed to the dispatcher by outcome",
	},
	[]string{"outcome"},
)

const drainTimeout = 5 * time.Second

type Sender interface {
	Notify(ctx context.Context, msg entities.Notification) error
	Close() error
}

// Dispatcher отвязывает доставку от запроса: Notify только ставит
// уведомление в очередь, отправкой занимается один воркер.
type Dispatcher struct {
	logger  *slog.Logger
	sender  Sender
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan entities.Notification
	done   chan struct{}
	once   sync.Once
}

func NewDispatcher(logger *slog.Logger, sender Sender, cfg config.Notifications) *Dispatcher {
	return &Dispatcher{
		logger:  logger.With(slog.String("component", "notify-dispatcher")),
		sender:  sender,
		timeout: cfg.SendTimeout,
		queue:   make(chan entities.Notification, cfg.QueueSize),
		done:    make(chan struct{}),
	}
}

// Notify не блокируется: при полной очереди уведомление теряется.
func (d *Dispatcher) Notify(_ context.Context, msg entities.Notification) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		notificationsTotal.WithLabelValues("dropped").Inc()
		return ErrClosed
	}

	select {
	case d.queue <- msg:
		notificationsTotal.WithLabelValues("queued").Inc()
		return nil
	default:
		notificationsTotal.WithLabelValues("dropped").Inc()
		return ErrQueueFull
	}
}

// Start запускает воркер. Воркер живёт до Close, чтобы дослать очередь.
func (d *Dispatcher) Start(_ context.Context) error {
	d.once.Do(func() {
		go d.run()
	})
	return nil
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for msg := range d.queue {
		d.send(msg)
	}
}

func (d *Dispatcher) send(msg entities.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if err := d.sender.Notify(ctx, msg); err != nil {
		notificationsTotal.WithLabelValues("failed").Inc()
		d.logger.Warn("failed to deliver notification",
			slog.String("type", string(msg.Type)),
			slog.Int64("purchase_id", msg.PurchaseID),
			slog.Any("error", err),
		)
		return
	}
	notificationsTotal.WithLabelValues("sent").Inc()
}

func (d *Dispatcher) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	// Воркер мог так и не стартовать
	d.Start(context.Background())

	select {
	case <-d.done:
	case <-time.After(drainTimeout):
		d.logger.Warn("notification queue not drained", slog.Int("pending", len(d.queue)))
	}

	if err := d.sender.Close(); err != nil {
		return fmt.Errorf("failed to close notifier: %w", err)
	}
	return nil
}
