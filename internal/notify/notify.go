package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/postomat-service/internal/config"
	"github.com/SergeyBogomolovv/postomat-service/internal/entities"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Message уходит в топик уведомлений
type Message struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	PurchaseID int64     `json:"purchaseId"`
	UserID     int64     `json:"userId"`
	LockerID   int64     `json:"lockerId,omitempty"`
	SlotID     int64     `json:"slotId,omitempty"`
	ClientQR   string    `json:"clientQr,omitempty"`
	At         time.Time `json:"at"`
}

func MessageFromEntity(n entities.Notification) Message {
	return Message{
		ID:         uuid.NewString(),
		Type:       string(n.Type),
		PurchaseID: n.PurchaseID,
		UserID:     n.UserID,
		LockerID:   n.LockerID,
		SlotID:     n.SlotID,
		ClientQR:   n.ClientQR,
		At:         n.At,
	}
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaNotifier struct {
	logger *slog.Logger
	writer messageWriter
}

func NewKafkaNotifier(logger *slog.Logger, cfg config.Kafka) *kafkaNotifier {
	return &kafkaNotifier{
		logger: logger.With(slog.String("notifier", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.NotificationsTopic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: cfg.BatchTimeout,
			// Доставка best-effort, не ждём подтверждения всех реплик
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// Ключ сообщения - id заказа, события одного заказа идут по порядку в партиции
func (n *kafkaNotifier) Notify(ctx context.Context, msg entities.Notification) error {
	data, err := json.Marshal(MessageFromEntity(msg))
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(msg.PurchaseID, 10)),
		Value: data,
	})
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	n.logger.Debug("notification published", slog.String("type", string(msg.Type)), slog.Int64("purchase_id", msg.PurchaseID))
	return nil
}

func (n *kafkaNotifier) Close() error {
	return n.writer.Close()
}

type noop struct {
	logger *slog.Logger
}

func NewNoop(logger *slog.Logger) *noop {
	return &noop{logger: logger.With(slog.String("notifier", "noop"))}
}

func (n *noop) Notify(_ context.Context, msg entities.Notification) error {
	n.logger.Debug("notification dropped", slog.String("type", string(msg.Type)), slog.Int64("purchase_id", msg.PurchaseID))
	return nil
}

func (n *noop) Close() error {
	return nil
}
