package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/postomat-service/internal/entities"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaNotifier_Notify(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	w := &fakeWriter{}
	n := &kafkaNotifier{logger: slog.New(slog.NewTextHandler(io.Discard, nil)), writer: w}

	err := n.Notify(context.Background(), entities.Notification{
		Type:       entities.NotificationParcelPlaced,
		PurchaseID: 42,
		UserID:     10,
		LockerID:   1,
		SlotID:     101,
		ClientQR:   "client-qr",
		At:         at,
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "42", string(w.msgs[0].Key))

	var msg Message
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &msg))
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, "parcel_placed", msg.Type)
	assert.Equal(t, int64(101), msg.SlotID)
	assert.Equal(t, "client-qr", msg.ClientQR)
	assert.True(t, at.Equal(msg.At))

	require.NoError(t, n.Close())
	assert.True(t, w.closed)
}

func TestKafkaNotifier_WriteError(t *testing.T) {
	brokerErr := errors.New("broker down")
	n := &kafkaNotifier{logger: slog.New(slog.NewTextHandler(io.Discard, nil)), writer: &fakeWriter{err: brokerErr}}

	err := n.Notify(context.Background(), entities.Notification{Type: entities.NotificationPickupReminder, PurchaseID: 1})
	assert.ErrorIs(t, err, brokerErr)
}

func TestNoop(t *testing.T) {
	n := NewNoop(slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.NoError(t, n.Notify(context.Background(), entities.Notification{PurchaseID: 1}))
	assert.NoError(t, n.Close())
}
