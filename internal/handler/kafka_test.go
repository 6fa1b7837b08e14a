package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/postomat-service/internal/entities"
	mocks "github.com/SergeyBogomolovv/postomat-service/internal/handler/mocks"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestKafkaHandler_handleSavePurchase(t *testing.T) {
	valid := `{"id":1,"userId":10,"productId":7,"postomatId":3,"deliveryMethod":"POSTOMAT","parcel":{"width":100,"height":50,"length":200}}`

	testCases := []struct {
		name         string
		value        string
		mockBehavior func(saver *mocks.MockPurchaseSaver)
		wantErr      bool
	}{
		{
			name:  "success",
			value: valid,
			mockBehavior: func(saver *mocks.MockPurchaseSaver) {
				saver.EXPECT().SavePurchase(mock.Anything, mock.MatchedBy(func(p entities.Purchase) bool {
					return p.ID == 1 && p.PostomatID == 3 && p.Parcel.Length == 200 && p.DeliveryMethod == entities.DeliveryPostomat
				})).Return(nil).Once()
			},
		},
		{
			name:         "malformed json",
			value:        `{"id":`,
			mockBehavior: func(saver *mocks.MockPurchaseSaver) {},
			wantErr:      true,
		},
		{
			name:         "unknown delivery method",
			value:        `{"id":1,"userId":10,"productId":7,"deliveryMethod":"DRONE"}`,
			mockBehavior: func(saver *mocks.MockPurchaseSaver) {},
			wantErr:      true,
		},
		{
			name:         "negative dimensions",
			value:        `{"id":1,"userId":10,"productId":7,"deliveryMethod":"BRANCH","parcel":{"width":-1}}`,
			mockBehavior: func(saver *mocks.MockPurchaseSaver) {},
			wantErr:      true,
		},
		{
			name:  "save error",
			value: valid,
			mockBehavior: func(saver *mocks.MockPurchaseSaver) {
				saver.EXPECT().SavePurchase(mock.Anything, mock.Anything).Return(errors.New("db error")).Once()
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			saver := mocks.NewMockPurchaseSaver(t)
			tc.mockBehavior(saver)

			h := &kafkaHandler{
				logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
				validate: validator.New(),
				saver:    saver,
			}

			err := h.handleSavePurchase(context.Background(), kafka.Message{Value: []byte(tc.value)})
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
