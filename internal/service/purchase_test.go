package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/postomat-service/internal/clock"
	"github.com/SergeyBogomolovv/postomat-service/internal/entities"
	"github.com/SergeyBogomolovv/postomat-service/internal/service"
	mocks "github.com/SergeyBogomolovv/postomat-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPurchaseService_SavePurchase(t *testing.T) {
	type MockBehavior func(repo *mocks.MockPurchaseStore)

	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		purchase     entities.Purchase
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:     "OK",
			purchase: entities.Purchase{ID: 1, DeliveryMethod: entities.DeliveryPostomat, PostomatID: lockerID},
			mockBehavior: func(repo *mocks.MockPurchaseStore) {
				repo.EXPECT().SavePurchase(mock.Anything, mock.MatchedBy(func(p entities.Purchase) bool {
					return p.ID == 1 && p.DateBuy.Equal(start)
				})).Return(nil)
			},
		},
		{
			name:     "Branch delivery needs no locker",
			purchase: entities.Purchase{ID: 2, DeliveryMethod: entities.DeliveryBranch},
			mockBehavior: func(repo *mocks.MockPurchaseStore) {
				repo.EXPECT().SavePurchase(mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name:         "Postomat delivery without locker",
			purchase:     entities.Purchase{ID: 3, DeliveryMethod: entities.DeliveryCourier, CourierMode: entities.CourierModePostomat},
			mockBehavior: func(repo *mocks.MockPurchaseStore) {},
			wantErr:      entities.ErrInvalidPurchase,
		},
		{
			name:     "Retry works (first attempt fails, second succeeds)",
			purchase: entities.Purchase{ID: 4, DeliveryMethod: entities.DeliveryBranch},
			mockBehavior: func(repo *mocks.MockPurchaseStore) {
				// первая попытка падает
				repo.EXPECT().SavePurchase(mock.Anything, mock.Anything).
					Once().Return(errors.New("temporary error"))
				// вторая попытка - всё ок
				repo.EXPECT().SavePurchase(mock.Anything, mock.Anything).
					Once().Return(nil)
			},
		},
		{
			name:     "Context canceled is not retried",
			purchase: entities.Purchase{ID: 5, DeliveryMethod: entities.DeliveryBranch},
			mockBehavior: func(repo *mocks.MockPurchaseStore) {
				repo.EXPECT().SavePurchase(mock.Anything, mock.Anything).
					Once().Return(errors.Join(dbError, context.Canceled))
			},
			wantErr: context.Canceled,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockPurchaseStore(t)
			notifier := mocks.NewMockNotifier(t)
			tc.mockBehavior(repo)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			svc := service.NewPurchaseService(logger, repo, notifier, clock.NewManual(start))

			err := svc.SavePurchase(context.Background(), tc.purchase)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPurchaseService_AssignCourier(t *testing.T) {
	type MockBehavior func(repo *mocks.MockPurchaseStore, notifier *mocks.MockNotifier)

	created := entities.Purchase{
		ID:             1,
		UserID:         buyerID,
		PostomatID:     lockerID,
		DeliveryMethod: entities.DeliveryPostomat,
		Status:         entities.StatusCreated,
	}
	assigned := created
	assigned.CourierID = courierID
	assigned.CourierQR = "secret"
	assigned.Status = entities.StatusCourierAssigned

	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		want         entities.Purchase
		wantErr      error
		wantReason   entities.Reason
	}{
		{
			name: "OK",
			mockBehavior: func(repo *mocks.MockPurchaseStore, notifier *mocks.MockNotifier) {
				repo.EXPECT().GetPurchase(mock.Anything, int64(1)).Return(created, nil)
				repo.EXPECT().AssignCourier(mock.Anything, int64(1), courierID, mock.AnythingOfType("string")).Return(assigned, nil)
				notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(n entities.Notification) bool {
					return n.Type == entities.NotificationCourierAssigned && n.UserID == courierID
				})).Return(nil)
			},
			want: assigned,
		},
		{
			name: "Notifier failure is ignored",
			mockBehavior: func(repo *mocks.MockPurchaseStore, notifier *mocks.MockNotifier) {
				repo.EXPECT().GetPurchase(mock.Anything, int64(1)).Return(created, nil)
				repo.EXPECT().AssignCourier(mock.Anything, int64(1), courierID, mock.Anything).Return(assigned, nil)
				notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(errors.New("broker down"))
			},
			want: assigned,
		},
		{
			name: "Not found",
			mockBehavior: func(repo *mocks.MockPurchaseStore, notifier *mocks.MockNotifier) {
				repo.EXPECT().GetPurchase(mock.Anything, int64(1)).Return(entities.Purchase{}, entities.ErrPurchaseNotFound)
			},
			wantErr: entities.ErrPurchaseNotFound,
		},
		{
			name: "Branch delivery",
			mockBehavior: func(repo *mocks.MockPurchaseStore, notifier *mocks.MockNotifier) {
				branch := created
				branch.DeliveryMethod = entities.DeliveryBranch
				repo.EXPECT().GetPurchase(mock.Anything, int64(1)).Return(branch, nil)
			},
			wantReason: entities.ReasonNotPostomat,
		},
		{
			name: "Raced with a reservation",
			mockBehavior: func(repo *mocks.MockPurchaseStore, notifier *mocks.MockNotifier) {
				repo.EXPECT().GetPurchase(mock.Anything, int64(1)).Return(created, nil)
				repo.EXPECT().AssignCourier(mock.Anything, int64(1), courierID, mock.Anything).Return(entities.Purchase{}, entities.ErrTransitionRejected)
			},
			wantReason: entities.ReasonInvalidState,
		},
		{
			name: "DB error",
			mockBehavior: func(repo *mocks.MockPurchaseStore, notifier *mocks.MockNotifier) {
				repo.EXPECT().GetPurchase(mock.Anything, int64(1)).Return(created, nil)
				repo.EXPECT().AssignCourier(mock.Anything, int64(1), courierID, mock.Anything).Return(entities.Purchase{}, dbError)
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockPurchaseStore(t)
			notifier := mocks.NewMockNotifier(t)
			tc.mockBehavior(repo, notifier)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			svc := service.NewPurchaseService(logger, repo, notifier, clock.NewManual(start))

			got, err := svc.AssignCourier(context.Background(), 1, courierID)
			switch {
			case tc.wantReason != "":
				assertReason(t, err, tc.wantReason)
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
			}
		})
	}
}
