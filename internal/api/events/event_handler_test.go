package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/mercadopago/internal/api/events"
	"github.com/samandr77/microservices/mercadopago/internal/entity"
	"github.com/samandr77/microservices/mercadopago/pkg/logger"
)

type serviceStub struct {
	got       []entity.PaymentNotification
	requestID string
	err       error
}

func (s *serviceStub) ProcessNotification(ctx context.Context, n entity.PaymentNotification) error {
	s.got = append(s.got, n)
	s.requestID = logger.RequestIDFromCtx(ctx)

	return s.err
}

func TestEventHandler_OnPaymentUpdated(t *testing.T) {
	t.Parallel()

	t.Run("payment id only", func(t *testing.T) {
		t.Parallel()

		s := &serviceStub{}
		h := events.NewEventHandler(s)

		err := h.OnPaymentUpdated(context.Background(), kafka.Message{
			Value:   []byte(`{"payment_id":"1234567","store_id":2}`),
			Headers: []kafka.Header{{Key: "X-Request-Id", Value: []byte("req-1")}},
		})
		require.NoError(t, err)

		require.Len(t, s.got, 1)
		require.Equal(t, "1234567", s.got[0].PaymentID)
		require.Equal(t, int64(2), s.got[0].StoreID)
		require.Nil(t, s.got[0].Payment)
		require.Equal(t, "req-1", s.requestID)
	})

	t.Run("embedded payment", func(t *testing.T) {
		t.Parallel()

		s := &serviceStub{}
		h := events.NewEventHandler(s)

		err := h.OnPaymentUpdated(context.Background(), kafka.Message{
			Value: []byte(`{"payment":{"id":1234567,"status":"approved","total_paid_amount":"50|50"}}`),
		})
		require.NoError(t, err)

		require.Len(t, s.got, 1)
		require.NotNil(t, s.got[0].Payment)
		require.Equal(t, "approved", s.got[0].Payment.Status)
		require.Equal(t, entity.MultiValue("50|50"), *s.got[0].Payment.TotalPaidAmount)
		require.NotEmpty(t, s.requestID)
	})

	t.Run("malformed event", func(t *testing.T) {
		t.Parallel()

		s := &serviceStub{}
		h := events.NewEventHandler(s)

		err := h.OnPaymentUpdated(context.Background(), kafka.Message{Value: []byte(`{"payment_id":`)})
		require.Error(t, err)
		require.Empty(t, s.got)
	})

	t.Run("service error", func(t *testing.T) {
		t.Parallel()

		s := &serviceStub{err: entity.ErrNotFound}
		h := events.NewEventHandler(s)

		err := h.OnPaymentUpdated(context.Background(), kafka.Message{Value: []byte(`{"payment_id":"1"}`)})
		require.True(t, errors.Is(err, entity.ErrNotFound))
	})
}
