package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"

	"github.com/samandr77/microservices/mercadopago/internal/entity"
	"github.com/samandr77/microservices/mercadopago/pkg/logger"
)

const requestIDHeader = "X-Request-Id"

type Service interface {
	ProcessNotification(ctx context.Context, n entity.PaymentNotification) error
}

type EventHandler struct {
	s Service
}

func NewEventHandler(s Service) *EventHandler {
	return &EventHandler{s: s}
}

// OnPaymentUpdated applies a payment notification to its order.
func (h *EventHandler) OnPaymentUpdated(ctx context.Context, msg kafka.Message) error {
	ctx = logger.WithRequestID(ctx, requestID(msg))

	var event entity.PaymentNotification

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	err = h.s.ProcessNotification(ctx, event)
	if err != nil {
		return fmt.Errorf("process payment notification: %w", err)
	}

	return nil
}

func requestID(msg kafka.Message) string {
	for _, h := range msg.Headers {
		if h.Key == requestIDHeader && len(h.Value) > 0 {
			return string(h.Value)
		}
	}

	return uuid.Must(uuid.NewV4()).String()
}
