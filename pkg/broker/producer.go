package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/mercadopago/internal/entity"
)

const notificationTypeEmail = "email"

type Producer struct {
	l                  *slog.Logger
	w                  *kafka.Writer
	orderUpdatedTopic  string
	notificationsTopic string
}

func NewProducer(l *slog.Logger, brokers []string, orderUpdatedTopic, notificationsTopic string) *Producer {
	l = l.WithGroup("kafka").With("order_updated_topic", orderUpdatedTopic, "notifications_topic", notificationsTopic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Compression:            0,
		Logger:                 kafka.LoggerFunc(kafkaLog(l, slog.LevelInfo)),
		ErrorLogger:            kafka.LoggerFunc(kafkaLog(l, slog.LevelError)),
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:                  l,
		w:                  w,
		orderUpdatedTopic:  orderUpdatedTopic,
		notificationsTopic: notificationsTopic,
	}
}

type OrderUpdatedEvent struct {
	OrderID              uuid.UUID        `json:"order_id"`
	IncrementID          string           `json:"increment_id"`
	StoreID              int64            `json:"store_id"`
	Status               string           `json:"status"`
	State                string           `json:"state"`
	PaymentID            string           `json:"payment_id"`
	PaymentStatus        string           `json:"payment_status"`
	GrandTotal           decimal.Decimal  `json:"grand_total"`
	DiscountCouponAmount *decimal.Decimal `json:"discount_coupon_amount,omitempty"`
	FinanceCostAmount    *decimal.Decimal `json:"finance_cost_amount,omitempty"`
}

// NotificationEvent is the event the notification service turns into an e-mail.
type NotificationEvent struct {
	Type       string   `json:"type"`
	Subject    string   `json:"subject"`
	Message    string   `json:"message"`
	Recipients []string `json:"recipients"`
}

func nullable(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}

	return &d.Decimal
}

func orderUpdatedMessage(topic string, o entity.Order, p entity.Payment) (kafka.Message, error) {
	event := OrderUpdatedEvent{
		OrderID:              o.ID,
		IncrementID:          o.IncrementID,
		StoreID:              o.StoreID,
		Status:               o.Status,
		State:                o.State,
		PaymentID:            p.ID.String(),
		PaymentStatus:        p.Status,
		GrandTotal:           o.GrandTotal,
		DiscountCouponAmount: nullable(o.DiscountCouponAmount),
		FinanceCostAmount:    nullable(o.FinanceCostAmount),
	}

	b, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal event: %w", err)
	}

	return kafka.Message{
		Key:   []byte(o.IncrementID),
		Value: b,
		Topic: topic,
	}, nil
}

// SendOrderUpdated publishes the state of an order after a payment update.
func (p *Producer) SendOrderUpdated(ctx context.Context, o entity.Order, payment entity.Payment) {
	m, err := orderUpdatedMessage(p.orderUpdatedTopic, o, payment)
	if err != nil {
		p.l.ErrorContext(ctx, err.Error())
		return
	}

	err = p.w.WriteMessages(ctx, m)
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func notificationMessage(topic, subject, message string, recipients []string) (kafka.Message, error) {
	b, err := json.Marshal(NotificationEvent{
		Type:       notificationTypeEmail,
		Subject:    subject,
		Message:    message,
		Recipients: recipients,
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal event: %w", err)
	}

	return kafka.Message{
		Key:   []byte(uuid.Must(uuid.NewV4()).String()),
		Value: b,
		Topic: topic,
	}, nil
}

// SendNotification asks the notification service to e-mail the recipients.
func (p *Producer) SendNotification(ctx context.Context, subject, message string, recipients []string) {
	m, err := notificationMessage(p.notificationsTopic, subject, message, recipients)
	if err != nil {
		p.l.ErrorContext(ctx, err.Error())
		return
	}

	err = p.w.WriteMessages(ctx, m)
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
