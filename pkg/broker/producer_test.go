package broker

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/mercadopago/internal/entity"
)

func TestOrderUpdatedMessage(t *testing.T) {
	t.Parallel()

	o := entity.Order{
		ID:                uuid.Must(uuid.FromString("8d1b5f5e-8d43-4d6e-9a55-3c4a8f3e2b10")),
		IncrementID:       "100000042",
		StoreID:           1,
		Status:            "processing",
		State:             "processing",
		GrandTotal:        decimal.RequireFromString("100"),
		FinanceCostAmount: decimal.NewNullDecimal(decimal.RequireFromString("5")),
	}

	m, err := orderUpdatedMessage("order.updated", o, entity.Payment{ID: "123", Status: "approved"})
	require.NoError(t, err)
	require.Equal(t, "order.updated", m.Topic)
	require.Equal(t, "100000042", string(m.Key))
	require.JSONEq(t, `{
		"order_id": "8d1b5f5e-8d43-4d6e-9a55-3c4a8f3e2b10",
		"increment_id": "100000042",
		"store_id": 1,
		"status": "processing",
		"state": "processing",
		"payment_id": "123",
		"payment_status": "approved",
		"grand_total": "100",
		"finance_cost_amount": "5"
	}`, string(m.Value))
}

func TestNotificationMessage(t *testing.T) {
	t.Parallel()

	m, err := notificationMessage("notifications", "Chargeback", "body", []string{"support@example.com"})
	require.NoError(t, err)
	require.Equal(t, "notifications", m.Topic)
	require.NotEmpty(t, m.Key)
	require.JSONEq(t, `{
		"type": "email",
		"subject": "Chargeback",
		"message": "body",
		"recipients": ["support@example.com"]
	}`, string(m.Value))
}
