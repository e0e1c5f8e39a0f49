package status

import (
	"strings"

	"github.com/samandr77/microservices/mercadopago/internal/entity"
)

const messagePrefix = "Automatic notification of the Mercado Pago: "

var templates = map[entity.ProviderStatus]string{
	entity.ProviderStatusApproved:    messagePrefix + "The payment was approved.",
	entity.ProviderStatusRefunded:    messagePrefix + "The payment was refunded.",
	entity.ProviderStatusInMediation: messagePrefix + "The payment is in mediation or the purchase was unknown by the customer.",
	entity.ProviderStatusCancelled:   messagePrefix + "The payment was cancelled.",
	entity.ProviderStatusRejected:    messagePrefix + "The payment was rejected.",
	entity.ProviderStatusChargeback:  messagePrefix + "One chargeback was initiated for this payment.",
	entity.ProviderStatusInProcess:   messagePrefix + "The payment is being processed.",
}

// Template returns the human readable text for a status; unknown statuses get the in_process one.
func Template(statusKey string) string {
	if t, ok := templates[entity.ProviderStatus(statusKey)]; ok {
		return t
	}

	return templates[entity.ProviderStatusInProcess]
}

// Compose builds the order history comment for a payment update.
func Compose(statusKey string, p entity.Payment) string {
	var b strings.Builder

	b.WriteString(Template(statusKey))
	b.WriteString("\nPayment id: ")
	b.WriteString(p.ID.String())
	b.WriteString("\nStatus: ")
	b.WriteString(p.Status)
	b.WriteString("\nStatus Detail: ")
	b.WriteString(p.StatusDetail)

	return b.String()
}
