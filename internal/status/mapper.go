// Package status maps provider payment statuses to order statuses and composes order history comments.
package status

import (
	"context"
	"fmt"

	"github.com/samandr77/microservices/mercadopago/internal/entity"
	"github.com/samandr77/microservices/mercadopago/internal/settings"
)

// Mapper resolves provider statuses to the order statuses configured for a scope.
type Mapper struct {
	statuses map[entity.ProviderStatus]string
}

func NewMapper(statuses map[entity.ProviderStatus]string) Mapper {
	m := Mapper{statuses: make(map[entity.ProviderStatus]string, len(statuses))}

	for k, v := range statuses {
		m.statuses[k] = v
	}

	return m
}

// LoadMapping reads the order status configured for every provider status at the scope.
func LoadMapping(ctx context.Context, store settings.Store, scope entity.Scope) (Mapper, error) {
	statuses := make(map[entity.ProviderStatus]string, len(entity.ProviderStatuses))

	for _, s := range entity.ProviderStatuses {
		v, err := settings.String(ctx, store, settings.OrderStatusPath(s), scope)
		if err != nil {
			return Mapper{}, fmt.Errorf("load order status for %s: %w", s, err)
		}

		statuses[s] = v
	}

	return Mapper{statuses: statuses}, nil
}

// MapStatus returns the order status for a provider status. Unknown statuses get the in_process one.
func (m Mapper) MapStatus(providerStatus string) string {
	if v, ok := m.statuses[entity.ProviderStatus(providerStatus)]; ok {
		return v
	}

	return m.statuses[entity.ProviderStatusInProcess]
}
