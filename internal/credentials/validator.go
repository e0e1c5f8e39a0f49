package credentials

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/samandr77/microservices/mercadopago/internal/clients/mercadopago"
	"github.com/samandr77/microservices/mercadopago/internal/entity"
)

// Validator asks the provider whether credentials are accepted.
type Validator struct {
	factory *mercadopago.Factory
}

func NewValidator(factory *mercadopago.Factory) *Validator {
	return &Validator{factory: factory}
}

// ValidateToken probes the payment methods listing with the token. 400 and 401 mean the token is
// rejected; any other status means it is accepted. Failing to reach the provider is an error.
func (v *Validator) ValidateToken(ctx context.Context, token string) (bool, error) {
	c, err := v.factory.Build(entity.NewBearerCredentials(token), false)
	if err != nil {
		return false, err
	}

	resp, err := c.PaymentMethods(ctx)
	if err != nil {
		return false, fmt.Errorf("probe payment methods: %w", err)
	}

	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized {
		return false, nil
	}

	return true, nil
}

// ValidateClientCredentials reports whether the pair can be exchanged for an access token.
// Every failure, including an unreachable provider, is reported as false.
func (v *Validator) ValidateClientCredentials(ctx context.Context, clientID, clientSecret string) bool {
	c, err := v.factory.Build(entity.NewClientCredentials(clientID, clientSecret), false)
	if err != nil {
		slog.WarnContext(ctx, "client credentials rejected", "error", err)
		return false
	}

	_, err = c.AccessToken(ctx)
	if err != nil {
		slog.WarnContext(ctx, "client credentials exchange failed", "client_id", clientID, "error", err)
		return false
	}

	return true
}
