// Package credentials resolves provider credentials from store settings and checks them against the provider.
package credentials

import (
	"context"
	"fmt"

	"github.com/samandr77/microservices/mercadopago/internal/entity"
	"github.com/samandr77/microservices/mercadopago/internal/settings"
)

type Resolver struct {
	store settings.Store
}

func NewResolver(store settings.Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve returns the access token of the scope when one is configured, otherwise the client id
// and secret pair. The result always holds exactly one variant.
func (r *Resolver) Resolve(ctx context.Context, scope entity.Scope) (entity.Credentials, error) {
	token, err := settings.String(ctx, r.store, settings.PathAccessToken, scope)
	if err != nil {
		return entity.Credentials{}, fmt.Errorf("read access token: %w", err)
	}

	if token != "" {
		return entity.NewBearerCredentials(token), nil
	}

	return r.ClientCredentials(ctx, scope)
}

// ClientCredentials reads only the client id and secret pair.
func (r *Resolver) ClientCredentials(ctx context.Context, scope entity.Scope) (entity.Credentials, error) {
	clientID, err := settings.String(ctx, r.store, settings.PathClientID, scope)
	if err != nil {
		return entity.Credentials{}, fmt.Errorf("read client id: %w", err)
	}

	clientSecret, err := settings.String(ctx, r.store, settings.PathClientSecret, scope)
	if err != nil {
		return entity.Credentials{}, fmt.Errorf("read client secret: %w", err)
	}

	if clientID == "" || clientSecret == "" {
		return entity.Credentials{}, fmt.Errorf("scope %s: %w", scope, entity.ErrCredentialsNotConfigured)
	}

	return entity.NewClientCredentials(clientID, clientSecret), nil
}

func (r *Resolver) Sandbox(ctx context.Context, scope entity.Scope) (bool, error) {
	sandbox, err := settings.Bool(ctx, r.store, settings.PathSandboxMode, scope)
	if err != nil {
		return false, fmt.Errorf("read sandbox mode: %w", err)
	}

	return sandbox, nil
}
