package credentials

import (
	"context"
	"fmt"

	"github.com/samandr77/microservices/mercadopago/internal/clients/mercadopago"
	"github.com/samandr77/microservices/mercadopago/internal/entity"
)

// Gateway talks to the provider with the credentials configured for a store.
type Gateway struct {
	resolver *Resolver
	factory  *mercadopago.Factory
}

func NewGateway(resolver *Resolver, factory *mercadopago.Factory) *Gateway {
	return &Gateway{resolver: resolver, factory: factory}
}

func (g *Gateway) client(ctx context.Context, scope entity.Scope, creds entity.Credentials) (*mercadopago.Client, error) {
	sandbox, err := g.resolver.Sandbox(ctx, scope)
	if err != nil {
		return nil, err
	}

	return g.factory.Build(creds, sandbox)
}

func (g *Gateway) Payment(ctx context.Context, scope entity.Scope, id string) (entity.Payment, error) {
	creds, err := g.resolver.Resolve(ctx, scope)
	if err != nil {
		return entity.Payment{}, fmt.Errorf("resolve credentials: %w", err)
	}

	c, err := g.client(ctx, scope, creds)
	if err != nil {
		return entity.Payment{}, err
	}

	p, err := c.Payment(ctx, id)
	if err != nil {
		return entity.Payment{}, fmt.Errorf("get payment: %w", err)
	}

	return p, nil
}

// AccessToken exchanges the client id and secret configured for the scope.
func (g *Gateway) AccessToken(ctx context.Context, scope entity.Scope) (string, error) {
	creds, err := g.resolver.ClientCredentials(ctx, scope)
	if err != nil {
		return "", fmt.Errorf("resolve client credentials: %w", err)
	}

	c, err := g.client(ctx, scope, creds)
	if err != nil {
		return "", err
	}

	token, err := c.AccessToken(ctx)
	if err != nil {
		return "", fmt.Errorf("exchange access token: %w", err)
	}

	return token, nil
}
