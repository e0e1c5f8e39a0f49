// Package settings reads store configuration values by path and scope.
package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samandr77/microservices/mercadopago/internal/entity"
)

type Path string

const (
	PathAccessToken  Path = "payment/mercadopago_custom/access_token"
	PathPublicKey    Path = "payment/mercadopago_custom/public_key"
	PathClientID     Path = "payment/mercadopago_standard/client_id"
	PathClientSecret Path = "payment/mercadopago_standard/client_secret"
	PathSandboxMode  Path = "payment/mercadopago_standard/sandbox_mode"

	PathOrderStatusApproved    Path = "payment/mercadopago/order_status_approved"
	PathOrderStatusRefunded    Path = "payment/mercadopago/order_status_refunded"
	PathOrderStatusInMediation Path = "payment/mercadopago/order_status_in_mediation"
	PathOrderStatusCancelled   Path = "payment/mercadopago/order_status_cancelled"
	PathOrderStatusRejected    Path = "payment/mercadopago/order_status_rejected"
	PathOrderStatusChargeback  Path = "payment/mercadopago/order_status_chargeback"
	PathOrderStatusInProcess   Path = "payment/mercadopago/order_status_in_process"
)

// OrderStatusPath returns the setting holding the order status for a provider status.
// Statuses without their own setting use the in_process one.
func OrderStatusPath(s entity.ProviderStatus) Path {
	switch s {
	case entity.ProviderStatusApproved:
		return PathOrderStatusApproved
	case entity.ProviderStatusRefunded:
		return PathOrderStatusRefunded
	case entity.ProviderStatusInMediation:
		return PathOrderStatusInMediation
	case entity.ProviderStatusCancelled:
		return PathOrderStatusCancelled
	case entity.ProviderStatusRejected:
		return PathOrderStatusRejected
	case entity.ProviderStatusChargeback:
		return PathOrderStatusChargeback
	default:
		return PathOrderStatusInProcess
	}
}

//go:generate go run go.uber.org/mock/mockgen@latest -source=settings.go -destination=../mocks/settings.go -package=mocks

// Store returns the raw value of a path at a scope, or entity.ErrNotFound when the store has no
// entry. An entry cleared to "" is an answer: Layered stops there.
type Store interface {
	Value(ctx context.Context, path Path, scope entity.Scope) (string, error)
}

// String returns the value of path or "" when it is not configured.
func String(ctx context.Context, s Store, path Path, scope entity.Scope) (string, error) {
	v, err := s.Value(ctx, path, scope)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return "", nil
		}

		return "", fmt.Errorf("get %s at %s: %w", path, scope, err)
	}

	return strings.TrimSpace(v), nil
}

// Bool reads a yes/no flag. Missing values are false.
func Bool(ctx context.Context, s Store, path Path, scope entity.Scope) (bool, error) {
	v, err := String(ctx, s, path, scope)
	if err != nil {
		return false, err
	}

	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true, nil
	default:
		return false, nil
	}
}

type key struct {
	path  Path
	scope entity.Scope
}

// Static is an in-memory store. Values set for the default scope are returned for every scope
// that has no value of its own.
type Static struct {
	values map[key]string
}

func NewStatic() *Static {
	return &Static{values: make(map[key]string)}
}

// Set stores a value; empty values are ignored so unset env variables do not shadow other stores.
func (s *Static) Set(path Path, scope entity.Scope, value string) *Static {
	if value == "" {
		return s
	}

	if scope.IsDefault() {
		scope = entity.DefaultScope
	}

	s.values[key{path: path, scope: scope}] = value

	return s
}

func (s *Static) Value(_ context.Context, path Path, scope entity.Scope) (string, error) {
	if scope.IsDefault() {
		scope = entity.DefaultScope
	}

	if v, ok := s.values[key{path: path, scope: scope}]; ok {
		return v, nil
	}

	if v, ok := s.values[key{path: path, scope: entity.DefaultScope}]; ok {
		return v, nil
	}

	return "", fmt.Errorf("%s: %w", path, entity.ErrNotFound)
}

// Layered asks each store in order and returns the first value found.
type Layered []Store

func (l Layered) Value(ctx context.Context, path Path, scope entity.Scope) (string, error) {
	for _, s := range l {
		v, err := s.Value(ctx, path, scope)
		if err == nil {
			return v, nil
		}

		if !errors.Is(err, entity.ErrNotFound) {
			return "", err
		}
	}

	return "", fmt.Errorf("%s: %w", path, entity.ErrNotFound)
}
