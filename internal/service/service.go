package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/mercadopago/internal/entity"
	"github.com/samandr77/microservices/mercadopago/internal/reconcile"
	"github.com/samandr77/microservices/mercadopago/internal/settings"
	"github.com/samandr77/microservices/mercadopago/internal/status"
	"github.com/samandr77/microservices/mercadopago/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	OrderByIncrementID(ctx context.Context, incrementID string) (entity.Order, error)
	StateByStatus(ctx context.Context, status string) (string, error)
	SaveOrderUpdate(ctx context.Context, upd entity.OrderUpdate, history entity.StatusHistory) error
	SetValue(ctx context.Context, path settings.Path, scope entity.Scope, value string) error
}

type Gateway interface {
	Payment(ctx context.Context, scope entity.Scope, id string) (entity.Payment, error)
}

type Validator interface {
	ValidateToken(ctx context.Context, token string) (bool, error)
	ValidateClientCredentials(ctx context.Context, clientID, clientSecret string) bool
}

type CredentialResolver interface {
	Resolve(ctx context.Context, scope entity.Scope) (entity.Credentials, error)
}

type Producer interface {
	SendOrderUpdated(ctx context.Context, o entity.Order, p entity.Payment)
	SendNotification(ctx context.Context, subject, message string, recipients []string)
}

type Service struct {
	repo         Repository
	settings     settings.Store
	gateway      Gateway
	validator    Validator
	resolver     CredentialResolver
	producer     Producer
	supportEmail string
}

func New(
	repo Repository,
	store settings.Store,
	gateway Gateway,
	validator Validator,
	resolver CredentialResolver,
	producer Producer,
	supportEmail string,
) *Service {
	return &Service{
		repo:         repo,
		settings:     store,
		gateway:      gateway,
		validator:    validator,
		resolver:     resolver,
		producer:     producer,
		supportEmail: supportEmail,
	}
}

// ProcessNotification applies a payment update to its order: amounts, status, state and a history comment.
func (s *Service) ProcessNotification(ctx context.Context, n entity.PaymentNotification) error {
	p, err := s.notificationPayment(ctx, n)
	if err != nil {
		return err
	}

	p = p.WithPayerInfo()
	ctx = logger.WithPaymentID(ctx, p.ID.String())

	if p.ExternalReference == "" {
		return fmt.Errorf("payment %s has no external reference: %w", p.ID, entity.ErrInvalidArgument)
	}

	ctx = logger.WithOrderID(ctx, p.ExternalReference)

	order, err := s.repo.OrderByIncrementID(ctx, p.ExternalReference)
	if err != nil {
		return fmt.Errorf("get order %s: %w", p.ExternalReference, err)
	}

	preview, err := s.preview(ctx, order.Scope(), p)
	if err != nil {
		return err
	}

	upd := entity.OrderUpdate{
		OrderID:    order.ID,
		Status:     preview.OrderStatus,
		Financials: preview.Financials,
		UpdatedAt:  time.Now(),
	}

	if upd.Status == "" {
		slog.WarnContext(ctx, "order status is not configured for payment status, keeping order status",
			"payment_status", p.Status, "order_status", order.Status)
	} else {
		upd.State, err = s.repo.StateByStatus(ctx, upd.Status)
		if err != nil {
			if !errors.Is(err, entity.ErrNotFound) {
				return fmt.Errorf("get state of status %s: %w", upd.Status, err)
			}

			slog.WarnContext(ctx, "order status has no state, keeping order state", "order_status", upd.Status)
		}
	}

	history := entity.StatusHistory{
		ID:        uuid.Must(uuid.NewV4()),
		OrderID:   order.ID,
		Status:    order.Status,
		Comment:   preview.Message,
		CreatedAt: upd.UpdatedAt,
	}

	if upd.Status != "" {
		history.Status = upd.Status
	}

	err = s.repo.SaveOrderUpdate(ctx, upd, history)
	if err != nil {
		return fmt.Errorf("save order update: %w", err)
	}

	order.ApplyFinancials(upd.Financials)
	order.Status = history.Status
	order.UpdatedAt = upd.UpdatedAt

	if upd.State != "" {
		order.State = upd.State
	}

	slog.InfoContext(ctx, "order updated from payment",
		"payment_status", p.Status,
		"order_status", order.Status,
		"grand_total", order.GrandTotal.String(),
	)

	s.producer.SendOrderUpdated(ctx, order, p)
	s.notifySupport(ctx, order, p, preview.Message)

	return nil
}

func (s *Service) notificationPayment(ctx context.Context, n entity.PaymentNotification) (entity.Payment, error) {
	if n.Payment != nil {
		return *n.Payment, nil
	}

	if strings.TrimSpace(n.PaymentID) == "" {
		return entity.Payment{}, fmt.Errorf("notification without payment: %w", entity.ErrInvalidArgument)
	}

	p, err := s.gateway.Payment(ctx, entity.StoreScope(n.StoreID), n.PaymentID)
	if err != nil {
		return entity.Payment{}, fmt.Errorf("fetch payment %s: %w", n.PaymentID, err)
	}

	return p, nil
}

// notifySupport e-mails the support address about disputed payments.
func (s *Service) notifySupport(ctx context.Context, o entity.Order, p entity.Payment, message string) {
	if s.supportEmail == "" {
		return
	}

	switch entity.ProviderStatus(p.Status) {
	case entity.ProviderStatusChargeback, entity.ProviderStatusInMediation:
	default:
		return
	}

	subject := fmt.Sprintf("Order %s: payment %s is %s", o.IncrementID, p.ID, p.Status)

	s.producer.SendNotification(ctx, subject, message, []string{s.supportEmail})
}

// Preview computes what the payment would do to an order of the store without changing anything.
func (s *Service) Preview(ctx context.Context, storeID int64, p entity.Payment) (entity.PaymentPreview, error) {
	return s.preview(ctx, entity.StoreScope(storeID), p.WithPayerInfo())
}

func (s *Service) preview(ctx context.Context, scope entity.Scope, p entity.Payment) (entity.PaymentPreview, error) {
	mapper, err := status.LoadMapping(ctx, s.settings, scope)
	if err != nil {
		return entity.PaymentPreview{}, fmt.Errorf("load status mapping: %w", err)
	}

	return entity.PaymentPreview{
		Payment:     p,
		Financials:  reconcile.Reconcile(ctx, p),
		OrderStatus: mapper.MapStatus(p.Status),
		Message:     status.Compose(p.Status, p),
	}, nil
}

// ValidateCredentials checks the shape of the credentials, then asks the provider whether it accepts them.
// Rejected credentials give entity.ErrAuthenticationFailure.
func (s *Service) ValidateCredentials(ctx context.Context, creds entity.Credentials) error {
	mode, err := creds.Mode()
	if err != nil {
		return err
	}

	switch mode {
	case entity.AuthModeBearer:
		ok, err := s.validator.ValidateToken(ctx, creds.Bearer.AccessToken)
		if err != nil {
			return fmt.Errorf("validate access token: %w", err)
		}

		if !ok {
			return fmt.Errorf("access token rejected: %w", entity.ErrAuthenticationFailure)
		}
	case entity.AuthModeClientCredentials:
		if !s.validator.ValidateClientCredentials(ctx, creds.OAuth.ClientID, creds.OAuth.ClientSecret) {
			return fmt.Errorf("client credentials rejected: %w", entity.ErrAuthenticationFailure)
		}
	}

	return nil
}

type configValue struct {
	path  settings.Path
	value string
}

// SaveCredentials stores credentials for a store once the provider accepts them. Saving a client
// pair clears the access token of the scope, as a token would take precedence over it.
func (s *Service) SaveCredentials(ctx context.Context, storeID int64, creds entity.Credentials) error {
	err := s.ValidateCredentials(ctx, creds)
	if err != nil {
		return err
	}

	scope := entity.StoreScope(storeID)

	values := []configValue{{path: settings.PathAccessToken}}

	if creds.Bearer != nil {
		values[0].value = creds.Bearer.AccessToken
	} else {
		values = append(values,
			configValue{path: settings.PathClientID, value: creds.OAuth.ClientID},
			configValue{path: settings.PathClientSecret, value: creds.OAuth.ClientSecret},
		)
	}

	for _, v := range values {
		err = s.repo.SetValue(ctx, v.path, scope, v.value)
		if err != nil {
			return fmt.Errorf("save %s: %w", v.path, err)
		}
	}

	slog.InfoContext(ctx, "mercadopago credentials saved", "scope", scope.String(), "credentials", creds.String())

	return nil
}

// CheckCredentials verifies that the default scope credentials are still accepted by the provider.
func (s *Service) CheckCredentials(ctx context.Context) error {
	creds, err := s.resolver.Resolve(ctx, entity.DefaultScope)
	if err != nil {
		if errors.Is(err, entity.ErrCredentialsNotConfigured) {
			slog.WarnContext(ctx, "mercadopago credentials are not configured")
			return nil
		}

		return fmt.Errorf("resolve credentials: %w", err)
	}

	err = s.ValidateCredentials(ctx, creds)
	if err != nil {
		if errors.Is(err, entity.ErrAuthenticationFailure) {
			slog.WarnContext(ctx, "mercadopago rejected the configured credentials, check your credentials",
				"credentials", creds.String())

			return nil
		}

		return err
	}

	slog.DebugContext(ctx, "mercadopago credentials are valid", "credentials", creds.String())

	return nil
}
