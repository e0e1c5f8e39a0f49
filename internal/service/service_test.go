package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/mercadopago/internal/entity"
	"github.com/samandr77/microservices/mercadopago/internal/mocks"
	"github.com/samandr77/microservices/mercadopago/internal/service"
	"github.com/samandr77/microservices/mercadopago/internal/settings"
)

const supportEmail = "support@example.com"

func statusSettings() *settings.Static {
	return settings.NewStatic().
		Set(settings.PathOrderStatusApproved, entity.DefaultScope, "processing").
		Set(settings.PathOrderStatusRefunded, entity.DefaultScope, "closed").
		Set(settings.PathOrderStatusInMediation, entity.DefaultScope, "holded").
		Set(settings.PathOrderStatusCancelled, entity.DefaultScope, "canceled").
		Set(settings.PathOrderStatusRejected, entity.DefaultScope, "canceled").
		Set(settings.PathOrderStatusChargeback, entity.DefaultScope, "holded").
		Set(settings.PathOrderStatusInProcess, entity.DefaultScope, "pending_payment")
}

func multi(v string) *entity.MultiValue {
	m := entity.MultiValue(v)
	return &m
}

func approvedPayment() entity.Payment {
	return entity.Payment{
		ID:                "1234567",
		Status:            "approved",
		StatusDetail:      "accredited",
		ExternalReference: "100000042",
		TotalPaidAmount:   multi("100.00"),
		TransactionAmount: "90.00",
		CouponAmount:      "0",
		ShippingCost:      "5.00",
		Card:              &entity.Card{LastFourDigits: "4242", Cardholder: entity.Cardholder{Name: "APRO"}},
		Payer:             &entity.Payer{FirstName: "Ana", LastName: "Silva", Email: "ana@example.com"},
	}
}

type deps struct {
	repo      *mocks.MockRepository
	gateway   *mocks.MockGateway
	validator *mocks.MockValidator
	resolver  *mocks.MockCredentialResolver
	producer  *mocks.MockProducer
}

func newService(t *testing.T, store settings.Store) (*service.Service, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)

	d := deps{
		repo:      mocks.NewMockRepository(ctrl),
		gateway:   mocks.NewMockGateway(ctrl),
		validator: mocks.NewMockValidator(ctrl),
		resolver:  mocks.NewMockCredentialResolver(ctrl),
		producer:  mocks.NewMockProducer(ctrl),
	}

	return service.New(d.repo, store, d.gateway, d.validator, d.resolver, d.producer, supportEmail), d
}

func TestService_ProcessNotification(t *testing.T) {
	t.Parallel()

	s, d := newService(t, statusSettings())

	order := entity.Order{
		ID:          uuid.Must(uuid.NewV4()),
		IncrementID: "100000042",
		StoreID:     1,
		Status:      "pending",
		State:       "new",
	}

	d.gateway.EXPECT().Payment(gomock.Any(), entity.StoreScope(1), "1234567").Return(approvedPayment(), nil)
	d.repo.EXPECT().OrderByIncrementID(gomock.Any(), "100000042").Return(order, nil)
	d.repo.EXPECT().StateByStatus(gomock.Any(), "processing").Return("processing", nil)

	var saved entity.OrderUpdate

	d.repo.EXPECT().SaveOrderUpdate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, upd entity.OrderUpdate, h entity.StatusHistory) error {
			saved = upd

			require.Equal(t, order.ID, h.OrderID)
			require.Equal(t, "processing", h.Status)
			require.Equal(t,
				"Automatic notification of the Mercado Pago: The payment was approved.\n"+
					"Payment id: 1234567\nStatus: approved\nStatus Detail: accredited",
				h.Comment)
			require.Equal(t, upd.UpdatedAt, h.CreatedAt)

			return nil
		})

	d.producer.EXPECT().SendOrderUpdated(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, o entity.Order, p entity.Payment) {
			require.Equal(t, "processing", o.Status)
			require.Equal(t, "processing", o.State)
			require.True(t, decimal.RequireFromString("100").Equal(o.GrandTotal))
			require.True(t, o.FinanceCostAmount.Valid)
			require.True(t, decimal.RequireFromString("5").Equal(o.FinanceCostAmount.Decimal))
			require.Equal(t, "xxxx xxxx xxxx 4242", p.TruncCard)
			require.Equal(t, "ana@example.com", p.PayerEmail)
		})

	err := s.ProcessNotification(context.Background(), entity.PaymentNotification{PaymentID: "1234567", StoreID: 1})
	require.NoError(t, err)

	require.Equal(t, order.ID, saved.OrderID)
	require.Equal(t, "processing", saved.Status)
	require.Equal(t, "processing", saved.State)
	require.True(t, decimal.RequireFromString("100").Equal(saved.Financials.GrandTotal))
	require.False(t, saved.Financials.DiscountCouponAmount.Valid)
	require.True(t, decimal.RequireFromString("5").Equal(saved.Financials.FinanceCostAmount.Decimal))
}

func TestService_ProcessNotification_Chargeback(t *testing.T) {
	t.Parallel()

	s, d := newService(t, statusSettings())

	p := approvedPayment()
	p.Status = "chargeback"
	p.StatusDetail = "settled"

	order := entity.Order{ID: uuid.Must(uuid.NewV4()), IncrementID: "100000042", Status: "processing"}

	d.repo.EXPECT().OrderByIncrementID(gomock.Any(), "100000042").Return(order, nil)
	d.repo.EXPECT().StateByStatus(gomock.Any(), "holded").Return("holded", nil)
	d.repo.EXPECT().SaveOrderUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	d.producer.EXPECT().SendOrderUpdated(gomock.Any(), gomock.Any(), gomock.Any())
	d.producer.EXPECT().SendNotification(
		gomock.Any(),
		"Order 100000042: payment 1234567 is chargeback",
		gomock.Any(),
		[]string{supportEmail},
	)

	err := s.ProcessNotification(context.Background(), entity.PaymentNotification{Payment: &p})
	require.NoError(t, err)
}

func TestService_ProcessNotification_StatusNotConfigured(t *testing.T) {
	t.Parallel()

	s, d := newService(t, settings.NewStatic())

	order := entity.Order{ID: uuid.Must(uuid.NewV4()), IncrementID: "100000042", Status: "pending", State: "new"}
	p := approvedPayment()

	d.repo.EXPECT().OrderByIncrementID(gomock.Any(), "100000042").Return(order, nil)
	d.repo.EXPECT().SaveOrderUpdate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, upd entity.OrderUpdate, h entity.StatusHistory) error {
			require.Empty(t, upd.Status)
			require.Empty(t, upd.State)
			require.Equal(t, "pending", h.Status)

			return nil
		})
	d.producer.EXPECT().SendOrderUpdated(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, o entity.Order, _ entity.Payment) {
			require.Equal(t, "pending", o.Status)
			require.Equal(t, "new", o.State)
		})

	err := s.ProcessNotification(context.Background(), entity.PaymentNotification{Payment: &p})
	require.NoError(t, err)
}

func TestService_ProcessNotification_UnknownState(t *testing.T) {
	t.Parallel()

	s, d := newService(t, statusSettings())

	order := entity.Order{ID: uuid.Must(uuid.NewV4()), IncrementID: "100000042", Status: "pending", State: "new"}
	p := approvedPayment()

	d.repo.EXPECT().OrderByIncrementID(gomock.Any(), "100000042").Return(order, nil)
	d.repo.EXPECT().StateByStatus(gomock.Any(), "processing").Return("", entity.ErrNotFound)
	d.repo.EXPECT().SaveOrderUpdate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, upd entity.OrderUpdate, _ entity.StatusHistory) error {
			require.Equal(t, "processing", upd.Status)
			require.Empty(t, upd.State)

			return nil
		})
	d.producer.EXPECT().SendOrderUpdated(gomock.Any(), gomock.Any(), gomock.Any())

	err := s.ProcessNotification(context.Background(), entity.PaymentNotification{Payment: &p})
	require.NoError(t, err)
}

func TestService_ProcessNotification_Errors(t *testing.T) {
	t.Parallel()

	errDB := errors.New("connection reset")

	for _, tt := range []struct {
		name    string
		n       func() entity.PaymentNotification
		setup   func(d deps)
		wantErr error
	}{
		{
			name:    "empty notification",
			n:       func() entity.PaymentNotification { return entity.PaymentNotification{} },
			wantErr: entity.ErrInvalidArgument,
		},
		{
			name: "payment without external reference",
			n: func() entity.PaymentNotification {
				p := approvedPayment()
				p.ExternalReference = ""

				return entity.PaymentNotification{Payment: &p}
			},
			wantErr: entity.ErrInvalidArgument,
		},
		{
			name: "credentials not configured",
			n:    func() entity.PaymentNotification { return entity.PaymentNotification{PaymentID: "1", StoreID: 2} },
			setup: func(d deps) {
				d.gateway.EXPECT().Payment(gomock.Any(), entity.StoreScope(2), "1").
					Return(entity.Payment{}, entity.ErrCredentialsNotConfigured)
			},
			wantErr: entity.ErrCredentialsNotConfigured,
		},
		{
			name: "order not found",
			n: func() entity.PaymentNotification {
				p := approvedPayment()
				return entity.PaymentNotification{Payment: &p}
			},
			setup: func(d deps) {
				d.repo.EXPECT().OrderByIncrementID(gomock.Any(), "100000042").Return(entity.Order{}, entity.ErrNotFound)
			},
			wantErr: entity.ErrNotFound,
		},
		{
			name: "save fails",
			n: func() entity.PaymentNotification {
				p := approvedPayment()
				return entity.PaymentNotification{Payment: &p}
			},
			setup: func(d deps) {
				d.repo.EXPECT().OrderByIncrementID(gomock.Any(), "100000042").Return(entity.Order{IncrementID: "100000042"}, nil)
				d.repo.EXPECT().StateByStatus(gomock.Any(), "processing").Return("processing", nil)
				d.repo.EXPECT().SaveOrderUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Return(errDB)
			},
			wantErr: errDB,
		},
	} {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, d := newService(t, statusSettings())

			if tt.setup != nil {
				tt.setup(d)
			}

			err := s.ProcessNotification(context.Background(), tt.n())
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_Preview(t *testing.T) {
	t.Parallel()

	s, _ := newService(t, statusSettings())

	p := approvedPayment()
	p.Status = "pending"
	p.CouponAmount = "10.00"

	preview, err := s.Preview(context.Background(), 1, p)
	require.NoError(t, err)
	require.Equal(t, "pending_payment", preview.OrderStatus)
	require.True(t, decimal.RequireFromString("-10").Equal(preview.Financials.DiscountCouponAmount.Decimal))
	require.True(t, decimal.RequireFromString("15").Equal(preview.Financials.FinanceCostAmount.Decimal))
	require.Equal(t, "xxxx xxxx xxxx 4242", preview.Payment.TruncCard)
	require.Contains(t, preview.Message, "The payment is being processed.")
	require.Contains(t, preview.Message, "Status: pending")
}

func TestService_ValidateCredentials(t *testing.T) {
	t.Parallel()

	errTransport := errors.Join(entity.ErrTransport, errors.New("dial tcp: connection refused"))

	for _, tt := range []struct {
		name    string
		creds   entity.Credentials
		setup   func(v *mocks.MockValidator)
		wantErr error
	}{
		{
			name:  "valid token",
			creds: entity.NewBearerCredentials("APP_USR-token"),
			setup: func(v *mocks.MockValidator) {
				v.EXPECT().ValidateToken(gomock.Any(), "APP_USR-token").Return(true, nil)
			},
		},
		{
			name:  "rejected token",
			creds: entity.NewBearerCredentials("APP_USR-token"),
			setup: func(v *mocks.MockValidator) {
				v.EXPECT().ValidateToken(gomock.Any(), "APP_USR-token").Return(false, nil)
			},
			wantErr: entity.ErrAuthenticationFailure,
		},
		{
			name:  "provider unreachable",
			creds: entity.NewBearerCredentials("APP_USR-token"),
			setup: func(v *mocks.MockValidator) {
				v.EXPECT().ValidateToken(gomock.Any(), "APP_USR-token").Return(false, errTransport)
			},
			wantErr: entity.ErrTransport,
		},
		{
			name:  "valid client credentials",
			creds: entity.NewClientCredentials("123", "secret"),
			setup: func(v *mocks.MockValidator) {
				v.EXPECT().ValidateClientCredentials(gomock.Any(), "123", "secret").Return(true)
			},
		},
		{
			name:  "rejected client credentials",
			creds: entity.NewClientCredentials("123", "secret"),
			setup: func(v *mocks.MockValidator) {
				v.EXPECT().ValidateClientCredentials(gomock.Any(), "123", "secret").Return(false)
			},
			wantErr: entity.ErrAuthenticationFailure,
		},
		{
			name:    "no credentials",
			creds:   entity.Credentials{},
			wantErr: entity.ErrInvalidCredentials,
		},
	} {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, d := newService(t, settings.NewStatic())

			if tt.setup != nil {
				tt.setup(d.validator)
			}

			err := s.ValidateCredentials(context.Background(), tt.creds)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_SaveCredentials(t *testing.T) {
	t.Parallel()

	t.Run("access token", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, settings.NewStatic())

		d.validator.EXPECT().ValidateToken(gomock.Any(), "APP_USR-token").Return(true, nil)
		d.repo.EXPECT().SetValue(gomock.Any(), settings.PathAccessToken, entity.StoreScope(2), "APP_USR-token").Return(nil)

		require.NoError(t, s.SaveCredentials(context.Background(), 2, entity.NewBearerCredentials("APP_USR-token")))
	})

	t.Run("client credentials clear the token", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, settings.NewStatic())

		d.validator.EXPECT().ValidateClientCredentials(gomock.Any(), "123", "secret").Return(true)
		gomock.InOrder(
			d.repo.EXPECT().SetValue(gomock.Any(), settings.PathAccessToken, entity.DefaultScope, "").Return(nil),
			d.repo.EXPECT().SetValue(gomock.Any(), settings.PathClientID, entity.DefaultScope, "123").Return(nil),
			d.repo.EXPECT().SetValue(gomock.Any(), settings.PathClientSecret, entity.DefaultScope, "secret").Return(nil),
		)

		require.NoError(t, s.SaveCredentials(context.Background(), 0, entity.NewClientCredentials("123", "secret")))
	})

	t.Run("rejected credentials are not saved", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, settings.NewStatic())

		d.validator.EXPECT().ValidateToken(gomock.Any(), "APP_USR-token").Return(false, nil)

		err := s.SaveCredentials(context.Background(), 2, entity.NewBearerCredentials("APP_USR-token"))
		require.ErrorIs(t, err, entity.ErrAuthenticationFailure)
	})
}

func TestService_CheckCredentials(t *testing.T) {
	t.Parallel()

	t.Run("not configured", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, settings.NewStatic())

		d.resolver.EXPECT().Resolve(gomock.Any(), entity.DefaultScope).
			Return(entity.Credentials{}, entity.ErrCredentialsNotConfigured)

		require.NoError(t, s.CheckCredentials(context.Background()))
	})

	t.Run("rejected", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, settings.NewStatic())

		d.resolver.EXPECT().Resolve(gomock.Any(), entity.DefaultScope).
			Return(entity.NewClientCredentials("123", "secret"), nil)
		d.validator.EXPECT().ValidateClientCredentials(gomock.Any(), "123", "secret").Return(false)

		require.NoError(t, s.CheckCredentials(context.Background()))
	})

	t.Run("provider unreachable", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, settings.NewStatic())

		d.resolver.EXPECT().Resolve(gomock.Any(), entity.DefaultScope).
			Return(entity.NewBearerCredentials("APP_USR-token"), nil)
		d.validator.EXPECT().ValidateToken(gomock.Any(), "APP_USR-token").Return(false, entity.ErrTransport)

		require.ErrorIs(t, s.CheckCredentials(context.Background()), entity.ErrTransport)
	})
}
