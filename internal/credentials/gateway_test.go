package credentials_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/mercadopago/internal/credentials"
	"github.com/samandr77/microservices/mercadopago/internal/entity"
	"github.com/samandr77/microservices/mercadopago/internal/settings"
)

func TestGateway_Payment(t *testing.T) {
	t.Parallel()

	f := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/sandbox/v1/payments/55", r.URL.Path)
		require.Equal(t, "Bearer APP_USR-store-3", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{"id":55,"status":"approved","status_detail":"accredited"}`))
	})

	store := settings.NewStatic().
		Set(settings.PathAccessToken, entity.StoreScope(3), "APP_USR-store-3").
		Set(settings.PathSandboxMode, entity.DefaultScope, "yes")

	g := credentials.NewGateway(credentials.NewResolver(store), f)

	p, err := g.Payment(context.Background(), entity.StoreScope(3), "55")
	require.NoError(t, err)
	require.Equal(t, "approved", p.Status)

	_, err = g.Payment(context.Background(), entity.StoreScope(4), "55")
	require.ErrorIs(t, err, entity.ErrCredentialsNotConfigured)
}

func TestGateway_AccessToken(t *testing.T) {
	t.Parallel()

	f := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/oauth/token", r.URL.Path)

		_, _ = w.Write([]byte(`{"access_token":"exchanged"}`))
	})

	store := settings.NewStatic().
		Set(settings.PathAccessToken, entity.DefaultScope, "ignored").
		Set(settings.PathClientID, entity.DefaultScope, "123").
		Set(settings.PathClientSecret, entity.DefaultScope, "secret")

	token, err := credentials.NewGateway(credentials.NewResolver(store), f).AccessToken(context.Background(), entity.DefaultScope)
	require.NoError(t, err)
	require.Equal(t, "exchanged", token)
}
