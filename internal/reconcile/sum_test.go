package reconcile_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/mercadopago/internal/entity"
	"github.com/samandr77/microservices/mercadopago/internal/reconcile"
)

func TestSum(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name  string
		value entity.MultiValue
		want  string
	}{
		{name: "empty", value: "", want: "0"},
		{name: "blank", value: "   ", want: "0"},
		{name: "single", value: "10.50", want: "10.5"},
		{name: "three instruments", value: "10|20|30", want: "60"},
		{name: "two cards", value: "100.00|50.00", want: "150"},
		{name: "spaces inside tokens", value: " 1 000.25 | 4.75 ", want: "1005"},
		{name: "malformed token is zero", value: "10|abc|5", want: "15"},
		{name: "empty token is zero", value: "10||5", want: "15"},
		{name: "negative token is zero", value: "10|-5", want: "10"},
		{name: "no float drift", value: "0.1|0.2", want: "0.3"},
	} {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := reconcile.Sum(context.Background(), tt.value)
			require.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}
