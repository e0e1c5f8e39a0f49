package reconcile

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/mercadopago/internal/entity"
)

// Sum adds up every amount of a multi-instrument field. Blank values sum to zero.
//
// Tokens that are not a non-negative decimal count as zero so a slightly malformed provider
// payload never blocks order processing; each such token is logged as a warning. Negative
// tokens are dropped rather than added, so the sum is never below zero.
func Sum(ctx context.Context, v entity.MultiValue) decimal.Decimal {
	total := decimal.Zero

	if strings.TrimSpace(v.String()) == "" {
		return total
	}

	for _, token := range strings.Split(v.String(), entity.MultiValueSeparator) {
		token = strings.Join(strings.Fields(token), "")
		if token == "" {
			continue
		}

		amount, err := decimal.NewFromString(token)
		if err != nil {
			slog.WarnContext(ctx, "malformed amount token coerced to zero",
				"value", v.String(), "token", token, "error", err)

			continue
		}

		if amount.IsNegative() {
			slog.WarnContext(ctx, "negative amount token coerced to zero", "value", v.String(), "token", token)
			continue
		}

		total = total.Add(amount)
	}

	return total
}
