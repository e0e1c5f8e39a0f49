// Package reconcile turns a provider payment into the monetary breakdown of an order.
package reconcile

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/mercadopago/internal/entity"
)

// Reconcile computes the order financials of a payment.
//
// The grand total is the total paid by the customer. Whatever the customer paid on top of
// transaction amount and shipping, after the coupon, is reported as finance cost (installment
// interest). Discount and finance cost are informational and never change the grand total.
//
// The transaction_details fallback is read as a single amount: split payments always carry the
// top-level total_paid_amount.
func Reconcile(ctx context.Context, p entity.Payment) entity.OrderFinancials {
	var balance decimal.Decimal

	if p.TotalPaidAmount != nil {
		balance = Sum(ctx, *p.TotalPaidAmount)
	} else {
		balance = p.TransactionDetails.TotalPaidAmount
	}

	f := entity.OrderFinancials{
		GrandTotal:     balance,
		BaseGrandTotal: balance,
	}

	couponAmount := Sum(ctx, p.CouponAmount)
	transactionAmount := Sum(ctx, p.TransactionAmount)
	shippingCost := Sum(ctx, p.ShippingCost)

	if couponAmount.IsPositive() {
		discount := decimal.NewNullDecimal(couponAmount.Neg())

		f.DiscountCouponAmount = discount
		f.BaseDiscountCouponAmount = discount

		balance = balance.Sub(transactionAmount.Sub(couponAmount).Add(shippingCost))
	} else {
		balance = balance.Sub(transactionAmount).Sub(shippingCost)
	}

	if balance.IsPositive() {
		financeCost := decimal.NewNullDecimal(balance)

		f.FinanceCostAmount = financeCost
		f.BaseFinanceCostAmount = financeCost
	}

	return f
}
