package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// OrderFinancials is the monetary breakdown derived from a payment. Base amounts mirror the
// display amounts: no currency conversion happens here.
// Optional amounts with Valid == false are left untouched on the order.
type OrderFinancials struct {
	GrandTotal               decimal.Decimal
	BaseGrandTotal           decimal.Decimal
	DiscountCouponAmount     decimal.NullDecimal
	BaseDiscountCouponAmount decimal.NullDecimal
	FinanceCostAmount        decimal.NullDecimal
	BaseFinanceCostAmount    decimal.NullDecimal
}

type Order struct {
	ID                       uuid.UUID
	IncrementID              string
	StoreID                  int64
	Status                   string
	State                    string
	GrandTotal               decimal.Decimal
	BaseGrandTotal           decimal.Decimal
	DiscountCouponAmount     decimal.NullDecimal
	BaseDiscountCouponAmount decimal.NullDecimal
	FinanceCostAmount        decimal.NullDecimal
	BaseFinanceCostAmount    decimal.NullDecimal
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// ApplyFinancials sets the grand totals and every optional amount that is Valid.
func (o *Order) ApplyFinancials(f OrderFinancials) {
	o.GrandTotal = f.GrandTotal
	o.BaseGrandTotal = f.BaseGrandTotal

	if f.DiscountCouponAmount.Valid {
		o.DiscountCouponAmount = f.DiscountCouponAmount
	}

	if f.BaseDiscountCouponAmount.Valid {
		o.BaseDiscountCouponAmount = f.BaseDiscountCouponAmount
	}

	if f.FinanceCostAmount.Valid {
		o.FinanceCostAmount = f.FinanceCostAmount
	}

	if f.BaseFinanceCostAmount.Valid {
		o.BaseFinanceCostAmount = f.BaseFinanceCostAmount
	}
}

func (o Order) Scope() Scope {
	return StoreScope(o.StoreID)
}

type StatusHistory struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	Status    string
	Comment   string
	CreatedAt time.Time
}

// OrderUpdate is what a payment notification changes on an order.
type OrderUpdate struct {
	OrderID    uuid.UUID
	Status     string
	State      string
	Financials OrderFinancials
	UpdatedAt  time.Time
}
