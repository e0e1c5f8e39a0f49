package entity

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// MultiValue is an amount field that holds one amount per payment instrument separated by "|",
// e.g. "100.00|50.00" for an order paid with two cards.
type MultiValue string

const MultiValueSeparator = "|"

// UnmarshalJSON accepts a JSON string, a JSON number or null.
func (m *MultiValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*m = ""
		return nil
	}

	if b[0] == '"' {
		var s string

		err := json.Unmarshal(b, &s)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
		}

		*m = MultiValue(s)

		return nil
	}

	var n json.Number

	err := json.Unmarshal(b, &n)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	*m = MultiValue(n.String())

	return nil
}

func (m MultiValue) String() string {
	return string(m)
}

type ProviderStatus string

const (
	ProviderStatusApproved    ProviderStatus = "approved"
	ProviderStatusRefunded    ProviderStatus = "refunded"
	ProviderStatusInMediation ProviderStatus = "in_mediation"
	ProviderStatusCancelled   ProviderStatus = "cancelled"
	ProviderStatusRejected    ProviderStatus = "rejected"
	ProviderStatusChargeback  ProviderStatus = "chargeback"
	ProviderStatusInProcess   ProviderStatus = "in_process"
)

// ProviderStatuses lists every status that has its own order status setting.
var ProviderStatuses = []ProviderStatus{
	ProviderStatusApproved,
	ProviderStatusRefunded,
	ProviderStatusInMediation,
	ProviderStatusCancelled,
	ProviderStatusRejected,
	ProviderStatusChargeback,
	ProviderStatusInProcess,
}

func (s ProviderStatus) String() string {
	return string(s)
}

type Cardholder struct {
	Name string `json:"name"`
}

type Card struct {
	LastFourDigits string     `json:"last_four_digits"`
	Cardholder     Cardholder `json:"cardholder"`
}

type Payer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type TransactionDetails struct {
	TotalPaidAmount decimal.Decimal `json:"total_paid_amount"`
}

// Payment is a payment record as the provider returns it.
type Payment struct {
	ID                 json.Number        `json:"id"`
	Status             string             `json:"status"`
	StatusDetail       string             `json:"status_detail"`
	ExternalReference  string             `json:"external_reference"`
	TransactionAmount  MultiValue         `json:"transaction_amount"`
	CouponAmount       MultiValue         `json:"coupon_amount"`
	ShippingCost       MultiValue         `json:"shipping_cost"`
	TotalPaidAmount    *MultiValue        `json:"total_paid_amount,omitempty"`
	TransactionDetails TransactionDetails `json:"transaction_details"`
	Card               *Card              `json:"card,omitempty"`
	Payer              *Payer             `json:"payer,omitempty"`

	// Flat payer fields, filled by WithPayerInfo.
	TruncCard      string `json:"trunc_card,omitempty"`
	CardholderName string `json:"cardholder_name,omitempty"`
	PayerFirstName string `json:"payer_first_name,omitempty"`
	PayerLastName  string `json:"payer_last_name,omitempty"`
	PayerEmail     string `json:"payer_email,omitempty"`
}

const truncCardPrefix = "xxxx xxxx xxxx "

// WithPayerInfo returns a copy of the payment with the nested card and payer data flattened.
// Some payment methods (tickets, account money) carry no card, so missing structures leave the
// corresponding flat fields empty.
func (p Payment) WithPayerInfo() Payment {
	if p.Card != nil {
		if p.Card.LastFourDigits != "" {
			p.TruncCard = truncCardPrefix + p.Card.LastFourDigits
		}

		p.CardholderName = p.Card.Cardholder.Name
	}

	if p.Payer != nil {
		p.PayerFirstName = p.Payer.FirstName
		p.PayerLastName = p.Payer.LastName
		p.PayerEmail = p.Payer.Email
	}

	return p
}

// PaymentNotification tells the service that a payment changed. Payment is set when the
// notification already carries the full record, otherwise it is fetched by PaymentID.
type PaymentNotification struct {
	PaymentID string   `json:"payment_id"`
	StoreID   int64    `json:"store_id"`
	Payment   *Payment `json:"payment,omitempty"`
}

// PaymentPreview is the outcome a payment would have on an order, computed without writing anything.
type PaymentPreview struct {
	Payment     Payment
	Financials  OrderFinancials
	OrderStatus string
	Message     string
}
