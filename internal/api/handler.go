package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/mercadopago/internal/entity"
)

// @title MercadoPago API
// @version 1.0
// @description Order reconciliation and credential management for MercadoPago payments
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Service interface {
	Preview(ctx context.Context, storeID int64, p entity.Payment) (entity.PaymentPreview, error)
	ValidateCredentials(ctx context.Context, creds entity.Credentials) error
	SaveCredentials(ctx context.Context, storeID int64, creds entity.Credentials) error
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s: s,
	}
}

// HealthHandler reports that the service is up
// @Summary Health check
// @Tags health
// @Success 200
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// CredentialsRequest holds either an access token or a client id and secret pair.
type CredentialsRequest struct {
	AccessToken  string `json:"access_token,omitempty"`
	ClientID     string `json:"client_id,omitempty"`
	ClientSecret string `json:"client_secret,omitempty"`
}

func (r CredentialsRequest) credentials() entity.Credentials {
	var c entity.Credentials

	if r.AccessToken != "" {
		c.Bearer = &entity.BearerToken{AccessToken: r.AccessToken}
	}

	if r.ClientID != "" || r.ClientSecret != "" {
		c.OAuth = &entity.ClientCredentials{ClientID: r.ClientID, ClientSecret: r.ClientSecret}
	}

	return c
}

type ValidateCredentialsResponse struct {
	Valid   bool   `json:"valid"`
	Mode    string `json:"mode,omitempty"`
	Message string `json:"message,omitempty"`
}

// ValidateCredentials checks credentials against MercadoPago
// @Summary Validate credentials
// @Description Checks an access token, or a client id and secret pair, against MercadoPago
// @Tags credentials
// @Accept json
// @Produce json
// @Param CredentialsRequest body CredentialsRequest true "Credentials"
// @Success 200 {object} ValidateCredentialsResponse
// @Failure 400 {object} ErrorResponse "Use client id and client secret, or access token"
// @Failure 401 {object} ErrorResponse "Wrong token"
// @Failure 502 {object} ErrorResponse "MercadoPago is unavailable"
// @Router /credentials/validate [post]
// @Security BearerAuth
func (h *Handler) ValidateCredentials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CredentialsRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	creds := req.credentials()

	err = h.s.ValidateCredentials(ctx, creds)
	if err != nil {
		if errors.Is(err, entity.ErrAuthenticationFailure) {
			SendJSON(ctx, w, http.StatusOK, ValidateCredentialsResponse{
				Valid:   false,
				Message: "MercadoPago rejected the credentials, check your credentials",
			})

			return
		}

		sendCredentialsErr(ctx, w, err)

		return
	}

	mode, _ := creds.Mode()

	SendJSON(ctx, w, http.StatusOK, ValidateCredentialsResponse{Valid: true, Mode: string(mode)})
}

// SaveCredentials stores credentials for a store after MercadoPago accepts them
// @Summary Save credentials
// @Description Validates and stores the credentials of a store. Store 0 is the default scope.
// @Tags credentials
// @Accept json
// @Param storeID path int true "Store ID"
// @Param CredentialsRequest body CredentialsRequest true "Credentials"
// @Success 204
// @Failure 400 {object} ErrorResponse "Use client id and client secret, or access token"
// @Failure 401 {object} ErrorResponse "Wrong token"
// @Failure 422 {object} ErrorResponse "MercadoPago rejected the credentials"
// @Failure 502 {object} ErrorResponse "MercadoPago is unavailable"
// @Router /credentials/{storeID} [put]
// @Security BearerAuth
func (h *Handler) SaveCredentials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	storeID, err := strconv.ParseInt(chi.URLParam(r, "storeID"), 10, 64)
	if err != nil || storeID < 0 {
		SendJSONErr(ctx, w, http.StatusBadRequest, fmt.Errorf("store id: %w", entity.ErrInvalidArgument), "Invalid store id")
		return
	}

	var req CredentialsRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	err = h.s.SaveCredentials(ctx, storeID, req.credentials())
	if err != nil {
		if errors.Is(err, entity.ErrAuthenticationFailure) {
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "MercadoPago rejected the credentials, check your credentials")
			return
		}

		sendCredentialsErr(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func sendCredentialsErr(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrInvalidCredentials):
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Use client id and client secret, or access token")
	case errors.Is(err, entity.ErrTransport):
		SendJSONErr(ctx, w, http.StatusBadGateway, err, "MercadoPago is unavailable")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to validate credentials")
	}
}

type PreviewRequest struct {
	StoreID int64          `json:"store_id"`
	Payment entity.Payment `json:"payment"`
}

type PreviewResponse struct {
	OrderStatus              string  `json:"order_status"`
	Message                  string  `json:"message"`
	GrandTotal               string  `json:"grand_total"`
	BaseGrandTotal           string  `json:"base_grand_total"`
	DiscountCouponAmount     *string `json:"discount_coupon_amount,omitempty"`
	BaseDiscountCouponAmount *string `json:"base_discount_coupon_amount,omitempty"`
	FinanceCostAmount        *string `json:"finance_cost_amount,omitempty"`
	BaseFinanceCostAmount    *string `json:"base_finance_cost_amount,omitempty"`
	TruncCard                string  `json:"trunc_card,omitempty"`
	CardholderName           string  `json:"cardholder_name,omitempty"`
	PayerFirstName           string  `json:"payer_first_name,omitempty"`
	PayerLastName            string  `json:"payer_last_name,omitempty"`
	PayerEmail               string  `json:"payer_email,omitempty"`
}

func amount(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}

	s := d.Decimal.String()

	return &s
}

// Preview shows what a payment would do to an order
// @Summary Preview payment
// @Description Computes order amounts, order status and history comment for a payment without saving anything
// @Tags payments
// @Accept json
// @Produce json
// @Param PreviewRequest body PreviewRequest true "Store and payment as returned by MercadoPago"
// @Success 200 {object} PreviewResponse
// @Failure 400 {object} ErrorResponse "Invalid payment"
// @Failure 401 {object} ErrorResponse "Wrong token"
// @Failure 500 {object} ErrorResponse "Failed to preview payment"
// @Router /payments/preview [post]
// @Security BearerAuth
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PreviewRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid payment")
		return
	}

	preview, err := h.s.Preview(ctx, req.StoreID, req.Payment)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to preview payment")
		return
	}

	f := preview.Financials
	p := preview.Payment

	SendJSON(ctx, w, http.StatusOK, PreviewResponse{
		OrderStatus:              preview.OrderStatus,
		Message:                  preview.Message,
		GrandTotal:               f.GrandTotal.String(),
		BaseGrandTotal:           f.BaseGrandTotal.String(),
		DiscountCouponAmount:     amount(f.DiscountCouponAmount),
		BaseDiscountCouponAmount: amount(f.BaseDiscountCouponAmount),
		FinanceCostAmount:        amount(f.FinanceCostAmount),
		BaseFinanceCostAmount:    amount(f.BaseFinanceCostAmount),
		TruncCard:                p.TruncCard,
		CardholderName:           p.CardholderName,
		PayerFirstName:           p.PayerFirstName,
		PayerLastName:            p.PayerLastName,
		PayerEmail:               p.PayerEmail,
	})
}
