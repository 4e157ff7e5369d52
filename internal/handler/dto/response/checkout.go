package response

import (
	"encoding/json"
	"time"

	"blane-checkout/internal/domain/pricing"
	"blane-checkout/internal/usecase/checkout"
	"blane-checkout/internal/usecase/reconcile"

	"github.com/jinzhu/copier"
)

type QuoteResponse struct {
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	BasePrice     float64 `json:"base_price"`
	TaxAmount     float64 `json:"tax_amount"`
	DeliveryFee   float64 `json:"delivery_fee"`
	TotalPrice    float64 `json:"total_price"`
	PartialAmount float64 `json:"partial_amount,omitempty"`
	AmountDue     float64 `json:"amount_due"`
}

func NewQuoteResponse(quote *pricing.Quote) (QuoteResponse, error) {
	var resp QuoteResponse
	if err := copier.Copy(&resp, quote); err != nil {
		return QuoteResponse{}, err
	}
	return resp, nil
}

type TransactionView struct {
	ID            string          `json:"id"`
	Reference     string          `json:"reference,omitempty"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	Quantity      int             `json:"quantity"`
	TotalPrice    float64         `json:"total_price"`
	PartielPrice  float64         `json:"partiel_price,omitempty"`
	DeliveryFee   float64         `json:"delivery_fee,omitempty"`
	Deal          json.RawMessage `json:"deal,omitempty"`
}

type PaymentIntentView struct {
	Type      string    `json:"type"`
	ID        string    `json:"id"`
	Method    string    `json:"method"`
	Amount    float64   `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}

type TransactionResponse struct {
	Kind          string             `json:"kind"`
	Transaction   TransactionView    `json:"transaction"`
	PaymentIntent *PaymentIntentView `json:"payment_intent,omitempty"`
}

func NewTransactionResponse(view *reconcile.View) (TransactionResponse, error) {
	resp := TransactionResponse{Kind: view.Kind.String()}
	if err := copier.Copy(&resp.Transaction, view.Record); err != nil {
		return TransactionResponse{}, err
	}
	if view.Intent != nil {
		intent := PaymentIntentView{}
		if err := copier.Copy(&intent, view.Intent); err != nil {
			return TransactionResponse{}, err
		}
		resp.PaymentIntent = &intent
	}
	return resp, nil
}

type CheckoutResponse struct {
	State       string              `json:"state"`
	Notice      string              `json:"notice,omitempty"`
	FieldErrors map[string][]string `json:"field_errors,omitempty"`
	Transaction *TransactionView    `json:"transaction,omitempty"`
}

func NewCheckoutResponse(result *checkout.SubmitResult) (CheckoutResponse, error) {
	resp := CheckoutResponse{
		State:  string(result.State.Phase),
		Notice: result.Notice,
	}
	if !result.FieldErrors.IsEmpty() {
		resp.FieldErrors = result.FieldErrors
	}
	if result.Record != nil {
		view := TransactionView{}
		if err := copier.Copy(&view, result.Record); err != nil {
			return CheckoutResponse{}, err
		}
		resp.Transaction = &view
	}
	return resp, nil
}
