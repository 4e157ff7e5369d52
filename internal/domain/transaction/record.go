// Package transaction models the locally persisted view of an in-flight or
// completed order/reservation: the canonical backend record plus the derived
// payment-intent snapshot that survives the gateway redirect.
package transaction

import (
	"encoding/json"
	"time"

	"blane-checkout/internal/domain/deal"
	"blane-checkout/internal/pkg/errs"
)

// Record mirrors the backend's creation/lookup response. Raw keeps the
// response body verbatim so the cache never loses fields this core does not
// model.
type Record struct {
	ID            string          `json:"id"`
	Reference     string          `json:"reference,omitempty"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	Quantity      int             `json:"quantity"`
	TotalPrice    float64         `json:"total_price"`
	PartielPrice  float64         `json:"partiel_price,omitempty"`
	DeliveryFee   float64         `json:"delivery_fee,omitempty"`
	DealSlug      string          `json:"deal_slug,omitempty"`
	Deal          json.RawMessage `json:"deal,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// DecodeRecord parses a backend response body and keeps the original bytes.
func DecodeRecord(body []byte) (*Record, error) {
	var rec Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, errs.Wrap(err, "decode transaction record")
	}
	if rec.ID == "" {
		return nil, errs.New("transaction record missing id")
	}
	rec.Raw = append(json.RawMessage(nil), body...)
	return &rec, nil
}

// Payload is the JSON written to the slug-scoped data key: the verbatim
// backend body when available, a re-marshal otherwise.
func (r *Record) Payload() ([]byte, error) {
	if len(r.Raw) > 0 {
		return r.Raw, nil
	}
	return json.Marshal(r)
}

// PaymentIntent remembers, across the full page unload caused by the external
// gateway, what amount and method were in flight. Derived at persist time,
// never fetched on its own.
type PaymentIntent struct {
	Type      string    `json:"type"`
	ID        string    `json:"id"`
	Method    string    `json:"method"`
	Amount    float64   `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}

func NewPaymentIntent(kind deal.Kind, rec *Record, method deal.PaymentMethod, amount float64, now time.Time) PaymentIntent {
	return PaymentIntent{
		Type:      kind.String(),
		ID:        rec.ID,
		Method:    method.String(),
		Amount:    amount,
		Timestamp: now,
		Status:    rec.Status,
	}
}

func DecodePaymentIntent(body []byte) (*PaymentIntent, error) {
	var intent PaymentIntent
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, errs.Wrap(err, "decode payment intent")
	}
	return &intent, nil
}
