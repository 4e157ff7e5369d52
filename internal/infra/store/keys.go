package store

import (
	"fmt"

	"blane-checkout/internal/domain/deal"
)

// Keys builds the slug-scoped key schema. Scoping by slug keeps one deal's
// record from leaking into another deal's page.
type Keys struct {
	slug string
}

func NewKeys(slug string) Keys {
	return Keys{slug: slug}
}

func (k Keys) Slug() string {
	return k.slug
}

func (k Keys) ID(kind deal.Kind) string {
	return fmt.Sprintf("deal_%s_%s_id", k.slug, kind)
}

func (k Keys) Data(kind deal.Kind) string {
	return fmt.Sprintf("deal_%s_%s_data", k.slug, kind)
}

func (k Keys) PaymentIntent() string {
	return fmt.Sprintf("deal_%s_payment_intent", k.slug)
}

// DeliveryFee keys back the fee up for pages that reload after the redirect
// without full context.
func (k Keys) DeliveryFee() string {
	return fmt.Sprintf("delivery_fee_%s", k.slug)
}

func OrderDeliveryFeeKey(orderID string) string {
	return fmt.Sprintf("order_%s_delivery_fee", orderID)
}

// All enumerates every key the schema can write for this slug, for an
// explicit new-transaction reset.
func (k Keys) All() []string {
	return []string{
		k.ID(deal.KindOrder),
		k.Data(deal.KindOrder),
		k.ID(deal.KindReservation),
		k.Data(deal.KindReservation),
		k.PaymentIntent(),
		k.DeliveryFee(),
	}
}
