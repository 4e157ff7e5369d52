// Package pricing computes transaction amounts from a deal's price
// attributes. Every function is pure; callers re-evaluate on each
// quantity/date/city change.
package pricing

import (
	"strings"

	"blane-checkout/internal/domain/deal"

	"github.com/shopspring/decimal"
)

// BasePrice decomposes the tax-inclusive unit price: unitPrice already embeds
// the tax, so the base is recovered by division, never by subtraction of a
// recomputed tax.
func BasePrice(unitPrice float64, quantity int, taxRatePercent float64) float64 {
	return unitPrice * float64(quantity) / (1 + taxRatePercent/100)
}

func TaxAmount(unitPrice float64, quantity int, taxRatePercent float64) float64 {
	return BasePrice(unitPrice, quantity, taxRatePercent) * taxRatePercent / 100
}

// DeliveryFee is zero for digital deals and for deals without configured
// fees; otherwise the in-city fee applies when the destination matches the
// deal's home city.
func DeliveryFee(digital bool, destinationCity, homeCity string, inCityFee, outOfCityFee float64) float64 {
	if digital {
		return 0
	}
	if sameCity(destinationCity, homeCity) {
		return inCityFee
	}
	return outOfCityFee
}

// TotalPrice adds the delivery fee to the tax-inclusive line total. Tax is
// decomposed for display only and never added on top.
func TotalPrice(unitPrice float64, quantity int, deliveryFee float64) float64 {
	return unitPrice*float64(quantity) + deliveryFee
}

func PartialAmount(totalPrice, partialPercent float64) float64 {
	return Round2(totalPrice * partialPercent / 100)
}

func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Quote is a display-ready price breakdown, all amounts rounded to 2
// decimals.
type Quote struct {
	Quantity    int
	UnitPrice   float64
	BasePrice   float64
	TaxAmount   float64
	DeliveryFee float64
	TotalPrice  float64
	// AmountDue is what the gateway charges now: the partial amount for the
	// partial method, the total otherwise.
	AmountDue     float64
	PartialAmount float64
	Method        deal.PaymentMethod
}

// QuoteFor recomputes the full breakdown for a deal, requested quantity,
// destination city and payment method.
func QuoteFor(d *deal.Deal, quantity int, destinationCity string, method deal.PaymentMethod) Quote {
	fee := DeliveryFee(d.IsDigital(), destinationCity, d.HomeCity(), d.InCityFee(), d.OutOfCityFee())
	total := TotalPrice(d.UnitPrice(), quantity, fee)

	q := Quote{
		Quantity:    quantity,
		UnitPrice:   d.UnitPrice(),
		BasePrice:   Round2(BasePrice(d.UnitPrice(), quantity, d.TaxRatePercent())),
		TaxAmount:   Round2(TaxAmount(d.UnitPrice(), quantity, d.TaxRatePercent())),
		DeliveryFee: Round2(fee),
		TotalPrice:  Round2(total),
		Method:      method,
	}

	q.AmountDue = q.TotalPrice
	if method == deal.PaymentPartial {
		q.PartialAmount = PartialAmount(total, d.PartialPercent())
		q.AmountDue = q.PartialAmount
	}
	return q
}

func sameCity(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
