// Package builder provides fluent test-data builders with sensible defaults.
package builder

import (
	"time"

	"blane-checkout/internal/domain/deal"
)

// Float returns a pointer for optional snapshot fields.
func Float(v float64) *float64 { return &v }

func Int(v int) *int { return &v }

func Time(t time.Time) *time.Time { return &t }

// DealBuilder assembles a deal snapshot. Defaults describe a physical order
// deal priced at 100 with all payment methods enabled.
type DealBuilder struct {
	snapshot deal.Snapshot
}

func NewDealBuilder() *DealBuilder {
	return &DealBuilder{snapshot: deal.Snapshot{
		ID:        "42",
		Slug:      "spa-day",
		Name:      "Spa Day",
		Kind:      deal.KindOrder,
		UnitPrice: 100,
		City:      "Casablanca",
		Methods:   []deal.PaymentMethod{deal.PaymentCash, deal.PaymentOnline, deal.PaymentPartial},
	}}
}

func (b *DealBuilder) WithSlug(slug string) *DealBuilder {
	b.snapshot.Slug = slug
	return b
}

func (b *DealBuilder) WithKind(k deal.Kind) *DealBuilder {
	b.snapshot.Kind = k
	return b
}

func (b *DealBuilder) WithTimeModel(m deal.TimeModel) *DealBuilder {
	b.snapshot.TimeModel = m
	return b
}

func (b *DealBuilder) WithUnitPrice(p float64) *DealBuilder {
	b.snapshot.UnitPrice = p
	return b
}

func (b *DealBuilder) WithTaxRate(percent float64) *DealBuilder {
	b.snapshot.TaxRatePercent = &percent
	return b
}

func (b *DealBuilder) WithDigital(digital bool) *DealBuilder {
	b.snapshot.Digital = digital
	return b
}

func (b *DealBuilder) WithStock(stock int) *DealBuilder {
	b.snapshot.Stock = &stock
	return b
}

func (b *DealBuilder) WithParticipantsPerSlot(n int) *DealBuilder {
	b.snapshot.ParticipantsPerSlot = n
	return b
}

func (b *DealBuilder) WithWeekdays(days ...time.Weekday) *DealBuilder {
	b.snapshot.AllowedWeekdays = days
	return b
}

func (b *DealBuilder) WithStartDate(t time.Time) *DealBuilder {
	b.snapshot.StartDate = &t
	return b
}

func (b *DealBuilder) WithEndDate(t time.Time) *DealBuilder {
	b.snapshot.EndDate = &t
	return b
}

func (b *DealBuilder) WithExpirationDate(t time.Time) *DealBuilder {
	b.snapshot.ExpirationDate = &t
	return b
}

func (b *DealBuilder) WithMethods(methods ...deal.PaymentMethod) *DealBuilder {
	b.snapshot.Methods = methods
	return b
}

func (b *DealBuilder) WithPartialPercent(percent float64) *DealBuilder {
	b.snapshot.PartialPercent = &percent
	return b
}

func (b *DealBuilder) WithCity(city string) *DealBuilder {
	b.snapshot.City = city
	return b
}

func (b *DealBuilder) WithDeliveryFees(inCity, outOfCity float64) *DealBuilder {
	b.snapshot.InCityFee = &inCity
	b.snapshot.OutOfCityFee = &outOfCity
	return b
}

func (b *DealBuilder) WithPeriods(periods ...deal.Period) *DealBuilder {
	b.snapshot.Periods = periods
	return b
}

func (b *DealBuilder) Build() (*deal.Deal, error) {
	return deal.New(b.snapshot)
}
