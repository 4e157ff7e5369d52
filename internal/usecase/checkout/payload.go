package checkout

import (
	"blane-checkout/internal/domain/deal"
	"blane-checkout/internal/domain/draft"
	"blane-checkout/internal/domain/pricing"
)

const wireDateLayout = "2006-01-02"

// orderPayload is the createOrder submission body. Delivery fields are
// pointers: a digital deal omits them from the wire entirely, it does not
// send empty strings.
type orderPayload struct {
	DealSlug        string   `json:"deal_slug"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Quantity        int      `json:"quantity"`
	DeliveryAddress *string  `json:"delivery_address,omitempty"`
	City            *string  `json:"city,omitempty"`
	Comment         string   `json:"comment,omitempty"`
	PaymentMethod   string   `json:"payment_method"`
	TotalPrice      float64  `json:"total_price"`
	PartielPrice    *float64 `json:"partiel_price,omitempty"`
	DeliveryFee     float64  `json:"delivery_fee"`
}

type reservationPayload struct {
	DealSlug      string   `json:"deal_slug"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Quantity      int      `json:"quantity"`
	Date          string   `json:"date,omitempty"`
	Time          string   `json:"time,omitempty"`
	PeriodStart   string   `json:"period_start,omitempty"`
	PeriodEnd     string   `json:"period_end,omitempty"`
	NumberPersons int      `json:"number_persons"`
	Comment       string   `json:"comment,omitempty"`
	PaymentMethod string   `json:"payment_method"`
	TotalPrice    float64  `json:"total_price"`
	PartielPrice  *float64 `json:"partiel_price,omitempty"`
}

func buildOrderPayload(d *deal.Deal, dr *draft.Draft, phone string, quote pricing.Quote) orderPayload {
	p := orderPayload{
		DealSlug:      d.Slug(),
		Name:          dr.Name(),
		Email:         dr.Email(),
		Phone:         phone,
		Quantity:      dr.Quantity(),
		Comment:       dr.Comment(),
		PaymentMethod: dr.Method().WireValue(),
		TotalPrice:    quote.TotalPrice,
		DeliveryFee:   quote.DeliveryFee,
	}
	if !d.IsDigital() {
		address := dr.Address()
		city := dr.City()
		p.DeliveryAddress = &address
		p.City = &city
	}
	if dr.Method() == deal.PaymentPartial {
		partial := quote.PartialAmount
		p.PartielPrice = &partial
	}
	return p
}

func buildReservationPayload(d *deal.Deal, dr *draft.Draft, phone string, quote pricing.Quote) reservationPayload {
	p := reservationPayload{
		DealSlug:      d.Slug(),
		Name:          dr.Name(),
		Email:         dr.Email(),
		Phone:         phone,
		Quantity:      dr.Quantity(),
		NumberPersons: d.ParticipantsPerSlot() * dr.Quantity(),
		Comment:       dr.Comment(),
		PaymentMethod: dr.Method().WireValue(),
		TotalPrice:    quote.TotalPrice,
	}
	if date := dr.Date(); date != nil {
		p.Date = date.Format(wireDateLayout)
		p.Time = dr.TimeLabel()
	}
	if period := dr.Period(); period != nil {
		p.PeriodStart = period.Start().Format(wireDateLayout)
		p.PeriodEnd = period.End().Format(wireDateLayout)
	}
	if dr.Method() == deal.PaymentPartial {
		partial := quote.PartialAmount
		p.PartielPrice = &partial
	}
	return p
}
