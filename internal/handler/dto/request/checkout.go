package request

import (
	"time"

	"blane-checkout/internal/usecase/checkout"
)

const dateLayout = "2006-01-02"

type QuoteRequest struct {
	Quantity      int    `json:"quantity" binding:"required,min=1"`
	City          string `json:"city,omitempty"`
	PaymentMethod string `json:"payment_method" binding:"required,oneof=cash online partial"`
}

func (r QuoteRequest) ToInput() checkout.QuoteInput {
	return checkout.QuoteInput{
		Quantity:      r.Quantity,
		City:          r.City,
		PaymentMethod: r.PaymentMethod,
	}
}

type CheckoutRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneDial   string `json:"phone_dial,omitempty"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`

	Date        *string `json:"date,omitempty"`
	Time        string  `json:"time,omitempty"`
	PeriodStart *string `json:"period_start,omitempty"`
	PeriodEnd   *string `json:"period_end,omitempty"`

	DeliveryAddress string `json:"delivery_address,omitempty"`
	City            string `json:"city,omitempty"`
	Comment         string `json:"comment,omitempty"`
	PaymentMethod   string `json:"payment_method" binding:"required,oneof=cash online partial"`
}

func (r CheckoutRequest) ToInput() (checkout.SubmitInput, error) {
	in := checkout.SubmitInput{
		Name:            r.Name,
		Email:           r.Email,
		PhoneDial:       r.PhoneDial,
		PhoneNumber:     r.PhoneNumber,
		Quantity:        r.Quantity,
		TimeLabel:       r.Time,
		DeliveryAddress: r.DeliveryAddress,
		City:            r.City,
		Comment:         r.Comment,
		PaymentMethod:   r.PaymentMethod,
	}

	date, err := parseDate(r.Date)
	if err != nil {
		return checkout.SubmitInput{}, err
	}
	in.Date = date

	in.PeriodStart, err = parseDate(r.PeriodStart)
	if err != nil {
		return checkout.SubmitInput{}, err
	}
	in.PeriodEnd, err = parseDate(r.PeriodEnd)
	if err != nil {
		return checkout.SubmitInput{}, err
	}
	return in, nil
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
