package backend

import (
	"time"

	"blane-checkout/internal/domain/deal"
	"blane-checkout/internal/pkg/errs"
)

const wireDateLayout = "2006-01-02"

// dealDTO mirrors the deals API. Field names follow the backend's mixed
// French/English vocabulary.
type dealDTO struct {
	ID                  string        `json:"id"`
	Slug                string        `json:"slug"`
	Name                string        `json:"name"`
	Type                string        `json:"type"`
	TypeTime            string        `json:"type_time,omitempty"`
	PriceCurrent        float64       `json:"price_current"`
	PriceOld            *float64      `json:"price_old,omitempty"`
	TVA                 *float64      `json:"tva,omitempty"`
	IsDigital           bool          `json:"is_digital"`
	Stock               *int          `json:"stock,omitempty"`
	ParticipantsPerSlot int           `json:"participants_per_slot,omitempty"`
	JoursCreneaux       []string      `json:"jours_creneaux,omitempty"`
	StartDate           string        `json:"start_date,omitempty"`
	EndDate             string        `json:"end_date,omitempty"`
	ExpirationDate      string        `json:"expiration_date,omitempty"`
	Cash                bool          `json:"cash"`
	Online              bool          `json:"online"`
	Partiel             bool          `json:"partiel"`
	PartielField        *float64      `json:"partiel_field,omitempty"`
	City                string        `json:"city,omitempty"`
	LivraisonInCity     *float64      `json:"livraison_in_city,omitempty"`
	LivraisonOutCity    *float64      `json:"livraison_out_city,omitempty"`
	ImageLink           deal.ImageRef `json:"image_link"`
	Periods             []periodDTO   `json:"periods,omitempty"`
}

type periodDTO struct {
	StartDate           string `json:"start_date"`
	EndDate             string `json:"end_date"`
	MaxReservations     int    `json:"max_reservations"`
	CurrentReservations int    `json:"current_reservations"`
	Weekend             bool   `json:"weekend"`
}

func (dto dealDTO) toDomain() (*deal.Deal, error) {
	weekdays := make([]time.Weekday, 0, len(dto.JoursCreneaux))
	for _, name := range dto.JoursCreneaux {
		day, ok := deal.ParseWeekday(name)
		if !ok {
			return nil, errs.New("unknown weekday name: " + name)
		}
		weekdays = append(weekdays, day)
	}

	methods := make([]deal.PaymentMethod, 0, 3)
	if dto.Cash {
		methods = append(methods, deal.PaymentCash)
	}
	if dto.Online {
		methods = append(methods, deal.PaymentOnline)
	}
	if dto.Partiel {
		methods = append(methods, deal.PaymentPartial)
	}

	startDate, err := parseWireDate(dto.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseWireDate(dto.EndDate)
	if err != nil {
		return nil, err
	}
	expirationDate, err := parseWireDate(dto.ExpirationDate)
	if err != nil {
		return nil, err
	}

	periods := make([]deal.Period, 0, len(dto.Periods))
	for _, p := range dto.Periods {
		start, perr := parseWireDate(p.StartDate)
		if perr != nil {
			return nil, perr
		}
		end, perr := parseWireDate(p.EndDate)
		if perr != nil {
			return nil, perr
		}
		if start == nil || end == nil {
			return nil, errs.New("period missing start or end date")
		}
		period, perr := deal.NewPeriod(*start, *end, p.MaxReservations, p.CurrentReservations, p.Weekend)
		if perr != nil {
			return nil, perr
		}
		periods = append(periods, period)
	}

	return deal.New(deal.Snapshot{
		ID:                  dto.ID,
		Slug:                dto.Slug,
		Name:                dto.Name,
		Kind:                deal.Kind(dto.Type),
		TimeModel:           deal.TimeModel(dto.TypeTime),
		UnitPrice:           dto.PriceCurrent,
		OldPrice:            dto.PriceOld,
		TaxRatePercent:      dto.TVA,
		Digital:             dto.IsDigital,
		Stock:               dto.Stock,
		ParticipantsPerSlot: dto.ParticipantsPerSlot,
		AllowedWeekdays:     weekdays,
		StartDate:           startDate,
		EndDate:             endDate,
		ExpirationDate:      expirationDate,
		Methods:             methods,
		PartialPercent:      dto.PartielField,
		City:                dto.City,
		InCityFee:           dto.LivraisonInCity,
		OutOfCityFee:        dto.LivraisonOutCity,
		Image:               dto.ImageLink,
		Periods:             periods,
	})
}

func parseWireDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(wireDateLayout, s)
	if err != nil {
		return nil, errs.Wrap(err, "parse wire date")
	}
	return &t, nil
}

type slotDTO struct {
	Time                string `json:"time"`
	Available           bool   `json:"available"`
	MaxReservations     int    `json:"max_reservations"`
	CurrentReservations int    `json:"current_reservations"`
}

func (dto slotDTO) toDomain() deal.TimeSlot {
	return deal.NewTimeSlot(dto.Time, dto.Available, dto.MaxReservations, dto.CurrentReservations)
}

// PaymentInitiation is the opaque redirect descriptor. FormData is forwarded
// to the gateway verbatim, never introspected.
type PaymentInitiation struct {
	RedirectURL string            `json:"redirect_url"`
	FormData    map[string]string `json:"payment_form_data"`
}

// errorEnvelope covers both backend error shapes: a field→messages map and a
// single message.
type errorEnvelope struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}
