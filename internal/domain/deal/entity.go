package deal

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidKind      = errors.New("invalid deal kind")
	ErrInvalidTimeModel = errors.New("invalid time model")
	ErrInvalidPrice     = errors.New("price must be positive")
	ErrInvalidPeriod    = errors.New("period end before start")
	ErrMissingSlug      = errors.New("deal slug is required")
)

const (
	DefaultTaxRatePercent = 20.0
	DefaultPartialPercent = 33.0
	// Booking horizon applied when a deal carries no explicit end.
	DefaultValidityDays = 90
)

// Snapshot carries the externally supplied deal attributes. Optional
// attributes stay pointers so absence keeps its meaning (defaulting happens in
// the getters, not at construction).
type Snapshot struct {
	ID                  string
	Slug                string
	Name                string
	Kind                Kind
	TimeModel           TimeModel
	UnitPrice           float64
	OldPrice            *float64
	TaxRatePercent      *float64
	Digital             bool
	Stock               *int
	ParticipantsPerSlot int
	AllowedWeekdays     []time.Weekday
	StartDate           *time.Time
	EndDate             *time.Time
	ExpirationDate      *time.Time
	Methods             []PaymentMethod
	PartialPercent      *float64
	City                string
	InCityFee           *float64
	OutOfCityFee        *float64
	Image               ImageRef
	Periods             []Period
}

// Deal is a read-only offer snapshot. It is never mutated by the checkout
// core.
type Deal struct {
	id                  string
	slug                string
	name                string
	kind                Kind
	timeModel           TimeModel
	unitPrice           float64
	oldPrice            *float64
	taxRatePercent      *float64
	digital             bool
	stock               *int
	participantsPerSlot int
	allowedWeekdays     []time.Weekday
	startDate           *time.Time
	endDate             *time.Time
	expirationDate      *time.Time
	methods             []PaymentMethod
	partialPercent      *float64
	city                string
	inCityFee           *float64
	outOfCityFee        *float64
	image               ImageRef
	periods             []Period
}

func New(s Snapshot) (*Deal, error) {
	if strings.TrimSpace(s.Slug) == "" {
		return nil, ErrMissingSlug
	}
	if !s.Kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if s.Kind == KindReservation && !s.TimeModel.IsValid() {
		return nil, ErrInvalidTimeModel
	}
	if s.UnitPrice <= 0 {
		return nil, ErrInvalidPrice
	}

	participants := s.ParticipantsPerSlot
	if participants < 1 {
		participants = 1
	}

	return &Deal{
		id:                  s.ID,
		slug:                s.Slug,
		name:                s.Name,
		kind:                s.Kind,
		timeModel:           s.TimeModel,
		unitPrice:           s.UnitPrice,
		oldPrice:            s.OldPrice,
		taxRatePercent:      s.TaxRatePercent,
		digital:             s.Digital,
		stock:               s.Stock,
		participantsPerSlot: participants,
		allowedWeekdays:     s.AllowedWeekdays,
		startDate:           s.StartDate,
		endDate:             s.EndDate,
		expirationDate:      s.ExpirationDate,
		methods:             s.Methods,
		partialPercent:      s.PartialPercent,
		city:                s.City,
		inCityFee:           s.InCityFee,
		outOfCityFee:        s.OutOfCityFee,
		image:               s.Image,
		periods:             s.Periods,
	}, nil
}

func (d *Deal) ID() string               { return d.id }
func (d *Deal) Slug() string             { return d.slug }
func (d *Deal) Name() string             { return d.name }
func (d *Deal) Kind() Kind               { return d.kind }
func (d *Deal) TimeModel() TimeModel     { return d.timeModel }
func (d *Deal) UnitPrice() float64       { return d.unitPrice }
func (d *Deal) OldPrice() *float64       { return d.oldPrice }
func (d *Deal) IsDigital() bool          { return d.digital }
func (d *Deal) Stock() *int              { return d.stock }
func (d *Deal) ParticipantsPerSlot() int { return d.participantsPerSlot }
func (d *Deal) HomeCity() string         { return d.city }
func (d *Deal) Image() ImageRef          { return d.image }

func (d *Deal) TaxRatePercent() float64 {
	if d.taxRatePercent == nil {
		return DefaultTaxRatePercent
	}
	return *d.taxRatePercent
}

func (d *Deal) PartialPercent() float64 {
	if d.partialPercent == nil || *d.partialPercent <= 0 {
		return DefaultPartialPercent
	}
	return *d.partialPercent
}

func (d *Deal) InCityFee() float64 {
	if d.inCityFee == nil {
		return 0
	}
	return *d.inCityFee
}

func (d *Deal) OutOfCityFee() float64 {
	if d.outOfCityFee == nil {
		return 0
	}
	return *d.outOfCityFee
}

func (d *Deal) MethodEnabled(m PaymentMethod) bool {
	for _, enabled := range d.methods {
		if enabled == m {
			return true
		}
	}
	return false
}

func (d *Deal) Methods() []PaymentMethod {
	out := make([]PaymentMethod, len(d.methods))
	copy(out, d.methods)
	return out
}

func (d *Deal) Periods() []Period {
	out := make([]Period, len(d.periods))
	copy(out, d.periods)
	return out
}

// FindPeriod resolves a chosen [start, end] range to the deal's capacity
// snapshot for that period. The capacity always comes from the deal, never
// from the customer's selection.
func (d *Deal) FindPeriod(start, end time.Time) (Period, bool) {
	start = truncateDay(start)
	end = truncateDay(end)
	for _, p := range d.periods {
		if truncateDay(p.Start()).Equal(start) && truncateDay(p.End()).Equal(end) {
			return p, true
		}
	}
	return Period{}, false
}

// EffectiveStart is the first bookable day: the explicit start date, else
// today.
func (d *Deal) EffectiveStart(today time.Time) time.Time {
	if d.startDate != nil {
		return truncateDay(*d.startDate)
	}
	return truncateDay(today)
}

// EffectiveEnd is the last bookable day: expiration, else explicit end, else
// the effective start pushed out by the default validity window.
func (d *Deal) EffectiveEnd(today time.Time) time.Time {
	if d.expirationDate != nil {
		return truncateDay(*d.expirationDate)
	}
	if d.endDate != nil {
		return truncateDay(*d.endDate)
	}
	return d.EffectiveStart(today).AddDate(0, 0, DefaultValidityDays)
}

// IsWeekdayAllowed reports whether a day passes the deal's weekday
// restriction. No restriction means every day passes.
func (d *Deal) IsWeekdayAllowed(day time.Weekday) bool {
	if len(d.allowedWeekdays) == 0 {
		return true
	}
	for _, allowed := range d.allowedWeekdays {
		if allowed == day {
			return true
		}
	}
	return false
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
