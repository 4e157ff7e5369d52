package deal

import "time"

type Kind string

const (
	KindOrder       Kind = "order"
	KindReservation Kind = "reservation"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindOrder, KindReservation:
		return true
	default:
		return false
	}
}

// TimeModel selects how a reservation deal slices its calendar:
// by time-of-day slots within a chosen date, or by multi-day periods.
type TimeModel string

const (
	TimeModelSlots   TimeModel = "time"
	TimeModelPeriods TimeModel = "date"
)

func (m TimeModel) IsValid() bool {
	switch m {
	case TimeModelSlots, TimeModelPeriods:
		return true
	default:
		return false
	}
}

type PaymentMethod string

const (
	PaymentCash    PaymentMethod = "cash"
	PaymentOnline  PaymentMethod = "online"
	PaymentPartial PaymentMethod = "partial"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentOnline, PaymentPartial:
		return true
	default:
		return false
	}
}

// WireValue maps the UI vocabulary to the backend's. The backend speaks
// French for the partial method.
func (m PaymentMethod) WireValue() string {
	if m == PaymentPartial {
		return "partiel"
	}
	return string(m)
}

// RequiresGateway reports whether the method needs a round trip through the
// external payment page.
func (m PaymentMethod) RequiresGateway() bool {
	return m == PaymentOnline || m == PaymentPartial
}

// jours_creneaux arrives as French weekday names.
var weekdayNames = map[string]time.Weekday{
	"dimanche": time.Sunday,
	"lundi":    time.Monday,
	"mardi":    time.Tuesday,
	"mercredi": time.Wednesday,
	"jeudi":    time.Thursday,
	"vendredi": time.Friday,
	"samedi":   time.Saturday,
}

func ParseWeekday(name string) (time.Weekday, bool) {
	d, ok := weekdayNames[name]
	return d, ok
}
