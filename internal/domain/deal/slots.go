package deal

import "time"

// TimeSlot is an immutable capacity snapshot for one time-of-day label,
// fetched per chosen date.
type TimeSlot struct {
	label               string
	available           bool
	maxCapacity         int
	currentReservations int
}

func NewTimeSlot(label string, available bool, maxCapacity, currentReservations int) TimeSlot {
	return TimeSlot{
		label:               label,
		available:           available,
		maxCapacity:         maxCapacity,
		currentReservations: currentReservations,
	}
}

func (s TimeSlot) Label() string            { return s.label }
func (s TimeSlot) Available() bool          { return s.available }
func (s TimeSlot) MaxCapacity() int         { return s.maxCapacity }
func (s TimeSlot) CurrentReservations() int { return s.currentReservations }

func (s TimeSlot) RemainingCapacity() int {
	remaining := s.maxCapacity - s.currentReservations
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Period is the date-model counterpart of TimeSlot: a [start, end] date range
// with its own capacity counters.
type Period struct {
	start               time.Time
	end                 time.Time
	maxCapacity         int
	currentReservations int
	weekend             bool
}

func NewPeriod(start, end time.Time, maxCapacity, currentReservations int, weekend bool) (Period, error) {
	if end.Before(start) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{
		start:               start,
		end:                 end,
		maxCapacity:         maxCapacity,
		currentReservations: currentReservations,
		weekend:             weekend,
	}, nil
}

func (p Period) Start() time.Time { return p.start }
func (p Period) End() time.Time   { return p.end }
func (p Period) IsWeekend() bool  { return p.weekend }

// Days counts calendar days in the inclusive range.
func (p Period) Days() int {
	return int(p.end.Sub(p.start).Hours()/24) + 1
}

func (p Period) RemainingCapacity() int {
	remaining := p.maxCapacity - p.currentReservations
	if remaining < 0 {
		return 0
	}
	return remaining
}

// EachDay visits every calendar day in the inclusive range until fn returns
// false.
func (p Period) EachDay(fn func(time.Time) bool) {
	for d := p.start; !d.After(p.end); d = d.AddDate(0, 0, 1) {
		if !fn(d) {
			return
		}
	}
}
