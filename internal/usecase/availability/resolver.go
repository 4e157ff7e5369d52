// Package availability computes purchasable/reservable quantity ceilings and
// validates dates and periods against a deal's calendar.
package availability

import (
	"context"
	"log/slog"
	"time"

	"blane-checkout/internal/domain/deal"
	"blane-checkout/internal/domain/draft"
	"blane-checkout/internal/infra/backend"
	"blane-checkout/internal/pkg/clock"
	"blane-checkout/internal/pkg/config"
	"blane-checkout/internal/pkg/errs"
)

// SlotSource fetches the capacity snapshot for one date. Slots are refetched
// wholesale on every date change; staleness is acceptable within one
// form-fill session.
type SlotSource interface {
	GetAvailableTimeSlots(ctx context.Context, dealSlug string, date time.Time) ([]deal.TimeSlot, error)
}

// Queries is the handler-facing surface of the resolver.
type Queries interface {
	DaySlots(ctx context.Context, slug string, date time.Time) ([]deal.TimeSlot, error)
}

// Selection is the customer's current slot/period choice.
type Selection struct {
	Date      *time.Time
	TimeLabel string
	Period    *deal.Period
}

type Resolver struct {
	slots     SlotSource
	deals     DealSource
	clock     clock.Clock
	maxOrders int
	logger    *slog.Logger
}

// DealSource supplies the read-only deal snapshot for query endpoints.
type DealSource interface {
	FetchDeal(ctx context.Context, slug string) (*deal.Deal, error)
}

func NewResolver(client backend.Client, clk clock.Clock, cfg config.CheckoutConfig, logger *slog.Logger) *Resolver {
	maxOrders := cfg.MaxOrders
	if maxOrders <= 0 {
		maxOrders = 10
	}
	return &Resolver{
		slots:     client,
		deals:     client,
		clock:     clk,
		maxOrders: maxOrders,
		logger:    logger,
	}
}

// MaxOrderQuantity is min(stock, configured ceiling). Absent stock means
// unlimited, leaving only the configured ceiling.
func (r *Resolver) MaxOrderQuantity(d *deal.Deal) int {
	ceiling := r.maxOrders
	if stock := d.Stock(); stock != nil && *stock < ceiling {
		ceiling = *stock
	}
	if ceiling < 0 {
		return 0
	}
	return ceiling
}

// MaxReservationQuantity resolves the ceiling from the chosen slot or period.
// A failed slot lookup is a hard validation failure, not a silent fallback:
// booking against an unknown capacity is blocked.
func (r *Resolver) MaxReservationQuantity(ctx context.Context, d *deal.Deal, sel Selection) (int, error) {
	switch d.TimeModel() {
	case deal.TimeModelSlots:
		if sel.Date == nil || sel.TimeLabel == "" {
			return 0, errs.ErrSlotUnavailable
		}
		slots, err := r.slots.GetAvailableTimeSlots(ctx, d.Slug(), *sel.Date)
		if err != nil {
			return 0, errs.Mark(err, errs.ErrSlotUnavailable)
		}
		for _, slot := range slots {
			if slot.Label() == sel.TimeLabel {
				return slot.RemainingCapacity(), nil
			}
		}
		return 0, errs.ErrSlotUnavailable

	case deal.TimeModelPeriods:
		if sel.Period == nil {
			return 0, errs.ErrPeriodUnavailable
		}
		// The ceiling comes from the deal's own capacity snapshot; an
		// unknown period blocks rather than defaulting.
		p, ok := d.FindPeriod(sel.Period.Start(), sel.Period.End())
		if !ok {
			return 0, errs.ErrPeriodUnavailable
		}
		return p.RemainingCapacity(), nil

	default:
		return 0, errs.ErrSlotUnavailable
	}
}

// Ceiling dispatches on the deal kind.
func (r *Resolver) Ceiling(ctx context.Context, d *deal.Deal, sel Selection) (int, error) {
	if d.Kind() == deal.KindOrder {
		return r.MaxOrderQuantity(d), nil
	}
	return r.MaxReservationQuantity(ctx, d, sel)
}

// ApplyCeiling pushes a freshly resolved ceiling into the draft; the draft
// clamps its quantity down, never up.
func (r *Resolver) ApplyCeiling(ctx context.Context, d *deal.Deal, dr *draft.Draft) (int, error) {
	sel := Selection{Date: dr.Date(), TimeLabel: dr.TimeLabel(), Period: dr.Period()}
	ceiling, err := r.Ceiling(ctx, d, sel)
	if err != nil {
		dr.SetMaxQuantity(0)
		return 0, err
	}
	dr.SetMaxQuantity(ceiling)
	return ceiling, nil
}

// IsDateAvailable checks a single date against the deal's validity window
// and weekday restriction.
func (r *Resolver) IsDateAvailable(d *deal.Deal, date time.Time) bool {
	today := clock.Today(r.clock)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	if day.Before(d.EffectiveStart(today)) || day.After(d.EffectiveEnd(today)) {
		return false
	}
	return d.IsWeekdayAllowed(day.Weekday())
}

// IsPeriodValid accepts a period inside the validity window when at least
// one day of the inclusive range falls on an allowed weekday.
func (r *Resolver) IsPeriodValid(d *deal.Deal, p deal.Period) bool {
	today := clock.Today(r.clock)
	if p.Start().Before(d.EffectiveStart(today)) || p.End().After(d.EffectiveEnd(today)) {
		return false
	}

	allowed := false
	p.EachDay(func(day time.Time) bool {
		if d.IsWeekdayAllowed(day.Weekday()) {
			allowed = true
			return false
		}
		return true
	})
	return allowed
}

// DaySlots serves the availability endpoint: validate the date, then fetch
// that date's capacity snapshot.
func (r *Resolver) DaySlots(ctx context.Context, slug string, date time.Time) ([]deal.TimeSlot, error) {
	d, err := r.deals.FetchDeal(ctx, slug)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDealNotFound)
	}
	if !r.IsDateAvailable(d, date) {
		return nil, errs.ErrDateUnavailable
	}
	slots, err := r.slots.GetAvailableTimeSlots(ctx, slug, date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrBackendOperationFailed)
	}
	return slots, nil
}
