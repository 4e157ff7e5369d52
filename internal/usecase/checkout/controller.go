// Package checkout owns the transaction draft lifecycle: validation,
// availability-constrained quantity resolution, payload assembly, submission
// and the hand-off to the payment bridge.
package checkout

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"blane-checkout/internal/domain/deal"
	"blane-checkout/internal/domain/draft"
	"blane-checkout/internal/domain/pricing"
	"blane-checkout/internal/domain/transaction"
	"blane-checkout/internal/infra"
	"blane-checkout/internal/infra/backend"
	"blane-checkout/internal/pkg/clock"
	"blane-checkout/internal/pkg/config"
	"blane-checkout/internal/pkg/errs"
	"blane-checkout/internal/pkg/phone"
	"blane-checkout/internal/usecase/availability"
	"blane-checkout/internal/usecase/payment"
)

type QuoteInput struct {
	Quantity      int
	City          string
	PaymentMethod string
}

type SubmitInput struct {
	Name        string
	Email       string
	PhoneDial   string
	PhoneNumber string
	Quantity    int

	Date        *time.Time
	TimeLabel   string
	PeriodStart *time.Time
	PeriodEnd   *time.Time

	DeliveryAddress string
	City            string
	Comment         string
	PaymentMethod   string
}

// SubmitResult reports the terminal state of one submission attempt.
// FieldErrors is non-empty when validation (local or backend) blocked the
// submission; Outcome is set once the backend created the transaction.
type SubmitResult struct {
	State       draft.State
	FieldErrors draft.FieldErrors
	Notice      string
	Record      *transaction.Record
	Outcome     *payment.Outcome
}

type Commands interface {
	Quote(ctx context.Context, slug string, in QuoteInput) (*pricing.Quote, error)
	Submit(ctx context.Context, nav payment.Navigator, slug string, in SubmitInput) (*SubmitResult, error)
}

type controllerImpl struct {
	backend            backend.Client
	resolver           *availability.Resolver
	bridge             *payment.Bridge
	clock              clock.Clock
	logger             *slog.Logger
	defaultPhoneRegion string

	// One submission in flight per deal slug. The draft carries its own
	// guard too, but HTTP requests build a fresh draft each time, so the
	// duplicate-click protection has to live at the slug level.
	inFlight sync.Map
}

func NewCommands(
	client backend.Client,
	resolver *availability.Resolver,
	bridge *payment.Bridge,
	clk clock.Clock,
	cfg config.CheckoutConfig,
	logger *slog.Logger,
) Commands {
	return &controllerImpl{
		backend:            client,
		resolver:           resolver,
		bridge:             bridge,
		clock:              clk,
		logger:             logger,
		defaultPhoneRegion: cfg.DefaultPhoneRegion,
	}
}

func (c *controllerImpl) Quote(ctx context.Context, slug string, in QuoteInput) (*pricing.Quote, error) {
	d, err := c.backend.FetchDeal(ctx, slug)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDealNotFound)
	}

	quantity := in.Quantity
	if quantity < 1 {
		quantity = 1
	}
	quote := pricing.QuoteFor(d, quantity, in.City, deal.PaymentMethod(in.PaymentMethod))
	return &quote, nil
}

func (c *controllerImpl) Submit(ctx context.Context, nav payment.Navigator, slug string, in SubmitInput) (*SubmitResult, error) {
	if _, loaded := c.inFlight.LoadOrStore(slug, struct{}{}); loaded {
		return nil, errs.ErrSubmissionInFlight
	}
	defer c.inFlight.Delete(slug)

	d, err := c.backend.FetchDeal(ctx, slug)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDealNotFound)
	}

	dr, err := buildDraft(in)
	if err != nil {
		return nil, err
	}
	return c.SubmitDraft(ctx, nav, d, dr)
}

// SubmitDraft runs one submission attempt against an already-built draft.
// Exactly one attempt may be in flight per draft instance; a concurrent
// second click is rejected locally before any network call.
func (c *controllerImpl) SubmitDraft(ctx context.Context, nav payment.Navigator, d *deal.Deal, dr *draft.Draft) (*SubmitResult, error) {
	if err := dr.BeginSubmit(); err != nil {
		return nil, errs.Mark(err, errs.ErrSubmissionInFlight)
	}
	defer dr.EndSubmit()

	state, _ := draft.Transition(draft.Initial(), draft.EventSubmit)

	if fe := c.checkEligibility(d, dr); !fe.IsEmpty() {
		dr.SetErrors(fe)
		state, _ = draft.Transition(state, draft.EventInvalid)
		return &SubmitResult{
			State:       state.WithReason("availability"),
			FieldErrors: fe,
			Notice:      fe.First(),
		}, nil
	}

	// A missing slot/period selection is a form error, not an availability
	// one; resolving a ceiling for it would only mask the real field.
	if fe := selectionErrors(d, dr); !fe.IsEmpty() {
		dr.SetErrors(fe)
		state, _ = draft.Transition(state, draft.EventInvalid)
		return &SubmitResult{
			State:       state.WithReason("validation"),
			FieldErrors: fe,
			Notice:      fe.First(),
		}, nil
	}

	if _, err := c.resolver.ApplyCeiling(ctx, d, dr); err != nil {
		fieldErrors := draft.FieldErrors{}
		fieldErrors.Add("quantity", "selected slot or period is unavailable")
		dr.SetErrors(fieldErrors)
		state, _ = draft.Transition(state, draft.EventInvalid)
		return &SubmitResult{
			State:       state.WithReason("availability"),
			FieldErrors: fieldErrors,
			Notice:      fieldErrors.First(),
		}, nil
	}

	fieldErrors := c.validateDraft(d, dr)
	if !fieldErrors.IsEmpty() {
		dr.SetErrors(fieldErrors)
		state, _ = draft.Transition(state, draft.EventInvalid)
		return &SubmitResult{
			State:       state.WithReason("validation"),
			FieldErrors: fieldErrors,
			Notice:      fieldErrors.First(),
		}, nil
	}
	dr.ClearErrors()

	state, _ = draft.Transition(state, draft.EventValid)
	state, _ = draft.Transition(state, draft.EventConfirm)

	normalizedPhone, err := phone.Normalize(dr.PhoneDial(), dr.PhoneNumber(), c.defaultPhoneRegion)
	if err != nil {
		// Validation passed just above; treat a normalization failure as a
		// phone field error rather than an internal one.
		fe := draft.FieldErrors{}
		fe.Add("phone", "a valid phone number for the selected country is required")
		dr.SetErrors(fe)
		state, _ = draft.Transition(state, draft.EventFail)
		return &SubmitResult{State: state.WithReason("validation"), FieldErrors: fe, Notice: fe.First()}, nil
	}

	quote := pricing.QuoteFor(d, dr.Quantity(), dr.City(), dr.Method())

	rec, err := c.createTransaction(ctx, d, dr, normalizedPhone, quote)
	if err != nil {
		return c.submissionFailure(dr, state, err)
	}

	return c.finalize(ctx, nav, d, dr, state, rec, quote)
}

func (c *controllerImpl) createTransaction(
	ctx context.Context,
	d *deal.Deal,
	dr *draft.Draft,
	normalizedPhone string,
	quote pricing.Quote,
) (*transaction.Record, error) {
	if d.Kind() == deal.KindOrder {
		return c.backend.CreateOrder(ctx, buildOrderPayload(d, dr, normalizedPhone, quote))
	}
	return c.backend.CreateReservation(ctx, buildReservationPayload(d, dr, normalizedPhone, quote))
}

func (c *controllerImpl) finalize(
	ctx context.Context,
	nav payment.Navigator,
	d *deal.Deal,
	dr *draft.Draft,
	state draft.State,
	rec *transaction.Record,
	quote pricing.Quote,
) (*SubmitResult, error) {
	if !dr.Method().RequiresGateway() {
		outcome, err := c.bridge.Finalize(ctx, nav, d, rec, dr.Method(), quote.AmountDue)
		if err != nil {
			// The transaction exists; a cache write failure only degrades
			// later recovery.
			c.logger.Warn("failed to persist cash transaction", "slug", d.Slug(), "error", err)
			outcome = &payment.Outcome{State: payment.StateCompletedImmediately, Record: rec}
		}
		state, _ = draft.Transition(state, draft.EventCreatedTerminal)
		return &SubmitResult{State: state, Record: rec, Outcome: outcome}, nil
	}

	state, _ = draft.Transition(state, draft.EventCreatedPayable)
	outcome, err := c.bridge.Finalize(ctx, nav, d, rec, dr.Method(), quote.AmountDue)
	if err != nil {
		return nil, err
	}

	result := &SubmitResult{Record: rec, Outcome: outcome}
	if outcome.PreparationErr != nil {
		c.logger.Error("payment preparation failed after creation",
			"slug", d.Slug(), "id", rec.ID, "error", outcome.PreparationErr)
		result.State = state.WithReason("payment_preparation")
		result.State.Phase = draft.PhaseFailed
		result.Notice = "payment setup failed; your transaction was created and will be retried"
		return result, nil
	}

	state, _ = draft.Transition(state, draft.EventRedirectIssued)
	result.State = state
	return result, nil
}

// checkEligibility rejects a chosen date or period that falls outside the
// deal's validity window or weekday allow-list.
func (c *controllerImpl) checkEligibility(d *deal.Deal, dr *draft.Draft) draft.FieldErrors {
	fe := draft.FieldErrors{}
	if d.Kind() != deal.KindReservation {
		return fe
	}
	if date := dr.Date(); date != nil && !c.resolver.IsDateAvailable(d, *date) {
		fe.Add("date", "date is not available for this deal")
	}
	if period := dr.Period(); period != nil && !c.resolver.IsPeriodValid(d, *period) {
		fe.Add("period", "period is not available for this deal")
	}
	return fe
}

// submissionFailure maps a backend rejection into the per-field error map
// when it is shaped as one, otherwise surfaces a single notice. The form
// stays editable and resubmittable; nothing retries automatically.
func (c *controllerImpl) submissionFailure(dr *draft.Draft, state draft.State, err error) (*SubmitResult, error) {
	state, _ = draft.Transition(state, draft.EventFail)

	if ve, ok := infra.AsValidation(err); ok {
		fieldErrors := draft.FieldErrors{}
		for field, messages := range ve.Fields {
			for _, message := range messages {
				fieldErrors.Add(field, message)
			}
		}
		notice := ve.Message
		if first := fieldErrors.First(); notice == "" && first != "" {
			notice = first
		}
		dr.SetErrors(fieldErrors)
		return &SubmitResult{
			State:       state.WithReason("backend_validation"),
			FieldErrors: fieldErrors,
			Notice:      notice,
		}, nil
	}

	c.logger.Error("transaction submission failed", "error", err)
	return &SubmitResult{
		State:  state.WithReason("submission"),
		Notice: "something went wrong, please try again",
	}, nil
}

func buildDraft(in SubmitInput) (*draft.Draft, error) {
	dr := draft.New()
	dr.SetContact(in.Name, in.Email, in.PhoneDial, in.PhoneNumber)
	dr.SetDelivery(in.DeliveryAddress, in.City)
	dr.SetComment(in.Comment)
	dr.SetMethod(deal.PaymentMethod(in.PaymentMethod))
	dr.SetQuantity(in.Quantity)
	dr.SetMaxQuantity(in.Quantity) // the resolver re-clamps before submit

	if in.Date != nil {
		dr.SetDate(*in.Date, in.TimeLabel)
	}
	if in.PeriodStart != nil && in.PeriodEnd != nil {
		period, err := deal.NewPeriod(*in.PeriodStart, *in.PeriodEnd, 0, 0, false)
		if err != nil {
			return nil, err
		}
		dr.SetPeriod(period)
	}
	return dr, nil
}
