// Package payment drives the hand-off to the external gateway. The one
// safety-critical ordering in the checkout core lives here: the slug-scoped
// persistence write must complete before navigation, because the redirect
// unloads the page and in-memory state is lost.
package payment

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"blane-checkout/internal/domain/deal"
	"blane-checkout/internal/domain/transaction"
	"blane-checkout/internal/infra/backend"
	"blane-checkout/internal/infra/store"
	"blane-checkout/internal/pkg/clock"
	"blane-checkout/internal/pkg/errs"
)

// Navigator performs the POST-style navigation to the gateway. It is not an
// XHR: control leaves the application once it succeeds.
type Navigator interface {
	SubmitPaymentForm(redirectURL string, fields map[string]string) error
}

// State enumerates the bridge's per-submission lifecycle.
type State string

const (
	StateCreated              State = "created"
	StatePersistedPending     State = "persisted_pending"
	StateRedirecting          State = "redirecting"
	StateCompletedImmediately State = "completed_immediately"
	StatePreparationFailed    State = "preparation_failed"
)

// Outcome reports how a submission ended. PreparationErr being set means
// payment setup failed while the underlying transaction already exists in
// its last known status; it is never fabricated into a success or a loss.
type Outcome struct {
	State          State
	Record         *transaction.Record
	Intent         *transaction.PaymentIntent
	PreparationErr error
}

type Bridge struct {
	store   store.Store
	backend backend.Client
	clock   clock.Clock
	logger  *slog.Logger
}

func NewBridge(st store.Store, client backend.Client, clk clock.Clock, logger *slog.Logger) *Bridge {
	return &Bridge{store: st, backend: client, clock: clk, logger: logger}
}

// Finalize persists the created record and, for gateway methods, performs the
// redirect. The returned error covers only persistence of a cash transaction;
// every gateway-side failure is reported through Outcome.PreparationErr so
// the caller still learns the transaction was created.
func (b *Bridge) Finalize(
	ctx context.Context,
	nav Navigator,
	d *deal.Deal,
	rec *transaction.Record,
	method deal.PaymentMethod,
	amountDue float64,
) (*Outcome, error) {
	outcome := &Outcome{State: StateCreated, Record: rec}
	keys := store.NewKeys(d.Slug())

	if !method.RequiresGateway() {
		if err := b.persistRecord(ctx, keys, d, rec); err != nil {
			return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
		}
		outcome.State = StateCompletedImmediately
		return outcome, nil
	}

	intent := transaction.NewPaymentIntent(d.Kind(), rec, method, amountDue, b.clock.Now())
	outcome.Intent = &intent

	// Durability boundary: everything below must be flushed before the
	// navigation instruction is issued.
	if err := b.persistRecord(ctx, keys, d, rec); err != nil {
		outcome.State = StatePreparationFailed
		outcome.PreparationErr = errs.Mark(err, errs.ErrPaymentPreparation)
		return outcome, nil
	}
	if err := b.persistIntent(ctx, keys, intent); err != nil {
		outcome.State = StatePreparationFailed
		outcome.PreparationErr = errs.Mark(err, errs.ErrPaymentPreparation)
		return outcome, nil
	}
	outcome.State = StatePersistedPending

	mode := backend.PaymentModeFull
	if method == deal.PaymentPartial {
		mode = backend.PaymentModePartial
	}

	initiation, err := b.backend.InitiatePayment(ctx, d.Kind(), rec.ID, mode)
	if err != nil {
		outcome.State = StatePreparationFailed
		outcome.PreparationErr = errs.Mark(err, errs.ErrPaymentPreparation)
		return outcome, nil
	}
	if initiation.RedirectURL == "" {
		outcome.State = StatePreparationFailed
		outcome.PreparationErr = errs.Mark(errs.New("initiation returned no redirect URL"), errs.ErrPaymentPreparation)
		return outcome, nil
	}

	outcome.State = StateRedirecting
	if err := nav.SubmitPaymentForm(initiation.RedirectURL, initiation.FormData); err != nil {
		outcome.State = StatePreparationFailed
		outcome.PreparationErr = errs.Mark(err, errs.ErrPaymentPreparation)
		return outcome, nil
	}
	return outcome, nil
}

func (b *Bridge) persistRecord(ctx context.Context, keys store.Keys, d *deal.Deal, rec *transaction.Record) error {
	payload, err := rec.Payload()
	if err != nil {
		return err
	}
	if err := b.store.Set(ctx, keys.Data(d.Kind()), string(payload)); err != nil {
		return err
	}
	if err := b.store.Set(ctx, keys.ID(d.Kind()), rec.ID); err != nil {
		return err
	}
	if d.Kind() == deal.KindOrder {
		fee := strconv.FormatFloat(rec.DeliveryFee, 'f', 2, 64)
		if err := b.store.Set(ctx, store.OrderDeliveryFeeKey(rec.ID), fee); err != nil {
			return err
		}
		if err := b.store.Set(ctx, keys.DeliveryFee(), fee); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bridge) persistIntent(ctx context.Context, keys store.Keys, intent transaction.PaymentIntent) error {
	payload, err := json.Marshal(intent)
	if err != nil {
		return errs.Wrap(err, "encode payment intent")
	}
	return b.store.Set(ctx, keys.PaymentIntent(), string(payload))
}
