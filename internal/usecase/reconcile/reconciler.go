// Package reconcile recovers an in-flight or completed transaction when a
// deal's page is (re)entered and reconciles its status with the backend.
package reconcile

import (
	"context"
	"log/slog"

	"blane-checkout/internal/domain/deal"
	"blane-checkout/internal/domain/transaction"
	"blane-checkout/internal/infra/backend"
	"blane-checkout/internal/infra/store"
	"blane-checkout/internal/pkg/errs"
)

// View is the reconciled state shown on re-entry: the cached or refreshed
// record plus the payment intent that was in flight, if any.
type View struct {
	Kind   deal.Kind
	Record *transaction.Record
	Intent *transaction.PaymentIntent
}

// Queries is the handler-facing surface.
type Queries interface {
	Current(ctx context.Context, slug string) (*View, error)
	Reset(ctx context.Context, slug string) error
}

type Reconciler struct {
	store   store.Store
	backend backend.Client
	logger  *slog.Logger
}

func NewReconciler(st store.Store, client backend.Client, logger *slog.Logger) *Reconciler {
	return &Reconciler{store: st, backend: client, logger: logger}
}

// Recover applies the recovery order: full cached record first (no network),
// then a lookup by cached id, else nothing. A dead id reference is dropped so
// later visits don't loop on it.
func (r *Reconciler) Recover(ctx context.Context, d *deal.Deal) (*transaction.Record, error) {
	keys := store.NewKeys(d.Slug())
	kind := d.Kind()

	if cached, ok, err := r.store.Get(ctx, keys.Data(kind)); err == nil && ok {
		rec, decodeErr := transaction.DecodeRecord([]byte(cached))
		if decodeErr == nil {
			return rec, nil
		}
		r.logger.Warn("cached transaction record corrupt, falling back to id lookup",
			"slug", d.Slug(), "error", decodeErr)
	} else if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	id, ok, err := r.store.Get(ctx, keys.ID(kind))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	if !ok || id == "" {
		return nil, nil
	}

	rec, err := r.fetch(ctx, kind, id)
	if err != nil {
		r.logger.Warn("transaction lookup by cached id failed, dropping stale reference",
			"slug", d.Slug(), "id", id, "error", err)
		_ = r.store.Remove(ctx, keys.ID(kind))
		return nil, nil
	}

	if err := r.cache(ctx, keys, kind, rec); err != nil {
		r.logger.Warn("failed to cache recovered transaction", "slug", d.Slug(), "error", err)
	}
	return rec, nil
}

// Refresh performs the single best-effort status re-fetch done on mount. It
// is not a polling loop; a failure leaves the cached status authoritative.
func (r *Reconciler) Refresh(ctx context.Context, d *deal.Deal, rec *transaction.Record) *transaction.Record {
	fresh, err := r.fetch(ctx, d.Kind(), rec.ID)
	if err != nil {
		r.logger.Warn("status refresh failed, keeping cached status",
			"slug", d.Slug(), "id", rec.ID, "error", err)
		return rec
	}

	keys := store.NewKeys(d.Slug())
	if err := r.cache(ctx, keys, d.Kind(), fresh); err != nil {
		r.logger.Warn("failed to cache refreshed transaction", "slug", d.Slug(), "error", err)
	}
	return fresh
}

// Current fetches the deal, recovers any transaction for its slug, and
// refreshes its status once.
func (r *Reconciler) Current(ctx context.Context, slug string) (*View, error) {
	d, err := r.backend.FetchDeal(ctx, slug)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDealNotFound)
	}

	rec, err := r.Recover(ctx, d)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errs.ErrTransactionNotFound
	}

	rec = r.Refresh(ctx, d, rec)

	view := &View{Kind: d.Kind(), Record: rec}
	keys := store.NewKeys(slug)
	if cached, ok, getErr := r.store.Get(ctx, keys.PaymentIntent()); getErr == nil && ok {
		if intent, decodeErr := transaction.DecodePaymentIntent([]byte(cached)); decodeErr == nil {
			view.Intent = intent
		}
	}
	return view, nil
}

// Reset removes every slug-scoped key: the customer explicitly starts a new
// transaction for this deal.
func (r *Reconciler) Reset(ctx context.Context, slug string) error {
	keys := store.NewKeys(slug)
	for _, key := range keys.All() {
		if err := r.store.Remove(ctx, key); err != nil {
			return errs.Mark(err, errs.ErrStoreOperationFailed)
		}
	}
	return nil
}

func (r *Reconciler) fetch(ctx context.Context, kind deal.Kind, id string) (*transaction.Record, error) {
	if kind == deal.KindOrder {
		return r.backend.GetOrder(ctx, id)
	}
	return r.backend.GetReservationByID(ctx, id)
}

func (r *Reconciler) cache(ctx context.Context, keys store.Keys, kind deal.Kind, rec *transaction.Record) error {
	payload, err := rec.Payload()
	if err != nil {
		return err
	}
	return r.store.Set(ctx, keys.Data(kind), string(payload))
}
