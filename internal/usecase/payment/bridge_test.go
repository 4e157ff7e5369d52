//go:build unit

package payment_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"blane-checkout/internal/domain/deal"
	"blane-checkout/internal/domain/transaction"
	"blane-checkout/internal/infra/backend"
	"blane-checkout/internal/infra/store"
	"blane-checkout/internal/pkg/clock"
	"blane-checkout/internal/pkg/errs"
	"blane-checkout/internal/usecase/payment"
	"blane-checkout/tests/common/builder"
	backendmock "blane-checkout/tests/mock/backend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

// tracingStore records operation order so the persist-before-navigate
// boundary can be asserted.
type tracingStore struct {
	values map[string]string
	trace  *[]string
	failOn string
}

func newTracingStore(trace *[]string) *tracingStore {
	return &tracingStore{values: make(map[string]string), trace: trace}
}

func (s *tracingStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *tracingStore) Set(_ context.Context, key, value string) error {
	if s.failOn != "" && key == s.failOn {
		return errs.New("store write failed")
	}
	*s.trace = append(*s.trace, "set "+key)
	s.values[key] = value
	return nil
}

func (s *tracingStore) Remove(_ context.Context, key string) error {
	delete(s.values, key)
	return nil
}

type tracingNavigator struct {
	trace       *[]string
	redirectURL string
	fields      map[string]string
	err         error
}

func (n *tracingNavigator) SubmitPaymentForm(redirectURL string, fields map[string]string) error {
	if n.err != nil {
		return n.err
	}
	*n.trace = append(*n.trace, "navigate")
	n.redirectURL = redirectURL
	n.fields = fields
	return nil
}

type bridgeFixture struct {
	bridge *payment.Bridge
	client *backendmock.MockClient
	store  *tracingStore
	nav    *tracingNavigator
	trace  []string
}

func newFixture(t *testing.T) *bridgeFixture {
	t.Helper()
	f := &bridgeFixture{}
	f.store = newTracingStore(&f.trace)
	f.nav = &tracingNavigator{trace: &f.trace}
	f.client = backendmock.NewMockClient(gomock.NewController(t))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.bridge = payment.NewBridge(f.store, f.client, clock.NewMockClock(testNow), logger)
	return f
}

func orderRecord() *transaction.Record {
	return &transaction.Record{
		ID:          "ord-1",
		Status:      "pending",
		Quantity:    2,
		TotalPrice:  230,
		DeliveryFee: 30,
	}
}

func TestFinalizeCash(t *testing.T) {
	f := newFixture(t)
	d, err := builder.NewDealBuilder().Build()
	require.NoError(t, err)
	rec := orderRecord()

	outcome, err := f.bridge.Finalize(context.Background(), f.nav, d, rec, deal.PaymentCash, 230)
	require.NoError(t, err)

	assert.Equal(t, payment.StateCompletedImmediately, outcome.State)
	assert.Equal(t, rec, outcome.Record)
	assert.Nil(t, outcome.Intent)
	assert.Nil(t, outcome.PreparationErr)

	keys := store.NewKeys(d.Slug())
	_, ok, _ := f.store.Get(context.Background(), keys.Data(deal.KindOrder))
	assert.True(t, ok)
	id, ok, _ := f.store.Get(context.Background(), keys.ID(deal.KindOrder))
	require.True(t, ok)
	assert.Equal(t, "ord-1", id)

	fee, ok, _ := f.store.Get(context.Background(), keys.DeliveryFee())
	require.True(t, ok)
	assert.Equal(t, "30.00", fee)
	fee, ok, _ = f.store.Get(context.Background(), store.OrderDeliveryFeeKey("ord-1"))
	require.True(t, ok)
	assert.Equal(t, "30.00", fee)

	// No payment intent for cash and no navigation.
	_, ok, _ = f.store.Get(context.Background(), keys.PaymentIntent())
	assert.False(t, ok)
	assert.NotContains(t, f.trace, "navigate")
}

func TestFinalizeCashStoreFailure(t *testing.T) {
	f := newFixture(t)
	d, err := builder.NewDealBuilder().Build()
	require.NoError(t, err)

	keys := store.NewKeys(d.Slug())
	f.store.failOn = keys.Data(deal.KindOrder)

	_, err = f.bridge.Finalize(context.Background(), f.nav, d, orderRecord(), deal.PaymentCash, 230)
	require.ErrorIs(t, err, errs.ErrStoreOperationFailed)
}

func TestFinalizeGateway(t *testing.T) {
	t.Run("persists record and intent before navigating", func(t *testing.T) {
		f := newFixture(t)
		d, err := builder.NewDealBuilder().Build()
		require.NoError(t, err)
		rec := orderRecord()

		f.client.EXPECT().
			InitiatePayment(gomock.Any(), deal.KindOrder, "ord-1", backend.PaymentModeFull).
			DoAndReturn(func(context.Context, deal.Kind, string, backend.PaymentMode) (*backend.PaymentInitiation, error) {
				f.trace = append(f.trace, "initiate")
				return &backend.PaymentInitiation{
					RedirectURL: "https://gateway.example.com/pay",
					FormData:    map[string]string{"token": "abc"},
				}, nil
			})

		outcome, err := f.bridge.Finalize(context.Background(), f.nav, d, rec, deal.PaymentOnline, 230)
		require.NoError(t, err)

		assert.Equal(t, payment.StateRedirecting, outcome.State)
		require.NotNil(t, outcome.Intent)
		assert.Equal(t, "https://gateway.example.com/pay", f.nav.redirectURL)
		assert.Equal(t, map[string]string{"token": "abc"}, f.nav.fields)

		// Every persistence write lands before initiation, which in turn
		// precedes navigation.
		require.NotEmpty(t, f.trace)
		assert.Equal(t, "initiate", f.trace[len(f.trace)-2])
		assert.Equal(t, "navigate", f.trace[len(f.trace)-1])
	})

	t.Run("partial method initiates in partial mode with the partial amount", func(t *testing.T) {
		f := newFixture(t)
		d, err := builder.NewDealBuilder().Build()
		require.NoError(t, err)

		f.client.EXPECT().
			InitiatePayment(gomock.Any(), deal.KindOrder, "ord-1", backend.PaymentModePartial).
			Return(&backend.PaymentInitiation{RedirectURL: "https://gateway.example.com/pay"}, nil)

		outcome, err := f.bridge.Finalize(context.Background(), f.nav, d, orderRecord(), deal.PaymentPartial, 75.9)
		require.NoError(t, err)

		require.NotNil(t, outcome.Intent)
		assert.Equal(t, 75.9, outcome.Intent.Amount)
		assert.Equal(t, "partial", outcome.Intent.Method)
		assert.Equal(t, testNow, outcome.Intent.Timestamp)
	})

	t.Run("initiation failure still reports the created transaction", func(t *testing.T) {
		f := newFixture(t)
		d, err := builder.NewDealBuilder().Build()
		require.NoError(t, err)
		rec := orderRecord()

		f.client.EXPECT().
			InitiatePayment(gomock.Any(), deal.KindOrder, "ord-1", backend.PaymentModeFull).
			Return(nil, errs.New("gateway unavailable"))

		outcome, err := f.bridge.Finalize(context.Background(), f.nav, d, rec, deal.PaymentOnline, 230)
		require.NoError(t, err)

		assert.Equal(t, payment.StatePreparationFailed, outcome.State)
		assert.Equal(t, rec, outcome.Record)
		require.Error(t, outcome.PreparationErr)
		assert.ErrorIs(t, outcome.PreparationErr, errs.ErrPaymentPreparation)
		assert.NotContains(t, f.trace, "navigate")

		// The record stays cached so re-entry can recover it.
		keys := store.NewKeys(d.Slug())
		_, ok, _ := f.store.Get(context.Background(), keys.Data(deal.KindOrder))
		assert.True(t, ok)
	})

	t.Run("persistence failure blocks initiation entirely", func(t *testing.T) {
		f := newFixture(t)
		d, err := builder.NewDealBuilder().Build()
		require.NoError(t, err)

		keys := store.NewKeys(d.Slug())
		f.store.failOn = keys.Data(deal.KindOrder)
		// No InitiatePayment expectation: reaching the backend would fail the test.

		outcome, err := f.bridge.Finalize(context.Background(), f.nav, d, orderRecord(), deal.PaymentOnline, 230)
		require.NoError(t, err)
		assert.Equal(t, payment.StatePreparationFailed, outcome.State)
		require.ErrorIs(t, outcome.PreparationErr, errs.ErrPaymentPreparation)
	})

	t.Run("empty redirect URL is a preparation failure", func(t *testing.T) {
		f := newFixture(t)
		d, err := builder.NewDealBuilder().Build()
		require.NoError(t, err)

		f.client.EXPECT().
			InitiatePayment(gomock.Any(), deal.KindOrder, "ord-1", backend.PaymentModeFull).
			Return(&backend.PaymentInitiation{}, nil)

		outcome, err := f.bridge.Finalize(context.Background(), f.nav, d, orderRecord(), deal.PaymentOnline, 230)
		require.NoError(t, err)
		assert.Equal(t, payment.StatePreparationFailed, outcome.State)
		require.ErrorIs(t, outcome.PreparationErr, errs.ErrPaymentPreparation)
	})

	t.Run("navigation failure is a preparation failure", func(t *testing.T) {
		f := newFixture(t)
		d, err := builder.NewDealBuilder().Build()
		require.NoError(t, err)

		f.nav.err = errs.New("writer closed")
		f.client.EXPECT().
			InitiatePayment(gomock.Any(), deal.KindOrder, "ord-1", backend.PaymentModeFull).
			Return(&backend.PaymentInitiation{RedirectURL: "https://gateway.example.com/pay"}, nil)

		outcome, err := f.bridge.Finalize(context.Background(), f.nav, d, orderRecord(), deal.PaymentOnline, 230)
		require.NoError(t, err)
		assert.Equal(t, payment.StatePreparationFailed, outcome.State)
		require.ErrorIs(t, outcome.PreparationErr, errs.ErrPaymentPreparation)
	})
}
