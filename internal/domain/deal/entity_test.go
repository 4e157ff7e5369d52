//go:build unit

package deal_test

import (
	"encoding/json"
	"testing"
	"time"

	"blane-checkout/internal/domain/deal"
	"blane-checkout/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNew(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*builder.DealBuilder)
		errIs  error
	}{
		{
			name:   "valid order deal",
			mutate: func(b *builder.DealBuilder) {},
		},
		{
			name:   "missing slug",
			mutate: func(b *builder.DealBuilder) { b.WithSlug("  ") },
			errIs:  deal.ErrMissingSlug,
		},
		{
			name:   "unknown kind",
			mutate: func(b *builder.DealBuilder) { b.WithKind("subscription") },
			errIs:  deal.ErrInvalidKind,
		},
		{
			name: "reservation requires a time model",
			mutate: func(b *builder.DealBuilder) {
				b.WithKind(deal.KindReservation)
			},
			errIs: deal.ErrInvalidTimeModel,
		},
		{
			name: "reservation with slots model",
			mutate: func(b *builder.DealBuilder) {
				b.WithKind(deal.KindReservation).WithTimeModel(deal.TimeModelSlots)
			},
		},
		{
			name:   "zero price",
			mutate: func(b *builder.DealBuilder) { b.WithUnitPrice(0) },
			errIs:  deal.ErrInvalidPrice,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewDealBuilder()
			tc.mutate(b)
			d, err := b.Build()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, d)
		})
	}
}

func TestDealDefaults(t *testing.T) {
	d, err := builder.NewDealBuilder().Build()
	require.NoError(t, err)

	assert.Equal(t, 20.0, d.TaxRatePercent())
	assert.Equal(t, 33.0, d.PartialPercent())
	assert.Equal(t, 0.0, d.InCityFee())
	assert.Equal(t, 0.0, d.OutOfCityFee())
	assert.Equal(t, 1, d.ParticipantsPerSlot())
	assert.Nil(t, d.Stock())

	t.Run("non-positive partial percent falls back to the default", func(t *testing.T) {
		d, err := builder.NewDealBuilder().WithPartialPercent(0).Build()
		require.NoError(t, err)
		assert.Equal(t, 33.0, d.PartialPercent())
	})
}

func TestEffectiveWindow(t *testing.T) {
	today := date(2026, time.March, 10)

	t.Run("start defaults to today", func(t *testing.T) {
		d, err := builder.NewDealBuilder().Build()
		require.NoError(t, err)
		assert.Equal(t, today, d.EffectiveStart(today))
	})

	t.Run("explicit start wins", func(t *testing.T) {
		d, err := builder.NewDealBuilder().WithStartDate(date(2026, time.April, 1)).Build()
		require.NoError(t, err)
		assert.Equal(t, date(2026, time.April, 1), d.EffectiveStart(today))
	})

	t.Run("end falls back start -> +90 days when nothing is set", func(t *testing.T) {
		d, err := builder.NewDealBuilder().Build()
		require.NoError(t, err)
		assert.Equal(t, today.AddDate(0, 0, 90), d.EffectiveEnd(today))
	})

	t.Run("explicit end beats the default horizon", func(t *testing.T) {
		d, err := builder.NewDealBuilder().WithEndDate(date(2026, time.May, 1)).Build()
		require.NoError(t, err)
		assert.Equal(t, date(2026, time.May, 1), d.EffectiveEnd(today))
	})

	t.Run("expiration beats the explicit end", func(t *testing.T) {
		d, err := builder.NewDealBuilder().
			WithEndDate(date(2026, time.May, 1)).
			WithExpirationDate(date(2026, time.April, 15)).
			Build()
		require.NoError(t, err)
		assert.Equal(t, date(2026, time.April, 15), d.EffectiveEnd(today))
	})
}

func TestIsWeekdayAllowed(t *testing.T) {
	t.Run("no restriction allows every day", func(t *testing.T) {
		d, err := builder.NewDealBuilder().Build()
		require.NoError(t, err)
		assert.True(t, d.IsWeekdayAllowed(time.Sunday))
	})

	t.Run("restriction is an allow-list", func(t *testing.T) {
		d, err := builder.NewDealBuilder().WithWeekdays(time.Monday, time.Tuesday).Build()
		require.NoError(t, err)
		assert.True(t, d.IsWeekdayAllowed(time.Monday))
		assert.False(t, d.IsWeekdayAllowed(time.Saturday))
	})
}

func TestFindPeriod(t *testing.T) {
	p, err := deal.NewPeriod(date(2026, time.June, 1), date(2026, time.June, 5), 8, 3, false)
	require.NoError(t, err)

	d, err := builder.NewDealBuilder().
		WithKind(deal.KindReservation).
		WithTimeModel(deal.TimeModelPeriods).
		WithPeriods(p).
		Build()
	require.NoError(t, err)

	t.Run("matches on calendar days, ignoring time of day", func(t *testing.T) {
		found, ok := d.FindPeriod(
			time.Date(2026, time.June, 1, 14, 30, 0, 0, time.UTC),
			time.Date(2026, time.June, 5, 9, 0, 0, 0, time.UTC),
		)
		require.True(t, ok)
		assert.Equal(t, 5, found.RemainingCapacity())
	})

	t.Run("unknown range is not resolved", func(t *testing.T) {
		_, ok := d.FindPeriod(date(2026, time.June, 2), date(2026, time.June, 5))
		assert.False(t, ok)
	})
}

func TestParseWeekday(t *testing.T) {
	day, ok := deal.ParseWeekday("lundi")
	require.True(t, ok)
	assert.Equal(t, time.Monday, day)

	day, ok = deal.ParseWeekday("dimanche")
	require.True(t, ok)
	assert.Equal(t, time.Sunday, day)

	_, ok = deal.ParseWeekday("monday")
	assert.False(t, ok)
}

func TestPaymentMethod(t *testing.T) {
	assert.Equal(t, "partiel", deal.PaymentPartial.WireValue())
	assert.Equal(t, "cash", deal.PaymentCash.WireValue())
	assert.Equal(t, "online", deal.PaymentOnline.WireValue())

	assert.False(t, deal.PaymentCash.RequiresGateway())
	assert.True(t, deal.PaymentOnline.RequiresGateway())
	assert.True(t, deal.PaymentPartial.RequiresGateway())

	assert.False(t, deal.PaymentMethod("paypal").IsValid())
}

func TestImageRef(t *testing.T) {
	t.Run("string decodes to a URL", func(t *testing.T) {
		var ref deal.ImageRef
		require.NoError(t, json.Unmarshal([]byte(`"https://cdn.example.com/deal.jpg"`), &ref))
		url, ok := ref.URL()
		require.True(t, ok)
		assert.Equal(t, "https://cdn.example.com/deal.jpg", url)
	})

	t.Run("error object collapses to missing", func(t *testing.T) {
		var ref deal.ImageRef
		require.NoError(t, json.Unmarshal([]byte(`{"error":"not found"}`), &ref))
		assert.True(t, ref.IsMissing())
	})

	t.Run("null collapses to missing", func(t *testing.T) {
		var ref deal.ImageRef
		require.NoError(t, json.Unmarshal([]byte(`null`), &ref))
		assert.True(t, ref.IsMissing())
	})
}

func TestTimeSlot(t *testing.T) {
	slot := deal.NewTimeSlot("10:00", true, 5, 3)
	assert.Equal(t, 2, slot.RemainingCapacity())

	overbooked := deal.NewTimeSlot("11:00", false, 5, 7)
	assert.Equal(t, 0, overbooked.RemainingCapacity())
}

func TestPeriod(t *testing.T) {
	t.Run("end before start is rejected", func(t *testing.T) {
		_, err := deal.NewPeriod(date(2026, time.June, 5), date(2026, time.June, 1), 1, 0, false)
		require.ErrorIs(t, err, deal.ErrInvalidPeriod)
	})

	t.Run("days counts the inclusive range", func(t *testing.T) {
		p, err := deal.NewPeriod(date(2026, time.June, 1), date(2026, time.June, 5), 1, 0, false)
		require.NoError(t, err)
		assert.Equal(t, 5, p.Days())

		single, err := deal.NewPeriod(date(2026, time.June, 1), date(2026, time.June, 1), 1, 0, false)
		require.NoError(t, err)
		assert.Equal(t, 1, single.Days())
	})

	t.Run("each day visits the range in order and can stop early", func(t *testing.T) {
		p, err := deal.NewPeriod(date(2026, time.June, 1), date(2026, time.June, 4), 1, 0, false)
		require.NoError(t, err)

		var visited []time.Time
		p.EachDay(func(d time.Time) bool {
			visited = append(visited, d)
			return len(visited) < 2
		})
		require.Len(t, visited, 2)
		assert.Equal(t, date(2026, time.June, 1), visited[0])
		assert.Equal(t, date(2026, time.June, 2), visited[1])
	})
}
