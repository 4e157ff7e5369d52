//go:build unit

package backend_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blane-checkout/internal/domain/deal"
	"blane-checkout/internal/infra"
	"blane-checkout/internal/infra/backend"
	"blane-checkout/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.Handler) backend.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return backend.NewClient(config.BackendConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, logger)
}

const dealBody = `{
	"id": "42",
	"slug": "spa-day",
	"name": "Spa Day",
	"type": "reservation",
	"type_time": "time",
	"price_current": 100,
	"price_old": 150,
	"tva": 10,
	"is_digital": false,
	"participants_per_slot": 2,
	"jours_creneaux": ["lundi", "mardi"],
	"start_date": "2026-03-01",
	"expiration_date": "2026-06-30",
	"cash": true,
	"online": true,
	"partiel": false,
	"partiel_field": 40,
	"city": "Casablanca",
	"livraison_in_city": 10,
	"livraison_out_city": 30,
	"image_link": "https://cdn.example.com/spa.jpg"
}`

func TestFetchDeal(t *testing.T) {
	t.Run("maps the wire vocabulary into the domain", func(t *testing.T) {
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/blanes/spa-day", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(dealBody))
		}))

		d, err := client.FetchDeal(context.Background(), "spa-day")
		require.NoError(t, err)

		assert.Equal(t, deal.KindReservation, d.Kind())
		assert.Equal(t, deal.TimeModelSlots, d.TimeModel())
		assert.Equal(t, 100.0, d.UnitPrice())
		assert.Equal(t, 10.0, d.TaxRatePercent())
		assert.Equal(t, 40.0, d.PartialPercent())
		assert.Equal(t, 2, d.ParticipantsPerSlot())
		assert.Equal(t, 10.0, d.InCityFee())
		assert.Equal(t, 30.0, d.OutOfCityFee())

		assert.True(t, d.MethodEnabled(deal.PaymentCash))
		assert.True(t, d.MethodEnabled(deal.PaymentOnline))
		assert.False(t, d.MethodEnabled(deal.PaymentPartial))

		assert.True(t, d.IsWeekdayAllowed(time.Monday))
		assert.False(t, d.IsWeekdayAllowed(time.Sunday))

		url, ok := d.Image().URL()
		require.True(t, ok)
		assert.Equal(t, "https://cdn.example.com/spa.jpg", url)
	})

	t.Run("broken image link collapses to missing", func(t *testing.T) {
		body := `{"id":"1","slug":"s","name":"n","type":"order","price_current":50,"cash":true,"image_link":{"error":"no image"}}`
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(body))
		}))

		d, err := client.FetchDeal(context.Background(), "s")
		require.NoError(t, err)
		assert.True(t, d.Image().IsMissing())
	})

	t.Run("404 maps to the not-found kind", func(t *testing.T) {
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		_, err := client.FetchDeal(context.Background(), "ghost")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("unknown weekday name is rejected at the boundary", func(t *testing.T) {
		body := `{"id":"1","slug":"s","name":"n","type":"order","price_current":50,"cash":true,"jours_creneaux":["monday"]}`
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(body))
		}))

		_, err := client.FetchDeal(context.Background(), "s")
		require.Error(t, err)
	})
}

func TestGetAvailableTimeSlots(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/blanes/spa-day/slots", r.URL.Path)
		assert.Equal(t, "2026-03-09", r.URL.Query().Get("date"))
		_, _ = w.Write([]byte(`[{"time":"10:00","available":true,"max_reservations":5,"current_reservations":2}]`))
	}))

	date := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)
	slots, err := client.GetAvailableTimeSlots(context.Background(), "spa-day", date)
	require.NoError(t, err)

	require.Len(t, slots, 1)
	assert.Equal(t, "10:00", slots[0].Label())
	assert.True(t, slots[0].Available())
	assert.Equal(t, 3, slots[0].RemainingCapacity())
}

func TestCreateOrder(t *testing.T) {
	t.Run("decodes the created record and keeps the body", func(t *testing.T) {
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/orders", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"ord-1","status":"pending","quantity":2,"total_price":230,"extra":"kept"}`))
		}))

		rec, err := client.CreateOrder(context.Background(), map[string]any{"deal_slug": "spa-day"})
		require.NoError(t, err)
		assert.Equal(t, "ord-1", rec.ID)

		payload, err := rec.Payload()
		require.NoError(t, err)
		assert.Contains(t, string(payload), `"extra":"kept"`)
	})

	t.Run("422 with a field map becomes a validation error", func(t *testing.T) {
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"message":"validation failed","errors":{"email":["email already used"]}}`))
		}))

		_, err := client.CreateOrder(context.Background(), map[string]any{})
		require.Error(t, err)

		ve, ok := infra.AsValidation(err)
		require.True(t, ok)
		assert.Equal(t, "validation failed", ve.Message)
		assert.Equal(t, []string{"email already used"}, ve.Fields["email"])
	})

	t.Run("400 without a message picks the first field message", func(t *testing.T) {
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"errors":{"quantity":["too many"]}}`))
		}))

		_, err := client.CreateOrder(context.Background(), map[string]any{})
		ve, ok := infra.AsValidation(err)
		require.True(t, ok)
		assert.Equal(t, "too many", ve.Message)
	})

	t.Run("5xx maps to a backend failure", func(t *testing.T) {
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))

		_, err := client.CreateOrder(context.Background(), map[string]any{})
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindBackendFailure))
	})
}

func TestInitiatePayment(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/payments/initiate/reservation/res-7/partial", r.URL.Path)
		_, _ = w.Write([]byte(`{"redirect_url":"https://gateway.example.com/pay","payment_form_data":{"token":"abc"}}`))
	}))

	initiation, err := client.InitiatePayment(context.Background(), deal.KindReservation, "res-7", backend.PaymentModePartial)
	require.NoError(t, err)
	assert.Equal(t, "https://gateway.example.com/pay", initiation.RedirectURL)
	assert.Equal(t, map[string]string{"token": "abc"}, initiation.FormData)
}

func TestGetReservationByID(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/reservations/res-7", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"res-7","status":"confirmed"}`))
	}))

	rec, err := client.GetReservationByID(context.Background(), "res-7")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", rec.Status)
}
