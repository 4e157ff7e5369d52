// Package backend is the HTTP client for the deals platform API. Every call
// is awaited; timeouts belong to the underlying http.Client.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"blane-checkout/internal/domain/deal"
	"blane-checkout/internal/domain/transaction"
	"blane-checkout/internal/infra"
	"blane-checkout/internal/pkg/config"

	"log/slog"
)

// PaymentMode selects how much of the total the gateway charges.
type PaymentMode string

const (
	PaymentModeFull    PaymentMode = "full"
	PaymentModePartial PaymentMode = "partial"
)

type Client interface {
	FetchDeal(ctx context.Context, slug string) (*deal.Deal, error)
	GetAvailableTimeSlots(ctx context.Context, dealSlug string, date time.Time) ([]deal.TimeSlot, error)
	CreateOrder(ctx context.Context, payload any) (*transaction.Record, error)
	GetOrder(ctx context.Context, id string) (*transaction.Record, error)
	CreateReservation(ctx context.Context, payload any) (*transaction.Record, error)
	GetReservationByID(ctx context.Context, id string) (*transaction.Record, error)
	InitiatePayment(ctx context.Context, kind deal.Kind, id string, mode PaymentMode) (*PaymentInitiation, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

func NewClient(cfg config.BackendConfig, logger *slog.Logger) Client {
	return &httpClient{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

func (c *httpClient) FetchDeal(ctx context.Context, slug string) (*deal.Deal, error) {
	var dto dealDTO
	if err := c.do(ctx, http.MethodGet, "/api/blanes/"+url.PathEscape(slug), nil, &dto); err != nil {
		return nil, err
	}
	return dto.toDomain()
}

func (c *httpClient) GetAvailableTimeSlots(ctx context.Context, dealSlug string, date time.Time) ([]deal.TimeSlot, error) {
	path := fmt.Sprintf("/api/blanes/%s/slots?date=%s", url.PathEscape(dealSlug), date.Format(wireDateLayout))
	var dtos []slotDTO
	if err := c.do(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}
	slots := make([]deal.TimeSlot, 0, len(dtos))
	for _, dto := range dtos {
		slots = append(slots, dto.toDomain())
	}
	return slots, nil
}

func (c *httpClient) CreateOrder(ctx context.Context, payload any) (*transaction.Record, error) {
	return c.createTransaction(ctx, "/api/orders", payload)
}

func (c *httpClient) GetOrder(ctx context.Context, id string) (*transaction.Record, error) {
	return c.getTransaction(ctx, "/api/orders/"+url.PathEscape(id))
}

func (c *httpClient) CreateReservation(ctx context.Context, payload any) (*transaction.Record, error) {
	return c.createTransaction(ctx, "/api/reservations", payload)
}

func (c *httpClient) GetReservationByID(ctx context.Context, id string) (*transaction.Record, error) {
	return c.getTransaction(ctx, "/api/reservations/"+url.PathEscape(id))
}

func (c *httpClient) InitiatePayment(ctx context.Context, kind deal.Kind, id string, mode PaymentMode) (*PaymentInitiation, error) {
	path := fmt.Sprintf("/api/payments/initiate/%s/%s/%s", kind, url.PathEscape(id), mode)
	var initiation PaymentInitiation
	if err := c.do(ctx, http.MethodPost, path, nil, &initiation); err != nil {
		return nil, err
	}
	return &initiation, nil
}

func (c *httpClient) createTransaction(ctx context.Context, path string, payload any) (*transaction.Record, error) {
	body, err := c.doRaw(ctx, http.MethodPost, path, payload)
	if err != nil {
		return nil, err
	}
	return transaction.DecodeRecord(body)
}

func (c *httpClient) getTransaction(ctx context.Context, path string) (*transaction.Record, error) {
	body, err := c.doRaw(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return transaction.DecodeRecord(body)
}

func (c *httpClient) do(ctx context.Context, method, path string, payload, out any) error {
	body, err := c.doRaw(ctx, method, path, payload)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindBackendFailure, "decode response from "+path, err)
	}
	return nil
}

func (c *httpClient) doRaw(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, infra.WrapGatewayErr(c.logger, infra.KindBackendFailure, "encode request for "+path, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindBackendFailure, "build request for "+path, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindBackendFailure, method+" "+path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindBackendFailure, "read response from "+path, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, infra.WrapGatewayErr(c.logger, infra.KindNotFound, path, nil)
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return nil, c.validationError(body)
	default:
		return nil, infra.WrapGatewayErr(c.logger, infra.KindBackendFailure,
			fmt.Sprintf("%s %s returned %d", method, path, resp.StatusCode), nil)
	}
}

func (c *httpClient) validationError(body []byte) error {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return &infra.ValidationError{Message: string(body)}
	}
	message := envelope.Message
	if message == "" {
		for _, msgs := range envelope.Errors {
			if len(msgs) > 0 {
				message = msgs[0]
				break
			}
		}
	}
	return &infra.ValidationError{Message: message, Fields: envelope.Errors}
}
