//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"blane-checkout/internal/domain/deal"
	"blane-checkout/internal/handler/api"
	"blane-checkout/internal/infra"
	"blane-checkout/internal/infra/backend"
	backendmock "blane-checkout/tests/mock/backend"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockClient *backendmock.MockClient
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockClient = backendmock.NewMockClient(s.mockCtrl)
	handler := api.NewPaymentHandler(s.mockClient)

	s.router.GET("/pay/:kind/:id", handler.Resume)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) TestResume() {
	s.Run("re-renders the gateway hand-off page for an existing order", func() {
		s.mockClient.EXPECT().
			InitiatePayment(gomock.Any(), deal.KindOrder, "ord-1", backend.PaymentModeFull).
			Return(&backend.PaymentInitiation{
				RedirectURL: "https://gateway.example.com/pay",
				FormData:    map[string]string{"token": "abc123"},
			}, nil)

		rec := performRequest(s.router, http.MethodGet, "/pay/order/ord-1", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Header().Get("Content-Type"), "text/html")
		s.Contains(rec.Body.String(), `action="https://gateway.example.com/pay"`)
		s.Contains(rec.Body.String(), `name="token" value="abc123"`)
		s.Contains(rec.Body.String(), "document.forms[0].submit()")
	})

	s.Run("partial mode is forwarded to the initiation call", func() {
		s.mockClient.EXPECT().
			InitiatePayment(gomock.Any(), deal.KindReservation, "res-2", backend.PaymentModePartial).
			Return(&backend.PaymentInitiation{RedirectURL: "https://gateway.example.com/pay"}, nil)

		rec := performRequest(s.router, http.MethodGet, "/pay/reservation/res-2?mode=partial", nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("400 for an unknown kind", func() {
		rec := performRequest(s.router, http.MethodGet, "/pay/coupon/ord-1", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("400 for an unknown mode", func() {
		rec := performRequest(s.router, http.MethodGet, "/pay/order/ord-1?mode=half", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("404 when the transaction no longer exists", func() {
		s.mockClient.EXPECT().
			InitiatePayment(gomock.Any(), deal.KindOrder, "ord-9", backend.PaymentModeFull).
			Return(nil, infra.GatewayError{Kind: infra.KindNotFound})

		rec := performRequest(s.router, http.MethodGet, "/pay/order/ord-9", nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("502 when initiation returns no redirect URL", func() {
		s.mockClient.EXPECT().
			InitiatePayment(gomock.Any(), deal.KindOrder, "ord-1", backend.PaymentModeFull).
			Return(&backend.PaymentInitiation{}, nil)

		rec := performRequest(s.router, http.MethodGet, "/pay/order/ord-1", nil)
		s.Equal(http.StatusBadGateway, rec.Code)
	})
}
