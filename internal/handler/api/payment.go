package api

import (
	"net/http"

	"blane-checkout/internal/domain/deal"
	"blane-checkout/internal/handler/httperr"
	"blane-checkout/internal/infra"
	"blane-checkout/internal/infra/backend"
	"blane-checkout/internal/infra/navigator"
	"blane-checkout/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	backend backend.Client
}

func NewPaymentHandler(client backend.Client) *PaymentHandler {
	return &PaymentHandler{backend: client}
}

// Resume re-initiates payment for an already-created transaction and renders
// the gateway hand-off page again. A customer who lost the hop (closed the
// tab, gateway timeout, failed redirect) re-enters the gateway from here
// without resubmitting the checkout form.
func (h *PaymentHandler) Resume(c *gin.Context) {
	kind := deal.Kind(c.Param("kind"))
	if !kind.IsValid() {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrUnknownDealKind, "Unknown transaction kind", nil)
		return
	}
	id := c.Param("id")

	mode := backend.PaymentModeFull
	switch c.Query("mode") {
	case "", string(backend.PaymentModeFull):
	case string(backend.PaymentModePartial):
		mode = backend.PaymentModePartial
	default:
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrPaymentPreparation, "Unknown payment mode", nil)
		return
	}

	initiation, err := h.backend.InitiatePayment(c.Request.Context(), kind, id, mode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Transaction not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Failed to prepare payment", nil)
		return
	}
	if initiation.RedirectURL == "" {
		httperr.AbortWithError(c, http.StatusBadGateway, errs.ErrPaymentPreparation, "Failed to prepare payment", nil)
		return
	}

	nav := navigator.NewFormPost(c.Writer)
	if err := nav.SubmitPaymentForm(initiation.RedirectURL, initiation.FormData); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
