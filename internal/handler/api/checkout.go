package api

import (
	"errors"
	"net/http"

	"blane-checkout/internal/domain/draft"
	reqdto "blane-checkout/internal/handler/dto/request"
	resdto "blane-checkout/internal/handler/dto/response"
	"blane-checkout/internal/handler/httperr"
	"blane-checkout/internal/infra/navigator"
	"blane-checkout/internal/pkg/errs"
	"blane-checkout/internal/usecase/checkout"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	commands checkout.Commands
}

func NewCheckoutHandler(commands checkout.Commands) *CheckoutHandler {
	return &CheckoutHandler{commands: commands}
}

func (h *CheckoutHandler) Quote(c *gin.Context) {
	slug := c.Param("slug")

	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", httperr.BindingDetail(err))
		return
	}

	quote, err := h.commands.Quote(c.Request.Context(), slug, req.ToInput())
	if err != nil {
		if errors.Is(err, errs.ErrDealNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Deal not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Failed to compute quote", nil)
		return
	}

	resp, err := resdto.NewQuoteResponse(quote)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Checkout submits the draft. When the chosen method needs the gateway, the
// response body is the auto-submitting form page and control leaves the
// application; otherwise it is JSON.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	slug := c.Param("slug")

	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", httperr.BindingDetail(err))
		return
	}

	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}

	nav := navigator.NewFormPost(c.Writer)
	result, err := h.commands.Submit(c.Request.Context(), nav, slug, input)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDealNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Deal not found", nil)
		case errors.Is(err, errs.ErrSubmissionInFlight):
			httperr.AbortWithError(c, http.StatusConflict, err, "A submission is already in flight", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Submission failed", nil)
		}
		return
	}

	if result.State.Phase == draft.PhaseRedirected {
		// The navigator already wrote the gateway hand-off page, content
		// type included.
		return
	}

	resp, err := resdto.NewCheckoutResponse(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	switch {
	case result.State.Failed() && result.Record == nil:
		c.JSON(http.StatusUnprocessableEntity, resp)
	case result.State.Failed():
		// Payment preparation failed but the transaction exists.
		c.JSON(http.StatusOK, resp)
	default:
		c.JSON(http.StatusCreated, resp)
	}
}
