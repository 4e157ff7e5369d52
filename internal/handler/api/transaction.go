package api

import (
	"errors"
	"net/http"

	resdto "blane-checkout/internal/handler/dto/response"
	"blane-checkout/internal/handler/httperr"
	"blane-checkout/internal/pkg/errs"
	"blane-checkout/internal/usecase/reconcile"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	queries reconcile.Queries
}

func NewTransactionHandler(queries reconcile.Queries) *TransactionHandler {
	return &TransactionHandler{queries: queries}
}

// Current returns the recovered transaction for a deal's page, if any. A 404
// means the caller should render a fresh draft form.
func (h *TransactionHandler) Current(c *gin.Context) {
	slug := c.Param("slug")

	view, err := h.queries.Current(c.Request.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrTransactionNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No transaction for this deal", nil)
		case errors.Is(err, errs.ErrDealNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Deal not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to recover transaction", nil)
		}
		return
	}

	resp, err := resdto.NewTransactionResponse(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Reset clears the slug-scoped cache: the customer explicitly starts a new
// transaction.
func (h *TransactionHandler) Reset(c *gin.Context) {
	slug := c.Param("slug")

	if err := h.queries.Reset(c.Request.Context(), slug); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to reset transaction", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
