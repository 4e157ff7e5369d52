package api

import (
	"errors"
	"net/http"
	"time"

	resdto "blane-checkout/internal/handler/dto/response"
	"blane-checkout/internal/handler/httperr"
	"blane-checkout/internal/pkg/errs"
	"blane-checkout/internal/usecase/availability"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type AvailabilityHandler struct {
	queries availability.Queries
}

func NewAvailabilityHandler(queries availability.Queries) *AvailabilityHandler {
	return &AvailabilityHandler{queries: queries}
}

func (h *AvailabilityHandler) DaySlots(c *gin.Context) {
	slug := c.Param("slug")

	rawDate := c.Query("date")
	date, err := time.Parse(dateLayout, rawDate)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or missing date", nil)
		return
	}

	slots, err := h.queries.DaySlots(c.Request.Context(), slug, date)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDealNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Deal not found", nil)
		case errors.Is(err, errs.ErrDateUnavailable):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Date not available for this deal", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Failed to fetch availability", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NewAvailabilityResponse(rawDate, slots))
}
