package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fx_rates_service/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_service/internal/dto"
	"github.com/SscSPs/fx_rates_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg gin.IRoutes, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)
	rg.GET("/currencies", h.listCurrencies)
}

// listCurrencies godoc
// @Summary List currencies
// @Description Lists the base currencies that have at least one rate, sorted by code
// @Tags currencies
// @Produce  json
// @Success 200 {object} dto.ListCurrenciesResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to list currencies"
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	codes, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list currencies"})
		return
	}

	c.JSON(http.StatusOK, dto.ListCurrenciesResponse{Currencies: codes})
}
