package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fx_rates_service/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_service/internal/dto"
	"github.com/SscSPs/fx_rates_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// healthHandler reports whether the rate table is loaded.
type healthHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// getHealth godoc
// @Summary Show the status of server.
// @Description The service only runs with a loaded rate table, so this reports ok together with the number of base currencies.
// @Tags root
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /health [get]
func (h *healthHandler) getHealth(c *gin.Context) {
	codes, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Health check failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Currencies: len(codes)})
}

// registerHealthRoutes registers the '/health' route
func registerHealthRoutes(rg gin.IRoutes, currencyService portssvc.CurrencySvcFacade) {
	h := &healthHandler{currencyService: currencyService}
	rg.GET("/health", h.getHealth)
}
