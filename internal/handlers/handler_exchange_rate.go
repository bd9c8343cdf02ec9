package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/fx_rates_service/internal/apperrors"
	portssvc "github.com/SscSPs/fx_rates_service/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_service/internal/dto"
	"github.com/SscSPs/fx_rates_service/internal/middleware"
	"github.com/SscSPs/fx_rates_service/internal/utils"
	"github.com/gin-gonic/gin"
)

const rateNotFoundMessage = "Rate not found"

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg gin.IRoutes, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	rg.GET("/rate", h.getExchangeRate)
	rg.GET("/convert", h.convert)
}

// getExchangeRate godoc
// @Summary Get an exchange rate
// @Description Returns the stored rate for a currency pair. Codes are case-insensitive and echoed in uppercase.
// @Tags exchange rates
// @Produce  json
// @Param   from query string true "From currency code"
// @Param   to   query string true "To currency code"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} dto.ErrorResponse "from or to missing"
// @Failure 404 {object} dto.ErrorResponse "Rate not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve exchange rate"
// @Router /rate [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.RateQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid query for GetExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	logger = logger.With(slog.String("from", query.From), slog.String("to", query.To))

	rate, err := h.exchangeRateService.GetExchangeRate(c.Request.Context(), query.From, query.To)
	if err != nil {
		h.writeError(c, logger, err, "Failed to retrieve exchange rate")
		return
	}

	logger.Debug("Exchange rate retrieved successfully", slog.Float64("rate", rate.Rate))
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// convert godoc
// @Summary Convert an amount
// @Description Multiplies amount by the stored rate and rounds the result to 6 decimal places (half away from zero).
// @Tags exchange rates
// @Produce  json
// @Param   from   query string true  "From currency code"
// @Param   to     query string true  "To currency code"
// @Param   amount query number false "Amount to convert" default(1)
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} dto.ErrorResponse "from or to missing, or amount not numeric"
// @Failure 404 {object} dto.ErrorResponse "Rate not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to convert amount"
// @Router /convert [get]
func (h *exchangeRateHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.ConvertQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid query for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	logger = logger.With(slog.String("from", query.From), slog.String("to", query.To))

	amount, err := utils.ParseAmount(query.Amount)
	if err != nil {
		logger.Warn("Invalid amount", slog.String("amount", query.Amount), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: validationMessage(err)})
		return
	}

	conv, err := h.exchangeRateService.ConvertAmount(c.Request.Context(), query.From, query.To, amount)
	if err != nil {
		h.writeError(c, logger, err, "Failed to convert amount")
		return
	}

	logger.Debug("Amount converted successfully", slog.Float64("amount", amount), slog.String("converted", conv.Converted.String()))
	c.JSON(http.StatusOK, dto.ToConversionResponse(conv))
}

// writeError maps service errors onto HTTP responses.
func (h *exchangeRateHandler) writeError(c *gin.Context, logger *slog.Logger, err error, internalMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: validationMessage(err)})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Info("Exchange rate not found")
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: rateNotFoundMessage})
	default:
		logger.Error(internalMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: internalMsg})
	}
}
