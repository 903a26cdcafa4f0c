package riskscore

import (
	nethttp "net/http"

	"github.com/habitado/go-condo-billing/internal/common/http"
	"github.com/habitado/go-condo-billing/internal/models"
	"github.com/habitado/go-condo-billing/internal/services"

	"github.com/labstack/echo/v4"
)

type riskScoreHandler struct {
	riskService services.RiskService
}

// New risk score handler will initialize the risk-scores/ resources endpoint
func New(app *echo.Group, riskService services.RiskService) {
	handler := riskScoreHandler{riskService: riskService}

	riskScores := app.Group("/risk-scores")
	riskScores.GET("", handler.getAllRiskScores)
}

// getAllRiskScores API lists persisted risk scores with cursor pagination
// @Summary 	Get all risk scores
// @Description Get the delinquency risk scores persisted by the nightly rebuild
// @Tags 		RiskScores
// @Accept		json
// @Produce		json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param   params query models.DoGetListRiskScoreRequest true "Get all risk scores query parameters"
// @Success 200 {object} http.RestPaginationResponseModel[[]models.RiskScoreOut] "Response indicates that the request succeeded and the resources has been fetched and transmitted in the message body"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if there is an error while get risk scores"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while get risk scores"
// @Router /v1/risk-scores [get]
func (h *riskScoreHandler) getAllRiskScores(c echo.Context) error {
	var queryFilter models.DoGetListRiskScoreRequest
	if err := c.Bind(&queryFilter); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	opts, err := queryFilter.ToFilterOpts()
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	scores, total, err := h.riskService.GetList(c.Request().Context(), *opts)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponseCursorPagination[models.RiskScoreOut](c, scores, opts.Limit, total)
}
