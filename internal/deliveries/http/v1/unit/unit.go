package unit

import (
	nethttp "net/http"

	"github.com/habitado/go-condo-billing/internal/common/http"
	"github.com/habitado/go-condo-billing/internal/common/http/middleware"
	"github.com/habitado/go-condo-billing/internal/common/validation"
	"github.com/habitado/go-condo-billing/internal/models"
	"github.com/habitado/go-condo-billing/internal/services"

	"github.com/labstack/echo/v4"
)

type unitHandler struct {
	unitService services.UnitService
	riskService services.RiskService
}

// New unit handler will initialize the units/ resources endpoint
func New(app *echo.Group, unitService services.UnitService, riskService services.RiskService, m middleware.AppMiddleware) {
	handler := unitHandler{
		unitService: unitService,
		riskService: riskService,
	}
	units := app.Group("/units")
	units.POST("", handler.createUnit, m.CheckRetryDLQ())
	units.GET("", handler.getAllUnits)
	units.GET("/:id", handler.getOneUnit)
	units.GET("/:id/risk-score", handler.getUnitRiskScore)
}

// createUnit API registers a billable unit
// @Summary Create unit
// @Description Register a billable condominium unit
// @Tags Units
// @Accept  json
// @Produce  json
// @Param 	payload body models.CreateUnitRequest true "A JSON object containing create unit payload"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 201 {object} models.UnitOut "Response indicates that the request succeeded and the resources has been fetched and transmitted in the message body"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if there is an error while create unit"
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse} "Validation error. This can happen if there is an error validation while create unit"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while create unit"
// @Router /v1/units [post]
func (h *unitHandler) createUnit(c echo.Context) error {
	req := new(models.CreateUnitRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	created, err := h.unitService.Create(c.Request().Context(), req.ToCreateUnitIn())
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, created.ToModelResponse())
}

// getAllUnits API lists units with cursor pagination
// @Summary 	Get all units
// @Description Get all units
// @Tags 		Units
// @Accept		json
// @Produce		json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param   params query models.DoGetListUnitRequest true "Get all units query parameters"
// @Success 200 {object} http.RestPaginationResponseModel[[]models.UnitOut] "Response indicates that the request succeeded and the resources has been fetched and transmitted in the message body"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if there is an error while get units"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while get units"
// @Router /v1/units [get]
func (h *unitHandler) getAllUnits(c echo.Context) error {
	var queryFilter models.DoGetListUnitRequest
	if err := c.Bind(&queryFilter); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	opts, err := queryFilter.ToFilterOpts()
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	units, total, err := h.unitService.GetList(c.Request().Context(), *opts)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponseCursorPagination[models.UnitOut](c, units, opts.Limit, total)
}

// getOneUnit API fetches one unit by id
// @Summary 	Get one unit
// @Description Get one unit detail by id
// @Tags 		Units
// @Accept		json
// @Produce		json
// @Param 	id path string true "unit identifier"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} models.UnitOut "Response indicates that the request succeeded and the resources has been fetched and transmitted in the message body"
// @Failure 404 {object} http.RestErrorResponseModel "Data not found. This can happen if the unit does not exist"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while get unit"
// @Router /v1/units/{id} [get]
func (h *unitHandler) getOneUnit(c echo.Context) error {
	found, err := h.unitService.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, found.ToModelResponse())
}

// getUnitRiskScore API scores one unit's delinquency risk on demand
// @Summary 	Get unit risk score
// @Description Compute or fetch the cached delinquency risk score of one unit
// @Tags 		Units
// @Accept		json
// @Produce		json
// @Param 	id path string true "unit identifier"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} models.RiskScoreOut "Response indicates that the request succeeded and the resources has been fetched and transmitted in the message body"
// @Failure 404 {object} http.RestErrorResponseModel "Data not found. This can happen if the unit does not exist"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while scoring the unit"
// @Router /v1/units/{id}/risk-score [get]
func (h *unitHandler) getUnitRiskScore(c echo.Context) error {
	score, err := h.riskService.GetUnitRisk(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, score.ToModelResponse())
}
