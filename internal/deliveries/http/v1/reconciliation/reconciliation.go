package reconciliation

import (
	nethttp "net/http"

	"github.com/habitado/go-condo-billing/internal/common/http"
	"github.com/habitado/go-condo-billing/internal/common/http/middleware"
	"github.com/habitado/go-condo-billing/internal/common/validation"
	"github.com/habitado/go-condo-billing/internal/models"
	"github.com/habitado/go-condo-billing/internal/services"

	"github.com/labstack/echo/v4"
)

type reconciliationHandler struct {
	reconciliationService services.ReconciliationService
}

// New reconciliation handler will initialize the reconciliations/ and
// suggestions/ resources endpoint
func New(app *echo.Group, reconciliationService services.ReconciliationService, m middleware.AppMiddleware) {
	handler := reconciliationHandler{reconciliationService: reconciliationService}

	reconciliations := app.Group("/reconciliations")
	reconciliations.POST("", handler.uploadStatement, m.CheckRetryDLQ())
	reconciliations.GET("", handler.getAllRuns)
	reconciliations.GET("/:id", handler.getOneRun)
	reconciliations.GET("/:id/suggestions", handler.getSuggestions)

	suggestions := app.Group("/suggestions")
	suggestions.POST("/:id/approve", handler.approveSuggestion)
	suggestions.POST("/:id/reject", handler.rejectSuggestion)
}

// uploadStatement API accepts a bank statement or retorno file and queues a run
// @Summary Upload statement
// @Description Upload an OFX/CNAB statement or retorno file and queue an asynchronous reconciliation run
// @Tags Reconciliations
// @Accept  multipart/form-data
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param	condoId formData string true "condominium identifier"
// @Param	bankAccountId formData string true "bank account identifier"
// @Param	kind formData string false "statement or retorno, inferred from the file extension when empty"
// @Param	requestedBy formData string false "who requested the run"
// @Param	statementFile formData file true "ofx, cnab240 txt or cnab400 ret file"
// @Success 202 {object} models.UploadStatementResponse "Response indicates that the request has been accepted for processing"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if there is an error while upload statement"
// @Failure 409 {object} http.RestErrorResponseModel "Conflict error. This can happen if a file with the same name was already uploaded"
// @Failure 413 {object} http.RestErrorResponseModel "Payload too large. This can happen if the file exceeds the upload size limit"
// @Failure 415 {object} http.RestErrorResponseModel "Unsupported media type. This can happen if the file extension is not supported"
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse} "Validation error. This can happen if there is an error validation while upload statement"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while upload statement"
// @Router /v1/reconciliations [post]
func (h *reconciliationHandler) uploadStatement(c echo.Context) error {
	file, err := c.FormFile("statementFile")
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	req := &models.UploadStatementRequest{
		CondoID:       c.FormValue("condoId"),
		BankAccountID: c.FormValue("bankAccountId"),
		Kind:          c.FormValue("kind"),
		RequestedBy:   c.FormValue("requestedBy"),
		StatementFile: file,
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	resp, err := h.reconciliationService.UploadStatement(c.Request().Context(), req)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusAccepted, resp)
}

// getAllRuns API lists reconciliation runs with cursor pagination
// @Summary 	Get all reconciliation runs
// @Description Get all reconciliation runs
// @Tags 		Reconciliations
// @Accept		json
// @Produce		json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param   params query models.DoGetListRunRequest true "Get all reconciliation runs query parameters"
// @Success 200 {object} http.RestPaginationResponseModel[[]models.ReconciliationRunOut] "Response indicates that the request succeeded and the resources has been fetched and transmitted in the message body"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if there is an error while get reconciliation runs"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while get reconciliation runs"
// @Router /v1/reconciliations [get]
func (h *reconciliationHandler) getAllRuns(c echo.Context) error {
	var queryFilter models.DoGetListRunRequest
	if err := c.Bind(&queryFilter); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	opts, err := queryFilter.ToFilterOpts()
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	runs, total, err := h.reconciliationService.GetListRuns(c.Request().Context(), *opts)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponseCursorPagination[models.ReconciliationRunOut](c, runs, opts.Limit, total)
}

// getOneRun API fetches one run with its summary and signed report URL
// @Summary 	Get one reconciliation run
// @Description Get one reconciliation run detail, including a signed report URL when a report exists
// @Tags 		Reconciliations
// @Accept		json
// @Produce		json
// @Param 	id path string true "reconciliation run identifier"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} models.ReconciliationRunDetailOut "Response indicates that the request succeeded and the resources has been fetched and transmitted in the message body"
// @Failure 404 {object} http.RestErrorResponseModel "Data not found. This can happen if the reconciliation run does not exist"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while get reconciliation run"
// @Router /v1/reconciliations/{id} [get]
func (h *reconciliationHandler) getOneRun(c echo.Context) error {
	detail, err := h.reconciliationService.GetRun(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, detail)
}

// getSuggestions API lists the match suggestions of one run
// @Summary 	Get run suggestions
// @Description Get the fuzzy match suggestions produced by one reconciliation run
// @Tags 		Reconciliations
// @Accept		json
// @Produce		json
// @Param 	id path string true "reconciliation run identifier"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} http.RestTotalRowResponseModel "Response indicates that the request succeeded and the resources has been fetched and transmitted in the message body"
// @Failure 404 {object} http.RestErrorResponseModel "Data not found. This can happen if the reconciliation run does not exist"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while get suggestions"
// @Router /v1/reconciliations/{id}/suggestions [get]
func (h *reconciliationHandler) getSuggestions(c echo.Context) error {
	suggestions, err := h.reconciliationService.GetSuggestions(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	out := make([]models.MatchSuggestionOut, 0, len(suggestions))
	for _, suggestion := range suggestions {
		out = append(out, suggestion.ToModelResponse())
	}

	return http.RestSuccessResponseListWithTotalRows(c, out, len(out))
}

// approveSuggestion API approves one pending match suggestion
// @Summary Approve suggestion
// @Description Approve a pending match suggestion, settling its invoice
// @Tags Reconciliations
// @Accept  json
// @Produce  json
// @Param 	id path string true "match suggestion identifier"
// @Param 	payload body models.DecideSuggestionRequest false "A JSON object containing decide suggestion payload"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} models.DecideSuggestionResponse "Response indicates that the request succeeded and the resources has been fetched and transmitted in the message body"
// @Failure 404 {object} http.RestErrorResponseModel "Data not found. This can happen if the suggestion does not exist"
// @Failure 409 {object} http.RestErrorResponseModel "Conflict error. This can happen if the suggestion was already decided"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while decide suggestion"
// @Router /v1/suggestions/{id}/approve [post]
func (h *reconciliationHandler) approveSuggestion(c echo.Context) error {
	return h.decideSuggestion(c, models.SuggestionActionApprove)
}

// rejectSuggestion API rejects one pending match suggestion
// @Summary Reject suggestion
// @Description Reject a pending match suggestion, leaving its invoice untouched
// @Tags Reconciliations
// @Accept  json
// @Produce  json
// @Param 	id path string true "match suggestion identifier"
// @Param 	payload body models.DecideSuggestionRequest false "A JSON object containing decide suggestion payload"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} models.DecideSuggestionResponse "Response indicates that the request succeeded and the resources has been fetched and transmitted in the message body"
// @Failure 404 {object} http.RestErrorResponseModel "Data not found. This can happen if the suggestion does not exist"
// @Failure 409 {object} http.RestErrorResponseModel "Conflict error. This can happen if the suggestion was already decided"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while decide suggestion"
// @Router /v1/suggestions/{id}/reject [post]
func (h *reconciliationHandler) rejectSuggestion(c echo.Context) error {
	return h.decideSuggestion(c, models.SuggestionActionReject)
}

func (h *reconciliationHandler) decideSuggestion(c echo.Context, action string) error {
	req := new(models.DecideSuggestionRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}
	req.ID = c.Param("id")
	req.Action = action

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	resp, err := h.reconciliationService.DecideSuggestion(c.Request().Context(), *req)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, resp)
}
