package invoice

import (
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/common/http"
	"github.com/habitado/go-condo-billing/internal/common/http/middleware"
	"github.com/habitado/go-condo-billing/internal/common/validation"
	"github.com/habitado/go-condo-billing/internal/models"
	"github.com/habitado/go-condo-billing/internal/services"

	"github.com/labstack/echo/v4"
)

type invoiceHandler struct {
	invoiceService services.InvoiceService
}

// New invoice handler will initialize the invoices/ resources endpoint
func New(app *echo.Group, invoiceService services.InvoiceService, m middleware.AppMiddleware) {
	handler := invoiceHandler{invoiceService: invoiceService}

	invoices := app.Group("/invoices")
	invoices.POST("", handler.createInvoice, m.CheckIdempotentRequest())
	invoices.GET("", handler.getAllInvoices)
	invoices.GET("/download", handler.downloadInvoices)
	invoices.GET("/:number", handler.getOneInvoice)
	invoices.POST("/:number/payments", handler.registerPayment, m.CheckIdempotentRequest())
	invoices.POST("/:number/cancel", handler.cancelInvoice)
}

// createInvoice API issues a monthly invoice with boleto identifiers
// @Summary Create invoice
// @Description Issue a monthly condominium invoice for a unit
// @Tags Invoices
// @Accept  json
// @Produce  json
// @Param 	payload body models.CreateInvoiceRequest true "A JSON object containing create invoice payload"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param	X-Idempotency-Key header string false "X-Idempotency-Key"
// @Success 201 {object} models.InvoiceOut "Response indicates that the request succeeded and the resources has been fetched and transmitted in the message body"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if there is an error while create invoice"
// @Failure 409 {object} http.RestErrorResponseModel "Conflict error. This can happen if the unit already has an invoice for the reference month"
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse} "Validation error. This can happen if there is an error validation while create invoice"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while create invoice"
// @Router /v1/invoices [post]
func (h *invoiceHandler) createInvoice(c echo.Context) error {
	req := new(models.CreateInvoiceRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	in, err := req.ToCreateInvoiceIn()
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	created, err := h.invoiceService.Create(c.Request().Context(), in)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, created.ToModelResponse())
}

// getAllInvoices API lists invoices with cursor pagination
// @Summary 	Get all invoices
// @Description Get all invoices
// @Tags 		Invoices
// @Accept		json
// @Produce		json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param   params query models.DoGetListInvoiceRequest true "Get all invoices query parameters"
// @Success 200 {object} http.RestPaginationResponseModel[[]models.InvoiceOut] "Response indicates that the request succeeded and the resources has been fetched and transmitted in the message body"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if there is an error while get invoices"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while get invoices"
// @Router /v1/invoices [get]
func (h *invoiceHandler) getAllInvoices(c echo.Context) error {
	var queryFilter models.DoGetListInvoiceRequest
	if err := c.Bind(&queryFilter); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	opts, err := queryFilter.ToFilterOpts()
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	invoices, total, err := h.invoiceService.GetList(c.Request().Context(), *opts)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponseCursorPagination[models.InvoiceOut](c, invoices, opts.Limit, total)
}

// getOneInvoice API fetches one invoice by number
// @Summary 	Get one invoice
// @Description Get one invoice detail by its number
// @Tags 		Invoices
// @Accept		json
// @Produce		json
// @Param 	number path string true "invoice number"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} models.InvoiceOut "Response indicates that the request succeeded and the resources has been fetched and transmitted in the message body"
// @Failure 404 {object} http.RestErrorResponseModel "Data not found. This can happen if the invoice does not exist"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while get invoice"
// @Router /v1/invoices/{number} [get]
func (h *invoiceHandler) getOneInvoice(c echo.Context) error {
	found, err := h.invoiceService.GetByNumber(c.Request().Context(), c.Param("number"))
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, found.ToModelResponse())
}

// registerPayment API applies a manual payment to a pending invoice
// @Summary Register payment
// @Description Register a manual payment against a pending or overdue invoice
// @Tags Invoices
// @Accept  json
// @Produce  json
// @Param 	number path string true "invoice number"
// @Param 	payload body models.RegisterPaymentRequest true "A JSON object containing register payment payload"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param	X-Idempotency-Key header string false "X-Idempotency-Key"
// @Success 200 {object} models.InvoiceOut "Response indicates that the request succeeded and the resources has been fetched and transmitted in the message body"
// @Failure 404 {object} http.RestErrorResponseModel "Data not found. This can happen if the invoice does not exist"
// @Failure 409 {object} http.RestErrorResponseModel "Conflict error. This can happen if the invoice is already paid or cancelled"
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse} "Validation error. This can happen if there is an error validation while register payment"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while register payment"
// @Router /v1/invoices/{number}/payments [post]
func (h *invoiceHandler) registerPayment(c echo.Context) error {
	req := new(models.RegisterPaymentRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}
	req.Number = c.Param("number")

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	updated, err := h.invoiceService.RegisterPayment(c.Request().Context(), *req)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, updated.ToModelResponse())
}

// cancelInvoice API cancels a pending or overdue invoice
// @Summary Cancel invoice
// @Description Cancel a pending or overdue invoice
// @Tags Invoices
// @Accept  json
// @Produce  json
// @Param 	number path string true "invoice number"
// @Param 	payload body models.CancelInvoiceRequest true "A JSON object containing cancel invoice payload"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} models.InvoiceOut "Response indicates that the request succeeded and the resources has been fetched and transmitted in the message body"
// @Failure 404 {object} http.RestErrorResponseModel "Data not found. This can happen if the invoice does not exist"
// @Failure 409 {object} http.RestErrorResponseModel "Conflict error. This can happen if the invoice is already paid or cancelled"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while cancel invoice"
// @Router /v1/invoices/{number}/cancel [post]
func (h *invoiceHandler) cancelInvoice(c echo.Context) error {
	req := new(models.CancelInvoiceRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}
	req.Number = c.Param("number")

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	updated, err := h.invoiceService.Cancel(c.Request().Context(), *req)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, updated.ToModelResponse())
}

// downloadInvoices API streams the filtered invoices as a CSV attachment
// @Summary 	Download invoices
// @Description Download filtered invoices as a CSV file
// @Tags 		Invoices
// @Accept		json
// @Produce		text/csv
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param   params query models.DoGetListInvoiceRequest true "Download invoices query parameters"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if there is an error while download invoices"
// @Failure 413 {object} http.RestErrorResponseModel "Payload too large. This can happen if the filter matches more rows than the download threshold"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while download invoices"
// @Router /v1/invoices/download [get]
func (h *invoiceHandler) downloadInvoices(c echo.Context) error {
	var queryFilter models.DoGetListInvoiceRequest
	if err := c.Bind(&queryFilter); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	opts, err := queryFilter.ToFilterOpts()
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	fileName := fmt.Sprintf("invoices-%s.csv", time.Now().Format(common.DateFormatYYYYMMDD))
	http.CSVSuccessResponse(c, fileName)

	err = h.invoiceService.DownloadInvoiceFileCSV(c.Request().Context(), models.DownloadInvoiceRequest{
		Options: *opts,
		Writer:  c.Response(),
	})
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return nil
}
