package collection

import (
	nethttp "net/http"

	"github.com/habitado/go-condo-billing/internal/common/http"
	"github.com/habitado/go-condo-billing/internal/models"
	"github.com/habitado/go-condo-billing/internal/services"

	"github.com/labstack/echo/v4"
)

type collectionHandler struct {
	collectionService services.CollectionService
}

// New collection handler will initialize the collections/ resources endpoint
func New(app *echo.Group, collectionService services.CollectionService) {
	handler := collectionHandler{collectionService: collectionService}

	collections := app.Group("/collections")
	collections.GET("/queue", handler.getQueue)
}

// getQueue API lists the prioritized collection queue with cursor pagination
// @Summary 	Get collection queue
// @Description Get the prioritized collection queue ordered by priority score
// @Tags 		Collections
// @Accept		json
// @Produce		json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param   params query models.DoGetListCollectionRequest true "Get collection queue query parameters"
// @Success 200 {object} http.RestPaginationResponseModel[[]models.CollectionCaseOut] "Response indicates that the request succeeded and the resources has been fetched and transmitted in the message body"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if there is an error while get collection queue"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while get collection queue"
// @Router /v1/collections/queue [get]
func (h *collectionHandler) getQueue(c echo.Context) error {
	var queryFilter models.DoGetListCollectionRequest
	if err := c.Bind(&queryFilter); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	opts, err := queryFilter.ToFilterOpts()
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	cases, total, err := h.collectionService.GetQueue(c.Request().Context(), *opts)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponseCursorPagination[models.CollectionCaseOut](c, cases, opts.Limit, total)
}
