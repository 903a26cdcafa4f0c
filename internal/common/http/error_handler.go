package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/models"

	"github.com/labstack/echo/v4"
)

// HandleRepositoryError maps common repository errors to HTTP responses.
func HandleRepositoryError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, common.ErrDataNotFound) || errors.Is(err, common.ErrNoRows) {
		return RestErrorResponse(c, http.StatusNotFound, err)
	}

	return RestErrorResponse(c, http.StatusInternalServerError, err)
}

// HandleServiceError picks the HTTP status off a mapped service error. The
// error codes carry the status as their numeric suffix (CB-404, CB-409, ...);
// anything unmapped is a 500.
func HandleServiceError(c echo.Context, err error) error {
	var detail models.ErrorDetail
	if errors.As(err, &detail) {
		if status, convErr := strconv.Atoi(strings.TrimPrefix(detail.Code, "CB-")); convErr == nil && status >= 400 && status < 600 {
			return RestErrorResponse(c, status, err)
		}
	}

	return HandleRepositoryError(c, err)
}
