package http

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

func CSVSuccessResponse(c echo.Context, fileName string) {
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment;filename=%s", fileName))
}
