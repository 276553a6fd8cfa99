package handlers

import (
	"transaction-insights/internal/errors"

	"github.com/labstack/echo/v4"
)

// TraceIDContextKey is where the request ID middleware leaves the trace id.
const TraceIDContextKey = "trace_id"

func getTraceID(c echo.Context) string {
	id, _ := c.Get(TraceIDContextKey).(string)
	return id
}

// SendError writes the standard error envelope for code, stamped with the
// request's trace id. Handlers use it instead of echo.NewHTTPError so the
// status always follows the code.
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	resp := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(resp.GetHTTPStatus(), resp)
}
