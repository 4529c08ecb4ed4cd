package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// FieldError is the machine-readable shape for one failed validation rule.
// The same shape is used for missing or unknown API keys.
type FieldError struct {
	Value    string `json:"value"`
	Msg      string `json:"msg"`
	Param    string `json:"param"`
	Location string `json:"location"`
}

const (
	locationBody  = "body"
	locationQuery = "query"
)

// Validation rule messages.
const (
	msgFieldEmpty   = "Field cannot be empty"
	msgFieldInteger = "Field must be integer"
	msgFieldDecimal = "Field has to be a valid decimal"
	msgFieldURL     = "Must be an URL"
	msgFieldDate    = "Field must be of date type"
	msgInvalidKey   = "Invalid API key"
)

func writeFieldErrors(c echo.Context, fieldErrors []FieldError) error {
	return c.JSON(http.StatusBadRequest, map[string]interface{}{
		"errors": fieldErrors,
	})
}
