package httpserver

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// RequestError carries the structured rule failures for one request body.
type RequestError struct {
	Errors []FieldError
}

func (e *RequestError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Param+": "+fe.Msg)
	}
	return "validation error: " + strings.Join(parts, "; ")
}

type CustomValidator struct {
	validate *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("intstring", validateIntString)
	_ = v.RegisterValidation("decimalstring", validateDecimalString)
	_ = v.RegisterValidation("iso8601", validateISO8601)
	return &CustomValidator{validate: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validate.Struct(i); err != nil {
		return &RequestError{Errors: formatFieldErrors(err)}
	}
	return nil
}

func validateIntString(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	_, err := strconv.Atoi(strings.TrimSpace(fl.Field().String()))
	return err == nil
}

func validateDecimalString(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(fl.Field().String()), 64)
	return err == nil
}

// validateISO8601 accepts full RFC 3339 timestamps and bare dates.
func validateISO8601(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	value := strings.TrimSpace(fl.Field().String())
	if _, err := time.Parse(time.RFC3339, value); err == nil {
		return true
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

func formatFieldErrors(err error) []FieldError {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Msg: "Invalid request", Location: locationBody}}
	}

	fieldErrors := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		param := fe.Field()
		if param == "" {
			param = fe.StructField()
		}
		fieldErrors = append(fieldErrors, FieldError{
			Value:    fmt.Sprintf("%v", fe.Value()),
			Msg:      messageForTag(fe.Tag()),
			Param:    param,
			Location: locationBody,
		})
	}
	return fieldErrors
}

func messageForTag(tag string) string {
	switch tag {
	case "required":
		return msgFieldEmpty
	case "intstring":
		return msgFieldInteger
	case "decimalstring":
		return msgFieldDecimal
	case "url":
		return msgFieldURL
	case "iso8601":
		return msgFieldDate
	default:
		return "Invalid value"
	}
}
