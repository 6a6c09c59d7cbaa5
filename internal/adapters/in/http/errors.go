package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"medidrone/internal/core/domain/model/medication"
	"medidrone/internal/core/domain/services"
	"medidrone/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every error reply. Detail is a string, or a list of
// FieldError for validation failures.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// NewErrorHandler maps use case errors to status codes:
//
//	errs.ObjectNotFoundError                    404
//	validation errors                           422
//	BatteryTooLowError, OverCapacityError       400
//	UnsupportedMediaError, FileTooLargeError    406
//	*echo.HTTPError                             its own code
//	anything else                               500, logged, generic body
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http")

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := classify(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err)
		}

		var sendErr error
		if c.Request().Method == http.MethodHead {
			sendErr = c.NoContent(status)
		} else {
			sendErr = c.JSON(status, body)
		}
		if sendErr != nil {
			logger.ErrorContext(c.Request().Context(), "failed to send error response", "error", sendErr)
		}
	}
}

func classify(err error) (int, ErrorResponse) {
	var (
		notFound         *errs.ObjectNotFoundError
		validationErrors validator.ValidationErrors
		httpErr          *echo.HTTPError
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound, ErrorResponse{Detail: notFoundDetail(notFound)}
	case errors.As(err, &validationErrors):
		return http.StatusUnprocessableEntity, ErrorResponse{Detail: fromValidator(validationErrors)}
	case errs.IsValidationError(err):
		return http.StatusUnprocessableEntity, ErrorResponse{Detail: fromDomain(err)}
	case errors.Is(err, services.ErrBatteryTooLow), errors.Is(err, services.ErrOverCapacity):
		return http.StatusBadRequest, ErrorResponse{Detail: err.Error()}
	case errors.Is(err, medication.ErrUnsupportedMedia), errors.Is(err, medication.ErrFileTooLarge):
		return http.StatusNotAcceptable, ErrorResponse{Detail: err.Error()}
	case errors.As(err, &httpErr):
		return httpErr.Code, ErrorResponse{Detail: fmt.Sprint(httpErr.Message)}
	default:
		return http.StatusInternalServerError, ErrorResponse{Detail: http.StatusText(http.StatusInternalServerError)}
	}
}

func notFoundDetail(e *errs.ObjectNotFoundError) string {
	name := e.ParamName
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	return fmt.Sprintf("%s with id %v not found", name, e.ID)
}

func fromValidator(validationErrors validator.ValidationErrors) []FieldError {
	fields := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: validationMessage(fe),
		})
	}
	return fields
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "medname":
		return `must match ^[\w_-]+$`
	case "medcode":
		return "must match ^[A-Z_0-9]+$"
	default:
		return fe.Error()
	}
}

// fromDomain flattens errors.Join trees of errs validation errors into field entries.
func fromDomain(err error) []FieldError {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		fields := make([]FieldError, 0)
		for _, inner := range joined.Unwrap() {
			fields = append(fields, fromDomain(inner)...)
		}
		return fields
	}

	var (
		invalid    *errs.ValueIsInvalidError
		outOfRange *errs.ValueIsOutOfRangeError
		required   *errs.ValueIsRequiredError
	)
	switch {
	case errors.As(err, &outOfRange):
		return []FieldError{{Field: outOfRange.ParamName, Tag: "range", Message: err.Error()}}
	case errors.As(err, &required):
		return []FieldError{{Field: required.ParamName, Tag: "required", Message: err.Error()}}
	case errors.As(err, &invalid):
		return []FieldError{{Field: invalid.ParamName, Tag: "format", Message: err.Error()}}
	case err == nil:
		return nil
	default:
		return []FieldError{{Tag: "invalid", Message: err.Error()}}
	}
}
