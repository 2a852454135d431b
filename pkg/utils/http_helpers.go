package utils

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "inventory-service/pkg/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

// ErrorResponse writes err as {"error": "..."} with the status its type maps to.
// Unclassified errors become 500 and are logged with their cause.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	code, message := classify(err)
	if code >= http.StatusInternalServerError {
		logger.Error("Unexpected Error",
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err),
		)
	}
	return c.JSON(code, ErrorBody{Error: message})
}

func classify(err error) (int, string) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Message
	}

	var notFoundErr *apperrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		return http.StatusNotFound, notFoundErr.Message
	}

	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		return httpErr.Code, httpErr.Message
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		return echoErr.Code, fmt.Sprint(echoErr.Message)
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// HTTPErrorHandler replaces echo's default handler so router-level failures
// (unknown route, missing static file, panics) share the same error body.
func HTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		if c.Request().Method == http.MethodHead {
			code, _ := classify(err)
			if respErr := c.NoContent(code); respErr != nil {
				logger.Error("failed to write error response", zap.Error(respErr))
			}
			return
		}
		if respErr := ErrorResponse(c, err, logger); respErr != nil {
			logger.Error("failed to write error response", zap.Error(respErr))
		}
	}
}
