package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "inventory-service/pkg/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func runErrorResponse(t *testing.T, err error) (int, ErrorBody) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ErrorResponse(c, err, zap.NewNop()))

	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestErrorResponse_StatusMapping(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"validation", apperrors.NewValidationError("name is required"), http.StatusBadRequest, "name is required"},
		{"wrapped validation", fmt.Errorf("create: %w", apperrors.NewValidationError("bad")), http.StatusBadRequest, "bad"},
		{"not found", apperrors.NewNotFoundError("Device not found"), http.StatusNotFound, "Device not found"},
		{"http error", apperrors.NewHttpError(http.StatusConflict, "conflict", errors.New("cause"), nil), http.StatusConflict, "conflict"},
		{"echo error", echo.ErrNotFound, http.StatusNotFound, "Not Found"},
		{"unclassified", errors.New("disk full"), http.StatusInternalServerError, "Internal Server Error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := runErrorResponse(t, tc.err)
			assert.Equal(t, tc.code, code)
			assert.Equal(t, tc.message, body.Error)
		})
	}
}

func TestNotFoundErrorMatchesSentinel(t *testing.T) {
	assert.ErrorIs(t, apperrors.NewNotFoundError("x"), apperrors.ErrNotFound)
	assert.ErrorIs(t, apperrors.ErrSnapshotNotFound, apperrors.ErrNotFound)
	assert.ErrorIs(t, apperrors.NewValidationError("x"), apperrors.ErrBadRequest)
}
