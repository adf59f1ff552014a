package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelio/frontdesk/internal/dto"
)

func newErrorContext(e *echo.Echo) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/rooms/7", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestErrorHandlerWritesErrorResponse(t *testing.T) {
	e := echo.New()
	c, rec := newErrorContext(e)

	h := NewErrorHandler(nil)
	h(echo.NewHTTPError(http.StatusConflict, "room is occupied"), c)

	assert.Equal(t, http.StatusConflict, rec.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "room is occupied", body.Message)
}

func TestErrorHandlerLogsServerFaults(t *testing.T) {
	log := logrus.New()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})

	e := echo.New()
	c, rec := newErrorContext(e)

	h := NewErrorHandler(log)
	h(errors.New("pq: connection refused"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body.Message)
	assert.Contains(t, buf.String(), "pq: connection refused")
	assert.Contains(t, buf.String(), "/rooms/7")
}

func TestErrorHandlerClientErrorsNotLogged(t *testing.T) {
	log := logrus.New()
	var buf bytes.Buffer
	log.SetOutput(&buf)

	e := echo.New()
	c, _ := newErrorContext(e)

	h := NewErrorHandler(log)
	h(echo.NewHTTPError(http.StatusNotFound, "booking not found"), c)

	assert.Empty(t, buf.String())
}

func TestErrorHandlerSkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	c, rec := newErrorContext(e)
	require.NoError(t, c.NoContent(http.StatusNoContent))

	h := NewErrorHandler(nil)
	h(errors.New("late failure"), c)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
