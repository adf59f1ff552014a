package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/hotelio/frontdesk/internal/dto"
)

// NewErrorHandler builds the echo error handler. Handlers translate service
// sentinels to *echo.HTTPError themselves; anything else reaching here is a
// server fault and gets logged before the generic response goes out.
func NewErrorHandler(log *logrus.Logger) echo.HTTPErrorHandler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := "internal server error"
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if s, ok := he.Message.(string); ok {
				msg = s
			}
		}

		if code >= http.StatusInternalServerError {
			log.WithError(err).WithFields(logrus.Fields{
				"method": c.Request().Method,
				"uri":    c.Request().RequestURI,
			}).Error("request failed")
		}

		_ = c.JSON(code, dto.ErrorResponse{Message: msg})
	}
}
