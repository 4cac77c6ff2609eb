package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"ourstory/internal/application"
	"ourstory/pkg/response"
)

// serviceError maps the application error taxonomy onto HTTP statuses.
// Unknown errors are logged with the request id and surfaced as a
// generic 500; storage error text never reaches the client.
func serviceError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, application.ErrProfileNotFound):
		response.Error(c, http.StatusNotFound, "Profile not found.")
	case errors.Is(err, application.ErrEntryNotFound):
		response.Error(c, http.StatusNotFound, "Entry not found.")
	case errors.Is(err, application.ErrInvalidPassword):
		response.Error(c, http.StatusUnauthorized, "Incorrect password.")
	case errors.Is(err, application.ErrProfileExists):
		response.Error(c, http.StatusConflict, "Profile name already exists.")
	case errors.Is(err, application.ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, "Invalid input.")
	default:
		if logger != nil {
			logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("request failed")
		}
		response.Error(c, http.StatusInternalServerError, "A server error occurred.")
	}
}
