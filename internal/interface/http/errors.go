package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/akmalhzn/portfolio-api/pkg/apperr"
	"github.com/akmalhzn/portfolio-api/pkg/response"
)

func statusOf(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindUnauthenticated:
		return http.StatusUnauthorized
	case apperr.KindUnauthorized:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// fail maps an operation error to an HTTP response. Store failures log the
// cause and surface only a generic message.
func fail(c *gin.Context, logger *logrus.Logger, err error, op string) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		if logger != nil {
			logger.WithError(err).WithField("op", op).Error("operation failed")
		}
		response.Error[any](c, status, "server error", nil)
		return
	}
	response.Error[any](c, status, apperr.MessageOf(err), nil)
}
