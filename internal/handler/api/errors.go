package api

import (
	"net/http"

	"hotel-block-service/internal/handler/httperr"
	"hotel-block-service/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUseCaseError maps error kinds onto statuses. Unclassified errors stay opaque.
func abortWithUseCaseError(c *gin.Context, err error, msg string) {
	switch {
	case errs.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, err.Error())
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", err.Error())
	case errs.Is(err, errs.ErrHasReservations):
		httperr.AbortWithError(c, http.StatusConflict, err, msg, err.Error())
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
