package adaptor

import (
	"errors"
	"net/http"

	"promoservice/internal/usecase"
	"promoservice/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps usecase sentinel errors to HTTP statuses.
// Anything unrecognized is a 500 with a generic message; the detail goes
// to the log, never to the client.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, op string) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		utils.ResponseBadRequest(w, err.Error(), nil)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		utils.ResponseUnauthorized(w, err.Error())
	case errors.Is(err, usecase.ErrNotFound):
		utils.ResponseNotFound(w, err.Error())
	case errors.Is(err, usecase.ErrDuplicate):
		utils.ResponseConflict(w, err.Error())
	case errors.Is(err, usecase.ErrSelfDelete):
		// a malformed request, not a privilege problem: the caller is
		// allowed to delete users, just not this one
		utils.ResponseBadRequest(w, err.Error(), nil)
	case errors.Is(err, usecase.ErrForbidden):
		utils.ResponseForbidden(w, err.Error())
	default:
		log.Error("Unhandled service error", zap.String("op", op), zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
