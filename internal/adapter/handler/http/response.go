package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swark/arkpay/internal/core/domain"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrBadRequest: http.StatusBadRequest,

	domain.ErrExchangeRate:        http.StatusBadGateway,
	domain.ErrOrderNotProvisioned: http.StatusUnprocessableEntity,
	domain.ErrNotOurPayment:       http.StatusNotFound,
}

// handleValidationError sends an error response for some specific request validation error
func handleValidationError(ctx *gin.Context, err error) {
	ctx.Status(http.StatusBadRequest)
}

func handleError(ctx *gin.Context, err error) {
	ctx.Status(statusFromError(err))
}

// statusFromError matches wrapped errors too; service errors carry
// per-order context around the domain sentinels.
func statusFromError(err error) int {
	for target, code := range errorStatusMap {
		if errors.Is(err, target) {
			return code
		}
	}
	return http.StatusInternalServerError
}

// handleSuccessWithStatus sends a success response with the specified status code and optional data
func handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func handleSuccess(ctx *gin.Context, data any) {
	handleSuccessWithStatus(ctx, data, http.StatusOK)
}
