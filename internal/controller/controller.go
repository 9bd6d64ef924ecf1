package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Percula/internal/apperr"
	"github.com/lshigami/Percula/internal/dto"
)

// respondError maps a service error to its HTTP status and JSON body. The
// wrapped cause goes into details; the taxonomy message is the error field.
func respondError(ctx *gin.Context, err error) {
	body := dto.ErrorResponse{Error: err.Error()}
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		body.Error = appErr.Msg
		body.Details = apperr.Detail(err)
	}
	ctx.JSON(apperr.HTTPStatus(err), body)
}
