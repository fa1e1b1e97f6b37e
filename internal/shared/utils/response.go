package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"walletpay/internal/shared/errors"
)

// MessageResponse is the acknowledgment body sent back to WalletPay.
type MessageResponse struct {
	Message string `json:"message"`
}

// DetailResponse is the rejection body. Only the public message is exposed.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// MessageJSON sends an acknowledgment with the given status code.
func MessageJSON(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageResponse{Message: message})
}

// DetailJSON aborts the request with a rejection body.
func DetailJSON(c *gin.Context, statusCode int, detail string) {
	c.AbortWithStatusJSON(statusCode, DetailResponse{Detail: detail})
}

// ErrorResponseWithError sends a rejection based on the error type. Errors that
// are not AppErrors never leak their text to the caller.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		DetailJSON(c, appErr.Code, appErr.Message)
		return
	}
	DetailJSON(c, http.StatusInternalServerError, "Internal server error")
}
