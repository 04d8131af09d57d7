package handler

import (
	"net/http"

	"github.com/cloud-inquiry-balance-web/internal/domain/inquiry"
	"github.com/gin-gonic/gin"
)

// RespondWithAPIError sends the APIError envelope with the status its code maps to
func RespondWithAPIError(c *gin.Context, apiErr *inquiry.APIError) {
	c.JSON(apiErr.HTTPStatus(), apiErr)
}

// RespondWithError normalizes err and sends it as an APIError envelope
func RespondWithError(c *gin.Context, err error) {
	RespondWithAPIError(c, inquiry.AsAPIError(err))
}

// RespondBadRequest sends a 400 envelope with the given message
func RespondBadRequest(c *gin.Context, message string) {
	RespondWithAPIError(c, inquiry.NewValidationError(message))
}

// RespondOK sends a 200 OK response with data
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}
