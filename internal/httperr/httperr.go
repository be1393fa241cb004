package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// Invalid escreve um ValidationError como 400 indicando o campo rejeitado.
func Invalid(c *gin.Context, ve ValidationError, message string) {
	c.JSON(http.StatusBadRequest, HTTPError{
		Code:    ve.Code,
		Message: message,
		Field:   ve.Field,
	})
}
