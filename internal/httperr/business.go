package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// BusinessError é uma regra do domínio que a requisição não cumpre.
// Status e Message dizem como a borda HTTP responde; Error devolve o código.
type BusinessError struct {
	Code    string
	Status  int
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

// ErrBusiness cria um erro 422 com a mensagem genérica.
func ErrBusiness(code string) error {
	return BusinessError{Code: code, Status: http.StatusUnprocessableEntity}
}

// NewBusiness cria um erro de negócio com status e mensagem próprios.
func NewBusiness(code string, status int, message string) error {
	return BusinessError{Code: code, Status: status, Message: message}
}

func IsBusiness(err error, code string) bool {
	be, ok := AsBusiness(err)
	return ok && be.Code == code
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return BusinessError{}, false
}

// Business responde com o status e a mensagem do erro.
func Business(c *gin.Context, be BusinessError) {
	status := be.Status
	if status == 0 {
		status = http.StatusUnprocessableEntity
	}
	msg := be.Message
	if msg == "" {
		msg = "Operación no permitida."
	}
	Write(c, status, be.Code, msg)
}
