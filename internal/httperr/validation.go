package httperr

import (
	"errors"
	"fmt"
)

// ValidationError marca uma entrada malformada recebida na borda
// (data, hora, nome do paciente, email).
type ValidationError struct {
	Field string
	Code  string
	Value string
}

func (e ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Code)
	}
	return fmt.Sprintf("%s: %s (%q)", e.Field, e.Code, e.Value)
}

func ErrValidation(field, code, value string) error {
	return ValidationError{Field: field, Code: code, Value: value}
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// AsValidation devolve o ValidationError contido em err, se houver.
func AsValidation(err error) (ValidationError, bool) {
	var ve ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return ValidationError{}, false
}
