package validators

import (
	"testing"

	"github.com/BruksfildServices01/turnera/internal/httperr"
)

func TestValidateEmail_Syntax(t *testing.T) {
	valid := []string{"ana@example.com", " luis.perez@clinica.com.ar "}
	for _, e := range valid {
		if err := ValidateEmail(e, false); err != nil {
			t.Errorf("ValidateEmail(%q): unexpected error %v", e, err)
		}
	}

	invalid := []string{"", "ana", "ana@", "@example.com", "Ana <ana@example.com>", "ana@localhost"}
	for _, e := range invalid {
		err := ValidateEmail(e, false)
		ve, ok := httperr.AsValidation(err)
		if !ok {
			t.Errorf("ValidateEmail(%q): expected validation error, got %v", e, err)
			continue
		}
		if ve.Field != "email" || ve.Code != "invalid_email" {
			t.Errorf("ValidateEmail(%q): unexpected %+v", e, ve)
		}
	}
}

func TestIsEmailDomainValid_RejectsMissingDomain(t *testing.T) {
	if IsEmailDomainValid("ana") || IsEmailDomainValid("ana@") {
		t.Error("expected false without domain")
	}
}
