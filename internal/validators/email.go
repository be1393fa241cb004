package validators

import (
	"net"
	"net/mail"
	"strings"

	"github.com/BruksfildServices01/turnera/internal/httperr"
)

// ValidateEmail confere a sintaxe do endereço e, se checkDomain, que o
// domínio resolve (MX ou A).
func ValidateEmail(email string, checkDomain bool) error {
	email = strings.TrimSpace(email)

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		return httperr.ErrValidation("email", "invalid_email", email)
	}

	if checkDomain && !IsEmailDomainValid(email) {
		return httperr.ErrValidation("email", "invalid_email_domain", email)
	}
	return nil
}

func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
