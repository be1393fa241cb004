package appointment

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/turnera/internal/domain/slot"
	"github.com/BruksfildServices01/turnera/internal/httperr"
)

var timePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2})(?:\.\d+)?)?$`)

// NormalizeTime converte uma hora armazenada para "HH:MM". Aceita espaços nas
// pontas, hora com um dígito e segundos (inclusive fracionários), que são
// descartados. Qualquer outra coisa é ValidationError; não há hora padrão.
func NormalizeTime(raw string) (string, error) {
	m := timePattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return "", httperr.ErrValidation("time", "invalid_time", raw)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return "", httperr.ErrValidation("time", "invalid_time", raw)
	}
	if m[3] != "" {
		if sec, _ := strconv.Atoi(m[3]); sec > 59 {
			return "", httperr.ErrValidation("time", "invalid_time", raw)
		}
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// NormalizeDate converte uma data armazenada para "YYYY-MM-DD".
func NormalizeDate(raw string) (string, error) {
	d, err := slot.ParseDate(raw)
	if err != nil {
		return "", err
	}
	return d.Format(slot.DateLayout), nil
}
