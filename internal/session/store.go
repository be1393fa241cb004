package session

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/turnera/internal/httperr"
)

// Store guarda o turno selecionado por sessão de edição.
// Get devolve (0, false) quando nada está selecionado.
type Store interface {
	Get(ctx context.Context, sid string) (uint, bool, error)
	Set(ctx context.Context, sid string, id uint) error
	Clear(ctx context.Context, sid string) error
}

// ValidateID recusa ids de sessão vazios, longos demais ou com espaços nas
// pontas. O id validado é usado como chave tal como veio.
func ValidateID(sid string) error {
	if sid == "" || len(sid) > 128 || strings.TrimSpace(sid) != sid {
		return httperr.ErrValidation("session_id", "invalid_session_id", sid)
	}
	return nil
}
