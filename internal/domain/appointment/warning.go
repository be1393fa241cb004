package appointment

// WarningKind classifica inconsistências encontradas ao montar a grade.
type WarningKind string

const (
	WarningDuplicateSlot WarningKind = "duplicate_slot"
	WarningMalformedDate WarningKind = "malformed_date"
	WarningMalformedTime WarningKind = "malformed_time"
	WarningCoercedTime   WarningKind = "coerced_time"
)

// Warning é não fatal: é coletado e devolvido junto ao resultado.
type Warning struct {
	Kind           WarningKind `json:"kind"`
	Date           string      `json:"date,omitempty"`
	Time           string      `json:"time,omitempty"`
	Raw            string      `json:"raw,omitempty"`
	AppointmentIDs []uint      `json:"appointment_ids"`
}

type Collector interface {
	Warn(w Warning)
}

// Warnings é o coletor padrão.
type Warnings []Warning

func (ws *Warnings) Warn(w Warning) {
	*ws = append(*ws, w)
}

func (ws Warnings) Count(kind WarningKind) int {
	n := 0
	for _, w := range ws {
		if w.Kind == kind {
			n++
		}
	}
	return n
}

type discard struct{}

func (discard) Warn(Warning) {}
