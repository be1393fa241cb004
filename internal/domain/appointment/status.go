package appointment

// ===============================
// Slot Status
// ===============================

type Status string

const (
	StatusFree     Status = "free"
	StatusOccupied Status = "occupied"
)

// Label é o texto exibido nas grades e no mapa de calor.
func (s Status) Label() string {
	if s == StatusOccupied {
		return "Ocupado"
	}
	return "Libre"
}
