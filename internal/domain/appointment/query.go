package appointment

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/turnera/internal/domain/slot"
)

// FilterByDate devolve os turnos do dia, por hora crescente. A ordenação é
// estável e as linhas ilegíveis ficam de fora.
func FilterByDate(appointments []Appointment, date time.Time) []Appointment {
	day := slot.Civil(date).Format(slot.DateLayout)

	out := make([]Appointment, 0)
	for _, ap := range appointments {
		norm, ok := ap.normalized()
		if !ok || norm.Date != day {
			continue
		}
		out = append(out, norm)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out
}

// FilterByPatient devolve os turnos com nome exatamente igual, por (data, hora)
// crescente e estável. Linhas que não normalizam vão para o fim, na ordem de
// entrada.
func FilterByPatient(appointments []Appointment, name string) []Appointment {
	var matched []Appointment
	for _, ap := range appointments {
		if ap.PatientName == name {
			matched = append(matched, ap)
		}
	}
	return Chronological(matched)
}

// Chronological ordena todos os turnos por (data, hora), estável. Os legíveis
// saem normalizados; os ilegíveis vão para o fim como estão.
func Chronological(appointments []Appointment) []Appointment {
	type entry struct {
		ap Appointment
		ok bool
	}

	entries := make([]entry, 0, len(appointments))
	for _, ap := range appointments {
		norm, ok := ap.normalized()
		entries = append(entries, entry{ap: norm, ok: ok})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.ok != b.ok {
			return a.ok
		}
		if !a.ok {
			return false
		}
		return a.ap.key() < b.ap.key()
	})

	out := make([]Appointment, len(entries))
	for i, e := range entries {
		out[i] = e.ap
	}
	return out
}

// FindByID é a busca pura usada pelo editor para o turno selecionado.
func FindByID(appointments []Appointment, id uint) (Appointment, bool) {
	for _, ap := range appointments {
		if ap.ID == id {
			return ap, true
		}
	}
	return Appointment{}, false
}

// WouldConflict informa se algum turno já ocupa exatamente (date, hhmm).
// É só um aviso: a gravação nunca é bloqueada. ignore exclui ids (o próprio
// turno ao editar).
func WouldConflict(appointments []Appointment, date time.Time, hhmm string, ignore ...uint) bool {
	t, err := NormalizeTime(hhmm)
	if err != nil {
		return false
	}
	want := slot.Key(slot.Civil(date), t)

	for _, ap := range appointments {
		if containsID(ignore, ap.ID) {
			continue
		}
		norm, ok := ap.normalized()
		if ok && norm.key() == want {
			return true
		}
	}
	return false
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
