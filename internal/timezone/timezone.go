package timezone

import (
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "America/Argentina/Buenos_Aires"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Today é a data civil de agora no fuso da clínica, como meia-noite UTC
// (o mesmo formato das datas do template).
func Today(tz string) time.Time {
	return DateOf(NowIn(tz))
}

func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
