package rules

import (
	"math"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain"
)

// ConflictWindow separación mínima entre dos reservaciones activas de la misma mesa.
const ConflictWindow = 2 * time.Hour

const (
	dateLayout = "2006-01-02"
	hourLayout = "15:04"
)

// ReservationsConflict informa si dos horarios están a menos de 2 horas entre sí.
func ReservationsConflict(a, b time.Time) bool {
	return math.Abs(a.Sub(b).Hours()) < ConflictWindow.Hours()
}

// ParseReservationTime combina fecha (YYYY-MM-DD) y hora (HH:MM) en un instante de loc.
func ParseReservationTime(fecha, hora string, loc *time.Location) (time.Time, error) {
	var v domain.Violations
	d, errD := time.ParseInLocation(dateLayout, fecha, loc)
	v.Check(errD == nil, "fecha", "formato esperado YYYY-MM-DD")
	h, errH := time.Parse(hourLayout, hora)
	v.Check(errH == nil, "hora", "formato esperado HH:MM")
	if err := v.Err(); err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), h.Hour(), h.Minute(), 0, 0, loc), nil
}

// ValidateNotPast rechaza reservaciones en el pasado.
func ValidateNotPast(at, now time.Time) error {
	if at.Before(now) {
		return domain.NewValidationError("fecha", "la reservación no puede estar en el pasado")
	}
	return nil
}

// FormatDate fecha YYYY-MM-DD de t.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// Period convierte fechas YYYY-MM-DD (inclusive) en el rango semiabierto [desde 00:00, hasta+1 00:00) de loc.
// Sin fechas el período es el día de now; con solo desde, ese día.
func Period(desde, hasta string, now time.Time, loc *time.Location) (time.Time, time.Time, error) {
	today := DayStart(now, loc)
	from, to := today, today
	var v domain.Violations
	if desde != "" {
		d, err := time.ParseInLocation(dateLayout, desde, loc)
		v.Check(err == nil, "desde", "formato esperado YYYY-MM-DD")
		from, to = d, d
	}
	if hasta != "" {
		h, err := time.ParseInLocation(dateLayout, hasta, loc)
		v.Check(err == nil, "hasta", "formato esperado YYYY-MM-DD")
		to = h
	}
	if err := v.Err(); err != nil {
		return time.Time{}, time.Time{}, err
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, domain.NewValidationError("hasta", "debe ser igual o posterior a desde")
	}
	return from, to.AddDate(0, 0, 1), nil
}
