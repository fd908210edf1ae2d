package rules

import (
	"testing"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationsConflict(t *testing.T) {
	base := time.Date(2025, 5, 1, 20, 0, 0, 0, time.UTC)
	assert.True(t, ReservationsConflict(base, base))
	assert.True(t, ReservationsConflict(base, base.Add(119*time.Minute)))
	assert.True(t, ReservationsConflict(base, base.Add(-90*time.Minute)))
	assert.False(t, ReservationsConflict(base, base.Add(2*time.Hour)), "2.0 horas exactas no es conflicto")
	assert.False(t, ReservationsConflict(base, base.Add(-3*time.Hour)))
}

func TestParseReservationTime(t *testing.T) {
	loc := time.UTC
	at, err := ParseReservationTime("2025-05-01", "19:30", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 5, 1, 19, 30, 0, 0, loc), at)

	_, err = ParseReservationTime("01/05/2025", "7pm", loc)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Fields, 2)
}

func TestValidateNotPast(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	assert.NoError(t, ValidateNotPast(now.Add(time.Minute), now))
	assert.ErrorIs(t, ValidateNotPast(now.Add(-time.Minute), now), domain.ErrInvalidInput)
}

func TestPeriod(t *testing.T) {
	loc := time.FixedZone("COT", -5*3600)
	now := time.Date(2026, 5, 10, 22, 0, 0, 0, loc)

	from, to, err := Period("", "", now, loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 5, 10, 0, 0, 0, 0, loc), from)
	assert.Equal(t, time.Date(2026, 5, 11, 0, 0, 0, 0, loc), to)

	from, to, err = Period("2026-05-01", "2026-05-03", now, loc)
	require.NoError(t, err)
	assert.Equal(t, 1, from.Day())
	assert.Equal(t, 4, to.Day())

	_, to, err = Period("2026-05-01", "", now, loc)
	require.NoError(t, err)
	assert.Equal(t, 2, to.Day())

	_, _, err = Period("2026-05-03", "2026-05-01", now, loc)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = Period("ayer", "", now, loc)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
