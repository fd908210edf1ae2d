package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/apptest"
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

const rid = "rest-1"

type env struct {
	uc    *ReservationUseCase
	store *apptest.Store
	clock *apptest.Clock
	mesa  *entity.Table
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := apptest.NewStore()
	repos := store.Repos()
	// 10:00 COT del 10 de mayo
	clock := apptest.NewClock(time.Date(2026, 5, 10, 15, 0, 0, 0, time.UTC))
	mesa := &entity.Table{ID: uuid.New().String(), RestauranteID: rid, Numero: 3, Capacidad: 4, Estado: entity.TableDisponible, Active: true}
	require.NoError(t, repos.Tables.Create(context.Background(), mesa))
	return &env{
		uc:    NewReservationUseCase(store, repos.Reservations, store.Stats(), clock),
		store: store,
		clock: clock,
		mesa:  mesa,
	}
}

func (e *env) request(hora string) dto.CreateReservationRequest {
	mesaID := e.mesa.ID
	return dto.CreateReservationRequest{
		ClienteNombre:   "Ana Gómez",
		ClienteTelefono: "3001234567",
		ClienteEmail:    " Ana@Mail.COM ",
		Fecha:           "2026-05-10",
		Hora:            hora,
		Personas:        4,
		MesaID:          &mesaID,
	}
}

func (e *env) tableState(t *testing.T) string {
	t.Helper()
	tbl, err := e.store.Repos().Tables.GetByID(context.Background(), rid, e.mesa.ID)
	require.NoError(t, err)
	return tbl.Estado
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve), "se esperaba ValidationError, got %v", err)
	out := map[string]string{}
	for _, f := range ve.Fields {
		out[f.Path] = f.Message
	}
	return out
}

func TestCreate_Defaults(t *testing.T) {
	e := newEnv(t)
	out, err := e.uc.Create(context.Background(), rid, e.request("20:00"))
	require.NoError(t, err)

	assert.Equal(t, entity.ReservationPendiente, out.Estado)
	assert.Equal(t, entity.OccasionNinguna, out.Ocasion)
	assert.Equal(t, "ana@mail.com", out.ClienteEmail)
	assert.Equal(t, "2026-05-10", out.Fecha)
	assert.Equal(t, "20:00", out.Hora)
	assert.True(t, out.FechaHora.Equal(time.Date(2026, 5, 11, 1, 0, 0, 0, time.UTC)))
	assert.True(t, out.Activo)
}

func TestCreate_Validation(t *testing.T) {
	e := newEnv(t)
	in := e.request("20:00")
	in.ClienteNombre = ""
	in.ClienteEmail = "no-es-email"
	in.Personas = 31
	in.Ocasion = "boda"
	_, err := e.uc.Create(context.Background(), rid, in)
	fields := fieldErrors(t, err)
	assert.Contains(t, fields, "clienteNombre")
	assert.Contains(t, fields, "clienteEmail")
	assert.Contains(t, fields, "personas")
	assert.Contains(t, fields, "ocasion")

	in = e.request("25:99")
	_, err = e.uc.Create(context.Background(), rid, in)
	assert.Contains(t, fieldErrors(t, err), "hora")
}

func TestCreate_PastRejected(t *testing.T) {
	e := newEnv(t)
	_, err := e.uc.Create(context.Background(), rid, e.request("09:59"))
	assert.Contains(t, fieldErrors(t, err), "fecha")
}

func TestCreate_CapacityExceeded(t *testing.T) {
	e := newEnv(t)
	in := e.request("20:00")
	in.Personas = 5
	_, err := e.uc.Create(context.Background(), rid, in)
	assert.Contains(t, fieldErrors(t, err), "personas")
}

func TestCreate_UnknownTable(t *testing.T) {
	e := newEnv(t)
	in := e.request("20:00")
	missing := uuid.New().String()
	in.MesaID = &missing
	_, err := e.uc.Create(context.Background(), rid, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_ConflictWindow(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, err := e.uc.Create(ctx, rid, e.request("20:00"))
	require.NoError(t, err)

	_, err = e.uc.Create(ctx, rid, e.request("21:30"))
	assert.ErrorIs(t, err, domain.ErrConflict)

	// exactamente 2 horas después no choca
	_, err = e.uc.Create(ctx, rid, e.request("22:00"))
	assert.NoError(t, err)

	// sin mesa no hay chequeo de choques
	in := e.request("20:30")
	in.MesaID = nil
	_, err = e.uc.Create(ctx, rid, in)
	assert.NoError(t, err)
}

func TestCreate_CancelledDoesNotBlock(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	first, err := e.uc.Create(ctx, rid, e.request("20:00"))
	require.NoError(t, err)
	_, err = e.uc.Cancel(ctx, rid, first.ID)
	require.NoError(t, err)

	_, err = e.uc.Create(ctx, rid, e.request("20:30"))
	assert.NoError(t, err)
}

func TestUpdate(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	r, err := e.uc.Create(ctx, rid, e.request("20:00"))
	require.NoError(t, err)

	hora, personas := "21:15", 2
	out, err := e.uc.Update(ctx, rid, r.ID, dto.UpdateReservationRequest{Hora: &hora, Personas: &personas})
	require.NoError(t, err)
	assert.Equal(t, "21:15", out.Hora)
	assert.Equal(t, 2, out.Personas)
	assert.Equal(t, r.Version+1, out.Version)

	// su propio horario anterior no cuenta como choque
	hora = "20:00"
	_, err = e.uc.Update(ctx, rid, r.ID, dto.UpdateReservationRequest{Hora: &hora})
	assert.NoError(t, err)

	personas = 9
	_, err = e.uc.Update(ctx, rid, r.ID, dto.UpdateReservationRequest{Personas: &personas})
	assert.Contains(t, fieldErrors(t, err), "personas")
}

func TestUpdate_NotEditableAfterSeated(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	r, err := e.uc.Create(ctx, rid, e.request("20:00"))
	require.NoError(t, err)
	_, err = e.uc.ChangeStatus(ctx, rid, r.ID, entity.ReservationConfirmada)
	require.NoError(t, err)
	_, err = e.uc.ChangeStatus(ctx, rid, r.ID, entity.ReservationSentada)
	require.NoError(t, err)

	notas := "ventana"
	_, err = e.uc.Update(ctx, rid, r.ID, dto.UpdateReservationRequest{Notas: &notas})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAssignTable(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	in := e.request("20:00")
	in.MesaID = nil
	r, err := e.uc.Create(ctx, rid, in)
	require.NoError(t, err)
	assert.Nil(t, r.MesaID)

	out, err := e.uc.AssignTable(ctx, rid, r.ID, dto.AssignTableRequest{MesaID: &e.mesa.ID})
	require.NoError(t, err)
	require.NotNil(t, out.MesaID)
	assert.Equal(t, e.mesa.ID, *out.MesaID)

	// otra reservación en la misma franja ya no puede tomar la mesa
	other, err := e.uc.Create(ctx, rid, in)
	require.NoError(t, err)
	_, err = e.uc.AssignTable(ctx, rid, other.ID, dto.AssignTableRequest{MesaID: &e.mesa.ID})
	assert.ErrorIs(t, err, domain.ErrConflict)

	empty := ""
	out, err = e.uc.AssignTable(ctx, rid, r.ID, dto.AssignTableRequest{MesaID: &empty})
	require.NoError(t, err)
	assert.Nil(t, out.MesaID)
}

func TestChangeStatus_TableEffects(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	r, err := e.uc.Create(ctx, rid, e.request("20:00"))
	require.NoError(t, err)

	_, err = e.uc.ChangeStatus(ctx, rid, r.ID, entity.ReservationSentada)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = e.uc.ChangeStatus(ctx, rid, r.ID, entity.ReservationConfirmada)
	require.NoError(t, err)
	assert.Equal(t, entity.TableDisponible, e.tableState(t))

	_, err = e.uc.ChangeStatus(ctx, rid, r.ID, entity.ReservationSentada)
	require.NoError(t, err)
	assert.Equal(t, entity.TableOcupada, e.tableState(t))

	out, err := e.uc.ChangeStatus(ctx, rid, r.ID, entity.ReservationCompletada)
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationCompletada, out.Estado)
	assert.Equal(t, entity.TableLimpieza, e.tableState(t))

	_, err = e.uc.ChangeStatus(ctx, rid, r.ID, entity.ReservationCancelada)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = e.uc.ChangeStatus(ctx, rid, r.ID, "perdida")
	assert.Contains(t, fieldErrors(t, err), "estado")
}

func TestCancel_SoftDelete(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	r, err := e.uc.Create(ctx, rid, e.request("20:00"))
	require.NoError(t, err)

	out, err := e.uc.Cancel(ctx, rid, r.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationCancelada, out.Estado)
	assert.False(t, out.Activo)

	_, err = e.uc.GetByID(ctx, rid, r.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, entity.TableDisponible, e.tableState(t))
}

func TestListTodayAndStats(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, err := e.uc.Create(ctx, rid, e.request("20:00"))
	require.NoError(t, err)
	in := e.request("13:00")
	in.MesaID = nil
	in.Personas = 2
	lunch, err := e.uc.Create(ctx, rid, in)
	require.NoError(t, err)
	in.Fecha = "2026-05-11"
	_, err = e.uc.Create(ctx, rid, in)
	require.NoError(t, err)
	_, err = e.uc.ChangeStatus(ctx, rid, lunch.ID, entity.ReservationConfirmada)
	require.NoError(t, err)

	today, err := e.uc.Today(ctx, rid)
	require.NoError(t, err)
	require.Len(t, today, 2)
	assert.Equal(t, "13:00", today[0].Hora)
	assert.Equal(t, "20:00", today[1].Hora)

	list, err := e.uc.List(ctx, rid, dto.ReservationListRequest{Estado: entity.ReservationConfirmada})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Page.Total)
	assert.Equal(t, lunch.ID, list.Items[0].ID)

	_, err = e.uc.List(ctx, rid, dto.ReservationListRequest{Fecha: "10/05/2026"})
	assert.Contains(t, fieldErrors(t, err), "fecha")

	stats, err := e.uc.Stats(ctx, rid, "2026-05-10", "2026-05-11")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 8, stats.TotalPersonas)

	stats, err = e.uc.Stats(ctx, rid, "", "")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 6, stats.TotalPersonas)
}
