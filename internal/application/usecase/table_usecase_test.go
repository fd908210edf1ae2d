package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

type mockQR struct{ mock.Mock }

func (m *mockQR) PNG(content string, size int) ([]byte, error) {
	args := m.Called(content, size)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

func newTableUC(f *fixture, qr *mockQR) *TableUseCase {
	repos := f.store.Repos()
	return NewTableUseCase(repos.Tables, repos.Users, f.store.Stats(), qr, "https://menu.test/m", f.clock)
}

func TestTableUseCase_Create(t *testing.T) {
	f := newFixture(t)
	uc := newTableUC(f, nil)
	ctx := context.Background()
	mesero := f.seedUser(t, "m@fonda.co", entity.RoleMesero)
	chef := f.seedUser(t, "c@fonda.co", entity.RoleCocinero)

	mesa, err := uc.Create(ctx, f.rid, dto.CreateTableRequest{Numero: 1, Capacidad: 4, MeseroID: &mesero.ID})
	require.NoError(t, err)
	assert.Equal(t, entity.TableDisponible, mesa.Estado)
	assert.Equal(t, entity.LocationInterior, mesa.Ubicacion)
	require.NotNil(t, mesa.MeseroID)

	_, err = uc.Create(ctx, f.rid, dto.CreateTableRequest{Numero: 1, Capacidad: 2})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, f.rid, dto.CreateTableRequest{Numero: 2, Capacidad: 21})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, f.rid, dto.CreateTableRequest{Numero: 2, Capacidad: 2, MeseroID: &chef.ID})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "meseroId", ve.Fields[0].Path)
}

func TestTableUseCase_ChangeStatus(t *testing.T) {
	f := newFixture(t)
	uc := newTableUC(f, nil)
	ctx := context.Background()
	mesa, err := uc.Create(ctx, f.rid, dto.CreateTableRequest{Numero: 3, Capacidad: 4})
	require.NoError(t, err)

	out, err := uc.ChangeStatus(ctx, f.rid, mesa.ID, dto.ChangeStatusRequest{Estado: entity.TableOcupada})
	require.NoError(t, err)
	assert.Equal(t, entity.TableOcupada, out.Estado)
	assert.Equal(t, mesa.Version+1, out.Version)

	_, err = uc.ChangeStatus(ctx, f.rid, mesa.ID, dto.ChangeStatusRequest{Estado: entity.TableDisponible})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = uc.ChangeStatus(ctx, f.rid, mesa.ID, dto.ChangeStatusRequest{Estado: "rota"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.ErrorIs(t, uc.Delete(ctx, f.rid, mesa.ID), domain.ErrConflict, "una mesa ocupada no se elimina")
}

func TestTableUseCase_ChangeStatusConcurrente(t *testing.T) {
	f := newFixture(t)
	uc := newTableUC(f, nil)
	ctx := context.Background()
	mesa, err := uc.Create(ctx, f.rid, dto.CreateTableRequest{Numero: 4, Capacidad: 2})
	require.NoError(t, err)

	// Ambas peticiones leen la misma versión antes de escribir.
	repo := f.store.Repos().Tables
	a, err := repo.GetByID(ctx, f.rid, mesa.ID)
	require.NoError(t, err)
	b, err := repo.GetByID(ctx, f.rid, mesa.ID)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, tbl := range []*entity.Table{a, b} {
		wg.Add(1)
		go func(i int, tbl *entity.Table, estado string) {
			defer wg.Done()
			errs[i] = repo.UpdateStatus(ctx, tbl, estado)
		}(i, tbl, []string{entity.TableOcupada, entity.TableReservada}[i])
	}
	wg.Wait()

	stale := 0
	for _, err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, domain.ErrStaleVersion)
			stale++
		}
	}
	assert.Equal(t, 1, stale)
}

func TestTableUseCase_AssignWaiterYQR(t *testing.T) {
	f := newFixture(t)
	qr := &mockQR{}
	uc := newTableUC(f, qr)
	ctx := context.Background()
	mesero := f.seedUser(t, "m@fonda.co", entity.RoleMesero)
	mesa, err := uc.Create(ctx, f.rid, dto.CreateTableRequest{Numero: 7, Capacidad: 4, Ubicacion: entity.LocationTerraza})
	require.NoError(t, err)

	out, err := uc.AssignWaiter(ctx, f.rid, mesa.ID, dto.AssignWaiterRequest{MeseroID: &mesero.ID})
	require.NoError(t, err)
	require.NotNil(t, out.MeseroID)
	assert.Equal(t, mesero.ID, *out.MeseroID)

	vacio := ""
	out, err = uc.AssignWaiter(ctx, f.rid, mesa.ID, dto.AssignWaiterRequest{MeseroID: &vacio})
	require.NoError(t, err)
	assert.Nil(t, out.MeseroID)

	qr.On("PNG", mock.MatchedBy(func(s string) bool {
		return s == "https://menu.test/m?mesa=7&restaurante="+f.rid
	}), QRSize).Return([]byte{0x89, 'P', 'N', 'G'}, nil).Once()
	png, err := uc.QR(ctx, f.rid, mesa.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
	qr.AssertExpectations(t)
}

func TestTableUseCase_StatsYDelete(t *testing.T) {
	f := newFixture(t)
	uc := newTableUC(f, nil)
	ctx := context.Background()
	var ids []string
	for n := 1; n <= 4; n++ {
		m, err := uc.Create(ctx, f.rid, dto.CreateTableRequest{Numero: n, Capacidad: 2})
		require.NoError(t, err)
		ids = append(ids, m.ID)
	}
	_, err := uc.ChangeStatus(ctx, f.rid, ids[0], dto.ChangeStatusRequest{Estado: entity.TableOcupada})
	require.NoError(t, err)

	stats, err := uc.Stats(ctx, f.rid)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.InDelta(t, 25.0, stats.Ocupacion, 0.001)

	require.NoError(t, uc.Delete(ctx, f.rid, ids[1]))
	_, err = uc.GetByID(ctx, f.rid, ids[1])
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Create(ctx, f.rid, dto.CreateTableRequest{Numero: 2, Capacidad: 2})
	assert.NoError(t, err, "el número de una mesa eliminada queda libre")
}
