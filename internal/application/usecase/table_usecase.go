package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/ports"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/internal/domain/rules"
)

// QRSize lado en píxeles del PNG del QR de mesa.
const QRSize = 256

// TableUseCase gestión de mesas del salón.
type TableUseCase struct {
	repo    repository.TableRepository
	users   repository.UserRepository
	stats   repository.StatsRepository
	qr      ports.QRGenerator
	menuURL string
	clock   ports.Clock
}

// NewTableUseCase construye el caso de uso. menuURL es la base de la URL codificada en el QR.
func NewTableUseCase(
	repo repository.TableRepository,
	users repository.UserRepository,
	stats repository.StatsRepository,
	qr ports.QRGenerator,
	menuURL string,
	clock ports.Clock,
) *TableUseCase {
	return &TableUseCase{repo: repo, users: users, stats: stats, qr: qr, menuURL: menuURL, clock: clock}
}

// Create crea una mesa disponible. El número es único entre mesas activas.
func (uc *TableUseCase) Create(ctx context.Context, restauranteID string, in dto.CreateTableRequest) (*dto.TableResponse, error) {
	if in.Ubicacion == "" {
		in.Ubicacion = entity.LocationInterior
	}
	var v domain.Violations
	v.Check(in.Numero > 0, "numero", "debe ser mayor que 0")
	v.Range("capacidad", in.Capacidad, entity.TableMinCapacity, entity.TableMaxCapacity)
	v.OneOf("ubicacion", in.Ubicacion, entity.TableLocations)
	if err := v.Err(); err != nil {
		return nil, err
	}
	if err := uc.ensureUniqueNumero(ctx, restauranteID, in.Numero, ""); err != nil {
		return nil, err
	}
	meseroID, err := uc.validateWaiter(ctx, restauranteID, in.MeseroID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	t := &entity.Table{
		ID:            uuid.New().String(),
		RestauranteID: restauranteID,
		Numero:        in.Numero,
		Capacidad:     in.Capacidad,
		Ubicacion:     in.Ubicacion,
		Estado:        entity.TableDisponible,
		MeseroID:      meseroID,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return toTableResponse(t), nil
}

// GetByID obtiene una mesa.
func (uc *TableUseCase) GetByID(ctx context.Context, restauranteID, id string) (*dto.TableResponse, error) {
	t, err := uc.load(ctx, restauranteID, id)
	if err != nil {
		return nil, err
	}
	return toTableResponse(t), nil
}

// List lista mesas ordenadas por número.
func (uc *TableUseCase) List(ctx context.Context, restauranteID string, in dto.TableListRequest) (*dto.TableListResponse, error) {
	in.DefaultPage()
	var v domain.Violations
	if in.Estado != "" {
		v.OneOf("estado", in.Estado, entity.TableStatuses)
	}
	if in.Ubicacion != "" {
		v.OneOf("ubicacion", in.Ubicacion, entity.TableLocations)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}
	f := repository.TableFilter{Estado: in.Estado, Ubicacion: in.Ubicacion, MeseroID: in.MeseroID}
	list, total, err := uc.repo.List(ctx, restauranteID, f, repository.Page{Limit: in.Limit, Offset: in.Offset})
	if err != nil {
		return nil, err
	}
	out := &dto.TableListResponse{
		Items: make([]dto.TableResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}
	for _, t := range list {
		out.Items = append(out.Items, *toTableResponse(t))
	}
	return out, nil
}

// Update cambia número, capacidad o ubicación. El estado solo cambia vía ChangeStatus.
func (uc *TableUseCase) Update(ctx context.Context, restauranteID, id string, in dto.UpdateTableRequest) (*dto.TableResponse, error) {
	t, err := uc.load(ctx, restauranteID, id)
	if err != nil {
		return nil, err
	}
	var v domain.Violations
	if in.Numero != nil {
		v.Check(*in.Numero > 0, "numero", "debe ser mayor que 0")
	}
	if in.Capacidad != nil {
		v.Range("capacidad", *in.Capacidad, entity.TableMinCapacity, entity.TableMaxCapacity)
	}
	if in.Ubicacion != nil {
		v.OneOf("ubicacion", *in.Ubicacion, entity.TableLocations)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}
	if in.Numero != nil && *in.Numero != t.Numero {
		if err := uc.ensureUniqueNumero(ctx, restauranteID, *in.Numero, t.ID); err != nil {
			return nil, err
		}
		t.Numero = *in.Numero
	}
	if in.Capacidad != nil {
		t.Capacidad = *in.Capacidad
	}
	if in.Ubicacion != nil {
		t.Ubicacion = *in.Ubicacion
	}
	t.UpdatedAt = uc.clock.Now()
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return toTableResponse(t), nil
}

// ChangeStatus aplica una transición permitida. Dos cambios concurrentes: uno gana, el otro recibe ErrStaleVersion.
func (uc *TableUseCase) ChangeStatus(ctx context.Context, restauranteID, id string, in dto.ChangeStatusRequest) (*dto.TableResponse, error) {
	t, err := uc.load(ctx, restauranteID, id)
	if err != nil {
		return nil, err
	}
	if err := rules.ValidateTableTransition(t.Estado, in.Estado); err != nil {
		return nil, err
	}
	t.UpdatedAt = uc.clock.Now()
	if err := uc.repo.UpdateStatus(ctx, t, in.Estado); err != nil {
		return nil, err
	}
	return toTableResponse(t), nil
}

// AssignWaiter asigna (o con meseroId vacío, desasigna) el mesero responsable.
func (uc *TableUseCase) AssignWaiter(ctx context.Context, restauranteID, id string, in dto.AssignWaiterRequest) (*dto.TableResponse, error) {
	t, err := uc.load(ctx, restauranteID, id)
	if err != nil {
		return nil, err
	}
	meseroID, err := uc.validateWaiter(ctx, restauranteID, in.MeseroID)
	if err != nil {
		return nil, err
	}
	t.MeseroID = meseroID
	t.UpdatedAt = uc.clock.Now()
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return toTableResponse(t), nil
}

// Delete soft delete; una mesa ocupada no se puede eliminar.
func (uc *TableUseCase) Delete(ctx context.Context, restauranteID, id string) error {
	t, err := uc.load(ctx, restauranteID, id)
	if err != nil {
		return err
	}
	if t.Estado == entity.TableOcupada {
		return fmt.Errorf("%w: la mesa %d está ocupada", domain.ErrConflict, t.Numero)
	}
	return uc.repo.SoftDelete(ctx, t)
}

// QR PNG con la URL pública del menú para la mesa.
func (uc *TableUseCase) QR(ctx context.Context, restauranteID, id string) ([]byte, error) {
	t, err := uc.load(ctx, restauranteID, id)
	if err != nil {
		return nil, err
	}
	return uc.qr.PNG(uc.MenuURL(t), QRSize)
}

// MenuURL URL codificada en el QR de la mesa.
func (uc *TableUseCase) MenuURL(t *entity.Table) string {
	q := url.Values{}
	q.Set("restaurante", t.RestauranteID)
	q.Set("mesa", strconv.Itoa(t.Numero))
	return uc.menuURL + "?" + q.Encode()
}

// Stats mesas por estado y porcentaje de ocupación.
func (uc *TableUseCase) Stats(ctx context.Context, restauranteID string) (*dto.TableStatsResponse, error) {
	groups, err := uc.stats.TablesByStatus(ctx, restauranteID)
	if err != nil {
		return nil, err
	}
	total, porEstado := toGroupCounts(groups)
	out := &dto.TableStatsResponse{Total: total, PorEstado: porEstado}
	for _, g := range groups {
		if g.Key == entity.TableOcupada && total > 0 {
			out.Ocupacion = float64(g.Count) * 100 / float64(total)
		}
	}
	return out, nil
}

func (uc *TableUseCase) ensureUniqueNumero(ctx context.Context, restauranteID string, numero int, selfID string) error {
	existing, err := uc.repo.GetByNumero(ctx, restauranteID, numero)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return fmt.Errorf("%w: ya existe la mesa %d", domain.ErrDuplicate, numero)
	}
	return nil
}

// validateWaiter nil o vacío = sin mesero; si no, debe ser un mesero activo del restaurante.
func (uc *TableUseCase) validateWaiter(ctx context.Context, restauranteID string, meseroID *string) (*string, error) {
	if meseroID == nil || *meseroID == "" {
		return nil, nil
	}
	u, err := uc.users.GetByID(ctx, restauranteID, *meseroID)
	if err != nil {
		return nil, err
	}
	if !u.IsActiveWaiter() {
		return nil, domain.NewValidationError("meseroId", "debe ser un mesero activo del restaurante")
	}
	id := u.ID
	return &id, nil
}

func (uc *TableUseCase) load(ctx context.Context, restauranteID, id string) (*entity.Table, error) {
	t, err := uc.repo.GetByID(ctx, restauranteID, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("%w: mesa %s", domain.ErrNotFound, id)
	}
	return t, nil
}

func toTableResponse(t *entity.Table) *dto.TableResponse {
	if t == nil {
		return nil
	}
	return &dto.TableResponse{
		ID:            t.ID,
		RestauranteID: t.RestauranteID,
		Numero:        t.Numero,
		Capacidad:     t.Capacidad,
		Ubicacion:     t.Ubicacion,
		Estado:        t.Estado,
		MeseroID:      t.MeseroID,
		Activo:        t.Active,
		Version:       t.Version,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
