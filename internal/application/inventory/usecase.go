package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/ports"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/internal/domain/rules"
	"github.com/shopspring/decimal"
)

// MotivoStockInicial motivo del movimiento creado con el alta del insumo.
const MotivoStockInicial = "Stock inicial"

// InventoryUseCase insumos de cocina y ajustes de stock.
// Cantidad solo cambia vía Adjust, que bloquea la fila (SELECT FOR UPDATE) y registra el movimiento en la misma tx.
type InventoryUseCase struct {
	txRunner repository.TxRunner
	repo     repository.InventoryRepository
	clock    ports.Clock
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(txRunner repository.TxRunner, repo repository.InventoryRepository, clock ports.Clock) *InventoryUseCase {
	return &InventoryUseCase{txRunner: txRunner, repo: repo, clock: clock}
}

// Create da de alta un insumo. Si trae cantidad inicial se registra como entrada.
func (uc *InventoryUseCase) Create(ctx context.Context, restauranteID, userID string, in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	var v domain.Violations
	v.Required("nombre", in.Nombre)
	v.OneOf("categoria", in.Categoria, entity.InventoryCategories)
	v.OneOf("unidad", in.Unidad, entity.InventoryUnits)
	v.Check(!in.Cantidad.IsNegative(), "cantidad", "no puede ser negativa")
	v.Check(!in.CantidadMinima.IsNegative(), "cantidadMinima", "no puede ser negativa")
	v.Check(!in.PrecioUnitario.IsNegative(), "precioUnitario", "no puede ser negativo")
	if err := v.Err(); err != nil {
		return nil, err
	}
	if err := uc.ensureUniqueName(ctx, restauranteID, in.Nombre, ""); err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	item := &entity.InventoryItem{
		ID:               uuid.New().String(),
		RestauranteID:    restauranteID,
		Nombre:           strings.TrimSpace(in.Nombre),
		Categoria:        in.Categoria,
		Cantidad:         in.Cantidad,
		Unidad:           in.Unidad,
		CantidadMinima:   in.CantidadMinima,
		PrecioUnitario:   in.PrecioUnitario,
		FechaVencimiento: in.FechaVencimiento,
		Proveedor:        strings.TrimSpace(in.Proveedor),
		Active:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	err := uc.txRunner.Run(ctx, func(tx repository.TxRepos) error {
		if err := tx.Inventory.Create(ctx, item); err != nil {
			return err
		}
		if !item.Cantidad.IsPositive() {
			return nil
		}
		return tx.Inventory.CreateMovement(ctx, &entity.StockMovement{
			ID:               uuid.New().String(),
			RestauranteID:    restauranteID,
			ItemID:           item.ID,
			Tipo:             entity.MovementEntrada,
			Cantidad:         item.Cantidad,
			CantidadAnterior: decimal.Zero,
			CantidadNueva:    item.Cantidad,
			Motivo:           MotivoStockInicial,
			UsuarioID:        userID,
			CreatedAt:        now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(item, now), nil
}

// GetByID obtiene un insumo con sus campos derivados.
func (uc *InventoryUseCase) GetByID(ctx context.Context, restauranteID, id string) (*dto.InventoryItemResponse, error) {
	item, err := uc.load(ctx, restauranteID, id)
	if err != nil {
		return nil, err
	}
	return toItemResponse(item, uc.clock.Now()), nil
}

// List filtra por categoría, búsqueda y estado derivado. El estado no está en BD, así que se pagina aquí.
func (uc *InventoryUseCase) List(ctx context.Context, restauranteID string, in dto.InventoryListRequest) (*dto.InventoryListResponse, error) {
	in.DefaultPage()
	var v domain.Violations
	if in.Categoria != "" {
		v.OneOf("categoria", in.Categoria, entity.InventoryCategories)
	}
	if in.Estado != "" {
		v.OneOf("estado", in.Estado, entity.StockStatuses)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}
	items, err := uc.repo.List(ctx, restauranteID, repository.InventoryFilter{Categoria: in.Categoria, Busqueda: strings.TrimSpace(in.Busqueda)})
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	all := make([]dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		r := toItemResponse(it, now)
		if in.Estado != "" && r.Estado != in.Estado {
			continue
		}
		all = append(all, *r)
	}
	out := &dto.InventoryListResponse{
		Items: []dto.InventoryItemResponse{},
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: len(all)},
	}
	if in.Offset < len(all) {
		end := min(in.Offset+in.Limit, len(all))
		out.Items = all[in.Offset:end]
	}
	return out, nil
}

// Update actualiza los datos del insumo (no la cantidad).
func (uc *InventoryUseCase) Update(ctx context.Context, restauranteID, id string, in dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	item, err := uc.load(ctx, restauranteID, id)
	if err != nil {
		return nil, err
	}
	var v domain.Violations
	if in.Nombre != nil {
		v.Required("nombre", *in.Nombre)
	}
	if in.Categoria != nil {
		v.OneOf("categoria", *in.Categoria, entity.InventoryCategories)
	}
	if in.Unidad != nil {
		v.OneOf("unidad", *in.Unidad, entity.InventoryUnits)
	}
	if in.CantidadMinima != nil {
		v.Check(!in.CantidadMinima.IsNegative(), "cantidadMinima", "no puede ser negativa")
	}
	if in.PrecioUnitario != nil {
		v.Check(!in.PrecioUnitario.IsNegative(), "precioUnitario", "no puede ser negativo")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}
	if in.Nombre != nil {
		if err := uc.ensureUniqueName(ctx, restauranteID, *in.Nombre, item.ID); err != nil {
			return nil, err
		}
		item.Nombre = strings.TrimSpace(*in.Nombre)
	}
	if in.Categoria != nil {
		item.Categoria = *in.Categoria
	}
	if in.Unidad != nil {
		item.Unidad = *in.Unidad
	}
	if in.CantidadMinima != nil {
		item.CantidadMinima = *in.CantidadMinima
	}
	if in.PrecioUnitario != nil {
		item.PrecioUnitario = *in.PrecioUnitario
	}
	if in.FechaVencimiento != nil {
		item.FechaVencimiento = in.FechaVencimiento
	}
	if in.Proveedor != nil {
		item.Proveedor = strings.TrimSpace(*in.Proveedor)
	}
	now := uc.clock.Now()
	item.UpdatedAt = now
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item, now), nil
}

// Delete soft delete del insumo; los movimientos se conservan.
func (uc *InventoryUseCase) Delete(ctx context.Context, restauranteID, id string) error {
	if _, err := uc.load(ctx, restauranteID, id); err != nil {
		return err
	}
	return uc.repo.SoftDelete(ctx, restauranteID, id)
}

// Adjust aplica una entrada o salida de stock dentro de una transacción.
// Una entrada con precio unitario recalcula el precio por promedio ponderado.
func (uc *InventoryUseCase) Adjust(ctx context.Context, restauranteID, userID, id string, in dto.AdjustStockRequest) (*dto.InventoryItemResponse, error) {
	var v domain.Violations
	v.Check(in.Cantidad.IsPositive(), "cantidad", "debe ser mayor que 0")
	v.OneOf("tipo", in.Tipo, []string{entity.MovementEntrada, entity.MovementSalida})
	if in.PrecioUnitario != nil {
		v.Check(!in.PrecioUnitario.IsNegative(), "precioUnitario", "no puede ser negativo")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	var updated *entity.InventoryItem
	err := uc.txRunner.Run(ctx, func(tx repository.TxRepos) error {
		// Bloquea la fila del insumo hasta el commit
		item, err := tx.Inventory.GetForUpdate(ctx, restauranteID, id)
		if err != nil {
			return err
		}
		if item == nil {
			return fmt.Errorf("%w: insumo %s", domain.ErrNotFound, id)
		}
		nueva, err := rules.ApplyStockAdjustment(item.Cantidad, in.Cantidad, in.Tipo)
		if err != nil {
			return err
		}
		precio := item.PrecioUnitario
		if in.Tipo == entity.MovementEntrada && in.PrecioUnitario != nil {
			precio = rules.WeightedUnitPrice(item.Cantidad, item.PrecioUnitario, in.Cantidad, *in.PrecioUnitario)
		}
		if err := tx.Inventory.UpdateQuantity(ctx, restauranteID, id, nueva, precio); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:               uuid.New().String(),
			RestauranteID:    restauranteID,
			ItemID:           id,
			Tipo:             in.Tipo,
			Cantidad:         in.Cantidad,
			CantidadAnterior: item.Cantidad,
			CantidadNueva:    nueva,
			Motivo:           strings.TrimSpace(in.Motivo),
			UsuarioID:        userID,
			CreatedAt:        now,
		}
		if err := tx.Inventory.CreateMovement(ctx, mov); err != nil {
			return err
		}
		item.Cantidad = nueva
		item.PrecioUnitario = precio
		item.UpdatedAt = now
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(updated, now), nil
}

// Movements historial de movimientos del insumo, más recientes primero.
func (uc *InventoryUseCase) Movements(ctx context.Context, restauranteID, id string, page dto.PageRequest) (*dto.StockMovementListResponse, error) {
	page.DefaultPage()
	if _, err := uc.load(ctx, restauranteID, id); err != nil {
		return nil, err
	}
	list, total, err := uc.repo.ListMovements(ctx, restauranteID, id, repository.Page{Limit: page.Limit, Offset: page.Offset})
	if err != nil {
		return nil, err
	}
	out := &dto.StockMovementListResponse{
		Items: make([]dto.StockMovementResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, m := range list {
		out.Items = append(out.Items, toMovementResponse(m))
	}
	return out, nil
}

// Alerts insumos bajo el mínimo, próximos a vencer o vencidos.
func (uc *InventoryUseCase) Alerts(ctx context.Context, restauranteID string) (*dto.InventoryAlertsResponse, error) {
	items, err := uc.repo.List(ctx, restauranteID, repository.InventoryFilter{})
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	out := &dto.InventoryAlertsResponse{
		BajoStock:       []dto.InventoryItemResponse{},
		ProximosAVencer: []dto.InventoryItemResponse{},
		Vencidos:        []dto.InventoryItemResponse{},
	}
	for _, it := range items {
		r := toItemResponse(it, now)
		if r.Estado != entity.StockNormal {
			out.BajoStock = append(out.BajoStock, *r)
		}
		if r.ProximoAVencer {
			out.ProximosAVencer = append(out.ProximosAVencer, *r)
		}
		if r.Vencido {
			out.Vencidos = append(out.Vencidos, *r)
		}
	}
	return out, nil
}

// LowStockCount número de insumos que no están en estado Normal.
func (uc *InventoryUseCase) LowStockCount(ctx context.Context, restauranteID string) (int, error) {
	items, err := uc.repo.List(ctx, restauranteID, repository.InventoryFilter{})
	if err != nil {
		return 0, err
	}
	n := 0
	for _, it := range items {
		if rules.StockStatus(it.Cantidad, it.CantidadMinima) != entity.StockNormal {
			n++
		}
	}
	return n, nil
}

// Stats valor del inventario y conteos por categoría y estado.
func (uc *InventoryUseCase) Stats(ctx context.Context, restauranteID string) (*dto.InventoryStatsResponse, error) {
	items, err := uc.repo.List(ctx, restauranteID, repository.InventoryFilter{})
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	out := &dto.InventoryStatsResponse{Total: len(items), ValorTotal: decimal.Zero}
	porCategoria := map[string]int{}
	porEstado := map[string]int{}
	for _, it := range items {
		r := toItemResponse(it, now)
		out.ValorTotal = out.ValorTotal.Add(r.ValorTotal)
		porCategoria[it.Categoria]++
		porEstado[r.Estado]++
		if r.Vencido {
			out.Vencidos++
		}
		if r.ProximoAVencer {
			out.ProximosAVencer++
		}
	}
	out.PorCategoria = counts(entity.InventoryCategories, porCategoria)
	out.PorEstado = counts(entity.StockStatuses, porEstado)
	return out, nil
}

func counts(keys []string, m map[string]int) []dto.GroupCountResponse {
	out := make([]dto.GroupCountResponse, 0, len(m))
	for _, k := range keys {
		if n, ok := m[k]; ok {
			out = append(out, dto.GroupCountResponse{Clave: k, Cantidad: n})
		}
	}
	return out
}

func (uc *InventoryUseCase) ensureUniqueName(ctx context.Context, restauranteID, nombre, selfID string) error {
	existing, err := uc.repo.GetByName(ctx, restauranteID, nombre)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return fmt.Errorf("%w: ya existe un insumo llamado %q", domain.ErrDuplicate, existing.Nombre)
	}
	return nil
}

func (uc *InventoryUseCase) load(ctx context.Context, restauranteID, id string) (*entity.InventoryItem, error) {
	item, err := uc.repo.GetByID(ctx, restauranteID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: insumo %s", domain.ErrNotFound, id)
	}
	return item, nil
}

func toItemResponse(it *entity.InventoryItem, now time.Time) *dto.InventoryItemResponse {
	proximo, vencido, dias := rules.ExpiryFlags(it.FechaVencimiento, now)
	return &dto.InventoryItemResponse{
		ID:               it.ID,
		RestauranteID:    it.RestauranteID,
		Nombre:           it.Nombre,
		Categoria:        it.Categoria,
		Cantidad:         it.Cantidad,
		Unidad:           it.Unidad,
		CantidadMinima:   it.CantidadMinima,
		PrecioUnitario:   it.PrecioUnitario,
		FechaVencimiento: it.FechaVencimiento,
		Proveedor:        it.Proveedor,
		Activo:           it.Active,
		Estado:           rules.StockStatus(it.Cantidad, it.CantidadMinima),
		ProximoAVencer:   proximo,
		Vencido:          vencido,
		DiasParaVencer:   dias,
		ValorTotal:       rules.InventoryValue(it.Cantidad, it.PrecioUnitario),
		CreatedAt:        it.CreatedAt,
		UpdatedAt:        it.UpdatedAt,
	}
}

func toMovementResponse(m *entity.StockMovement) dto.StockMovementResponse {
	return dto.StockMovementResponse{
		ID:               m.ID,
		ItemID:           m.ItemID,
		Tipo:             m.Tipo,
		Cantidad:         m.Cantidad,
		CantidadAnterior: m.CantidadAnterior,
		CantidadNueva:    m.CantidadNueva,
		Motivo:           m.Motivo,
		UsuarioID:        m.UsuarioID,
		CreatedAt:        m.CreatedAt,
	}
}
