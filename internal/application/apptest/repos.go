package apptest

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/internal/domain/rules"
	"github.com/jhoicas/Restaurante-api/pkg/normalize"
	"github.com/shopspring/decimal"
)

var (
	_ repository.RestaurantRepository  = (*RestaurantRepo)(nil)
	_ repository.UserRepository        = (*UserRepo)(nil)
	_ repository.ProductRepository     = (*ProductRepo)(nil)
	_ repository.InventoryRepository   = (*InventoryRepo)(nil)
	_ repository.TableRepository       = (*TableRepo)(nil)
	_ repository.OrderRepository       = (*OrderRepo)(nil)
	_ repository.ReservationRepository = (*ReservationRepo)(nil)
	_ repository.OrderNumberSequencer  = (*Sequencer)(nil)
)

// ── Restaurantes ──────────────────────────────────────────────────────────────

// RestaurantRepo restaurantes en memoria.
type RestaurantRepo struct{ s *Store }

func (r *RestaurantRepo) Create(_ context.Context, x *entity.Restaurant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *x
	r.s.restaurants[x.ID] = &c
	return nil
}

func (r *RestaurantRepo) GetByID(_ context.Context, id string) (*entity.Restaurant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	x, ok := r.s.restaurants[id]
	if !ok {
		return nil, nil
	}
	c := *x
	return &c, nil
}

func (r *RestaurantRepo) Update(_ context.Context, x *entity.Restaurant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.restaurants[x.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *x
	r.s.restaurants[x.ID] = &c
	return nil
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

// UserRepo usuarios en memoria.
type UserRepo struct{ s *Store }

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.users {
		if x.Active && x.RestauranteID == u.RestauranteID && x.Email == u.Email {
			return domain.ErrConflict
		}
	}
	c := *u
	r.s.users[u.ID] = &c
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, restauranteID, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	x, ok := r.s.users[id]
	if !ok || x.RestauranteID != restauranteID {
		return nil, nil
	}
	c := *x
	return &c, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, restauranteID, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var found *entity.User
	for _, x := range r.s.users {
		if x.RestauranteID == restauranteID && x.Email == email {
			if found == nil || x.Active {
				found = x
			}
		}
	}
	if found == nil {
		return nil, nil
	}
	c := *found
	return &c, nil
}

func (r *UserRepo) FindByEmail(_ context.Context, email string) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.User
	for _, x := range r.s.users {
		if x.Email == email {
			c := *x
			out = append(out, &c)
		}
	}
	sortByCreated(out, func(u *entity.User) time.Time { return u.CreatedAt }, false)
	return out, nil
}

func (r *UserRepo) Update(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	x, ok := r.s.users[u.ID]
	if !ok || x.RestauranteID != u.RestauranteID {
		return domain.ErrNotFound
	}
	c := *u
	c.PasswordHash = x.PasswordHash
	r.s.users[u.ID] = &c
	return nil
}

func (r *UserRepo) UpdatePassword(_ context.Context, restauranteID, id, hash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	x, ok := r.s.users[id]
	if !ok || x.RestauranteID != restauranteID {
		return domain.ErrNotFound
	}
	c := *x
	c.PasswordHash = hash
	r.s.users[id] = &c
	return nil
}

func (r *UserRepo) List(_ context.Context, restauranteID string, f repository.UserFilter, page repository.Page) ([]*entity.User, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.User
	for _, x := range r.s.users {
		if x.RestauranteID != restauranteID {
			continue
		}
		if f.Role != "" && x.Role != f.Role {
			continue
		}
		if f.Active != nil && x.Active != *f.Active {
			continue
		}
		c := *x
		out = append(out, &c)
	}
	sortByCreated(out, func(u *entity.User) time.Time { return u.CreatedAt }, false)
	return paginate(out, page), len(out), nil
}

func (r *UserRepo) SoftDelete(_ context.Context, restauranteID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	x, ok := r.s.users[id]
	if !ok || x.RestauranteID != restauranteID || !x.Active {
		return domain.ErrNotFound
	}
	c := *x
	c.Active = false
	r.s.users[id] = &c
	return nil
}

// ── Productos ─────────────────────────────────────────────────────────────────

// ProductRepo productos en memoria.
type ProductRepo struct{ s *Store }

func cloneProduct(p *entity.Product) *entity.Product {
	c := *p
	c.Etiquetas = append([]string(nil), p.Etiquetas...)
	return &c
}

func (r *ProductRepo) nameTaken(p *entity.Product) bool {
	key := normalize.Key(p.Nombre)
	for _, x := range r.s.products {
		if x.Active && x.ID != p.ID && x.RestauranteID == p.RestauranteID && normalize.Key(x.Nombre) == key {
			return true
		}
	}
	return false
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.nameTaken(p) {
		return domain.ErrConflict
	}
	r.s.products[p.ID] = cloneProduct(p)
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, restauranteID, id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	x, ok := r.s.products[id]
	if !ok || !x.Active || x.RestauranteID != restauranteID {
		return nil, nil
	}
	return cloneProduct(x), nil
}

func (r *ProductRepo) GetByName(_ context.Context, restauranteID, nombre string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := normalize.Key(nombre)
	for _, x := range r.s.products {
		if x.Active && x.RestauranteID == restauranteID && normalize.Key(x.Nombre) == key {
			return cloneProduct(x), nil
		}
	}
	return nil, nil
}

func (r *ProductRepo) GetByIDs(_ context.Context, restauranteID string, ids []string) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Product
	for _, id := range ids {
		if x, ok := r.s.products[id]; ok && x.Active && x.RestauranteID == restauranteID {
			out = append(out, cloneProduct(x))
		}
	}
	return out, nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	x, ok := r.s.products[p.ID]
	if !ok || !x.Active || x.RestauranteID != p.RestauranteID {
		return domain.ErrNotFound
	}
	if r.nameTaken(p) {
		return domain.ErrConflict
	}
	r.s.products[p.ID] = cloneProduct(p)
	return nil
}

func (r *ProductRepo) List(_ context.Context, restauranteID string, f repository.ProductFilter, page repository.Page) ([]*entity.Product, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	q := normalize.Key(f.Busqueda)
	var out []*entity.Product
	for _, x := range r.s.products {
		if !x.Active || x.RestauranteID != restauranteID {
			continue
		}
		if f.Categoria != "" && x.Categoria != f.Categoria {
			continue
		}
		if f.Disponible != nil && x.Disponible != *f.Disponible {
			continue
		}
		if f.Destacado != nil && x.Destacado != *f.Destacado {
			continue
		}
		if q != "" && !strings.Contains(normalize.Key(x.Nombre+" "+x.Descripcion), q) {
			continue
		}
		out = append(out, cloneProduct(x))
	}
	sortByCreated(out, func(p *entity.Product) time.Time { return p.CreatedAt }, true)
	return paginate(out, page), len(out), nil
}

func (r *ProductRepo) SoftDelete(_ context.Context, restauranteID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	x, ok := r.s.products[id]
	if !ok || !x.Active || x.RestauranteID != restauranteID {
		return domain.ErrNotFound
	}
	c := cloneProduct(x)
	c.Active = false
	r.s.products[id] = c
	return nil
}

// ── Inventario ────────────────────────────────────────────────────────────────

// InventoryRepo insumos y movimientos en memoria.
type InventoryRepo struct{ s *Store }

func cloneItem(i *entity.InventoryItem) *entity.InventoryItem {
	c := *i
	c.FechaVencimiento = timePtr(i.FechaVencimiento)
	return &c
}

func (r *InventoryRepo) nameTaken(i *entity.InventoryItem) bool {
	key := normalize.Key(i.Nombre)
	for _, x := range r.s.items {
		if x.Active && x.ID != i.ID && x.RestauranteID == i.RestauranteID && normalize.Key(x.Nombre) == key {
			return true
		}
	}
	return false
}

func (r *InventoryRepo) Create(_ context.Context, i *entity.InventoryItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.nameTaken(i) {
		return domain.ErrConflict
	}
	r.s.items[i.ID] = cloneItem(i)
	return nil
}

func (r *InventoryRepo) GetByID(_ context.Context, restauranteID, id string) (*entity.InventoryItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	x, ok := r.s.items[id]
	if !ok || !x.Active || x.RestauranteID != restauranteID {
		return nil, nil
	}
	return cloneItem(x), nil
}

func (r *InventoryRepo) GetByName(_ context.Context, restauranteID, nombre string) (*entity.InventoryItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := normalize.Key(nombre)
	for _, x := range r.s.items {
		if x.Active && x.RestauranteID == restauranteID && normalize.Key(x.Nombre) == key {
			return cloneItem(x), nil
		}
	}
	return nil, nil
}

func (r *InventoryRepo) GetForUpdate(ctx context.Context, restauranteID, id string) (*entity.InventoryItem, error) {
	return r.GetByID(ctx, restauranteID, id)
}

func (r *InventoryRepo) Update(_ context.Context, i *entity.InventoryItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	x, ok := r.s.items[i.ID]
	if !ok || !x.Active || x.RestauranteID != i.RestauranteID {
		return domain.ErrNotFound
	}
	if r.nameTaken(i) {
		return domain.ErrConflict
	}
	c := cloneItem(i)
	c.Cantidad = x.Cantidad
	r.s.items[i.ID] = c
	return nil
}

func (r *InventoryRepo) UpdateQuantity(_ context.Context, restauranteID, id string, cantidad, precio decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	x, ok := r.s.items[id]
	if !ok || !x.Active || x.RestauranteID != restauranteID {
		return domain.ErrNotFound
	}
	c := cloneItem(x)
	c.Cantidad = cantidad
	c.PrecioUnitario = precio
	r.s.items[id] = c
	return nil
}

func (r *InventoryRepo) List(_ context.Context, restauranteID string, f repository.InventoryFilter) ([]*entity.InventoryItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	q := normalize.Key(f.Busqueda)
	var out []*entity.InventoryItem
	for _, x := range r.s.items {
		if !x.Active || x.RestauranteID != restauranteID {
			continue
		}
		if f.Categoria != "" && x.Categoria != f.Categoria {
			continue
		}
		if q != "" && !strings.Contains(normalize.Key(x.Nombre+" "+x.Proveedor), q) {
			continue
		}
		out = append(out, cloneItem(x))
	}
	sortByCreated(out, func(i *entity.InventoryItem) time.Time { return i.CreatedAt }, false)
	return out, nil
}

func (r *InventoryRepo) SoftDelete(_ context.Context, restauranteID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	x, ok := r.s.items[id]
	if !ok || !x.Active || x.RestauranteID != restauranteID {
		return domain.ErrNotFound
	}
	c := cloneItem(x)
	c.Active = false
	r.s.items[id] = c
	return nil
}

func (r *InventoryRepo) CreateMovement(_ context.Context, m *entity.StockMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *m
	r.s.movements = append(r.s.movements, &c)
	return nil
}

func (r *InventoryRepo) ListMovements(_ context.Context, restauranteID, itemID string, page repository.Page) ([]*entity.StockMovement, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.StockMovement
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		m := r.s.movements[i]
		if m.RestauranteID == restauranteID && m.ItemID == itemID {
			c := *m
			out = append(out, &c)
		}
	}
	return paginate(out, page), len(out), nil
}

// ── Mesas ─────────────────────────────────────────────────────────────────────

// TableRepo mesas en memoria.
type TableRepo struct{ s *Store }

func cloneTable(t *entity.Table) *entity.Table {
	c := *t
	c.MeseroID = strPtr(t.MeseroID)
	return &c
}

func (r *TableRepo) numeroTaken(t *entity.Table) bool {
	for _, x := range r.s.tables {
		if x.Active && x.ID != t.ID && x.RestauranteID == t.RestauranteID && x.Numero == t.Numero {
			return true
		}
	}
	return false
}

func (r *TableRepo) Create(_ context.Context, t *entity.Table) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.numeroTaken(t) {
		return domain.ErrConflict
	}
	r.s.tables[t.ID] = cloneTable(t)
	return nil
}

func (r *TableRepo) GetByID(_ context.Context, restauranteID, id string) (*entity.Table, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	x, ok := r.s.tables[id]
	if !ok || !x.Active || x.RestauranteID != restauranteID {
		return nil, nil
	}
	return cloneTable(x), nil
}

func (r *TableRepo) GetByNumero(_ context.Context, restauranteID string, numero int) (*entity.Table, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.tables {
		if x.Active && x.RestauranteID == restauranteID && x.Numero == numero {
			return cloneTable(x), nil
		}
	}
	return nil, nil
}

func (r *TableRepo) GetForUpdate(ctx context.Context, restauranteID, id string) (*entity.Table, error) {
	return r.GetByID(ctx, restauranteID, id)
}

// cas verifica versión y actividad; debe llamarse con el lock tomado.
func (r *TableRepo) cas(t *entity.Table) error {
	x, ok := r.s.tables[t.ID]
	if !ok || !x.Active || x.RestauranteID != t.RestauranteID || x.Version != t.Version {
		return domain.ErrStaleVersion
	}
	return nil
}

func (r *TableRepo) Update(_ context.Context, t *entity.Table) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.cas(t); err != nil {
		return err
	}
	if r.numeroTaken(t) {
		return domain.ErrConflict
	}
	t.Version++
	r.s.tables[t.ID] = cloneTable(t)
	return nil
}

func (r *TableRepo) UpdateStatus(_ context.Context, t *entity.Table, estado string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.cas(t); err != nil {
		return err
	}
	c := cloneTable(r.s.tables[t.ID])
	c.Estado = estado
	c.Version++
	c.UpdatedAt = t.UpdatedAt
	r.s.tables[t.ID] = c
	t.Estado = estado
	t.Version = c.Version
	return nil
}

func (r *TableRepo) List(_ context.Context, restauranteID string, f repository.TableFilter, page repository.Page) ([]*entity.Table, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Table
	for _, x := range r.s.tables {
		if !x.Active || x.RestauranteID != restauranteID {
			continue
		}
		if f.Estado != "" && x.Estado != f.Estado {
			continue
		}
		if f.Ubicacion != "" && x.Ubicacion != f.Ubicacion {
			continue
		}
		if f.MeseroID != "" && (x.MeseroID == nil || *x.MeseroID != f.MeseroID) {
			continue
		}
		out = append(out, cloneTable(x))
	}
	sortByNumero(out)
	return paginate(out, page), len(out), nil
}

func (r *TableRepo) SoftDelete(_ context.Context, t *entity.Table) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.cas(t); err != nil {
		return err
	}
	c := cloneTable(r.s.tables[t.ID])
	c.Active = false
	c.Version++
	r.s.tables[t.ID] = c
	return nil
}

func (r *TableRepo) ClearWaiter(_ context.Context, restauranteID, meseroID string, at time.Time) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for id, x := range r.s.tables {
		if !x.Active || x.RestauranteID != restauranteID || x.MeseroID == nil || *x.MeseroID != meseroID {
			continue
		}
		c := cloneTable(x)
		c.MeseroID = nil
		c.UpdatedAt = at
		c.Version++
		r.s.tables[id] = c
		n++
	}
	return n, nil
}

func sortByNumero(list []*entity.Table) {
	for i := 1; i < len(list); i++ {
		for j := i; j > 0 && list[j].Numero < list[j-1].Numero; j-- {
			list[j], list[j-1] = list[j-1], list[j]
		}
	}
}

// ── Pedidos ───────────────────────────────────────────────────────────────────

// OrderRepo pedidos en memoria.
type OrderRepo struct{ s *Store }

func cloneOrder(o *entity.Order) *entity.Order {
	c := *o
	c.Items = append([]entity.OrderItem(nil), o.Items...)
	c.Historial = append([]entity.StatusChange(nil), o.Historial...)
	c.EntregadoAt = timePtr(o.EntregadoAt)
	return &c
}

func (r *OrderRepo) Create(_ context.Context, o *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailOrderCreate > 0 {
		r.s.FailOrderCreate--
		return domain.ErrConflict
	}
	for _, x := range r.s.orders {
		if x.RestauranteID == o.RestauranteID && x.Numero == o.Numero {
			return domain.ErrConflict
		}
	}
	r.s.orders[o.ID] = cloneOrder(o)
	return nil
}

func (r *OrderRepo) GetByID(_ context.Context, restauranteID, id string) (*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	x, ok := r.s.orders[id]
	if !ok || !x.Active || x.RestauranteID != restauranteID {
		return nil, nil
	}
	return cloneOrder(x), nil
}

func (r *OrderRepo) cas(o *entity.Order) (*entity.Order, error) {
	x, ok := r.s.orders[o.ID]
	if !ok || !x.Active || x.RestauranteID != o.RestauranteID || x.Version != o.Version {
		return nil, domain.ErrStaleVersion
	}
	return x, nil
}

func (r *OrderRepo) Update(_ context.Context, o *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	x, err := r.cas(o)
	if err != nil {
		return err
	}
	c := cloneOrder(x)
	c.Items = append([]entity.OrderItem(nil), o.Items...)
	c.Subtotal, c.Impuesto, c.Propina, c.Total = o.Subtotal, o.Impuesto, o.Propina, o.Total
	c.Notas = o.Notas
	c.UpdatedAt = o.UpdatedAt
	c.Version++
	r.s.orders[o.ID] = c
	o.Version = c.Version
	return nil
}

func (r *OrderRepo) UpdateStatus(_ context.Context, o *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	x, err := r.cas(o)
	if err != nil {
		return err
	}
	c := cloneOrder(x)
	c.Estado = o.Estado
	c.Historial = append([]entity.StatusChange(nil), o.Historial...)
	c.EntregadoAt = timePtr(o.EntregadoAt)
	c.Active = o.Active
	c.UpdatedAt = o.UpdatedAt
	c.Version++
	r.s.orders[o.ID] = c
	o.Version = c.Version
	return nil
}

func (r *OrderRepo) List(_ context.Context, restauranteID string, f repository.OrderFilter, page repository.Page) ([]*entity.Order, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Order
	for _, x := range r.s.orders {
		if !x.Active || x.RestauranteID != restauranteID {
			continue
		}
		if f.Estado != "" && x.Estado != f.Estado {
			continue
		}
		if f.MesaID != "" && x.MesaID != f.MesaID {
			continue
		}
		if f.MeseroID != "" && x.MeseroID != f.MeseroID {
			continue
		}
		if f.Desde != nil && x.CreatedAt.Before(*f.Desde) {
			continue
		}
		if f.Hasta != nil && !x.CreatedAt.Before(*f.Hasta) {
			continue
		}
		out = append(out, cloneOrder(x))
	}
	sortByCreated(out, func(o *entity.Order) time.Time { return o.CreatedAt }, true)
	return paginate(out, page), len(out), nil
}

func (r *OrderRepo) ListKitchen(_ context.Context, restauranteID string) ([]*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Order
	for _, x := range r.s.orders {
		if x.Active && x.RestauranteID == restauranteID && !x.IsTerminal() {
			out = append(out, cloneOrder(x))
		}
	}
	sortByCreated(out, func(o *entity.Order) time.Time { return o.CreatedAt }, false)
	return out, nil
}

func (r *OrderRepo) CountActiveByTable(_ context.Context, restauranteID, mesaID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, x := range r.s.orders {
		if x.Active && x.RestauranteID == restauranteID && x.MesaID == mesaID && !x.IsTerminal() {
			n++
		}
	}
	return n, nil
}

func (r *OrderRepo) MaxSequence(_ context.Context, restauranteID string, day time.Time) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prefix := rules.FormatOrderNumber(day, 0)
	prefix = prefix[:len(prefix)-4]
	maxSeq := 0
	for _, x := range r.s.orders {
		if x.RestauranteID != restauranteID || !strings.HasPrefix(x.Numero, prefix) {
			continue
		}
		if _, seq, err := rules.ParseOrderNumber(x.Numero); err == nil && seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq, nil
}

// Sequencer consecutivo diario en memoria.
type Sequencer struct{ s *Store }

func (q *Sequencer) Next(_ context.Context, restauranteID string, day time.Time) (int, error) {
	q.s.mu.Lock()
	defer q.s.mu.Unlock()
	key := restauranteID + ":" + day.Format("2006-01-02")
	q.s.counters[key]++
	return q.s.counters[key], nil
}

// ── Reservaciones ─────────────────────────────────────────────────────────────

// ReservationRepo reservaciones en memoria.
type ReservationRepo struct{ s *Store }

func cloneReservation(x *entity.Reservation) *entity.Reservation {
	c := *x
	c.MesaID = strPtr(x.MesaID)
	return &c
}

func (r *ReservationRepo) Create(_ context.Context, x *entity.Reservation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.reservations[x.ID] = cloneReservation(x)
	return nil
}

func (r *ReservationRepo) GetByID(_ context.Context, restauranteID, id string) (*entity.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	x, ok := r.s.reservations[id]
	if !ok || !x.Active || x.RestauranteID != restauranteID {
		return nil, nil
	}
	return cloneReservation(x), nil
}

func (r *ReservationRepo) cas(x *entity.Reservation) error {
	cur, ok := r.s.reservations[x.ID]
	if !ok || !cur.Active || cur.RestauranteID != x.RestauranteID || cur.Version != x.Version {
		return domain.ErrStaleVersion
	}
	return nil
}

func (r *ReservationRepo) Update(_ context.Context, x *entity.Reservation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.cas(x); err != nil {
		return err
	}
	x.Version++
	r.s.reservations[x.ID] = cloneReservation(x)
	return nil
}

func (r *ReservationRepo) UpdateStatus(ctx context.Context, x *entity.Reservation) error {
	return r.Update(ctx, x)
}

func (r *ReservationRepo) List(_ context.Context, restauranteID string, f repository.ReservationFilter, page repository.Page) ([]*entity.Reservation, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Reservation
	for _, x := range r.s.reservations {
		if !x.Active || x.RestauranteID != restauranteID {
			continue
		}
		if f.Fecha != "" && x.Fecha != f.Fecha {
			continue
		}
		if f.Estado != "" && x.Estado != f.Estado {
			continue
		}
		if f.MesaID != "" && (x.MesaID == nil || *x.MesaID != f.MesaID) {
			continue
		}
		out = append(out, cloneReservation(x))
	}
	sortByCreated(out, func(x *entity.Reservation) time.Time { return x.FechaHora }, false)
	return paginate(out, page), len(out), nil
}

func (r *ReservationRepo) ListActiveByTableBetween(_ context.Context, restauranteID, mesaID string, from, to time.Time, excludeID string) ([]*entity.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Reservation
	for _, x := range r.s.reservations {
		if x.RestauranteID != restauranteID || x.ID == excludeID || !x.IsActive() {
			continue
		}
		if x.MesaID == nil || *x.MesaID != mesaID {
			continue
		}
		if x.FechaHora.Before(from) || x.FechaHora.After(to) {
			continue
		}
		out = append(out, cloneReservation(x))
	}
	return out, nil
}
