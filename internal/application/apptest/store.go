// Package apptest implementa en memoria los puertos de persistencia para los tests de casos de uso.
// Reproduce las reglas que en PostgreSQL imponen los índices y los UPDATE condicionados:
// unicidad entre activos, compare-and-set por versión y aislamiento por restaurante.
package apptest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// Store datos en memoria. Las lecturas devuelven copias y las escrituras guardan copias.
type Store struct {
	txMu sync.Mutex
	mu   sync.Mutex

	restaurants  map[string]*entity.Restaurant
	users        map[string]*entity.User
	products     map[string]*entity.Product
	items        map[string]*entity.InventoryItem
	movements    []*entity.StockMovement
	tables       map[string]*entity.Table
	orders       map[string]*entity.Order
	reservations map[string]*entity.Reservation
	counters     map[string]int

	// FailOrderCreate fuerza N colisiones de número al crear pedidos.
	FailOrderCreate int
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		restaurants:  map[string]*entity.Restaurant{},
		users:        map[string]*entity.User{},
		products:     map[string]*entity.Product{},
		items:        map[string]*entity.InventoryItem{},
		tables:       map[string]*entity.Table{},
		orders:       map[string]*entity.Order{},
		reservations: map[string]*entity.Reservation{},
		counters:     map[string]int{},
	}
}

// Repos repositorios sobre el store.
func (s *Store) Repos() repository.TxRepos {
	return repository.TxRepos{
		Restaurants:  &RestaurantRepo{s: s},
		Users:        &UserRepo{s: s},
		Products:     &ProductRepo{s: s},
		Inventory:    &InventoryRepo{s: s},
		Tables:       &TableRepo{s: s},
		Orders:       &OrderRepo{s: s},
		Reservations: &ReservationRepo{s: s},
		Sequencer:    &Sequencer{s: s},
	}
}

// Stats repositorio de estadísticas sobre el store.
func (s *Store) Stats() *StatsRepo { return &StatsRepo{s: s} }

var _ repository.TxRunner = (*Store)(nil)

// Run ejecuta fn en serie con el resto de transacciones; si fn falla se restaura el estado previo.
func (s *Store) Run(ctx context.Context, fn func(tx repository.TxRepos) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	snap := s.snapshot()
	if err := fn(s.Repos()); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

type snapshot struct {
	restaurants  map[string]*entity.Restaurant
	users        map[string]*entity.User
	products     map[string]*entity.Product
	items        map[string]*entity.InventoryItem
	movements    []*entity.StockMovement
	tables       map[string]*entity.Table
	orders       map[string]*entity.Order
	reservations map[string]*entity.Reservation
	counters     map[string]int
}

func (s *Store) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot{
		restaurants:  copyMap(s.restaurants),
		users:        copyMap(s.users),
		products:     copyMap(s.products),
		items:        copyMap(s.items),
		movements:    append([]*entity.StockMovement(nil), s.movements...),
		tables:       copyMap(s.tables),
		orders:       copyMap(s.orders),
		reservations: copyMap(s.reservations),
		counters:     copyMap(s.counters),
	}
}

func (s *Store) restore(sn snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restaurants = sn.restaurants
	s.users = sn.users
	s.products = sn.products
	s.items = sn.items
	s.movements = sn.movements
	s.tables = sn.tables
	s.orders = sn.orders
	s.reservations = sn.reservations
	s.counters = sn.counters
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func paginate[T any](list []T, page repository.Page) []T {
	if page.Offset >= len(list) {
		return []T{}
	}
	end := len(list)
	if page.Limit > 0 && page.Offset+page.Limit < end {
		end = page.Offset + page.Limit
	}
	return list[page.Offset:end]
}

func sortByCreated[T any](list []T, created func(T) time.Time, desc bool) {
	sort.SliceStable(list, func(i, j int) bool {
		if desc {
			return created(list[i]).After(created(list[j]))
		}
		return created(list[i]).Before(created(list[j]))
	})
}

func strPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func timePtr(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
