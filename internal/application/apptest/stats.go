package apptest

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo agregaciones sobre el store.
type StatsRepo struct{ s *Store }

func grouped(counts map[string]*repository.GroupCount) []repository.GroupCount {
	out := make([]repository.GroupCount, 0, len(counts))
	for _, g := range counts {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func add(counts map[string]*repository.GroupCount, key string, sum decimal.Decimal) {
	g, ok := counts[key]
	if !ok {
		g = &repository.GroupCount{Key: key}
		counts[key] = g
	}
	g.Count++
	g.Sum = g.Sum.Add(sum)
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}

func (r *StatsRepo) UsersByRole(_ context.Context, restauranteID string) ([]repository.GroupCount, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	counts := map[string]*repository.GroupCount{}
	for _, u := range r.s.users {
		if u.Active && u.RestauranteID == restauranteID {
			add(counts, u.Role, decimal.Zero)
		}
	}
	return grouped(counts), nil
}

func (r *StatsRepo) ProductsByCategory(_ context.Context, restauranteID string) ([]repository.GroupCount, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	counts := map[string]*repository.GroupCount{}
	for _, p := range r.s.products {
		if p.Active && p.RestauranteID == restauranteID {
			add(counts, p.Categoria, decimal.Zero)
		}
	}
	return grouped(counts), nil
}

func (r *StatsRepo) TablesByStatus(_ context.Context, restauranteID string) ([]repository.GroupCount, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	counts := map[string]*repository.GroupCount{}
	for _, t := range r.s.tables {
		if t.Active && t.RestauranteID == restauranteID {
			add(counts, t.Estado, decimal.Zero)
		}
	}
	return grouped(counts), nil
}

// OrdersByStatus incluye cancelados (inactivos) para que aparezcan en el desglose.
func (r *StatsRepo) OrdersByStatus(_ context.Context, restauranteID string, from, to time.Time) ([]repository.GroupCount, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	counts := map[string]*repository.GroupCount{}
	for _, o := range r.s.orders {
		if o.RestauranteID == restauranteID && inRange(o.CreatedAt, from, to) {
			add(counts, o.Estado, o.Total)
		}
	}
	return grouped(counts), nil
}

func (r *StatsRepo) ReservationsByStatus(_ context.Context, restauranteID string, from, to time.Time) ([]repository.GroupCount, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	counts := map[string]*repository.GroupCount{}
	for _, x := range r.s.reservations {
		if x.RestauranteID == restauranteID && inRange(x.FechaHora, from, to) {
			add(counts, x.Estado, decimal.NewFromInt(int64(x.Personas)))
		}
	}
	return grouped(counts), nil
}

func (r *StatsRepo) DeliveredSales(_ context.Context, restauranteID string, from, to time.Time) (decimal.Decimal, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	total, n := decimal.Zero, 0
	for _, o := range r.s.orders {
		if o.RestauranteID == restauranteID && o.Estado == entity.OrderEntregado && o.EntregadoAt != nil && inRange(*o.EntregadoAt, from, to) {
			total = total.Add(o.Total)
			n++
		}
	}
	return total, n, nil
}

func (r *StatsRepo) TopProducts(_ context.Context, restauranteID string, from, to time.Time, limit int) ([]repository.TopProductResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	acc := map[string]*repository.TopProductResult{}
	for _, o := range r.s.orders {
		if o.RestauranteID != restauranteID || o.Estado != entity.OrderEntregado || o.EntregadoAt == nil || !inRange(*o.EntregadoAt, from, to) {
			continue
		}
		for _, it := range o.Items {
			p, ok := acc[it.ProductoID]
			if !ok {
				p = &repository.TopProductResult{ProductoID: it.ProductoID, Nombre: it.Nombre}
				acc[it.ProductoID] = p
			}
			p.Cantidad += it.Cantidad
			p.Ingresos = p.Ingresos.Add(it.Subtotal)
		}
	}
	out := make([]repository.TopProductResult, 0, len(acc))
	for _, p := range acc {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Cantidad != out[j].Cantidad {
			return out[i].Cantidad > out[j].Cantidad
		}
		return out[i].Nombre < out[j].Nombre
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *StatsRepo) ActiveOrders(_ context.Context, restauranteID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, o := range r.s.orders {
		if o.Active && o.RestauranteID == restauranteID && !o.IsTerminal() {
			n++
		}
	}
	return n, nil
}
