package usecase

import (
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// toGroupCounts convierte agregaciones del repositorio y devuelve también el total.
func toGroupCounts(groups []repository.GroupCount) (int, []dto.GroupCountResponse) {
	total := 0
	out := make([]dto.GroupCountResponse, 0, len(groups))
	for _, g := range groups {
		total += g.Count
		out = append(out, dto.GroupCountResponse{Clave: g.Key, Cantidad: g.Count})
	}
	return total, out
}

func deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
