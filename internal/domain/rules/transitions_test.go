package rules

import (
	"fmt"
	"testing"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestValidateTableTransition_TodosLosPares(t *testing.T) {
	allowed := map[string]bool{
		"disponible>ocupada":     true,
		"disponible>reservada":   true,
		"disponible>en_limpieza": true,
		"ocupada>en_limpieza":    true,
		"reservada>disponible":   true,
		"reservada>ocupada":      true,
		"en_limpieza>disponible": true,
	}
	for _, from := range entity.TableStatuses {
		for _, to := range entity.TableStatuses {
			key := from + ">" + to
			t.Run(key, func(t *testing.T) {
				err := ValidateTableTransition(from, to)
				if allowed[key] {
					assert.NoError(t, err)
					assert.True(t, CanTransitionTable(from, to))
					return
				}
				assert.ErrorIs(t, err, domain.ErrInvalidTransition)
				assert.False(t, CanTransitionTable(from, to))
			})
		}
	}
}

func TestValidateTableTransition_EstadoDesconocido(t *testing.T) {
	err := ValidateTableTransition(entity.TableDisponible, "rota")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NotErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestValidateOrderTransition_TodosLosPares(t *testing.T) {
	for _, from := range entity.OrderStatuses {
		for _, to := range entity.OrderStatuses {
			t.Run(from+">"+to, func(t *testing.T) {
				err := ValidateOrderTransition(from, to)
				terminal := from == entity.OrderEntregado || from == entity.OrderCancelado
				if terminal || from == to {
					assert.ErrorIs(t, err, domain.ErrInvalidTransition)
					return
				}
				assert.NoError(t, err)
			})
		}
	}
	assert.ErrorIs(t, ValidateOrderTransition(entity.OrderPendiente, "servido"), domain.ErrInvalidInput)
}

func TestValidateOrderTransition_EntregadoNoVuelveAPreparacion(t *testing.T) {
	err := ValidateOrderTransition(entity.OrderEntregado, entity.OrderEnPreparacion)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestValidateReservationTransition_TodosLosPares(t *testing.T) {
	allowed := map[string]bool{
		"pendiente>confirmada": true,
		"pendiente>cancelada":  true,
		"confirmada>sentada":   true,
		"confirmada>no_show":   true,
		"confirmada>cancelada": true,
		"sentada>completada":   true,
	}
	for _, from := range entity.ReservationStatuses {
		for _, to := range entity.ReservationStatuses {
			key := from + ">" + to
			t.Run(key, func(t *testing.T) {
				err := ValidateReservationTransition(from, to)
				if allowed[key] {
					assert.NoError(t, err)
					return
				}
				assert.ErrorIs(t, err, domain.ErrInvalidTransition, fmt.Sprintf("%s no debe permitirse", key))
			})
		}
	}
}

func TestReservationTableEffect(t *testing.T) {
	s, ok := ReservationTableEffect(entity.ReservationSentada)
	assert.True(t, ok)
	assert.Equal(t, entity.TableOcupada, s)

	s, ok = ReservationTableEffect(entity.ReservationCompletada)
	assert.True(t, ok)
	assert.Equal(t, entity.TableLimpieza, s)

	_, ok = ReservationTableEffect(entity.ReservationConfirmada)
	assert.False(t, ok)
}
