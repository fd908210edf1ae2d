package authz

import (
	"testing"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestAdminTieneTodo(t *testing.T) {
	for _, p := range All {
		assert.True(t, Can(entity.RoleAdmin, p), p)
	}
	assert.Len(t, PermissionsFor(entity.RoleAdmin), len(All))
}

func TestAdminEsLaUnion(t *testing.T) {
	for _, role := range entity.Roles {
		for _, p := range PermissionsFor(role) {
			assert.True(t, Can(entity.RoleAdmin, p), "%s de %s", p, role)
		}
	}
}

func TestRolesSoloSusPermisos(t *testing.T) {
	tests := []struct {
		role    string
		allowed []Permission
		denied  []Permission
	}{
		{entity.RoleMesero,
			[]Permission{PedidosCrear, PedidosCambiarEstado, MesasVer, PerfilEditar},
			[]Permission{EmpleadosVer, InventarioAjustar, ReservacionesCrear, PedidosCancelar, RestauranteEditar}},
		{entity.RoleCocinero,
			[]Permission{PedidosVer, PedidosCambiarEstado, InventarioAjustar},
			[]Permission{PedidosCrear, MesasVer, EmpleadosCrear}},
		{entity.RoleCajero,
			[]Permission{PedidosCancelar, EstadisticasVer},
			[]Permission{InventarioAjustar, ReservacionesCrear, ProductosEditar}},
		{entity.RoleHost,
			[]Permission{ReservacionesCrear, ReservacionesAsignarMesa, MesasCambiarEstado},
			[]Permission{PedidosCrear, MesasAsignarMesero, EmpleadosEliminar}},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			for _, p := range tt.allowed {
				assert.True(t, Can(tt.role, p), p)
			}
			for _, p := range tt.denied {
				assert.False(t, Can(tt.role, p), p)
			}
		})
	}
}

func TestRolDesconocido(t *testing.T) {
	assert.False(t, ValidRole("gerente"))
	assert.False(t, Can("gerente", PerfilVer))
	assert.Empty(t, PermissionsFor("gerente"))
	for _, role := range entity.Roles {
		assert.True(t, ValidRole(role), role)
	}
}

func TestPermissionParse(t *testing.T) {
	m, a := MesasAsignarMesero.Parse()
	assert.Equal(t, ModuleMesas, m)
	assert.Equal(t, "asignar_mesero", a)
	assert.Equal(t, PedidosCrear, NewPermission(ModulePedidos, "crear"))

	m, a = Permission("invalido").Parse()
	assert.Empty(t, m)
	assert.Empty(t, a)
}
