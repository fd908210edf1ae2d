// Package authz resuelve qué puede hacer cada rol. El mapeo rol → permisos es estático y se construye
// una sola vez al iniciar el proceso.
package authz

import (
	"sort"
	"strings"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// Permission acción permitida sobre un módulo. Formato "modulo:accion" (ej. "pedidos:crear").
type Permission string

// NewPermission construye un permiso desde módulo y acción.
func NewPermission(module, action string) Permission {
	return Permission(module + ":" + action)
}

// Parse separa el permiso en módulo y acción.
func (p Permission) Parse() (module, action string) {
	parts := strings.SplitN(string(p), ":", 2)
	if len(parts) != 2 {
		return "", ""
	}
	return parts[0], parts[1]
}

// Módulos.
const (
	ModuleEmpleados     = "empleados"
	ModuleProductos     = "productos"
	ModuleInventario    = "inventario"
	ModulePedidos       = "pedidos"
	ModuleMesas         = "mesas"
	ModuleReservaciones = "reservaciones"
	ModulePerfil        = "perfil"
	ModuleRestaurante   = "restaurante"
	ModuleEstadisticas  = "estadisticas"
)

// Permisos por módulo.
const (
	EmpleadosVer      Permission = "empleados:ver"
	EmpleadosCrear    Permission = "empleados:crear"
	EmpleadosEditar   Permission = "empleados:editar"
	EmpleadosEliminar Permission = "empleados:eliminar"

	ProductosVer      Permission = "productos:ver"
	ProductosCrear    Permission = "productos:crear"
	ProductosEditar   Permission = "productos:editar"
	ProductosEliminar Permission = "productos:eliminar"

	InventarioVer      Permission = "inventario:ver"
	InventarioCrear    Permission = "inventario:crear"
	InventarioEditar   Permission = "inventario:editar"
	InventarioEliminar Permission = "inventario:eliminar"
	InventarioAjustar  Permission = "inventario:ajustar"

	PedidosVer           Permission = "pedidos:ver"
	PedidosCrear         Permission = "pedidos:crear"
	PedidosEditar        Permission = "pedidos:editar"
	PedidosCancelar      Permission = "pedidos:cancelar"
	PedidosCambiarEstado Permission = "pedidos:cambiar_estado"

	MesasVer           Permission = "mesas:ver"
	MesasCrear         Permission = "mesas:crear"
	MesasEditar        Permission = "mesas:editar"
	MesasEliminar      Permission = "mesas:eliminar"
	MesasCambiarEstado Permission = "mesas:cambiar_estado"
	MesasAsignarMesero Permission = "mesas:asignar_mesero"

	ReservacionesVer           Permission = "reservaciones:ver"
	ReservacionesCrear         Permission = "reservaciones:crear"
	ReservacionesEditar        Permission = "reservaciones:editar"
	ReservacionesCancelar      Permission = "reservaciones:cancelar"
	ReservacionesCambiarEstado Permission = "reservaciones:cambiar_estado"
	ReservacionesAsignarMesa   Permission = "reservaciones:asignar_mesa"

	PerfilVer    Permission = "perfil:ver"
	PerfilEditar Permission = "perfil:editar"

	RestauranteVer    Permission = "restaurante:ver"
	RestauranteEditar Permission = "restaurante:editar"

	EstadisticasVer Permission = "estadisticas:ver"
)

// All todos los permisos conocidos.
var All = []Permission{
	EmpleadosVer, EmpleadosCrear, EmpleadosEditar, EmpleadosEliminar,
	ProductosVer, ProductosCrear, ProductosEditar, ProductosEliminar,
	InventarioVer, InventarioCrear, InventarioEditar, InventarioEliminar, InventarioAjustar,
	PedidosVer, PedidosCrear, PedidosEditar, PedidosCancelar, PedidosCambiarEstado,
	MesasVer, MesasCrear, MesasEditar, MesasEliminar, MesasCambiarEstado, MesasAsignarMesero,
	ReservacionesVer, ReservacionesCrear, ReservacionesEditar, ReservacionesCancelar,
	ReservacionesCambiarEstado, ReservacionesAsignarMesa,
	PerfilVer, PerfilEditar,
	RestauranteVer, RestauranteEditar,
	EstadisticasVer,
}

var perfil = []Permission{PerfilVer, PerfilEditar}

// rolePermissions sin admin: admin recibe la unión en init.
var rolePermissions = map[string][]Permission{
	entity.RoleMesero: append([]Permission{
		ProductosVer,
		MesasVer, MesasCambiarEstado,
		PedidosVer, PedidosCrear, PedidosEditar, PedidosCambiarEstado,
		ReservacionesVer,
	}, perfil...),
	entity.RoleCocinero: append([]Permission{
		ProductosVer,
		PedidosVer, PedidosCambiarEstado,
		InventarioVer, InventarioAjustar,
	}, perfil...),
	entity.RoleCajero: append([]Permission{
		ProductosVer,
		MesasVer, MesasCambiarEstado,
		PedidosVer, PedidosCambiarEstado, PedidosCancelar,
		EstadisticasVer,
	}, perfil...),
	entity.RoleHost: append([]Permission{
		ProductosVer,
		MesasVer, MesasCambiarEstado,
		ReservacionesVer, ReservacionesCrear, ReservacionesEditar, ReservacionesCancelar,
		ReservacionesCambiarEstado, ReservacionesAsignarMesa,
	}, perfil...),
}

// roleSets índice inmutable construido una vez.
var roleSets map[string]map[Permission]struct{}

func init() {
	rolePermissions[entity.RoleAdmin] = union()
	roleSets = make(map[string]map[Permission]struct{}, len(rolePermissions))
	for role, perms := range rolePermissions {
		set := make(map[Permission]struct{}, len(perms))
		for _, p := range perms {
			set[p] = struct{}{}
		}
		roleSets[role] = set
	}
}

func union() []Permission {
	seen := make(map[Permission]struct{})
	for _, p := range All {
		seen[p] = struct{}{}
	}
	for _, perms := range rolePermissions {
		for _, p := range perms {
			seen[p] = struct{}{}
		}
	}
	out := make([]Permission, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	return out
}

// Can informa si el rol tiene el permiso.
func Can(role string, perm Permission) bool {
	_, ok := roleSets[role][perm]
	return ok
}

// PermissionsFor lista ordenada de permisos del rol (vacía si el rol no existe).
func PermissionsFor(role string) []Permission {
	set := roleSets[role]
	out := make([]Permission, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ValidRole informa si el rol existe.
func ValidRole(role string) bool {
	_, ok := roleSets[role]
	return ok
}
