package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/pkg/normalize"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, restaurante_id, nombre, descripcion, categoria, precio, disponible, destacado, etiquetas, activo, created_at, updated_at`

func scanProduct(row rowScanner) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.RestauranteID, &p.Nombre, &p.Descripcion, &p.Categoria, &p.Precio,
		&p.Disponible, &p.Destacado, &p.Etiquetas, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func etiquetas(p *entity.Product) []string {
	if p.Etiquetas == nil {
		return []string{}
	}
	return p.Etiquetas
}

// Create persiste un nuevo producto. nombre_clave garantiza unicidad sin distinguir mayúsculas ni tildes.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO productos (id, restaurante_id, nombre, nombre_clave, descripcion, categoria, precio, disponible, destacado, etiquetas, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.RestauranteID, p.Nombre, normalize.Key(p.Nombre), p.Descripcion, p.Categoria, p.Precio,
		p.Disponible, p.Destacado, etiquetas(p), p.Active, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto activo por ID.
func (r *ProductRepo) GetByID(ctx context.Context, restauranteID, id string) (*entity.Product, error) {
	if !validID(id) {
		return nil, nil
	}
	query := `SELECT ` + productColumns + ` FROM productos WHERE id = $1 AND restaurante_id = $2 AND activo`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id, restauranteID))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByName obtiene un producto activo por nombre normalizado.
func (r *ProductRepo) GetByName(ctx context.Context, restauranteID, nombre string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM productos WHERE restaurante_id = $1 AND nombre_clave = $2 AND activo`
	p, err := scanProduct(r.q.QueryRow(ctx, query, restauranteID, normalize.Key(nombre)))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by name: %w", err)
	}
	return p, nil
}

// GetByIDs productos activos del restaurante con esos IDs (los inexistentes se omiten).
func (r *ProductRepo) GetByIDs(ctx context.Context, restauranteID string, ids []string) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + productColumns + ` FROM productos WHERE restaurante_id = $1 AND id::TEXT = ANY($2) AND activo`
	rows, err := r.q.Query(ctx, query, restauranteID, ids)
	if err != nil {
		return nil, fmt.Errorf("get products by ids: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza un producto activo.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE productos SET nombre = $3, nombre_clave = $4, descripcion = $5, categoria = $6, precio = $7,
		       disponible = $8, destacado = $9, etiquetas = $10, updated_at = $11
		WHERE id = $1 AND restaurante_id = $2 AND activo`
	tag, err := r.q.Exec(ctx, query,
		p.ID, p.RestauranteID, p.Nombre, normalize.Key(p.Nombre), p.Descripcion, p.Categoria, p.Precio,
		p.Disponible, p.Destacado, etiquetas(p), p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update product: %w", err)
	}
	return mustAffect(tag, domain.ErrNotFound)
}

// List lista productos activos del más reciente al más antiguo.
// Busqueda compara contra nombre_clave y la descripción en minúsculas.
func (r *ProductRepo) List(ctx context.Context, restauranteID string, f repository.ProductFilter, page repository.Page) ([]*entity.Product, int, error) {
	w := newWhere(restauranteID)
	if f.Categoria != "" {
		w.add("categoria = $%d", f.Categoria)
	}
	if f.Disponible != nil {
		w.add("disponible = $%d", *f.Disponible)
	}
	if f.Destacado != nil {
		w.add("destacado = $%d", *f.Destacado)
	}
	if q := normalize.Key(f.Busqueda); q != "" {
		w.add("(nombre_clave || ' ' || lower(descripcion)) LIKE '%%' || $%d || '%%'", q)
	}
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM productos WHERE restaurante_id = $1 AND activo`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}
	n := w.next()
	query := fmt.Sprintf(`SELECT %s FROM productos WHERE restaurante_id = $1 AND activo%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		productColumns, w.sql(), n, n+1)
	rows, err := r.q.Query(ctx, query, append(w.args, limitArg(page), page.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

// SoftDelete marca el producto como inactivo; deja libre su nombre.
func (r *ProductRepo) SoftDelete(ctx context.Context, restauranteID, id string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE productos SET activo = FALSE, updated_at = now() WHERE id = $1 AND restaurante_id = $2 AND activo`,
		id, restauranteID,
	)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return mustAffect(tag, domain.ErrNotFound)
}
