package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, restaurante_id, nombre, email, password_hash, rol, telefono, activo, created_at, updated_at`

func scanUser(row rowScanner) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.RestauranteID, &u.Nombre, &u.Email, &u.PasswordHash, &u.Role, &u.Telefono,
		&u.Active, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste un nuevo usuario. El email es único entre activos del restaurante.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO usuarios (id, restaurante_id, nombre, email, password_hash, rol, telefono, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.RestauranteID, u.Nombre, u.Email, u.PasswordHash, u.Role, u.Telefono,
		u.Active, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario (activo o no) del restaurante.
func (r *UserRepo) GetByID(ctx context.Context, restauranteID, id string) (*entity.User, error) {
	if !validID(id) {
		return nil, nil
	}
	query := `SELECT ` + userColumns + ` FROM usuarios WHERE id = $1 AND restaurante_id = $2`
	u, err := scanUser(r.q.QueryRow(ctx, query, id, restauranteID))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetByEmail obtiene el usuario del restaurante con ese email, prefiriendo el activo.
func (r *UserRepo) GetByEmail(ctx context.Context, restauranteID, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM usuarios WHERE restaurante_id = $1 AND email = $2
		ORDER BY activo DESC, created_at DESC LIMIT 1`
	u, err := scanUser(r.q.QueryRow(ctx, query, restauranteID, email))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// FindByEmail busca el email en todos los restaurantes.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM usuarios WHERE email = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("find users by email: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Update actualiza perfil, rol y estado. El hash de contraseña solo cambia vía UpdatePassword.
func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	query := `
		UPDATE usuarios SET nombre = $3, email = $4, rol = $5, telefono = $6, activo = $7, updated_at = $8
		WHERE id = $1 AND restaurante_id = $2`
	tag, err := r.q.Exec(ctx, query, u.ID, u.RestauranteID, u.Nombre, u.Email, u.Role, u.Telefono, u.Active, u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	return mustAffect(tag, domain.ErrNotFound)
}

// UpdatePassword reemplaza el hash de contraseña.
func (r *UserRepo) UpdatePassword(ctx context.Context, restauranteID, id, passwordHash string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE usuarios SET password_hash = $3, updated_at = now() WHERE id = $1 AND restaurante_id = $2`,
		id, restauranteID, passwordHash,
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return mustAffect(tag, domain.ErrNotFound)
}

// List lista empleados con filtros de rol y estado.
func (r *UserRepo) List(ctx context.Context, restauranteID string, f repository.UserFilter, page repository.Page) ([]*entity.User, int, error) {
	w := newWhere(restauranteID)
	if f.Role != "" {
		w.add("rol = $%d", f.Role)
	}
	if f.Active != nil {
		w.add("activo = $%d", *f.Active)
	}
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM usuarios WHERE restaurante_id = $1`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}
	n := w.next()
	query := fmt.Sprintf(`SELECT %s FROM usuarios WHERE restaurante_id = $1%s ORDER BY created_at LIMIT $%d OFFSET $%d`,
		userColumns, w.sql(), n, n+1)
	rows, err := r.q.Query(ctx, query, append(w.args, limitArg(page), page.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, total, rows.Err()
}

// SoftDelete desactiva al usuario.
func (r *UserRepo) SoftDelete(ctx context.Context, restauranteID, id string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE usuarios SET activo = FALSE, updated_at = now() WHERE id = $1 AND restaurante_id = $2 AND activo`,
		id, restauranteID,
	)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return mustAffect(tag, domain.ErrNotFound)
}
