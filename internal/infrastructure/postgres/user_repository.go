package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/securepass-api/internal/domain"
	"github.com/jhoicas/securepass-api/internal/domain/entity"
	"github.com/jhoicas/securepass-api/internal/domain/repository"
)

var (
	_ repository.AdminUserRepository = (*AdminUserRepo)(nil)
	_ repository.UserRepository      = (*UserRepo)(nil)
)

// AdminUserRepo implementación de AdminUserRepository sobre PostgreSQL.
type AdminUserRepo struct {
	q Querier
}

// NewAdminUserRepository construye el adaptador de administradores.
func NewAdminUserRepository(q Querier) *AdminUserRepo {
	return &AdminUserRepo{q: q}
}

const adminColumns = `id, first_name, last_name, email, password_hash, role, COALESCE(company_id, ''), created_at, updated_at`

func scanAdmin(row pgx.Row) (*entity.AdminUser, error) {
	var a entity.AdminUser
	err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.PasswordHash, &a.Role, &a.CompanyID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create persiste un administrador. company_id vacío (SuperAdmin) se guarda como NULL.
func (r *AdminUserRepo) Create(ctx context.Context, a *entity.AdminUser) error {
	query := `
		INSERT INTO admin_users (id, first_name, last_name, email, password_hash, role, company_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9)`
	_, err := r.q.Exec(ctx, query, a.ID, a.FirstName, a.LastName, a.Email, a.PasswordHash, a.Role, a.CompanyID, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return uniqueError(err, "insert admin user", a.Email, map[string]error{
			"admin_users_email_key": domain.ErrEmailAlreadyExists,
		})
	}
	return nil
}

func (r *AdminUserRepo) getOne(ctx context.Context, where string, arg any) (*entity.AdminUser, error) {
	a, err := scanAdmin(r.q.QueryRow(ctx, `SELECT `+adminColumns+` FROM admin_users WHERE `+where, arg))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin user: %w", err)
	}
	return a, nil
}

// GetByID obtiene un administrador por ID.
func (r *AdminUserRepo) GetByID(ctx context.Context, id string) (*entity.AdminUser, error) {
	return r.getOne(ctx, "id = $1", id)
}

// GetByEmail obtiene un administrador por email.
func (r *AdminUserRepo) GetByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	return r.getOne(ctx, "email = $1", email)
}

// ListByIDs devuelve los administradores en el orden de ids; los inexistentes se omiten.
func (r *AdminUserRepo) ListByIDs(ctx context.Context, ids []string) ([]*entity.AdminUser, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + adminColumns + ` FROM admin_users
		WHERE id = ANY($1) ORDER BY array_position($1, id)`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("list admin users: %w", err)
	}
	defer rows.Close()

	var list []*entity.AdminUser
	for rows.Next() {
		a, err := scanAdmin(rows)
		if err != nil {
			return nil, fmt.Errorf("scan admin user: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// CountByCompany cuenta los administradores de la empresa.
func (r *AdminUserRepo) CountByCompany(ctx context.Context, companyID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM admin_users WHERE company_id = $1`, companyID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count admin users: %w", err)
	}
	return n, nil
}

// DeleteByCompany elimina los administradores de la empresa.
func (r *AdminUserRepo) DeleteByCompany(ctx context.Context, companyID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM admin_users WHERE company_id = $1`, companyID); err != nil {
		return fmt.Errorf("delete admin users: %w", err)
	}
	return nil
}

// UserRepo implementación de UserRepository. Las concesiones viven en door_access.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

var userUniqueConstraints = map[string]error{
	"users_email_key":   domain.ErrEmailAlreadyExists,
	"users_user_id_key": domain.ErrUserIDAlreadyExists,
}

const userColumns = `id, first_name, last_name, email, password_hash, user_id, profile_picture, company_id, admin_id, pending_requests, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.UserID, &u.ProfilePicture,
		&u.CompanyID, &u.AdminID, &u.PendingRequests, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste un usuario con sus concesiones.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	return pgx.BeginFunc(ctx, r.q, func(tx pgx.Tx) error {
		query := `INSERT INTO users (` + userColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
		_, err := tx.Exec(ctx, query, u.ID, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.UserID,
			u.ProfilePicture, u.CompanyID, u.AdminID, strs(u.PendingRequests), u.CreatedAt, u.UpdatedAt)
		if err != nil {
			return uniqueError(err, "insert user", u.Email+"/"+u.UserID, userUniqueConstraints)
		}
		return insertGrants(ctx, tx, u.ID, u.DoorAccess)
	})
}

// Update persiste el perfil. door_access y pending_requests solo cambian con
// AddDoorAccess/RemoveDoorAccess y Push/PullPendingRequest.
func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	query := `
		UPDATE users SET first_name = $2, last_name = $3, email = $4, password_hash = $5, user_id = $6,
			profile_picture = $7, admin_id = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, u.ID, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.UserID,
		u.ProfilePicture, u.AdminID, u.UpdatedAt)
	if err != nil {
		return uniqueError(err, "update user", u.Email+"/"+u.UserID, userUniqueConstraints)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: usuario %s", domain.ErrNotFound, u.ID)
	}
	return nil
}

// AddDoorAccess inserta la concesión detrás de las existentes.
func (r *UserRepo) AddDoorAccess(ctx context.Context, userID string, da entity.DoorAccess) error {
	query := `
		INSERT INTO door_access (id, user_id, door_id, request_id, door_code, room_name, location, in_time, out_time, date, position)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, COALESCE(MAX(position) + 1, 0)
		FROM door_access WHERE user_id = $2`
	_, err := r.q.Exec(ctx, query, da.ID, userID, da.DoorID, da.RequestID, da.DoorCode, da.RoomName,
		da.Location, da.InTime, da.OutTime, da.Date)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: usuario %s o puerta %s", domain.ErrNotFound, userID, da.DoorID)
		}
		return fmt.Errorf("insert door access: %w", err)
	}
	return nil
}

// RemoveDoorAccess borra una concesión del usuario.
func (r *UserRepo) RemoveDoorAccess(ctx context.Context, userID, grantID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM door_access WHERE user_id = $1 AND id = $2`, userID, grantID); err != nil {
		return fmt.Errorf("delete door access: %w", err)
	}
	return nil
}

func insertGrants(ctx context.Context, tx pgx.Tx, userID string, grants []entity.DoorAccess) error {
	if len(grants) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for i, da := range grants {
		batch.Queue(`
			INSERT INTO door_access (id, user_id, door_id, request_id, door_code, room_name, location, in_time, out_time, date, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			da.ID, userID, da.DoorID, da.RequestID, da.DoorCode, da.RoomName, da.Location, da.InTime, da.OutTime, da.Date, i)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert door access: %w", err)
	}
	return nil
}

// attachGrants carga las concesiones de los usuarios en una sola consulta.
func (r *UserRepo) attachGrants(ctx context.Context, users []*entity.User) error {
	if len(users) == 0 {
		return nil
	}
	byID := make(map[string]*entity.User, len(users))
	ids := make([]string, 0, len(users))
	for _, u := range users {
		byID[u.ID] = u
		ids = append(ids, u.ID)
	}
	rows, err := r.q.Query(ctx, `
		SELECT user_id, id, door_id, request_id, door_code, room_name, location, in_time, out_time, date
		FROM door_access WHERE user_id = ANY($1) ORDER BY user_id, position`, ids)
	if err != nil {
		return fmt.Errorf("list door access: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			userID string
			da     entity.DoorAccess
		)
		if err := rows.Scan(&userID, &da.ID, &da.DoorID, &da.RequestID, &da.DoorCode, &da.RoomName,
			&da.Location, &da.InTime, &da.OutTime, &da.Date); err != nil {
			return fmt.Errorf("scan door access: %w", err)
		}
		u := byID[userID]
		u.DoorAccess = append(u.DoorAccess, da)
	}
	return rows.Err()
}

func (r *UserRepo) getOne(ctx context.Context, where string, arg any) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE `+where, arg))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if err := r.attachGrants(ctx, []*entity.User{u}); err != nil {
		return nil, err
	}
	return u, nil
}

// GetByID obtiene un usuario con sus concesiones.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getOne(ctx, "id = $1", id)
}

// GetByIDForUpdate obtiene el usuario y bloquea su fila hasta el fin de la transacción.
func (r *UserRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.User, error) {
	return r.getOne(ctx, "id = $1 FOR UPDATE", id)
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, "email = $1", email)
}

// GetByUserID obtiene un usuario por su identificador de negocio.
func (r *UserRepo) GetByUserID(ctx context.Context, userID string) (*entity.User, error) {
	return r.getOne(ctx, "user_id = $1", userID)
}

func (r *UserRepo) list(ctx context.Context, where string, args ...any) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, `SELECT `+userColumns+` FROM users WHERE `+where+` ORDER BY created_at DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.attachGrants(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// ListAll lista todos los usuarios, más recientes primero.
func (r *UserRepo) ListAll(ctx context.Context) ([]*entity.User, error) {
	return r.list(ctx, "TRUE")
}

// ListByCompany lista los usuarios de la empresa, más recientes primero.
func (r *UserRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.User, error) {
	return r.list(ctx, "company_id = $1", companyID)
}

// ListByAdmin lista los usuarios registrados por el administrador.
func (r *UserRepo) ListByAdmin(ctx context.Context, adminID string) ([]*entity.User, error) {
	return r.list(ctx, "admin_id = $1", adminID)
}

// Delete elimina un usuario; door_access y permission_requests caen en cascada.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// DeleteByCompany elimina los usuarios de la empresa.
func (r *UserRepo) DeleteByCompany(ctx context.Context, companyID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM users WHERE company_id = $1`, companyID); err != nil {
		return fmt.Errorf("delete users: %w", err)
	}
	return nil
}

// PullPendingRequest quita requestID de pending_requests.
func (r *UserRepo) PullPendingRequest(ctx context.Context, userID, requestID string) error {
	query := `UPDATE users SET pending_requests = array_remove(pending_requests, $2), updated_at = now() WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, userID, requestID); err != nil {
		return fmt.Errorf("pull pending request: %w", err)
	}
	return nil
}

// PushPendingRequest añade requestID a pending_requests si aún no está.
func (r *UserRepo) PushPendingRequest(ctx context.Context, userID, requestID string) error {
	query := `
		UPDATE users SET pending_requests = array_append(pending_requests, $2), updated_at = now()
		WHERE id = $1 AND NOT ($2 = ANY(pending_requests))`
	if _, err := r.q.Exec(ctx, query, userID, requestID); err != nil {
		return fmt.Errorf("push pending request: %w", err)
	}
	return nil
}
