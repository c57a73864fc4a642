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
	_ repository.DoorRepository              = (*DoorRepo)(nil)
	_ repository.PermissionRequestRepository = (*PermissionRequestRepo)(nil)
	_ repository.AccessEventRepository       = (*AccessEventRepo)(nil)
)

// DoorRepo implementación de DoorRepository sobre PostgreSQL.
type DoorRepo struct {
	q Querier
}

// NewDoorRepository construye el adaptador de puertas.
func NewDoorRepository(q Querier) *DoorRepo {
	return &DoorRepo{q: q}
}

const doorColumns = `id, door_code, room_name, location, company_id, admin_id, approved_users, status, created_at, updated_at`

func scanDoor(row pgx.Row) (*entity.Door, error) {
	var d entity.Door
	err := row.Scan(&d.ID, &d.DoorCode, &d.RoomName, &d.Location, &d.CompanyID, &d.AdminID,
		&d.ApprovedUsers, &d.Status, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create persiste una puerta; door_code es único por empresa.
func (r *DoorRepo) Create(ctx context.Context, d *entity.Door) error {
	query := `INSERT INTO doors (` + doorColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query, d.ID, d.DoorCode, d.RoomName, d.Location, d.CompanyID, d.AdminID,
		strs(d.ApprovedUsers), d.Status, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return uniqueError(err, "insert door", "puerta "+d.DoorCode, map[string]error{
			"doors_company_code_key": domain.ErrDuplicate,
		})
	}
	return nil
}

// GetByID obtiene una puerta por ID.
func (r *DoorRepo) GetByID(ctx context.Context, id string) (*entity.Door, error) {
	d, err := scanDoor(r.q.QueryRow(ctx, `SELECT `+doorColumns+` FROM doors WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get door: %w", err)
	}
	return d, nil
}

func (r *DoorRepo) list(ctx context.Context, where string, args ...any) ([]*entity.Door, error) {
	rows, err := r.q.Query(ctx, `SELECT `+doorColumns+` FROM doors WHERE `+where+` ORDER BY created_at DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("list doors: %w", err)
	}
	defer rows.Close()

	var list []*entity.Door
	for rows.Next() {
		d, err := scanDoor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan door: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// ListByCompany lista las puertas de la empresa.
func (r *DoorRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Door, error) {
	return r.list(ctx, "company_id = $1", companyID)
}

// ListAll lista todas las puertas, más recientes primero.
func (r *DoorRepo) ListAll(ctx context.Context) ([]*entity.Door, error) {
	return r.list(ctx, "TRUE")
}

// ListByAdmin lista las puertas registradas por el administrador.
func (r *DoorRepo) ListByAdmin(ctx context.Context, adminID string) ([]*entity.Door, error) {
	return r.list(ctx, "admin_id = $1", adminID)
}

// Delete elimina la puerta; sus concesiones en door_access caen en cascada.
func (r *DoorRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM doors WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete door: %w", err)
	}
	return nil
}

// DeleteByCompany elimina las puertas de la empresa.
func (r *DoorRepo) DeleteByCompany(ctx context.Context, companyID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM doors WHERE company_id = $1`, companyID); err != nil {
		return fmt.Errorf("delete doors: %w", err)
	}
	return nil
}

// AddApprovedUser añade el usuario a approved_users sin duplicarlo.
func (r *DoorRepo) AddApprovedUser(ctx context.Context, doorID, userID string) error {
	query := `
		UPDATE doors SET
			approved_users = CASE WHEN $2 = ANY(approved_users) THEN approved_users ELSE array_append(approved_users, $2) END,
			updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, doorID, userID)
	if err != nil {
		return fmt.Errorf("add approved user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: puerta %s", domain.ErrNotFound, doorID)
	}
	return nil
}

// PullApprovedUser quita el usuario de approved_users.
func (r *DoorRepo) PullApprovedUser(ctx context.Context, doorID, userID string) error {
	query := `UPDATE doors SET approved_users = array_remove(approved_users, $2), updated_at = now() WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, doorID, userID); err != nil {
		return fmt.Errorf("pull approved user: %w", err)
	}
	return nil
}

// PermissionRequestRepo implementación de PermissionRequestRepository.
type PermissionRequestRepo struct {
	q Querier
}

// NewPermissionRequestRepository construye el adaptador.
func NewPermissionRequestRepository(q Querier) *PermissionRequestRepo {
	return &PermissionRequestRepo{q: q}
}

const permissionColumns = `id, user_id, company_id, door_id, name, location, room_name, in_time, out_time, date, message, status, created_at, updated_at`

func scanPermission(row pgx.Row) (*entity.PermissionRequest, error) {
	var p entity.PermissionRequest
	err := row.Scan(&p.ID, &p.UserID, &p.CompanyID, &p.DoorID, &p.Name, &p.Location, &p.RoomName,
		&p.InTime, &p.OutTime, &p.Date, &p.Message, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste una solicitud de permiso.
func (r *PermissionRequestRepo) Create(ctx context.Context, p *entity.PermissionRequest) error {
	query := `INSERT INTO permission_requests (` + permissionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query, p.ID, p.UserID, p.CompanyID, p.DoorID, p.Name, p.Location, p.RoomName,
		p.InTime, p.OutTime, p.Date, p.Message, p.Status, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert permission request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud de permiso.
func (r *PermissionRequestRepo) GetByID(ctx context.Context, id string) (*entity.PermissionRequest, error) {
	return r.getOne(ctx, `SELECT `+permissionColumns+` FROM permission_requests WHERE id = $1`, id)
}

// GetByIDForUpdate obtiene la solicitud y bloquea su fila hasta el fin de la transacción.
func (r *PermissionRequestRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.PermissionRequest, error) {
	return r.getOne(ctx, `SELECT `+permissionColumns+` FROM permission_requests WHERE id = $1 FOR UPDATE`, id)
}

func (r *PermissionRequestRepo) getOne(ctx context.Context, query, id string) (*entity.PermissionRequest, error) {
	p, err := scanPermission(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get permission request: %w", err)
	}
	return p, nil
}

// Update persiste estado y mensaje de la solicitud.
func (r *PermissionRequestRepo) Update(ctx context.Context, p *entity.PermissionRequest) error {
	cmd, err := r.q.Exec(ctx, `UPDATE permission_requests SET status = $2, message = $3, updated_at = $4 WHERE id = $1`,
		p.ID, p.Status, p.Message, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update permission request: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: solicitud de permiso %s", domain.ErrNotFound, p.ID)
	}
	return nil
}

// Delete elimina una solicitud de permiso.
func (r *PermissionRequestRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM permission_requests WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete permission request: %w", err)
	}
	return nil
}

func (r *PermissionRequestRepo) list(ctx context.Context, where string, args ...any) ([]*entity.PermissionRequest, error) {
	rows, err := r.q.Query(ctx, `SELECT `+permissionColumns+` FROM permission_requests WHERE `+where+` ORDER BY created_at DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("list permission requests: %w", err)
	}
	defer rows.Close()

	var list []*entity.PermissionRequest
	for rows.Next() {
		p, err := scanPermission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan permission request: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ListByCompanyAndStatus lista solicitudes de la empresa en un estado.
func (r *PermissionRequestRepo) ListByCompanyAndStatus(ctx context.Context, companyID, status string) ([]*entity.PermissionRequest, error) {
	return r.list(ctx, "company_id = $1 AND status = $2", companyID, status)
}

// ListByUser lista todas las solicitudes del usuario.
func (r *PermissionRequestRepo) ListByUser(ctx context.Context, userID string) ([]*entity.PermissionRequest, error) {
	return r.list(ctx, "user_id = $1", userID)
}

// ListByUserAndStatus lista las solicitudes del usuario en un estado.
func (r *PermissionRequestRepo) ListByUserAndStatus(ctx context.Context, userID, status string) ([]*entity.PermissionRequest, error) {
	return r.list(ctx, "user_id = $1 AND status = $2", userID, status)
}

// AccessEventRepo historial de accesos sobre PostgreSQL.
type AccessEventRepo struct {
	q Querier
}

// NewAccessEventRepository construye el adaptador.
func NewAccessEventRepository(q Querier) *AccessEventRepo {
	return &AccessEventRepo{q: q}
}

const accessEventColumns = `id, user_id, company_id, door_id, door_code, room_name, location, entry_time, exit_time, created_at`

// Create registra un evento de acceso.
func (r *AccessEventRepo) Create(ctx context.Context, ev *entity.AccessEvent) error {
	query := `INSERT INTO access_events (` + accessEventColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query, ev.ID, ev.UserID, ev.CompanyID, ev.DoorID, ev.DoorCode, ev.RoomName,
		ev.Location, ev.EntryTime, ev.ExitTime, ev.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert access event: %w", err)
	}
	return nil
}

func (r *AccessEventRepo) list(ctx context.Context, query string, args ...any) ([]*entity.AccessEvent, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list access events: %w", err)
	}
	defer rows.Close()

	var list []*entity.AccessEvent
	for rows.Next() {
		var ev entity.AccessEvent
		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.CompanyID, &ev.DoorID, &ev.DoorCode, &ev.RoomName,
			&ev.Location, &ev.EntryTime, &ev.ExitTime, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan access event: %w", err)
		}
		list = append(list, &ev)
	}
	return list, rows.Err()
}

// ListByCompany últimos eventos de la empresa por hora de entrada.
func (r *AccessEventRepo) ListByCompany(ctx context.Context, companyID string, limit int) ([]*entity.AccessEvent, error) {
	return r.list(ctx, `SELECT `+accessEventColumns+` FROM access_events
		WHERE company_id = $1 ORDER BY entry_time DESC LIMIT NULLIF($2::int, 0)`, companyID, limit)
}

// ListRecent últimos eventos de todas las empresas.
func (r *AccessEventRepo) ListRecent(ctx context.Context, limit int) ([]*entity.AccessEvent, error) {
	return r.list(ctx, `SELECT `+accessEventColumns+` FROM access_events
		ORDER BY entry_time DESC LIMIT NULLIF($1::int, 0)`, limit)
}
