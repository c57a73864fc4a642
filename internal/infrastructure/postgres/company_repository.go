package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/securepass-api/internal/domain"
	"github.com/jhoicas/securepass-api/internal/domain/entity"
	"github.com/jhoicas/securepass-api/internal/domain/repository"
)

var (
	_ repository.CompanyRepository        = (*CompanyRepo)(nil)
	_ repository.CompanyRequestRepository = (*CompanyRequestRepo)(nil)
	_ repository.TrialRequestRepository   = (*TrialRequestRepo)(nil)
)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas. Pasar pool o tx.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, name, address, locations, admins, status, package, expired_date, payment, created_at, updated_at`

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(&c.ID, &c.Name, &c.Address, &c.Locations, &c.Admins, &c.Status, &c.Package,
		&c.ExpiredDate, &c.Payment, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Address, strs(c.Locations), strs(c.Admins), c.Status, c.Package,
		c.ExpiredDate, c.Payment, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	c, err := scanCompany(r.q.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// GetByNameAndAddress obtiene la empresa más reciente con ese nombre y dirección.
func (r *CompanyRepo) GetByNameAndAddress(ctx context.Context, name, address string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies
		WHERE name = $1 AND address = $2 ORDER BY created_at DESC LIMIT 1`
	c, err := scanCompany(r.q.QueryRow(ctx, query, name, address))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by name/address: %w", err)
	}
	return c, nil
}

// Update reemplaza los datos de la empresa.
func (r *CompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, address = $3, locations = $4, admins = $5, status = $6,
			package = $7, expired_date = $8, payment = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Address, strs(c.Locations), strs(c.Admins), c.Status,
		c.Package, c.ExpiredDate, c.Payment, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: empresa %s", domain.ErrNotFound, c.ID)
	}
	return nil
}

// List devuelve empresas con paginación, más recientes primero. limit 0 = sin límite.
func (r *CompanyRepo) List(ctx context.Context, limit, offset int) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies
		ORDER BY created_at DESC LIMIT NULLIF($1::int, 0) OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Delete elimina una empresa; las FKs en cascada borran admins, usuarios, puertas y solicitudes de permiso.
func (r *CompanyRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}

// SetPaymentFlag marca el flag payment.
func (r *CompanyRepo) SetPaymentFlag(ctx context.Context, id string, paid bool) (bool, error) {
	cmd, err := r.q.Exec(ctx, `UPDATE companies SET payment = $2, updated_at = now() WHERE id = $1`, id, paid)
	if err != nil {
		return false, fmt.Errorf("set company payment: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// DeactivateExpired pasa a inactive las empresas activas vencidas.
func (r *CompanyRepo) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE companies SET status = $1, updated_at = $3
		WHERE status = $2 AND expired_date IS NOT NULL AND expired_date <= $3`
	cmd, err := r.q.Exec(ctx, query, entity.CompanyStatusInactive, entity.CompanyStatusActive, now)
	if err != nil {
		return 0, fmt.Errorf("deactivate expired companies: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// CompanyRequestRepo implementación de CompanyRequestRepository. Los admins propuestos van en JSONB.
type CompanyRequestRepo struct {
	q Querier
}

// NewCompanyRequestRepository construye el adaptador.
func NewCompanyRequestRepository(q Querier) *CompanyRequestRepo {
	return &CompanyRequestRepo{q: q}
}

type requestAdminRow struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func toAdminRows(admins []entity.RequestAdmin) []requestAdminRow {
	out := make([]requestAdminRow, 0, len(admins))
	for _, a := range admins {
		out = append(out, requestAdminRow(a))
	}
	return out
}

const companyRequestColumns = `id, name, address, admins, status, package_type, payment, created_at, updated_at`

func scanCompanyRequest(row pgx.Row) (*entity.CompanyRequest, error) {
	var (
		req    entity.CompanyRequest
		admins []requestAdminRow
	)
	err := row.Scan(&req.ID, &req.Name, &req.Address, &admins, &req.Status, &req.PackageType,
		&req.Payment, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return nil, err
	}
	for _, a := range admins {
		req.Admins = append(req.Admins, entity.RequestAdmin(a))
	}
	return &req, nil
}

// Create persiste una solicitud de empresa.
func (r *CompanyRequestRepo) Create(ctx context.Context, req *entity.CompanyRequest) error {
	query := `INSERT INTO company_requests (` + companyRequestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query, req.ID, req.Name, req.Address, toAdminRows(req.Admins),
		req.Status, req.PackageType, req.Payment, req.CreatedAt, req.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert company request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID.
func (r *CompanyRequestRepo) GetByID(ctx context.Context, id string) (*entity.CompanyRequest, error) {
	return r.getOne(ctx, `SELECT `+companyRequestColumns+` FROM company_requests WHERE id = $1`, id)
}

// GetByIDForUpdate obtiene la solicitud y bloquea su fila; dos aprobaciones simultáneas quedan en serie.
func (r *CompanyRequestRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.CompanyRequest, error) {
	return r.getOne(ctx, `SELECT `+companyRequestColumns+` FROM company_requests WHERE id = $1 FOR UPDATE`, id)
}

func (r *CompanyRequestRepo) getOne(ctx context.Context, query, id string) (*entity.CompanyRequest, error) {
	req, err := scanCompanyRequest(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company request: %w", err)
	}
	return req, nil
}

// Update reemplaza la solicitud.
func (r *CompanyRequestRepo) Update(ctx context.Context, req *entity.CompanyRequest) error {
	query := `
		UPDATE company_requests SET name = $2, address = $3, admins = $4, status = $5,
			package_type = $6, payment = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, req.ID, req.Name, req.Address, toAdminRows(req.Admins),
		req.Status, req.PackageType, req.Payment, req.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update company request: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: solicitud de empresa %s", domain.ErrNotFound, req.ID)
	}
	return nil
}

// List devuelve todas las solicitudes, más recientes primero.
func (r *CompanyRequestRepo) List(ctx context.Context) ([]*entity.CompanyRequest, error) {
	rows, err := r.q.Query(ctx, `SELECT `+companyRequestColumns+` FROM company_requests ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list company requests: %w", err)
	}
	defer rows.Close()

	var list []*entity.CompanyRequest
	for rows.Next() {
		req, err := scanCompanyRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company request: %w", err)
		}
		list = append(list, req)
	}
	return list, rows.Err()
}

// Delete elimina una solicitud.
func (r *CompanyRequestRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM company_requests WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete company request: %w", err)
	}
	return nil
}

// SetPaymentFlag marca el flag payment de la solicitud.
func (r *CompanyRequestRepo) SetPaymentFlag(ctx context.Context, id string, paid bool) error {
	if _, err := r.q.Exec(ctx, `UPDATE company_requests SET payment = $2, updated_at = now() WHERE id = $1`, id, paid); err != nil {
		return fmt.Errorf("set company request payment: %w", err)
	}
	return nil
}

// TrialRequestRepo implementación de TrialRequestRepository.
type TrialRequestRepo struct {
	q Querier
}

// NewTrialRequestRepository construye el adaptador.
func NewTrialRequestRepository(q Querier) *TrialRequestRepo {
	return &TrialRequestRepo{q: q}
}

// Create persiste una solicitud de prueba; el email es único.
func (r *TrialRequestRepo) Create(ctx context.Context, t *entity.TrialRequest) error {
	query := `
		INSERT INTO trial_requests (id, company_name, address, first_name, last_name, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query, t.ID, t.CompanyName, t.Address, t.FirstName, t.LastName, t.Email, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return uniqueError(err, "insert trial request", t.Email, map[string]error{
			"trial_requests_email_key": domain.ErrDuplicate,
		})
	}
	return nil
}

// List devuelve solicitudes de prueba paginadas, más recientes primero.
func (r *TrialRequestRepo) List(ctx context.Context, limit, offset int) ([]*entity.TrialRequest, error) {
	query := `
		SELECT id, company_name, address, first_name, last_name, email, created_at, updated_at
		FROM trial_requests ORDER BY created_at DESC LIMIT NULLIF($1::int, 0) OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list trial requests: %w", err)
	}
	defer rows.Close()

	var list []*entity.TrialRequest
	for rows.Next() {
		var t entity.TrialRequest
		if err := rows.Scan(&t.ID, &t.CompanyName, &t.Address, &t.FirstName, &t.LastName, &t.Email, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan trial request: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Count total de solicitudes de prueba.
func (r *TrialRequestRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM trial_requests`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count trial requests: %w", err)
	}
	return n, nil
}
