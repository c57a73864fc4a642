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
	_ repository.PaymentRepository = (*PaymentRepo)(nil)
	_ repository.AuditRepository   = (*AuditRepo)(nil)
)

// PaymentRepo implementación de PaymentRepository. amount es NUMERIC (codec pgx-shopspring-decimal).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador de pagos.
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

const paymentColumns = `id, order_id, company_request_id, company_id, amount, currency, payment_method,
	billing_first_name, billing_last_name, billing_phone, billing_email, billing_address, billing_city,
	billing_country, status, created_at, updated_at`

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	var p entity.Payment
	err := row.Scan(&p.ID, &p.OrderID, &p.CompanyRequestID, &p.CompanyID, &p.Amount, &p.Currency, &p.PaymentMethod,
		&p.BillingFirstName, &p.BillingLastName, &p.BillingPhone, &p.BillingEmail, &p.BillingAddress, &p.BillingCity,
		&p.BillingCountry, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un pago; order_id es único.
func (r *PaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	query := `INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query, p.ID, p.OrderID, p.CompanyRequestID, p.CompanyID, p.Amount, p.Currency, p.PaymentMethod,
		p.BillingFirstName, p.BillingLastName, p.BillingPhone, p.BillingEmail, p.BillingAddress, p.BillingCity,
		p.BillingCountry, p.Status, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return uniqueError(err, "insert payment", "orderId "+p.OrderID, map[string]error{
			"payments_order_id_key": domain.ErrDuplicate,
		})
	}
	return nil
}

// GetByOrderID obtiene un pago por orderId.
func (r *PaymentRepo) GetByOrderID(ctx context.Context, orderID string) (*entity.Payment, error) {
	p, err := scanPayment(r.q.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE order_id = $1`, orderID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return p, nil
}

// ExistsOrderID informa si el orderId ya está registrado.
func (r *PaymentRepo) ExistsOrderID(ctx context.Context, orderID string) (bool, error) {
	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM payments WHERE order_id = $1)`, orderID).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists payment: %w", err)
	}
	return exists, nil
}

// Update persiste estado y vínculo con la empresa.
func (r *PaymentRepo) Update(ctx context.Context, p *entity.Payment) error {
	cmd, err := r.q.Exec(ctx, `UPDATE payments SET status = $2, company_id = $3, updated_at = $4 WHERE id = $1`,
		p.ID, p.Status, p.CompanyID, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: pago %s", domain.ErrNotFound, p.ID)
	}
	return nil
}

// RelinkToCompany asigna companyID a los pagos de la solicitud.
func (r *PaymentRepo) RelinkToCompany(ctx context.Context, companyRequestID, companyID string) (int64, error) {
	cmd, err := r.q.Exec(ctx, `UPDATE payments SET company_id = $2, updated_at = now() WHERE company_request_id = $1`,
		companyRequestID, companyID)
	if err != nil {
		return 0, fmt.Errorf("relink payments: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// ListByCompany lista los pagos vinculados a la empresa, más recientes primero.
func (r *PaymentRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Payment, error) {
	rows, err := r.q.Query(ctx, `SELECT `+paymentColumns+` FROM payments WHERE company_id = $1 ORDER BY created_at DESC`, companyID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var list []*entity.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// AuditRepo bitácora de auditoría (solo append).
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el adaptador.
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// Append registra un evento de auditoría. metadata se guarda como JSONB.
func (r *AuditRepo) Append(ctx context.Context, ev *entity.AuditEvent) error {
	metadata := ev.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO audit_events (id, actor_id, company_id, action, target_id, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		ev.ID, ev.ActorID, ev.CompanyID, ev.Action, ev.TargetID, metadata, ev.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// ListByCompany últimos eventos de la empresa; companyID vacío devuelve todos.
func (r *AuditRepo) ListByCompany(ctx context.Context, companyID string, limit int) ([]*entity.AuditEvent, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, actor_id, company_id, action, target_id, metadata, created_at
		FROM audit_events WHERE ($1::text = '' OR company_id = $1)
		ORDER BY created_at DESC LIMIT NULLIF($2::int, 0)`, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var list []*entity.AuditEvent
	for rows.Next() {
		var ev entity.AuditEvent
		if err := rows.Scan(&ev.ID, &ev.ActorID, &ev.CompanyID, &ev.Action, &ev.TargetID, &ev.Metadata, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		list = append(list, &ev)
	}
	return list, rows.Err()
}
