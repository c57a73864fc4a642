package billing

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/securepass-api/internal/application/auth"
	"github.com/jhoicas/securepass-api/internal/application/dto"
	"github.com/jhoicas/securepass-api/internal/application/ports"
	"github.com/jhoicas/securepass-api/internal/domain"
	"github.com/jhoicas/securepass-api/internal/domain/entity"
	"github.com/jhoicas/securepass-api/internal/domain/payment"
	"github.com/jhoicas/securepass-api/internal/domain/repository"
)

// PaymentUseCase registro de pagos, generación de orderId y callback de la pasarela.
type PaymentUseCase struct {
	repos    repository.Repositories
	tx       ports.TxRunner
	effects  ports.Effects
	reserver OrderIDReserver
	log      zerolog.Logger
	now      func() time.Time
	suffix   payment.SuffixSource
}

// NewPaymentUseCase construye el caso de uso. reserver puede ser nil (solo chequeo de existencia).
func NewPaymentUseCase(repos repository.Repositories, tx ports.TxRunner, effects ports.Effects, reserver OrderIDReserver, log zerolog.Logger) *PaymentUseCase {
	return &PaymentUseCase{
		repos:    repos,
		tx:       tx,
		effects:  effects,
		reserver: reserver,
		log:      log,
		now:      time.Now,
		suffix:   payment.DefaultSuffix,
	}
}

// WithSuffixSource reemplaza la fuente del sufijo aleatorio del orderId.
func (uc *PaymentUseCase) WithSuffixSource(s payment.SuffixSource) *PaymentUseCase {
	uc.suffix = s
	return uc
}

// CreatePayment registra un checkout en estado pending. Todos los datos de facturación son obligatorios.
func (uc *PaymentUseCase) CreatePayment(ctx context.Context, in dto.CreatePaymentInput) (*dto.CreatePaymentResponse, error) {
	required := map[string]string{
		"paymentID":        in.PaymentID,
		"currency":         in.Currency,
		"paymentMethod":    in.PaymentMethod,
		"billingFirstName": in.BillingFirstName,
		"billingLastName":  in.BillingLastName,
		"billingPhone":     in.BillingPhone,
		"billingEmail":     in.BillingEmail,
		"billingAddress":   in.BillingAddress,
		"billingCity":      in.BillingCity,
		"billingCountry":   in.BillingCountry,
	}
	var missing []string
	for field, v := range required {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, field)
		}
	}
	if in.CompanyID == "" && in.CompanyRequestID == "" {
		missing = append(missing, "companyId")
	}
	if !in.Amount.IsPositive() {
		missing = append(missing, "amount")
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return nil, fmt.Errorf("%w: campos obligatorios: %s", domain.ErrValidation, strings.Join(missing, ", "))
	}

	now := uc.now()
	p := &entity.Payment{
		ID:               uuid.New().String(),
		OrderID:          strings.TrimSpace(in.PaymentID),
		CompanyRequestID: in.CompanyRequestID,
		CompanyID:        in.CompanyID,
		Amount:           in.Amount,
		Currency:         strings.ToUpper(strings.TrimSpace(in.Currency)),
		PaymentMethod:    in.PaymentMethod,
		BillingFirstName: in.BillingFirstName,
		BillingLastName:  in.BillingLastName,
		BillingPhone:     in.BillingPhone,
		BillingEmail:     auth.NormalizeEmail(in.BillingEmail),
		BillingAddress:   in.BillingAddress,
		BillingCity:      in.BillingCity,
		BillingCountry:   in.BillingCountry,
		Status:           entity.PaymentStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repos.Payments.Create(ctx, p); err != nil {
		return nil, err
	}
	return &dto.CreatePaymentResponse{Message: "Pago registrado correctamente", PaymentID: p.OrderID}, nil
}

// GenerateOrderID genera un orderId de 16 dígitos libre. Reintenta ante colisión hasta
// payment.MaxOrderIDAttempts veces y luego falla con ErrGenerationExhausted.
func (uc *PaymentUseCase) GenerateOrderID(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= payment.MaxOrderIDAttempts; attempt++ {
		candidate := payment.NewOrderID(uc.now(), uc.suffix)

		exists, err := uc.repos.Payments.ExistsOrderID(ctx, candidate)
		if err != nil {
			return "", err
		}
		if exists {
			uc.log.Debug().Int("attempt", attempt).Str("order_id", candidate).Msg("orderId en uso, reintentando")
			continue
		}
		if uc.reserver != nil {
			ok, err := uc.reserver.Reserve(ctx, candidate)
			if err != nil {
				return "", err
			}
			if !ok {
				uc.log.Debug().Int("attempt", attempt).Str("order_id", candidate).Msg("orderId reservado por otro proceso, reintentando")
				continue
			}
		}
		return candidate, nil
	}
	return "", fmt.Errorf("%w: %d intentos", domain.ErrGenerationExhausted, payment.MaxOrderIDAttempts)
}

// PaymentSuccess procesa el callback de la pasarela: el pago pasa a completed y se marca el flag
// payment de la empresa vinculada y, si existe, de la solicitud de empresa de origen.
func (uc *PaymentUseCase) PaymentSuccess(ctx context.Context, orderID string) (*dto.PaymentSuccessResponse, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, fmt.Errorf("%w: orderId es obligatorio", domain.ErrValidation)
	}

	var p *entity.Payment
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		// ── 1. Cargar pago ─────────────────────────────────────────────────
		var err error
		if p, err = repos.Payments.GetByOrderID(ctx, orderID); err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("%w: pago %s", domain.ErrNotFound, orderID)
		}

		// ── 2. Marcar completed ────────────────────────────────────────────
		now := uc.now()
		p.Status = entity.PaymentStatusCompleted
		p.UpdatedAt = now
		if err := repos.Payments.Update(ctx, p); err != nil {
			return err
		}

		// ── 3. Flag payment en Company y CompanyRequest ────────────────────
		flagged := false
		if p.CompanyID != "" {
			found, err := repos.Companies.SetPaymentFlag(ctx, p.CompanyID, true)
			if err != nil {
				return err
			}
			flagged = found
		}
		if p.CompanyRequestID != "" {
			req, err := repos.CompanyRequests.GetByID(ctx, p.CompanyRequestID)
			if err != nil {
				return err
			}
			if req != nil {
				if err := repos.CompanyRequests.SetPaymentFlag(ctx, req.ID, true); err != nil {
					return err
				}
				flagged = true
			}
		}
		if !flagged {
			return fmt.Errorf("%w: empresa del pago %s", domain.ErrNotFound, orderID)
		}

		return repos.Audit.Append(ctx, &entity.AuditEvent{
			ID:        uuid.New().String(),
			CompanyID: p.CompanyID,
			Action:    entity.AuditPaymentCompleted,
			TargetID:  p.ID,
			Metadata:  map[string]any{"order_id": p.OrderID, "amount": p.Amount.String(), "currency": p.Currency},
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("order_id", p.OrderID).Str("company_id", p.CompanyID).Msg("pago completado")
	uc.effects.Publish(ctx, ports.DomainEvent{
		Name:      ports.EventPaymentCompleted,
		CompanyID: p.CompanyID,
		SubjectID: p.OrderID,
		Data:      map[string]any{"amount": p.Amount.String(), "currency": p.Currency},
	})
	return &dto.PaymentSuccessResponse{Message: "Pago completado", OrderID: p.OrderID, CompanyID: p.CompanyID}, nil
}

// GetByOrderID devuelve un pago.
func (uc *PaymentUseCase) GetByOrderID(ctx context.Context, orderID string) (*dto.PaymentResponse, error) {
	p, err := uc.repos.Payments.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: pago %s", domain.ErrNotFound, orderID)
	}
	out := dto.FromPayment(p)
	return &out, nil
}

// CompanyWithPayments devuelve la empresa junto con sus pagos vinculados.
func (uc *PaymentUseCase) CompanyWithPayments(ctx context.Context, companyID string) (*dto.CompanyWithPaymentsResponse, error) {
	company, err := uc.repos.Companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("%w: empresa %s", domain.ErrNotFound, companyID)
	}
	payments, err := uc.repos.Payments.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := &dto.CompanyWithPaymentsResponse{
		CompanyResponse: dto.FromCompany(company, nil),
		Payments:        make([]dto.PaymentResponse, 0, len(payments)),
	}
	for _, p := range payments {
		out.Payments = append(out.Payments, dto.FromPayment(p))
	}
	return out, nil
}
