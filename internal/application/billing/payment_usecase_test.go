package billing_test

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/securepass-api/internal/application/billing"
	"github.com/jhoicas/securepass-api/internal/application/dto"
	"github.com/jhoicas/securepass-api/internal/application/ports"
	"github.com/jhoicas/securepass-api/internal/domain"
	"github.com/jhoicas/securepass-api/internal/domain/entity"
	"github.com/jhoicas/securepass-api/internal/domain/payment"
	"github.com/jhoicas/securepass-api/internal/domain/repository"
	"github.com/jhoicas/securepass-api/internal/infrastructure/memory"
)

// stubReserver responde según accept y cuenta las llamadas.
type stubReserver struct {
	accept bool
	calls  int
}

func (r *stubReserver) Reserve(context.Context, string) (bool, error) {
	r.calls++
	return r.accept, nil
}

type recordingEvents struct {
	mu     sync.Mutex
	events []ports.DomainEvent
}

func (e *recordingEvents) Publish(_ context.Context, ev ports.DomainEvent) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, ev)
	return nil
}

func newPayments(t *testing.T, reserver billing.OrderIDReserver) (*billing.PaymentUseCase, repository.Repositories, *recordingEvents) {
	t.Helper()
	store := memory.NewStore()
	events := &recordingEvents{}
	effects := ports.Effects{Events: events, Log: zerolog.Nop()}
	uc := billing.NewPaymentUseCase(store.Repositories(), store, effects, reserver, zerolog.Nop())
	return uc, store.Repositories(), events
}

func checkout(orderID string) dto.CreatePaymentInput {
	return dto.CreatePaymentInput{
		PaymentID:        orderID,
		CompanyRequestID: "req-1",
		Amount:           decimal.RequireFromString("49.90"),
		Currency:         "usd",
		PaymentMethod:    "card",
		BillingFirstName: "Ana",
		BillingLastName:  "Ruiz",
		BillingPhone:     "+57 300",
		BillingEmail:     "Ana@Acme.com",
		BillingAddress:   "Calle 1",
		BillingCity:      "Bogotá",
		BillingCountry:   "CO",
	}
}

// ─── GenerateOrderID ────────────────────────────────────────────────────────

func TestGenerateOrderID_Format(t *testing.T) {
	uc, _, _ := newPayments(t, nil)
	id, err := uc.GenerateOrderID(context.Background())
	require.NoError(t, err)
	assert.Regexp(t, `^\d{16}$`, id)
}

func TestGenerateOrderID_ExhaustsAfterCollisions(t *testing.T) {
	reserver := &stubReserver{accept: false}
	uc, _, _ := newPayments(t, reserver)

	_, err := uc.GenerateOrderID(context.Background())
	require.ErrorIs(t, err, domain.ErrGenerationExhausted)
	assert.Equal(t, payment.MaxOrderIDAttempts, reserver.calls)
}

func TestGenerateOrderID_ReservesCandidate(t *testing.T) {
	reserver := &stubReserver{accept: true}
	uc, _, _ := newPayments(t, reserver)
	uc.WithSuffixSource(func() int { return 777 })

	id, err := uc.GenerateOrderID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "777", id[13:])
	assert.Equal(t, 1, reserver.calls)
}

// ─── CreatePayment ──────────────────────────────────────────────────────────

func TestCreatePayment(t *testing.T) {
	uc, repos, _ := newPayments(t, nil)
	ctx := context.Background()

	out, err := uc.CreatePayment(ctx, checkout("1712345678901123"))
	require.NoError(t, err)
	assert.Equal(t, "1712345678901123", out.PaymentID)

	p, err := repos.Payments.GetByOrderID(ctx, "1712345678901123")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, entity.PaymentStatusPending, p.Status)
	assert.Equal(t, "USD", p.Currency)
	assert.Equal(t, "ana@acme.com", p.BillingEmail)

	_, err = uc.CreatePayment(ctx, checkout("1712345678901123"))
	assert.Error(t, err, "orderId duplicado")
}

func TestCreatePayment_Validation(t *testing.T) {
	uc, _, _ := newPayments(t, nil)

	in := checkout("1")
	in.BillingCity = ""
	in.Amount = decimal.Zero
	_, err := uc.CreatePayment(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "amount, billingCity")

	in = checkout("2")
	in.CompanyRequestID = ""
	_, err = uc.CreatePayment(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ─── PaymentSuccess ─────────────────────────────────────────────────────────

func TestPaymentSuccess_FlagsCompanyRequest(t *testing.T) {
	uc, repos, events := newPayments(t, nil)
	ctx := context.Background()
	require.NoError(t, repos.CompanyRequests.Create(ctx, &entity.CompanyRequest{ID: "req-1", Name: "Acme", Status: entity.RequestStatusPending}))
	_, err := uc.CreatePayment(ctx, checkout("1712345678901123"))
	require.NoError(t, err)

	_, err = uc.PaymentSuccess(ctx, "1712345678901123")
	require.NoError(t, err)

	req, _ := repos.CompanyRequests.GetByID(ctx, "req-1")
	assert.True(t, req.Payment)
	p, _ := repos.Payments.GetByOrderID(ctx, "1712345678901123")
	assert.Equal(t, entity.PaymentStatusCompleted, p.Status)
	require.Len(t, events.events, 1)
	assert.Equal(t, ports.EventPaymentCompleted, events.events[0].Name)
}

func TestPaymentSuccess_FlagsCompany(t *testing.T) {
	uc, repos, _ := newPayments(t, nil)
	ctx := context.Background()
	require.NoError(t, repos.Companies.Create(ctx, &entity.Company{ID: "c1", Name: "Acme", Status: entity.CompanyStatusActive}))
	in := checkout("1712345678901124")
	in.CompanyRequestID = ""
	in.CompanyID = "c1"
	_, err := uc.CreatePayment(ctx, in)
	require.NoError(t, err)

	out, err := uc.PaymentSuccess(ctx, "1712345678901124")
	require.NoError(t, err)
	assert.Equal(t, "c1", out.CompanyID)

	company, _ := repos.Companies.GetByID(ctx, "c1")
	assert.True(t, company.Payment)

	withPayments, err := uc.CompanyWithPayments(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, withPayments.Payments, 1)
	assert.Equal(t, entity.PaymentStatusCompleted, withPayments.Payments[0].Status)
}

func TestPaymentSuccess_NotFoundRollsBack(t *testing.T) {
	uc, repos, events := newPayments(t, nil)
	ctx := context.Background()

	_, err := uc.PaymentSuccess(ctx, "0000000000000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.CreatePayment(ctx, checkout("1712345678901125"))
	require.NoError(t, err)
	_, err = uc.PaymentSuccess(ctx, "1712345678901125")
	require.ErrorIs(t, err, domain.ErrNotFound, "ni empresa ni solicitud existen")

	p, _ := repos.Payments.GetByOrderID(ctx, "1712345678901125")
	assert.Equal(t, entity.PaymentStatusPending, p.Status)
	assert.Empty(t, events.events)
}
