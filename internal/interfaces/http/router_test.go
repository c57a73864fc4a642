package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/securepass-api/internal/application/access"
	"github.com/jhoicas/securepass-api/internal/application/analytics"
	"github.com/jhoicas/securepass-api/internal/application/auth"
	"github.com/jhoicas/securepass-api/internal/application/billing"
	"github.com/jhoicas/securepass-api/internal/application/ports"
	"github.com/jhoicas/securepass-api/internal/application/provisioning"
	"github.com/jhoicas/securepass-api/internal/application/tenancy"
	"github.com/jhoicas/securepass-api/internal/domain/entity"
	"github.com/jhoicas/securepass-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/securepass-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// App completa sobre el store en memoria
// ──────────────────────────────────────────────────────────────────────────────

const (
	superEmail    = "root@securepass.io"
	superPassword = "Sup3r#Secret"
)

type apiHarness struct {
	app *fiber.App
}

func newHarness(t *testing.T) *apiHarness {
	t.Helper()
	auth.HashCost = bcrypt.MinCost
	ctx := context.Background()
	store := memory.NewStore()
	repos := store.Repositories()

	hash, err := auth.HashPassword(superPassword)
	require.NoError(t, err)
	require.NoError(t, repos.AdminUsers.Create(ctx, &entity.AdminUser{
		ID: "super-1", FirstName: "Root", LastName: "Ops", Email: superEmail,
		PasswordHash: hash, Role: entity.RoleSuperAdmin, CreatedAt: time.Now(),
	}))

	log := zerolog.Nop()
	effects := ports.Effects{Log: log}
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log)})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:           auth.NewAuthUseCase(repos, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		CompanyUC:        tenancy.NewCompanyUseCase(repos, store, log),
		CompanyRequestUC: tenancy.NewCompanyRequestUseCase(repos, store, effects, log),
		TrialRequestUC:   tenancy.NewTrialRequestUseCase(repos.TrialRequests),
		AdminUC:          provisioning.NewAdminUseCase(store, effects),
		UserUC:           provisioning.NewUserUseCase(repos, store, effects),
		DoorUC:           access.NewDoorUseCase(repos),
		PermissionUC:     access.NewPermissionUseCase(repos, store, effects, log),
		AccessLogUC:      access.NewAccessLogUseCase(repos, nil),
		PaymentUC:        billing.NewPaymentUseCase(repos, store, effects, nil, log),
		DashboardUC:      analytics.NewDashboardUseCase(repos.Metrics),
		DirectoryUC:      analytics.NewDirectoryUseCase(repos),
		JWTSecret:        testJWTSecret,
	})
	return &apiHarness{app: app}
}

func (h *apiHarness) call(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()
	status, raw := h.do(t, method, path, token, body)
	out := map[string]any{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return status, out
}

// callList igual que call para respuestas que son un arreglo JSON.
func (h *apiHarness) callList(t *testing.T, method, path, token string) (int, []map[string]any) {
	t.Helper()
	status, raw := h.do(t, method, path, token, nil)
	var out []map[string]any
	if len(raw) > 0 && raw[0] == '[' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return status, out
}

func (h *apiHarness) do(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := h.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func (h *apiHarness) login(t *testing.T, path, email, password string) string {
	t.Helper()
	status, body := h.call(t, http.MethodPost, path, "", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusOK, status, body)
	return body["token"].(string)
}

// onboard recorre alta de solicitud, aprobación y login del Admin. Devuelve tokens y companyId.
func (h *apiHarness) onboard(t *testing.T) (superTok, adminTok, companyID string) {
	t.Helper()
	status, body := h.call(t, http.MethodPost, "/api/guest/create-company-request", "", map[string]any{
		"name": "Acme", "address": "Calle 1", "packageType": entity.PackageStarter,
		"admins": []map[string]string{{"firstName": "Ana", "lastName": "Ruiz", "email": "Ana@Acme.co"}},
	})
	require.Equal(t, http.StatusCreated, status, body)
	request := body["companyRequest"].(map[string]any)
	requestID := request["_id"].(string)
	candidateID := request["admins"].([]any)[0].(map[string]any)["_id"].(string)

	superTok = h.login(t, "/api/auth/admin/login", superEmail, superPassword)
	status, body = h.call(t, http.MethodPatch, "/api/admin/company-request/"+requestID+"/status", superTok, map[string]any{
		"status": "Approve", "selectedAdmins": []string{candidateID},
	})
	require.Equal(t, http.StatusOK, status, body)
	companyID = body["company"].(map[string]any)["_id"].(string)

	adminTok = h.login(t, "/api/auth/admin/login", "ana@acme.co", auth.DefaultAdminPassword("Ana"))
	return superTok, adminTok, companyID
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujos
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_OnboardingToAccessGrant(t *testing.T) {
	h := newHarness(t)
	superTok, adminTok, companyID := h.onboard(t)

	status, body := h.call(t, http.MethodPost, "/api/admin/add-location", superTok, map[string]string{"companyId": companyID, "location": "HQ"})
	require.Equal(t, http.StatusOK, status, body)

	status, body = h.call(t, http.MethodPost, "/api/doors", adminTok, map[string]string{"doorCode": "D-101", "roomName": "Lab", "location": "HQ"})
	require.Equal(t, http.StatusCreated, status, body)
	doorID := body["_id"].(string)

	status, body = h.call(t, http.MethodPost, "/api/doors", adminTok, map[string]string{"doorCode": "D-102", "roomName": "Lab", "location": "Sede Sur"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])

	status, body = h.call(t, http.MethodPost, "/api/users/register", adminTok, map[string]string{
		"firstName": "Luis", "lastName": "Gómez", "email": "luis@acme.co", "password": "Luis#2026", "userId": "E-1",
	})
	require.Equal(t, http.StatusCreated, status, body)
	userID := body["_id"].(string)

	status, body = h.call(t, http.MethodPost, "/api/permission-requests/make", adminTok, map[string]string{
		"user": userID, "door": doorID, "date": "2026-12-01", "inTime": "08:00", "outTime": "12:00",
	})
	require.Equal(t, http.StatusCreated, status, body)
	assert.Equal(t, entity.RequestStatusApproved, body["status"])

	status, body = h.call(t, http.MethodGet, "/api/users/"+userID, adminTok, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["doorAccess"], 1)

	userTok := h.login(t, "/api/auth/user/login", "luis@acme.co", "Luis#2026")
	status, body = h.call(t, http.MethodGet, "/api/auth/me", userTok, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, entity.RoleUser, body["role"])
	assert.Equal(t, "luis@acme.co", body["email"])

	status, _ = h.call(t, http.MethodGet, "/api/users", userTok, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestAPI_RoleGuards(t *testing.T) {
	h := newHarness(t)
	_, adminTok, _ := h.onboard(t)

	status, body := h.call(t, http.MethodGet, "/api/admin/companies", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "MISSING_TOKEN", body["code"])

	status, body = h.call(t, http.MethodGet, "/api/admin/companies", adminTok, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", body["code"])
}

func TestAPI_ErrorMapping(t *testing.T) {
	h := newHarness(t)
	superTok, adminTok, _ := h.onboard(t)

	status, body := h.call(t, http.MethodGet, "/api/doors/no-existe", adminTok, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])

	status, body = h.call(t, http.MethodPut, "/api/payment/succes/0000000000000000", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])

	status, body = h.call(t, http.MethodPatch, "/api/admin/company-request/x/status", superTok, map[string]string{"status": "Maybe"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_STATUS", body["code"])

	status, body = h.call(t, http.MethodPost, "/api/auth/admin/login", "", map[string]string{"email": superEmail, "password": "mala"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", body["code"])
}

func TestAPI_TrialRequestDuplicateEmail(t *testing.T) {
	h := newHarness(t)
	in := map[string]string{"companyName": "Beta", "address": "Av 2", "firstName": "Eva", "lastName": "Paz", "email": "eva@beta.co"}

	status, _ := h.call(t, http.MethodPost, "/api/guest/trial-requests", "", in)
	require.Equal(t, http.StatusCreated, status)

	status, body := h.call(t, http.MethodPost, "/api/guest/trial-requests", "", in)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "EMAIL_EXISTS", body["code"])

	status, _ = h.call(t, http.MethodGet, "/api/guest/trial-requests?page=1&limit=5", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	superTok := h.login(t, "/api/auth/admin/login", superEmail, superPassword)
	status, body = h.call(t, http.MethodGet, "/api/guest/trial-requests?page=1&limit=5", superTok, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"], 1)

	status, body = h.call(t, http.MethodGet, "/api/guest/trial-requests?page=9223372036854775807&limit=100", superTok, nil)
	require.Equal(t, http.StatusOK, status, body)
	assert.Empty(t, body["data"])
}

func TestAPI_CompanyRequestManagementIsSuperAdminOnly(t *testing.T) {
	h := newHarness(t)
	superTok, adminTok, _ := h.onboard(t)

	status, body := h.call(t, http.MethodPost, "/api/guest/create-company-request", "", map[string]any{
		"name": "Beta", "address": "Av 2", "packageType": entity.PackageStarter,
		"admins": []map[string]string{{"firstName": "Eva", "lastName": "Paz", "email": "eva@beta.co"}},
	})
	require.Equal(t, http.StatusCreated, status, body)
	requestPath := "/api/guest/company-request/" + body["companyRequest"].(map[string]any)["_id"].(string)

	status, _ = h.call(t, http.MethodGet, requestPath, "", nil)
	assert.Equal(t, http.StatusOK, status)

	for _, anonymous := range []struct{ method, path string }{
		{http.MethodGet, "/api/guest/company-requests"},
		{http.MethodPut, requestPath},
		{http.MethodDelete, requestPath},
	} {
		status, body = h.call(t, anonymous.method, anonymous.path, "", map[string]string{"name": "Gamma"})
		assert.Equal(t, http.StatusUnauthorized, status, anonymous.method+" "+anonymous.path)
		assert.Equal(t, "MISSING_TOKEN", body["code"])
	}

	status, _ = h.call(t, http.MethodDelete, requestPath, adminTok, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = h.call(t, http.MethodGet, "/api/guest/company-requests", superTok, nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = h.call(t, http.MethodDelete, requestPath, superTok, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestAPI_SuperAdminDashboardAndDirectory(t *testing.T) {
	h := newHarness(t)
	superTok, adminTok, _ := h.onboard(t)

	status, body := h.call(t, http.MethodPost, "/api/doors", adminTok, map[string]string{"doorCode": "D-101", "roomName": "Lab", "location": "HQ"})
	require.Equal(t, http.StatusCreated, status, body)
	status, body = h.call(t, http.MethodPost, "/api/users/register", adminTok, map[string]string{
		"firstName": "Luis", "lastName": "Gómez", "email": "luis@acme.co", "password": "Luis#2026", "userId": "E-1",
	})
	require.Equal(t, http.StatusCreated, status, body)
	status, body = h.call(t, http.MethodPost, "/api/guest/create-company-request", "", map[string]any{
		"name": "Beta", "address": "Av 2", "packageType": entity.PackageStarter,
		"admins": []map[string]string{{"firstName": "Eva", "lastName": "Paz", "email": "eva@beta.co"}},
	})
	require.Equal(t, http.StatusCreated, status, body)

	status, _ = h.call(t, http.MethodGet, "/api/admin/dashboard", adminTok, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, body = h.call(t, http.MethodGet, "/api/admin/dashboard", superTok, nil)
	require.Equal(t, http.StatusOK, status, body)
	assert.EqualValues(t, 1, body["totalUsersCount"])
	assert.EqualValues(t, 2, body["totalAdminUsersCount"])
	assert.EqualValues(t, 1, body["totalCompaniesCount"])
	assert.EqualValues(t, 1, body["totalDoorsCount"])
	assert.EqualValues(t, 0, body["totalHistoriesCount"])
	assert.EqualValues(t, 1, body["totalPendingRequestCount"])
	assert.EqualValues(t, 0, body["totalRejectedRequestCount"])
	assert.EqualValues(t, 0, body["totalPaidRequestCount"])

	status, users := h.callList(t, http.MethodGet, "/api/admin/all-users", superTok)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, users, 1)
	assert.Equal(t, "Acme", users[0]["companyName"])
	assert.Equal(t, "Ana Ruiz", users[0]["adminName"])
	assert.Equal(t, "luis@acme.co", users[0]["email"])

	status, doors := h.callList(t, http.MethodGet, "/api/admin/all-doors", superTok)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, doors, 1)
	assert.Equal(t, "D-101", doors[0]["doorCode"])
	assert.Equal(t, "Acme", doors[0]["companyName"])
	assert.Equal(t, "Ana Ruiz", doors[0]["adminName"])

	_, me := h.call(t, http.MethodGet, "/api/auth/me", adminTok, nil)
	status, users = h.callList(t, http.MethodGet, "/api/admin/admin-users/"+me["_id"].(string)+"/users", superTok)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, users, 1)
	assert.Equal(t, "E-1", users[0]["userId"])

	status, body = h.call(t, http.MethodGet, "/api/admin/admin-users/nadie/users", superTok, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestAPI_PaymentCheckoutAndCallback(t *testing.T) {
	h := newHarness(t)
	_, adminTok, companyID := h.onboard(t)

	status, body := h.call(t, http.MethodGet, "/api/payment/generateid", adminTok, nil)
	require.Equal(t, http.StatusOK, status, body)
	orderID := body["uniquePaymentId"].(string)
	require.Len(t, orderID, 16)

	checkout := map[string]any{
		"paymentID": orderID, "companyId": companyID, "amount": "150.00", "currency": "usd",
		"paymentMethod": "card", "billingFirstName": "Ana", "billingLastName": "Ruiz",
		"billingPhone": "3001234567", "billingEmail": "ana@acme.co", "billingAddress": "Calle 1",
		"billingCity": "Bogotá", "billingCountry": "CO",
	}
	status, body = h.call(t, http.MethodPost, "/api/payment", adminTok, checkout)
	require.Equal(t, http.StatusCreated, status, body)

	checkout["companyId"] = "otra-empresa"
	status, body = h.call(t, http.MethodPost, "/api/payment", adminTok, checkout)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "TENANCY_MISMATCH", body["code"])

	status, body = h.call(t, http.MethodGet, "/api/payment/order/"+orderID, adminTok, nil)
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, entity.PaymentStatusPending, body["status"])
	assert.Equal(t, "USD", body["currency"])

	// Callback de la pasarela sin token.
	status, body = h.call(t, http.MethodPut, "/api/payment/succes/"+orderID, "", nil)
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, companyID, body["companyId"])

	status, body = h.call(t, http.MethodGet, "/api/payment/"+companyID, adminTok, nil)
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, true, body["payment"])
	require.Len(t, body["payments"], 1)
	assert.Equal(t, entity.PaymentStatusCompleted, body["payments"].([]any)[0].(map[string]any)["status"])
}
