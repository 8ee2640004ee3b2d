package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/privilege-pass-api/internal/application/auth"
	"github.com/jhoicas/privilege-pass-api/internal/application/dto"
	"github.com/jhoicas/privilege-pass-api/internal/application/usecase"
	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
	"github.com/jhoicas/privilege-pass-api/internal/domain/session"
	"github.com/jhoicas/privilege-pass-api/internal/infrastructure/cache"
	apphttp "github.com/jhoicas/privilege-pass-api/internal/interfaces/http"
	"github.com/jhoicas/privilege-pass-api/internal/testutil/memrepo"
	pkgjwt "github.com/jhoicas/privilege-pass-api/pkg/jwt"
	"github.com/jhoicas/privilege-pass-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type nopPDF struct{}

func (nopPDF) GenerateVoucherPDF(context.Context, *entity.Voucher, *entity.Customer) ([]byte, error) {
	return []byte("%PDF-1.4"), nil
}

type nopSender struct{}

func (nopSender) Send(_ context.Context, recipients []string, _, _ string) (int, error) {
	return len(recipients), nil
}

// buildRouterApp arma la API completa sobre repositorios en memoria.
func buildRouterApp(t *testing.T) (*fiber.App, *memrepo.Store) {
	t.Helper()
	st := memrepo.New()
	sessions := cache.NewSessionStore(cache.NewMemory())

	customerUC := usecase.NewCustomerUseCase(st.Customers(), st.Vouchers())
	partnerUC := usecase.NewPartnerUseCase(st.Partners())
	productUC := usecase.NewProductUseCase(st.Products())
	benefitUC := usecase.NewBenefitUseCase(st.Benefits())
	faqUC := usecase.NewFAQUseCase(st.FAQ())
	marketingUC := usecase.NewMarketingUseCase(st.Marketing())
	transactionUC := usecase.NewTransactionUseCase(st.Transactions(), st.Partners())
	campaignUC := usecase.NewEmailCampaignUseCase(st.Campaigns(), st.Customers(), st.Partners(), nopSender{})
	adminUC := usecase.NewAdminUseCase(st.Admin())

	app := fiber.New()
	app.Use(apphttp.RequestID())
	app.Use(apphttp.RequestLogger(logger.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(st.Admin(), st.Partners(), st.Customers(), customerUC, partnerUC, sessions,
			auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}, session.DefaultMarkers),
		CustomerUC:    customerUC,
		VoucherUC:     usecase.NewVoucherUseCase(st.Vouchers(), st.Customers(), nopPDF{}),
		PartnerUC:     partnerUC,
		ProductUC:     productUC,
		BenefitUC:     benefitUC,
		FAQUC:         faqUC,
		MarketingUC:   marketingUC,
		TransactionUC: transactionUC,
		CampaignUC:    campaignUC,
		AdminUC:       adminUC,
		BootstrapUC: usecase.NewBootstrapUseCase(customerUC, partnerUC, productUC, benefitUC, faqUC,
			marketingUC, transactionUC, campaignUC, adminUC),
		Sessions:  sessions,
		JWTSecret: testJWTSecret,
		AnonKey:   testAnonKey,
		WhatsApp:  "5521999999999",
	})
	return app, st
}

// call lanza una petición con apikey y, si token no es vacío, con Bearer.
func call(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("apikey", testAnonKey)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func adminToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, "adm-1", "dono@example.com", "admin", testIssuer, testExpMin)
	require.NoError(t, err)
	return tok
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_ApiKeyObligatoria(t *testing.T) {
	app, _ := buildRouterApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/products", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	assert.Equal(t, http.StatusOK, call(t, app, http.MethodGet, "/api/products", "", nil).StatusCode)
}

func TestRouter_CicloDeSesionDelCliente(t *testing.T) {
	app, _ := buildRouterApp(t)

	resp := call(t, app, http.MethodPost, "/api/auth/signup", "", dto.SignUpRequest{
		Name: "Ana Souza", Email: "ana@example.com", Password: "segredo123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/auth/signin", "", dto.SignInRequest{Email: "ANA@example.com", Password: "segredo123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sess := decode[dto.SessionResponse](t, resp)
	assert.Equal(t, "customer", sess.Role)

	resp = call(t, app, http.MethodGet, "/api/me", sess.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	me := decode[dto.CustomerResponse](t, resp)
	assert.Equal(t, "ana@example.com", me.Email)
	assert.NotNil(t, me.ActiveVouchers)

	assert.Equal(t, http.StatusForbidden, call(t, app, http.MethodGet, "/api/admin/bootstrap", sess.Token, nil).StatusCode)

	assert.Equal(t, http.StatusNoContent, call(t, app, http.MethodPost, "/api/auth/signout", sess.Token, nil).StatusCode)
	assert.Equal(t, http.StatusUnauthorized, call(t, app, http.MethodGet, "/api/me", sess.Token, nil).StatusCode)
}

func TestRouter_SignInInvalido(t *testing.T) {
	app, _ := buildRouterApp(t)

	resp := call(t, app, http.MethodPost, "/api/auth/signin", "", dto.SignInRequest{Email: "nadie@example.com", Password: "x"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_AdminErroresMapeados(t *testing.T) {
	app, _ := buildRouterApp(t)
	tok := adminToken(t)

	resp := call(t, app, http.MethodPost, "/api/admin/customers", tok, dto.CreateCustomerRequest{Name: "Sem Email", Password: "segredo123"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Contains(t, body.Fields, "email")

	resp = call(t, app, http.MethodGet, "/api/admin/customers/no-existe", tok, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	in := dto.CreateCustomerRequest{Name: "Ana", Email: "ana@example.com", Password: "segredo123"}
	require.Equal(t, http.StatusCreated, call(t, app, http.MethodPost, "/api/admin/customers", tok, in).StatusCode)
	assert.Equal(t, http.StatusConflict, call(t, app, http.MethodPost, "/api/admin/customers", tok, in).StatusCode)

	resp = call(t, app, http.MethodGet, "/api/admin/bootstrap", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	state := decode[dto.AppState](t, resp)
	assert.Len(t, state.Customers, 1)
}

func TestRouter_RedeemYPDF(t *testing.T) {
	app, _ := buildRouterApp(t)
	tok := adminToken(t)

	resp := call(t, app, http.MethodPost, "/api/auth/signup", "", dto.SignUpRequest{Name: "Ana", Email: "ana@example.com", Password: "segredo123"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	sess := decode[dto.SessionResponse](t, resp)

	resp = call(t, app, http.MethodPost, "/api/admin/customers/"+sess.User.ID+"/vouchers", tok,
		dto.VoucherRequest{PackName: "Nacional 1", RemainingAccess: 1, TotalAccess: 1})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	v := decode[dto.VoucherResponse](t, resp)

	resp = call(t, app, http.MethodGet, "/api/me/vouchers/"+v.ID+"/pdf", sess.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	assert.Equal(t, http.StatusOK, call(t, app, http.MethodPost, "/api/admin/vouchers/"+v.ID+"/redeem", tok, nil).StatusCode)
	resp = call(t, app, http.MethodPost, "/api/admin/vouchers/"+v.ID+"/redeem", tok, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "NO_ACCESS_LEFT", decode[dto.ErrorResponse](t, resp).Code)
}

func TestRouter_RegistroDeAfiliadoEsPublico(t *testing.T) {
	app, _ := buildRouterApp(t)

	resp := call(t, app, http.MethodPost, "/api/partners/register", "", dto.CreatePartnerRequest{
		Name: "Carlos", Email: "carlos@example.com", Phone: "21988887777", Password: "segredo123",
		Category: string(entity.PartnerInfluencer), PixKey: "carlos@example.com", PixType: string(entity.PixEmail),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, string(entity.PartnerPending), decode[dto.PartnerResponse](t, resp).Status)

	// Sin token, el área de afiliados sigue protegida.
	assert.Equal(t, http.StatusUnauthorized, call(t, app, http.MethodGet, "/api/partner/transactions", "", nil).StatusCode)
}

func TestRouter_SoporteWhatsApp(t *testing.T) {
	app, _ := buildRouterApp(t)

	resp := call(t, app, http.MethodGet, "/api/support/whatsapp?text=Oi", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[map[string]string](t, resp)
	assert.Equal(t, "https://wa.me/5521999999999?text=Oi", body["url"])
}

func TestRouter_RequestIDEsULID(t *testing.T) {
	app, _ := buildRouterApp(t)

	resp := call(t, app, http.MethodGet, "/api/products", "", nil)
	assert.Regexp(t, regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`), resp.Header.Get(fiber.HeaderXRequestID))

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("apikey", testAnonKey)
	req.Header.Set(fiber.HeaderXRequestID, "req-del-cliente")
	own, err := app.Test(req, -1)
	require.NoError(t, err)
	defer own.Body.Close()
	assert.Equal(t, "req-del-cliente", own.Header.Get(fiber.HeaderXRequestID))
}

func TestRouter_CuponOcupadoEs409(t *testing.T) {
	app, _ := buildRouterApp(t)
	register := func(email string) *http.Response {
		return call(t, app, http.MethodPost, "/api/partners/register", "", dto.CreatePartnerRequest{
			Name: "Carlos", Email: email, Phone: "21988887777", Password: "segredo123",
			Category: string(entity.PartnerInfluencer), CouponCode: "VIP10",
			PixKey: email, PixType: string(entity.PixEmail),
		})
	}

	first := register("carlos@example.com")
	require.Equal(t, http.StatusCreated, first.StatusCode)
	assert.Equal(t, "(21) 98888-7777", decode[dto.PartnerResponse](t, first).PhoneFormatted)

	resp := register("outro@example.com")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "COUPON_TAKEN", decode[dto.ErrorResponse](t, resp).Code)
}
