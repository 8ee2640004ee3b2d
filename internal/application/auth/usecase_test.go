package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/privilege-pass-api/internal/application/auth"
	"github.com/jhoicas/privilege-pass-api/internal/application/dto"
	"github.com/jhoicas/privilege-pass-api/internal/application/usecase"
	"github.com/jhoicas/privilege-pass-api/internal/domain"
	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
	"github.com/jhoicas/privilege-pass-api/internal/domain/repository"
	"github.com/jhoicas/privilege-pass-api/internal/domain/session"
	"github.com/jhoicas/privilege-pass-api/internal/infrastructure/cache"
	"github.com/jhoicas/privilege-pass-api/internal/testutil/memrepo"
	"github.com/jhoicas/privilege-pass-api/pkg/jwt"
	"github.com/jhoicas/privilege-pass-api/pkg/password"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testSecret = "test-secret-key-for-unit-tests"

type fixture struct {
	uc       *auth.AuthUseCase
	st       *memrepo.Store
	sessions *cache.SessionStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := memrepo.New()
	sessions := cache.NewSessionStore(cache.NewMemory())
	uc := auth.NewAuthUseCase(
		st.Admin(), st.Partners(), st.Customers(),
		usecase.NewCustomerUseCase(st.Customers(), st.Vouchers()),
		usecase.NewPartnerUseCase(st.Partners()),
		sessions,
		auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "privilege-pass-test"},
		session.DefaultMarkers,
	)
	return &fixture{uc: uc, st: st, sessions: sessions}
}

func signIn(t *testing.T, f *fixture, email, pass string) (*dto.SessionResponse, error) {
	t.Helper()
	return f.uc.SignIn(context.Background(), dto.SignInRequest{Email: email, Password: pass})
}

func parse(t *testing.T, token string) *jwt.Claims {
	t.Helper()
	claims, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	return claims
}

// ──────────────────────────────────────────────────────────────────────────────
// SignUp
// ──────────────────────────────────────────────────────────────────────────────

func TestSignUp_CreaClienteYSesion(t *testing.T) {
	f := newFixture(t)

	res, err := f.uc.SignUp(context.Background(), dto.SignUpRequest{
		Name: "Ana Souza", Email: "Ana@Example.com", Password: "segredo123",
	})
	require.NoError(t, err)

	assert.Equal(t, string(session.RoleCustomer), res.Role)
	assert.Equal(t, "ana@example.com", res.User.Email)
	claims := parse(t, res.Token)
	assert.Equal(t, res.User.ID, claims.UserID)
	assert.Equal(t, string(session.RoleCustomer), claims.Role)

	_, err = f.uc.SignUp(context.Background(), dto.SignUpRequest{
		Name: "Ana Souza", Email: "ana@example.com", Password: "outra123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterPartner_ExigeContrasena(t *testing.T) {
	f := newFixture(t)
	in := dto.CreatePartnerRequest{
		Name: "Carlos", Email: "carlos@example.com", Phone: "21988887777",
		Category: string(entity.PartnerDriver), PixKey: "carlos@example.com", PixType: string(entity.PixEmail),
	}

	_, err := f.uc.RegisterPartner(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in.Password = "segredo123"
	p, err := f.uc.RegisterPartner(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, string(entity.PartnerPending), p.Status)

	_, err = f.uc.RegisterPartner(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterPartner_CuponOcupadoNoEsEmailDuplicado(t *testing.T) {
	f := newFixture(t)
	in := dto.CreatePartnerRequest{
		Name: "Carlos", Email: "carlos@example.com", Phone: "21988887777", Password: "segredo123",
		Category: string(entity.PartnerDriver), PixKey: "carlos@example.com", PixType: string(entity.PixEmail),
		CouponCode: "VIP10",
	}
	_, err := f.uc.RegisterPartner(context.Background(), in)
	require.NoError(t, err)

	in.Email = "luiza@example.com"
	in.PixKey = "luiza@example.com"
	_, err = f.uc.RegisterPartner(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrCouponTaken)
	assert.NotErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// SignIn
// ──────────────────────────────────────────────────────────────────────────────

func TestSignIn_RolSegunTabla(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	hash, err := password.Hash("segredo123")
	require.NoError(t, err)

	f.st.SetProfile(entity.AdminUser{ID: "adm-0", Name: "Dono", Email: "dono@example.com", Password: hash, Role: entity.AdminRoleAdmin})
	require.NoError(t, f.st.Admin().AddStaff(ctx, &entity.AdminUser{Name: "Suporte", Email: "suporte@example.com", Password: hash, Role: entity.AdminRoleSupport}))
	// Email con "admin" pero registrado como cliente: el rol sale de la tabla.
	require.NoError(t, f.st.Customers().Create(ctx, &entity.Customer{Name: "Cliente", Email: "admin.fan@example.com", Password: hash}))

	cases := []struct {
		email, role, uiRole string
	}{
		{"dono@example.com", "admin", "customer"},
		{"SUPORTE@example.com", "admin", "customer"},
		{"admin.fan@example.com", "customer", "admin"},
	}
	for _, tc := range cases {
		t.Run(tc.email, func(t *testing.T) {
			res, err := signIn(t, f, tc.email, "segredo123")
			require.NoError(t, err)
			assert.Equal(t, tc.role, res.Role)
			assert.Equal(t, tc.role, parse(t, res.Token).Role)
			assert.Equal(t, tc.uiRole, res.UIRole, "la heurística de email solo decide la pantalla")
		})
	}
}

func TestSignIn_AfiliadoBloqueado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	hash, err := password.Hash("segredo123")
	require.NoError(t, err)
	p := &entity.Partner{Name: "Carlos", Email: "carlos@example.com", Password: hash, CouponCode: "CARLOS", Status: entity.PartnerActive}
	require.NoError(t, f.st.Partners().Create(ctx, p))

	res, err := signIn(t, f, "carlos@example.com", "segredo123")
	require.NoError(t, err)
	assert.Equal(t, string(session.RolePartner), res.Role)

	blocked := entity.PartnerBlocked
	require.NoError(t, f.st.Partners().Update(ctx, p.ID, repository.PartnerPatch{Status: &blocked}))
	_, err = signIn(t, f, "carlos@example.com", "segredo123")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = signIn(t, f, "carlos@example.com", "errada")
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "con contraseña incorrecta no se revela el bloqueo")
}

func TestSignIn_CredencialesInvalidas(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.SignUp(context.Background(), dto.SignUpRequest{Name: "Ana", Email: "ana@example.com", Password: "segredo123"})
	require.NoError(t, err)

	_, err = signIn(t, f, "ana@example.com", "errada")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = signIn(t, f, "nadie@example.com", "segredo123")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSignIn_ContrasenaPlanaSeRehashea(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := &entity.Customer{Name: "Legado", Email: "legado@example.com", Password: "texto-plano"}
	require.NoError(t, f.st.Customers().Create(ctx, c))

	_, err := signIn(t, f, "legado@example.com", "texto-plano")
	require.NoError(t, err)

	stored, err := f.st.Customers().GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, password.IsHash(stored.Password))

	_, err = signIn(t, f, "legado@example.com", "texto-plano")
	assert.NoError(t, err, "la contraseña sigue funcionando después del re-hash")
}

// ──────────────────────────────────────────────────────────────────────────────
// SignOut / Session
// ──────────────────────────────────────────────────────────────────────────────

func TestSignOut_RevocaElToken(t *testing.T) {
	f := newFixture(t)
	res, err := f.uc.SignUp(context.Background(), dto.SignUpRequest{Name: "Ana", Email: "ana@example.com", Password: "segredo123"})
	require.NoError(t, err)
	claims := parse(t, res.Token)

	revoked, err := f.sessions.IsRevoked(context.Background(), claims.ID)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, f.uc.SignOut(context.Background(), claims))

	revoked, err = f.sessions.IsRevoked(context.Background(), claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestSession_DescribeClaims(t *testing.T) {
	f := newFixture(t)
	res, err := f.uc.SignUp(context.Background(), dto.SignUpRequest{Name: "Ana", Email: "ana@example.com", Password: "segredo123"})
	require.NoError(t, err)

	info := f.uc.Session(parse(t, res.Token))
	assert.Equal(t, res.User.ID, info.UserID)
	assert.Equal(t, "ana@example.com", info.Email)
	assert.Equal(t, "customer", info.Role)
	assert.WithinDuration(t, res.ExpiresAt, info.ExpiresAt, 2*time.Second)
}
