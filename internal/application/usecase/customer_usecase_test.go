package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/privilege-pass-api/internal/application/dto"
	"github.com/jhoicas/privilege-pass-api/internal/application/usecase"
	"github.com/jhoicas/privilege-pass-api/internal/domain"
	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
	"github.com/jhoicas/privilege-pass-api/internal/testutil/memrepo"
	"github.com/jhoicas/privilege-pass-api/pkg/password"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newCustomerUC(t *testing.T) (*usecase.CustomerUseCase, *memrepo.Store) {
	t.Helper()
	st := memrepo.New()
	return usecase.NewCustomerUseCase(st.Customers(), st.Vouchers()), st
}

func createCustomer(t *testing.T, uc *usecase.CustomerUseCase, email string) *dto.CustomerResponse {
	t.Helper()
	c, err := uc.Create(context.Background(), dto.CreateCustomerRequest{
		Name:     "Ana Souza",
		Email:    email,
		Phone:    "21999998888",
		Password: "segredo123",
	})
	require.NoError(t, err)
	return c
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerCreate_AplicaValoresPorDefecto(t *testing.T) {
	uc, st := newCustomerUC(t)
	spend := decimal.NewFromInt(9999)

	c, err := uc.Create(context.Background(), dto.CreateCustomerRequest{
		Name:                 "Ana Souza",
		Email:                "  Ana@Example.COM ",
		Password:             "segredo123",
		TotalSpend:           &spend,
		LastPurchaseDate:     "2024-01-01",
		ExternalMembershipID: "DP-123",
		ActiveVouchers:       []dto.VoucherRequest{{ID: "v1", PackName: "Nacional 2", RemainingAccess: 2, TotalAccess: 2}},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "ana@example.com", c.Email)
	assert.True(t, c.TotalSpend.IsZero(), "el gasto inicial siempre es cero")
	assert.Equal(t, entity.NoPurchaseDate, c.LastPurchaseDate)
	assert.Equal(t, entity.PendingMembershipID, c.ExternalMembershipID)
	assert.Equal(t, entity.DefaultCustomerLocation, c.Location)
	assert.Empty(t, c.ActiveVouchers, "un alta nunca trae vouchers")
	assert.Contains(t, c.AvatarURL, "Ana")

	stored, err := st.Customers().GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.True(t, password.IsHash(stored.Password), "la contraseña se guarda hasheada")
}

func TestCustomerCreate_TelefonoFormateado(t *testing.T) {
	uc, _ := newCustomerUC(t)

	c := createCustomer(t, uc, "ana@example.com")
	assert.Equal(t, "21999998888", c.Phone)
	assert.Equal(t, "(21) 99999-8888", c.PhoneFormatted)

	sinTelefono, err := uc.Create(context.Background(), dto.CreateCustomerRequest{
		Name: "Bia", Email: "bia@example.com", Password: "segredo123",
	})
	require.NoError(t, err)
	assert.Empty(t, sinTelefono.PhoneFormatted)
}

func TestCustomerCreate_EmailDuplicado(t *testing.T) {
	uc, _ := newCustomerUC(t)
	createCustomer(t, uc, "ana@example.com")

	_, err := uc.Create(context.Background(), dto.CreateCustomerRequest{
		Name: "Otra Ana", Email: "ANA@example.com", Password: "segredo123",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCustomerCreate_ValidacionAntesDeEscribir(t *testing.T) {
	uc, st := newCustomerUC(t)

	_, err := uc.Create(context.Background(), dto.CreateCustomerRequest{Name: "Sin Email", Password: "segredo123"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")

	list, err := st.Customers().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerGetByEmail_IgnoraMayusculas(t *testing.T) {
	uc, _ := newCustomerUC(t)
	created := createCustomer(t, uc, "ana@example.com")

	got, err := uc.GetByEmail(context.Background(), " ANA@Example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestCustomerGetByEmail_Inexistente(t *testing.T) {
	uc, _ := newCustomerUC(t)

	_, err := uc.GetByEmail(context.Background(), "nadie@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerGetAll_FalloDeAlmacenamiento(t *testing.T) {
	uc, st := newCustomerUC(t)
	st.Fail = domain.NewStorageError("customers.list", assert.AnError)

	_, err := uc.GetAll(context.Background())
	assert.ErrorIs(t, err, domain.ErrStorage)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerUpdate_ParcialNoTocaOtrosCampos(t *testing.T) {
	uc, _ := newCustomerUC(t)
	c := createCustomer(t, uc, "ana@example.com")

	_, err := uc.Update(context.Background(), c.ID, dto.UpdateCustomerRequest{Location: strPtr("Rio de Janeiro")})
	require.NoError(t, err)

	got, err := uc.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rio de Janeiro", got.Location)
	assert.Equal(t, c.Name, got.Name)
	assert.Equal(t, c.Phone, got.Phone)
	assert.Equal(t, c.Email, got.Email)
}

func TestCustomerUpdate_InsertaSoloVouchersNuevos(t *testing.T) {
	uc, _ := newCustomerUC(t)
	c := createCustomer(t, uc, "ana@example.com")
	ctx := context.Background()

	first := dto.VoucherRequest{ID: "v-1", PackName: "Nacional 2", RemainingAccess: 2, TotalAccess: 2}
	res, err := uc.Update(ctx, c.ID, dto.UpdateCustomerRequest{ActiveVouchers: []dto.VoucherRequest{first}})
	require.NoError(t, err)
	assert.Equal(t, []string{"v-1"}, res.InsertedVoucherIDs)

	// Reenviar el mismo voucher (con otros datos) junto a uno nuevo.
	changed := first
	changed.RemainingAccess = 0
	second := dto.VoucherRequest{ID: "v-2", PackName: "Internacional 1", RemainingAccess: 1, TotalAccess: 1}
	res, err = uc.Update(ctx, c.ID, dto.UpdateCustomerRequest{ActiveVouchers: []dto.VoucherRequest{changed, second}})
	require.NoError(t, err)
	assert.Equal(t, []string{"v-2"}, res.InsertedVoucherIDs)

	got, err := uc.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, got.ActiveVouchers, 2)
	assert.Equal(t, 2, got.ActiveVouchers[0].RemainingAccess, "un voucher existente no se modifica")
	assert.Equal(t, string(entity.VoucherActive), got.ActiveVouchers[1].Status)
	assert.NotEmpty(t, got.ActiveVouchers[1].Code, "el código se genera si falta")
}

func TestCustomerUpdate_VoucherInvalidoNoEscribeNada(t *testing.T) {
	uc, _ := newCustomerUC(t)
	c := createCustomer(t, uc, "ana@example.com")

	_, err := uc.Update(context.Background(), c.ID, dto.UpdateCustomerRequest{
		Name:           strPtr("Nome Novo"),
		ActiveVouchers: []dto.VoucherRequest{{ID: "v-1", PackName: "Nacional 2", RemainingAccess: 3, TotalAccess: 2}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := uc.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.Name, got.Name)
	assert.Empty(t, got.ActiveVouchers)
}

func TestCustomerUpdate_Inexistente(t *testing.T) {
	uc, _ := newCustomerUC(t)

	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateCustomerRequest{Name: strPtr("X")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerDelete_BorraSusVouchers(t *testing.T) {
	uc, st := newCustomerUC(t)
	c := createCustomer(t, uc, "ana@example.com")
	_, err := uc.Update(context.Background(), c.ID, dto.UpdateCustomerRequest{
		ActiveVouchers: []dto.VoucherRequest{{ID: "v-1", PackName: "Nacional 1", RemainingAccess: 1, TotalAccess: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), c.ID))

	_, err = st.Vouchers().GetByID(context.Background(), "v-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(context.Background(), c.ID), domain.ErrNotFound)
}
