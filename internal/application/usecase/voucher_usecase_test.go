package usecase_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/privilege-pass-api/internal/application/dto"
	"github.com/jhoicas/privilege-pass-api/internal/application/usecase"
	"github.com/jhoicas/privilege-pass-api/internal/domain"
	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
	"github.com/jhoicas/privilege-pass-api/internal/testutil/memrepo"
	"github.com/jhoicas/privilege-pass-api/pkg/generator"
)

// fakePDF devuelve un documento fijo y recuerda el voucher pedido.
type fakePDF struct {
	voucherID string
}

func (f *fakePDF) GenerateVoucherPDF(_ context.Context, v *entity.Voucher, _ *entity.Customer) ([]byte, error) {
	f.voucherID = v.ID
	return []byte("%PDF-fake"), nil
}

func newVoucherUC(t *testing.T) (*usecase.VoucherUseCase, *usecase.CustomerUseCase, *fakePDF) {
	t.Helper()
	st := memrepo.New()
	pdf := &fakePDF{}
	return usecase.NewVoucherUseCase(st.Vouchers(), st.Customers(), pdf),
		usecase.NewCustomerUseCase(st.Customers(), st.Vouchers()), pdf
}

func TestVoucherCreate_ClienteInexistente(t *testing.T) {
	uc, _, _ := newVoucherUC(t)

	_, err := uc.Create(context.Background(), "no-existe", dto.VoucherRequest{PackName: "Nacional 1", RemainingAccess: 1, TotalAccess: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVoucherCreate_SinIDUsaIDDePedido(t *testing.T) {
	uc, customers, _ := newVoucherUC(t)
	c := createCustomer(t, customers, "ana@example.com")

	v, err := uc.Create(context.Background(), c.ID, dto.VoucherRequest{PackName: "Nacional 1", RemainingAccess: 1, TotalAccess: 1})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^PP-\d{13}-[0-9A-Z]{6}-`+regexp.QuoteMeta(c.ID)+`$`), v.ID)

	own, err := uc.Create(context.Background(), c.ID, dto.VoucherRequest{ID: "v-propio", PackName: "Nacional 1", RemainingAccess: 1, TotalAccess: 1})
	require.NoError(t, err)
	assert.Equal(t, "v-propio", own.ID)
}

func TestVoucherRedeem_ConsumeHastaAgotar(t *testing.T) {
	uc, customers, _ := newVoucherUC(t)
	c := createCustomer(t, customers, "ana@example.com")
	ctx := context.Background()

	v, err := uc.Create(ctx, c.ID, dto.VoucherRequest{PackName: "Nacional 2", RemainingAccess: 2, TotalAccess: 2})
	require.NoError(t, err)
	assert.Len(t, v.Code, generator.VoucherCodeLength)

	got, err := uc.Redeem(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.RemainingAccess)
	assert.Equal(t, string(entity.VoucherActive), got.Status)

	got, err = uc.Redeem(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.RemainingAccess)
	assert.Equal(t, string(entity.VoucherRedeemed), got.Status)

	_, err = uc.Redeem(ctx, v.ID)
	assert.ErrorIs(t, err, domain.ErrNoAccessLeft)
}

func TestVoucherUpdate_RestantesNoSuperanTotal(t *testing.T) {
	uc, customers, _ := newVoucherUC(t)
	c := createCustomer(t, customers, "ana@example.com")
	v, err := uc.Create(context.Background(), c.ID, dto.VoucherRequest{PackName: "Nacional 2", RemainingAccess: 1, TotalAccess: 2})
	require.NoError(t, err)

	five := 5
	assert.ErrorIs(t, uc.Update(context.Background(), v.ID, dto.UpdateVoucherRequest{RemainingAccess: &five}), domain.ErrInvalidInput)

	bad := "Perdido"
	assert.ErrorIs(t, uc.Update(context.Background(), v.ID, dto.UpdateVoucherRequest{Status: &bad}), domain.ErrInvalidInput)

	two := 2
	assert.NoError(t, uc.Update(context.Background(), v.ID, dto.UpdateVoucherRequest{RemainingAccess: &two}))
}

func TestVoucherPDF_SoloVouchersPropios(t *testing.T) {
	uc, customers, pdf := newVoucherUC(t)
	ana := createCustomer(t, customers, "ana@example.com")
	bia := createCustomer(t, customers, "bia@example.com")
	v, err := uc.Create(context.Background(), ana.ID, dto.VoucherRequest{PackName: "Nacional 1", RemainingAccess: 1, TotalAccess: 1})
	require.NoError(t, err)

	doc, err := uc.PDF(context.Background(), ana.ID, v.ID)
	require.NoError(t, err)
	assert.Equal(t, v.ID, pdf.voucherID)
	assert.NotEmpty(t, doc)

	_, err = uc.PDF(context.Background(), bia.ID, v.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
