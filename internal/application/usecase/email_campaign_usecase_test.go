package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/privilege-pass-api/internal/application/dto"
	"github.com/jhoicas/privilege-pass-api/internal/application/usecase"
	"github.com/jhoicas/privilege-pass-api/internal/domain"
	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
	"github.com/jhoicas/privilege-pass-api/internal/testutil/memrepo"
	"github.com/jhoicas/privilege-pass-api/pkg/format"
)

// fakeSender registra los destinatarios y rechaza los que estén en reject. Con err, el envío
// termina con ese error después de contar los aceptados.
type fakeSender struct {
	got    []string
	reject map[string]bool
	err    error
}

func (f *fakeSender) Send(_ context.Context, recipients []string, _, _ string) (int, error) {
	f.got = append(f.got, recipients...)
	n := 0
	for _, r := range recipients {
		if !f.reject[r] {
			n++
		}
	}
	return n, f.err
}

func newCampaignUC(t *testing.T) (*usecase.EmailCampaignUseCase, *memrepo.Store, *fakeSender) {
	t.Helper()
	st := memrepo.New()
	sender := &fakeSender{reject: map[string]bool{}}
	return usecase.NewEmailCampaignUseCase(st.Campaigns(), st.Customers(), st.Partners(), sender), st, sender
}

func TestCampaignSend_TodosSinDuplicados(t *testing.T) {
	uc, st, sender := newCampaignUC(t)
	customers := usecase.NewCustomerUseCase(st.Customers(), st.Vouchers())
	createCustomer(t, customers, "ana@example.com")
	createCustomer(t, customers, "bia@example.com")
	activePartner(t, st, "ana", entity.CommissionPercentage, 10) // email ana@example.com
	_, err := usecase.NewPartnerUseCase(st.Partners()).Create(context.Background(), partnerRequest("pendente@example.com"))
	require.NoError(t, err)
	sender.reject["bia@example.com"] = true

	c, err := uc.Send(context.Background(), dto.SendEmailCampaignRequest{
		Subject: "Novidades", Content: "<p>Olá</p>", RecipientType: string(entity.RecipientsAll),
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"ana@example.com", "bia@example.com"}, sender.got,
		"un email repetido recibe un solo mensaje y los afiliados no activos quedan fuera")
	assert.Equal(t, 1, c.SentCount)
	assert.Equal(t, string(entity.CampaignSent), c.Status)
	require.NotNil(t, c.SentDate)
	assert.Equal(t, format.DateTime(*c.SentDate), c.SentDateLabel)

	list, err := uc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCampaignSend_SoloAfiliados(t *testing.T) {
	uc, st, sender := newCampaignUC(t)
	createCustomer(t, usecase.NewCustomerUseCase(st.Customers(), st.Vouchers()), "ana@example.com")
	activePartner(t, st, "CARLOS", entity.CommissionPercentage, 10)

	_, err := uc.Send(context.Background(), dto.SendEmailCampaignRequest{
		Subject: "Comissões", Content: "<p>Pago</p>", RecipientType: string(entity.RecipientsPartners),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"carlos@example.com"}, sender.got)
}

func TestCampaignCreate_BorradorPorDefecto(t *testing.T) {
	uc, _, sender := newCampaignUC(t)

	c, err := uc.Create(context.Background(), dto.CreateEmailCampaignRequest{
		Subject: "Rascunho", Content: "<p>...</p>", RecipientType: string(entity.RecipientsCustomers),
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.CampaignDraft), c.Status)
	assert.Nil(t, c.SentDate)
	assert.Empty(t, c.SentDateLabel)
	assert.Empty(t, sender.got, "crear no envía")

	_, err = uc.Create(context.Background(), dto.CreateEmailCampaignRequest{
		Subject: "X", Content: "Y", RecipientType: "VIPS",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCampaignSend_EnvioCortadoGuardaParcial(t *testing.T) {
	uc, st, sender := newCampaignUC(t)
	customers := usecase.NewCustomerUseCase(st.Customers(), st.Vouchers())
	createCustomer(t, customers, "ana@example.com")
	createCustomer(t, customers, "bia@example.com")
	sender.err = context.Canceled

	_, err := uc.Send(context.Background(), dto.SendEmailCampaignRequest{
		Subject: "Novidades", Content: "<p>Olá</p>", RecipientType: string(entity.RecipientsCustomers),
	})
	assert.ErrorIs(t, err, context.Canceled)

	list, err := uc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1, "lo que ya salió queda registrado")
	assert.Equal(t, 2, list[0].SentCount)
}

func TestCampaignSend_FalloSinEnviosNoGuarda(t *testing.T) {
	uc, st, sender := newCampaignUC(t)
	createCustomer(t, usecase.NewCustomerUseCase(st.Customers(), st.Vouchers()), "ana@example.com")
	sender.reject["ana@example.com"] = true
	sender.err = errors.New("smtp dial: connection refused")

	_, err := uc.Send(context.Background(), dto.SendEmailCampaignRequest{
		Subject: "Novidades", Content: "<p>Olá</p>", RecipientType: string(entity.RecipientsCustomers),
	})
	require.Error(t, err)

	list, err := uc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}
