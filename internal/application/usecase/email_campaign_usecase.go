package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/privilege-pass-api/internal/application/dto"
	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
	"github.com/jhoicas/privilege-pass-api/internal/domain/repository"
)

// EmailCampaignUseCase campañas de email a socios y/o afiliados.
type EmailCampaignUseCase struct {
	repo      repository.EmailCampaignRepository
	customers repository.CustomerRepository
	partners  repository.PartnerRepository
	sender    CampaignSender
	now       func() time.Time
}

func NewEmailCampaignUseCase(
	repo repository.EmailCampaignRepository,
	customers repository.CustomerRepository,
	partners repository.PartnerRepository,
	sender CampaignSender,
) *EmailCampaignUseCase {
	return &EmailCampaignUseCase{repo: repo, customers: customers, partners: partners, sender: sender, now: time.Now}
}

// GetAll lista las campañas, la última enviada primero.
func (uc *EmailCampaignUseCase) GetAll(ctx context.Context) ([]dto.EmailCampaignResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(list, toEmailCampaignResponse), nil
}

// Create registra una campaña sin enviarla. Sin estado queda como Draft.
func (uc *EmailCampaignUseCase) Create(ctx context.Context, in dto.CreateEmailCampaignRequest) (*dto.EmailCampaignResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	c := &entity.EmailCampaign{
		Subject:       in.Subject,
		Content:       in.Content,
		RecipientType: entity.RecipientType(in.RecipientType),
		Status:        entity.CampaignStatus(orDefault(in.Status, string(entity.CampaignDraft))),
		SentCount:     in.SentCount,
		SentDate:      in.SentDate,
	}
	switch {
	case !c.RecipientType.IsValid():
		return nil, invalidEnum("recipientType")
	case !c.Status.IsValid():
		return nil, invalidEnum("status")
	}
	if c.Status == entity.CampaignSent && c.SentDate == nil {
		now := uc.now()
		c.SentDate = &now
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	out := toEmailCampaignResponse(c)
	return &out, nil
}

// Send entrega la campaña a sus destinatarios y la guarda como Sent con la cantidad efectivamente enviada.
// Si el envío se corta después de haber salido algún email, la campaña se guarda igual con ese
// sentCount parcial y se devuelve el error del envío.
func (uc *EmailCampaignUseCase) Send(ctx context.Context, in dto.SendEmailCampaignRequest) (*dto.EmailCampaignResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	rt := entity.RecipientType(in.RecipientType)
	if !rt.IsValid() {
		return nil, invalidEnum("recipientType")
	}
	recipients, err := uc.recipients(ctx, rt)
	if err != nil {
		return nil, err
	}
	sent, sendErr := uc.sender.Send(ctx, recipients, in.Subject, in.Content)
	if sendErr != nil && sent == 0 {
		return nil, sendErr
	}

	now := uc.now()
	c := &entity.EmailCampaign{
		Subject:       in.Subject,
		Content:       in.Content,
		RecipientType: rt,
		SentDate:      &now,
		Status:        entity.CampaignSent,
		SentCount:     sent,
	}
	// context.WithoutCancel: la cancelación que cortó el envío no debe impedir registrar lo enviado.
	if err := uc.repo.Create(context.WithoutCancel(ctx), c); err != nil {
		return nil, err
	}
	if sendErr != nil {
		return nil, sendErr
	}
	out := toEmailCampaignResponse(c)
	return &out, nil
}

// recipients resuelve los emails según el tipo; en ALL un email repetido recibe un solo mensaje.
func (uc *EmailCampaignUseCase) recipients(ctx context.Context, rt entity.RecipientType) ([]string, error) {
	var out []string
	if rt == entity.RecipientsAll || rt == entity.RecipientsCustomers {
		emails, err := uc.customers.Emails(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, emails...)
	}
	if rt == entity.RecipientsAll || rt == entity.RecipientsPartners {
		emails, err := uc.partners.Emails(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, emails...)
	}
	seen := make(map[string]struct{}, len(out))
	uniq := out[:0]
	for _, e := range out {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		uniq = append(uniq, e)
	}
	return uniq, nil
}
