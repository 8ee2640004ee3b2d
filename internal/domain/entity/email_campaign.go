package entity

import "time"

type RecipientType string

const (
	RecipientsAll       RecipientType = "ALL"
	RecipientsCustomers RecipientType = "CUSTOMERS"
	RecipientsPartners  RecipientType = "PARTNERS"
)

func (t RecipientType) IsValid() bool {
	return t == RecipientsAll || t == RecipientsCustomers || t == RecipientsPartners
}

type CampaignStatus string

const (
	CampaignSent  CampaignStatus = "Sent"
	CampaignDraft CampaignStatus = "Draft"
)

func (s CampaignStatus) IsValid() bool {
	return s == CampaignSent || s == CampaignDraft
}

// EmailCampaign comunicación masiva a clientes y/o afiliados.
type EmailCampaign struct {
	ID            string
	Subject       string
	Content       string
	RecipientType RecipientType
	SentDate      *time.Time // nil mientras es borrador
	Status        CampaignStatus
	SentCount     int
	CreatedAt     time.Time
}
