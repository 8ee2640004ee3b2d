package dto

import "time"

// CreateEmailCampaignRequest registra una campaña (borrador o ya enviada por otro medio).
type CreateEmailCampaignRequest struct {
	Subject       string     `json:"subject" validate:"required,max=200"`
	Content       string     `json:"content" validate:"required"`
	RecipientType string     `json:"recipientType" validate:"required"`
	Status        string     `json:"status"`
	SentCount     int        `json:"sentCount" validate:"gte=0"`
	SentDate      *time.Time `json:"sentDate"`
}

// SendEmailCampaignRequest envía la campaña a todos los destinatarios del tipo indicado.
type SendEmailCampaignRequest struct {
	Subject       string `json:"subject" validate:"required,max=200"`
	Content       string `json:"content" validate:"required"`
	RecipientType string `json:"recipientType" validate:"required"`
}

// EmailCampaignResponse salida de una campaña.
type EmailCampaignResponse struct {
	ID            string     `json:"id"`
	Subject       string     `json:"subject"`
	Content       string     `json:"content"`
	RecipientType string     `json:"recipientType"`
	SentDate      *time.Time `json:"sentDate,omitempty"`
	SentDateLabel string     `json:"sentDateLabel,omitempty"`
	Status        string     `json:"status"`
	SentCount     int        `json:"sentCount"`
}
