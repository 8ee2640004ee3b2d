package dto

import "time"

// CreateBenefitRequest entrada para crear un beneficio de socio.
type CreateBenefitRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description"`
	Discount    string `json:"discount" validate:"required,max=50"`
	Code        string `json:"code" validate:"required,max=50"`
	Category    string `json:"category" validate:"required"`
	Image       string `json:"image" validate:"omitempty,url"`
}

// BenefitResponse salida de un beneficio.
type BenefitResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Discount    string    `json:"discount"`
	Code        string    `json:"code"`
	Category    string    `json:"category"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateFAQRequest entrada para crear una pregunta frecuente.
type CreateFAQRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	Category string `json:"category"`
}

// UpdateFAQRequest actualización parcial de una pregunta frecuente.
type UpdateFAQRequest struct {
	Question *string `json:"question" validate:"omitempty,min=1"`
	Answer   *string `json:"answer" validate:"omitempty,min=1"`
	Category *string `json:"category"`
}

// FAQResponse salida de una pregunta frecuente.
type FAQResponse struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateMarketingAssetRequest material de divulgación para afiliados.
type CreateMarketingAssetRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	Type        string `json:"type" validate:"required"`
	URL         string `json:"url" validate:"omitempty,url"`
	Content     string `json:"content"`
	Thumbnail   string `json:"thumbnail" validate:"omitempty,url"`
	Category    string `json:"category" validate:"required"`
}

// MarketingAssetResponse salida de un material.
type MarketingAssetResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	URL         string    `json:"url,omitempty"`
	Content     string    `json:"content,omitempty"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
}
