package entity

import "time"

type MarketingType string

const (
	MarketingImage MarketingType = "Image"
	MarketingPDF   MarketingType = "PDF"
	MarketingText  MarketingType = "Text"
)

func (t MarketingType) IsValid() bool {
	return t == MarketingImage || t == MarketingPDF || t == MarketingText
}

type MarketingCategory string

const (
	MarketingStories   MarketingCategory = "Stories"
	MarketingFeed      MarketingCategory = "Feed"
	MarketingDocuments MarketingCategory = "Documentos"
	MarketingCopy      MarketingCategory = "Copy"
)

func (c MarketingCategory) IsValid() bool {
	switch c {
	case MarketingStories, MarketingFeed, MarketingDocuments, MarketingCopy:
		return true
	}
	return false
}

// MarketingAsset material de divulgación para afiliados.
// Image/PDF usan URL (y Thumbnail); Text usa Content.
type MarketingAsset struct {
	ID          string
	Title       string
	Description string
	Type        MarketingType
	URL         string
	Content     string
	Thumbnail   string
	Category    MarketingCategory
	CreatedAt   time.Time
}
