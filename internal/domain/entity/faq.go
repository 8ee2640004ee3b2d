package entity

import "time"

type FAQCategory string

const (
	FAQGeneral   FAQCategory = "Geral"
	FAQAccess    FAQCategory = "Acesso"
	FAQFinancial FAQCategory = "Financeiro"
	FAQTechnical FAQCategory = "Técnico"
)

func (c FAQCategory) IsValid() bool {
	switch c {
	case FAQGeneral, FAQAccess, FAQFinancial, FAQTechnical:
		return true
	}
	return false
}

// FAQItem pregunta frecuente del portal de soporte. Category es opcional.
type FAQItem struct {
	ID        string
	Question  string
	Answer    string
	Category  FAQCategory
	CreatedAt time.Time
}
