package dto

// AppState todas las colecciones que el back-office necesita al iniciar, cargadas en conjunto.
type AppState struct {
	Customers       []CustomerResponse       `json:"customers"`
	Partners        []PartnerResponse        `json:"partners"`
	Products        []ProductResponse        `json:"products"`
	Benefits        []BenefitResponse        `json:"benefits"`
	FAQItems        []FAQResponse            `json:"faqItems"`
	MarketingAssets []MarketingAssetResponse `json:"marketingAssets"`
	Transactions    []TransactionResponse    `json:"transactions"`
	EmailCampaigns  []EmailCampaignResponse  `json:"emailCampaigns"`
	StaffMembers    []AdminUserResponse      `json:"staffMembers"`
	AdminProfile    *AdminUserResponse       `json:"adminProfile"`
}
