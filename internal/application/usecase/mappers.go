package usecase

import (
	"time"

	"github.com/jhoicas/privilege-pass-api/internal/application/dto"
	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
	"github.com/jhoicas/privilege-pass-api/pkg/format"
)

func toVoucherResponse(v *entity.Voucher) dto.VoucherResponse {
	return dto.VoucherResponse{
		ID:              v.ID,
		CustomerID:      v.CustomerID,
		PackName:        v.PackName,
		Code:            v.Code,
		RemainingAccess: v.RemainingAccess,
		TotalAccess:     v.TotalAccess,
		Status:          string(v.Status),
		PurchaseDate:    v.PurchaseDate,
		QRCodeURL:       v.QRCodeURL,
		CreatedAt:       v.CreatedAt,
	}
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	vouchers := make([]dto.VoucherResponse, 0, len(c.Vouchers))
	for i := range c.Vouchers {
		vouchers = append(vouchers, toVoucherResponse(&c.Vouchers[i]))
	}
	return dto.CustomerResponse{
		ID:                   c.ID,
		Name:                 c.Name,
		Email:                c.Email,
		Phone:                c.Phone,
		PhoneFormatted:       phoneLabel(c.Phone),
		AvatarURL:            c.AvatarURL,
		TotalSpend:           c.TotalSpend,
		Location:             c.Location,
		LastPurchaseDate:     c.LastPurchaseDate,
		ExternalMembershipID: c.ExternalMembershipID,
		ActiveVouchers:       vouchers,
		CreatedAt:            c.CreatedAt,
	}
}

func toPartnerResponse(p *entity.Partner) dto.PartnerResponse {
	return dto.PartnerResponse{
		ID:              p.ID,
		Name:            p.Name,
		Email:           p.Email,
		Phone:           p.Phone,
		PhoneFormatted:  phoneLabel(p.Phone),
		Instagram:       p.Instagram,
		Category:        string(p.Category),
		Status:          string(p.Status),
		AvatarURL:       p.AvatarURL,
		CouponCode:      p.CouponCode,
		CommissionType:  string(p.CommissionType),
		CommissionValue: p.CommissionValue,
		PixKey:          p.PixKey,
		PixKeyFormatted: pixKeyLabel(p.PixType, p.PixKey),
		PixType:         string(p.PixType),
		TotalSales:      p.TotalSales,
		TotalEarned:     p.TotalEarned,
		CreatedAt:       p.CreatedAt,
	}
}

func toProductResponse(p *entity.VoucherPack) dto.ProductResponse {
	return dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Type:           string(p.Type),
		AccessCount:    p.AccessCount,
		Price:          p.Price,
		PriceFormatted: format.Price(p.Price),
		Features:       p.Features,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
	}
}

func toBenefitResponse(b *entity.Benefit) dto.BenefitResponse {
	return dto.BenefitResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Discount:    b.Discount,
		Code:        b.Code,
		Category:    string(b.Category),
		Image:       b.Image,
		CreatedAt:   b.CreatedAt,
	}
}

func toFAQResponse(f *entity.FAQItem) dto.FAQResponse {
	return dto.FAQResponse{
		ID:        f.ID,
		Question:  f.Question,
		Answer:    f.Answer,
		Category:  string(f.Category),
		CreatedAt: f.CreatedAt,
	}
}

func toMarketingAssetResponse(a *entity.MarketingAsset) dto.MarketingAssetResponse {
	return dto.MarketingAssetResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Type:        string(a.Type),
		URL:         a.URL,
		Content:     a.Content,
		Thumbnail:   a.Thumbnail,
		Category:    string(a.Category),
		CreatedAt:   a.CreatedAt,
	}
}

func toTransactionResponse(t *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:              t.ID,
		PartnerID:       t.PartnerID,
		CustomerName:    t.CustomerName,
		ProductName:     t.ProductName,
		SaleValue:       t.SaleValue,
		CommissionValue: t.CommissionValue,
		Status:          string(t.Status),
		Date:            t.Date,
		ScheduledDate:   t.ScheduledDate,
		Archived:        t.Archived,
	}
}

func toEmailCampaignResponse(c *entity.EmailCampaign) dto.EmailCampaignResponse {
	return dto.EmailCampaignResponse{
		ID:            c.ID,
		Subject:       c.Subject,
		Content:       c.Content,
		RecipientType: string(c.RecipientType),
		SentDate:      c.SentDate,
		SentDateLabel: sentDateLabel(c.SentDate),
		Status:        string(c.Status),
		SentCount:     c.SentCount,
	}
}

func phoneLabel(raw string) string {
	if raw == "" {
		return ""
	}
	return format.Phone(raw)
}

// pixKeyLabel formatea CPF y teléfono; el resto de claves se muestran tal cual.
func pixKeyLabel(t entity.PixType, key string) string {
	switch t {
	case entity.PixCPF:
		if s, err := format.CPF(key); err == nil {
			return s
		}
	case entity.PixPhone:
		return format.Phone(key)
	}
	return key
}

func sentDateLabel(t *time.Time) string {
	if t == nil {
		return ""
	}
	return format.DateTime(*t)
}

func toAdminUserResponse(u *entity.AdminUser) dto.AdminUserResponse {
	return dto.AdminUserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       string(u.Role),
		AvatarURL:  u.AvatarURL,
		LastActive: u.LastActive,
	}
}

// mapAll aplica f a cada elemento; nunca devuelve nil (las listas vacías salen como []).
func mapAll[E any, R any](items []*E, f func(*E) R) []R {
	out := make([]R, 0, len(items))
	for _, it := range items {
		out = append(out, f(it))
	}
	return out
}
