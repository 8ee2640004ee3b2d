package usecase

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/privilege-pass-api/internal/application/dto"
	"github.com/jhoicas/privilege-pass-api/internal/domain"
)

// BootstrapUseCase carga en paralelo todo el estado que el back-office necesita al iniciar.
type BootstrapUseCase struct {
	customers    *CustomerUseCase
	partners     *PartnerUseCase
	products     *ProductUseCase
	benefits     *BenefitUseCase
	faq          *FAQUseCase
	marketing    *MarketingUseCase
	transactions *TransactionUseCase
	campaigns    *EmailCampaignUseCase
	admin        *AdminUseCase
}

func NewBootstrapUseCase(
	customers *CustomerUseCase,
	partners *PartnerUseCase,
	products *ProductUseCase,
	benefits *BenefitUseCase,
	faq *FAQUseCase,
	marketing *MarketingUseCase,
	transactions *TransactionUseCase,
	campaigns *EmailCampaignUseCase,
	admin *AdminUseCase,
) *BootstrapUseCase {
	return &BootstrapUseCase{
		customers: customers, partners: partners, products: products, benefits: benefits, faq: faq,
		marketing: marketing, transactions: transactions, campaigns: campaigns, admin: admin,
	}
}

// Load lanza las diez lecturas a la vez. Si cualquiera falla, falla la carga completa y el resto se
// cancela. Que el perfil de administrador no exista no es un fallo.
func (uc *BootstrapUseCase) Load(ctx context.Context) (*dto.AppState, error) {
	var st dto.AppState
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) { st.Customers, err = uc.customers.GetAll(ctx); return })
	g.Go(func() (err error) { st.Partners, err = uc.partners.GetAll(ctx); return })
	g.Go(func() (err error) { st.Products, err = uc.products.GetAll(ctx); return })
	g.Go(func() (err error) { st.Benefits, err = uc.benefits.GetAll(ctx); return })
	g.Go(func() (err error) { st.FAQItems, err = uc.faq.GetAll(ctx); return })
	g.Go(func() (err error) { st.MarketingAssets, err = uc.marketing.GetAll(ctx); return })
	g.Go(func() (err error) { st.Transactions, err = uc.transactions.GetAll(ctx); return })
	g.Go(func() (err error) { st.EmailCampaigns, err = uc.campaigns.GetAll(ctx); return })
	g.Go(func() (err error) { st.StaffMembers, err = uc.admin.GetStaff(ctx); return })
	g.Go(func() error {
		p, err := uc.admin.GetProfile(ctx)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		st.AdminProfile = p
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &st, nil
}
