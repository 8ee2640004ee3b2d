package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/privilege-pass-api/internal/application/auth"
	"github.com/jhoicas/privilege-pass-api/internal/application/usecase"
	"github.com/jhoicas/privilege-pass-api/internal/domain/session"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CustomerUC    *usecase.CustomerUseCase
	VoucherUC     *usecase.VoucherUseCase
	PartnerUC     *usecase.PartnerUseCase
	ProductUC     *usecase.ProductUseCase
	BenefitUC     *usecase.BenefitUseCase
	FAQUC         *usecase.FAQUseCase
	MarketingUC   *usecase.MarketingUseCase
	TransactionUC *usecase.TransactionUseCase
	CampaignUC    *usecase.EmailCampaignUseCase
	AdminUC       *usecase.AdminUseCase
	BootstrapUC   *usecase.BootstrapUseCase
	Sessions      RevocationChecker
	JWTSecret     string
	AnonKey       string
	WhatsApp      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", APIKeyMiddleware(deps.AnonKey))

	authHandler := NewAuthHandler(deps.AuthUC)
	productHandler := NewProductHandler(deps.ProductUC)
	contentHandler := NewContentHandler(deps.BenefitUC, deps.FAQUC, deps.MarketingUC)
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.VoucherUC)
	partnerHandler := NewPartnerHandler(deps.PartnerUC)
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	campaignHandler := NewCampaignHandler(deps.CampaignUC)
	adminHandler := NewAdminHandler(deps.AdminUC, deps.BootstrapUC)
	meHandler := NewMeHandler(deps.CustomerUC, deps.PartnerUC, deps.VoucherUC)
	supportHandler := NewSupportHandler(deps.WhatsApp)

	// Público (solo apikey)
	api.Get("/products", productHandler.ListActive)
	api.Get("/benefits", contentHandler.ListBenefits)
	api.Get("/faq", contentHandler.ListFAQ)
	api.Get("/support/whatsapp", supportHandler.WhatsApp)
	api.Post("/auth/signup", authHandler.SignUp)
	api.Post("/auth/signin", authHandler.SignIn)
	api.Post("/partners/register", authHandler.RegisterPartner)

	// Rutas protegidas (requieren Bearer Token)
	authn := AuthMiddleware(deps.JWTSecret, deps.Sessions)
	api.Post("/auth/signout", authn, authHandler.SignOut)
	api.Get("/auth/session", authn, authHandler.Session)
	api.Get("/me", authn, meHandler.Get)
	api.Get("/me/vouchers/:voucherId/pdf", authn, RequireRole(string(session.RoleCustomer)), meHandler.VoucherPDF)

	// Afiliados
	// Middleware por ruta: un grupo "/partner" también capturaría "/partners/register".
	partnerOnly := RequireRole(string(session.RolePartner))
	api.Get("/partner/transactions", authn, partnerOnly, transactionHandler.ListOwn)
	api.Get("/partner/marketing", authn, partnerOnly, contentHandler.ListMarketing)

	// Back-office
	admin := api.Group("/admin", authn, RequireRole(string(session.RoleAdmin)))
	admin.Get("/bootstrap", adminHandler.Bootstrap)

	customers := admin.Group("/customers")
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Patch("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)
	customers.Post("/:id/vouchers", customerHandler.CreateVoucher)

	vouchers := admin.Group("/vouchers")
	vouchers.Patch("/:id", customerHandler.UpdateVoucher)
	vouchers.Post("/:id/redeem", customerHandler.RedeemVoucher)

	partners := admin.Group("/partners")
	partners.Get("/", partnerHandler.List)
	partners.Post("/", partnerHandler.Create)
	partners.Get("/:id", partnerHandler.GetByID)
	partners.Patch("/:id", partnerHandler.Update)
	partners.Delete("/:id", partnerHandler.Delete)

	products := admin.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Patch("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	benefits := admin.Group("/benefits")
	benefits.Get("/", contentHandler.ListBenefits)
	benefits.Post("/", contentHandler.CreateBenefit)
	benefits.Delete("/:id", contentHandler.DeleteBenefit)

	faq := admin.Group("/faq")
	faq.Get("/", contentHandler.ListFAQ)
	faq.Post("/", contentHandler.CreateFAQ)
	faq.Patch("/:id", contentHandler.UpdateFAQ)
	faq.Delete("/:id", contentHandler.DeleteFAQ)

	marketing := admin.Group("/marketing")
	marketing.Get("/", contentHandler.ListMarketing)
	marketing.Post("/", contentHandler.CreateMarketing)
	marketing.Delete("/:id", contentHandler.DeleteMarketing)

	transactions := admin.Group("/transactions")
	transactions.Get("/", transactionHandler.List)
	transactions.Post("/record-sale", transactionHandler.RecordSale)
	transactions.Patch("/:id", transactionHandler.Update)

	campaigns := admin.Group("/campaigns")
	campaigns.Get("/", campaignHandler.List)
	campaigns.Post("/", campaignHandler.Create)
	campaigns.Post("/send", campaignHandler.Send)

	admin.Get("/profile", adminHandler.GetProfile)
	admin.Patch("/profile", adminHandler.UpdateProfile)
	admin.Get("/staff", adminHandler.ListStaff)
	admin.Post("/staff", adminHandler.AddStaff)
	admin.Delete("/staff/:id", adminHandler.RemoveStaff)
}
