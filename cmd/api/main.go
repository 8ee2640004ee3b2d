package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/privilege-pass-api/internal/application/auth"
	"github.com/jhoicas/privilege-pass-api/internal/application/usecase"
	"github.com/jhoicas/privilege-pass-api/internal/domain/session"
	"github.com/jhoicas/privilege-pass-api/internal/infrastructure/cache"
	"github.com/jhoicas/privilege-pass-api/internal/infrastructure/mail"
	"github.com/jhoicas/privilege-pass-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/privilege-pass-api/internal/infrastructure/pdf"
	"github.com/jhoicas/privilege-pass-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/privilege-pass-api/internal/interfaces/http"
	"github.com/jhoicas/privilege-pass-api/pkg/config"
	"github.com/jhoicas/privilege-pass-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	metrics.MustRegister()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	go postgres.ReportPoolStats(ctx, pool, 15*time.Second)

	if cfg.DB.AutoMigrate {
		if err := postgres.ApplySchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("aplicar schema")
		}
		log.Info().Msg("schema aplicado")
	}

	// Redis para catálogo y revocación de tokens; sin REDIS_ADDR se usa memoria del proceso.
	var kv cache.RedisClient = cache.NewMemory()
	if cfg.Redis.Addr != "" {
		kv, err = cache.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("conexión a Redis")
		}
	}
	defer kv.Close()
	sessions := cache.NewSessionStore(kv)

	var sender usecase.CampaignSender = mail.NopSender{Log: log}
	if cfg.SMTP.Host != "" {
		sender = mail.NewGomailSender(cfg.SMTP, log)
	} else {
		log.Warn().Msg("SMTP_HOST vacío: las campañas se registran sin enviarse")
	}

	customerRepo := postgres.NewCustomerRepository(pool)
	voucherRepo := postgres.NewVoucherRepository(pool)
	partnerRepo := postgres.NewPartnerRepository(pool)
	productRepo := cache.NewProductRepoCacheDecorator(postgres.NewProductRepository(pool), kv, log)
	benefitRepo := postgres.NewBenefitRepository(pool)
	faqRepo := postgres.NewFAQRepository(pool)
	marketingRepo := postgres.NewMarketingAssetRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	campaignRepo := postgres.NewEmailCampaignRepository(pool)
	adminRepo := postgres.NewAdminRepository(pool)

	customerUC := usecase.NewCustomerUseCase(customerRepo, voucherRepo)
	voucherUC := usecase.NewVoucherUseCase(voucherRepo, customerRepo, infrapdf.NewMarotoVoucherPDF())
	partnerUC := usecase.NewPartnerUseCase(partnerRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	benefitUC := usecase.NewBenefitUseCase(benefitRepo)
	faqUC := usecase.NewFAQUseCase(faqRepo)
	marketingUC := usecase.NewMarketingUseCase(marketingRepo)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo, partnerRepo)
	campaignUC := usecase.NewEmailCampaignUseCase(campaignRepo, customerRepo, partnerRepo, sender)
	adminUC := usecase.NewAdminUseCase(adminRepo)
	bootstrapUC := usecase.NewBootstrapUseCase(
		customerUC, partnerUC, productUC, benefitUC, faqUC,
		marketingUC, transactionUC, campaignUC, adminUC,
	)

	authUC := auth.NewAuthUseCase(
		adminRepo, partnerRepo, customerRepo, customerUC, partnerUC, sessions,
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
		session.Markers{Admin: cfg.Roles.AdminMarkers, Partner: cfg.Roles.PartnerMarkers},
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, apikey",
	}))
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Privilege Pass API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CustomerUC:    customerUC,
		VoucherUC:     voucherUC,
		PartnerUC:     partnerUC,
		ProductUC:     productUC,
		BenefitUC:     benefitUC,
		FAQUC:         faqUC,
		MarketingUC:   marketingUC,
		TransactionUC: transactionUC,
		CampaignUC:    campaignUC,
		AdminUC:       adminUC,
		BootstrapUC:   bootstrapUC,
		Sessions:      sessions,
		JWTSecret:     cfg.JWT.Secret,
		AnonKey:       cfg.DB.AnonKey,
		WhatsApp:      cfg.Support.WhatsAppNumber,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
