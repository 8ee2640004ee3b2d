// seed carga el catálogo inicial de Privilege Pass: paquetes Nacional/Internacional de 1, 2 y 4
// accesos, preguntas frecuentes y el perfil de administrador.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que la API (DATABASE_URL, SUPABASE_ANON_KEY...). Solo escribe en
// tablas vacías, así que puede ejecutarse varias veces.
// El perfil de administrador toma SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/privilege-pass-api/internal/application/dto"
	"github.com/jhoicas/privilege-pass-api/internal/application/usecase"
	"github.com/jhoicas/privilege-pass-api/internal/infrastructure/postgres"
	"github.com/jhoicas/privilege-pass-api/pkg/config"
	"github.com/jhoicas/privilege-pass-api/pkg/generator"
	"github.com/jhoicas/privilege-pass-api/pkg/logger"
	"github.com/jhoicas/privilege-pass-api/pkg/password"
)

type pack struct {
	typ      string
	accesses int
	price    string
}

var packs = []pack{
	{"Nacional", 1, "129.90"},
	{"Nacional", 2, "239.90"},
	{"Nacional", 4, "449.90"},
	{"Internacional", 1, "189.90"},
	{"Internacional", 2, "349.90"},
	{"Internacional", 4, "649.90"},
}

var faq = []dto.CreateFAQRequest{
	{Question: "Como utilizo meu voucher?", Answer: "Apresente o código do voucher na recepção da sala VIP junto com o cartão de embarque.", Category: "Acesso"},
	{Question: "Os vouchers têm validade?", Answer: "Os vouchers valem por 12 meses a partir da compra.", Category: "Geral"},
	{Question: "Posso levar acompanhante?", Answer: "Cada acesso corresponde a uma pessoa. Pacotes de 2 ou 4 acessos podem ser usados por acompanhantes.", Category: "Acesso"},
	{Question: "Quais formas de pagamento são aceitas?", Answer: "Cartão de crédito e Pix.", Category: "Financeiro"},
	{Question: "Não recebi meu voucher por email", Answer: "O voucher também fica disponível na área do cliente. Se não aparecer, fale com o suporte pelo WhatsApp.", Category: "Técnico"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.ApplySchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar schema")
	}

	products := usecase.NewProductUseCase(postgres.NewProductRepository(pool))
	existing, err := products.GetAll(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("leer productos")
	}
	if len(existing) == 0 {
		for _, p := range packs {
			scope := "nacionais"
			if p.typ == "Internacional" {
				scope = "internacionais"
			}
			features := []string{"Acesso a salas VIP " + scope, "Wi-Fi e open bar"}
			if p.accesses > 1 {
				features = append(features, "Pode ser compartilhado com acompanhantes")
			}
			if _, err := products.Create(ctx, dto.CreateProductRequest{
				Name:        fmt.Sprintf("%s %d", p.typ, p.accesses),
				Description: fmt.Sprintf("%d acesso(s) a salas VIP", p.accesses),
				Type:        p.typ,
				AccessCount: p.accesses,
				Price:       decimal.RequireFromString(p.price),
				Features:    features,
			}); err != nil {
				log.Fatal().Err(err).Str("pack", p.typ).Int("accesses", p.accesses).Msg("crear producto")
			}
		}
		log.Info().Int("count", len(packs)).Msg("productos creados")
	}

	faqUC := usecase.NewFAQUseCase(postgres.NewFAQRepository(pool))
	items, err := faqUC.GetAll(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("leer FAQ")
	}
	if len(items) == 0 {
		for _, in := range faq {
			if _, err := faqUC.Create(ctx, in); err != nil {
				log.Fatal().Err(err).Str("question", in.Question).Msg("crear FAQ")
			}
		}
		log.Info().Int("count", len(faq)).Msg("FAQ creada")
	}

	if err := seedAdmin(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("perfil de administrador")
	}
	log.Info().Msg("seed completado")
}

// seedAdmin inserta el perfil de administrador solo si la tabla está vacía.
func seedAdmin(ctx context.Context, q postgres.Querier) error {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	plain := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || plain == "" {
		return nil
	}
	hash, err := password.Hash(plain)
	if err != nil {
		return err
	}
	name := "Administrador"
	_, err = q.Exec(ctx, `
		INSERT INTO admin_profile (name, email, password, role, avatar_url)
		SELECT $1, lower($2), $3, 'Admin', $4
		WHERE NOT EXISTS (SELECT 1 FROM admin_profile)`,
		name, email, hash, generator.AvatarURL(name))
	return err
}
