// Package pdf genera el comprobante imprimible de un voucher de acceso a sala VIP.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────┐
//	│  PRIVILEGE PASS          │  Estado        │
//	│  ───────────────────────────────────────  │
//	│  Titular: nombre + email                  │
//	│  Paquete / Accesos / Fecha de compra      │
//	│  ───────────────────────────────────────  │
//	│  QR  │  Código del voucher                │
//	│  Leyenda de uso                           │
//	└───────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
	"github.com/jhoicas/privilege-pass-api/pkg/format"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorGold = &props.Color{Red: 191, Green: 149, Blue: 63}
	colorDark = &props.Color{Red: 24, Green: 24, Blue: 27}
	colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoVoucherPDF genera el comprobante usando Maroto v2.
type MarotoVoucherPDF struct{}

// NewMarotoVoucherPDF construye el generador.
func NewMarotoVoucherPDF() *MarotoVoucherPDF { return &MarotoVoucherPDF{} }

// GenerateVoucherPDF genera el PDF y devuelve sus bytes.
func (g *MarotoVoucherPDF) GenerateVoucherPDF(
	_ context.Context,
	voucher *entity.Voucher,
	customer *entity.Customer,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Voucher Privilege Pass", true).
		WithAuthor("Privilege Pass", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(voucher))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGold, Thickness: 0.5}))
	m.AddRows(holderRow(customer))
	m.AddRows(detailRow(voucher))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGold, Thickness: 0.3}))
	m.AddRows(codeRow(voucher))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar voucher: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(v *entity.Voucher) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("PRIVILEGE PASS", props.Text{
				Style: fontstyle.Bold, Size: 15, Color: colorGold, Top: 1,
			}),
			text.New("Acesso a salas VIP", props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(string(v.Status), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 3, Color: colorDark,
			}),
		),
	)
}

func holderRow(c *entity.Customer) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("TITULAR", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGold, Top: 1}),
			text.New(c.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(nonEmpty(c.Email, "—"), props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

func detailRow(v *entity.Voucher) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 7, Color: colorGray, Top: 1})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 10, Top: 5})
	}
	return row.New(12).Add(
		col.New(5).Add(label("PACOTE"), value(v.PackName)),
		col.New(3).Add(label("ACESSOS"), value(fmt.Sprintf("%d de %d", v.RemainingAccess, v.TotalAccess))),
		col.New(4).Add(label("COMPRA"), value(format.DateString(v.PurchaseDate))),
	)
}

// codeRow: QR (URL propia del voucher o su código) + código legible.
func codeRow(v *entity.Voucher) core.Row {
	qrData := nonEmpty(v.QRCodeURL, v.Code)
	return row.New(45).Add(
		col.New(5).Add(code.NewQr(qrData, props.Rect{Percent: 95, Center: true})),
		col.New(7).Add(
			text.New("CÓDIGO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGold, Top: 8, Left: 3}),
			text.New(format.VoucherCode(v.Code), props.Text{
				Style: fontstyle.Bold, Size: 14, Top: 14, Left: 3, Color: colorDark,
			}),
		),
	)
}

func footerRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(
			"Apresente este voucher na recepção da sala VIP junto com um documento com foto. "+
				"Cada entrada consome um acesso.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
