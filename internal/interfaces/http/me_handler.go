package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/privilege-pass-api/internal/application/dto"
	"github.com/jhoicas/privilege-pass-api/internal/application/usecase"
	"github.com/jhoicas/privilege-pass-api/internal/domain/session"
)

// MeHandler registro propio del usuario autenticado.
type MeHandler struct {
	customers *usecase.CustomerUseCase
	partners  *usecase.PartnerUseCase
	vouchers  *usecase.VoucherUseCase
}

func NewMeHandler(customers *usecase.CustomerUseCase, partners *usecase.PartnerUseCase, vouchers *usecase.VoucherUseCase) *MeHandler {
	return &MeHandler{customers: customers, partners: partners, vouchers: vouchers}
}

// Get godoc
// @Summary      Mis datos
// @Description  Cliente con sus vouchers o afiliado con sus totales, según el rol del token.
// @Tags         me
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CustomerResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/me [get]
func (h *MeHandler) Get(c *fiber.Ctx) error {
	switch session.Role(GetRole(c)) {
	case session.RoleCustomer:
		out, err := h.customers.GetByID(c.UserContext(), GetUserID(c))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(out)
	case session.RolePartner:
		out, err := h.partners.GetByID(c.UserContext(), GetUserID(c))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(out)
	}
	return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo clientes y afiliados tienen registro propio"})
}

// VoucherPDF godoc
// @Summary      Comprobante PDF de un voucher propio
// @Tags         me
// @Security     Bearer
// @Produce      application/pdf
// @Param        voucherId  path  string  true  "ID del voucher"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/me/vouchers/{voucherId}/pdf [get]
func (h *MeHandler) VoucherPDF(c *fiber.Ctx) error {
	voucherID := c.Params("voucherId")
	doc, err := h.vouchers.PDF(c.UserContext(), GetUserID(c), voucherID)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="voucher-`+voucherID+`.pdf"`)
	return c.Send(doc)
}
