package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/privilege-pass-api/internal/application/dto"
	"github.com/jhoicas/privilege-pass-api/internal/application/usecase"
)

// TransactionHandler ventas atribuidas a afiliados.
type TransactionHandler struct {
	uc *usecase.TransactionUseCase
}

func NewTransactionHandler(uc *usecase.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// List godoc
// @Summary      Listar transacciones
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        partnerId  query  string  false  "Filtrar por afiliado"
// @Success      200  {array}  dto.TransactionResponse
// @Router       /api/admin/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	var (
		out []dto.TransactionResponse
		err error
	)
	if partnerID := c.Query("partnerId"); partnerID != "" {
		out, err = h.uc.GetByPartner(c.UserContext(), partnerID)
	} else {
		out, err = h.uc.GetAll(c.UserContext())
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListOwn godoc
// @Summary      Mis ventas como afiliado
// @Tags         partner
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TransactionResponse
// @Router       /api/partner/transactions [get]
func (h *TransactionHandler) ListOwn(c *fiber.Ctx) error {
	out, err := h.uc.GetByPartner(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar transacción
// @Description  Cambia estado, archivado o fecha prevista de pago.
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Param        id    path  string                        true  "ID"
// @Param        body  body  dto.UpdateTransactionRequest  true  "Campos a cambiar"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/transactions/{id} [patch]
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Update(c.UserContext(), c.Params("id"), in); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RecordSale godoc
// @Summary      Registrar venta con cupón
// @Description  Calcula la comisión del afiliado dueño del cupón y suma la venta a sus totales.
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordSaleRequest  true  "Venta"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/transactions/record-sale [post]
func (h *TransactionHandler) RecordSale(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.RecordSale(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
