package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/privilege-pass-api/internal/application/dto"
	"github.com/jhoicas/privilege-pass-api/internal/application/usecase"
)

// CustomerHandler administración de clientes y sus vouchers (rol admin).
type CustomerHandler struct {
	uc       *usecase.CustomerUseCase
	vouchers *usecase.VoucherUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, vouchers *usecase.VoucherUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc, vouchers: vouchers}
}

// List godoc
// @Summary      Listar clientes
// @Description  Cada cliente incluye sus vouchers. Con ?email= devuelve solo ese cliente.
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        email  query  string  false  "Filtrar por email"
// @Success      200  {array}   dto.CustomerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	if email := c.Query("email"); email != "" {
		out, err := h.uc.GetByEmail(c.UserContext(), email)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON([]dto.CustomerResponse{*out})
	}
	out, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener cliente por ID
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear cliente
// @Description  Gasto, última compra, ID de membresía y vouchers siempre parten de sus valores por defecto.
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente
// @Description  Actualización parcial. Los vouchers de activeVouchers cuyo ID ya existe se ignoran.
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del cliente"
// @Param        body  body  dto.UpdateCustomerRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.CustomerUpdateResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/customers/{id} [patch]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cliente
// @Tags         customers
// @Security     Bearer
// @Param        id   path  string  true  "ID del cliente"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateVoucher godoc
// @Summary      Emitir voucher
// @Tags         vouchers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID del cliente"
// @Param        body  body  dto.VoucherRequest  true  "Voucher"
// @Success      201   {object}  dto.VoucherResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/customers/{id}/vouchers [post]
func (h *CustomerHandler) CreateVoucher(c *fiber.Ctx) error {
	var in dto.VoucherRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.vouchers.Create(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateVoucher godoc
// @Summary      Actualizar voucher
// @Tags         vouchers
// @Security     Bearer
// @Accept       json
// @Param        id    path  string                    true  "ID del voucher"
// @Param        body  body  dto.UpdateVoucherRequest  true  "Accesos restantes y/o estado"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/vouchers/{id} [patch]
func (h *CustomerHandler) UpdateVoucher(c *fiber.Ctx) error {
	var in dto.UpdateVoucherRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.vouchers.Update(c.UserContext(), c.Params("id"), in); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RedeemVoucher godoc
// @Summary      Registrar un acceso a sala
// @Description  Descuenta un acceso; al llegar a cero el voucher pasa a Resgatado.
// @Tags         vouchers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del voucher"
// @Success      200  {object}  dto.VoucherResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/vouchers/{id}/redeem [post]
func (h *CustomerHandler) RedeemVoucher(c *fiber.Ctx) error {
	out, err := h.vouchers.Redeem(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
