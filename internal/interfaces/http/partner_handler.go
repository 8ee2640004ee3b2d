package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/privilege-pass-api/internal/application/dto"
	"github.com/jhoicas/privilege-pass-api/internal/application/usecase"
)

// PartnerHandler administración de afiliados (rol admin).
type PartnerHandler struct {
	uc *usecase.PartnerUseCase
}

func NewPartnerHandler(uc *usecase.PartnerUseCase) *PartnerHandler {
	return &PartnerHandler{uc: uc}
}

// List godoc
// @Summary      Listar afiliados
// @Tags         partners
// @Security     Bearer
// @Produce      json
// @Param        email  query  string  false  "Filtrar por email"
// @Success      200  {array}  dto.PartnerResponse
// @Router       /api/admin/partners [get]
func (h *PartnerHandler) List(c *fiber.Ctx) error {
	if email := c.Query("email"); email != "" {
		out, err := h.uc.GetByEmail(c.UserContext(), email)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON([]dto.PartnerResponse{*out})
	}
	out, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener afiliado por ID
// @Tags         partners
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del afiliado"
// @Success      200  {object}  dto.PartnerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/partners/{id} [get]
func (h *PartnerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear afiliado
// @Tags         partners
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartnerRequest  true  "Datos del afiliado"
// @Success      201   {object}  dto.PartnerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/partners [post]
func (h *PartnerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePartnerRequest
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
// @Summary      Actualizar estado o totales de un afiliado
// @Tags         partners
// @Security     Bearer
// @Accept       json
// @Param        id    path  string                    true  "ID del afiliado"
// @Param        body  body  dto.UpdatePartnerRequest  true  "Campos a cambiar"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/partners/{id} [patch]
func (h *PartnerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePartnerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Update(c.UserContext(), c.Params("id"), in); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar afiliado
// @Tags         partners
// @Security     Bearer
// @Param        id   path  string  true  "ID del afiliado"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/partners/{id} [delete]
func (h *PartnerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
