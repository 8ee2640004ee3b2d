package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/privilege-pass-api/internal/application/dto"
	"github.com/jhoicas/privilege-pass-api/internal/application/usecase"
)

// AdminHandler perfil, staff y carga inicial del back-office.
type AdminHandler struct {
	uc        *usecase.AdminUseCase
	bootstrap *usecase.BootstrapUseCase
}

func NewAdminHandler(uc *usecase.AdminUseCase, bootstrap *usecase.BootstrapUseCase) *AdminHandler {
	return &AdminHandler{uc: uc, bootstrap: bootstrap}
}

// Bootstrap godoc
// @Summary      Estado completo del back-office
// @Description  Las diez colecciones y el perfil de administrador en una sola respuesta. Falla si falla cualquier lectura.
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AppState
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/admin/bootstrap [get]
func (h *AdminHandler) Bootstrap(c *fiber.Ctx) error {
	out, err := h.bootstrap.Load(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetProfile godoc
// @Summary      Perfil del administrador
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AdminUserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/profile [get]
func (h *AdminHandler) GetProfile(c *fiber.Ctx) error {
	out, err := h.uc.GetProfile(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateProfile godoc
// @Summary      Actualizar perfil del administrador
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.UpdateAdminProfileRequest  true  "Campos a cambiar"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/profile [patch]
func (h *AdminHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateAdminProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.UpdateProfile(c.UserContext(), in); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListStaff godoc
// @Summary      Listar staff
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AdminUserResponse
// @Router       /api/admin/staff [get]
func (h *AdminHandler) ListStaff(c *fiber.Ctx) error {
	out, err := h.uc.GetStaff(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddStaff godoc
// @Summary      Agregar miembro del staff
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddStaffRequest  true  "Miembro"
// @Success      201   {object}  dto.AdminUserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/staff [post]
func (h *AdminHandler) AddStaff(c *fiber.Ctx) error {
	var in dto.AddStaffRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddStaff(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RemoveStaff godoc
// @Summary      Quitar miembro del staff
// @Tags         admin
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/staff/{id} [delete]
func (h *AdminHandler) RemoveStaff(c *fiber.Ctx) error {
	if err := h.uc.RemoveStaff(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
