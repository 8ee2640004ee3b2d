package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/privilege-pass-api/internal/application/dto"
	"github.com/jhoicas/privilege-pass-api/internal/application/usecase"
)

// CampaignHandler campañas de email.
type CampaignHandler struct {
	uc *usecase.EmailCampaignUseCase
}

func NewCampaignHandler(uc *usecase.EmailCampaignUseCase) *CampaignHandler {
	return &CampaignHandler{uc: uc}
}

// List godoc
// @Summary      Listar campañas
// @Tags         campaigns
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.EmailCampaignResponse
// @Router       /api/admin/campaigns [get]
func (h *CampaignHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Guardar campaña sin enviar
// @Tags         campaigns
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmailCampaignRequest  true  "Campaña"
// @Success      201   {object}  dto.EmailCampaignResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/campaigns [post]
func (h *CampaignHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmailCampaignRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Send godoc
// @Summary      Enviar campaña
// @Description  Entrega el email a clientes, afiliados activos o ambos y registra cuántos salieron.
// @Tags         campaigns
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SendEmailCampaignRequest  true  "Campaña"
// @Success      201   {object}  dto.EmailCampaignResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/campaigns/send [post]
func (h *CampaignHandler) Send(c *fiber.Ctx) error {
	var in dto.SendEmailCampaignRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Send(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
