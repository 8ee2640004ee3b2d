package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/privilege-pass-api/internal/application/dto"
	"github.com/jhoicas/privilege-pass-api/internal/application/usecase"
)

// ContentHandler beneficios, preguntas frecuentes y material de marketing.
type ContentHandler struct {
	benefits  *usecase.BenefitUseCase
	faq       *usecase.FAQUseCase
	marketing *usecase.MarketingUseCase
}

func NewContentHandler(benefits *usecase.BenefitUseCase, faq *usecase.FAQUseCase, marketing *usecase.MarketingUseCase) *ContentHandler {
	return &ContentHandler{benefits: benefits, faq: faq, marketing: marketing}
}

// ── Beneficios ───────────────────────────────────────────────────────────────

// ListBenefits godoc
// @Summary      Listar beneficios de socios
// @Tags         content
// @Produce      json
// @Param        apikey  header  string  true  "Clave pública"
// @Success      200  {array}  dto.BenefitResponse
// @Router       /api/benefits [get]
func (h *ContentHandler) ListBenefits(c *fiber.Ctx) error {
	out, err := h.benefits.GetAll(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateBenefit godoc
// @Summary      Crear beneficio
// @Tags         content
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBenefitRequest  true  "Beneficio"
// @Success      201   {object}  dto.BenefitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/benefits [post]
func (h *ContentHandler) CreateBenefit(c *fiber.Ctx) error {
	var in dto.CreateBenefitRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.benefits.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteBenefit godoc
// @Summary      Eliminar beneficio
// @Tags         content
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      204
// @Router       /api/admin/benefits/{id} [delete]
func (h *ContentHandler) DeleteBenefit(c *fiber.Ctx) error {
	if err := h.benefits.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── FAQ ──────────────────────────────────────────────────────────────────────

// ListFAQ godoc
// @Summary      Preguntas frecuentes
// @Tags         content
// @Produce      json
// @Param        apikey  header  string  true  "Clave pública"
// @Success      200  {array}  dto.FAQResponse
// @Router       /api/faq [get]
func (h *ContentHandler) ListFAQ(c *fiber.Ctx) error {
	out, err := h.faq.GetAll(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateFAQ godoc
// @Summary      Crear pregunta frecuente
// @Tags         content
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFAQRequest  true  "Pregunta"
// @Success      201   {object}  dto.FAQResponse
// @Router       /api/admin/faq [post]
func (h *ContentHandler) CreateFAQ(c *fiber.Ctx) error {
	var in dto.CreateFAQRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.faq.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateFAQ godoc
// @Summary      Actualizar pregunta frecuente
// @Tags         content
// @Security     Bearer
// @Accept       json
// @Param        id    path  string                true  "ID"
// @Param        body  body  dto.UpdateFAQRequest  true  "Campos a cambiar"
// @Success      204
// @Router       /api/admin/faq/{id} [patch]
func (h *ContentHandler) UpdateFAQ(c *fiber.Ctx) error {
	var in dto.UpdateFAQRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.faq.Update(c.UserContext(), c.Params("id"), in); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteFAQ godoc
// @Summary      Eliminar pregunta frecuente
// @Tags         content
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      204
// @Router       /api/admin/faq/{id} [delete]
func (h *ContentHandler) DeleteFAQ(c *fiber.Ctx) error {
	if err := h.faq.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Marketing ────────────────────────────────────────────────────────────────

// ListMarketing godoc
// @Summary      Material de marketing para afiliados
// @Tags         content
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MarketingAssetResponse
// @Router       /api/partner/marketing [get]
func (h *ContentHandler) ListMarketing(c *fiber.Ctx) error {
	out, err := h.marketing.GetAll(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateMarketing godoc
// @Summary      Publicar material de marketing
// @Tags         content
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMarketingAssetRequest  true  "Material"
// @Success      201   {object}  dto.MarketingAssetResponse
// @Router       /api/admin/marketing [post]
func (h *ContentHandler) CreateMarketing(c *fiber.Ctx) error {
	var in dto.CreateMarketingAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.marketing.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteMarketing godoc
// @Summary      Eliminar material de marketing
// @Tags         content
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      204
// @Router       /api/admin/marketing/{id} [delete]
func (h *ContentHandler) DeleteMarketing(c *fiber.Ctx) error {
	if err := h.marketing.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
