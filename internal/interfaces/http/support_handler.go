package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/privilege-pass-api/pkg/generator"
)

// SupportHandler canal de soporte por WhatsApp.
type SupportHandler struct {
	number string
}

func NewSupportHandler(number string) *SupportHandler {
	return &SupportHandler{number: number}
}

// WhatsApp godoc
// @Summary      Enlace de soporte por WhatsApp
// @Description  Con ?redirect=true responde 302 al enlace en lugar de devolverlo.
// @Tags         support
// @Produce      json
// @Param        apikey    header  string  true   "Clave pública"
// @Param        text      query   string  false  "Mensaje prellenado"
// @Param        redirect  query   bool    false  "Redirigir"
// @Success      200  {object}  map[string]string
// @Router       /api/support/whatsapp [get]
func (h *SupportHandler) WhatsApp(c *fiber.Ctx) error {
	link := generator.WhatsAppLink(h.number, c.Query("text"))
	if c.QueryBool("redirect") {
		return c.Redirect(link, fiber.StatusFound)
	}
	return c.JSON(fiber.Map{"url": link})
}
