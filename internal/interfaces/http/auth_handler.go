package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/privilege-pass-api/internal/application/auth"
	"github.com/jhoicas/privilege-pass-api/internal/application/dto"
	"github.com/jhoicas/privilege-pass-api/internal/domain"
	"github.com/jhoicas/privilege-pass-api/internal/infrastructure/metrics"
)

// AuthHandler maneja registro, login y sesión.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// SignUp godoc
// @Summary      Registrar cliente
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        apikey  header  string             true  "Clave pública"
// @Param        body    body    dto.SignUpRequest  true  "name, email, password"
// @Success      201     {object}  dto.SessionResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      409     {object}  dto.ErrorResponse
// @Router       /api/auth/signup [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var in dto.SignUpRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.SignUp(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SignIn godoc
// @Summary      Iniciar sesión
// @Description  Busca la cuenta en administradores, afiliados y clientes; el rol del token sale de la tabla.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        apikey  header  string             true  "Clave pública"
// @Param        body    body    dto.SignInRequest  true  "email, password"
// @Success      200     {object}  dto.SessionResponse
// @Failure      401     {object}  dto.ErrorResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Router       /api/auth/signin [post]
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var in dto.SignInRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.SignIn(c.UserContext(), in)
	if err != nil {
		metrics.IncSignIn("", signInResult(err))
		return writeError(c, err)
	}
	metrics.IncSignIn(out.Role, "ok")
	return c.JSON(out)
}

func signInResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid"
	}
	return "error"
}

// SignOut godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Security     Bearer
// @Success      204
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/signout [post]
func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	claims := GetClaims(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
	}
	if err := h.uc.SignOut(c.UserContext(), claims); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Session godoc
// @Summary      Sesión actual
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SessionInfo
// @Router       /api/auth/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	claims := GetClaims(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
	}
	return c.JSON(h.uc.Session(claims))
}

// RegisterPartner godoc
// @Summary      Registro público de afiliados
// @Description  El afiliado queda Pendente hasta que el back-office lo active.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        apikey  header  string                    true  "Clave pública"
// @Param        body    body    dto.CreatePartnerRequest  true  "Datos del afiliado"
// @Success      201     {object}  dto.PartnerResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      409     {object}  dto.ErrorResponse
// @Router       /api/partners/register [post]
func (h *AuthHandler) RegisterPartner(c *fiber.Ctx) error {
	var in dto.CreatePartnerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.RegisterPartner(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
