package http

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/privilege-pass-api/internal/application/dto"
	"github.com/jhoicas/privilege-pass-api/pkg/jwt"
)

// Locals keys para los datos de la sesión en Fiber.
const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
	LocalRole   = "role"
	LocalClaims = "claims"
)

// RevocationChecker lo implementa cache.SessionStore.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// APIKeyMiddleware exige la clave pública del proyecto en el header apikey.
func APIKeyMiddleware(anonKey string) fiber.Handler {
	want := []byte(anonKey)
	return func(c *fiber.Ctx) error {
		got := []byte(c.Get("apikey"))
		if len(got) == 0 || subtle.ConstantTimeCompare(got, want) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_API_KEY", Message: "header apikey ausente o inválido"})
		}
		return c.Next()
	}
}

// AuthMiddleware valida el Bearer Token JWT, rechaza tokens revocados por sign-out y deja los
// claims en c.Locals. revoked puede ser nil (sin lista de revocación).
func AuthMiddleware(jwtSecret string, revoked RevocationChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if revoked != nil {
			isRevoked, err := revoked.IsRevoked(c.UserContext(), claims.ID)
			if err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SESSION_CHECK_FAILED", Message: "no se pudo verificar la sesión, intente más tarde"})
			}
			if isRevoked {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "REVOKED_TOKEN", Message: "la sesión fue cerrada"})
			}
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalEmail, claims.Email)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

// RequireRole autoriza solo los roles indicados. Debe ir DESPUÉS de AuthMiddleware.
// El rol viene firmado en el token; la heurística de email no interviene.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para este recurso"})
	}
}

func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetEmail devuelve el email del token.
func GetEmail(c *fiber.Ctx) string { return localString(c, LocalEmail) }

// GetRole devuelve el rol firmado en el token.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

// GetClaims devuelve los claims completos; nil fuera de rutas autenticadas.
func GetClaims(c *fiber.Ctx) *jwt.Claims {
	claims, _ := c.Locals(LocalClaims).(*jwt.Claims)
	return claims
}
