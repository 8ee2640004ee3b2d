// Package session clasifica una sesión en el conjunto de pantallas que debe ver.
//
// ResolveRole es una heurística sobre el email pensada SOLO para enrutar la interfaz.
// No es un límite de seguridad: la autorización real se hace con el rol firmado en el JWT
// (ver pkg/jwt y el middleware RequireRole).
package session

import "strings"

// Role rol funcional de un usuario.
type Role string

const (
	RoleAdmin    Role = "admin"
	RolePartner  Role = "partner"
	RoleCustomer Role = "customer"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RolePartner || r == RoleCustomer
}

// Markers subcadenas que identifican cada rol en el email.
type Markers struct {
	Admin   []string
	Partner []string
}

// DefaultMarkers dominio del back-office y literales usados por el producto.
var DefaultMarkers = Markers{
	Admin:   []string{"admin", "@privilegepass.com.br"},
	Partner: []string{"partner", "lounge"},
}

// ResolveRole aplica las reglas en orden de prioridad: admin > partner > customer.
func ResolveRole(email string, m Markers) Role {
	e := strings.ToLower(strings.TrimSpace(email))
	if containsAny(e, m.Admin) {
		return RoleAdmin
	}
	if containsAny(e, m.Partner) {
		return RolePartner
	}
	return RoleCustomer
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		sub = strings.ToLower(strings.TrimSpace(sub))
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
