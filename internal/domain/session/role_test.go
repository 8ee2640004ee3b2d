package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/privilege-pass-api/internal/domain/session"
)

func TestResolveRole(t *testing.T) {
	cases := []struct {
		email string
		want  session.Role
	}{
		{"admin@x.com", session.RoleAdmin},
		{"pilot@lounge.example", session.RolePartner},
		{"traveler@gmail.com", session.RoleCustomer},
		{"Maria@PrivilegePass.com.br", session.RoleAdmin},
		{"partner.joao@gmail.com", session.RolePartner},
		{"  ADMIN@lounge.example ", session.RoleAdmin}, // admin tiene prioridad
	}
	for _, tc := range cases {
		t.Run(tc.email, func(t *testing.T) {
			assert.Equal(t, tc.want, session.ResolveRole(tc.email, session.DefaultMarkers))
		})
	}
}

func TestResolveRole_MarcadoresPersonalizados(t *testing.T) {
	m := session.Markers{Admin: []string{"@staff.example"}, Partner: []string{"@drivers.example"}}

	assert.Equal(t, session.RoleAdmin, session.ResolveRole("ana@staff.example", m))
	assert.Equal(t, session.RolePartner, session.ResolveRole("leo@drivers.example", m))
	// "admin" ya no es marcador con esta configuración
	assert.Equal(t, session.RoleCustomer, session.ResolveRole("admin@gmail.com", m))
}

func TestResolveRole_MarcadorVacioSeIgnora(t *testing.T) {
	m := session.Markers{Admin: []string{""}, Partner: nil}
	assert.Equal(t, session.RoleCustomer, session.ResolveRole("alguien@x.com", m))
}
