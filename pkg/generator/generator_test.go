package generator_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/privilege-pass-api/pkg/generator"
)

func TestVoucherCode_LongitudYAlfabeto(t *testing.T) {
	for i := 0; i < 200; i++ {
		code := generator.VoucherCode()
		require.Len(t, code, generator.VoucherCodeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(generator.VoucherAlphabet, r), "carácter fuera del alfabeto: %q", r)
		}
	}
}

func TestVoucherCode_SinAmbiguos(t *testing.T) {
	for _, r := range "0O1I" {
		assert.False(t, strings.ContainsRune(generator.VoucherAlphabet, r))
	}
}

func TestVoucherCode_Distintos(t *testing.T) {
	// estadístico: 32^12 combinaciones
	assert.NotEqual(t, generator.VoucherCode(), generator.VoucherCode())
}

func TestID_UnicoYOrdenable(t *testing.T) {
	a := generator.ID()
	b := generator.ID()
	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
}

func TestAvatarURL(t *testing.T) {
	assert.Equal(t,
		"https://ui-avatars.com/api/?name=Jo%C3%A3o%20Silva&background=random&bold=true",
		generator.AvatarURL("João Silva"))
}

func TestAvatarURL_CaracteresQueElNavegadorNoEscapa(t *testing.T) {
	assert.Equal(t,
		"https://ui-avatars.com/api/?name=O'Neil%20(VIP)!*%20a%2Bb&background=random&bold=true",
		generator.AvatarURL("O'Neil (VIP)!* a+b"))
}

func TestOrderID(t *testing.T) {
	id := generator.OrderID("user-42")
	assert.Regexp(t, regexp.MustCompile(`^PP-\d{13}-[0-9A-Z]{6}-user-42$`), id)
}

func TestCouponCode(t *testing.T) {
	code := generator.CouponCode("carlos andrade")
	assert.Regexp(t, regexp.MustCompile(`^CARLOS[0-9A-Z]{4}$`), code)
	assert.Len(t, generator.CouponCode(""), 4)
}

func TestWhatsAppLink(t *testing.T) {
	assert.Equal(t, "https://wa.me/5521999999999?text=Oi%20tudo%20bem%3F",
		generator.WhatsAppLink("5521999999999", "Oi tudo bem?"))
	assert.Contains(t, generator.WhatsAppLink("5521999999999", "  "), "Privilege%20Pass")
}
