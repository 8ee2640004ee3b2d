package format_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/privilege-pass-api/pkg/format"
)

func TestPhone(t *testing.T) {
	assert.Equal(t, "(11) 98765-4321", format.Phone("11987654321"))
	assert.Equal(t, "(11) 98765-4321", format.Phone("+ (11) 98765 4321"))
	assert.Equal(t, "(21) 3456-7890", format.Phone("2134567890"))

	// Cantidad de dígitos no reconocida: se devuelve la entrada tal cual
	assert.Equal(t, "12345", format.Phone("12345"))
	assert.Equal(t, "+55 11 98765-4321", format.Phone("+55 11 98765-4321"))
	assert.Equal(t, "", format.Phone(""))
}

func TestVoucherCode(t *testing.T) {
	assert.Equal(t, "AB12-CD34", format.VoucherCode("ab12-cd34!!"))
	assert.Equal(t, "ABCD-EFGH-JK", format.VoucherCode("abcdefghjk"))
	assert.Equal(t, "X", format.VoucherCode(" x "))
	assert.Equal(t, "---", format.VoucherCode("---"), "sin caracteres válidos devuelve la entrada")
}

func TestCPF(t *testing.T) {
	out, err := format.CPF("52998224725")
	require.NoError(t, err)
	assert.Equal(t, "529.982.247-25", out)

	out, err = format.CPF("529.982.247-25")
	require.NoError(t, err)
	assert.Equal(t, "529.982.247-25", out)

	_, err = format.CPF("1234567890")
	assert.ErrorIs(t, err, format.ErrInvalidCPF, "menos de 11 dígitos falla en lugar de adivinar")

	_, err = format.CPF("123456789012")
	assert.ErrorIs(t, err, format.ErrInvalidCPF)
}

func TestValidCPF(t *testing.T) {
	assert.True(t, format.ValidCPF("529.982.247-25"))
	assert.True(t, format.ValidCPF("11144477735"))
	assert.False(t, format.ValidCPF("529.982.247-26"), "dígito verificador incorrecto")
	assert.False(t, format.ValidCPF("111.111.111-11"), "secuencia repetida")
	assert.False(t, format.ValidCPF("123"))
}

func TestPrice(t *testing.T) {
	out := format.Price(decimal.RequireFromString("1234.5"))
	assert.True(t, strings.HasPrefix(out, "R$"), out)
	assert.Contains(t, out, "1.234,50")

	zero := format.Price(decimal.Zero)
	assert.Contains(t, zero, "0,00")

	neg := format.Price(decimal.NewFromInt(-10))
	assert.True(t, strings.HasPrefix(neg, "-R$"), neg)
	assert.Contains(t, neg, "10,00")
}

func TestDate(t *testing.T) {
	// 15:30 UTC = 12:30 en São Paulo (UTC-3, sin horario de verano desde 2019)
	ts := time.Date(2024, 3, 5, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "05/03/2024", format.Date(ts))
	assert.Equal(t, "05/03/2024, 12:30:00", format.DateTime(ts))

	assert.Equal(t, "05/03/2024", format.DateString("2024-03-05"))
	assert.Equal(t, "05/03/2024, 12:30:00", format.DateTimeString("2024-03-05T15:30:00Z"))
	assert.Equal(t, "ontem", format.DateString("ontem"), "entrada no ISO se devuelve sin cambios")
}
