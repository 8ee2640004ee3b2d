// Package format convierte valores crudos en textos de presentación (locale pt-BR).
// La salida es solo para mostrar; nunca se vuelve a leer como dato numérico.
package format

import (
	"errors"
	"strings"
	"time"
	_ "time/tzdata" // America/Sao_Paulo disponible también en imágenes mínimas

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ErrInvalidCPF el CPF no tiene exactamente 11 dígitos (o, en ValidCPF, dígitos verificadores incorrectos).
var ErrInvalidCPF = errors.New("CPF inválido")

const (
	dateLayout     = "02/01/2006"
	dateTimeLayout = "02/01/2006, 15:04:05"
	currencySymbol = "R$ "
)

var location = loadLocation()

func loadLocation() *time.Location {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		return time.FixedZone("BRT", -3*60*60)
	}
	return loc
}

// Price formatea un valor en reales: R$ 1.234,50. Negativos llevan el signo antes del símbolo.
func Price(v decimal.Decimal) string {
	sign := ""
	if v.IsNegative() {
		sign = "-"
		v = v.Abs()
	}
	f, _ := v.Round(2).Float64()
	p := message.NewPrinter(language.BrazilianPortuguese)
	return sign + currencySymbol + p.Sprint(number.Decimal(f, number.Scale(2)))
}

// Date formatea la fecha como dd/mm/aaaa en horario de Brasília.
func Date(t time.Time) string {
	return t.In(location).Format(dateLayout)
}

// DateTime formatea fecha y hora como dd/mm/aaaa, hh:mm:ss en horario de Brasília.
func DateTime(t time.Time) string {
	return t.In(location).Format(dateTimeLayout)
}

// DateString acepta una fecha ISO-8601; si no se puede interpretar devuelve la entrada sin cambios.
func DateString(s string) string {
	t, ok := parseISO(s)
	if !ok {
		return s
	}
	return Date(t)
}

// DateTimeString igual que DateString pero con hora.
func DateTimeString(s string) string {
	t, ok := parseISO(s)
	if !ok {
		return s
	}
	return DateTime(t)
}

func parseISO(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, location); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Digits elimina todo lo que no sea dígito ASCII.
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// Phone formatea celulares (11 dígitos) y fijos (10 dígitos) con DDD.
// Cualquier otra cantidad de dígitos devuelve la entrada sin cambios: no es un error,
// solo significa que no es un teléfono reconocible.
func Phone(raw string) string {
	d := Digits(raw)
	switch len(d) {
	case 11:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	case 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	}
	return raw
}

// CPF formatea como DDD.DDD.DDD-DD. Exige exactamente 11 dígitos; si no, ErrInvalidCPF.
// No verifica los dígitos verificadores (ver ValidCPF).
func CPF(raw string) (string, error) {
	d := Digits(raw)
	if len(d) != 11 {
		return "", ErrInvalidCPF
	}
	return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:], nil
}

// ValidCPF verifica longitud y los dos dígitos verificadores (módulo 11).
// Secuencias repetidas (000.000.000-00, 111...) se rechazan.
func ValidCPF(raw string) bool {
	d := Digits(raw)
	if len(d) != 11 || strings.Count(d, d[:1]) == 11 {
		return false
	}
	check := func(n int) byte {
		sum := 0
		for i := 0; i < n; i++ {
			sum += int(d[i]-'0') * (n + 1 - i)
		}
		r := (sum * 10) % 11
		if r == 10 {
			r = 0
		}
		return byte(r) + '0'
	}
	return check(9) == d[9] && check(10) == d[10]
}

// VoucherCode limpia el código (solo A-Z y 0-9), lo pasa a mayúsculas y lo agrupa de a 4 con guiones.
// Si no queda ningún carácter devuelve la entrada original.
func VoucherCode(raw string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r >= 'A' && r <= 'Z':
			return r
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		}
		return -1
	}, raw)
	if clean == "" {
		return raw
	}
	var b strings.Builder
	for i := 0; i < len(clean); i += 4 {
		if i > 0 {
			b.WriteByte('-')
		}
		end := i + 4
		if end > len(clean) {
			end = len(clean)
		}
		b.WriteString(clean[i:end])
	}
	return b.String()
}
