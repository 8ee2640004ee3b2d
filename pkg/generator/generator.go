// Package generator produce identificadores y códigos opacos.
package generator

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// VoucherAlphabet alfabeto sin caracteres ambiguos (sin 0/O, 1/I/L).
const VoucherAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// VoucherCodeLength longitud de un código de voucher.
const VoucherCodeLength = 12

const (
	avatarBaseURL   = "https://ui-avatars.com/api/"
	whatsAppBaseURL = "https://wa.me/"
	orderPrefix     = "PP"
	base36Upper     = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// DefaultSupportMessage texto usado cuando el usuario no escribe nada.
const (
	DefaultSupportMessage = "Olá! Preciso de ajuda com o Privilege Pass."
)

// ID devuelve un identificador ordenable por tiempo (ULID: timestamp + aleatorio).
// Solo para claves efímeras del cliente; el ID definitivo de una entidad lo asigna la base de datos.
func ID() string {
	return ulid.Make().String()
}

// VoucherCode devuelve 12 caracteres tomados uniformemente de VoucherAlphabet.
func VoucherCode() string {
	return randomString(VoucherAlphabet, VoucherCodeLength)
}

// AvatarURL URL determinística del servicio de avatares para un nombre.
func AvatarURL(name string) string {
	return avatarBaseURL + "?name=" + encodeURIComponent(name) + "&background=random&bold=true"
}

// OrderID compone PP-<unix ms>-<6 aleatorios>-<userID>.
func OrderID(userID string) string {
	ms := strconv.FormatInt(time.Now().UnixMilli(), 10)
	return fmt.Sprintf("%s-%s-%s-%s", orderPrefix, ms, randomString(base36Upper, 6), userID)
}

// CouponCode sugiere un cupón para un afiliado: primer nombre en mayúsculas + 4 caracteres aleatorios.
func CouponCode(name string) string {
	first := ""
	if fields := strings.Fields(name); len(fields) > 0 {
		first = strings.ToUpper(fields[0])
	}
	return first + randomString(base36Upper, 4)
}

// WhatsAppLink enlace de conversación con texto prellenado. Canal de solo escritura.
func WhatsAppLink(number, text string) string {
	if strings.TrimSpace(text) == "" {
		text = DefaultSupportMessage
	}
	return whatsAppBaseURL + number + "?text=" + encodeURIComponent(text)
}

func randomString(alphabet string, n int) string {
	max := big.NewInt(int64(len(alphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic("generator: crypto/rand no disponible: " + err.Error())
		}
		b[i] = alphabet[idx.Int64()]
	}
	return string(b)
}

// uriUnreserved deshace lo que QueryEscape codifica de más respecto a encodeURIComponent.
var uriUnreserved = strings.NewReplacer(
	"+", "%20", "%21", "!", "%27", "'", "%28", "(", "%29", ")", "%2A", "*",
)

// encodeURIComponent codifica como el navegador: espacios como %20 y !'()* sin escapar.
func encodeURIComponent(s string) string {
	return uriUnreserved.Replace(url.QueryEscape(s))
}
