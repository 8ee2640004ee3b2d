// Package password hashea y verifica credenciales con bcrypt.
//
// Las cuentas heredadas pueden tener la contraseña guardada en texto plano; Verify las acepta una
// vez e indica que deben re-hashearse (upgrade-on-login).
package password

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Hash devuelve el hash bcrypt de plain.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// IsHash indica si stored ya es un hash bcrypt.
func IsHash(stored string) bool {
	_, err := bcrypt.Cost([]byte(stored))
	return err == nil
}

// Verify compara plain con el valor guardado. needsRehash es true cuando stored estaba en texto plano
// y coincidió.
func Verify(stored, plain string) (ok, needsRehash bool) {
	if stored == "" {
		return false, false
	}
	if IsHash(stored) {
		err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain))
		if err != nil && !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, false
		}
		return err == nil, false
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(plain)) == 1 {
		return true, true
	}
	return false, false
}
