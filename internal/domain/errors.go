package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrStorage            = errors.New("error de almacenamiento")
	ErrNoAccessLeft       = errors.New("voucher sin accesos disponibles")
	ErrCouponTaken        = errors.New("el cupón ya está en uso")
)

// DuplicateError indica qué campo violó una restricción de unicidad (ej. "email", "couponCode").
// errors.Is(err, ErrDuplicate) es verdadero para todo DuplicateError.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	if e.Field == "" {
		return ErrDuplicate.Error()
	}
	return ErrDuplicate.Error() + ": " + e.Field
}

// Is permite errors.Is(err, ErrDuplicate).
func (e *DuplicateError) Is(target error) bool { return target == ErrDuplicate }

// DuplicateField devuelve el campo duplicado o "" si err no es un DuplicateError.
func DuplicateField(err error) string {
	var de *DuplicateError
	if errors.As(err, &de) {
		return de.Field
	}
	return ""
}

// StorageError envuelve cualquier fallo del backend de almacenamiento.
// errors.Is(err, ErrStorage) es verdadero para todo StorageError.
type StorageError struct {
	Op  string // ej. "customers.get_all"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, ErrStorage).
func (e *StorageError) Is(target error) bool { return target == ErrStorage }

// NewStorageError construye un StorageError; devuelve nil si err es nil.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// ValidationError reúne los campos inválidos de una petición. Se detecta antes de cualquier escritura.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError crea un ValidationError con un único campo.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f, m := range e.Fields {
		parts = append(parts, f+": "+m)
	}
	sort.Strings(parts)
	return "validación: " + strings.Join(parts, "; ")
}

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }
