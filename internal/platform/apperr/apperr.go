// Package apperr define la taxonomía de errores compartida por los módulos:
// validación, no encontrado (o ajeno) y no autenticado. Cualquier otro error
// se trata como falla de almacenamiento en el borde HTTP.
package apperr

import (
	"errors"
	"strings"
)

var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("not found")
	ErrUnauthenticated = errors.New("unauthenticated")
)

// Error conserva un mensaje legible para el cliente y la categoría (Kind)
// con la que se compara vía errors.Is.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return e.Kind.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Kind }

func Validation(msg string) error {
	return &Error{Kind: ErrValidation, Message: msg}
}

func NotFound(msg string) error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

func Unauthenticated(msg string) error {
	return &Error{Kind: ErrUnauthenticated, Message: msg}
}

// IsBusiness indica si el error es reportable al cliente tal cual
// (validación, no encontrado, no autenticado).
func IsBusiness(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUnauthenticated)
}

// Message devuelve el texto a mostrar; para errores no de negocio devuelve fallback.
func Message(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	if IsBusiness(err) {
		return err.Error()
	}
	return fallback
}
