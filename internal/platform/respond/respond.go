// Package respond escribe el envelope {success, data | message} que comparten
// todos los módulos. Antes cada handler tenía su propio writeJSON; con seis
// módulos ya convenía extraerlo.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"pet-health/internal/platform/apperr"
	"pet-health/internal/platform/logger"
)

const (
	GenericFailure = "internal server error"
	BodyTooLarge   = "request body too large"
)

type success struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type failure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK: 200 con data (puede ser nil, p.ej. en deletes).
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, success{Success: true, Data: data})
}

// Fail: falla de negocio; el status HTTP sigue siendo 200.
func Fail(w http.ResponseWriter, message string) {
	JSON(w, http.StatusOK, failure{Success: false, Message: message})
}

// Status: condiciones de transporte (404 de ruta, 400 json inválido, 500).
func Status(w http.ResponseWriter, status int, message string) {
	JSON(w, status, failure{Success: false, Message: message})
}

// Error clasifica err: negocio -> Fail con su mensaje; resto -> log con stack
// y 500 con mensaje genérico (sin detalle interno).
func Error(w http.ResponseWriter, log logger.Logger, err error, op string) {
	if apperr.IsBusiness(err) {
		Fail(w, apperr.Message(err, GenericFailure))
		return
	}
	if log != nil {
		log.Error("storage fault", map[string]any{
			"op":    op,
			"error": fmt.Sprintf("%+v", err),
		})
	}
	Status(w, http.StatusInternalServerError, GenericFailure)
}

// DecodeJSON decodifica el body en v; en error ya respondió 413 (body sobre el
// límite) o 400.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if IsBodyTooLarge(err) {
			Status(w, http.StatusRequestEntityTooLarge, BodyTooLarge)
			return false
		}
		Status(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// IsBodyTooLarge reconoce el error de http.MaxBytesReader.
func IsBodyTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}
