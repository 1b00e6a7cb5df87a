package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"caritasAPI/internal/models"
	"caritasAPI/internal/service"
)

const maxBodyBytes = 1 << 20

type ErrorResponse struct {
	Message string `json:"message"`
}

type ValidationResponse struct {
	Errors []models.FieldError `json:"errors"`
}

func writeJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, ErrorResponse{Message: message}, statusCode)
}

func writeValidation(w http.ResponseWriter, fields []models.FieldError) {
	writeJSON(w, ValidationResponse{Errors: fields}, http.StatusBadRequest)
}

var kindStatus = map[service.Kind]int{
	service.KindInvalid:         http.StatusBadRequest,
	service.KindUnauthorized:    http.StatusUnauthorized,
	service.KindForbidden:       http.StatusForbidden,
	service.KindNotFound:        http.StatusNotFound,
	service.KindConflict:        http.StatusConflict,
	service.KindPaymentRequired: http.StatusPaymentRequired,
}

// fail answers a service error. Anything the service did not classify is logged and reported as an opaque 500.
func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		writeValidation(w, verr.Fields)
		return
	}

	var serr *service.Error
	if errors.As(err, &serr) {
		if status, ok := kindStatus[serr.Kind]; ok {
			writeError(w, serr.Message, status)
			return
		}
	}

	h.Logger.Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err))
	writeError(w, "Server error", http.StatusInternalServerError)
}

// decode reads a JSON body into dst and runs struct validation.
// It writes the 400 response itself and returns false when the request cannot proceed.
func (h *Handlers) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			writeValidation(w, []models.FieldError{{Field: typeErr.Field, Message: typeMessage(typeErr)}})
			return false
		}
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return false
	}

	if fields := h.validate(dst); len(fields) > 0 {
		writeValidation(w, fields)
		return false
	}
	return true
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeError(w, "Route not found", http.StatusNotFound)
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
}
