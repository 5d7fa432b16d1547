// Package response writes the JSON envelope every endpoint returns:
//
//	{"success": true,  "data": {...}}
//	{"success": false, "data": null, "error": "Product not found"}
//
// Validation failures also carry a field → reason map under "errors".
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shashiranjanraj/shopadmin/pkg/apperr"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Success bool              `json:"success"`
	Data    interface{}       `json:"data"`
	Error   string            `json:"error,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Write encodes body with the given status.
func Write(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// Success sends a 200 with data.
func Success(w http.ResponseWriter, data interface{}) {
	Write(w, http.StatusOK, Envelope{Success: true, Data: data})
}

// Created sends a 201 with data.
func Created(w http.ResponseWriter, data interface{}) {
	Write(w, http.StatusCreated, Envelope{Success: true, Data: data})
}

// Error sends a failure envelope with the given status and message.
func Error(w http.ResponseWriter, status int, message string) {
	Write(w, status, Envelope{Success: false, Error: message})
}

// Fail maps err through the error taxonomy: validation → 400,
// not found → 404, anything else → 500 with a generic message.
func Fail(w http.ResponseWriter, err error) {
	body := Envelope{Success: false, Error: apperr.Message(err)}

	var e *apperr.Error
	if errors.As(err, &e) && len(e.Fields) > 0 {
		body.Errors = e.Fields
	}

	Write(w, apperr.Status(err), body)
}

// Unauthorized sends a 401.
func Unauthorized(w http.ResponseWriter, message ...string) {
	Error(w, http.StatusUnauthorized, first(message, "Unauthorized"))
}

// Forbidden sends a 403.
func Forbidden(w http.ResponseWriter, message ...string) {
	Error(w, http.StatusForbidden, first(message, "Forbidden"))
}

// NotFound sends a 404.
func NotFound(w http.ResponseWriter, message ...string) {
	Error(w, http.StatusNotFound, first(message, "Not found"))
}

// MethodNotAllowed sends a 405.
func MethodNotAllowed(w http.ResponseWriter) {
	Error(w, http.StatusMethodNotAllowed, "Method not allowed")
}

// TooManyRequests sends a 429.
func TooManyRequests(w http.ResponseWriter) {
	Error(w, http.StatusTooManyRequests, "Too many requests")
}

func first(msgs []string, fallback string) string {
	if len(msgs) > 0 && msgs[0] != "" {
		return msgs[0]
	}
	return fallback
}
