package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// errorResponse is the error body returned by module routers.
type errorResponse struct {
	Detail string `json:"detail"`
}

// ReadJSON decodes a JSON request body into dst. Malformed bodies map to a
// validation error so handlers answer with 400, not 500.
func ReadJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return NewValidationError(fmt.Errorf("invalid request body: %w", err))
	}
	return nil
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// The status line is already written; nothing sensible left to do.
		return
	}
}

// WriteError maps an error onto its HTTP status code and writes the error
// body.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrDuplicated):
		status = http.StatusConflict
	}

	detail := err.Error()
	if status == http.StatusInternalServerError {
		// Do not leak internals to clients.
		detail = "internal server error"
	}

	WriteJSON(w, status, errorResponse{Detail: detail})
}

// PageParams reads the "page" and "size" query parameters. Missing or
// malformed values fall back to defaults.
func PageParams(r *http.Request) PageRequest {
	query := r.URL.Query()

	page, err := strconv.Atoi(query.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(query.Get("size"))
	if err != nil || size < 1 {
		size = DefaultPageSize
	}

	return PageRequest{Page: page, Size: size}.normalized()
}
