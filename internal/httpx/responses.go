package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Huntitude/locallibrary/internal/catalog"
)

type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   ErrorResponseBody `json:"error"`
	Meta    interface{}       `json:"meta,omitempty"`
}

type ErrorResponseBody struct {
	Code    string               `json:"code"`
	Message string               `json:"message"`
	Details []catalog.FieldError `json:"details,omitempty"`
}

func buildMeta(r *http.Request, customMeta map[string]any) interface{} {
	requestID := RequestIDFrom(r)
	if requestID == "" && customMeta == nil {
		return nil
	}
	meta := make(map[string]any, len(customMeta)+1)
	for k, v := range customMeta {
		meta[k] = v
	}
	if requestID != "" {
		meta["request_id"] = requestID
	}
	return meta
}

func JSONSuccess(r *http.Request, w http.ResponseWriter, data interface{}, customMeta map[string]any) {
	writeJSON(w, http.StatusOK, SuccessResponse{
		Success: true,
		Data:    data,
		Meta:    buildMeta(r, customMeta),
	})
}

func JSONCreated(r *http.Request, w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, SuccessResponse{
		Success: true,
		Data:    data,
		Meta:    buildMeta(r, nil),
	})
}

func JSONNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func JSONError(r *http.Request, w http.ResponseWriter, statusCode int, code string, message string, details []catalog.FieldError) {
	writeJSON(w, statusCode, ErrorResponse{
		Success: false,
		Error: ErrorResponseBody{
			Code:    code,
			Message: message,
			Details: details,
		},
		Meta: buildMeta(r, nil),
	})
}

// JSONDomainError translates the domain error kinds into their HTTP
// renderings. Unknown errors become opaque 500s.
func JSONDomainError(r *http.Request, w http.ResponseWriter, err error) {
	var verr *catalog.ValidationError
	switch {
	case errors.As(err, &verr):
		JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", verr.Fields)
	case errors.Is(err, catalog.ErrNotFound):
		JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "Record not found", nil)
	case errors.Is(err, catalog.ErrPermission):
		JSONError(r, w, http.StatusForbidden, "PERMISSION_DENIED", "Permission denied", nil)
	case errors.Is(err, catalog.ErrConflict):
		JSONError(r, w, http.StatusConflict, "CONFLICT", "Record was modified concurrently", nil)
	case errors.Is(err, catalog.ErrMissingData):
		JSONError(r, w, http.StatusUnprocessableEntity, "MISSING_DATA", "Record lacks the data required for this operation", nil)
	default:
		JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
