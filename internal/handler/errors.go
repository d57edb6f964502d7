package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pkordes/travel-package/internal/domain"
)

// ErrorDetail is the body of every error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps ErrorDetail as {"error":{...}}.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "encode response failed",
			"method", r.Method, "path", r.URL.Path, "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, r, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// fail maps a service error to its status and error code. notFound is the
// message used for domain.ErrNotFound, since only the handler knows what was
// being looked up. Unrecognised errors are logged and become 500.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not_found", notFound)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, r, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err, domain.ErrValidation))
	case errors.Is(err, domain.ErrPackageFull):
		writeError(w, r, http.StatusConflict, "package_full", unwrapMessage(err, domain.ErrPackageFull))
	case errors.Is(err, domain.ErrConflict):
		writeError(w, r, http.StatusConflict, "conflict", unwrapMessage(err, domain.ErrConflict))
	default:
		s.log.ErrorContext(r.Context(), "request failed",
			"method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, r, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// unwrapMessage extracts the human-readable part of a wrapped sentinel error.
// Text following the sentinel wins:
//
//	"service.BookingService.CreatePackage: validation error: package name is required" → "package name is required"
//
// Otherwise the "pkg.Type.Op" prefixes are dropped and the rest kept:
//
//	"service.BookingService.Enroll: passenger 1 already enrolled: conflict" → "passenger 1 already enrolled: conflict"
func unwrapMessage(err, sentinel error) string {
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if i := strings.Index(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	parts := strings.Split(msg, ": ")
	kept := parts[:0]
	for _, p := range parts {
		if strings.Contains(p, ".") && !strings.Contains(p, " ") {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, ": ")
}

// validationMessage flattens validator errors into one line, using the JSON
// field names registered in newValidator.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "gt":
			msgs = append(msgs, fe.Field()+" must be greater than "+fe.Param())
		case "gte", "min":
			msgs = append(msgs, fe.Field()+" must be at least "+fe.Param())
		case "max":
			msgs = append(msgs, fe.Field()+" must be at most "+fe.Param()+" characters")
		case "oneof":
			msgs = append(msgs, fe.Field()+" must be one of: "+strings.ReplaceAll(fe.Param(), " ", ", "))
		case "uuid":
			msgs = append(msgs, fe.Field()+" must be a UUID")
		default:
			msgs = append(msgs, fe.Field()+" is invalid ("+fe.Tag()+")")
		}
	}
	return strings.Join(msgs, "; ")
}
