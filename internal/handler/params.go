package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
)

var validate = newValidator()

// newValidator returns a validator that reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// pathUUID binds the chi URL parameter name as a UUID, the way the
// oapi-codegen generated wrappers bind path parameters.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid format for parameter %s: %w", name, err)
	}
	return id, nil
}

// pathInt binds the chi URL parameter name as an int.
func pathInt(r *http.Request, name string) (int, error) {
	var n int
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &n,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, fmt.Errorf("invalid format for parameter %s: %w", name, err)
	}
	return n, nil
}

// queryInt binds an optional integer query parameter. A missing parameter
// leaves the result nil.
func queryInt(r *http.Request, name string) (*int, error) {
	var n *int
	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), &n); err != nil {
		return nil, fmt.Errorf("invalid format for parameter %s: %w", name, err)
	}
	return n, nil
}

// queryFormat binds the optional ?format= parameter and checks it against
// allowed. The first allowed value is the default.
func queryFormat(r *http.Request, allowed ...string) (string, error) {
	var f *string
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &f); err != nil {
		return "", fmt.Errorf("invalid format for parameter format: %w", err)
	}
	if f == nil || *f == "" {
		return allowed[0], nil
	}
	for _, a := range allowed {
		if strings.EqualFold(*f, a) {
			return a, nil
		}
	}
	return "", fmt.Errorf("format must be one of: %s", strings.Join(allowed, ", "))
}

// badParam answers a malformed path or query parameter with 400.
func badParam(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, http.StatusBadRequest, "bad_request", err.Error())
}

// decodeBody decodes a JSON request body into dst and validates it.
// It writes the error response itself and returns false on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			writeError(w, r, http.StatusRequestEntityTooLarge, "payload_too_large",
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
		case errors.Is(err, io.EOF):
			writeError(w, r, http.StatusUnprocessableEntity, "validation_error", "request body is required")
		default:
			writeError(w, r, http.StatusBadRequest, "bad_request", "malformed JSON: "+err.Error())
		}
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "validation_error", validationMessage(err))
		return false
	}
	return true
}
