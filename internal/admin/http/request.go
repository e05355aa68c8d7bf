package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/aussiebroadwan/roleadmin/pkg/adminsdk"
	"github.com/aussiebroadwan/roleadmin/pkg/httpx"
	"github.com/aussiebroadwan/roleadmin/pkg/slogx"
	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeBody reads a JSON body into dst and validates it. On failure it
// writes the 400 response and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, adminsdk.ErrorResponse{
			Error:            adminsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Request body must be valid JSON",
		})
		return false
	}

	err := validate.Struct(dst)
	if err == nil {
		return true
	}

	details := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			details[fe.Field()] = fe.Tag()
		}
	}
	httpx.WriteJSON(w, http.StatusBadRequest, adminsdk.ValidationErrorResponse{
		Code:    adminsdk.ErrorCodeValidation,
		Message: "validation failed for some fields",
		Details: details,
	})
	return false
}

// queryIDs returns the values of a repeatable query parameter, also
// accepting comma separated lists.
func queryIDs(r *http.Request, key string) []string {
	var out []string
	for _, v := range r.URL.Query()[key] {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				out = append(out, id)
			}
		}
	}
	return out
}

// writeOutcome maps an operation outcome to a response: successCode with no
// body when it is empty, 422 carrying the message otherwise.
func writeOutcome(w http.ResponseWriter, successCode int, outcome string) {
	if outcome == "" {
		httpx.NoCache(w)
		w.WriteHeader(successCode)
		return
	}
	httpx.WriteJSON(w, http.StatusUnprocessableEntity, adminsdk.ErrorResponse{
		Error:            adminsdk.ErrorCodeOperationFailed,
		ErrorDescription: outcome,
	})
}

func writeServerError(w http.ResponseWriter, r *http.Request, desc string, err error) {
	slogx.FromContext(r.Context()).Error(desc, slog.Any("error", err))
	httpx.WriteJSON(w, http.StatusInternalServerError, adminsdk.ErrorResponse{
		Error:            adminsdk.ErrorCodeServerError,
		ErrorDescription: desc,
	})
}

func writeBadRequest(w http.ResponseWriter, desc string) {
	httpx.WriteJSON(w, http.StatusBadRequest, adminsdk.ErrorResponse{
		Error:            adminsdk.ErrorCodeInvalidRequest,
		ErrorDescription: desc,
	})
}
