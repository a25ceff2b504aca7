package transport

import (
	"encoding/json"
	goerrors "errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/RrD-111/chat-api/errors"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

// validate checks the request DTOs that carry rules of their own (group
// name, message content). Credential rules live in the auth package.
var validate = validator.New()

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// respondError maps the stable error kinds to HTTP statuses. Anything
// outside the taxonomy is a server-side failure.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var validationErrs validator.ValidationErrors
	switch {
	case goerrors.Is(err, errors.ErrUnauthenticated):
		status = http.StatusUnauthorized
		w.Header().Set("WWW-Authenticate", "Bearer")
	case goerrors.Is(err, errors.ErrForbidden):
		status = http.StatusForbidden
	case goerrors.Is(err, errors.ErrNotFound):
		status = http.StatusNotFound
	case goerrors.Is(err, errors.ErrConflict):
		status = http.StatusConflict
	case goerrors.As(err, &validationErrs):
		status = http.StatusBadRequest
	}

	respondJSON(w, status, errorResponse{Detail: err.Error()})
}
