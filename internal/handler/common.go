// internal/handler/common.go
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dangerclosesec/thinknest/internal/domain"
	"github.com/dangerclosesec/thinknest/internal/repository"
	"github.com/dangerclosesec/thinknest/internal/validation"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

type ErrorResponse struct {
	BaseResponse
	Error   string    `json:"error"`
	Details *[]string `json:"details,omitempty"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// handleError maps service errors onto HTTP statuses. Unknown errors are logged and hidden.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		details := verr.Details
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Validation failed", Details: &details})
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Not Found")
	case errors.Is(err, domain.ErrModuleDisabled):
		respondWithError(w, http.StatusNotFound, "module disabled")
	case errors.Is(err, domain.ErrSlugConflict):
		respondWithError(w, http.StatusConflict, "Slug already in use")
	case errors.Is(err, domain.ErrIdeaRequired):
		respondWithError(w, http.StatusBadRequest, "ideaId must reference an existing idea")
	case errors.Is(err, domain.ErrMediaNotFound):
		respondWithError(w, http.StatusBadRequest, "Referenced media not found")
	case errors.Is(err, domain.ErrSpamDetected):
		respondWithError(w, http.StatusBadRequest, "Spam detected")
	case errors.Is(err, domain.ErrMissingCaptcha):
		respondWithError(w, http.StatusBadRequest, "Missing reCAPTCHA token")
	case errors.Is(err, domain.ErrCaptchaFailed):
		respondWithError(w, http.StatusBadRequest, "reCAPTCHA validation failed")
	case errors.Is(err, domain.ErrMissingFile):
		respondWithError(w, http.StatusBadRequest, "No file uploaded")
	case errors.Is(err, domain.ErrFileTooLarge):
		respondWithError(w, http.StatusRequestEntityTooLarge, "File too large")
	case errors.Is(err, domain.ErrUnauthorized):
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
	default:
		slog.ErrorContext(r.Context(), "request failed",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
			"requestID", chimw.GetReqID(r.Context()),
		)
		respondWithError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

// decodeJSON reads a bounded JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return validation.NewError("request body is required")
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return validation.NewError(fmt.Sprintf("%s has the wrong type", typeErr.Field))
		}
		return validation.NewError("invalid JSON payload")
	}
	return nil
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, validation.NewError("id must be a valid UUID")
	}
	return id, nil
}

// queryParams reads typed query parameters and collects every malformed one.
type queryParams struct {
	values url.Values
	errs   []string
}

func newQueryParams(r *http.Request) *queryParams {
	return &queryParams{values: r.URL.Query()}
}

func (q *queryParams) has(key string) bool {
	return strings.TrimSpace(q.values.Get(key)) != ""
}

func (q *queryParams) str(key string) string {
	return strings.TrimSpace(q.values.Get(key))
}

func (q *queryParams) intOr(key string, def int) int {
	raw := q.str(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		q.errs = append(q.errs, key+" must be an integer")
		return def
	}
	return v
}

func (q *queryParams) intPtr(key string) *int {
	if !q.has(key) {
		return nil
	}
	v := q.intOr(key, 0)
	return &v
}

func (q *queryParams) boolPtr(key string) *bool {
	raw := q.str(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		q.errs = append(q.errs, key+" must be true or false")
		return nil
	}
	return &v
}

func (q *queryParams) boolOr(key string, def bool) bool {
	if v := q.boolPtr(key); v != nil {
		return *v
	}
	return def
}

// list merges comma separated values from every key, e.g. tag=a&tags=b,c.
func (q *queryParams) list(keys ...string) []string {
	var out []string
	for _, key := range keys {
		for _, raw := range q.values[key] {
			for _, part := range strings.Split(raw, ",") {
				if p := strings.TrimSpace(part); p != "" {
					out = append(out, p)
				}
			}
		}
	}
	return out
}

func (q *queryParams) intList(keys ...string) []int {
	var out []int
	for _, raw := range q.list(keys...) {
		v, err := strconv.Atoi(raw)
		if err != nil {
			q.errs = append(q.errs, fmt.Sprintf("%s must be a list of integers", keys[len(keys)-1]))
			return nil
		}
		out = append(out, v)
	}
	return out
}

// time accepts RFC3339 or YYYY-MM-DD. With endOfDay a bare date covers the whole day.
func (q *queryParams) time(key string, endOfDay bool) *time.Time {
	raw := q.str(key)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		q.errs = append(q.errs, key+" must be an RFC3339 timestamp or YYYY-MM-DD date")
		return nil
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t
}

// set parses a comma separated flag list such as include=ideas,awards.
func (q *queryParams) set(key string) map[string]bool {
	out := make(map[string]bool)
	for _, v := range q.list(key) {
		out[strings.ToLower(v)] = true
	}
	return out
}

func (q *queryParams) pagination(defaultLimit int) repository.Pagination {
	return repository.Pagination{
		Page:  q.intOr("page", repository.DefaultPage),
		Limit: q.intOr("limit", defaultLimit),
	}
}

func (q *queryParams) err() error {
	if len(q.errs) == 0 {
		return nil
	}
	return validation.NewError(q.errs...)
}
