// internal/handler/jury.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/thinknest/internal/repository"
	"github.com/dangerclosesec/thinknest/internal/service"
	"github.com/dangerclosesec/thinknest/internal/validation"
	"github.com/go-chi/chi/v5"
)

type JuryHandler struct {
	juryService *service.JuryService
}

func NewJuryHandler(juryService *service.JuryService) *JuryHandler {
	return &JuryHandler{juryService: juryService}
}

func (h *JuryHandler) Routes(admin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/grouped", h.Grouped)
	r.Get("/years", h.Years)
	r.Get("/expertises", h.Expertises)
	r.Get("/{id}", h.Get)
	r.With(admin).Post("/", h.Create)
	return r
}

func parseJuryQuery(r *http.Request) (repository.JuryQuery, error) {
	q := newQueryParams(r)
	query := repository.JuryQuery{
		Pagination: q.pagination(repository.DefaultLimit),
		Years:      q.intList("year", "years"),
		Search:     q.str("search"),
		Department: q.str("department"),
		Expertise:  q.str("expertise"),
		Role:       q.str("role"),
		Sort:       q.str("sort"),
	}
	return query, q.err()
}

// List serves GET /jury. groupBy=year switches to the grouped response.
func (h *JuryHandler) List(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("groupBy") {
	case "":
	case "year":
		h.Grouped(w, r)
		return
	default:
		handleError(w, r, validation.NewError("groupBy must be one of [year]"))
		return
	}

	query, err := parseJuryQuery(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	resp, err := h.juryService.List(r.Context(), query)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

func (h *JuryHandler) Grouped(w http.ResponseWriter, r *http.Request) {
	query, err := parseJuryQuery(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	resp, err := h.juryService.Grouped(r.Context(), query)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

func (h *JuryHandler) Years(w http.ResponseWriter, r *http.Request) {
	resp, err := h.juryService.Years(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

func (h *JuryHandler) Expertises(w http.ResponseWriter, r *http.Request) {
	resp, err := h.juryService.Expertises(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

func (h *JuryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}

	detail, err := h.juryService.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, detail)
}

func (h *JuryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.JuryCreateInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	detail, err := h.juryService.Create(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, detail)
}
