// internal/handler/case_study.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/thinknest/internal/repository"
	"github.com/dangerclosesec/thinknest/internal/service"
	"github.com/go-chi/chi/v5"
)

type CaseStudyHandler struct {
	caseStudyService *service.CaseStudyService
}

func NewCaseStudyHandler(caseStudyService *service.CaseStudyService) *CaseStudyHandler {
	return &CaseStudyHandler{caseStudyService: caseStudyService}
}

func (h *CaseStudyHandler) Routes(admin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/featured", h.Featured)
	r.Get("/filters/meta", h.FilterMeta)
	r.Get("/{idOrSlug}", h.Get)
	r.With(admin).Post("/", h.Upsert)
	return r
}

func (h *CaseStudyHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	query := repository.CaseStudyQuery{
		Pagination: q.pagination(repository.DefaultLimit),
		Search:     q.str("q"),
		Department: q.str("department"),
		Year:       q.intPtr("year"),
		ImpactType: q.str("impactType"),
		Tag:        q.str("tag"),
		Featured:   q.boolPtr("featured"),
	}
	if err := q.err(); err != nil {
		handleError(w, r, err)
		return
	}

	resp, err := h.caseStudyService.List(r.Context(), query)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

func (h *CaseStudyHandler) Featured(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	limit := q.intOr("limit", 0)
	if err := q.err(); err != nil {
		handleError(w, r, err)
		return
	}

	resp, err := h.caseStudyService.Featured(r.Context(), limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

func (h *CaseStudyHandler) FilterMeta(w http.ResponseWriter, r *http.Request) {
	meta, err := h.caseStudyService.FilterMeta(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, meta)
}

func (h *CaseStudyHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.caseStudyService.Get(r.Context(), chi.URLParam(r, "idOrSlug"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, detail)
}

func (h *CaseStudyHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var input service.CaseStudyUpsertInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	detail, err := h.caseStudyService.Upsert(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, detail)
}
