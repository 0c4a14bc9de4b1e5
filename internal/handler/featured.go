// internal/handler/featured.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/thinknest/internal/repository"
	"github.com/dangerclosesec/thinknest/internal/service"
	"github.com/go-chi/chi/v5"
)

type FeaturedHandler struct {
	featuredService *service.FeaturedService
}

func NewFeaturedHandler(featuredService *service.FeaturedService) *FeaturedHandler {
	return &FeaturedHandler{featuredService: featuredService}
}

func (h *FeaturedHandler) Routes(admin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/config", h.Config)
	r.Get("/carousel", h.Carousel)
	r.Get("/", h.List)
	r.Get("/{idOrSlug}", h.Get)
	r.With(admin).Post("/", h.Upsert)
	return r
}

func (h *FeaturedHandler) Config(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.featuredService.Config())
}

func (h *FeaturedHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	query := repository.FeaturedQuery{
		Pagination:   q.pagination(repository.DefaultLimit),
		Status:       q.str("status"),
		Category:     q.str("category"),
		Year:         q.intPtr("year"),
		BusinessUnit: q.str("businessUnit"),
		Domain:       q.str("domain"),
		Challenge:    q.str("challenge"),
		Tags:         q.list("tags"),
		Search:       q.str("search"),
		Sort:         q.str("sort"),
	}
	if err := q.err(); err != nil {
		handleError(w, r, err)
		return
	}

	resp, err := h.featuredService.List(r.Context(), query)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

func (h *FeaturedHandler) Carousel(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	limit := q.intOr("limit", 0)
	if err := q.err(); err != nil {
		handleError(w, r, err)
		return
	}

	resp, err := h.featuredService.Carousel(r.Context(), limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

func (h *FeaturedHandler) Get(w http.ResponseWriter, r *http.Request) {
	include := newQueryParams(r).set("include")
	inc := repository.FeaturedInclude{
		Media:        include["media"],
		Impact:       include["impact"],
		Testimonials: include["testimonials"],
	}

	detail, err := h.featuredService.Get(r.Context(), chi.URLParam(r, "idOrSlug"), inc)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, detail)
}

func (h *FeaturedHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var input service.FeaturedUpsertInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	detail, err := h.featuredService.Upsert(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, detail)
}
