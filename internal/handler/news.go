// internal/handler/news.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/thinknest/internal/repository"
	"github.com/dangerclosesec/thinknest/internal/service"
	"github.com/go-chi/chi/v5"
)

type NewsHandler struct {
	newsService *service.NewsService
}

func NewNewsHandler(newsService *service.NewsService) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

func (h *NewsHandler) Routes(admin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/highlights", h.Highlights)
	r.Get("/{idOrSlug}", h.Get)

	r.Group(func(r chi.Router) {
		r.Use(admin)
		r.Post("/", h.Upsert)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
	return r
}

func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	query := repository.NewsQuery{
		Pagination:    q.pagination(repository.DefaultLimit),
		Search:        q.str("q"),
		Tag:           q.str("tag"),
		Category:      q.str("category"),
		Featured:      q.boolPtr("featured"),
		From:          q.time("from", false),
		To:            q.time("to", true),
		PublishedOnly: q.boolOr("publishedOnly", true),
		Sort:          q.str("sort"),
	}
	if err := q.err(); err != nil {
		handleError(w, r, err)
		return
	}

	resp, err := h.newsService.List(r.Context(), query)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

func (h *NewsHandler) Highlights(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	limit := q.intOr("limit", 0)
	if err := q.err(); err != nil {
		handleError(w, r, err)
		return
	}

	resp, err := h.newsService.Highlights(r.Context(), limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

func (h *NewsHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.newsService.Get(r.Context(), chi.URLParam(r, "idOrSlug"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, detail)
}

func (h *NewsHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var input service.NewsUpsertInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	detail, err := h.newsService.Upsert(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, detail)
}

func (h *NewsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}

	var input service.NewsUpdateInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	detail, err := h.newsService.Update(r.Context(), id, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, detail)
}

func (h *NewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := h.newsService.Delete(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
