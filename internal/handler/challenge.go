// internal/handler/challenge.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/thinknest/internal/repository"
	"github.com/dangerclosesec/thinknest/internal/service"
	"github.com/go-chi/chi/v5"
)

type ChallengeHandler struct {
	challengeService *service.ChallengeService
}

func NewChallengeHandler(challengeService *service.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challengeService: challengeService}
}

func (h *ChallengeHandler) Routes(admin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/config", h.Config)
	r.Get("/", h.List)
	r.Get("/{idOrSlug}", h.Get)
	r.With(admin).Post("/", h.Upsert)
	return r
}

func (h *ChallengeHandler) Config(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.challengeService.Config())
}

func (h *ChallengeHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	query := repository.ChallengeQuery{
		Pagination:        q.pagination(repository.DefaultLimit),
		Status:            q.str("status"),
		Category:          q.str("category"),
		ParticipationType: q.str("participationType"),
		DeadlineBefore:    q.time("deadlineBefore", true),
		DeadlineAfter:     q.time("deadlineAfter", false),
		Search:            q.str("search"),
		Sort:              q.str("sort"),
	}
	if err := q.err(); err != nil {
		handleError(w, r, err)
		return
	}

	resp, err := h.challengeService.List(r.Context(), query)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

func (h *ChallengeHandler) Get(w http.ResponseWriter, r *http.Request) {
	include := newQueryParams(r).set("include")
	inc := repository.ChallengeInclude{
		Prizes: include["prizes"],
		FAQs:   include["faqs"],
	}

	detail, err := h.challengeService.Get(r.Context(), chi.URLParam(r, "idOrSlug"), inc)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, detail)
}

func (h *ChallengeHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var input service.ChallengeUpsertInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	detail, err := h.challengeService.Upsert(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, detail)
}
