// internal/handler/hof.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/thinknest/internal/repository"
	"github.com/dangerclosesec/thinknest/internal/service"
	"github.com/go-chi/chi/v5"
)

type HOFHandler struct {
	hofService *service.HOFService
}

func NewHOFHandler(hofService *service.HOFService) *HOFHandler {
	return &HOFHandler{hofService: hofService}
}

// Routes mounts the Hall-of-Fame endpoints. They are read only.
func (h *HOFHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/innovators", h.ListInnovators)
	r.Get("/innovators/{id}", h.GetInnovator)
	r.Get("/teams", h.ListTeams)
	r.Get("/teams/{id}", h.GetTeam)
	r.Get("/years", h.Years)
	r.Get("/badges", h.Badges)
	r.Get("/tags", h.Tags)
	return r
}

func parseHOFQuery(r *http.Request) (repository.HOFQuery, service.HOFListOptions, error) {
	q := newQueryParams(r)
	include := q.set("include")

	query := repository.HOFQuery{
		Pagination: q.pagination(repository.DefaultLimit),
		Tag:        q.str("tag"),
		Tags:       q.list("tags"),
		Year:       q.intPtr("year"),
		YearField:  q.str("yearField"),
		Department: q.str("department"),
		Badge:      q.str("badge"),
		Search:     q.str("search"),
		HasAwards:  q.boolOr("hasAwards", false),
		Sort:       q.str("sort"),
	}
	opts := service.HOFListOptions{
		Include: service.HOFInclude{
			Ideas:   include["ideas"],
			Awards:  include["awards"],
			Counts:  include["counts"],
			Members: include["members"],
		},
		IdeasLimit:   q.intOr("ideasLimit", 0),
		AwardsLimit:  q.intOr("awardsLimit", 0),
		MembersLimit: q.intOr("membersLimit", 0),
	}
	return query, opts, q.err()
}

func (h *HOFHandler) ListInnovators(w http.ResponseWriter, r *http.Request) {
	query, opts, err := parseHOFQuery(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	resp, err := h.hofService.ListInnovators(r.Context(), query, opts)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

func (h *HOFHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	query, opts, err := parseHOFQuery(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	resp, err := h.hofService.ListTeams(r.Context(), query, opts)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

func (h *HOFHandler) GetInnovator(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}

	detail, err := h.hofService.GetInnovator(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, detail)
}

func (h *HOFHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}

	detail, err := h.hofService.GetTeam(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, detail)
}

func (h *HOFHandler) Years(w http.ResponseWriter, r *http.Request) {
	resp, err := h.hofService.Years(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

func (h *HOFHandler) Badges(w http.ResponseWriter, r *http.Request) {
	resp, err := h.hofService.Badges(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

func (h *HOFHandler) Tags(w http.ResponseWriter, r *http.Request) {
	resp, err := h.hofService.Tags(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}
