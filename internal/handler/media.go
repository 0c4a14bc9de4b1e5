// internal/handler/media.go
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dangerclosesec/thinknest/internal/domain"
	"github.com/dangerclosesec/thinknest/internal/repository"
	"github.com/dangerclosesec/thinknest/internal/service"
	"github.com/dangerclosesec/thinknest/internal/validation"
	"github.com/go-chi/chi/v5"
)

// multipartOverhead is the allowance for form fields and boundaries on top of the file itself.
const multipartOverhead = 1 << 20

type MediaHandler struct {
	mediaService   *service.MediaService
	storyService   *service.StoryService
	maxUploadBytes int64
}

func NewMediaHandler(mediaService *service.MediaService, storyService *service.StoryService, maxUploadBytes int64) *MediaHandler {
	return &MediaHandler{
		mediaService:   mediaService,
		storyService:   storyService,
		maxUploadBytes: maxUploadBytes,
	}
}

func (h *MediaHandler) Routes(admin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Route("/stories", func(r chi.Router) {
		r.Get("/", h.ListStories)
		r.Get("/{idOrSlug}", h.GetStory)
		r.With(admin).Post("/", h.UpsertStory)
	})

	r.Get("/", h.List)
	r.Get("/highlights", h.Highlights)
	r.With(admin).Post("/", h.Upsert)
	r.With(admin).Post("/upload", h.Upload)
	r.Get("/{idOrSlug}", h.Get)
	return r
}

func (h *MediaHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	query := repository.MediaQuery{
		Pagination:    q.pagination(repository.DefaultLimit),
		Kind:          q.str("kind"),
		Tag:           q.str("tag"),
		Event:         q.str("event"),
		Search:        q.str("q"),
		From:          q.time("from", false),
		To:            q.time("to", true),
		Featured:      q.boolPtr("featured"),
		PublishedOnly: q.boolOr("publishedOnly", true),
		Sort:          q.str("sort"),
	}
	if err := q.err(); err != nil {
		handleError(w, r, err)
		return
	}

	resp, err := h.mediaService.List(r.Context(), query)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

func (h *MediaHandler) Highlights(w http.ResponseWriter, r *http.Request) {
	resp, err := h.mediaService.Highlights(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

func (h *MediaHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.mediaService.Get(r.Context(), chi.URLParam(r, "idOrSlug"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, view)
}

func (h *MediaHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var input service.MediaUpsertInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	view, err := h.mediaService.Upsert(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, view)
}

// Upload accepts a multipart form with a "file" part and optional metadata fields.
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartOverhead)
	if err := r.ParseMultipartForm(multipartOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			handleError(w, r, domain.ErrFileTooLarge)
			return
		}
		handleError(w, r, domain.ErrMissingFile)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		handleError(w, r, domain.ErrMissingFile)
		return
	}
	defer file.Close()

	input, err := uploadInput(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	view, err := h.mediaService.Upload(r.Context(), file, header.Filename, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, view)
}

func uploadInput(r *http.Request) (service.MediaUploadInput, error) {
	input := service.MediaUploadInput{Slug: strings.TrimSpace(r.FormValue("slug"))}

	text := map[string]*domain.Optional[string]{
		"kind":        &input.Kind,
		"title":       &input.Title,
		"description": &input.Description,
		"event":       &input.Event,
		"provider":    &input.Provider,
		"blurhash":    &input.Blurhash,
	}
	for key, dst := range text {
		if v := strings.TrimSpace(r.FormValue(key)); v != "" {
			*dst = domain.Some(v)
		}
	}

	if v := r.FormValue("tags"); strings.TrimSpace(v) != "" {
		var tags service.TagInput
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				tags = append(tags, p)
			}
		}
		input.Tags = domain.Some(tags)
	}

	if v := strings.TrimSpace(r.FormValue("isFeatured")); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			return input, validation.NewError("isFeatured must be true or false")
		}
		input.IsFeatured = domain.Some(featured)
	}
	return input, nil
}

func (h *MediaHandler) ListStories(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	query := repository.StoryQuery{
		Pagination:    q.pagination(0),
		Search:        q.str("q"),
		Tag:           q.str("tag"),
		Featured:      q.boolPtr("featured"),
		PublishedOnly: q.boolOr("publishedOnly", true),
	}
	if err := q.err(); err != nil {
		handleError(w, r, err)
		return
	}

	resp, err := h.storyService.List(r.Context(), query)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

func (h *MediaHandler) GetStory(w http.ResponseWriter, r *http.Request) {
	detail, err := h.storyService.Get(r.Context(), chi.URLParam(r, "idOrSlug"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, detail)
}

func (h *MediaHandler) UpsertStory(w http.ResponseWriter, r *http.Request) {
	var input service.StoryUpsertInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	detail, err := h.storyService.Upsert(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, detail)
}
