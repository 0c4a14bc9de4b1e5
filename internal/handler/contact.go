// internal/handler/contact.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/thinknest/internal/middleware"
	"github.com/dangerclosesec/thinknest/internal/service"
	"github.com/go-chi/chi/v5"
)

type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Routes mounts the contact form behind limit, which throttles submissions per client.
func (h *ContactHandler) Routes(limit func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.With(limit).Post("/", h.Submit)
	return r
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var input service.ContactInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	meta := service.ContactMeta{
		IP:        middleware.ClientIP(r),
		UserAgent: r.UserAgent(),
	}
	result, err := h.contactService.Submit(r.Context(), input, meta)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, result)
}
