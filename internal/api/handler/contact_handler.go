package handler

import (
	"encoding/json"
	"net/http"

	"devfolio/internal/api/middleware"
	"devfolio/internal/app/service"
	"devfolio/internal/common"
	"devfolio/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type ContactHandler struct {
	contact *service.ContactService
}

func NewContactHandler(contact *service.ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// RegisterRoutes mounts both surfaces: the public contact form and the
// admin-only message inbox.
func (h *ContactHandler) RegisterRoutes(r chi.Router) {
	r.Post("/contact", h.submit)

	r.Route("/contact-messages", func(admin chi.Router) {
		admin.Use(middleware.AdminOnly)
		admin.Get("/", h.list)
		admin.Put("/{id}/read", h.markAsRead)
		admin.Delete("/{id}", h.delete)
	})
}

func (h *ContactHandler) submit(w http.ResponseWriter, r *http.Request) {
	var insert model.InsertContactMessage
	if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	msg, err := h.contact.Submit(r.Context(), insert)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, msg)
}

func (h *ContactHandler) list(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contact.List(r.Context())
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, messages)
}

func (h *ContactHandler) markAsRead(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	msg, err := h.contact.MarkAsRead(r.Context(), id)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, msg)
}

func (h *ContactHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	if err := h.contact.Delete(r.Context(), id); err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
