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

type TimelineHandler struct {
	timeline *service.TimelineService
}

func NewTimelineHandler(timeline *service.TimelineService) *TimelineHandler {
	return &TimelineHandler{timeline: timeline}
}

func (h *TimelineHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.list)

	r.Group(func(admin chi.Router) {
		admin.Use(middleware.AdminOnly)
		admin.Post("/", h.create)
		admin.Put("/{id}", h.update)
		admin.Delete("/{id}", h.delete)
	})
}

func (h *TimelineHandler) list(w http.ResponseWriter, r *http.Request) {
	entries, err := h.timeline.List(r.Context())
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, entries)
}

func (h *TimelineHandler) create(w http.ResponseWriter, r *http.Request) {
	var insert model.InsertTimelineEntry
	if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	entry, err := h.timeline.Create(r.Context(), insert)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, entry)
}

func (h *TimelineHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	var insert model.InsertTimelineEntry
	if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	entry, err := h.timeline.Update(r.Context(), id, insert)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, entry)
}

func (h *TimelineHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	if err := h.timeline.Delete(r.Context(), id); err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
