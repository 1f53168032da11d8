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

type ProfileHandler struct {
	profile *service.ProfileService
}

func NewProfileHandler(profile *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profile: profile}
}

func (h *ProfileHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.get)

	r.Group(func(admin chi.Router) {
		admin.Use(middleware.AdminOnly)
		admin.Post("/", h.upsert)
	})
}

func (h *ProfileHandler) get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profile.Get(r.Context())
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) upsert(w http.ResponseWriter, r *http.Request) {
	var insert model.InsertProfile
	if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	profile, err := h.profile.Upsert(r.Context(), insert)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, profile)
}
