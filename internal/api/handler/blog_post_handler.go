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

type BlogPostHandler struct {
	posts *service.BlogPostService
}

func NewBlogPostHandler(posts *service.BlogPostService) *BlogPostHandler {
	return &BlogPostHandler{posts: posts}
}

func (h *BlogPostHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)

	r.Group(func(admin chi.Router) {
		admin.Use(middleware.AdminOnly)
		admin.Post("/", h.create)
		admin.Put("/{id}", h.update)
		admin.Delete("/{id}", h.delete)
	})
}

func (h *BlogPostHandler) list(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.List(r.Context())
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, posts)
}

func (h *BlogPostHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	post, err := h.posts.Get(r.Context(), id)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, post)
}

func (h *BlogPostHandler) create(w http.ResponseWriter, r *http.Request) {
	var insert model.InsertBlogPost
	if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	post, err := h.posts.Create(r.Context(), insert)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, post)
}

func (h *BlogPostHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	var insert model.InsertBlogPost
	if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	post, err := h.posts.Update(r.Context(), id, insert)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, post)
}

func (h *BlogPostHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	if err := h.posts.Delete(r.Context(), id); err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
