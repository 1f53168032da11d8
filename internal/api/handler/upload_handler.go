package handler

import (
	"net/http"

	"devfolio/internal/api/middleware"
	"devfolio/internal/common"
	"devfolio/internal/platform/uploads"

	"github.com/go-chi/chi/v5"
)

type UploadHandler struct {
	store *uploads.Store
}

func NewUploadHandler(store *uploads.Store) *UploadHandler {
	return &UploadHandler{store: store}
}

func (h *UploadHandler) RegisterRoutes(r chi.Router) {
	r.Group(func(admin chi.Router) {
		admin.Use(middleware.AdminOnly)
		admin.Post("/", h.upload)
	})
}

func (h *UploadHandler) upload(w http.ResponseWriter, r *http.Request) {
	// Allow some slack over the file cap for multipart framing.
	r.Body = http.MaxBytesReader(w, r.Body, h.store.MaxBytes()+1<<20)

	file, header, err := r.FormFile("file")
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	url, err := h.store.Save(file, header)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"url": url})
}
