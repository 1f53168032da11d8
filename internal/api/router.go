package api

import (
	"net/http"
	"time"

	"devfolio/internal/api/handler"
	"devfolio/internal/api/middleware"
	"devfolio/internal/app/service"
	"devfolio/internal/platform/uploads"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func NewRouter(
	authService *service.AuthService,
	projectService *service.ProjectService,
	blogPostService *service.BlogPostService,
	timelineService *service.TimelineService,
	contactService *service.ContactService,
	profileService *service.ProfileService,
	userService *service.UserService,
	uploadStore *uploads.Store,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// The SPA dev server runs on its own origin; cookies need credentials.
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler)

	// Resolves the session cookie on every request; admin gating happens
	// per route group.
	r.Use(middleware.Authenticator(authService))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(api chi.Router) {
		handler.NewAuthHandler(authService).RegisterRoutes(api)
		handler.NewContactHandler(contactService).RegisterRoutes(api)

		api.Route("/projects", handler.NewProjectHandler(projectService).RegisterRoutes)
		api.Route("/blog-posts", handler.NewBlogPostHandler(blogPostService).RegisterRoutes)
		api.Route("/timeline-entries", handler.NewTimelineHandler(timelineService).RegisterRoutes)
		api.Route("/profile", handler.NewProfileHandler(profileService).RegisterRoutes)
		api.Route("/users", handler.NewUserHandler(userService).RegisterRoutes)
		api.Route("/upload", handler.NewUploadHandler(uploadStore).RegisterRoutes)
	})

	// Uploaded images are served straight from disk.
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadStore.Dir()))))

	return r
}
