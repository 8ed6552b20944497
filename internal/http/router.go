package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"resume-studio/internal/handlers"
	"resume-studio/internal/render"
	"resume-studio/internal/service"
	"resume-studio/internal/store"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Store              *store.Store
	DB                 handlers.Pinger
	ParseService       service.ParseService
	ImprovementService service.ImprovementService
	Markdown           render.Generator
	HTML               *render.HTMLRenderer
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)

	// Add CORS middleware
	r.Use(CORS)

	markdown := deps.Markdown
	if markdown == nil {
		markdown = render.NewMarkdownGenerator()
	}
	html := deps.HTML
	if html == nil {
		html = render.NewHTMLRenderer()
	}

	healthHandler := handlers.NewHealthHandler(deps.DB, deps.Store)
	documentHandler := handlers.NewDocumentHandler(deps.Store)
	resumeHandler := handlers.NewResumeHandler(deps.Store, deps.ParseService, markdown, html)
	versionHandler := handlers.NewVersionHandler(deps.Store)
	masterHandler := handlers.NewMasterHandler(deps.Store)
	currentHandler := handlers.NewCurrentHandler(deps.Store)
	improvementHandler := handlers.NewImprovementHandler(deps.Store, deps.ImprovementService)

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)
		r.Method(http.MethodGet, "/store", documentHandler)

		r.Route("/resume", func(r chi.Router) {
			r.Get("/", resumeHandler.Get)
			r.Put("/", resumeHandler.Put)
			r.Delete("/", resumeHandler.Delete)
			r.Patch("/header", resumeHandler.PatchHeader)
			r.Put("/skills", resumeHandler.PutSkills)
			r.Post("/upload", resumeHandler.Upload)
			r.Get("/preview", resumeHandler.Preview)
			r.Get("/markdown", resumeHandler.Markdown)
		})

		r.Route("/versions", func(r chi.Router) {
			r.Get("/", versionHandler.List)
			r.Post("/", versionHandler.Create)
			r.Get("/{id}", versionHandler.Get)
			r.Patch("/{id}", versionHandler.Update)
			r.Delete("/{id}", versionHandler.Delete)
			r.Post("/{id}/duplicate", versionHandler.Duplicate)
			r.Post("/{id}/switch", versionHandler.Switch)
		})

		r.Route("/master", func(r chi.Router) {
			r.Get("/", masterHandler.Get)
			r.Post("/{section}", masterHandler.Add)
			r.Patch("/{section}/{id}", masterHandler.Update)
			r.Delete("/{section}/{id}", masterHandler.Delete)
		})

		r.Route("/current/{section}", func(r chi.Router) {
			r.Post("/", currentHandler.AddFromMaster)
			r.Put("/", currentHandler.Replace)
			r.Post("/new", currentHandler.AddNew)
			r.Put("/order", currentHandler.Reorder)
			r.Delete("/{id}", currentHandler.Remove)
			r.Get("/{id}/status", currentHandler.Status)
			r.Post("/{id}/sync", currentHandler.Sync)
			r.Post("/{id}/promote", currentHandler.Promote)
		})

		r.Route("/improvements", func(r chi.Router) {
			r.Post("/stream", improvementHandler.Stream)
			r.Post("/apply", improvementHandler.Apply)
		})
	})

	// The root opens the rendered preview
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/resume/preview", http.StatusFound)
	})

	return r
}
