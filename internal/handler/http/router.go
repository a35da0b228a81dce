package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/anandamid/presensi-backend-go/internal/handler/http/middleware"
	"github.com/anandamid/presensi-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	UploadsDir     string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	settingsHandler SettingsHandler,
	leaveHandler LeaveHandler,
	userHandler UserHandler,
	dashboardHandler DashboardHandler,
	reportHandler ReportHandler,
	eventsHandler EventsHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Stored photos are served statically; paths are returned by the API.
	if cfg.UploadsDir != "" {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir)))
		r.Get("/uploads/*", fileServer.ServeHTTP)
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// SSE stream authenticates with its own query token.
		r.Get("/admin/events", eventsHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", authHandler.Me)
			r.Get("/auth/sse-token", authHandler.SSEToken)

			// Interns can read the office area and shift catalog.
			r.Get("/settings", settingsHandler.Get)

			// PKL attendance flow
			r.Group(func(r chi.Router) {
				r.Use(middleware.PKLOnly)

				r.Route("/presensi", func(r chi.Router) {
					r.Post("/in", attendanceHandler.CheckIn)
					r.Post("/out", attendanceHandler.CheckOut)
					r.Get("/today", attendanceHandler.Today)
					r.Get("/history", attendanceHandler.History)
				})

				r.Route("/izin", func(r chi.Router) {
					r.Post("/", leaveHandler.Submit)
					r.Get("/", leaveHandler.ListMine)
				})
			})

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/settings", func(r chi.Router) {
					r.Get("/", settingsHandler.Get)
					r.Put("/", settingsHandler.Update)
				})

				r.Route("/presensi", func(r chi.Router) {
					r.Get("/", attendanceHandler.AdminList)
					r.Get("/export", reportHandler.Export)
					r.Post("/delete", reportHandler.DeleteMonth)
				})

				r.Get("/dashboard", dashboardHandler.Summary)

				r.Route("/izin", func(r chi.Router) {
					r.Get("/", leaveHandler.AdminList)
					r.Patch("/{id}", leaveHandler.Decide)
				})

				r.Route("/users", func(r chi.Router) {
					r.Get("/", userHandler.List)
					r.Post("/", userHandler.Create)
					r.Put("/{id}", userHandler.Update)
					r.Delete("/{id}", userHandler.Delete)
				})
			})
		})
	})

	return r
}
