package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/peopledesk/peopledesk-backend-go/internal/config"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/user"
	"github.com/peopledesk/peopledesk-backend-go/internal/handler/http/middleware"
	"github.com/peopledesk/peopledesk-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Log        LogHandler
	Group      GroupHandler
	Docs       DocsHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, users user.UserRepository, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "peopledesk-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	adminOnly := middleware.RequireRole(users, user.RoleHR)
	anyRole := middleware.RequireRole(users, user.RoleUser, user.RoleHR)

	r.Route("/employees", func(r chi.Router) {
		r.Get("/all", h.Employee.ListSummary)
		r.Get("/{id}", h.Employee.GetByID)
		r.Put("/{id}", h.Employee.Update)

		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(adminOnly)
			r.Post("/", h.Employee.Create)
			r.Get("/", h.Employee.GetAll)
			r.Delete("/{id}", h.Employee.Delete)
		})
	})

	r.Route("/attendance", func(r chi.Router) {
		r.Post("/", h.Attendance.Create)
		r.Get("/", h.Attendance.GetAll)
		r.Get("/employee/{employeeId}", h.Attendance.GetByEmployeeID)
		r.Delete("/{id}", h.Attendance.Delete)

		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(adminOnly)
			r.Put("/{id}", h.Attendance.Update)
		})
	})

	r.Route("/leaves", func(r chi.Router) {
		r.Post("/", h.Leave.Create)
		r.Get("/", h.Leave.GetAll)
		r.Get("/employee/{employeeId}", h.Leave.GetByEmployeeID)
		r.Put("/{id}", h.Leave.Update)
		r.Delete("/{id}", h.Leave.Delete)
	})

	r.Route("/logs", func(r chi.Router) {
		r.Post("/", h.Log.Create)
		r.Get("/", h.Log.GetAll)
		r.Get("/employee/{employeeId}", h.Log.GetByEmployeeID)
		r.Put("/{id}", h.Log.Update)
		r.Delete("/{id}", h.Log.Delete)
	})

	r.Route("/groups", func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(adminOnly)

		r.Post("/", h.Group.Create)
		r.Get("/", h.Group.GetAll)
		r.Post("/send-message", h.Group.SendMessage)
		r.Get("/{id}", h.Group.GetByID)
		r.Put("/{id}", h.Group.Update)
		r.Delete("/{id}", h.Group.Delete)
		r.Post("/{groupId}/members", h.Group.AddMembers)
		r.Delete("/{groupId}/members/{memberId}", h.Group.RemoveMember)
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.Auth.Register)
		r.Post("/login", h.Auth.Login)
		r.Post("/refresh", h.Auth.Refresh)
		r.Get("/login/oauth/google", h.Auth.LoginWithGoogle)
		r.Get("/oauth/callback/google", h.Auth.OAuthCallbackGoogle)

		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(anyRole)
			r.Post("/logout", h.Auth.Logout)
			r.Get("/me", h.Auth.Me)
		})
	})

	r.Route("/docs", func(r chi.Router) {
		r.Get("/", h.Docs.UI)
		r.Get("/openapi.json", h.Docs.OpenAPI)
	})

	return r
}
