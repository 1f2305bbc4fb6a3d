package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/frahmantamala/company-management/internal/auth"
	"github.com/frahmantamala/company-management/internal/department"
	"github.com/frahmantamala/company-management/internal/employee"
	"github.com/frahmantamala/company-management/internal/project"
	"github.com/frahmantamala/company-management/internal/transport/middleware"
	"github.com/frahmantamala/company-management/internal/transport/swagger"
	"github.com/frahmantamala/company-management/internal/user"
)

// RegisterAllRoutes wires every handler into the route table. User
// registration and login are the only public API routes; everything else
// requires a valid session token.
func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	authHandler *auth.Handler,
	departmentHandler *department.Handler,
	employeeHandler *employee.Handler,
	projectHandler *project.Handler,
	userHandler *user.Handler,
	logger *slog.Logger,
	allowedOrigins string,
) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Get("/health", healthHandler.healthCheckHandler)
	router.Get("/ping", healthHandler.pingHandler)

	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", authHandler.Login)
		})

		// public registration
		r.Post("/users", userHandler.Register)

		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			pr.Route("/departments", func(dr chi.Router) {
				dr.Post("/", departmentHandler.CreateDepartment)
				dr.Get("/", departmentHandler.GetDepartments)
				dr.Get("/{id}", departmentHandler.GetDepartment)
				dr.Put("/{id}", departmentHandler.UpdateDepartment)
				dr.Delete("/{id}", departmentHandler.DeleteDepartment)
			})

			pr.Route("/employees", func(er chi.Router) {
				er.Post("/", employeeHandler.CreateEmployee)
				er.Get("/", employeeHandler.GetEmployees)
				er.Get("/{id}", employeeHandler.GetEmployee)
				er.Put("/{id}", employeeHandler.UpdateEmployee)
				er.Delete("/{id}", employeeHandler.DeleteEmployee)
			})

			pr.Route("/projects", func(jr chi.Router) {
				jr.Post("/", projectHandler.CreateProject)
				jr.Get("/", projectHandler.GetProjects)
				jr.Get("/{id}", projectHandler.GetProject)
				jr.Put("/{id}", projectHandler.UpdateProject)
				jr.Delete("/{id}", projectHandler.DeleteProject)
			})

			pr.Route("/users", func(ur chi.Router) {
				ur.Get("/{id}", userHandler.GetUser)
				ur.Put("/{id}", userHandler.UpdateUser)
			})
		})
	})
}
