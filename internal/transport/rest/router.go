package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/rdelacruz/payroll-management/internal/attendance"
	"github.com/rdelacruz/payroll-management/internal/auth"
	"github.com/rdelacruz/payroll-management/internal/deduction"
	"github.com/rdelacruz/payroll-management/internal/employee"
	"github.com/rdelacruz/payroll-management/internal/payrecord"
	"github.com/rdelacruz/payroll-management/internal/payroll"
	"github.com/rdelacruz/payroll-management/internal/project"
	"github.com/rdelacruz/payroll-management/internal/transport/middleware"
	"github.com/rdelacruz/payroll-management/internal/transport/swagger"
	"github.com/rdelacruz/payroll-management/internal/user"
)

// Handlers collects everything the router mounts.
type Handlers struct {
	Auth       *auth.Handler
	RBAC       *auth.RBACAuthorization
	Employee   *employee.Handler
	Project    *project.Handler
	Deduction  *deduction.Handler
	Attendance *attendance.Handler
	Payroll    *payroll.Handler
	PayRecord  *payrecord.Handler
	User       *user.Handler
}

// NewRouter builds the full HTTP surface. Everything under /api/v1 except
// login and refresh sits behind the auth middleware, and each route group is
// additionally gated by the role policy for its operation.
func NewRouter(h Handlers, db *sql.DB, allowedOrigins string, logger *slog.Logger) chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.LoggingMiddleware(logger))

	healthHandler := NewHealthHandler(db)
	router.Get("/ping", healthHandler.pingHandler)
	router.Get("/health", healthHandler.healthCheckHandler)

	router.Get("/swagger/*", swagger.Handler().ServeHTTP)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "api/openapi.yml")
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)
		r.Post("/auth/refresh", h.Auth.RefreshToken)

		r.Group(func(r chi.Router) {
			r.Use(h.Auth.AuthMiddleware)

			r.Post("/auth/logout", h.Auth.Logout)
			r.Get("/users/me", h.User.GetCurrentUser)

			r.Route("/employees", func(r chi.Router) {
				r.With(h.RBAC.Require(auth.OpEmployeeRead)).Get("/", h.Employee.ListEmployees)
				r.With(h.RBAC.Require(auth.OpEmployeeRead)).Get("/{id}", h.Employee.GetEmployee)
				r.With(h.RBAC.Require(auth.OpEmployeeWrite)).Post("/", h.Employee.CreateEmployee)
				r.With(h.RBAC.Require(auth.OpEmployeeWrite)).Put("/{id}", h.Employee.UpdateEmployee)
				r.With(h.RBAC.Require(auth.OpEmployeeDelete)).Delete("/{id}", h.Employee.DeleteEmployee)

				r.With(h.RBAC.Require(auth.OpAttendanceRead)).Get("/{employeeID}/attendance", h.Attendance.ListByEmployee)
				r.With(h.RBAC.Require(auth.OpPayrollRead)).Get("/{employeeID}/payrolls", h.Payroll.ListByEmployee)
				r.With(h.RBAC.Require(auth.OpPayRecordRead)).Get("/{employeeID}/payrecords", h.PayRecord.ListByEmployee)
			})

			r.Route("/projects", func(r chi.Router) {
				r.With(h.RBAC.Require(auth.OpProjectRead)).Get("/", h.Project.ListProjects)
				r.With(h.RBAC.Require(auth.OpProjectRead)).Get("/{id}", h.Project.GetProject)
				r.With(h.RBAC.Require(auth.OpProjectWrite)).Post("/", h.Project.CreateProject)
				r.With(h.RBAC.Require(auth.OpProjectDelete)).Delete("/{id}", h.Project.DeleteProject)

				r.With(h.RBAC.Require(auth.OpAttendanceRead)).Get("/{projectID}/attendance", h.Attendance.ListByProject)
			})

			r.Route("/deductions", func(r chi.Router) {
				r.With(h.RBAC.Require(auth.OpDeductionRead)).Get("/", h.Deduction.ListDeductions)
				r.With(h.RBAC.Require(auth.OpDeductionWrite)).Post("/", h.Deduction.CreateDeduction)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.With(h.RBAC.Require(auth.OpAttendanceWrite)).Post("/", h.Attendance.RecordAttendance)
				r.With(h.RBAC.Require(auth.OpAttendanceWrite)).Put("/{id}", h.Attendance.UpdateAttendance)
				r.With(h.RBAC.Require(auth.OpAttendanceDelete)).Delete("/{id}", h.Attendance.DeleteAttendance)
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.With(h.RBAC.Require(auth.OpPayrollRead)).Post("/calculate", h.Payroll.CalculatePayroll)
				r.With(h.RBAC.Require(auth.OpPayrollWrite)).Post("/", h.Payroll.CommitPayroll)
				r.With(h.RBAC.Require(auth.OpPayrollRead)).Get("/{id}", h.Payroll.GetPayroll)
				r.With(h.RBAC.Require(auth.OpPayrollDelete)).Delete("/{id}", h.Payroll.DeletePayroll)

				r.With(h.RBAC.Require(auth.OpPayRecordRead)).Get("/{payrollID}/payrecords", h.PayRecord.ListByPayroll)
			})

			r.Route("/payrecords", func(r chi.Router) {
				r.With(h.RBAC.Require(auth.OpPayRecordRead)).Get("/{id}", h.PayRecord.GetPayRecord)
				r.With(h.RBAC.Require(auth.OpPayRecordWrite)).Post("/", h.PayRecord.CreatePayRecord)
			})

			r.Route("/users", func(r chi.Router) {
				r.With(h.RBAC.Require(auth.OpUserManage)).Get("/", h.User.ListUsers)
				r.With(h.RBAC.Require(auth.OpUserManage)).Post("/", h.User.CreateUser)
				r.With(h.RBAC.Require(auth.OpUserManage)).Delete("/{id}", h.User.DeactivateUser)
			})
		})
	})

	return router
}
