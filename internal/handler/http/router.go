package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/nimbus-hr/hrms-backend-go/internal/config"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/employee"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/role"
	"github.com/nimbus-hr/hrms-backend-go/internal/handler/http/middleware"
	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/jwt"
)

type RouterDeps struct {
	Config       *config.Config
	JWTService   jwt.Service
	RoleService  role.RoleService
	EmployeeRepo employee.EmployeeRepository

	Role        RoleHandler
	Employee    EmployeeHandler
	Attendance  AttendanceHandler
	Biometric   BiometricHandler
	Timesheet   TimesheetHandler
	Leave       LeaveHandler
	Payroll     PayrollHandler
	HROps       HROpsHandler
	Performance PerformanceHandler
	Recruitment RecruitmentHandler
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "nimbus-hr"),
		slog.String("version", "v1.0.0"),
		slog.String("env", deps.Config.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{deps.Config.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Webhook-Token", "X-Integration-Token"},
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

	// Device and provider webhooks authenticate with integration tokens,
	// not bearer tokens, so they sit outside the authenticated group.
	r.Post("/webhooks/biometric", deps.Biometric.Webhook)
	r.Post("/webhooks/recruitment/{provider}", deps.Recruitment.Webhook)

	requirePermission := func(permission string) func(http.Handler) http.Handler {
		return middleware.RequirePermission(deps.RoleService, permission)
	}
	accessScope := func(area string) func(http.Handler) http.Handler {
		return middleware.AccessScope(deps.RoleService, deps.EmployeeRepo, area)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth()))

			r.Route("/roles", func(r chi.Router) {
				r.Use(requirePermission("roles.manage"))
				r.Get("/", deps.Role.List)
				r.Post("/", deps.Role.Create)
				r.Get("/{id}", deps.Role.Get)
				r.Put("/{id}", deps.Role.Update)
				r.Delete("/{id}", deps.Role.Delete)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", deps.Employee.List)
				r.Get("/{id}", deps.Employee.Get)

				r.Group(func(r chi.Router) {
					r.Use(requirePermission("employees.manage"))
					r.Post("/", deps.Employee.Create)
					r.Put("/{id}", deps.Employee.Update)
					r.Delete("/{id}", deps.Employee.Delete)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", deps.Employee.ListDepartments)
				r.Get("/{id}", deps.Employee.GetDepartment)

				r.Group(func(r chi.Router) {
					r.Use(requirePermission("employees.manage"))
					r.Post("/", deps.Employee.CreateDepartment)
					r.Put("/{id}", deps.Employee.UpdateDepartment)
					r.Delete("/{id}", deps.Employee.DeleteDepartment)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(accessScope("attendance"))
					r.Get("/", deps.Attendance.List)
					r.Get("/{id}", deps.Attendance.Get)
				})

				r.Group(func(r chi.Router) {
					r.Use(requirePermission("attendance.manage"))
					r.Post("/", deps.Attendance.Create)
					r.Put("/{id}", deps.Attendance.Update)
					r.Delete("/{id}", deps.Attendance.Delete)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", deps.Attendance.ListShifts)
				r.Get("/{id}", deps.Attendance.GetShift)

				r.Group(func(r chi.Router) {
					r.Use(requirePermission("attendance.manage"))
					r.Post("/", deps.Attendance.CreateShift)
					r.Put("/{id}", deps.Attendance.UpdateShift)
					r.Delete("/{id}", deps.Attendance.DeleteShift)
				})
			})

			r.Route("/employee-shifts", func(r chi.Router) {
				r.Get("/", deps.Attendance.ListEmployeeShifts)

				r.Group(func(r chi.Router) {
					r.Use(requirePermission("attendance.manage"))
					r.Post("/", deps.Attendance.AssignShift)
					r.Put("/{id}", deps.Attendance.UpdateEmployeeShift)
					r.Delete("/{id}", deps.Attendance.DeleteEmployeeShift)
				})
			})

			r.Route("/biometric", func(r chi.Router) {
				r.Use(requirePermission("attendance.manage"))

				r.Route("/integrations", func(r chi.Router) {
					r.Get("/", deps.Biometric.ListIntegrations)
					r.Post("/", deps.Biometric.CreateIntegration)
					r.Get("/{id}", deps.Biometric.GetIntegration)
					r.Put("/{id}", deps.Biometric.UpdateIntegration)
					r.Delete("/{id}", deps.Biometric.DeleteIntegration)
					r.Post("/{id}/test", deps.Biometric.TestIntegration)
					r.Post("/{id}/sync", deps.Biometric.QueueSync)
				})

				r.Get("/punches", deps.Biometric.ListPunches)
			})

			r.Route("/timesheets", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(accessScope("timesheet"))
					r.Get("/", deps.Timesheet.List)
					r.Get("/{id}", deps.Timesheet.Get)
					r.Post("/{id}/submit", deps.Timesheet.Submit)
				})

				r.Group(func(r chi.Router) {
					r.Use(requirePermission("timesheet.manage"))
					r.Post("/{id}/approve", deps.Timesheet.Approve)
					r.Post("/{id}/reject", deps.Timesheet.Reject)
					r.Delete("/{id}", deps.Timesheet.Delete)
				})
			})

			r.Route("/overtime", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(accessScope("overtime"))
					r.Get("/", deps.Timesheet.ListOvertime)
					r.Post("/", deps.Timesheet.CreateOvertime)
					r.Get("/{id}", deps.Timesheet.GetOvertime)
				})

				r.Group(func(r chi.Router) {
					r.Use(requirePermission("overtime.manage"))
					r.Post("/{id}/approve", deps.Timesheet.ApproveOvertime)
					r.Post("/{id}/reject", deps.Timesheet.RejectOvertime)
					r.Delete("/{id}", deps.Timesheet.DeleteOvertime)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Route("/requests", func(r chi.Router) {
					r.Group(func(r chi.Router) {
						r.Use(accessScope("leave"))
						r.Get("/", deps.Leave.List)
						r.Post("/", deps.Leave.Create)
						r.Get("/{id}", deps.Leave.Get)
						r.Post("/{id}/cancel", deps.Leave.Cancel)
					})

					r.Group(func(r chi.Router) {
						r.Use(requirePermission("leave.manage"))
						r.Post("/{id}/approve", deps.Leave.Approve)
						r.Post("/{id}/reject", deps.Leave.Reject)
					})
				})

				r.Route("/balances", func(r chi.Router) {
					r.With(accessScope("leave")).Get("/", deps.Leave.ListBalances)

					r.Group(func(r chi.Router) {
						r.Use(requirePermission("leave.manage"))
						r.Post("/", deps.Leave.CreateBalance)
						r.Put("/{id}", deps.Leave.UpdateBalance)
					})
				})

				r.Route("/holidays", func(r chi.Router) {
					r.Get("/", deps.Leave.ListHolidays)

					r.Group(func(r chi.Router) {
						r.Use(requirePermission("leave.manage"))
						r.Post("/", deps.Leave.CreateHoliday)
						r.Put("/{id}", deps.Leave.UpdateHoliday)
						r.Delete("/{id}", deps.Leave.DeleteHoliday)
					})
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(accessScope("payroll"))
					r.Get("/", deps.Payroll.List)
					r.Get("/{id}", deps.Payroll.Get)
					r.Get("/{id}/payslip", deps.Payroll.GetPayslip)
				})

				r.Group(func(r chi.Router) {
					r.Use(requirePermission("payroll.manage"))
					r.Post("/", deps.Payroll.Create)
					r.Put("/{id}", deps.Payroll.Update)
					r.Delete("/{id}", deps.Payroll.Delete)
				})
			})

			r.Route("/onboarding-tasks", func(r chi.Router) {
				r.Get("/", deps.HROps.ListTasks)
				r.Get("/{id}", deps.HROps.GetTask)

				r.Group(func(r chi.Router) {
					r.Use(requirePermission("onboarding.manage"))
					r.Post("/", deps.HROps.CreateTask)
					r.Put("/{id}", deps.HROps.UpdateTask)
					r.Delete("/{id}", deps.HROps.DeleteTask)
				})
			})

			r.Route("/assets", func(r chi.Router) {
				r.Get("/", deps.HROps.ListAssets)
				r.Get("/{id}", deps.HROps.GetAsset)

				r.Group(func(r chi.Router) {
					r.Use(requirePermission("assets.manage"))
					r.Post("/", deps.HROps.CreateAsset)
					r.Put("/{id}", deps.HROps.UpdateAsset)
					r.Delete("/{id}", deps.HROps.DeleteAsset)
					r.Post("/{id}/assign", deps.HROps.AssignAsset)
					r.Post("/{id}/return", deps.HROps.ReturnAsset)
				})
			})

			r.Route("/policies", func(r chi.Router) {
				r.Get("/", deps.HROps.ListPolicies)
				r.Get("/{id}", deps.HROps.GetPolicy)
				r.Post("/{id}/acknowledge", deps.HROps.AcknowledgePolicy)

				r.Group(func(r chi.Router) {
					r.Use(requirePermission("policies.manage"))
					r.Post("/", deps.HROps.CreatePolicy)
					r.Put("/{id}", deps.HROps.UpdatePolicy)
					r.Delete("/{id}", deps.HROps.DeletePolicy)
					r.Get("/{id}/acknowledgments", deps.HROps.ListAcknowledgments)
				})
			})

			r.Route("/kpis", func(r chi.Router) {
				r.Get("/", deps.Performance.ListKPIs)
				r.Get("/{id}", deps.Performance.GetKPI)

				r.Group(func(r chi.Router) {
					r.Use(requirePermission("performance.manage"))
					r.Post("/", deps.Performance.CreateKPI)
					r.Put("/{id}", deps.Performance.UpdateKPI)
					r.Delete("/{id}", deps.Performance.DeleteKPI)
				})
			})

			r.Route("/evaluation-periods", func(r chi.Router) {
				r.Get("/", deps.Performance.ListPeriods)
				r.Get("/{id}", deps.Performance.GetPeriod)

				r.Group(func(r chi.Router) {
					r.Use(requirePermission("performance.manage"))
					r.Post("/", deps.Performance.CreatePeriod)
					r.Put("/{id}", deps.Performance.UpdatePeriod)
					r.Delete("/{id}", deps.Performance.DeletePeriod)
				})
			})

			r.Route("/reviews", func(r chi.Router) {
				r.Get("/", deps.Performance.ListReviews)
				r.Get("/{id}", deps.Performance.GetReview)

				r.Group(func(r chi.Router) {
					r.Use(requirePermission("performance.manage"))
					r.Post("/", deps.Performance.CreateReview)
					r.Put("/{id}", deps.Performance.UpdateReview)
					r.Delete("/{id}", deps.Performance.DeleteReview)
					r.Post("/{id}/submit", deps.Performance.SubmitReview)
				})
			})

			r.Route("/job-postings", func(r chi.Router) {
				r.Get("/", deps.Recruitment.ListPostings)
				r.Get("/{id}", deps.Recruitment.GetPosting)

				r.Group(func(r chi.Router) {
					r.Use(requirePermission("recruitment.manage"))
					r.Post("/", deps.Recruitment.CreatePosting)
					r.Put("/{id}", deps.Recruitment.UpdatePosting)
					r.Delete("/{id}", deps.Recruitment.DeletePosting)
				})
			})

			r.Route("/applications", func(r chi.Router) {
				r.Use(requirePermission("recruitment.manage"))
				r.Get("/", deps.Recruitment.ListApplications)
				r.Post("/", deps.Recruitment.CreateApplication)
				r.Get("/{id}", deps.Recruitment.GetApplication)
				r.Put("/{id}", deps.Recruitment.UpdateApplication)
				r.Delete("/{id}", deps.Recruitment.DeleteApplication)
			})

			r.Route("/recruitment-integrations", func(r chi.Router) {
				r.Use(requirePermission("recruitment.manage"))
				r.Get("/", deps.Recruitment.ListIntegrations)
				r.Post("/", deps.Recruitment.CreateIntegration)
				r.Get("/{id}", deps.Recruitment.GetIntegration)
				r.Put("/{id}", deps.Recruitment.UpdateIntegration)
				r.Delete("/{id}", deps.Recruitment.DeleteIntegration)
			})
		})
	})

	return r
}
