package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nimbus-hr/hrms-backend-go/internal/config"
	appHTTP "github.com/nimbus-hr/hrms-backend-go/internal/handler/http"
	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/cron"
	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/database"
	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/email"
	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/jwt"
	"github.com/nimbus-hr/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/nimbus-hr/hrms-backend-go/internal/service/attendance"
	biometricService "github.com/nimbus-hr/hrms-backend-go/internal/service/biometric"
	employeeService "github.com/nimbus-hr/hrms-backend-go/internal/service/employee"
	hropsService "github.com/nimbus-hr/hrms-backend-go/internal/service/hrops"
	leaveService "github.com/nimbus-hr/hrms-backend-go/internal/service/leave"
	payrollService "github.com/nimbus-hr/hrms-backend-go/internal/service/payroll"
	performanceService "github.com/nimbus-hr/hrms-backend-go/internal/service/performance"
	recruitmentService "github.com/nimbus-hr/hrms-backend-go/internal/service/recruitment"
	roleService "github.com/nimbus-hr/hrms-backend-go/internal/service/role"
	timesheetService "github.com/nimbus-hr/hrms-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	roleRepo := postgresql.NewRoleRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	employeeShiftRepo := postgresql.NewEmployeeShiftRepository(db)
	biometricIntegrationRepo := postgresql.NewBiometricIntegrationRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	onboardingTaskRepo := postgresql.NewOnboardingTaskRepository(db)
	assetRepo := postgresql.NewAssetRepository(db)
	policyRepo := postgresql.NewPolicyRepository(db)
	kpiRepo := postgresql.NewKPIRepository(db)
	periodRepo := postgresql.NewEvaluationPeriodRepository(db)
	reviewRepo := postgresql.NewReviewRepository(db)
	postingRepo := postgresql.NewPostingRepository(db)
	applicationRepo := postgresql.NewApplicationRepository(db)
	recruitmentIntegrationRepo := postgresql.NewRecruitmentIntegrationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)
	emailSvc, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	roleSvc := roleService.NewRoleService(roleRepo, employeeRepo)
	timesheetSvc := timesheetService.NewTimesheetService(timesheetRepo, overtimeRepo, employeeShiftRepo, cfg.Timesheet)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, shiftRepo, employeeShiftRepo, employeeRepo, timesheetSvc)
	biometricSvc := biometricService.NewBiometricService(biometricIntegrationRepo, punchRepo, employeeRepo, attendanceRepo, timesheetSvc, cfg.App.Timezone)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo, roleSvc)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, leaveBalanceRepo, holidayRepo, employeeRepo, roleSvc, emailSvc)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo)
	hropsSvc := hropsService.NewHROpsService(onboardingTaskRepo, assetRepo, policyRepo, employeeRepo)
	performanceSvc := performanceService.NewPerformanceService(kpiRepo, periodRepo, reviewRepo, employeeRepo)
	recruitmentSvc := recruitmentService.NewRecruitmentService(postingRepo, applicationRepo, recruitmentIntegrationRepo, departmentRepo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := roleSvc.SeedDefaults(ctx); err != nil {
		log.Fatal("Failed to seed default roles:", err)
	}

	scheduler := cron.NewScheduler()
	jobs := cron.NewHRJobs(attendanceRepo, employeeRepo, leaveRequestRepo, holidayRepo, biometricIntegrationRepo, cfg.App.Timezone)
	jobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		Config:       cfg,
		JWTService:   jwtService,
		RoleService:  roleSvc,
		EmployeeRepo: employeeRepo,

		Role:        appHTTP.NewRoleHandler(roleSvc),
		Employee:    appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		Biometric:   appHTTP.NewBiometricHandler(biometricSvc),
		Timesheet:   appHTTP.NewTimesheetHandler(timesheetSvc),
		Leave:       appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:     appHTTP.NewPayrollHandler(payrollSvc),
		HROps:       appHTTP.NewHROpsHandler(hropsSvc),
		Performance: appHTTP.NewPerformanceHandler(performanceSvc),
		Recruitment: appHTTP.NewRecruitmentHandler(recruitmentSvc),
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		slog.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown error", "error", err)
	}
}
