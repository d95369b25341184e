package timesheet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbus-hr/hrms-backend-go/internal/config"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/timesheet"
)

type fakeTimesheetRepo struct {
	byKey map[string]*timesheet.Timesheet
	byID  map[string]timesheet.Timesheet
}

func newFakeTimesheetRepo() *fakeTimesheetRepo {
	return &fakeTimesheetRepo{
		byKey: make(map[string]*timesheet.Timesheet),
		byID:  make(map[string]timesheet.Timesheet),
	}
}

func tsKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (r *fakeTimesheetRepo) GetByID(ctx context.Context, id string) (timesheet.Timesheet, error) {
	ts, ok := r.byID[id]
	if !ok {
		return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
	}
	return ts, nil
}

func (r *fakeTimesheetRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*timesheet.Timesheet, error) {
	ts, ok := r.byKey[tsKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	copied := *ts
	return &copied, nil
}

func (r *fakeTimesheetRepo) List(ctx context.Context, filter timesheet.TimesheetFilter) ([]timesheet.Timesheet, int64, error) {
	return nil, 0, nil
}

func (r *fakeTimesheetRepo) Create(ctx context.Context, ts timesheet.Timesheet) (timesheet.Timesheet, error) {
	r.byKey[tsKey(ts.EmployeeID, ts.Date)] = &ts
	r.byID[ts.ID] = ts
	return ts, nil
}

func (r *fakeTimesheetRepo) Update(ctx context.Context, ts timesheet.Timesheet) error {
	r.byKey[tsKey(ts.EmployeeID, ts.Date)] = &ts
	r.byID[ts.ID] = ts
	return nil
}

func (r *fakeTimesheetRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	ts, ok := r.byID[id]
	if !ok {
		return timesheet.ErrTimesheetNotFound
	}
	ts.Status = status
	r.byID[id] = ts
	r.byKey[tsKey(ts.EmployeeID, ts.Date)] = &ts
	return nil
}

func (r *fakeTimesheetRepo) Delete(ctx context.Context, id string) error {
	ts, ok := r.byID[id]
	if !ok {
		return timesheet.ErrTimesheetNotFound
	}
	delete(r.byID, id)
	delete(r.byKey, tsKey(ts.EmployeeID, ts.Date))
	return nil
}

type fakeShiftAssignmentRepo struct {
	assignment *attendance.EmployeeShift
}

func (r *fakeShiftAssignmentRepo) Create(ctx context.Context, a attendance.EmployeeShift) (attendance.EmployeeShift, error) {
	return a, nil
}

func (r *fakeShiftAssignmentRepo) GetByID(ctx context.Context, id string) (attendance.EmployeeShift, error) {
	return attendance.EmployeeShift{}, attendance.ErrEmployeeShiftNotFound
}

func (r *fakeShiftAssignmentRepo) List(ctx context.Context, employeeID *string) ([]attendance.EmployeeShift, error) {
	return nil, nil
}

func (r *fakeShiftAssignmentRepo) Update(ctx context.Context, a attendance.EmployeeShift) error {
	return nil
}

func (r *fakeShiftAssignmentRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (r *fakeShiftAssignmentRepo) GetActiveForDate(ctx context.Context, employeeID string, date time.Time) (*attendance.EmployeeShift, error) {
	return r.assignment, nil
}

func strPtr(s string) *string { return &s }

func TestClockSpanHours(t *testing.T) {
	cases := []struct {
		start string
		end   string
		want  float64
	}{
		{"09:00:00", "17:00:00", 8},
		{"09:00:00", "17:30:00", 8.5},
		{"22:00:00", "06:00:00", 8}, // overnight rollover
		{"09:00:00", "09:00:00", 24},
		{"bad", "17:00:00", 0},
	}
	for _, c := range cases {
		got := clockSpanHours(c.start, c.end)
		if got != c.want {
			t.Errorf("clockSpanHours(%q, %q) = %v, want %v", c.start, c.end, got, c.want)
		}
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{8.499999, 8.5},
		{8.505, 8.51},
		{9.5, 9.5},
		{0, 0},
	}
	for _, c := range cases {
		if got := round2(c.in); got != c.want {
			t.Errorf("round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDeriveFromAttendanceCreatesOpenTimesheet(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTimesheetRepo()
	shifts := &fakeShiftAssignmentRepo{
		assignment: &attendance.EmployeeShift{
			Shift: &attendance.Shift{
				StartTime:            "09:00:00",
				EndTime:              "18:00:00",
				BreakDurationMinutes: 60,
			},
		},
	}
	svc := NewTimesheetService(repo, nil, shifts, config.TimesheetConfig{DefaultExpectedHours: 8})

	att := attendance.Attendance{
		EmployeeID:   "emp-1",
		Date:         time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		ClockInTime:  strPtr("08:00:00"),
		ClockOutTime: strPtr("18:00:00"),
	}

	ts, err := svc.DeriveFromAttendance(ctx, att, timesheet.SourceAttendance)
	require.NoError(t, err)

	assert.Equal(t, 10.0, ts.WorkingHours)
	// Shift expects 8h (9h span minus 60min break), so 2h overtime.
	assert.Equal(t, 2.0, ts.OvertimeHours)
	assert.Equal(t, timesheet.StatusOpen, ts.Status)
	assert.Equal(t, timesheet.SourceAttendance, ts.Source)
}

func TestDeriveFromAttendanceFallsBackToDefaultHours(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTimesheetRepo()
	svc := NewTimesheetService(repo, nil, &fakeShiftAssignmentRepo{}, config.TimesheetConfig{DefaultExpectedHours: 8})

	att := attendance.Attendance{
		EmployeeID:   "emp-1",
		Date:         time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		ClockInTime:  strPtr("08:00:00"),
		ClockOutTime: strPtr("17:30:00"),
	}

	ts, err := svc.DeriveFromAttendance(ctx, att, timesheet.SourceBiometric)
	require.NoError(t, err)
	assert.Equal(t, 9.5, ts.WorkingHours)
	assert.Equal(t, 1.5, ts.OvertimeHours)
}

func TestDeriveFromAttendanceUsesRecordedHours(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTimesheetRepo()
	svc := NewTimesheetService(repo, nil, &fakeShiftAssignmentRepo{}, config.TimesheetConfig{DefaultExpectedHours: 8})

	// A manual attendance entry may carry hours without clock times.
	att := attendance.Attendance{
		EmployeeID:   "emp-1",
		Date:         time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		WorkingHours: 4,
	}

	ts, err := svc.DeriveFromAttendance(ctx, att, timesheet.SourceAttendance)
	require.NoError(t, err)
	assert.Equal(t, 4.0, ts.WorkingHours)
	assert.Equal(t, 0.0, ts.OvertimeHours)

	// Recorded hours win over the clock span when both are present.
	att.WorkingHours = 6
	att.ClockInTime = strPtr("08:00:00")
	att.ClockOutTime = strPtr("18:00:00")
	ts, err = svc.DeriveFromAttendance(ctx, att, timesheet.SourceAttendance)
	require.NoError(t, err)
	assert.Equal(t, 6.0, ts.WorkingHours)
}

func TestDeriveFromAttendanceCarriesNotes(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTimesheetRepo()
	svc := NewTimesheetService(repo, nil, &fakeShiftAssignmentRepo{}, config.TimesheetConfig{DefaultExpectedHours: 8})

	att := attendance.Attendance{
		EmployeeID:   "emp-1",
		Date:         time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		ClockInTime:  strPtr("09:00:00"),
		ClockOutTime: strPtr("17:00:00"),
		Notes:        strPtr("worked from client site"),
	}

	ts, err := svc.DeriveFromAttendance(ctx, att, timesheet.SourceAttendance)
	require.NoError(t, err)
	require.NotNil(t, ts.Notes)
	assert.Equal(t, "worked from client site", *ts.Notes)

	// A recompute overwrites notes along with the hours.
	att.Notes = strPtr("corrected by HR")
	ts, err = svc.DeriveFromAttendance(ctx, att, timesheet.SourceAttendance)
	require.NoError(t, err)
	require.NotNil(t, ts.Notes)
	assert.Equal(t, "corrected by HR", *ts.Notes)
}

func TestDeriveFromAttendanceOvernightShift(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTimesheetRepo()
	svc := NewTimesheetService(repo, nil, &fakeShiftAssignmentRepo{}, config.TimesheetConfig{DefaultExpectedHours: 8})

	att := attendance.Attendance{
		EmployeeID:   "emp-1",
		Date:         time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		ClockInTime:  strPtr("22:00:00"),
		ClockOutTime: strPtr("06:00:00"),
	}

	ts, err := svc.DeriveFromAttendance(ctx, att, timesheet.SourceAttendance)
	require.NoError(t, err)
	assert.Equal(t, 8.0, ts.WorkingHours)
	assert.Equal(t, 0.0, ts.OvertimeHours)
}

func TestDeriveFromAttendanceRecomputeResetsStatus(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTimesheetRepo()
	svc := NewTimesheetService(repo, nil, &fakeShiftAssignmentRepo{}, config.TimesheetConfig{DefaultExpectedHours: 8})

	att := attendance.Attendance{
		EmployeeID:   "emp-1",
		Date:         time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		ClockInTime:  strPtr("09:00:00"),
		ClockOutTime: strPtr("17:00:00"),
	}

	first, err := svc.DeriveFromAttendance(ctx, att, timesheet.SourceAttendance)
	require.NoError(t, err)
	require.NoError(t, repo.UpdateStatus(ctx, first.ID, timesheet.StatusApproved))

	att.ClockOutTime = strPtr("18:00:00")
	second, err := svc.DeriveFromAttendance(ctx, att, timesheet.SourceBiometric)
	require.NoError(t, err)

	// Same row is updated, not duplicated, and the recompute reopens it.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 9.0, second.WorkingHours)
	assert.Equal(t, timesheet.StatusOpen, second.Status)
	assert.Equal(t, timesheet.SourceBiometric, second.Source)
}

func TestDeriveFromAttendancePreservesStatusWhenConfigured(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTimesheetRepo()
	svc := NewTimesheetService(repo, nil, &fakeShiftAssignmentRepo{}, config.TimesheetConfig{
		PreserveStatusOnRecompute: true,
		DefaultExpectedHours:      8,
	})

	att := attendance.Attendance{
		EmployeeID:   "emp-1",
		Date:         time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		ClockInTime:  strPtr("09:00:00"),
		ClockOutTime: strPtr("17:00:00"),
	}

	first, err := svc.DeriveFromAttendance(ctx, att, timesheet.SourceAttendance)
	require.NoError(t, err)
	require.NoError(t, repo.UpdateStatus(ctx, first.ID, timesheet.StatusApproved))

	second, err := svc.DeriveFromAttendance(ctx, att, timesheet.SourceAttendance)
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusApproved, second.Status)
}

func TestTimesheetWorkflowTransitions(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTimesheetRepo()
	svc := NewTimesheetService(repo, nil, &fakeShiftAssignmentRepo{}, config.TimesheetConfig{DefaultExpectedHours: 8})

	att := attendance.Attendance{
		EmployeeID:   "emp-1",
		Date:         time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		ClockInTime:  strPtr("09:00:00"),
		ClockOutTime: strPtr("17:00:00"),
	}
	ts, err := svc.DeriveFromAttendance(ctx, att, timesheet.SourceAttendance)
	require.NoError(t, err)

	// Open timesheets cannot be approved directly.
	_, err = svc.ApproveTimesheet(ctx, ts.ID)
	assert.ErrorIs(t, err, timesheet.ErrInvalidStatusTransition)

	submitted, err := svc.SubmitTimesheet(ctx, ts.ID)
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusSubmitted, submitted.Status)

	// Cannot submit twice.
	_, err = svc.SubmitTimesheet(ctx, ts.ID)
	assert.ErrorIs(t, err, timesheet.ErrInvalidStatusTransition)

	rejected, err := svc.RejectTimesheet(ctx, ts.ID)
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusRejected, rejected.Status)

	// Rejected timesheets can be resubmitted and then approved.
	_, err = svc.SubmitTimesheet(ctx, ts.ID)
	require.NoError(t, err)
	approved, err := svc.ApproveTimesheet(ctx, ts.ID)
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusApproved, approved.Status)
}
