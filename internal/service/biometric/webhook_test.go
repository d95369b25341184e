package biometric

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbus-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/biometric"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/employee"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/timesheet"
)

type fakeIntegrationRepo struct {
	biometric.IntegrationRepository
	integration    *biometric.Integration
	syncStatus     string
	syncMessage    string
	syncRecordedAt *time.Time
}

func (r *fakeIntegrationRepo) GetByWebhookToken(ctx context.Context, token string) (*biometric.Integration, error) {
	if r.integration != nil && r.integration.WebhookToken == token {
		copied := *r.integration
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeIntegrationRepo) RecordSync(ctx context.Context, id string, at time.Time, status, message string) error {
	r.syncStatus = status
	r.syncMessage = message
	r.syncRecordedAt = &at
	return nil
}

type fakePunchRepo struct {
	biometric.PunchRepository
	punches []biometric.Punch
}

func (r *fakePunchRepo) Create(ctx context.Context, punch biometric.Punch) (biometric.Punch, error) {
	r.punches = append(r.punches, punch)
	return punch, nil
}

func (r *fakePunchRepo) ListByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time) ([]biometric.Punch, error) {
	var matched []biometric.Punch
	for _, p := range r.punches {
		if p.EmployeeID == nil || *p.EmployeeID != employeeID {
			continue
		}
		local := p.PunchTime.In(day.Location())
		if local.Year() == day.Year() && local.Month() == day.Month() && local.Day() == day.Day() {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

type fakeEmployeeLookup struct {
	employee.EmployeeRepository
	byCode  map[string]employee.Employee
	byEmail map[string]employee.Employee
}

func (r *fakeEmployeeLookup) GetByCode(ctx context.Context, code string) (*employee.Employee, error) {
	if emp, ok := r.byCode[code]; ok {
		return &emp, nil
	}
	return nil, nil
}

func (r *fakeEmployeeLookup) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	if emp, ok := r.byEmail[email]; ok {
		return &emp, nil
	}
	return nil, nil
}

type fakeAttendanceUpserter struct {
	attendance.AttendanceRepository
	last *attendance.Attendance
}

func (r *fakeAttendanceUpserter) Upsert(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	r.last = &att
	return att, nil
}

type fakeTimesheetDeriver struct {
	timesheet.TimesheetService
	derived []attendance.Attendance
	sources []string
}

func (s *fakeTimesheetDeriver) DeriveFromAttendance(ctx context.Context, att attendance.Attendance, source string) (timesheet.Timesheet, error) {
	s.derived = append(s.derived, att)
	s.sources = append(s.sources, source)
	return timesheet.Timesheet{ID: "ts-1", EmployeeID: att.EmployeeID, Date: att.Date}, nil
}

type webhookFixture struct {
	integrations *fakeIntegrationRepo
	punches      *fakePunchRepo
	attendance   *fakeAttendanceUpserter
	timesheets   *fakeTimesheetDeriver
	svc          biometric.BiometricService
}

func newWebhookFixture(integration *biometric.Integration) *webhookFixture {
	f := &webhookFixture{
		integrations: &fakeIntegrationRepo{integration: integration},
		punches:      &fakePunchRepo{},
		attendance:   &fakeAttendanceUpserter{},
		timesheets:   &fakeTimesheetDeriver{},
	}
	employees := &fakeEmployeeLookup{
		byCode:  map[string]employee.Employee{"EMP001": {ID: "emp-1", Email: "asha@example.com"}},
		byEmail: map[string]employee.Employee{"asha@example.com": {ID: "emp-1", Email: "asha@example.com"}},
	}
	f.svc = NewBiometricService(f.integrations, f.punches, employees, f.attendance, f.timesheets, time.UTC)
	return f
}

func TestIngestWebhookAggregatesDayIntoAttendance(t *testing.T) {
	ctx := context.Background()
	f := newWebhookFixture(&biometric.Integration{ID: "int-1", WebhookToken: "tok-1", IsActive: true})

	payload := map[string]any{
		"punches": []any{
			map[string]any{"employee_id": "EMP001", "timestamp": "2026-03-02T08:00:00", "direction": "in"},
			map[string]any{"employee_id": "EMP001", "timestamp": "2026-03-02T17:30:00", "direction": "out"},
		},
	}

	result, err := f.svc.IngestWebhook(ctx, "tok-1", payload)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	require.Len(t, f.punches.punches, 2)

	// First punch clocks in, last punch clocks out.
	att := f.attendance.last
	require.NotNil(t, att)
	assert.Equal(t, "emp-1", att.EmployeeID)
	require.NotNil(t, att.ClockInTime)
	assert.Equal(t, "08:00:00", *att.ClockInTime)
	require.NotNil(t, att.ClockOutTime)
	assert.Equal(t, "17:30:00", *att.ClockOutTime)
	assert.Equal(t, 9.5, att.WorkingHours)
	assert.Equal(t, attendance.StatusPresent, att.Status)

	// The timesheet is re-derived after every aggregation pass.
	require.NotEmpty(t, f.timesheets.derived)
	assert.Equal(t, 9.5, f.timesheets.derived[len(f.timesheets.derived)-1].WorkingHours)
	assert.Equal(t, timesheet.SourceBiometric, f.timesheets.sources[len(f.timesheets.sources)-1])

	assert.Equal(t, biometric.SyncStatusSuccess, f.integrations.syncStatus)
}

func TestIngestWebhookResolvesByEmailMapping(t *testing.T) {
	ctx := context.Background()
	f := newWebhookFixture(&biometric.Integration{
		ID:           "int-1",
		WebhookToken: "tok-1",
		IsActive:     true,
		DataMapping:  &biometric.DataMapping{EmployeeIdentifierType: biometric.IdentifierTypeEmail},
	})

	payload := map[string]any{
		"employee_id": "asha@example.com",
		"timestamp":   "2026-03-02T09:00:00",
	}

	result, err := f.svc.IngestWebhook(ctx, "tok-1", payload)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)

	require.Len(t, f.punches.punches, 1)
	require.NotNil(t, f.punches.punches[0].EmployeeID)
	assert.Equal(t, "emp-1", *f.punches.punches[0].EmployeeID)
}

func TestIngestWebhookKeepsUnmatchedPunches(t *testing.T) {
	ctx := context.Background()
	f := newWebhookFixture(&biometric.Integration{ID: "int-1", WebhookToken: "tok-1", IsActive: true})

	payload := map[string]any{
		"employee_id": "UNKNOWN",
		"timestamp":   "2026-03-02T09:00:00",
	}

	result, err := f.svc.IngestWebhook(ctx, "tok-1", payload)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)

	// The raw punch is stored for later reconciliation, but no attendance
	// row is written without a resolved employee.
	require.Len(t, f.punches.punches, 1)
	assert.Nil(t, f.punches.punches[0].EmployeeID)
	assert.Nil(t, f.attendance.last)
	assert.Empty(t, f.timesheets.derived)
}

func TestIngestWebhookRejectsUnknownToken(t *testing.T) {
	ctx := context.Background()
	f := newWebhookFixture(&biometric.Integration{ID: "int-1", WebhookToken: "tok-1", IsActive: true})

	_, err := f.svc.IngestWebhook(ctx, "wrong", map[string]any{"timestamp": "2026-03-02T09:00:00"})
	assert.ErrorIs(t, err, biometric.ErrInvalidWebhookToken)
}

func TestIngestWebhookRejectsEmptyPayload(t *testing.T) {
	ctx := context.Background()
	f := newWebhookFixture(&biometric.Integration{ID: "int-1", WebhookToken: "tok-1", IsActive: true})

	_, err := f.svc.IngestWebhook(ctx, "tok-1", map[string]any{"punches": []any{}})
	assert.ErrorIs(t, err, biometric.ErrNoPunchRecords)
}
