package biometric

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nimbus-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/biometric"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/employee"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/timesheet"
)

type BiometricServiceImpl struct {
	integrationRepo  biometric.IntegrationRepository
	punchRepo        biometric.PunchRepository
	employeeRepo     employee.EmployeeRepository
	attendanceRepo   attendance.AttendanceRepository
	timesheetService timesheet.TimesheetService
	timezone         *time.Location

	// dayLocks serializes attendance aggregation per (employee, day) so
	// concurrent webhook deliveries cannot interleave read-modify-write.
	dayLocksMu sync.Mutex
	dayLocks   map[string]*sync.Mutex
}

func NewBiometricService(
	integrationRepo biometric.IntegrationRepository,
	punchRepo biometric.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	timesheetService timesheet.TimesheetService,
	timezone *time.Location,
) biometric.BiometricService {
	return &BiometricServiceImpl{
		integrationRepo:  integrationRepo,
		punchRepo:        punchRepo,
		employeeRepo:     employeeRepo,
		attendanceRepo:   attendanceRepo,
		timesheetService: timesheetService,
		timezone:         timezone,
		dayLocks:         make(map[string]*sync.Mutex),
	}
}

func newWebhookToken() string {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		// rand.Read only fails when the OS entropy source is broken.
		return strings.ReplaceAll(uuid.New().String(), "-", "")
	}
	return hex.EncodeToString(buf)
}

// ExtractDrafts normalizes a vendor payload into punch candidates using the
// integration's data mapping. The payload is either {"punches": [...]} or a
// single punch object. Candidates without a parseable timestamp are dropped.
// Naive timestamps are interpreted in loc.
func ExtractDrafts(mapping *biometric.DataMapping, payload map[string]any, loc *time.Location) []biometric.PunchDraft {
	employeeField := "employee_id"
	timestampField := "timestamp"
	directionField := "direction"
	if mapping != nil {
		if mapping.EmployeeIdentifierField != "" {
			employeeField = mapping.EmployeeIdentifierField
		}
		if mapping.TimestampField != "" {
			timestampField = mapping.TimestampField
		}
		if mapping.DirectionField != "" {
			directionField = mapping.DirectionField
		}
	}

	var items []any
	if records, ok := payload["punches"].([]any); ok {
		items = records
	} else {
		items = []any{payload}
	}

	drafts := make([]biometric.PunchDraft, 0, len(items))
	for _, raw := range items {
		item, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		identifier := biometric.ParseFieldPath(employeeField).Lookup(item)
		if identifier == nil {
			identifier = item["employee_id"]
		}

		timestampRaw := biometric.ParseFieldPath(timestampField).Lookup(item)
		if timestampRaw == nil {
			timestampRaw = item["timestamp"]
		}
		if timestampRaw == nil {
			timestampRaw = item["time"]
		}
		if timestampRaw == nil {
			continue
		}

		punchTime, ok := parsePunchTime(fmt.Sprintf("%v", timestampRaw), loc)
		if !ok {
			continue
		}

		draft := biometric.PunchDraft{
			PunchTime:  punchTime,
			RawPayload: item,
		}
		if identifier != nil {
			id := strings.TrimSpace(fmt.Sprintf("%v", identifier))
			if id != "" {
				draft.EmployeeIdentifier = &id
			}
		}
		if direction := biometric.ParseFieldPath(directionField).Lookup(item); direction != nil {
			d := fmt.Sprintf("%v", direction)
			draft.Direction = &d
		}
		drafts = append(drafts, draft)
	}
	return drafts
}

// parsePunchTime accepts ISO 8601 timestamps, with or without an offset.
// A trailing "Z" means UTC; a timestamp with no offset is read in loc.
func parsePunchTime(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	for _, layout := range []string{"2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// resolveEmployee maps a device identifier to an employee, by email or by
// employee code depending on the mapping. Unknown identifier types fall
// back to email matching.
func (s *BiometricServiceImpl) resolveEmployee(ctx context.Context, identifier, identifierType string) (*employee.Employee, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, nil
	}
	if identifierType == biometric.IdentifierTypeEmployeeID {
		return s.employeeRepo.GetByCode(ctx, identifier)
	}
	return s.employeeRepo.GetByEmail(ctx, identifier)
}

func (s *BiometricServiceImpl) lockDay(employeeID string, day time.Time) *sync.Mutex {
	key := employeeID + "|" + day.Format("2006-01-02")
	s.dayLocksMu.Lock()
	defer s.dayLocksMu.Unlock()
	mu, ok := s.dayLocks[key]
	if !ok {
		mu = &sync.Mutex{}
		s.dayLocks[key] = mu
	}
	return mu
}

// updateAttendanceFromPunches recomputes the employee's attendance row for
// the punch's local day from the full punch history of that day: first punch
// clocks in, last punch clocks out. The upsert overwrites manual clock data
// for the day; the timesheet is re-derived afterwards.
func (s *BiometricServiceImpl) updateAttendanceFromPunches(ctx context.Context, employeeID string, punchTime time.Time) error {
	local := punchTime.In(s.timezone)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.timezone)

	mu := s.lockDay(employeeID, day)
	mu.Lock()
	defer mu.Unlock()

	punches, err := s.punchRepo.ListByEmployeeAndDay(ctx, employeeID, day)
	if err != nil {
		return err
	}
	if len(punches) == 0 {
		return nil
	}

	first := punches[0].PunchTime
	last := punches[len(punches)-1].PunchTime

	var workingHours float64
	if !last.Before(first) {
		workingHours = math.Round(last.Sub(first).Hours()*100) / 100
	}
	clockIn := first.In(s.timezone).Format("15:04:05")
	clockOut := last.In(s.timezone).Format("15:04:05")

	att := attendance.Attendance{
		ID:           uuid.New().String(),
		EmployeeID:   employeeID,
		Date:         day,
		ClockInTime:  &clockIn,
		ClockOutTime: &clockOut,
		WorkingHours: workingHours,
		Status:       attendance.StatusPresent,
	}

	stored, err := s.attendanceRepo.Upsert(ctx, att)
	if err != nil {
		return err
	}

	if _, err := s.timesheetService.DeriveFromAttendance(ctx, stored, timesheet.SourceBiometric); err != nil {
		return err
	}
	return nil
}

// IngestWebhook implements biometric.BiometricService.
func (s *BiometricServiceImpl) IngestWebhook(ctx context.Context, token string, payload map[string]any) (biometric.WebhookResult, error) {
	integration, err := s.integrationRepo.GetByWebhookToken(ctx, token)
	if err != nil {
		return biometric.WebhookResult{}, err
	}
	if integration == nil {
		return biometric.WebhookResult{}, biometric.ErrInvalidWebhookToken
	}

	identifierType := biometric.IdentifierTypeEmployeeID
	if integration.DataMapping != nil && integration.DataMapping.EmployeeIdentifierType != "" {
		identifierType = integration.DataMapping.EmployeeIdentifierType
	}

	drafts := ExtractDrafts(integration.DataMapping, payload, s.timezone)
	if len(drafts) == 0 {
		return biometric.WebhookResult{}, biometric.ErrNoPunchRecords
	}

	created := 0
	for _, draft := range drafts {
		punch := biometric.Punch{
			ID:                 uuid.New().String(),
			IntegrationID:      integration.ID,
			EmployeeIdentifier: draft.EmployeeIdentifier,
			DeviceID:           integration.DeviceID,
			PunchTime:          draft.PunchTime,
			Direction:          draft.Direction,
			RawPayload:         draft.RawPayload,
		}

		if draft.EmployeeIdentifier != nil {
			emp, err := s.resolveEmployee(ctx, *draft.EmployeeIdentifier, identifierType)
			if err != nil {
				return biometric.WebhookResult{Created: created}, err
			}
			if emp != nil {
				punch.EmployeeID = &emp.ID
			}
		}

		if _, err := s.punchRepo.Create(ctx, punch); err != nil {
			return biometric.WebhookResult{Created: created}, err
		}
		created++

		if punch.EmployeeID != nil {
			if err := s.updateAttendanceFromPunches(ctx, *punch.EmployeeID, punch.PunchTime); err != nil {
				slog.Error("Failed to update attendance from punch", "employee_id", *punch.EmployeeID, "error", err)
			}
		}
	}

	message := fmt.Sprintf("Webhook ingested %d punches.", created)
	if err := s.integrationRepo.RecordSync(ctx, integration.ID, time.Now(), biometric.SyncStatusSuccess, message); err != nil {
		slog.Warn("Failed to record sync status", "integration_id", integration.ID, "error", err)
	}

	return biometric.WebhookResult{Created: created}, nil
}

func (s *BiometricServiceImpl) CreateIntegration(ctx context.Context, req biometric.UpsertIntegrationRequest) (biometric.IntegrationResponse, error) {
	if err := req.Validate(); err != nil {
		return biometric.IntegrationResponse{}, err
	}

	integration := biometric.Integration{
		ID:             uuid.New().String(),
		Provider:       req.Provider,
		DisplayName:    req.DisplayName,
		ConnectionType: req.ConnectionType,
		BaseURL:        req.BaseURL,
		DeviceID:       req.DeviceID,
		Credentials:    req.Credentials,
		DataMapping:    req.DataMapping,
		WebhookToken:   newWebhookToken(),
		IsActive:       true,
		AutoSync:       false,
	}
	if req.IsActive != nil {
		integration.IsActive = *req.IsActive
	}
	if req.AutoSync != nil {
		integration.AutoSync = *req.AutoSync
	}

	created, err := s.integrationRepo.Create(ctx, integration)
	if err != nil {
		return biometric.IntegrationResponse{}, err
	}
	// The token is revealed exactly once, in the creation response.
	return biometric.ToIntegrationResponse(created, true), nil
}

func (s *BiometricServiceImpl) GetIntegration(ctx context.Context, id string) (biometric.IntegrationResponse, error) {
	integration, err := s.integrationRepo.GetByID(ctx, id)
	if err != nil {
		return biometric.IntegrationResponse{}, err
	}
	return biometric.ToIntegrationResponse(integration, false), nil
}

func (s *BiometricServiceImpl) ListIntegrations(ctx context.Context) ([]biometric.IntegrationResponse, error) {
	integrations, err := s.integrationRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]biometric.IntegrationResponse, 0, len(integrations))
	for _, integration := range integrations {
		responses = append(responses, biometric.ToIntegrationResponse(integration, false))
	}
	return responses, nil
}

func (s *BiometricServiceImpl) UpdateIntegration(ctx context.Context, req biometric.UpsertIntegrationRequest) (biometric.IntegrationResponse, error) {
	if err := req.Validate(); err != nil {
		return biometric.IntegrationResponse{}, err
	}

	existing, err := s.integrationRepo.GetByID(ctx, req.ID)
	if err != nil {
		return biometric.IntegrationResponse{}, err
	}

	existing.Provider = req.Provider
	existing.DisplayName = req.DisplayName
	existing.ConnectionType = req.ConnectionType
	existing.BaseURL = req.BaseURL
	existing.DeviceID = req.DeviceID
	existing.DataMapping = req.DataMapping
	if req.Credentials != nil {
		existing.Credentials = req.Credentials
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	if req.AutoSync != nil {
		existing.AutoSync = *req.AutoSync
	}

	if err := s.integrationRepo.Update(ctx, existing); err != nil {
		return biometric.IntegrationResponse{}, err
	}
	return biometric.ToIntegrationResponse(existing, false), nil
}

func (s *BiometricServiceImpl) DeleteIntegration(ctx context.Context, id string) error {
	return s.integrationRepo.Delete(ctx, id)
}

// TestIntegration implements biometric.BiometricService.
func (s *BiometricServiceImpl) TestIntegration(ctx context.Context, id string) error {
	integration, err := s.integrationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if len(integration.Credentials) == 0 {
		return biometric.ErrNoCredentials
	}
	return nil
}

// QueueSync implements biometric.BiometricService.
func (s *BiometricServiceImpl) QueueSync(ctx context.Context, id string) error {
	integration, err := s.integrationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if integration.ConnectionType != biometric.ConnectionPolling {
		return biometric.ErrNotPollingType
	}
	return s.integrationRepo.RecordSync(ctx, id, time.Now(), biometric.SyncStatusQueued, "Sync queued.")
}

func (s *BiometricServiceImpl) ListPunches(ctx context.Context, filter biometric.PunchFilter) ([]biometric.PunchResponse, int64, error) {
	punches, total, err := s.punchRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]biometric.PunchResponse, 0, len(punches))
	for _, punch := range punches {
		responses = append(responses, biometric.ToPunchResponse(punch))
	}
	return responses, total, nil
}
