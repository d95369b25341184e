package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/biometric"
	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/database"
)

type biometricIntegrationRepositoryImpl struct {
	db *database.DB
}

func NewBiometricIntegrationRepository(db *database.DB) biometric.IntegrationRepository {
	return &biometricIntegrationRepositoryImpl{db: db}
}

const biometricIntegrationColumns = `
	id, provider, display_name, connection_type, base_url, device_id,
	credentials, data_mapping, webhook_token, is_active, auto_sync,
	last_sync_at, last_sync_status, last_sync_message, created_at, updated_at`

// Create implements biometric.IntegrationRepository.
func (r *biometricIntegrationRepositoryImpl) Create(ctx context.Context, integration biometric.Integration) (biometric.Integration, error) {
	q := GetQuerier(ctx, r.db)

	if integration.ID == "" {
		integration.ID = uuid.New().String()
	}
	credentialsJSON, _ := json.Marshal(integration.Credentials)
	mappingJSON, _ := json.Marshal(integration.DataMapping)

	query := `
		INSERT INTO biometric_integrations (
			id, provider, display_name, connection_type, base_url, device_id,
			credentials, data_mapping, webhook_token, is_active, auto_sync,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		integration.ID, integration.Provider, integration.DisplayName,
		integration.ConnectionType, integration.BaseURL, integration.DeviceID,
		credentialsJSON, mappingJSON, integration.WebhookToken,
		integration.IsActive, integration.AutoSync,
	).Scan(&integration.CreatedAt, &integration.UpdatedAt)
	if err != nil {
		return biometric.Integration{}, err
	}
	return integration, nil
}

// GetByID implements biometric.IntegrationRepository.
func (r *biometricIntegrationRepositoryImpl) GetByID(ctx context.Context, id string) (biometric.Integration, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + biometricIntegrationColumns + `
		FROM biometric_integrations
		WHERE id = $1
	`
	integration, err := scanBiometricIntegration(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return biometric.Integration{}, biometric.ErrIntegrationNotFound
		}
		return biometric.Integration{}, err
	}
	return integration, nil
}

// GetByWebhookToken implements biometric.IntegrationRepository.
func (r *biometricIntegrationRepositoryImpl) GetByWebhookToken(ctx context.Context, token string) (*biometric.Integration, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + biometricIntegrationColumns + `
		FROM biometric_integrations
		WHERE webhook_token = $1 AND is_active = TRUE
	`
	integration, err := scanBiometricIntegration(q.QueryRow(ctx, query, token))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &integration, nil
}

// List implements biometric.IntegrationRepository.
func (r *biometricIntegrationRepositoryImpl) List(ctx context.Context) ([]biometric.Integration, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + biometricIntegrationColumns + `
		FROM biometric_integrations
		ORDER BY provider, display_name
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var integrations []biometric.Integration
	for rows.Next() {
		integration, err := scanBiometricIntegration(rows)
		if err != nil {
			return nil, err
		}
		integrations = append(integrations, integration)
	}
	return integrations, rows.Err()
}

// Update implements biometric.IntegrationRepository.
func (r *biometricIntegrationRepositoryImpl) Update(ctx context.Context, integration biometric.Integration) error {
	q := GetQuerier(ctx, r.db)

	credentialsJSON, _ := json.Marshal(integration.Credentials)
	mappingJSON, _ := json.Marshal(integration.DataMapping)

	query := `
		UPDATE biometric_integrations
		SET provider = $2, display_name = $3, connection_type = $4,
			base_url = $5, device_id = $6, credentials = $7, data_mapping = $8,
			is_active = $9, auto_sync = $10, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		integration.ID, integration.Provider, integration.DisplayName,
		integration.ConnectionType, integration.BaseURL, integration.DeviceID,
		credentialsJSON, mappingJSON, integration.IsActive, integration.AutoSync,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return biometric.ErrIntegrationNotFound
	}
	return nil
}

// Delete implements biometric.IntegrationRepository.
func (r *biometricIntegrationRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM biometric_integrations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return biometric.ErrIntegrationNotFound
	}
	return nil
}

// RecordSync implements biometric.IntegrationRepository.
func (r *biometricIntegrationRepositoryImpl) RecordSync(ctx context.Context, id string, at time.Time, status, message string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE biometric_integrations
		SET last_sync_at = $2, last_sync_status = $3, last_sync_message = $4, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, id, at, status, message)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return biometric.ErrIntegrationNotFound
	}
	return nil
}

// ListQueuedPolling implements biometric.IntegrationRepository.
func (r *biometricIntegrationRepositoryImpl) ListQueuedPolling(ctx context.Context) ([]biometric.Integration, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + biometricIntegrationColumns + `
		FROM biometric_integrations
		WHERE connection_type = $1 AND is_active = TRUE AND last_sync_status = $2
	`
	rows, err := q.Query(ctx, query, biometric.ConnectionPolling, biometric.SyncStatusQueued)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var integrations []biometric.Integration
	for rows.Next() {
		integration, err := scanBiometricIntegration(rows)
		if err != nil {
			return nil, err
		}
		integrations = append(integrations, integration)
	}
	return integrations, rows.Err()
}

func scanBiometricIntegration(row rowScanner) (biometric.Integration, error) {
	var integration biometric.Integration
	var credentialsJSON, mappingJSON []byte

	err := row.Scan(
		&integration.ID, &integration.Provider, &integration.DisplayName,
		&integration.ConnectionType, &integration.BaseURL, &integration.DeviceID,
		&credentialsJSON, &mappingJSON, &integration.WebhookToken,
		&integration.IsActive, &integration.AutoSync,
		&integration.LastSyncAt, &integration.LastSyncStatus, &integration.LastSyncMessage,
		&integration.CreatedAt, &integration.UpdatedAt,
	)
	if err != nil {
		return biometric.Integration{}, err
	}

	if credentialsJSON != nil {
		json.Unmarshal(credentialsJSON, &integration.Credentials)
	}
	if mappingJSON != nil {
		json.Unmarshal(mappingJSON, &integration.DataMapping)
	}
	return integration, nil
}

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) biometric.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

const punchColumns = `
	p.id, p.integration_id, p.employee_id, p.employee_identifier, p.device_id,
	p.punch_time, p.direction, p.raw_payload, p.created_at,
	e.first_name || ' ' || e.last_name AS employee_name`

// Create implements biometric.PunchRepository.
func (r *punchRepositoryImpl) Create(ctx context.Context, punch biometric.Punch) (biometric.Punch, error) {
	q := GetQuerier(ctx, r.db)

	if punch.ID == "" {
		punch.ID = uuid.New().String()
	}
	payloadJSON, _ := json.Marshal(punch.RawPayload)

	query := `
		INSERT INTO biometric_punches (
			id, integration_id, employee_id, employee_identifier, device_id,
			punch_time, direction, raw_payload, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING created_at
	`
	err := q.QueryRow(ctx, query,
		punch.ID, punch.IntegrationID, punch.EmployeeID, punch.EmployeeIdentifier,
		punch.DeviceID, punch.PunchTime, punch.Direction, payloadJSON,
	).Scan(&punch.CreatedAt)
	if err != nil {
		return biometric.Punch{}, err
	}
	return punch, nil
}

// List implements biometric.PunchRepository.
func (r *punchRepositoryImpl) List(ctx context.Context, filter biometric.PunchFilter) ([]biometric.Punch, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if filter.IntegrationID != nil {
		conditions = append(conditions, fmt.Sprintf("p.integration_id = $%d", argIdx))
		args = append(args, *filter.IntegrationID)
		argIdx++
	}
	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("p.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM biometric_punches p WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + punchColumns + `
		FROM biometric_punches p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE ` + where + `
		ORDER BY p.punch_time DESC
	`
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var punches []biometric.Punch
	for rows.Next() {
		punch, err := scanPunch(rows)
		if err != nil {
			return nil, 0, err
		}
		punches = append(punches, punch)
	}
	return punches, total, rows.Err()
}

// ListByEmployeeAndDay implements biometric.PunchRepository.
func (r *punchRepositoryImpl) ListByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time) ([]biometric.Punch, error) {
	q := GetQuerier(ctx, r.db)

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	query := `
		SELECT ` + punchColumns + `
		FROM biometric_punches p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1 AND p.punch_time >= $2 AND p.punch_time < $3
		ORDER BY p.punch_time
	`
	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var punches []biometric.Punch
	for rows.Next() {
		punch, err := scanPunch(rows)
		if err != nil {
			return nil, err
		}
		punches = append(punches, punch)
	}
	return punches, rows.Err()
}

func scanPunch(row rowScanner) (biometric.Punch, error) {
	var punch biometric.Punch
	var payloadJSON []byte

	err := row.Scan(
		&punch.ID, &punch.IntegrationID, &punch.EmployeeID, &punch.EmployeeIdentifier,
		&punch.DeviceID, &punch.PunchTime, &punch.Direction, &payloadJSON,
		&punch.CreatedAt, &punch.EmployeeName,
	)
	if err != nil {
		return biometric.Punch{}, err
	}

	if payloadJSON != nil {
		json.Unmarshal(payloadJSON, &punch.RawPayload)
	}
	return punch, nil
}
