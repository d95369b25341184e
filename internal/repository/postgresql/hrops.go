package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/hrops"
	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/database"
)

type onboardingTaskRepositoryImpl struct {
	db *database.DB
}

func NewOnboardingTaskRepository(db *database.DB) hrops.OnboardingTaskRepository {
	return &onboardingTaskRepositoryImpl{db: db}
}

const onboardingTaskColumns = `
	t.id, t.employee_id, t.title, t.description, t.assigned_to, t.due_date,
	t.status, t.notes, t.completed_at, t.created_at, t.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name`

// Create implements hrops.OnboardingTaskRepository.
func (r *onboardingTaskRepositoryImpl) Create(ctx context.Context, task hrops.OnboardingTask) (hrops.OnboardingTask, error) {
	q := GetQuerier(ctx, r.db)

	if task.ID == "" {
		task.ID = uuid.New().String()
	}

	query := `
		INSERT INTO onboarding_tasks (
			id, employee_id, title, description, assigned_to, due_date,
			status, notes, completed_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		task.ID, task.EmployeeID, task.Title, task.Description, task.AssignedTo,
		task.DueDate, task.Status, task.Notes, task.CompletedAt,
	).Scan(&task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return hrops.OnboardingTask{}, err
	}
	return task, nil
}

// GetByID implements hrops.OnboardingTaskRepository.
func (r *onboardingTaskRepositoryImpl) GetByID(ctx context.Context, id string) (hrops.OnboardingTask, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + onboardingTaskColumns + `
		FROM onboarding_tasks t
		JOIN employees e ON e.id = t.employee_id
		WHERE t.id = $1
	`
	task, err := scanOnboardingTask(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return hrops.OnboardingTask{}, hrops.ErrTaskNotFound
		}
		return hrops.OnboardingTask{}, err
	}
	return task, nil
}

// List implements hrops.OnboardingTaskRepository.
func (r *onboardingTaskRepositoryImpl) List(ctx context.Context, employeeID *string, status *string) ([]hrops.OnboardingTask, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if employeeID != nil {
		conditions = append(conditions, fmt.Sprintf("t.employee_id = $%d", argIdx))
		args = append(args, *employeeID)
		argIdx++
	}
	if status != nil {
		conditions = append(conditions, fmt.Sprintf("t.status = $%d", argIdx))
		args = append(args, *status)
		argIdx++
	}

	query := `
		SELECT ` + onboardingTaskColumns + `
		FROM onboarding_tasks t
		JOIN employees e ON e.id = t.employee_id
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY t.due_date NULLS LAST, t.created_at
	`
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []hrops.OnboardingTask
	for rows.Next() {
		task, err := scanOnboardingTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// Update implements hrops.OnboardingTaskRepository.
func (r *onboardingTaskRepositoryImpl) Update(ctx context.Context, task hrops.OnboardingTask) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE onboarding_tasks
		SET title = $2, description = $3, assigned_to = $4, due_date = $5,
			status = $6, notes = $7, completed_at = $8, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		task.ID, task.Title, task.Description, task.AssignedTo, task.DueDate,
		task.Status, task.Notes, task.CompletedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return hrops.ErrTaskNotFound
	}
	return nil
}

// Delete implements hrops.OnboardingTaskRepository.
func (r *onboardingTaskRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM onboarding_tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return hrops.ErrTaskNotFound
	}
	return nil
}

func scanOnboardingTask(row rowScanner) (hrops.OnboardingTask, error) {
	var task hrops.OnboardingTask
	err := row.Scan(
		&task.ID, &task.EmployeeID, &task.Title, &task.Description, &task.AssignedTo,
		&task.DueDate, &task.Status, &task.Notes, &task.CompletedAt,
		&task.CreatedAt, &task.UpdatedAt, &task.EmployeeName,
	)
	if err != nil {
		return hrops.OnboardingTask{}, err
	}
	return task, nil
}

type assetRepositoryImpl struct {
	db *database.DB
}

func NewAssetRepository(db *database.DB) hrops.AssetRepository {
	return &assetRepositoryImpl{db: db}
}

const assetColumns = `
	a.id, a.asset_type, a.asset_tag, a.serial_number, a.model, a.status,
	a.purchase_date, a.notes, a.created_at, a.updated_at,
	h.employee_id AS assigned_to_id,
	e.first_name || ' ' || e.last_name AS assigned_to_name`

const assetJoins = `
	LEFT JOIN asset_assignments h ON h.asset_id = a.id AND h.returned_at IS NULL
	LEFT JOIN employees e ON e.id = h.employee_id`

// Create implements hrops.AssetRepository.
func (r *assetRepositoryImpl) Create(ctx context.Context, asset hrops.Asset) (hrops.Asset, error) {
	q := GetQuerier(ctx, r.db)

	if asset.ID == "" {
		asset.ID = uuid.New().String()
	}

	query := `
		INSERT INTO assets (
			id, asset_type, asset_tag, serial_number, model, status,
			purchase_date, notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		asset.ID, asset.AssetType, asset.AssetTag, asset.SerialNumber, asset.Model,
		asset.Status, asset.PurchaseDate, asset.Notes,
	).Scan(&asset.CreatedAt, &asset.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return hrops.Asset{}, hrops.ErrAssetTagExists
		}
		return hrops.Asset{}, err
	}
	return asset, nil
}

// GetByID implements hrops.AssetRepository.
func (r *assetRepositoryImpl) GetByID(ctx context.Context, id string) (hrops.Asset, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + assetColumns + `
		FROM assets a` + assetJoins + `
		WHERE a.id = $1
	`
	asset, err := scanAsset(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return hrops.Asset{}, hrops.ErrAssetNotFound
		}
		return hrops.Asset{}, err
	}
	return asset, nil
}

// List implements hrops.AssetRepository.
func (r *assetRepositoryImpl) List(ctx context.Context, status *string, assetType *string) ([]hrops.Asset, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if status != nil {
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", argIdx))
		args = append(args, *status)
		argIdx++
	}
	if assetType != nil {
		conditions = append(conditions, fmt.Sprintf("a.asset_type = $%d", argIdx))
		args = append(args, *assetType)
		argIdx++
	}

	query := `
		SELECT ` + assetColumns + `
		FROM assets a` + assetJoins + `
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY a.asset_tag
	`
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []hrops.Asset
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	return assets, rows.Err()
}

// Update implements hrops.AssetRepository.
func (r *assetRepositoryImpl) Update(ctx context.Context, asset hrops.Asset) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE assets
		SET asset_type = $2, asset_tag = $3, serial_number = $4, model = $5,
			status = $6, purchase_date = $7, notes = $8, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		asset.ID, asset.AssetType, asset.AssetTag, asset.SerialNumber, asset.Model,
		asset.Status, asset.PurchaseDate, asset.Notes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return hrops.ErrAssetTagExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return hrops.ErrAssetNotFound
	}
	return nil
}

// Delete implements hrops.AssetRepository.
func (r *assetRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return hrops.ErrAssetNotFound
	}
	return nil
}

// CreateAssignment implements hrops.AssetRepository.
func (r *assetRepositoryImpl) CreateAssignment(ctx context.Context, assignment hrops.AssetAssignment) (hrops.AssetAssignment, error) {
	q := GetQuerier(ctx, r.db)

	if assignment.ID == "" {
		assignment.ID = uuid.New().String()
	}

	query := `
		INSERT INTO asset_assignments (id, asset_id, employee_id, assigned_by_id, assigned_at, notes)
		VALUES ($1, $2, $3, $4, NOW(), $5)
		RETURNING assigned_at
	`
	err := q.QueryRow(ctx, query,
		assignment.ID, assignment.AssetID, assignment.EmployeeID,
		assignment.AssignedByID, assignment.Notes,
	).Scan(&assignment.AssignedAt)
	if err != nil {
		return hrops.AssetAssignment{}, err
	}
	return assignment, nil
}

// GetOpenAssignment implements hrops.AssetRepository.
func (r *assetRepositoryImpl) GetOpenAssignment(ctx context.Context, assetID string) (*hrops.AssetAssignment, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, asset_id, employee_id, assigned_by_id, assigned_at,
			   returned_at, return_condition, notes
		FROM asset_assignments
		WHERE asset_id = $1 AND returned_at IS NULL
	`
	var assignment hrops.AssetAssignment
	err := q.QueryRow(ctx, query, assetID).Scan(
		&assignment.ID, &assignment.AssetID, &assignment.EmployeeID,
		&assignment.AssignedByID, &assignment.AssignedAt,
		&assignment.ReturnedAt, &assignment.ReturnCondition, &assignment.Notes,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

// CloseAssignment implements hrops.AssetRepository.
func (r *assetRepositoryImpl) CloseAssignment(ctx context.Context, assignment hrops.AssetAssignment) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE asset_assignments
		SET returned_at = $2, return_condition = $3
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, assignment.ID, assignment.ReturnedAt, assignment.ReturnCondition)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return hrops.ErrAssetNotAssigned
	}
	return nil
}

// ListAssignments implements hrops.AssetRepository.
func (r *assetRepositoryImpl) ListAssignments(ctx context.Context, assetID *string, employeeID *string) ([]hrops.AssetAssignment, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if assetID != nil {
		conditions = append(conditions, fmt.Sprintf("asset_id = $%d", argIdx))
		args = append(args, *assetID)
		argIdx++
	}
	if employeeID != nil {
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", argIdx))
		args = append(args, *employeeID)
		argIdx++
	}

	query := `
		SELECT id, asset_id, employee_id, assigned_by_id, assigned_at,
			   returned_at, return_condition, notes
		FROM asset_assignments
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY assigned_at DESC
	`
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []hrops.AssetAssignment
	for rows.Next() {
		var assignment hrops.AssetAssignment
		err := rows.Scan(
			&assignment.ID, &assignment.AssetID, &assignment.EmployeeID,
			&assignment.AssignedByID, &assignment.AssignedAt,
			&assignment.ReturnedAt, &assignment.ReturnCondition, &assignment.Notes,
		)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}
	return assignments, rows.Err()
}

func scanAsset(row rowScanner) (hrops.Asset, error) {
	var asset hrops.Asset
	err := row.Scan(
		&asset.ID, &asset.AssetType, &asset.AssetTag, &asset.SerialNumber, &asset.Model,
		&asset.Status, &asset.PurchaseDate, &asset.Notes,
		&asset.CreatedAt, &asset.UpdatedAt,
		&asset.AssignedToID, &asset.AssignedToName,
	)
	if err != nil {
		return hrops.Asset{}, err
	}
	return asset, nil
}

type policyRepositoryImpl struct {
	db *database.DB
}

func NewPolicyRepository(db *database.DB) hrops.PolicyRepository {
	return &policyRepositoryImpl{db: db}
}

// Create implements hrops.PolicyRepository.
func (r *policyRepositoryImpl) Create(ctx context.Context, policy hrops.Policy) (hrops.Policy, error) {
	q := GetQuerier(ctx, r.db)

	if policy.ID == "" {
		policy.ID = uuid.New().String()
	}

	query := `
		INSERT INTO policies (
			id, title, content, version, effective_date, is_active,
			require_ack, created_by_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		policy.ID, policy.Title, policy.Content, policy.Version, policy.EffectiveDate,
		policy.IsActive, policy.RequireAck, policy.CreatedByID,
	).Scan(&policy.CreatedAt, &policy.UpdatedAt)
	if err != nil {
		return hrops.Policy{}, err
	}
	return policy, nil
}

// GetByID implements hrops.PolicyRepository.
func (r *policyRepositoryImpl) GetByID(ctx context.Context, id string) (hrops.Policy, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, title, content, version, effective_date, is_active,
			   require_ack, created_by_id, created_at, updated_at
		FROM policies
		WHERE id = $1
	`
	var policy hrops.Policy
	err := q.QueryRow(ctx, query, id).Scan(
		&policy.ID, &policy.Title, &policy.Content, &policy.Version, &policy.EffectiveDate,
		&policy.IsActive, &policy.RequireAck, &policy.CreatedByID,
		&policy.CreatedAt, &policy.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return hrops.Policy{}, hrops.ErrPolicyNotFound
		}
		return hrops.Policy{}, err
	}
	return policy, nil
}

// List implements hrops.PolicyRepository.
func (r *policyRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]hrops.Policy, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, title, content, version, effective_date, is_active,
			   require_ack, created_by_id, created_at, updated_at
		FROM policies
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY effective_date DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var policies []hrops.Policy
	for rows.Next() {
		var policy hrops.Policy
		err := rows.Scan(
			&policy.ID, &policy.Title, &policy.Content, &policy.Version, &policy.EffectiveDate,
			&policy.IsActive, &policy.RequireAck, &policy.CreatedByID,
			&policy.CreatedAt, &policy.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		policies = append(policies, policy)
	}
	return policies, rows.Err()
}

// Update implements hrops.PolicyRepository.
func (r *policyRepositoryImpl) Update(ctx context.Context, policy hrops.Policy) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE policies
		SET title = $2, content = $3, version = $4, effective_date = $5,
			is_active = $6, require_ack = $7, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		policy.ID, policy.Title, policy.Content, policy.Version, policy.EffectiveDate,
		policy.IsActive, policy.RequireAck,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return hrops.ErrPolicyNotFound
	}
	return nil
}

// Delete implements hrops.PolicyRepository.
func (r *policyRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM policies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return hrops.ErrPolicyNotFound
	}
	return nil
}

// CreateAcknowledgment implements hrops.PolicyRepository.
func (r *policyRepositoryImpl) CreateAcknowledgment(ctx context.Context, ack hrops.PolicyAcknowledgment) (hrops.PolicyAcknowledgment, error) {
	q := GetQuerier(ctx, r.db)

	if ack.ID == "" {
		ack.ID = uuid.New().String()
	}

	query := `
		INSERT INTO policy_acknowledgments (id, policy_id, employee_id, status, comment, acknowledged_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING acknowledged_at
	`
	err := q.QueryRow(ctx, query,
		ack.ID, ack.PolicyID, ack.EmployeeID, ack.Status, ack.Comment,
	).Scan(&ack.AcknowledgedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return hrops.PolicyAcknowledgment{}, hrops.ErrAlreadyAcknowledged
		}
		return hrops.PolicyAcknowledgment{}, err
	}
	return ack, nil
}

// GetAcknowledgment implements hrops.PolicyRepository.
func (r *policyRepositoryImpl) GetAcknowledgment(ctx context.Context, policyID, employeeID string) (*hrops.PolicyAcknowledgment, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT a.id, a.policy_id, a.employee_id, a.status, a.comment, a.acknowledged_at,
			   e.first_name || ' ' || e.last_name AS employee_name
		FROM policy_acknowledgments a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.policy_id = $1 AND a.employee_id = $2
	`
	var ack hrops.PolicyAcknowledgment
	err := q.QueryRow(ctx, query, policyID, employeeID).Scan(
		&ack.ID, &ack.PolicyID, &ack.EmployeeID, &ack.Status, &ack.Comment,
		&ack.AcknowledgedAt, &ack.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &ack, nil
}

// ListAcknowledgments implements hrops.PolicyRepository.
func (r *policyRepositoryImpl) ListAcknowledgments(ctx context.Context, policyID string) ([]hrops.PolicyAcknowledgment, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT a.id, a.policy_id, a.employee_id, a.status, a.comment, a.acknowledged_at,
			   e.first_name || ' ' || e.last_name AS employee_name
		FROM policy_acknowledgments a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.policy_id = $1
		ORDER BY a.acknowledged_at DESC
	`
	rows, err := q.Query(ctx, query, policyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var acks []hrops.PolicyAcknowledgment
	for rows.Next() {
		var ack hrops.PolicyAcknowledgment
		err := rows.Scan(
			&ack.ID, &ack.PolicyID, &ack.EmployeeID, &ack.Status, &ack.Comment,
			&ack.AcknowledgedAt, &ack.EmployeeName,
		)
		if err != nil {
			return nil, err
		}
		acks = append(acks, ack)
	}
	return acks, rows.Err()
}
