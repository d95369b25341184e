package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/recruitment"
	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/database"
)

type postingRepositoryImpl struct {
	db *database.DB
}

func NewPostingRepository(db *database.DB) recruitment.PostingRepository {
	return &postingRepositoryImpl{db: db}
}

const postingColumns = `
	j.id, j.job_title, j.department_id, j.description, j.requirements,
	j.location, j.employment_type, j.salary_range_min, j.salary_range_max,
	j.posted_date, j.closing_date, j.status, j.created_by_id,
	j.created_at, j.updated_at,
	d.name AS department_name`

// Create implements recruitment.PostingRepository.
func (r *postingRepositoryImpl) Create(ctx context.Context, posting recruitment.JobPosting) (recruitment.JobPosting, error) {
	q := GetQuerier(ctx, r.db)

	if posting.ID == "" {
		posting.ID = uuid.New().String()
	}

	query := `
		INSERT INTO job_postings (
			id, job_title, department_id, description, requirements,
			location, employment_type, salary_range_min, salary_range_max,
			posted_date, closing_date, status, created_by_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, CURRENT_DATE, $10, $11, $12, NOW(), NOW())
		RETURNING posted_date, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		posting.ID, posting.JobTitle, posting.DepartmentID, posting.Description,
		posting.Requirements, posting.Location, posting.EmploymentType,
		posting.SalaryRangeMin, posting.SalaryRangeMax,
		posting.ClosingDate, posting.Status, posting.CreatedByID,
	).Scan(&posting.PostedDate, &posting.CreatedAt, &posting.UpdatedAt)
	if err != nil {
		return recruitment.JobPosting{}, err
	}
	return posting, nil
}

// GetByID implements recruitment.PostingRepository.
func (r *postingRepositoryImpl) GetByID(ctx context.Context, id string) (recruitment.JobPosting, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + postingColumns + `
		FROM job_postings j
		LEFT JOIN departments d ON d.id = j.department_id
		WHERE j.id = $1
	`
	posting, err := scanPosting(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return recruitment.JobPosting{}, recruitment.ErrPostingNotFound
		}
		return recruitment.JobPosting{}, err
	}
	return posting, nil
}

// List implements recruitment.PostingRepository.
func (r *postingRepositoryImpl) List(ctx context.Context, status *string, departmentID *string) ([]recruitment.JobPosting, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if status != nil {
		conditions = append(conditions, fmt.Sprintf("j.status = $%d", argIdx))
		args = append(args, *status)
		argIdx++
	}
	if departmentID != nil {
		conditions = append(conditions, fmt.Sprintf("j.department_id = $%d", argIdx))
		args = append(args, *departmentID)
		argIdx++
	}

	query := `
		SELECT ` + postingColumns + `
		FROM job_postings j
		LEFT JOIN departments d ON d.id = j.department_id
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY j.posted_date DESC
	`
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var postings []recruitment.JobPosting
	for rows.Next() {
		posting, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		postings = append(postings, posting)
	}
	return postings, rows.Err()
}

// Update implements recruitment.PostingRepository.
func (r *postingRepositoryImpl) Update(ctx context.Context, posting recruitment.JobPosting) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE job_postings
		SET job_title = $2, department_id = $3, description = $4, requirements = $5,
			location = $6, employment_type = $7, salary_range_min = $8,
			salary_range_max = $9, closing_date = $10, status = $11, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		posting.ID, posting.JobTitle, posting.DepartmentID, posting.Description,
		posting.Requirements, posting.Location, posting.EmploymentType,
		posting.SalaryRangeMin, posting.SalaryRangeMax,
		posting.ClosingDate, posting.Status,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return recruitment.ErrPostingNotFound
	}
	return nil
}

// Delete implements recruitment.PostingRepository.
func (r *postingRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return recruitment.ErrPostingNotFound
	}
	return nil
}

func scanPosting(row rowScanner) (recruitment.JobPosting, error) {
	var posting recruitment.JobPosting
	err := row.Scan(
		&posting.ID, &posting.JobTitle, &posting.DepartmentID, &posting.Description,
		&posting.Requirements, &posting.Location, &posting.EmploymentType,
		&posting.SalaryRangeMin, &posting.SalaryRangeMax,
		&posting.PostedDate, &posting.ClosingDate, &posting.Status, &posting.CreatedByID,
		&posting.CreatedAt, &posting.UpdatedAt, &posting.DepartmentName,
	)
	if err != nil {
		return recruitment.JobPosting{}, err
	}
	return posting, nil
}

type applicationRepositoryImpl struct {
	db *database.DB
}

func NewApplicationRepository(db *database.DB) recruitment.ApplicationRepository {
	return &applicationRepositoryImpl{db: db}
}

const applicationColumns = `
	a.id, a.job_posting_id, a.candidate_name, a.email, a.phone_number,
	a.resume_url, a.profile_url, a.source_provider, a.external_id,
	a.cover_letter, a.status, a.interview_date, a.interview_notes,
	a.offer_status, a.offer_salary, a.offer_date, a.hired_employee_id,
	a.notes, a.source_payload, a.created_at, a.updated_at,
	j.job_title`

// Create implements recruitment.ApplicationRepository.
func (r *applicationRepositoryImpl) Create(ctx context.Context, application recruitment.Application) (recruitment.Application, error) {
	q := GetQuerier(ctx, r.db)

	if application.ID == "" {
		application.ID = uuid.New().String()
	}
	payloadJSON, _ := json.Marshal(application.SourcePayload)

	query := `
		INSERT INTO applications (
			id, job_posting_id, candidate_name, email, phone_number,
			resume_url, profile_url, source_provider, external_id,
			cover_letter, status, interview_date, interview_notes,
			offer_status, offer_salary, offer_date, hired_employee_id,
			notes, source_payload, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, NOW(), NOW()
		) RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		application.ID, application.JobPostingID, application.CandidateName,
		application.Email, application.PhoneNumber,
		application.ResumeURL, application.ProfileURL,
		application.SourceProvider, application.ExternalID,
		application.CoverLetter, application.Status,
		application.InterviewDate, application.InterviewNotes,
		application.OfferStatus, application.OfferSalary, application.OfferDate,
		application.HiredEmployeeID, application.Notes, payloadJSON,
	).Scan(&application.CreatedAt, &application.UpdatedAt)
	if err != nil {
		return recruitment.Application{}, err
	}
	return application, nil
}

// GetByID implements recruitment.ApplicationRepository.
func (r *applicationRepositoryImpl) GetByID(ctx context.Context, id string) (recruitment.Application, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + applicationColumns + `
		FROM applications a
		JOIN job_postings j ON j.id = a.job_posting_id
		WHERE a.id = $1
	`
	application, err := scanApplication(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return recruitment.Application{}, recruitment.ErrApplicationNotFound
		}
		return recruitment.Application{}, err
	}
	return application, nil
}

// GetByProviderAndExternalID implements recruitment.ApplicationRepository.
func (r *applicationRepositoryImpl) GetByProviderAndExternalID(ctx context.Context, provider, externalID string) (*recruitment.Application, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + applicationColumns + `
		FROM applications a
		JOIN job_postings j ON j.id = a.job_posting_id
		WHERE a.source_provider = $1 AND a.external_id = $2
	`
	application, err := scanApplication(q.QueryRow(ctx, query, provider, externalID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &application, nil
}

// List implements recruitment.ApplicationRepository.
func (r *applicationRepositoryImpl) List(ctx context.Context, filter recruitment.ApplicationFilter) ([]recruitment.Application, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if filter.JobPostingID != nil {
		conditions = append(conditions, fmt.Sprintf("a.job_posting_id = $%d", argIdx))
		args = append(args, *filter.JobPostingID)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Provider != nil {
		conditions = append(conditions, fmt.Sprintf("a.source_provider = $%d", argIdx))
		args = append(args, *filter.Provider)
		argIdx++
	}

	query := `
		SELECT ` + applicationColumns + `
		FROM applications a
		JOIN job_postings j ON j.id = a.job_posting_id
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY a.created_at DESC
	`
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []recruitment.Application
	for rows.Next() {
		application, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		applications = append(applications, application)
	}
	return applications, rows.Err()
}

// Update implements recruitment.ApplicationRepository.
func (r *applicationRepositoryImpl) Update(ctx context.Context, application recruitment.Application) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE applications
		SET candidate_name = $2, email = $3, phone_number = $4,
			resume_url = $5, profile_url = $6, cover_letter = $7, status = $8,
			interview_date = $9, interview_notes = $10,
			offer_status = $11, offer_salary = $12, offer_date = $13,
			hired_employee_id = $14, notes = $15, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		application.ID, application.CandidateName, application.Email, application.PhoneNumber,
		application.ResumeURL, application.ProfileURL, application.CoverLetter, application.Status,
		application.InterviewDate, application.InterviewNotes,
		application.OfferStatus, application.OfferSalary, application.OfferDate,
		application.HiredEmployeeID, application.Notes,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return recruitment.ErrApplicationNotFound
	}
	return nil
}

// Delete implements recruitment.ApplicationRepository.
func (r *applicationRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return recruitment.ErrApplicationNotFound
	}
	return nil
}

func scanApplication(row rowScanner) (recruitment.Application, error) {
	var application recruitment.Application
	var payloadJSON []byte

	err := row.Scan(
		&application.ID, &application.JobPostingID, &application.CandidateName,
		&application.Email, &application.PhoneNumber,
		&application.ResumeURL, &application.ProfileURL,
		&application.SourceProvider, &application.ExternalID,
		&application.CoverLetter, &application.Status,
		&application.InterviewDate, &application.InterviewNotes,
		&application.OfferStatus, &application.OfferSalary, &application.OfferDate,
		&application.HiredEmployeeID, &application.Notes, &payloadJSON,
		&application.CreatedAt, &application.UpdatedAt, &application.JobTitle,
	)
	if err != nil {
		return recruitment.Application{}, err
	}

	if payloadJSON != nil {
		json.Unmarshal(payloadJSON, &application.SourcePayload)
	}
	return application, nil
}

type recruitmentIntegrationRepositoryImpl struct {
	db *database.DB
}

func NewRecruitmentIntegrationRepository(db *database.DB) recruitment.IntegrationRepository {
	return &recruitmentIntegrationRepositoryImpl{db: db}
}

const recruitmentIntegrationColumns = `
	id, provider, display_name, is_active, auto_post_jobs, auto_sync_applicants,
	webhook_token, last_sync_at, last_sync_status, last_sync_message,
	created_at, updated_at`

// Create implements recruitment.IntegrationRepository.
func (r *recruitmentIntegrationRepositoryImpl) Create(ctx context.Context, integration recruitment.Integration) (recruitment.Integration, error) {
	q := GetQuerier(ctx, r.db)

	if integration.ID == "" {
		integration.ID = uuid.New().String()
	}

	query := `
		INSERT INTO recruitment_integrations (
			id, provider, display_name, is_active, auto_post_jobs,
			auto_sync_applicants, webhook_token, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		integration.ID, integration.Provider, integration.DisplayName,
		integration.IsActive, integration.AutoPostJobs,
		integration.AutoSyncApplicants, integration.WebhookToken,
	).Scan(&integration.CreatedAt, &integration.UpdatedAt)
	if err != nil {
		return recruitment.Integration{}, err
	}
	return integration, nil
}

// GetByID implements recruitment.IntegrationRepository.
func (r *recruitmentIntegrationRepositoryImpl) GetByID(ctx context.Context, id string) (recruitment.Integration, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + recruitmentIntegrationColumns + `
		FROM recruitment_integrations
		WHERE id = $1
	`
	integration, err := scanRecruitmentIntegration(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return recruitment.Integration{}, recruitment.ErrIntegrationNotFound
		}
		return recruitment.Integration{}, err
	}
	return integration, nil
}

// GetByProviderAndToken implements recruitment.IntegrationRepository.
func (r *recruitmentIntegrationRepositoryImpl) GetByProviderAndToken(ctx context.Context, provider, token string) (*recruitment.Integration, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + recruitmentIntegrationColumns + `
		FROM recruitment_integrations
		WHERE provider = $1 AND webhook_token = $2 AND is_active = TRUE
	`
	integration, err := scanRecruitmentIntegration(q.QueryRow(ctx, query, provider, token))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &integration, nil
}

// List implements recruitment.IntegrationRepository.
func (r *recruitmentIntegrationRepositoryImpl) List(ctx context.Context) ([]recruitment.Integration, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + recruitmentIntegrationColumns + `
		FROM recruitment_integrations
		ORDER BY provider, display_name
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var integrations []recruitment.Integration
	for rows.Next() {
		integration, err := scanRecruitmentIntegration(rows)
		if err != nil {
			return nil, err
		}
		integrations = append(integrations, integration)
	}
	return integrations, rows.Err()
}

// Update implements recruitment.IntegrationRepository.
func (r *recruitmentIntegrationRepositoryImpl) Update(ctx context.Context, integration recruitment.Integration) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE recruitment_integrations
		SET provider = $2, display_name = $3, is_active = $4,
			auto_post_jobs = $5, auto_sync_applicants = $6, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		integration.ID, integration.Provider, integration.DisplayName,
		integration.IsActive, integration.AutoPostJobs, integration.AutoSyncApplicants,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return recruitment.ErrIntegrationNotFound
	}
	return nil
}

// Delete implements recruitment.IntegrationRepository.
func (r *recruitmentIntegrationRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM recruitment_integrations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return recruitment.ErrIntegrationNotFound
	}
	return nil
}

// UpsertPostingLink implements recruitment.IntegrationRepository.
func (r *recruitmentIntegrationRepositoryImpl) UpsertPostingLink(ctx context.Context, link recruitment.PostingLink) (recruitment.PostingLink, error) {
	q := GetQuerier(ctx, r.db)

	if link.ID == "" {
		link.ID = uuid.New().String()
	}

	query := `
		INSERT INTO job_posting_integrations (
			id, job_posting_id, integration_id, external_job_id, external_job_url,
			sync_status, sync_message, last_synced_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		ON CONFLICT (job_posting_id, integration_id) DO UPDATE
		SET external_job_id = EXCLUDED.external_job_id,
			external_job_url = EXCLUDED.external_job_url,
			sync_status = EXCLUDED.sync_status,
			sync_message = EXCLUDED.sync_message,
			last_synced_at = EXCLUDED.last_synced_at,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		link.ID, link.JobPostingID, link.IntegrationID,
		link.ExternalJobID, link.ExternalJobURL,
		link.SyncStatus, link.SyncMessage, link.LastSyncedAt,
	).Scan(&link.ID, &link.CreatedAt, &link.UpdatedAt)
	if err != nil {
		return recruitment.PostingLink{}, err
	}
	return link, nil
}

// GetPostingLinkByExternalJobID implements recruitment.IntegrationRepository.
func (r *recruitmentIntegrationRepositoryImpl) GetPostingLinkByExternalJobID(ctx context.Context, integrationID, externalJobID string) (*recruitment.PostingLink, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, job_posting_id, integration_id, external_job_id, external_job_url,
			   sync_status, sync_message, last_synced_at, created_at, updated_at
		FROM job_posting_integrations
		WHERE integration_id = $1 AND external_job_id = $2
	`
	var link recruitment.PostingLink
	err := q.QueryRow(ctx, query, integrationID, externalJobID).Scan(
		&link.ID, &link.JobPostingID, &link.IntegrationID,
		&link.ExternalJobID, &link.ExternalJobURL,
		&link.SyncStatus, &link.SyncMessage, &link.LastSyncedAt,
		&link.CreatedAt, &link.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

// ListPostingLinks implements recruitment.IntegrationRepository.
func (r *recruitmentIntegrationRepositoryImpl) ListPostingLinks(ctx context.Context, jobPostingID string) ([]recruitment.PostingLink, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, job_posting_id, integration_id, external_job_id, external_job_url,
			   sync_status, sync_message, last_synced_at, created_at, updated_at
		FROM job_posting_integrations
		WHERE job_posting_id = $1
		ORDER BY updated_at DESC
	`
	rows, err := q.Query(ctx, query, jobPostingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []recruitment.PostingLink
	for rows.Next() {
		var link recruitment.PostingLink
		err := rows.Scan(
			&link.ID, &link.JobPostingID, &link.IntegrationID,
			&link.ExternalJobID, &link.ExternalJobURL,
			&link.SyncStatus, &link.SyncMessage, &link.LastSyncedAt,
			&link.CreatedAt, &link.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

func scanRecruitmentIntegration(row rowScanner) (recruitment.Integration, error) {
	var integration recruitment.Integration
	err := row.Scan(
		&integration.ID, &integration.Provider, &integration.DisplayName,
		&integration.IsActive, &integration.AutoPostJobs, &integration.AutoSyncApplicants,
		&integration.WebhookToken, &integration.LastSyncAt,
		&integration.LastSyncStatus, &integration.LastSyncMessage,
		&integration.CreatedAt, &integration.UpdatedAt,
	)
	if err != nil {
		return recruitment.Integration{}, err
	}
	return integration, nil
}
