package recruitment

import (
	"time"

	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/validator"
)

type UpsertPostingRequest struct {
	ID             string   `json:"-"`
	JobTitle       string   `json:"job_title"`
	DepartmentID   *string  `json:"department_id"`
	Description    string   `json:"description"`
	Requirements   string   `json:"requirements"`
	Location       *string  `json:"location"`
	EmploymentType string   `json:"employment_type"`
	SalaryRangeMin *float64 `json:"salary_range_min"`
	SalaryRangeMax *float64 `json:"salary_range_max"`
	ClosingDate    string   `json:"closing_date"`
	Status         string   `json:"status"`
	CreatedByID    *string  `json:"created_by_id"`
}

func (r UpsertPostingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.JobTitle) {
		errs = append(errs, validator.ValidationError{Field: "job_title", Message: "job_title is required"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description is required"})
	}
	if validator.IsEmpty(r.Requirements) {
		errs = append(errs, validator.ValidationError{Field: "requirements", Message: "requirements is required"})
	}
	if r.EmploymentType != "" && !validator.IsInSlice(r.EmploymentType, []string{EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentInternship}) {
		errs = append(errs, validator.ValidationError{Field: "employment_type", Message: "invalid employment type"})
	}
	if _, ok := validator.IsValidDate(r.ClosingDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "closing_date", Message: "must be YYYY-MM-DD"})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, []string{PostingStatusDraft, PostingStatusOpen, PostingStatusClosed}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "invalid status"})
	}
	if r.SalaryRangeMin != nil && r.SalaryRangeMax != nil && *r.SalaryRangeMax < *r.SalaryRangeMin {
		errs = append(errs, validator.ValidationError{Field: "salary_range_max", Message: "must not be below salary_range_min"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PostingResponse struct {
	ID             string   `json:"id"`
	JobTitle       string   `json:"job_title"`
	DepartmentID   *string  `json:"department_id,omitempty"`
	DepartmentName *string  `json:"department_name,omitempty"`
	Description    string   `json:"description"`
	Requirements   string   `json:"requirements"`
	Location       *string  `json:"location,omitempty"`
	EmploymentType string   `json:"employment_type"`
	SalaryRangeMin *float64 `json:"salary_range_min,omitempty"`
	SalaryRangeMax *float64 `json:"salary_range_max,omitempty"`
	PostedDate     string   `json:"posted_date"`
	ClosingDate    string   `json:"closing_date"`
	Status         string   `json:"status"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

func ToPostingResponse(p JobPosting) PostingResponse {
	return PostingResponse{
		ID:             p.ID,
		JobTitle:       p.JobTitle,
		DepartmentID:   p.DepartmentID,
		DepartmentName: p.DepartmentName,
		Description:    p.Description,
		Requirements:   p.Requirements,
		Location:       p.Location,
		EmploymentType: p.EmploymentType,
		SalaryRangeMin: p.SalaryRangeMin,
		SalaryRangeMax: p.SalaryRangeMax,
		PostedDate:     p.PostedDate.Format("2006-01-02"),
		ClosingDate:    p.ClosingDate.Format("2006-01-02"),
		Status:         p.Status,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      p.UpdatedAt.Format(time.RFC3339),
	}
}

type ApplicationFilter struct {
	JobPostingID *string
	Status       *string
	Provider     *string
}

type UpsertApplicationRequest struct {
	ID             string   `json:"-"`
	JobPostingID   string   `json:"job_posting_id"`
	CandidateName  string   `json:"candidate_name"`
	Email          string   `json:"email"`
	PhoneNumber    *string  `json:"phone_number"`
	ResumeURL      *string  `json:"resume_url"`
	ProfileURL     *string  `json:"profile_url"`
	CoverLetter    *string  `json:"cover_letter"`
	Status         string   `json:"status"`
	InterviewDate  *string  `json:"interview_date"`
	InterviewNotes *string  `json:"interview_notes"`
	OfferStatus    *string  `json:"offer_status"`
	OfferSalary    *float64 `json:"offer_salary"`
	OfferDate      *string  `json:"offer_date"`
	Notes          *string  `json:"notes"`
}

func (r UpsertApplicationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.JobPostingID) {
		errs = append(errs, validator.ValidationError{Field: "job_posting_id", Message: "job_posting_id is required"})
	}
	if validator.IsEmpty(r.CandidateName) {
		errs = append(errs, validator.ValidationError{Field: "candidate_name", Message: "candidate_name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email address"})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, []string{
		ApplicationApplied, ApplicationScreening, ApplicationInterviewed,
		ApplicationShortlisted, ApplicationHired, ApplicationRejected, ApplicationWithdrawn,
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "invalid status"})
	}
	if r.InterviewDate != nil {
		if _, ok := validator.IsValidDateTime(*r.InterviewDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "interview_date", Message: "must be an ISO8601 timestamp"})
		}
	}
	if r.OfferStatus != nil && !validator.IsInSlice(*r.OfferStatus, []string{OfferPending, OfferOffered, OfferAccepted, OfferRejected}) {
		errs = append(errs, validator.ValidationError{Field: "offer_status", Message: "invalid offer status"})
	}
	if r.OfferDate != nil {
		if _, ok := validator.IsValidDate(*r.OfferDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "offer_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApplicationResponse struct {
	ID              string   `json:"id"`
	JobPostingID    string   `json:"job_posting_id"`
	JobTitle        *string  `json:"job_title,omitempty"`
	CandidateName   string   `json:"candidate_name"`
	Email           string   `json:"email"`
	PhoneNumber     *string  `json:"phone_number,omitempty"`
	ResumeURL       *string  `json:"resume_url,omitempty"`
	ProfileURL      *string  `json:"profile_url,omitempty"`
	SourceProvider  string   `json:"source_provider"`
	ExternalID      *string  `json:"external_id,omitempty"`
	CoverLetter     *string  `json:"cover_letter,omitempty"`
	Status          string   `json:"status"`
	InterviewDate   *string  `json:"interview_date,omitempty"`
	InterviewNotes  *string  `json:"interview_notes,omitempty"`
	OfferStatus     *string  `json:"offer_status,omitempty"`
	OfferSalary     *float64 `json:"offer_salary,omitempty"`
	OfferDate       *string  `json:"offer_date,omitempty"`
	HiredEmployeeID *string  `json:"hired_employee_id,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

func ToApplicationResponse(a Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:              a.ID,
		JobPostingID:    a.JobPostingID,
		JobTitle:        a.JobTitle,
		CandidateName:   a.CandidateName,
		Email:           a.Email,
		PhoneNumber:     a.PhoneNumber,
		ResumeURL:       a.ResumeURL,
		ProfileURL:      a.ProfileURL,
		SourceProvider:  a.SourceProvider,
		ExternalID:      a.ExternalID,
		CoverLetter:     a.CoverLetter,
		Status:          a.Status,
		InterviewNotes:  a.InterviewNotes,
		OfferStatus:     a.OfferStatus,
		OfferSalary:     a.OfferSalary,
		HiredEmployeeID: a.HiredEmployeeID,
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       a.UpdatedAt.Format(time.RFC3339),
	}
	if a.InterviewDate != nil {
		at := a.InterviewDate.Format(time.RFC3339)
		resp.InterviewDate = &at
	}
	if a.OfferDate != nil {
		d := a.OfferDate.Format("2006-01-02")
		resp.OfferDate = &d
	}
	return resp
}

type UpsertIntegrationRequest struct {
	ID                 string `json:"-"`
	Provider           string `json:"provider"`
	DisplayName        string `json:"display_name"`
	IsActive           *bool  `json:"is_active"`
	AutoPostJobs       *bool  `json:"auto_post_jobs"`
	AutoSyncApplicants *bool  `json:"auto_sync_applicants"`
}

func (r UpsertIntegrationRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Provider, []string{SourceLinkedIn, SourceNaukri}) {
		errs = append(errs, validator.ValidationError{Field: "provider", Message: "must be LinkedIn or Naukri"})
	}
	if validator.IsEmpty(r.DisplayName) {
		errs = append(errs, validator.ValidationError{Field: "display_name", Message: "display_name is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type IntegrationResponse struct {
	ID                 string  `json:"id"`
	Provider           string  `json:"provider"`
	DisplayName        string  `json:"display_name"`
	IsActive           bool    `json:"is_active"`
	AutoPostJobs       bool    `json:"auto_post_jobs"`
	AutoSyncApplicants bool    `json:"auto_sync_applicants"`
	WebhookToken       string  `json:"webhook_token,omitempty"`
	LastSyncAt         *string `json:"last_sync_at,omitempty"`
	LastSyncStatus     *string `json:"last_sync_status,omitempty"`
	LastSyncMessage    *string `json:"last_sync_message,omitempty"`
	CreatedAt          string  `json:"created_at"`
	UpdatedAt          string  `json:"updated_at"`
}

// ToIntegrationResponse renders an integration. The webhook token is
// included only when revealToken is set (creation time).
func ToIntegrationResponse(i Integration, revealToken bool) IntegrationResponse {
	resp := IntegrationResponse{
		ID:                 i.ID,
		Provider:           i.Provider,
		DisplayName:        i.DisplayName,
		IsActive:           i.IsActive,
		AutoPostJobs:       i.AutoPostJobs,
		AutoSyncApplicants: i.AutoSyncApplicants,
		LastSyncStatus:     i.LastSyncStatus,
		LastSyncMessage:    i.LastSyncMessage,
		CreatedAt:          i.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          i.UpdatedAt.Format(time.RFC3339),
	}
	if revealToken {
		resp.WebhookToken = i.WebhookToken
	}
	if i.LastSyncAt != nil {
		at := i.LastSyncAt.Format(time.RFC3339)
		resp.LastSyncAt = &at
	}
	return resp
}

// WebhookResult reports the outcome of a candidate push. Duplicate
// means the application already existed and no row was created.
type WebhookResult struct {
	ApplicationID string `json:"application_id,omitempty"`
	Duplicate     bool   `json:"duplicate"`
}
