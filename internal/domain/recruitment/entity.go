package recruitment

import (
	"strings"
	"time"
)

// Job posting statuses
const (
	PostingStatusDraft  = "Draft"
	PostingStatusOpen   = "Open"
	PostingStatusClosed = "Closed"
)

// Employment types
const (
	EmploymentFullTime   = "Full-time"
	EmploymentPartTime   = "Part-time"
	EmploymentContract   = "Contract"
	EmploymentInternship = "Internship"
)

type JobPosting struct {
	ID             string
	JobTitle       string
	DepartmentID   *string
	Description    string
	Requirements   string
	Location       *string
	EmploymentType string
	SalaryRangeMin *float64
	SalaryRangeMax *float64
	PostedDate     time.Time
	ClosingDate    time.Time
	Status         string
	CreatedByID    *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined for responses
	DepartmentName *string
}

// Application statuses
const (
	ApplicationApplied     = "Applied"
	ApplicationScreening   = "Screening"
	ApplicationInterviewed = "Interviewed"
	ApplicationShortlisted = "Shortlisted"
	ApplicationHired       = "Hired"
	ApplicationRejected    = "Rejected"
	ApplicationWithdrawn   = "Withdrawn"
)

// Application source providers
const (
	SourceManual   = "Manual"
	SourceLinkedIn = "LinkedIn"
	SourceNaukri   = "Naukri"
)

// Offer statuses
const (
	OfferPending  = "Pending"
	OfferOffered  = "Offered"
	OfferAccepted = "Accepted"
	OfferRejected = "Rejected"
)

// Application is a candidate's application to a job posting. Provider
// ingested rows are unique per (source_provider, external_id).
type Application struct {
	ID              string
	JobPostingID    string
	CandidateName   string
	Email           string
	PhoneNumber     *string
	ResumeURL       *string
	ProfileURL      *string
	SourceProvider  string
	ExternalID      *string
	CoverLetter     *string
	Status          string
	InterviewDate   *time.Time
	InterviewNotes  *string
	OfferStatus     *string
	OfferSalary     *float64
	OfferDate       *time.Time
	HiredEmployeeID *string
	Notes           *string
	SourcePayload   map[string]any
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined for responses
	JobTitle *string
}

// Integration holds a provider connection. The webhook token
// authenticates inbound candidate pushes; credentials for outbound
// sync are out of scope and never stored.
type Integration struct {
	ID                 string
	Provider           string
	DisplayName        string
	IsActive           bool
	AutoPostJobs       bool
	AutoSyncApplicants bool
	WebhookToken       string
	LastSyncAt         *time.Time
	LastSyncStatus     *string
	LastSyncMessage    *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// PostingLink ties a job posting to a provider's external job id so
// webhook payloads can address postings by the provider's identifier.
// Unique per (posting, integration).
type PostingLink struct {
	ID             string
	JobPostingID   string
	IntegrationID  string
	ExternalJobID  *string
	ExternalJobURL *string
	SyncStatus     *string
	SyncMessage    *string
	LastSyncedAt   *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NormalizeProvider maps the path segment of a webhook URL to a
// canonical provider name. Empty result means unknown provider.
func NormalizeProvider(segment string) string {
	switch strings.ToLower(strings.TrimSpace(segment)) {
	case "linkedin", "linked_in":
		return SourceLinkedIn
	case "naukri", "naukri.com", "naukriin":
		return SourceNaukri
	}
	return ""
}
