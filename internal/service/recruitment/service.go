package recruitment

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nimbus-hr/hrms-backend-go/internal/domain/employee"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/recruitment"
	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/validator"
)

type RecruitmentServiceImpl struct {
	postingRepo     recruitment.PostingRepository
	applicationRepo recruitment.ApplicationRepository
	integrationRepo recruitment.IntegrationRepository
	departmentRepo  employee.DepartmentRepository
}

func NewRecruitmentService(
	postingRepo recruitment.PostingRepository,
	applicationRepo recruitment.ApplicationRepository,
	integrationRepo recruitment.IntegrationRepository,
	departmentRepo employee.DepartmentRepository,
) recruitment.RecruitmentService {
	return &RecruitmentServiceImpl{
		postingRepo:     postingRepo,
		applicationRepo: applicationRepo,
		integrationRepo: integrationRepo,
		departmentRepo:  departmentRepo,
	}
}

func newWebhookToken() string {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return strings.ReplaceAll(uuid.New().String(), "-", "")
	}
	return hex.EncodeToString(buf)
}

func (s *RecruitmentServiceImpl) buildPosting(ctx context.Context, req recruitment.UpsertPostingRequest) (recruitment.JobPosting, error) {
	closing, _ := validator.IsValidDate(req.ClosingDate)

	posting := recruitment.JobPosting{
		ID:             req.ID,
		JobTitle:       req.JobTitle,
		DepartmentID:   req.DepartmentID,
		Description:    req.Description,
		Requirements:   req.Requirements,
		Location:       req.Location,
		EmploymentType: req.EmploymentType,
		SalaryRangeMin: req.SalaryRangeMin,
		SalaryRangeMax: req.SalaryRangeMax,
		ClosingDate:    closing,
		Status:         req.Status,
		CreatedByID:    req.CreatedByID,
	}
	if posting.EmploymentType == "" {
		posting.EmploymentType = recruitment.EmploymentFullTime
	}
	if posting.Status == "" {
		posting.Status = recruitment.PostingStatusDraft
	}

	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			return recruitment.JobPosting{}, err
		}
	}
	return posting, nil
}

func (s *RecruitmentServiceImpl) CreatePosting(ctx context.Context, req recruitment.UpsertPostingRequest) (recruitment.PostingResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.PostingResponse{}, err
	}

	posting, err := s.buildPosting(ctx, req)
	if err != nil {
		return recruitment.PostingResponse{}, err
	}
	posting.ID = uuid.New().String()

	created, err := s.postingRepo.Create(ctx, posting)
	if err != nil {
		return recruitment.PostingResponse{}, err
	}
	return recruitment.ToPostingResponse(created), nil
}

func (s *RecruitmentServiceImpl) GetPosting(ctx context.Context, id string) (recruitment.PostingResponse, error) {
	posting, err := s.postingRepo.GetByID(ctx, id)
	if err != nil {
		return recruitment.PostingResponse{}, err
	}
	return recruitment.ToPostingResponse(posting), nil
}

func (s *RecruitmentServiceImpl) ListPostings(ctx context.Context, status *string, departmentID *string) ([]recruitment.PostingResponse, error) {
	postings, err := s.postingRepo.List(ctx, status, departmentID)
	if err != nil {
		return nil, err
	}

	responses := make([]recruitment.PostingResponse, 0, len(postings))
	for _, posting := range postings {
		responses = append(responses, recruitment.ToPostingResponse(posting))
	}
	return responses, nil
}

func (s *RecruitmentServiceImpl) UpdatePosting(ctx context.Context, req recruitment.UpsertPostingRequest) (recruitment.PostingResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.PostingResponse{}, err
	}

	existing, err := s.postingRepo.GetByID(ctx, req.ID)
	if err != nil {
		return recruitment.PostingResponse{}, err
	}

	posting, err := s.buildPosting(ctx, req)
	if err != nil {
		return recruitment.PostingResponse{}, err
	}
	posting.ID = existing.ID
	posting.PostedDate = existing.PostedDate
	posting.CreatedAt = existing.CreatedAt

	if err := s.postingRepo.Update(ctx, posting); err != nil {
		return recruitment.PostingResponse{}, err
	}
	return recruitment.ToPostingResponse(posting), nil
}

func (s *RecruitmentServiceImpl) DeletePosting(ctx context.Context, id string) error {
	return s.postingRepo.Delete(ctx, id)
}

func buildApplication(req recruitment.UpsertApplicationRequest) recruitment.Application {
	application := recruitment.Application{
		ID:             req.ID,
		JobPostingID:   req.JobPostingID,
		CandidateName:  req.CandidateName,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		ResumeURL:      req.ResumeURL,
		ProfileURL:     req.ProfileURL,
		SourceProvider: recruitment.SourceManual,
		CoverLetter:    req.CoverLetter,
		Status:         req.Status,
		InterviewNotes: req.InterviewNotes,
		OfferStatus:    req.OfferStatus,
		OfferSalary:    req.OfferSalary,
		Notes:          req.Notes,
	}
	if application.Status == "" {
		application.Status = recruitment.ApplicationApplied
	}
	if req.InterviewDate != nil {
		at, _ := validator.IsValidDateTime(*req.InterviewDate)
		application.InterviewDate = &at
	}
	if req.OfferDate != nil {
		d, _ := validator.IsValidDate(*req.OfferDate)
		application.OfferDate = &d
	}
	return application
}

func (s *RecruitmentServiceImpl) CreateApplication(ctx context.Context, req recruitment.UpsertApplicationRequest) (recruitment.ApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.ApplicationResponse{}, err
	}
	if _, err := s.postingRepo.GetByID(ctx, req.JobPostingID); err != nil {
		return recruitment.ApplicationResponse{}, err
	}

	application := buildApplication(req)
	application.ID = uuid.New().String()

	created, err := s.applicationRepo.Create(ctx, application)
	if err != nil {
		return recruitment.ApplicationResponse{}, err
	}
	return recruitment.ToApplicationResponse(created), nil
}

func (s *RecruitmentServiceImpl) GetApplication(ctx context.Context, id string) (recruitment.ApplicationResponse, error) {
	application, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return recruitment.ApplicationResponse{}, err
	}
	return recruitment.ToApplicationResponse(application), nil
}

func (s *RecruitmentServiceImpl) ListApplications(ctx context.Context, filter recruitment.ApplicationFilter) ([]recruitment.ApplicationResponse, error) {
	applications, err := s.applicationRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]recruitment.ApplicationResponse, 0, len(applications))
	for _, application := range applications {
		responses = append(responses, recruitment.ToApplicationResponse(application))
	}
	return responses, nil
}

func (s *RecruitmentServiceImpl) UpdateApplication(ctx context.Context, req recruitment.UpsertApplicationRequest) (recruitment.ApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.ApplicationResponse{}, err
	}

	existing, err := s.applicationRepo.GetByID(ctx, req.ID)
	if err != nil {
		return recruitment.ApplicationResponse{}, err
	}
	// An application linked to a hired employee is frozen except for notes.
	if existing.HiredEmployeeID != nil && req.Status != recruitment.ApplicationHired {
		return recruitment.ApplicationResponse{}, recruitment.ErrAlreadyHired
	}

	application := buildApplication(req)
	application.ID = existing.ID
	application.JobPostingID = existing.JobPostingID
	application.SourceProvider = existing.SourceProvider
	application.ExternalID = existing.ExternalID
	application.SourcePayload = existing.SourcePayload
	application.HiredEmployeeID = existing.HiredEmployeeID
	application.CreatedAt = existing.CreatedAt

	if err := s.applicationRepo.Update(ctx, application); err != nil {
		return recruitment.ApplicationResponse{}, err
	}
	return recruitment.ToApplicationResponse(application), nil
}

func (s *RecruitmentServiceImpl) DeleteApplication(ctx context.Context, id string) error {
	return s.applicationRepo.Delete(ctx, id)
}

func (s *RecruitmentServiceImpl) CreateIntegration(ctx context.Context, req recruitment.UpsertIntegrationRequest) (recruitment.IntegrationResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.IntegrationResponse{}, err
	}

	integration := recruitment.Integration{
		ID:           uuid.New().String(),
		Provider:     req.Provider,
		DisplayName:  req.DisplayName,
		IsActive:     true,
		WebhookToken: newWebhookToken(),
	}
	if req.IsActive != nil {
		integration.IsActive = *req.IsActive
	}
	if req.AutoPostJobs != nil {
		integration.AutoPostJobs = *req.AutoPostJobs
	}
	if req.AutoSyncApplicants != nil {
		integration.AutoSyncApplicants = *req.AutoSyncApplicants
	}

	created, err := s.integrationRepo.Create(ctx, integration)
	if err != nil {
		return recruitment.IntegrationResponse{}, err
	}
	// The token is revealed exactly once, in the creation response.
	return recruitment.ToIntegrationResponse(created, true), nil
}

func (s *RecruitmentServiceImpl) GetIntegration(ctx context.Context, id string) (recruitment.IntegrationResponse, error) {
	integration, err := s.integrationRepo.GetByID(ctx, id)
	if err != nil {
		return recruitment.IntegrationResponse{}, err
	}
	return recruitment.ToIntegrationResponse(integration, false), nil
}

func (s *RecruitmentServiceImpl) ListIntegrations(ctx context.Context) ([]recruitment.IntegrationResponse, error) {
	integrations, err := s.integrationRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]recruitment.IntegrationResponse, 0, len(integrations))
	for _, integration := range integrations {
		responses = append(responses, recruitment.ToIntegrationResponse(integration, false))
	}
	return responses, nil
}

func (s *RecruitmentServiceImpl) UpdateIntegration(ctx context.Context, req recruitment.UpsertIntegrationRequest) (recruitment.IntegrationResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.IntegrationResponse{}, err
	}

	existing, err := s.integrationRepo.GetByID(ctx, req.ID)
	if err != nil {
		return recruitment.IntegrationResponse{}, err
	}

	existing.Provider = req.Provider
	existing.DisplayName = req.DisplayName
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	if req.AutoPostJobs != nil {
		existing.AutoPostJobs = *req.AutoPostJobs
	}
	if req.AutoSyncApplicants != nil {
		existing.AutoSyncApplicants = *req.AutoSyncApplicants
	}

	if err := s.integrationRepo.Update(ctx, existing); err != nil {
		return recruitment.IntegrationResponse{}, err
	}
	return recruitment.ToIntegrationResponse(existing, false), nil
}

func (s *RecruitmentServiceImpl) DeleteIntegration(ctx context.Context, id string) error {
	return s.integrationRepo.Delete(ctx, id)
}

// stringField reads a top-level string value, tolerating numbers the
// provider sends for id fields.
func stringField(payload map[string]any, keys ...string) string {
	for _, key := range keys {
		value, ok := payload[key]
		if !ok || value == nil {
			continue
		}
		switch v := value.(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
		case float64:
			return strings.TrimSuffix(fmt.Sprintf("%v", v), ".0")
		}
	}
	return ""
}

// IngestWebhook implements recruitment.RecruitmentService. Candidate fields
// are read from the flat payload first, then from a nested "candidate"
// object, tolerating the field name variants the providers send.
func (s *RecruitmentServiceImpl) IngestWebhook(ctx context.Context, providerSegment, token string, payload map[string]any) (recruitment.WebhookResult, error) {
	provider := recruitment.NormalizeProvider(providerSegment)
	if provider == "" {
		return recruitment.WebhookResult{}, recruitment.ErrUnknownProvider
	}

	integration, err := s.integrationRepo.GetByProviderAndToken(ctx, provider, token)
	if err != nil {
		return recruitment.WebhookResult{}, err
	}
	if integration == nil {
		return recruitment.WebhookResult{}, recruitment.ErrInvalidWebhookToken
	}

	candidate, _ := payload["candidate"].(map[string]any)
	if candidate == nil {
		candidate = map[string]any{}
	}

	candidateName := stringField(payload, "candidate_name")
	if candidateName == "" {
		candidateName = stringField(candidate, "name", "full_name")
	}
	if candidateName == "" {
		first := stringField(payload, "first_name")
		if first == "" {
			first = stringField(candidate, "first_name")
		}
		last := stringField(payload, "last_name")
		if last == "" {
			last = stringField(candidate, "last_name")
		}
		candidateName = strings.TrimSpace(first + " " + last)
		if candidateName == "" {
			candidateName = "Unknown"
		}
	}

	email := stringField(payload, "email")
	if email == "" {
		email = stringField(candidate, "email")
	}
	if email == "" {
		return recruitment.WebhookResult{}, recruitment.ErrCandidateEmailNeeded
	}

	phone := stringField(payload, "phone_number")
	if phone == "" {
		phone = stringField(candidate, "phone", "phone_number")
	}
	profileURL := stringField(payload, "profile_url")
	if profileURL == "" {
		profileURL = stringField(candidate, "profile_url", "linkedin_url")
	}
	resumeURL := stringField(payload, "resume_url")
	if resumeURL == "" {
		resumeURL = stringField(candidate, "resume_url")
	}
	if resumeURL == "" {
		resumeURL = stringField(payload, "resume")
	}
	externalID := stringField(payload, "external_application_id", "application_id", "external_id", "id")

	posting, err := s.resolvePosting(ctx, integration.ID, payload)
	if err != nil {
		return recruitment.WebhookResult{}, err
	}
	if posting == nil {
		return recruitment.WebhookResult{}, recruitment.ErrPostingNotResolvable
	}

	if externalID != "" {
		existing, err := s.applicationRepo.GetByProviderAndExternalID(ctx, integration.Provider, externalID)
		if err != nil {
			return recruitment.WebhookResult{}, err
		}
		if existing != nil {
			return recruitment.WebhookResult{ApplicationID: existing.ID, Duplicate: true}, nil
		}
	}

	application := recruitment.Application{
		ID:             uuid.New().String(),
		JobPostingID:   posting.ID,
		CandidateName:  candidateName,
		Email:          email,
		SourceProvider: integration.Provider,
		Status:         recruitment.ApplicationApplied,
		SourcePayload:  payload,
	}
	if phone != "" {
		application.PhoneNumber = &phone
	}
	if profileURL != "" {
		application.ProfileURL = &profileURL
	}
	if resumeURL != "" {
		application.ResumeURL = &resumeURL
	}
	if externalID != "" {
		application.ExternalID = &externalID
	}

	created, err := s.applicationRepo.Create(ctx, application)
	if err != nil {
		return recruitment.WebhookResult{}, err
	}
	return recruitment.WebhookResult{ApplicationID: created.ID}, nil
}

// resolvePosting finds the posting a webhook payload targets: by our
// posting id first, then by the provider's external job id through the
// posting link table.
func (s *RecruitmentServiceImpl) resolvePosting(ctx context.Context, integrationID string, payload map[string]any) (*recruitment.JobPosting, error) {
	if postingID := stringField(payload, "job_posting_id", "job_posting", "job_id"); postingID != "" {
		posting, err := s.postingRepo.GetByID(ctx, postingID)
		if err == nil {
			return &posting, nil
		}
		if err != recruitment.ErrPostingNotFound {
			return nil, err
		}
	}

	if externalJobID := stringField(payload, "external_job_id", "job_external_id"); externalJobID != "" {
		link, err := s.integrationRepo.GetPostingLinkByExternalJobID(ctx, integrationID, externalJobID)
		if err != nil {
			return nil, err
		}
		if link != nil {
			posting, err := s.postingRepo.GetByID(ctx, link.JobPostingID)
			if err != nil {
				return nil, err
			}
			return &posting, nil
		}
	}
	return nil, nil
}
