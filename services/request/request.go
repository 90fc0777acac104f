package request

import (
	"context"
	"errors"
	"strings"
	"time"

	profileRepo "helperhub/database/repository/profile"
	"helperhub/models"
	"helperhub/utils"

	"go.uber.org/zap"
)

const (
	fallbackEmployerName = "Employer"
	phoneNotProvided     = "Not provided"
)

// SendRequest checks for an earlier request to the same job seeker before
// writing. The check is a plain read: two concurrent sends can both pass it.
func (s *DefaultRequestService) SendRequest(ctx context.Context, employer *models.Identity, in models.SendRequestInput) (*models.ServiceRequest, error) {
	jobSeekerID := strings.TrimSpace(in.JobSeekerID)
	if jobSeekerID == "" {
		return nil, utils.NewValidationError("A provider must be selected.")
	}
	if jobSeekerID == employer.UID {
		return nil, utils.NewValidationError("You cannot send a request to yourself.")
	}
	logger := s.logger().With(zap.String("employerID", employer.UID), zap.String("jobSeekerID", jobSeekerID))

	exists, err := s.Requests.ExistsForPair(ctx, employer.UID, jobSeekerID)
	if err != nil {
		return nil, utils.NewRemoteError("Failed to send request", err)
	}
	if exists {
		return nil, utils.NewConflictError("Request already sent to this provider.")
	}

	seeker, _, err := profileRepo.LoadProfile(ctx, s.Profiles, jobSeekerID)
	if errors.Is(err, profileRepo.ErrNotFound) {
		return nil, utils.NewNotFoundError("Provider not found.")
	}
	if err != nil {
		return nil, utils.NewRemoteError("Failed to send request", err)
	}
	if seeker.UserType == models.UserTypeEmployer {
		return nil, utils.NewValidationError("Requests can only be sent to job seekers.")
	}

	req, err := s.employerSnapshot(ctx, employer)
	if err != nil {
		return nil, err
	}
	req.JobSeekerID = jobSeekerID
	req.ServiceType = s.serviceType(in.ServiceType)
	req.JobSeekerName = seeker.FullName()
	req.JobSeekerEmail = seeker.Email
	req.JobSeekerPhone = seeker.Phone
	req.JobSeekerCategories = append([]string{}, seeker.SelectedCategories...)
	req.Status = models.RequestStatusPending
	req.CreatedAt = time.Now().UTC()

	id, err := s.Requests.Create(ctx, req)
	if err != nil {
		logger.Error("request create failed", zap.Error(err))
		return nil, utils.NewRemoteError("Failed to send request", err)
	}
	req.ID = id
	logger.Info("request sent", zap.String("requestID", id))

	if s.Notifier != nil {
		payload := models.RequestCreatedPayload{
			RequestID:    id,
			JobSeekerID:  jobSeekerID,
			EmployerName: req.EmployerName,
			ServiceType:  req.ServiceType,
		}
		if err := s.Notifier.DispatchRequestCreated(ctx, payload); err != nil {
			logger.Warn("request notification not dispatched", zap.Error(err))
		}
	}
	return req, nil
}

// employerSnapshot copies the employer's contact fields from their profile,
// falling back to what the identity provider knows.
func (s *DefaultRequestService) employerSnapshot(ctx context.Context, employer *models.Identity) (*models.ServiceRequest, error) {
	req := &models.ServiceRequest{
		EmployerID:    employer.UID,
		EmployerName:  employer.DisplayName,
		EmployerEmail: employer.Email,
		EmployerPhone: employer.PhoneNumber,
	}

	p, _, err := profileRepo.LoadProfile(ctx, s.Profiles, employer.UID)
	switch {
	case err == nil:
		if name := p.FullName(); name != "" {
			req.EmployerName = name
		}
		if p.Email != "" {
			req.EmployerEmail = p.Email
		}
		if p.Phone != "" {
			req.EmployerPhone = p.Phone
		}
	case !errors.Is(err, profileRepo.ErrNotFound):
		return nil, utils.NewRemoteError("Failed to send request", err)
	}

	if req.EmployerName == "" {
		req.EmployerName = fallbackEmployerName
	}
	if req.EmployerPhone == "" {
		req.EmployerPhone = phoneNotProvided
	}
	return req, nil
}

func (s *DefaultRequestService) serviceType(requested string) string {
	if t := strings.TrimSpace(requested); t != "" {
		return t
	}
	if s.ServiceType != "" {
		return s.ServiceType
	}
	return models.DefaultServiceType
}

func (s *DefaultRequestService) ListRequests(ctx context.Context, userID string, userType models.UserType) ([]models.ServiceRequest, error) {
	var (
		reqs []models.ServiceRequest
		err  error
	)
	switch userType {
	case models.UserTypeEmployer:
		reqs, err = s.Requests.ListByEmployer(ctx, userID)
	case models.UserTypeJobSeeker:
		reqs, err = s.Requests.ListByJobSeeker(ctx, userID)
	default:
		return nil, utils.NewValidationError("Unknown account type.")
	}
	if err != nil {
		return nil, utils.NewRemoteError("Failed to load requests", err)
	}
	if reqs == nil {
		reqs = []models.ServiceRequest{}
	}
	return reqs, nil
}

func (s *DefaultRequestService) RequestedJobSeekers(ctx context.Context, employerID string) (map[string]bool, error) {
	reqs, err := s.Requests.ListByEmployer(ctx, employerID)
	if err != nil {
		return nil, utils.NewRemoteError("Failed to load requests", err)
	}
	requested := make(map[string]bool, len(reqs))
	for _, r := range reqs {
		requested[r.JobSeekerID] = true
	}
	return requested, nil
}
