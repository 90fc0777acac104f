package request

import (
	"context"

	profileRepo "helperhub/database/repository/profile"
	requestRepo "helperhub/database/repository/request"
	"helperhub/models"

	"go.uber.org/zap"
)

type RequestService interface {
	// SendRequest records a pending request from the employer to a job seeker.
	SendRequest(ctx context.Context, employer *models.Identity, in models.SendRequestInput) (*models.ServiceRequest, error)
	// ListRequests returns received requests for job seekers and sent
	// requests for employers.
	ListRequests(ctx context.Context, userID string, userType models.UserType) ([]models.ServiceRequest, error)
	// RequestedJobSeekers returns the job seekers the employer already asked.
	RequestedJobSeekers(ctx context.Context, employerID string) (map[string]bool, error)
}

// Notifier fans out a newly created request.
type Notifier interface {
	DispatchRequestCreated(ctx context.Context, p models.RequestCreatedPayload) error
}

// DefaultRequestService is the production implementation.
type DefaultRequestService struct {
	Requests    requestRepo.RequestRepository
	Profiles    profileRepo.ProfileRepository
	Notifier    Notifier // optional
	ServiceType string
	Logger      *zap.Logger
}

func (s *DefaultRequestService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
