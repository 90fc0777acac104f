package requestRepo

import (
	"context"

	"helperhub/models"
)

// RequestRepository defines methods for service request data access.
type RequestRepository interface {
	// Create stores a new request and returns its generated id. Create never
	// deduplicates: two concurrent sends for the same pair both succeed.
	Create(ctx context.Context, req *models.ServiceRequest) (string, error)
	// ExistsForPair reports whether any request from employerID to jobSeekerID exists.
	ExistsForPair(ctx context.Context, employerID, jobSeekerID string) (bool, error)
	// ListByEmployer returns requests sent by employerID, oldest first.
	ListByEmployer(ctx context.Context, employerID string) ([]models.ServiceRequest, error)
	// ListByJobSeeker returns requests received by jobSeekerID, oldest first.
	ListByJobSeeker(ctx context.Context, jobSeekerID string) ([]models.ServiceRequest, error)
}

func NewRequestRepo(useMongo bool) RequestRepository {
	if useMongo {
		return NewMongoRequestRepo()
	}
	return NewRTDBRequestRepo()
}
