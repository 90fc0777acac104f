package requestRepo

import (
	"context"
	"fmt"
	"sort"

	"helperhub/database"
	"helperhub/models"

	"firebase.google.com/go/v4/db"
)

// RTDBRequestRepo keeps requests under requests/{pushKey}. Reads load the
// whole node and filter in memory, which needs no ".indexOn" rules.
type RTDBRequestRepo struct {
	client *db.Client
}

func NewRTDBRequestRepo() RequestRepository {
	return &RTDBRequestRepo{client: database.RTDB}
}

func (r *RTDBRequestRepo) Create(ctx context.Context, req *models.ServiceRequest) (string, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	req.ID = "" // the push key is the id
	ref, err := r.client.NewRef("requests").Push(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.ID = ref.Key
	return ref.Key, nil
}

func (r *RTDBRequestRepo) all(ctx context.Context) ([]models.ServiceRequest, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	var nodes map[string]models.ServiceRequest
	if err := r.client.NewRef("requests").Get(ctx, &nodes); err != nil {
		return nil, fmt.Errorf("failed to read requests: %w", err)
	}
	keys := make([]string, 0, len(nodes))
	for k := range nodes {
		keys = append(keys, k)
	}
	sort.Strings(keys) // push keys are chronological

	out := make([]models.ServiceRequest, 0, len(keys))
	for _, k := range keys {
		req := nodes[k]
		req.ID = k
		out = append(out, req)
	}
	return out, nil
}

func (r *RTDBRequestRepo) filter(ctx context.Context, keep func(models.ServiceRequest) bool) ([]models.ServiceRequest, error) {
	all, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.ServiceRequest
	for _, req := range all {
		if keep(req) {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *RTDBRequestRepo) ExistsForPair(ctx context.Context, employerID, jobSeekerID string) (bool, error) {
	matches, err := r.filter(ctx, func(req models.ServiceRequest) bool {
		return req.EmployerID == employerID && req.JobSeekerID == jobSeekerID
	})
	if err != nil {
		return false, err
	}
	return len(matches) > 0, nil
}

func (r *RTDBRequestRepo) ListByEmployer(ctx context.Context, employerID string) ([]models.ServiceRequest, error) {
	return r.filter(ctx, func(req models.ServiceRequest) bool { return req.EmployerID == employerID })
}

func (r *RTDBRequestRepo) ListByJobSeeker(ctx context.Context, jobSeekerID string) ([]models.ServiceRequest, error) {
	return r.filter(ctx, func(req models.ServiceRequest) bool { return req.JobSeekerID == jobSeekerID })
}
