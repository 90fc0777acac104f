package request

import (
	"context"
	"errors"
	"fmt"
	"testing"

	profileRepo "helperhub/database/repository/profile"
	"helperhub/models"
	"helperhub/utils"
)

type memRequests struct {
	items []models.ServiceRequest
}

func (m *memRequests) Create(ctx context.Context, req *models.ServiceRequest) (string, error) {
	id := fmt.Sprintf("req-%d", len(m.items)+1)
	r := *req
	r.ID = id
	m.items = append(m.items, r)
	return id, nil
}

func (m *memRequests) ExistsForPair(ctx context.Context, employerID, jobSeekerID string) (bool, error) {
	for _, r := range m.items {
		if r.EmployerID == employerID && r.JobSeekerID == jobSeekerID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memRequests) ListByEmployer(ctx context.Context, employerID string) ([]models.ServiceRequest, error) {
	var out []models.ServiceRequest
	for _, r := range m.items {
		if r.EmployerID == employerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRequests) ListByJobSeeker(ctx context.Context, jobSeekerID string) ([]models.ServiceRequest, error) {
	var out []models.ServiceRequest
	for _, r := range m.items {
		if r.JobSeekerID == jobSeekerID {
			out = append(out, r)
		}
	}
	return out, nil
}

type memProfiles struct {
	profileRepo.ProfileRepository
	profiles map[string]models.UserProfile
}

func (m *memProfiles) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	p, ok := m.profiles[userID]
	if !ok {
		return nil, profileRepo.ErrNotFound
	}
	return &p, nil
}

func (m *memProfiles) GetSignupRecord(ctx context.Context, userType models.UserType, userID string) (*models.SignupRecord, error) {
	return nil, profileRepo.ErrNotFound
}

type recordingNotifier struct {
	payloads []models.RequestCreatedPayload
	err      error
}

func (n *recordingNotifier) DispatchRequestCreated(ctx context.Context, p models.RequestCreatedPayload) error {
	n.payloads = append(n.payloads, p)
	return n.err
}

func newTestService() (*DefaultRequestService, *memRequests, *recordingNotifier) {
	reqs := &memRequests{}
	notifier := &recordingNotifier{}
	profiles := &memProfiles{profiles: map[string]models.UserProfile{
		"emp": {UserID: "emp", UserType: models.UserTypeEmployer, FirstName: "Asha", LastName: "Patil", Phone: "9000000001"},
		"js1": {
			UserID:             "js1",
			UserType:           models.UserTypeJobSeeker,
			FirstName:          "Ravi",
			LastName:           "Kale",
			Email:              "ravi@example.com",
			Phone:              "9000000002",
			SelectedCategories: []string{models.CategoryElectrician},
		},
		"emp2": {UserID: "emp2", UserType: models.UserTypeEmployer, FirstName: "Other"},
	}}
	return &DefaultRequestService{Requests: reqs, Profiles: profiles, Notifier: notifier}, reqs, notifier
}

func TestSendRequestCreatesPendingRequest(t *testing.T) {
	svc, reqs, notifier := newTestService()

	got, err := svc.SendRequest(context.Background(), &models.Identity{UID: "emp", Email: "asha@example.com"},
		models.SendRequestInput{JobSeekerID: "js1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID == "" || got.Status != models.RequestStatusPending {
		t.Errorf("expected a pending request with an id, got %+v", got)
	}
	if got.ServiceType != models.DefaultServiceType {
		t.Errorf("expected default service type, got %q", got.ServiceType)
	}
	if got.EmployerName != "Asha Patil" || got.EmployerPhone != "9000000001" || got.EmployerEmail != "asha@example.com" {
		t.Errorf("unexpected employer snapshot %+v", got)
	}
	if got.JobSeekerName != "Ravi Kale" || got.JobSeekerPhone != "9000000002" || len(got.JobSeekerCategories) != 1 {
		t.Errorf("unexpected job seeker snapshot %+v", got)
	}
	if len(reqs.items) != 1 {
		t.Fatalf("expected one stored request, got %d", len(reqs.items))
	}
	if len(notifier.payloads) != 1 || notifier.payloads[0].RequestID != got.ID || notifier.payloads[0].JobSeekerID != "js1" {
		t.Errorf("unexpected notifications %+v", notifier.payloads)
	}
}

func TestSendRequestRejectsDuplicate(t *testing.T) {
	svc, reqs, _ := newTestService()
	employer := &models.Identity{UID: "emp"}

	if _, err := svc.SendRequest(context.Background(), employer, models.SendRequestInput{JobSeekerID: "js1"}); err != nil {
		t.Fatalf("first send failed: %v", err)
	}
	_, err := svc.SendRequest(context.Background(), employer, models.SendRequestInput{JobSeekerID: "js1"})
	if !utils.IsKind(err, utils.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if len(reqs.items) != 1 {
		t.Errorf("duplicate must not be stored, got %d requests", len(reqs.items))
	}
}

func TestSendRequestValidation(t *testing.T) {
	svc, reqs, _ := newTestService()
	tests := []struct {
		name string
		in   models.SendRequestInput
		kind utils.ErrorKind
	}{
		{"blank job seeker", models.SendRequestInput{JobSeekerID: "  "}, utils.KindValidation},
		{"self", models.SendRequestInput{JobSeekerID: "emp"}, utils.KindValidation},
		{"unknown job seeker", models.SendRequestInput{JobSeekerID: "nobody"}, utils.KindNotFound},
		{"employer target", models.SendRequestInput{JobSeekerID: "emp2"}, utils.KindValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SendRequest(context.Background(), &models.Identity{UID: "emp"}, tt.in)
			if !utils.IsKind(err, tt.kind) {
				t.Errorf("expected %s, got %v", tt.kind, err)
			}
		})
	}
	if len(reqs.items) != 0 {
		t.Errorf("expected no stored requests, got %d", len(reqs.items))
	}
}

func TestSendRequestEmployerFallbacks(t *testing.T) {
	svc, _, _ := newTestService()

	got, err := svc.SendRequest(context.Background(), &models.Identity{UID: "ghost"}, models.SendRequestInput{JobSeekerID: "js1", ServiceType: "long-term"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.EmployerName != "Employer" || got.EmployerPhone != "Not provided" {
		t.Errorf("expected fallbacks, got name %q phone %q", got.EmployerName, got.EmployerPhone)
	}
	if got.ServiceType != "long-term" {
		t.Errorf("expected requested service type, got %q", got.ServiceType)
	}
}

func TestSendRequestSurvivesNotifierFailure(t *testing.T) {
	svc, reqs, notifier := newTestService()
	notifier.err = errors.New("queue down")

	if _, err := svc.SendRequest(context.Background(), &models.Identity{UID: "emp"}, models.SendRequestInput{JobSeekerID: "js1"}); err != nil {
		t.Fatalf("notification failure should not fail the send: %v", err)
	}
	if len(reqs.items) != 1 {
		t.Errorf("expected request to be stored")
	}
}

func TestListRequestsByUserType(t *testing.T) {
	svc, _, _ := newTestService()
	if _, err := svc.SendRequest(context.Background(), &models.Identity{UID: "emp"}, models.SendRequestInput{JobSeekerID: "js1"}); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	sent, err := svc.ListRequests(context.Background(), "emp", models.UserTypeEmployer)
	if err != nil || len(sent) != 1 {
		t.Fatalf("expected one sent request, got %d (%v)", len(sent), err)
	}
	received, err := svc.ListRequests(context.Background(), "js1", models.UserTypeJobSeeker)
	if err != nil || len(received) != 1 {
		t.Fatalf("expected one received request, got %d (%v)", len(received), err)
	}
	empty, err := svc.ListRequests(context.Background(), "emp2", models.UserTypeEmployer)
	if err != nil || empty == nil || len(empty) != 0 {
		t.Errorf("expected an empty non-nil list, got %v (%v)", empty, err)
	}
	if _, err := svc.ListRequests(context.Background(), "x", ""); !utils.IsKind(err, utils.KindValidation) {
		t.Errorf("expected validation error for unknown type, got %v", err)
	}

	requested, err := svc.RequestedJobSeekers(context.Background(), "emp")
	if err != nil || !requested["js1"] {
		t.Errorf("expected js1 to be marked requested, got %v (%v)", requested, err)
	}
}
