package profileRepo

import (
	"context"
	"errors"
	"testing"

	"helperhub/models"
)

type stubRepo struct {
	ProfileRepository
	profile   *models.UserProfile
	signups   map[models.UserType]*models.SignupRecord
	signupErr error
}

func (r *stubRepo) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	if r.profile == nil {
		return nil, ErrNotFound
	}
	p := *r.profile
	return &p, nil
}

func (r *stubRepo) GetSignupRecord(ctx context.Context, userType models.UserType, userID string) (*models.SignupRecord, error) {
	if r.signupErr != nil {
		return nil, r.signupErr
	}
	if rec, ok := r.signups[userType]; ok {
		return rec, nil
	}
	return nil, ErrNotFound
}

func TestLoadProfileKeepsPrimaryPhone(t *testing.T) {
	repo := &stubRepo{
		profile: &models.UserProfile{UserID: "u1", Phone: "111"},
		signups: map[models.UserType]*models.SignupRecord{models.UserTypeJobSeeker: {Phone: "999"}},
	}
	p, recovered, err := LoadProfile(context.Background(), repo, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recovered || p.Phone != "111" {
		t.Fatalf("expected stored phone, got %q (recovered=%v)", p.Phone, recovered)
	}
}

func TestLoadProfileRecoversPhoneFromSignup(t *testing.T) {
	repo := &stubRepo{
		profile: &models.UserProfile{UserID: "u1", UserType: models.UserTypeEmployer, FirstName: "Asha"},
		signups: map[models.UserType]*models.SignupRecord{
			models.UserTypeEmployer:  {Phone: "222"},
			models.UserTypeJobSeeker: {Phone: "333"},
		},
	}
	p, recovered, err := LoadProfile(context.Background(), repo, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !recovered || p.Phone != "222" {
		t.Fatalf("expected employer signup phone, got %q (recovered=%v)", p.Phone, recovered)
	}
	if p.FirstName != "Asha" {
		t.Errorf("primary fields should be kept, got first name %q", p.FirstName)
	}
}

func TestLoadProfileFromSignupOnly(t *testing.T) {
	repo := &stubRepo{
		signups: map[models.UserType]*models.SignupRecord{models.UserTypeJobSeeker: {Phone: "444"}},
	}
	p, recovered, err := LoadProfile(context.Background(), repo, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !recovered || p.Phone != "444" || p.UserID != "u1" {
		t.Fatalf("unexpected profile %+v (recovered=%v)", p, recovered)
	}
}

func TestLoadProfileNotFound(t *testing.T) {
	_, _, err := LoadProfile(context.Background(), &stubRepo{}, "u1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadProfileSignupFailure(t *testing.T) {
	boom := errors.New("store down")
	repo := &stubRepo{profile: &models.UserProfile{UserID: "u1"}, signupErr: boom}
	_, _, err := LoadProfile(context.Background(), repo, "u1")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}
