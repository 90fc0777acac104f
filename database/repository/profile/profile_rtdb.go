package profileRepo

import (
	"context"
	"fmt"
	"sort"

	"helperhub/database"
	"helperhub/models"

	"firebase.google.com/go/v4/db"
)

// RTDBProfileRepo implements ProfileRepository on the Firebase Realtime
// Database. Layout:
//
//	users/{uid}/profile
//	users/{uid}/settings
//	users/{uid}/pushToken
//	users/{userType}/{uid}   signup record
type RTDBProfileRepo struct {
	client *db.Client
}

func NewRTDBProfileRepo() ProfileRepository {
	return &RTDBProfileRepo{client: database.RTDB}
}

func profilePath(userID string) string {
	return "users/" + userID + "/profile"
}

func signupPath(userType models.UserType, userID string) string {
	return "users/" + string(userType) + "/" + userID
}

func (r *RTDBProfileRepo) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	var profile *models.UserProfile
	if err := r.client.NewRef(profilePath(userID)).Get(ctx, &profile); err != nil {
		return nil, fmt.Errorf("failed to fetch profile %s: %w", userID, err)
	}
	if profile == nil {
		return nil, ErrNotFound
	}
	profile.UserID = userID
	return profile, nil
}

func (r *RTDBProfileRepo) MergeProfile(ctx context.Context, userID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	if err := r.client.NewRef(profilePath(userID)).Update(ctx, fields); err != nil {
		return fmt.Errorf("failed to update profile %s: %w", userID, err)
	}
	return nil
}

func (r *RTDBProfileRepo) GetSignupRecord(ctx context.Context, userType models.UserType, userID string) (*models.SignupRecord, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	var record *models.SignupRecord
	if err := r.client.NewRef(signupPath(userType, userID)).Get(ctx, &record); err != nil {
		return nil, fmt.Errorf("failed to fetch signup record %s/%s: %w", userType, userID, err)
	}
	if record == nil {
		return nil, ErrNotFound
	}
	record.UserID = userID
	if record.UserType == "" {
		record.UserType = userType
	}
	return record, nil
}

func (r *RTDBProfileRepo) SaveSignupRecord(ctx context.Context, record *models.SignupRecord) error {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	if err := r.client.NewRef(signupPath(record.UserType, record.UserID)).Set(ctx, record); err != nil {
		return fmt.Errorf("failed to save signup record %s: %w", record.UserID, err)
	}
	return nil
}

// usersNode decodes one child of "users". The employer and jobSeeker
// children hold signup records and have no profile.
type usersNode struct {
	Profile *models.UserProfile `json:"profile"`
}

// ListProfiles reads the whole users subtree; the client filters in memory.
func (r *RTDBProfileRepo) ListProfiles(ctx context.Context) ([]models.UserProfile, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	var nodes map[string]usersNode
	if err := r.client.NewRef("users").Get(ctx, &nodes); err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	keys := make([]string, 0, len(nodes))
	for k := range nodes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	profiles := make([]models.UserProfile, 0, len(keys))
	for _, k := range keys {
		node := nodes[k]
		if node.Profile == nil {
			continue
		}
		p := *node.Profile
		p.UserID = k
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func (r *RTDBProfileRepo) DeleteUserData(ctx context.Context, userID string) error {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	updates := map[string]interface{}{userID: nil}
	for _, t := range []models.UserType{models.UserTypeEmployer, models.UserTypeJobSeeker} {
		updates[string(t)+"/"+userID] = nil
	}
	if err := r.client.NewRef("users").Update(ctx, updates); err != nil {
		return fmt.Errorf("failed to delete data of %s: %w", userID, err)
	}
	return nil
}
