package account

import (
	"context"
	"errors"
	"io"
	"testing"

	profileRepo "helperhub/database/repository/profile"
	"helperhub/models"
	"helperhub/utils"
)

type fakeIdentity struct {
	passwords map[string]string
	deleted   []string
}

func (f *fakeIdentity) VerifyToken(ctx context.Context, idToken string) (string, error) {
	return "", utils.NewUnauthenticatedError("unused")
}

func (f *fakeIdentity) GetIdentity(ctx context.Context, uid string) (*models.Identity, error) {
	return &models.Identity{UID: uid}, nil
}

func (f *fakeIdentity) ChangePassword(ctx context.Context, uid, newPassword string) error {
	if f.passwords == nil {
		f.passwords = map[string]string{}
	}
	f.passwords[uid] = newPassword
	return nil
}

func (f *fakeIdentity) DeleteUser(ctx context.Context, uid string) error {
	f.deleted = append(f.deleted, uid)
	return nil
}

type fakeProfiles struct {
	profileRepo.ProfileRepository
	deleted []string
	err     error
}

func (f *fakeProfiles) DeleteUserData(ctx context.Context, userID string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, userID)
	return nil
}

type fakeAssets struct {
	deleted []string
}

func (f *fakeAssets) Upload(ctx context.Context, objectPath string, r io.Reader, contentType string) (string, error) {
	return "", nil
}

func (f *fakeAssets) Delete(ctx context.Context, objectPath string) error {
	f.deleted = append(f.deleted, objectPath)
	return errors.New("asset store unavailable")
}

type countingInvalidator struct{ calls int }

func (c *countingInvalidator) Invalidate(ctx context.Context) { c.calls++ }

func TestChangePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		confirm  string
		wantErr  bool
	}{
		{"mismatch", "secret1", "secret2", true},
		{"too short", "abc", "abc", true},
		{"valid", "secret1", "secret1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := &fakeIdentity{}
			svc := &DefaultAccountService{Identity: id, Profiles: &fakeProfiles{}}

			err := svc.ChangePassword(context.Background(), "u1", tt.password, tt.confirm)
			if tt.wantErr {
				if !utils.IsKind(err, utils.KindValidation) {
					t.Fatalf("expected validation error, got %v", err)
				}
				if len(id.passwords) != 0 {
					t.Errorf("password must not change on validation failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id.passwords["u1"] != tt.password {
				t.Errorf("password not updated")
			}
		})
	}
}

func TestDeleteAccountRequiresConfirmation(t *testing.T) {
	id := &fakeIdentity{}
	profiles := &fakeProfiles{}
	svc := &DefaultAccountService{Identity: id, Profiles: profiles}

	for _, confirm := range []string{"", "delete", "DEL"} {
		if err := svc.DeleteAccount(context.Background(), "u1", confirm); !utils.IsKind(err, utils.KindValidation) {
			t.Errorf("confirmation %q: expected validation error, got %v", confirm, err)
		}
	}
	if len(profiles.deleted) != 0 || len(id.deleted) != 0 {
		t.Errorf("nothing should be deleted without confirmation")
	}
}

func TestDeleteAccountRemovesDataThenIdentity(t *testing.T) {
	id := &fakeIdentity{}
	profiles := &fakeProfiles{}
	assets := &fakeAssets{}
	svc := &DefaultAccountService{Identity: id, Profiles: profiles, Assets: assets}

	if err := svc.DeleteAccount(context.Background(), "u1", DeleteConfirmation); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profiles.deleted) != 1 || len(id.deleted) != 1 {
		t.Errorf("expected data and identity deleted, got %v / %v", profiles.deleted, id.deleted)
	}
	if len(assets.deleted) != 1 || assets.deleted[0] != "profileImages/u1" {
		t.Errorf("expected profile image removal attempt, got %v", assets.deleted)
	}
}

func TestDeleteAccountKeepsIdentityWhenDataDeletionFails(t *testing.T) {
	id := &fakeIdentity{}
	svc := &DefaultAccountService{Identity: id, Profiles: &fakeProfiles{err: errors.New("store down")}}

	err := svc.DeleteAccount(context.Background(), "u1", DeleteConfirmation)
	if !utils.IsKind(err, utils.KindRemote) {
		t.Fatalf("expected remote error, got %v", err)
	}
	if len(id.deleted) != 0 {
		t.Errorf("identity must survive a failed data deletion")
	}
}

func TestDeleteAccountDropsProviderSnapshot(t *testing.T) {
	inv := &countingInvalidator{}
	svc := &DefaultAccountService{Identity: &fakeIdentity{}, Profiles: &fakeProfiles{}, Snapshot: inv}

	if err := svc.DeleteAccount(context.Background(), "u1", DeleteConfirmation); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.calls != 1 {
		t.Errorf("expected snapshot invalidation after deletion, got %d calls", inv.calls)
	}

	failed := &countingInvalidator{}
	svc = &DefaultAccountService{Identity: &fakeIdentity{}, Profiles: &fakeProfiles{err: errors.New("store down")}, Snapshot: failed}
	_ = svc.DeleteAccount(context.Background(), "u1", DeleteConfirmation)
	if failed.calls != 0 {
		t.Errorf("snapshot should be kept when nothing was deleted")
	}
}
