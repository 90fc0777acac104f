package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"

	"helperhub/config"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// FirebaseAssetStore implements AssetStore on the project's Firebase Storage
// bucket. Objects get a download token so the returned URL works without
// signing, like URLs handed out by the Firebase web SDK.
type FirebaseAssetStore struct {
	client     *storage.Client
	bucketName string
}

// NewFirebaseAssetStore creates a new FirebaseAssetStore.
func NewFirebaseAssetStore(ctx context.Context, serviceAccountJSONPath, bucketName string) (*FirebaseAssetStore, error) {
	if bucketName == "" {
		return nil, fmt.Errorf("firebase storage bucket not configured")
	}
	client, err := storage.NewClient(ctx, option.WithCredentialsFile(serviceAccountJSONPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &FirebaseAssetStore{client: client, bucketName: bucketName}, nil
}

func (s *FirebaseAssetStore) Upload(ctx context.Context, objectPath string, r io.Reader, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, config.RemoteTimeout())
	defer cancel()

	token := uuid.New().String()
	w := s.client.Bucket(s.bucketName).Object(objectPath).NewWriter(ctx)
	w.ObjectAttrs.ContentType = contentType
	w.ObjectAttrs.Metadata = map[string]string{"firebaseStorageDownloadTokens": token}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to copy asset to storage: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}
	return downloadURL(s.bucketName, objectPath, token), nil
}

func (s *FirebaseAssetStore) Delete(ctx context.Context, objectPath string) error {
	ctx, cancel := context.WithTimeout(ctx, config.RemoteTimeout())
	defer cancel()

	err := s.client.Bucket(s.bucketName).Object(objectPath).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	return nil
}

func downloadURL(bucket, objectPath, token string) string {
	return fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media&token=%s",
		bucket, url.QueryEscape(objectPath), token)
}
