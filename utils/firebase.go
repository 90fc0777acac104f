// utils/firebase.go
package utils

import (
	"context"
	"fmt"

	"helperhub/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var (
	FirebaseApp *firebase.App
	AuthClient  *auth.Client
	FCMClient   *messaging.Client
)

// FirebaseInit initializes the Firebase app together with the auth and
// messaging clients. The realtime database client is opened by database.InitDB.
func FirebaseInit(ctx context.Context) error {
	conf := &firebase.Config{
		DatabaseURL:   config.AppConfig.FirebaseDatabaseURL,
		StorageBucket: config.AppConfig.FirebaseStorageBucket,
	}
	opt := option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile)

	app, err := firebase.NewApp(ctx, conf, opt)
	if err != nil {
		return fmt.Errorf("firebase: error initializing app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return fmt.Errorf("firebase: error getting Auth client: %w", err)
	}

	fcm, err := app.Messaging(ctx)
	if err != nil {
		return fmt.Errorf("firebase: error getting Messaging client: %w", err)
	}

	FirebaseApp = app
	AuthClient = authClient
	FCMClient = fcm
	return nil
}
