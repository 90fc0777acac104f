package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"helperhub/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// MongoClient is the global MongoDB client instance (STORE_DRIVER=mongo).
	MongoClient *mongo.Client
	// RTDB is the Firebase Realtime Database client (STORE_DRIVER=firebase).
	RTDB *db.Client
)

// InitDB opens the document store selected by configuration.
func InitDB(ctx context.Context, app *firebase.App) error {
	if config.UsesMongo() {
		return initMongo(ctx)
	}
	client, err := app.Database(ctx)
	if err != nil {
		return fmt.Errorf("failed to open realtime database: %w", err)
	}
	RTDB = client
	log.Println("Connected to Firebase Realtime Database")
	return nil
}

func initMongo(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	MongoClient = client
	log.Println("Connected to MongoDB successfully!")
	return nil
}

// MongoDatabase returns the configured database handle.
func MongoDatabase() *mongo.Database {
	return MongoClient.Database(config.AppConfig.MongoDBName)
}

// Ping probes the active store; used by the health monitor.
func Ping(ctx context.Context) error {
	if config.UsesMongo() {
		return MongoClient.Ping(ctx, nil)
	}
	var probe any
	return RTDB.NewRef("requests").OrderByKey().LimitToFirst(1).Get(ctx, &probe)
}

// Close releases the mongo connection if one was opened.
func Close(ctx context.Context) {
	if MongoClient != nil {
		_ = MongoClient.Disconnect(ctx)
	}
}

// WithTimeout bounds a remote call by REMOTE_CALL_TIMEOUT.
func WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, config.RemoteTimeout())
}
