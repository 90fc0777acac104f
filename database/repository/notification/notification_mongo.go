package notificationRepo

import (
	"context"
	"fmt"
	"time"

	"helperhub/database"
	"helperhub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoNotificationRepo implements NotificationRepository using MongoDB.
type MongoNotificationRepo struct {
	coll *mongo.Collection
}

func NewMongoNotificationRepo() NotificationRepository {
	return NewMongoNotificationRepoWithDB(database.MongoDatabase())
}

func NewMongoNotificationRepoWithDB(mdb *mongo.Database) NotificationRepository {
	repo := &MongoNotificationRepo{coll: mdb.Collection("notifications")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoNotificationRepo) List(ctx context.Context, userID string) ([]models.Notification, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications of %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var out []models.Notification
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return out, nil
}

func (r *MongoNotificationRepo) Append(ctx context.Context, userID string, n *models.Notification) (string, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	n.ID = uuid.New().String()
	n.UserID = userID
	if _, err := r.coll.InsertOne(ctx, n); err != nil {
		return "", fmt.Errorf("failed to append notification for %s: %w", userID, err)
	}
	return n.ID, nil
}

func (r *MongoNotificationRepo) MarkRead(ctx context.Context, userID, notificationID string) error {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	filter := bson.M{"id": notificationID, "userId": userID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"unread": false}})
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("notification with id %s not found", notificationID)
	}
	return nil
}

func (r *MongoNotificationRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
