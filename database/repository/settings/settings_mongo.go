package settingsRepo

import (
	"context"
	"errors"
	"fmt"

	"helperhub/database"
	"helperhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSettingsRepo keeps one document per user in the settings collection,
// holding both the preferences and the push token.
type MongoSettingsRepo struct {
	coll *mongo.Collection
}

func NewMongoSettingsRepo() SettingsRepository {
	return NewMongoSettingsRepoWithDB(database.MongoDatabase())
}

func NewMongoSettingsRepoWithDB(mdb *mongo.Database) SettingsRepository {
	return &MongoSettingsRepo{coll: mdb.Collection("settings")}
}

func (r *MongoSettingsRepo) GetSettings(ctx context.Context, userID string) (*models.UserSettings, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	settings := models.DefaultSettings()
	err := r.coll.FindOne(ctx, bson.M{"id": userID}).Decode(&settings)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to read settings of %s: %w", userID, err)
	}
	return &settings, nil
}

func (r *MongoSettingsRepo) upsert(ctx context.Context, userID string, set bson.M) error {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	update := bson.M{"$set": set, "$setOnInsert": bson.M{"id": userID}}
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": userID}, update, options.Update().SetUpsert(true))
	return err
}

func (r *MongoSettingsRepo) MergeSettings(ctx context.Context, userID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	if err := r.upsert(ctx, userID, bson.M(fields)); err != nil {
		return fmt.Errorf("failed to update settings of %s: %w", userID, err)
	}
	return nil
}

func (r *MongoSettingsRepo) GetPushToken(ctx context.Context, userID string) (string, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	var doc struct {
		PushToken string `bson:"pushToken"`
	}
	err := r.coll.FindOne(ctx, bson.M{"id": userID}, options.FindOne().SetProjection(bson.M{"pushToken": 1})).Decode(&doc)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return "", fmt.Errorf("failed to read push token of %s: %w", userID, err)
	}
	return doc.PushToken, nil
}

func (r *MongoSettingsRepo) SetPushToken(ctx context.Context, userID, token string) error {
	if err := r.upsert(ctx, userID, bson.M{"pushToken": token}); err != nil {
		return fmt.Errorf("failed to save push token of %s: %w", userID, err)
	}
	return nil
}
