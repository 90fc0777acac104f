package profileRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"helperhub/database"
	"helperhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/multierr"
)

// MongoProfileRepo implements ProfileRepository using MongoDB.
type MongoProfileRepo struct {
	profiles *mongo.Collection
	signups  *mongo.Collection
	settings *mongo.Collection
}

// NewMongoProfileRepo creates a new instance of ProfileRepository using MongoDB.
func NewMongoProfileRepo() ProfileRepository {
	return NewMongoProfileRepoWithDB(database.MongoDatabase())
}

func NewMongoProfileRepoWithDB(mdb *mongo.Database) ProfileRepository {
	repo := &MongoProfileRepo{
		profiles: mdb.Collection("profiles"),
		signups:  mdb.Collection("signup_records"),
		settings: mdb.Collection("settings"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoProfileRepo) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	var profile models.UserProfile
	err := r.profiles.FindOne(ctx, bson.M{"id": userID}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile with id %s: %w", userID, err)
	}
	return &profile, nil
}

func (r *MongoProfileRepo) MergeProfile(ctx context.Context, userID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	update := bson.M{"$set": bson.M(fields), "$setOnInsert": bson.M{"id": userID}}
	_, err := r.profiles.UpdateOne(ctx, bson.M{"id": userID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to update profile with id %s: %w", userID, err)
	}
	return nil
}

func (r *MongoProfileRepo) GetSignupRecord(ctx context.Context, userType models.UserType, userID string) (*models.SignupRecord, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	var record models.SignupRecord
	err := r.signups.FindOne(ctx, bson.M{"id": userID, "userType": userType}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch signup record %s/%s: %w", userType, userID, err)
	}
	return &record, nil
}

func (r *MongoProfileRepo) SaveSignupRecord(ctx context.Context, record *models.SignupRecord) error {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	filter := bson.M{"id": record.UserID, "userType": record.UserType}
	_, err := r.signups.ReplaceOne(ctx, filter, record, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save signup record %s: %w", record.UserID, err)
	}
	return nil
}

func (r *MongoProfileRepo) ListProfiles(ctx context.Context) ([]models.UserProfile, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	cursor, err := r.profiles.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []models.UserProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode profiles: %w", err)
	}
	return profiles, nil
}

// DeleteUserData removes every document owned by userID. All deletes are
// attempted; failures are combined.
func (r *MongoProfileRepo) DeleteUserData(ctx context.Context, userID string) error {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	var errs error
	for _, coll := range []*mongo.Collection{r.profiles, r.settings, r.signups} {
		if _, err := coll.DeleteMany(ctx, bson.M{"id": userID}); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", coll.Name(), err))
		}
	}
	if errs != nil {
		return fmt.Errorf("failed to delete data of %s: %w", userID, errs)
	}
	return nil
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoProfileRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := r.profiles.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userType", Value: 1}, {Key: "selectedCategories", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create profile indexes: %w", err)
	}
	_, err := r.signups.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}, {Key: "userType", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create signup indexes: %w", err)
	}
	return nil
}
