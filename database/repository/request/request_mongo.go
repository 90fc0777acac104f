package requestRepo

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

// MongoRequestRepo implements RequestRepository using MongoDB.
type MongoRequestRepo struct {
	coll *mongo.Collection
}

func NewMongoRequestRepo() RequestRepository {
	return NewMongoRequestRepoWithDB(database.MongoDatabase())
}

func NewMongoRequestRepoWithDB(mdb *mongo.Database) RequestRepository {
	repo := &MongoRequestRepo{coll: mdb.Collection("requests")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoRequestRepo) Create(ctx context.Context, req *models.ServiceRequest) (string, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, req); err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	return req.ID, nil
}

func (r *MongoRequestRepo) ExistsForPair(ctx context.Context, employerID, jobSeekerID string) (bool, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx,
		bson.M{"employerId": employerID, "jobSeekerId": jobSeekerID},
		options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check existing request: %w", err)
	}
	return n > 0, nil
}

func (r *MongoRequestRepo) find(ctx context.Context, filter bson.M) ([]models.ServiceRequest, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query requests: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.ServiceRequest
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode requests: %w", err)
	}
	return out, nil
}

func (r *MongoRequestRepo) ListByEmployer(ctx context.Context, employerID string) ([]models.ServiceRequest, error) {
	return r.find(ctx, bson.M{"employerId": employerID})
}

func (r *MongoRequestRepo) ListByJobSeeker(ctx context.Context, jobSeekerID string) ([]models.ServiceRequest, error) {
	return r.find(ctx, bson.M{"jobSeekerId": jobSeekerID})
}

// ensureIndexes creates the lookup indexes. The pair index is not unique:
// Create accepts a duplicate pair, as the realtime database does.
func (r *MongoRequestRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "employerId", Value: 1}, {Key: "jobSeekerId", Value: 1}}},
		{Keys: bson.D{{Key: "jobSeekerId", Value: 1}, {Key: "createdAt", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
