package cleanerRepo

import (
	"context"
	"fmt"
	"time"

	"cleansweep/database"
	"cleansweep/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCleanerRepo implements CleanerRepository using MongoDB.
type MongoCleanerRepo struct {
	coll *mongo.Collection
}

// NewMongoCleanerRepo creates a new CleanerRepository backed by MongoDB.
func NewMongoCleanerRepo() CleanerRepository {
	coll := database.MongoClient.Database("cleansweep").Collection("cleaners")
	repo := &MongoCleanerRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("warning: failed to ensure cleaner indexes: %v\n", err)
	}
	return repo
}

func (r *MongoCleanerRepo) Create(ctx context.Context, cleaner *models.Cleaner) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctxWithTimeout, cleaner); err != nil {
		return fmt.Errorf("error creating cleaner: %w", err)
	}
	return nil
}

func (r *MongoCleanerRepo) GetByID(ctx context.Context, id string) (*models.Cleaner, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var cleaner models.Cleaner
	if err := r.coll.FindOne(ctxWithTimeout, bson.M{"id": id}).Decode(&cleaner); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch cleaner %s: %w", id, err)
	}
	return &cleaner, nil
}

func (r *MongoCleanerRepo) GetAll(ctx context.Context) ([]models.Cleaner, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctxWithTimeout, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cleaners: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var cleaners []models.Cleaner
	for cursor.Next(ctxWithTimeout) {
		var c models.Cleaner
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode cleaner: %w", err)
		}
		cleaners = append(cleaners, c)
	}
	return cleaners, nil
}

func (r *MongoCleanerRepo) Update(ctx context.Context, cleaner *models.Cleaner) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cleaner.UpdatedAt = time.Now()
	res, err := r.coll.UpdateOne(ctxWithTimeout, bson.M{"id": cleaner.ID}, bson.M{"$set": cleaner})
	if err != nil {
		return fmt.Errorf("error updating cleaner %s: %w", cleaner.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoCleanerRepo) UpdateStatus(ctx context.Context, id string, status models.CleanerStatus) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	res, err := r.coll.UpdateOne(ctxWithTimeout, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating cleaner %s status: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoCleanerRepo) Delete(ctx context.Context, id string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctxWithTimeout, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting cleaner %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoCleanerRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
