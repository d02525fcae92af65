package serviceRepo

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

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo creates a new ServiceRepository backed by MongoDB.
func NewMongoServiceRepo() ServiceRepository {
	coll := database.MongoClient.Database("cleansweep").Collection("services")
	repo := &MongoServiceRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("warning: failed to ensure service indexes: %v\n", err)
	}
	return repo
}

func (r *MongoServiceRepo) Create(ctx context.Context, service *models.Service) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctxWithTimeout, service); err != nil {
		return fmt.Errorf("error creating service: %w", err)
	}
	return nil
}

func (r *MongoServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var service models.Service
	if err := r.coll.FindOne(ctxWithTimeout, bson.M{"id": id}).Decode(&service); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch service %s: %w", id, err)
	}
	return &service, nil
}

func (r *MongoServiceRepo) GetAll(ctx context.Context) ([]models.Service, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctxWithTimeout, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var services []models.Service
	for cursor.Next(ctxWithTimeout) {
		var s models.Service
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode service: %w", err)
		}
		services = append(services, s)
	}
	return services, nil
}

func (r *MongoServiceRepo) Update(ctx context.Context, service *models.Service) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	service.UpdatedAt = time.Now()
	res, err := r.coll.UpdateOne(ctxWithTimeout, bson.M{"id": service.ID}, bson.M{"$set": service})
	if err != nil {
		return fmt.Errorf("error updating service %s: %w", service.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoServiceRepo) UpdateLayout(ctx context.Context, id string, layout []models.Block) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"layout_config": layout, "updated_at": time.Now()}}
	res, err := r.coll.UpdateOne(ctxWithTimeout, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating layout for service %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoServiceRepo) Delete(ctx context.Context, id string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctxWithTimeout, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting service %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoServiceRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "active", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
