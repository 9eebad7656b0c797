package adapters

import (
	"context"
	"errors"
	"fmt"

	"rma-reconcile/internal/features/rma/domain"
	"rma-reconcile/internal/features/rma/ports"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const rmaCollection = "rmas"

// MongoRmaRepository implements ports.RmaStore against the RMA collection
// owned by the upstream CRUD system. Strictly read-only: the reconciliation
// engine never writes through this adapter.
type MongoRmaRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoRmaRepository connects to Mongo and binds the rmas collection.
func NewMongoRmaRepository(ctx context.Context, uri, database string) (*MongoRmaRepository, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	return &MongoRmaRepository{
		client:     client,
		collection: client.Database(database).Collection(rmaCollection),
	}, nil
}

// FindAll returns the full RMA corpus in natural (storage) order.
func (r *MongoRmaRepository) FindAll(ctx context.Context) ([]domain.RmaRecord, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to query rma collection: %w", err)
	}
	defer cursor.Close(ctx)

	var records []domain.RmaRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode rma records: %w", err)
	}

	return records, nil
}

// FindByID returns one record by its hex object id. A syntactically invalid
// id cannot match any stored document, so it reports not-found rather than a
// distinct error.
func (r *MongoRmaRepository) FindByID(ctx context.Context, id string) (*domain.RmaRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ports.ErrRmaNotFound, id)
	}

	var record domain.RmaRecord
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: %s", ports.ErrRmaNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rma %s: %w", id, err)
	}

	return &record, nil
}

// Ping verifies the Mongo connection for health checks.
func (r *MongoRmaRepository) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping failed: %w", err)
	}
	return nil
}

// Close disconnects the underlying client.
func (r *MongoRmaRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
