package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	allocerrors "aula/internal/allocations/errors"
	"aula/pkg/config"
	mongotx "aula/pkg/db/mongo"
	"aula/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	AllocationCollection = "Timetables"
)

type AllocationRepository interface {
	FindByID(ctx context.Context, id string) (*model.Allocation, error)
	FindAll(ctx context.Context, limit int) ([]*model.Allocation, error)
	FindByDate(ctx context.Context, date string) ([]*model.Allocation, error)
	ApplyResolution(ctx context.Context, id string, resolution *model.AllocationResolution) error
	ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error
}

type mongoAllocationRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
	txManager  mongotx.TransactionManager
}

func NewMongoAllocationRepository(cfg *config.Config) AllocationRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoAllocationRepository{
		cfg:        cfg,
		collection: db.Collection(AllocationCollection),
		txManager:  mongotx.NewTransactionManager(cfg.Client.Mongo),
	}
}

// withTimeout wraps the context with a timeout unless already inside a
// transaction. A SessionContext cannot be wrapped without breaking
// transaction semantics, so it is returned unchanged with a no-op cancel.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}

	deadline, hasDeadline := ctx.Deadline()
	if hasDeadline {
		if remaining := time.Until(deadline); remaining < timeout {
			return context.WithTimeout(ctx, remaining)
		}
	}

	return context.WithTimeout(ctx, timeout)
}

func (r *mongoAllocationRepository) FindByID(ctx context.Context, id string) (*model.Allocation, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var allocation model.Allocation
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&allocation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, allocerrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find allocation: %w", err)
	}

	return &allocation, nil
}

func (r *mongoAllocationRepository) FindAll(ctx context.Context, limit int) ([]*model.Allocation, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start_time", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find allocations: %w", err)
	}
	defer cursor.Close(ctx)

	var allocations []*model.Allocation
	if err = cursor.All(ctx, &allocations); err != nil {
		return nil, fmt.Errorf("failed to decode allocations: %w", err)
	}

	return allocations, nil
}

func (r *mongoAllocationRepository) FindByDate(ctx context.Context, date string) ([]*model.Allocation, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, fmt.Errorf("failed to find allocations for date %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var allocations []*model.Allocation
	if err = cursor.All(ctx, &allocations); err != nil {
		return nil, fmt.Errorf("failed to decode allocations: %w", err)
	}

	return allocations, nil
}

func (r *mongoAllocationRepository) ApplyResolution(ctx context.Context, id string, resolution *model.AllocationResolution) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	// Partial update: only resolution fields change, the rest of the
	// timetable document is left untouched.
	update := bson.M{
		"$set": bson.M{
			"resolved_venue": resolution.ResolvedVenue,
			"status":         resolution.Status,
			"conflict":       resolution.Conflict,
			"resolved_at":    resolution.ResolvedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update allocation: %w", err)
	}

	if result.MatchedCount == 0 {
		return allocerrors.ErrNotFound
	}

	return nil
}

func (r *mongoAllocationRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}
