package repository

import (
	"context"
	"fmt"

	"aula/pkg/config"
	"aula/pkg/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DecisionLogCollection = "Decision_logs"
)

type DecisionLogRepository interface {
	Append(ctx context.Context, entry *model.DecisionLog) error
	FindAll(ctx context.Context, limit int) ([]*model.DecisionLog, error)
}

type mongoDecisionLogRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoDecisionLogRepository(cfg *config.Config) DecisionLogRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoDecisionLogRepository{
		cfg:        cfg,
		collection: db.Collection(DecisionLogCollection),
	}
}

func (r *mongoDecisionLogRepository) Append(ctx context.Context, entry *model.DecisionLog) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	if _, err := r.collection.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to append decision log: %w", err)
	}

	return nil
}

func (r *mongoDecisionLogRepository) FindAll(ctx context.Context, limit int) ([]*model.DecisionLog, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find decision logs: %w", err)
	}
	defer cursor.Close(ctx)

	var logs []*model.DecisionLog
	if err = cursor.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("failed to decode decision logs: %w", err)
	}

	return logs, nil
}
