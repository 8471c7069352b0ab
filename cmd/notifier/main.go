package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"aula/internal/allocations/events"
	"aula/internal/notifier/repository"
	"aula/internal/notifier/worker"
	"aula/pkg/config"
	"aula/pkg/kafka"
	kafkaconfig "aula/pkg/kafka/config"
)

const (
	ServiceName   = "notifier"
	ConsumerGroup = "aula-notifier"
)

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Notifier worker")

	kafkaCfg, err := kafkaconfig.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}

	notificationWorker := worker.NewNotificationWorker(
		repository.NewMongoNotificationRepository(cfg),
		repository.NewMongoUserRepository(cfg),
		cfg.Log,
	)

	consumer, err := kafka.NewConsumer(
		kafkaCfg,
		events.TopicAllocationResolved,
		ConsumerGroup,
		events.TopicAllocationResolvedDLQ,
		notificationWorker.Handle,
		cfg.Log,
	)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka consumer", "error", err)
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		cfg.Log.Fatal("Consumer stopped with error", "error", err)
	}

	cfg.Log.Info("Notifier worker stopped")
}
