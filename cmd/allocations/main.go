package main

import (
	"aula/internal/allocations/events"
	"aula/internal/allocations/handler"
	"aula/internal/allocations/repository"
	"aula/internal/allocations/service"
	"aula/internal/allocations/validator"
	"aula/pkg/app"
	"aula/pkg/config"
	"aula/pkg/kafka"
	kafkaconfig "aula/pkg/kafka/config"
)

const ServiceName = "allocations"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Allocations service")
	allocationService := initServices(cfg)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewAllocationHandler(allocationService, cfg.Log),
		handler.NewHealthHandler(cfg.Client.Mongo, cfg.Log),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config) service.AllocationService {
	resolveValidator := validator.NewResolveValidator(cfg.Log)
	allocationRepo := repository.NewMongoAllocationRepository(cfg)
	roomRepo := repository.NewMongoRoomRepository(cfg)
	decisionRepo := repository.NewMongoDecisionLogRepository(cfg)

	allocationService := service.NewAllocationService(
		allocationRepo,
		roomRepo,
		decisionRepo,
		resolveValidator,
		initPublisher(cfg),
		cfg,
	)

	cfg.Log.Info("Allocation service initialized", "database", cfg.MongoDatabaseName)
	return allocationService
}

// initPublisher wires the resolution event producer. A broken or absent
// broker config degrades to nil: resolutions still commit, notifications
// are skipped.
func initPublisher(cfg *config.Config) events.Publisher {
	kafkaCfg, err := kafkaconfig.Load()
	if err != nil {
		cfg.Log.Warn("Kafka disabled, resolution events will not be published", "error", err)
		return nil
	}

	producer, err := kafka.NewProducer(kafkaCfg, events.TopicAllocationResolved, events.TopicAllocationResolvedDLQ, cfg.Log)
	if err != nil {
		cfg.Log.Warn("Kafka producer init failed, resolution events will not be published", "error", err)
		return nil
	}

	return events.NewKafkaPublisher(producer, ServiceName)
}
