package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	allocerrors "aula/internal/allocations/errors"
	"aula/internal/allocations/events"
	"aula/internal/allocations/repository"
	"aula/internal/allocations/validator"
	"aula/pkg/config"
	apperrors "aula/pkg/errors"
	"aula/pkg/middleware"
	"aula/pkg/model"
	"aula/pkg/sanitizer"

	"go.mongodb.org/mongo-driver/mongo"
)

type AllocationService interface {
	ResolveConflict(ctx context.Context, req *model.ResolveConflictRequest) (*model.ResolutionOutcome, error)
	GetAllocations(ctx context.Context, limit int) ([]*model.Allocation, error)
	GetDecisionLogs(ctx context.Context, limit int) ([]*model.DecisionLog, error)
}

type allocationService struct {
	allocations repository.AllocationRepository
	rooms       repository.RoomRepository
	decisions   repository.DecisionLogRepository
	validator   *validator.ResolveValidator
	publisher   events.Publisher
	cfg         *config.Config
	now         func() time.Time
}

func NewAllocationService(
	allocations repository.AllocationRepository,
	rooms repository.RoomRepository,
	decisions repository.DecisionLogRepository,
	validator *validator.ResolveValidator,
	publisher events.Publisher,
	cfg *config.Config,
) AllocationService {
	return &allocationService{
		allocations: allocations,
		rooms:       rooms,
		decisions:   decisions,
		validator:   validator,
		publisher:   publisher,
		cfg:         cfg,
		now:         time.Now,
	}
}

func (s *allocationService) ResolveConflict(ctx context.Context, req *model.ResolveConflictRequest) (*model.ResolutionOutcome, error) {
	s.sanitize(req)

	window, err := s.validator.Validate(req)
	if err != nil {
		s.cfg.Log.Warn("Resolve request validation failed", "allocation_id", req.AllocationID, "error", err)
		return nil, apperrors.Validation("Invalid resolve request", map[string]any{"error": err.Error()})
	}

	venue, err := s.findVenue(ctx, window)
	if err != nil {
		return nil, err
	}

	resolvedAt := s.now().UTC()
	var outcome *model.ResolutionOutcome
	var resolved *model.Allocation

	err = s.allocations.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		allocation, err := s.allocations.FindByID(sessCtx, req.AllocationID)
		if err != nil {
			if errors.Is(err, allocerrors.ErrNotFound) {
				return apperrors.NotFoundWithID("Allocation", req.AllocationID)
			}
			return apperrors.Storage("Failed to fetch allocation", err)
		}

		status := model.StatusResolved
		if allocation.Room != venue {
			status = model.StatusDiverted
		}

		resolution := &model.AllocationResolution{
			ResolvedVenue: venue,
			Status:        status,
			Conflict:      false,
			ResolvedAt:    resolvedAt,
		}
		if err := s.allocations.ApplyResolution(sessCtx, req.AllocationID, resolution); err != nil {
			if errors.Is(err, allocerrors.ErrNotFound) {
				return apperrors.NotFoundWithID("Allocation", req.AllocationID)
			}
			return apperrors.Storage("Failed to update allocation", err)
		}

		entry := &model.DecisionLog{
			AllocationID:    req.AllocationID,
			Description:     fmt.Sprintf("Conflict resolved: venue %s assigned for %s %s-%s", venue, req.Date, req.StartTime, req.EndTime),
			ConflictDetails: req.ConflictDetails,
			SuggestedVenue:  venue,
			ResolvedBy:      model.ResolverAutomatic,
			Status:          status,
			Timestamp:       resolvedAt,
		}
		if err := s.decisions.Append(sessCtx, entry); err != nil {
			return apperrors.Storage("Failed to append decision log", err)
		}

		resolved = allocation
		outcome = &model.ResolutionOutcome{
			ResolvedVenue: venue,
			Status:        status,
			ResolvedAt:    resolvedAt,
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to resolve conflict", "allocation_id", req.AllocationID, "error", err)
		return nil, err
	}

	s.cfg.Log.Info("Conflict resolved successfully",
		"allocation_id", req.AllocationID,
		"resolved_venue", outcome.ResolvedVenue,
		"status", outcome.Status,
	)

	s.publishResolved(ctx, req, resolved, outcome)

	return outcome, nil
}

// findVenue runs the availability resolution: every room tagged available
// minus every room with an overlapping booking that day, first fit wins.
func (s *allocationService) findVenue(ctx context.Context, window *model.TimeWindow) (string, error) {
	rooms, err := s.rooms.FindAvailable(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list available rooms", "error", err)
		return "", apperrors.Storage("Failed to retrieve lecture rooms", err)
	}
	if len(rooms) == 0 {
		return "", apperrors.NoRoomAvailable(allocerrors.ErrNoRoomsConfigured.Error())
	}

	bookings, err := s.allocations.FindByDate(ctx, window.Date)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "date", window.Date, "error", err)
		return "", apperrors.Storage("Failed to retrieve timetable entries", err)
	}

	venue, ok := SelectVenue(rooms, bookings, window)
	if !ok {
		return "", apperrors.NoRoomAvailable(allocerrors.ErrNoRoomFree.Error())
	}

	return venue, nil
}

// publishResolved emits the post-commit event for notification fan-out.
// Delivery failures are logged and swallowed: the allocation update has
// already committed and must not be rolled back for a messaging outage.
func (s *allocationService) publishResolved(ctx context.Context, req *model.ResolveConflictRequest, allocation *model.Allocation, outcome *model.ResolutionOutcome) {
	if s.publisher == nil {
		return
	}

	event := &events.AllocationResolved{
		AllocationID:  req.AllocationID,
		CourseCode:    allocation.CourseCode,
		LecturerID:    allocation.LecturerID,
		Students:      allocation.Students,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		PreviousRoom:  allocation.Room,
		ResolvedVenue: outcome.ResolvedVenue,
		Status:        outcome.Status,
		ResolvedAt:    outcome.ResolvedAt,
	}

	correlationID := middleware.RequestIDFromContext(ctx)
	if err := s.publisher.PublishResolved(ctx, event, correlationID); err != nil {
		s.cfg.Log.Error("Failed to publish resolution event",
			"allocation_id", req.AllocationID,
			"error", err,
		)
	}
}

func (s *allocationService) GetAllocations(ctx context.Context, limit int) ([]*model.Allocation, error) {
	allocations, err := s.allocations.FindAll(ctx, limit)
	if err != nil {
		s.cfg.Log.Error("Failed to list allocations", "error", err)
		return nil, apperrors.Storage("Failed to retrieve allocations", err)
	}
	return allocations, nil
}

func (s *allocationService) GetDecisionLogs(ctx context.Context, limit int) ([]*model.DecisionLog, error) {
	logs, err := s.decisions.FindAll(ctx, limit)
	if err != nil {
		s.cfg.Log.Error("Failed to list decision logs", "error", err)
		return nil, apperrors.Storage("Failed to retrieve decision logs", err)
	}
	return logs, nil
}

func (s *allocationService) sanitize(req *model.ResolveConflictRequest) {
	req.AllocationID = sanitizer.SanitizeFreeText(req.AllocationID)
	req.ConflictDetails = sanitizer.SanitizeFreeText(req.ConflictDetails)
	req.Date = sanitizer.SanitizeFreeText(req.Date)
	req.StartTime = sanitizer.SanitizeFreeText(req.StartTime)
	req.EndTime = sanitizer.SanitizeFreeText(req.EndTime)
}
