package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	allocerrors "aula/internal/allocations/errors"
	"aula/internal/allocations/events"
	"aula/internal/allocations/validator"
	"aula/pkg/config"
	mongotx "aula/pkg/db/mongo"
	apperrors "aula/pkg/errors"
	"aula/pkg/logger"
	"aula/pkg/model"

	"go.mongodb.org/mongo-driver/mongo"
)

type stubAllocationRepo struct {
	calls []string

	findByIDFn        func(id string) (*model.Allocation, error)
	findAllFn         func(limit int) ([]*model.Allocation, error)
	findByDateFn      func(date string) ([]*model.Allocation, error)
	applyResolutionFn func(id string, resolution *model.AllocationResolution) error
}

func (s *stubAllocationRepo) FindByID(_ context.Context, id string) (*model.Allocation, error) {
	s.calls = append(s.calls, "FindByID")
	return s.findByIDFn(id)
}

func (s *stubAllocationRepo) FindAll(_ context.Context, limit int) ([]*model.Allocation, error) {
	s.calls = append(s.calls, "FindAll")
	return s.findAllFn(limit)
}

func (s *stubAllocationRepo) FindByDate(_ context.Context, date string) ([]*model.Allocation, error) {
	s.calls = append(s.calls, "FindByDate")
	return s.findByDateFn(date)
}

func (s *stubAllocationRepo) ApplyResolution(_ context.Context, id string, resolution *model.AllocationResolution) error {
	s.calls = append(s.calls, "ApplyResolution")
	return s.applyResolutionFn(id, resolution)
}

func (s *stubAllocationRepo) ExecuteTransaction(_ context.Context, fn mongotx.TransactionFunc) error {
	s.calls = append(s.calls, "BeginTransaction")
	var sessCtx mongo.SessionContext
	return fn(sessCtx)
}

type stubRoomRepo struct {
	rooms []*model.Room
	err   error
}

func (s *stubRoomRepo) FindAvailable(_ context.Context) ([]*model.Room, error) {
	return s.rooms, s.err
}

type stubDecisionRepo struct {
	appended []*model.DecisionLog
	findErr  error
	logs     []*model.DecisionLog
}

func (s *stubDecisionRepo) Append(_ context.Context, entry *model.DecisionLog) error {
	s.appended = append(s.appended, entry)
	return nil
}

func (s *stubDecisionRepo) FindAll(_ context.Context, limit int) ([]*model.DecisionLog, error) {
	return s.logs, s.findErr
}

type stubPublisher struct {
	events []*events.AllocationResolved
	err    error
}

func (s *stubPublisher) PublishResolved(_ context.Context, event *events.AllocationResolved, _ string) error {
	s.events = append(s.events, event)
	return s.err
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{Level: "error", Format: "text", Output: io.Discard}),
	}
}

func newService(alloc *stubAllocationRepo, rooms *stubRoomRepo, decisions *stubDecisionRepo, pub *stubPublisher) *allocationService {
	cfg := testConfig()
	v := validator.NewResolveValidator(cfg.Log)
	svc := NewAllocationService(alloc, rooms, decisions, v, pub, cfg).(*allocationService)
	svc.now = func() time.Time { return time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC) }
	return svc
}

func resolveRequest() *model.ResolveConflictRequest {
	return &model.ResolveConflictRequest{
		AllocationID:    "alloc-001",
		ConflictDetails: "LT1 double booked",
		Date:            "2026-09-01",
		StartTime:       "10:00 AM",
		EndTime:         "12:00 PM",
	}
}

func TestResolveConflict_Diverted(t *testing.T) {
	alloc := &stubAllocationRepo{
		findByIDFn: func(id string) (*model.Allocation, error) {
			return &model.Allocation{
				ID:         id,
				CourseCode: "CSC301",
				LecturerID: "lect-9",
				Students:   []string{"stu-1", "stu-2"},
				Room:       "LT1",
				Conflict:   true,
				Status:     model.StatusPending,
			}, nil
		},
		findByDateFn: func(string) ([]*model.Allocation, error) {
			return []*model.Allocation{
				{Room: "LT1", Date: "2026-09-01", StartTime: "10:00 AM", EndTime: "12:00 PM"},
			}, nil
		},
		applyResolutionFn: func(string, *model.AllocationResolution) error { return nil },
	}
	rooms := &stubRoomRepo{rooms: []*model.Room{{Name: "LT1"}, {Name: "LT2"}}}
	decisions := &stubDecisionRepo{}
	pub := &stubPublisher{}

	svc := newService(alloc, rooms, decisions, pub)

	outcome, err := svc.ResolveConflict(context.Background(), resolveRequest())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if outcome.ResolvedVenue != "LT2" {
		t.Errorf("expected venue LT2, got %s", outcome.ResolvedVenue)
	}
	if outcome.Status != model.StatusDiverted {
		t.Errorf("expected status diverted, got %s", outcome.Status)
	}

	wantCalls := []string{"FindByDate", "BeginTransaction", "FindByID", "ApplyResolution"}
	if len(alloc.calls) != len(wantCalls) {
		t.Fatalf("expected calls %v, got %v", wantCalls, alloc.calls)
	}
	for i, call := range wantCalls {
		if alloc.calls[i] != call {
			t.Fatalf("expected calls %v, got %v", wantCalls, alloc.calls)
		}
	}

	if len(decisions.appended) != 1 {
		t.Fatalf("expected 1 decision log entry, got %d", len(decisions.appended))
	}
	entry := decisions.appended[0]
	if entry.AllocationID != "alloc-001" {
		t.Errorf("expected allocation_id alloc-001, got %s", entry.AllocationID)
	}
	if entry.ResolvedBy != model.ResolverAutomatic {
		t.Errorf("expected resolved_by %s, got %s", model.ResolverAutomatic, entry.ResolvedBy)
	}
	if entry.SuggestedVenue != "LT2" {
		t.Errorf("expected suggested_venue LT2, got %s", entry.SuggestedVenue)
	}

	if len(pub.events) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(pub.events))
	}
	event := pub.events[0]
	if event.PreviousRoom != "LT1" || event.ResolvedVenue != "LT2" {
		t.Errorf("unexpected event rooms: previous=%s resolved=%s", event.PreviousRoom, event.ResolvedVenue)
	}
	if event.LecturerID != "lect-9" || len(event.Students) != 2 {
		t.Errorf("event missing stakeholder info: %+v", event)
	}
}

func TestResolveConflict_KeepsOwnRoomAsResolved(t *testing.T) {
	alloc := &stubAllocationRepo{
		findByIDFn: func(id string) (*model.Allocation, error) {
			return &model.Allocation{ID: id, Room: "LT1", Status: model.StatusPending}, nil
		},
		findByDateFn: func(string) ([]*model.Allocation, error) { return nil, nil },
		applyResolutionFn: func(_ string, resolution *model.AllocationResolution) error {
			if resolution.Conflict {
				t.Error("expected conflict flag cleared")
			}
			return nil
		},
	}
	rooms := &stubRoomRepo{rooms: []*model.Room{{Name: "LT1"}, {Name: "LT2"}}}

	svc := newService(alloc, rooms, &stubDecisionRepo{}, &stubPublisher{})

	outcome, err := svc.ResolveConflict(context.Background(), resolveRequest())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if outcome.ResolvedVenue != "LT1" {
		t.Errorf("expected first-fit venue LT1, got %s", outcome.ResolvedVenue)
	}
	if outcome.Status != model.StatusResolved {
		t.Errorf("expected status resolved when venue matches own room, got %s", outcome.Status)
	}
}

func TestResolveConflict_NotFound(t *testing.T) {
	alloc := &stubAllocationRepo{
		findByIDFn: func(string) (*model.Allocation, error) {
			return nil, allocerrors.ErrNotFound
		},
		findByDateFn: func(string) ([]*model.Allocation, error) { return nil, nil },
		applyResolutionFn: func(string, *model.AllocationResolution) error {
			t.Error("no update should happen for a missing allocation")
			return nil
		},
	}
	rooms := &stubRoomRepo{rooms: []*model.Room{{Name: "LT1"}}}
	decisions := &stubDecisionRepo{}
	pub := &stubPublisher{}

	svc := newService(alloc, rooms, decisions, pub)

	_, err := svc.ResolveConflict(context.Background(), resolveRequest())
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}

	if len(decisions.appended) != 0 {
		t.Error("no decision log should be written for a missing allocation")
	}
	if len(pub.events) != 0 {
		t.Error("no event should be published for a missing allocation")
	}
}

func TestResolveConflict_NoRoomsConfigured(t *testing.T) {
	alloc := &stubAllocationRepo{
		findByDateFn: func(string) ([]*model.Allocation, error) {
			t.Error("bookings should not be fetched when no rooms are configured")
			return nil, nil
		},
	}
	svc := newService(alloc, &stubRoomRepo{}, &stubDecisionRepo{}, &stubPublisher{})

	_, err := svc.ResolveConflict(context.Background(), resolveRequest())
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeNoRoomAvailable {
		t.Fatalf("expected NO_ROOM_AVAILABLE, got %v", err)
	}
	if len(alloc.calls) != 0 {
		t.Errorf("expected no allocation repo calls, got %v", alloc.calls)
	}
}

func TestResolveConflict_NoRoomFree(t *testing.T) {
	alloc := &stubAllocationRepo{
		findByDateFn: func(string) ([]*model.Allocation, error) {
			return []*model.Allocation{
				{Room: "LT1", Date: "2026-09-01", StartTime: "9:00 AM", EndTime: "1:00 PM"},
			}, nil
		},
	}
	rooms := &stubRoomRepo{rooms: []*model.Room{{Name: "LT1"}}}
	decisions := &stubDecisionRepo{}

	svc := newService(alloc, rooms, decisions, &stubPublisher{})

	_, err := svc.ResolveConflict(context.Background(), resolveRequest())
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeNoRoomAvailable {
		t.Fatalf("expected NO_ROOM_AVAILABLE, got %v", err)
	}

	for _, call := range alloc.calls {
		if call == "ApplyResolution" || call == "BeginTransaction" {
			t.Errorf("no writes expected when every room is occupied, got calls %v", alloc.calls)
		}
	}
	if len(decisions.appended) != 0 {
		t.Error("no decision log expected when every room is occupied")
	}
}

func TestResolveConflict_ValidationFailure(t *testing.T) {
	alloc := &stubAllocationRepo{}
	svc := newService(alloc, &stubRoomRepo{rooms: []*model.Room{{Name: "LT1"}}}, &stubDecisionRepo{}, &stubPublisher{})

	req := resolveRequest()
	req.EndTime = "9:00 AM" // before start

	_, err := svc.ResolveConflict(context.Background(), req)
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
	if len(alloc.calls) != 0 {
		t.Errorf("expected no repo calls on validation failure, got %v", alloc.calls)
	}
}

func TestResolveConflict_PublishFailureDoesNotFailRequest(t *testing.T) {
	alloc := &stubAllocationRepo{
		findByIDFn: func(id string) (*model.Allocation, error) {
			return &model.Allocation{ID: id, Room: "LT1"}, nil
		},
		findByDateFn:      func(string) ([]*model.Allocation, error) { return nil, nil },
		applyResolutionFn: func(string, *model.AllocationResolution) error { return nil },
	}
	rooms := &stubRoomRepo{rooms: []*model.Room{{Name: "LT1"}}}
	pub := &stubPublisher{err: errors.New("broker unreachable")}

	svc := newService(alloc, rooms, &stubDecisionRepo{}, pub)

	outcome, err := svc.ResolveConflict(context.Background(), resolveRequest())
	if err != nil {
		t.Fatalf("expected resolution to succeed despite publish failure, got %v", err)
	}
	if outcome.ResolvedVenue != "LT1" {
		t.Errorf("expected venue LT1, got %s", outcome.ResolvedVenue)
	}
}

func TestGetDecisionLogs_StorageError(t *testing.T) {
	decisions := &stubDecisionRepo{findErr: errors.New("cursor closed")}
	svc := newService(&stubAllocationRepo{}, &stubRoomRepo{}, decisions, &stubPublisher{})

	_, err := svc.GetDecisionLogs(context.Background(), 50)
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeStorage {
		t.Fatalf("expected STORAGE_ERROR, got %v", err)
	}
}
