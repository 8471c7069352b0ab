package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apperrors "aula/pkg/errors"
	"aula/pkg/logger"
	"aula/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type mockAllocationService struct {
	resolveFunc         func(ctx context.Context, req *model.ResolveConflictRequest) (*model.ResolutionOutcome, error)
	getAllocationsFunc  func(ctx context.Context, limit int) ([]*model.Allocation, error)
	getDecisionLogsFunc func(ctx context.Context, limit int) ([]*model.DecisionLog, error)
}

func (m *mockAllocationService) ResolveConflict(ctx context.Context, req *model.ResolveConflictRequest) (*model.ResolutionOutcome, error) {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, req)
	}
	return &model.ResolutionOutcome{ResolvedVenue: "LT2", Status: model.StatusDiverted, ResolvedAt: time.Now()}, nil
}

func (m *mockAllocationService) GetAllocations(ctx context.Context, limit int) ([]*model.Allocation, error) {
	if m.getAllocationsFunc != nil {
		return m.getAllocationsFunc(ctx, limit)
	}
	return []*model.Allocation{}, nil
}

func (m *mockAllocationService) GetDecisionLogs(ctx context.Context, limit int) ([]*model.DecisionLog, error) {
	if m.getDecisionLogsFunc != nil {
		return m.getDecisionLogsFunc(ctx, limit)
	}
	return []*model.DecisionLog{}, nil
}

func testRouter(svc *mockAllocationService) *httprouter.Router {
	log := logger.New(logger.Config{Level: "error", Format: logger.TEXT, Output: io.Discard})
	router := httprouter.New()
	NewAllocationHandler(svc, log).RegisterRoutes(router)
	return router
}

func TestResolveConflict_Success(t *testing.T) {
	var received *model.ResolveConflictRequest
	svc := &mockAllocationService{
		resolveFunc: func(_ context.Context, req *model.ResolveConflictRequest) (*model.ResolutionOutcome, error) {
			received = req
			return &model.ResolutionOutcome{
				ResolvedVenue: "LT2",
				Status:        model.StatusDiverted,
				ResolvedAt:    time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC),
			}, nil
		},
	}
	router := testRouter(svc)

	body := `{"allocationId":"alloc-001","conflictDetails":"double booking","date":"2026-09-01","startTime":"10:00 AM","endTime":"12:00 PM"}`
	req := httptest.NewRequest(http.MethodPost, "/resolve-conflict", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if received == nil || received.AllocationID != "alloc-001" {
		t.Fatalf("service did not receive decoded request: %+v", received)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp["resolvedVenue"] != "LT2" {
		t.Errorf("expected resolvedVenue LT2, got %v", resp["resolvedVenue"])
	}
	if resp["status"] != model.StatusDiverted {
		t.Errorf("expected status diverted, got %v", resp["status"])
	}
}

func TestResolveConflict_MalformedBody(t *testing.T) {
	svc := &mockAllocationService{
		resolveFunc: func(context.Context, *model.ResolveConflictRequest) (*model.ResolutionOutcome, error) {
			t.Error("service should not be called for malformed JSON")
			return nil, nil
		},
	}
	router := testRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/resolve-conflict", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp["code"] != apperrors.CodeBadRequest {
		t.Errorf("expected code %s, got %v", apperrors.CodeBadRequest, resp["code"])
	}
}

func TestResolveConflict_ServiceErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "validation error",
			err:      apperrors.Validation("Invalid resolve request", nil),
			wantCode: http.StatusUnprocessableEntity,
			wantBody: apperrors.CodeValidation,
		},
		{
			name:     "not found",
			err:      apperrors.NotFoundWithID("Allocation", "alloc-404"),
			wantCode: http.StatusNotFound,
			wantBody: apperrors.CodeNotFound,
		},
		{
			name:     "no room available",
			err:      apperrors.NoRoomAvailable("no rooms available for the specified time"),
			wantCode: http.StatusConflict,
			wantBody: apperrors.CodeNoRoomAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockAllocationService{
				resolveFunc: func(context.Context, *model.ResolveConflictRequest) (*model.ResolutionOutcome, error) {
					return nil, tt.err
				},
			}
			router := testRouter(svc)

			req := httptest.NewRequest(http.MethodPost, "/resolve-conflict", strings.NewReader(`{"allocationId":"x"}`))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d: %s", tt.wantCode, rec.Code, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("expected body to contain %s, got %s", tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestResolveConflictUsage(t *testing.T) {
	router := testRouter(&mockAllocationService{})

	req := httptest.NewRequest(http.MethodGet, "/resolve-conflict", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "POST /resolve-conflict") {
		t.Errorf("expected usage hint in body, got %s", rec.Body.String())
	}
}

func TestGetAllocations_LimitHandling(t *testing.T) {
	tests := []struct {
		name        string
		queryString string
		wantCode    int
		wantLimit   int
	}{
		{name: "default limit", queryString: "", wantCode: http.StatusOK, wantLimit: 50},
		{name: "explicit limit", queryString: "?limit=10", wantCode: http.StatusOK, wantLimit: 10},
		{name: "clamped to max", queryString: "?limit=5000", wantCode: http.StatusOK, wantLimit: 200},
		{name: "negative falls back to default", queryString: "?limit=-3", wantCode: http.StatusOK, wantLimit: 50},
		{name: "non-numeric rejected", queryString: "?limit=abc", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var receivedLimit int
			svc := &mockAllocationService{
				getAllocationsFunc: func(_ context.Context, limit int) ([]*model.Allocation, error) {
					receivedLimit = limit
					return []*model.Allocation{}, nil
				},
			}
			router := testRouter(svc)

			req := httptest.NewRequest(http.MethodGet, "/allocations"+tt.queryString, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d: %s", tt.wantCode, rec.Code, rec.Body.String())
			}
			if tt.wantCode == http.StatusOK && receivedLimit != tt.wantLimit {
				t.Errorf("expected limit %d passed to service, got %d", tt.wantLimit, receivedLimit)
			}
		})
	}
}

func TestGetDecisionLogs(t *testing.T) {
	svc := &mockAllocationService{
		getDecisionLogsFunc: func(_ context.Context, limit int) ([]*model.DecisionLog, error) {
			return []*model.DecisionLog{
				{ID: "log-1", AllocationID: "alloc-001", SuggestedVenue: "LT2", ResolvedBy: model.ResolverAutomatic},
			}, nil
		},
	}
	router := testRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/decision-logs", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data  []*model.DecisionLog `json:"data"`
		Count int                  `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Count != 1 || len(resp.Data) != 1 {
		t.Fatalf("expected one decision log, got %+v", resp)
	}
	if resp.Data[0].SuggestedVenue != "LT2" {
		t.Errorf("expected suggested venue LT2, got %s", resp.Data[0].SuggestedVenue)
	}
}
