package handler

import (
	"encoding/json"
	"net/http"

	"aula/internal/allocations/service"
	apperrors "aula/pkg/errors"
	httputil "aula/pkg/http"
	"aula/pkg/logger"
	"aula/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type AllocationHandler struct {
	service service.AllocationService
	log     *logger.Logger
}

func NewAllocationHandler(service service.AllocationService, log *logger.Logger) *AllocationHandler {
	return &AllocationHandler{
		service: service,
		log:     log,
	}
}

func (h *AllocationHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/resolve-conflict", h.ResolveConflict)
	router.GET("/resolve-conflict", h.ResolveConflictUsage)
	router.GET("/allocations", h.GetAllocations)
	router.GET("/decision-logs", h.GetDecisionLogs)
}

func (h *AllocationHandler) ResolveConflict(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.ResolveConflictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteError(w, r, apperrors.BadRequest("Invalid request body")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ResolveConflict", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	outcome, err := h.service.ResolveConflict(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, r, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ResolveConflict", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, outcome); err != nil {
		h.log.Error("failed to write JSON response", "handler", "ResolveConflict", "operation", "WriteJSON", "error", err)
	}
}

// ResolveConflictUsage answers browser GETs with a worked example instead of
// a 405, mirroring the behavior clients of the old endpoint relied on.
func (h *AllocationHandler) ResolveConflictUsage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	usage := map[string]any{
		"message": "Use POST /resolve-conflict to resolve a scheduling conflict.",
		"example": model.ResolveConflictRequest{
			AllocationID:    "alloc-001",
			ConflictDetails: "Room LT1 double booked with CSC301",
			Date:            "2026-09-01",
			StartTime:       "10:00 AM",
			EndTime:         "12:00 PM",
		},
	}

	if err := httputil.WriteJSON(w, http.StatusOK, usage); err != nil {
		h.log.Error("failed to write JSON response", "handler", "ResolveConflictUsage", "operation", "WriteJSON", "error", err)
	}
}

func (h *AllocationHandler) GetAllocations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, err := httputil.ExtractLimit(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, r, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAllocations", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	allocations, err := h.service.GetAllocations(r.Context(), limit)
	if err != nil {
		if writeErr := httputil.WriteError(w, r, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAllocations", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteList(w, allocations, len(allocations), limit); err != nil {
		h.log.Error("failed to write list response", "handler", "GetAllocations", "operation", "WriteList", "error", err)
	}
}

func (h *AllocationHandler) GetDecisionLogs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, err := httputil.ExtractLimit(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, r, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetDecisionLogs", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	logs, err := h.service.GetDecisionLogs(r.Context(), limit)
	if err != nil {
		if writeErr := httputil.WriteError(w, r, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetDecisionLogs", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteList(w, logs, len(logs), limit); err != nil {
		h.log.Error("failed to write list response", "handler", "GetDecisionLogs", "operation", "WriteList", "error", err)
	}
}
