package model

import "time"

// Allocation statuses. A conflicted allocation is pending until resolution;
// it becomes diverted when moved to another room and resolved when its own
// room could be kept.
const (
	StatusPending  = "pending"
	StatusResolved = "resolved"
	StatusDiverted = "diverted"
)

// Allocation is a timetable entry subject to conflict resolution. The
// authoritative copy lives in the Timetables collection; the service never
// holds more than one in memory per request.
type Allocation struct {
	ID            string     `json:"id,omitempty" bson:"_id,omitempty"`
	CourseCode    string     `json:"course_code,omitempty" bson:"course_code,omitempty"`
	LecturerID    string     `json:"lecturer_id,omitempty" bson:"lecturer_id,omitempty"`
	Students      []string   `json:"students,omitempty" bson:"students,omitempty"`
	Room          string     `json:"room,omitempty" bson:"room,omitempty"`
	Date          string     `json:"date" bson:"date"`
	StartTime     string     `json:"start_time" bson:"start_time"`
	EndTime       string     `json:"end_time" bson:"end_time"`
	Conflict      bool       `json:"conflict" bson:"conflict"`
	Status        string     `json:"status" bson:"status"`
	ResolvedVenue string     `json:"resolved_venue,omitempty" bson:"resolved_venue,omitempty"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty" bson:"resolved_at,omitempty"`
}

// AllocationResolution is the partial update applied when a conflict is
// resolved. Fields not listed here are left untouched in the store.
type AllocationResolution struct {
	ResolvedVenue string    `bson:"resolved_venue"`
	Status        string    `bson:"status"`
	Conflict      bool      `bson:"conflict"`
	ResolvedAt    time.Time `bson:"resolved_at"`
}

// ResolverAutomatic marks resolutions produced by the allocation engine
// rather than a human operator.
const ResolverAutomatic = "AI"

// ResolutionOutcome is what a successful resolution reports back to the
// caller.
type ResolutionOutcome struct {
	ResolvedVenue string    `json:"resolvedVenue"`
	Status        string    `json:"status"`
	ResolvedAt    time.Time `json:"resolvedAt"`
}

// ResolveConflictRequest is the body of POST /resolve-conflict. Key names
// match the public API contract, not the storage schema.
type ResolveConflictRequest struct {
	AllocationID    string `json:"allocationId" validate:"required"`
	ConflictDetails string `json:"conflictDetails" validate:"omitempty,max=2000"`
	Date            string `json:"date" validate:"required"`
	StartTime       string `json:"startTime" validate:"required"`
	EndTime         string `json:"endTime" validate:"required"`
}
