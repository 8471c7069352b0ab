package model

import "time"

// DecisionLog is an append-only record of one conflict resolution. Entries
// are never mutated after creation.
type DecisionLog struct {
	ID              string    `json:"id,omitempty" bson:"_id,omitempty"`
	AllocationID    string    `json:"allocation_id" bson:"allocation_id"`
	Description     string    `json:"description" bson:"description"`
	ConflictDetails string    `json:"conflict_details,omitempty" bson:"conflict_details,omitempty"`
	SuggestedVenue  string    `json:"suggested_venue" bson:"suggested_venue"`
	ResolvedBy      string    `json:"resolved_by" bson:"resolved_by"`
	Status          string    `json:"status" bson:"status"`
	Timestamp       time.Time `json:"timestamp" bson:"timestamp"`
}
