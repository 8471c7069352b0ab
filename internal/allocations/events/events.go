// Package events defines the messages the allocations service publishes
// after a conflict is resolved. The notifier worker consumes them.
package events

import "time"

const (
	TopicAllocationResolved    = "aula.allocation.resolved"
	TopicAllocationResolvedDLQ = "aula.allocation.resolved.dlq"

	TypeAllocationResolved = "allocation.resolved"
)

// AllocationResolved carries everything the notifier needs for stakeholder
// fan-out, so the worker never has to read the timetable back.
type AllocationResolved struct {
	AllocationID  string    `json:"allocation_id"`
	CourseCode    string    `json:"course_code,omitempty"`
	LecturerID    string    `json:"lecturer_id,omitempty"`
	Students      []string  `json:"students,omitempty"`
	Date          string    `json:"date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	PreviousRoom  string    `json:"previous_room,omitempty"`
	ResolvedVenue string    `json:"resolved_venue"`
	Status        string    `json:"status"`
	ResolvedAt    time.Time `json:"resolved_at"`
}
