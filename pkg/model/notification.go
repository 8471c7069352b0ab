package model

import "time"

// Notification recipient roles.
const (
	NotificationTypeConflict = "conflict"

	RoleAdmin = "admin"
)

// Notification is a stakeholder-facing message written by the notifier
// worker. Exactly one of LecturerID, StudentID, AdminID is set.
type Notification struct {
	ID          string    `json:"id,omitempty" bson:"_id,omitempty"`
	Type        string    `json:"type" bson:"type"`
	Title       string    `json:"title" bson:"title"`
	Message     string    `json:"message" bson:"message"`
	LecturerID  string    `json:"lecturer_id,omitempty" bson:"lecturer_id,omitempty"`
	StudentID   string    `json:"student_id,omitempty" bson:"student_id,omitempty"`
	AdminID     string    `json:"admin_id,omitempty" bson:"admin_id,omitempty"`
	TimetableID string    `json:"timetable_id" bson:"timetable_id"`
	IsRead      bool      `json:"is_read" bson:"is_read"`
	Time        time.Time `json:"time" bson:"time"`
}

// User is read-only here; the notifier worker queries admins for fan-out.
type User struct {
	ID   string `json:"id,omitempty" bson:"_id,omitempty"`
	Name string `json:"name,omitempty" bson:"name,omitempty"`
	Role string `json:"role" bson:"role"`
}
