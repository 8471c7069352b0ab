// Package worker consumes allocation resolution events and fans them out as
// stakeholder notifications: one for the lecturer, one per student, one per
// admin.
package worker

import (
	"context"
	"fmt"

	"aula/internal/allocations/events"
	"aula/internal/notifier/repository"
	"aula/pkg/kafka"
	"aula/pkg/logger"
	"aula/pkg/model"
)

type NotificationWorker struct {
	notifications repository.NotificationRepository
	users         repository.UserRepository
	log           *logger.Logger
}

func NewNotificationWorker(
	notifications repository.NotificationRepository,
	users repository.UserRepository,
	log *logger.Logger,
) *NotificationWorker {
	return &NotificationWorker{
		notifications: notifications,
		users:         users,
		log:           log,
	}
}

// Handle implements kafka.MessageHandler. Returning an error defers the
// message to the consumer's retry/DLQ path.
func (w *NotificationWorker) Handle(ctx context.Context, msg kafka.Message) error {
	var event events.AllocationResolved
	if err := msg.DecodeValue(&event); err != nil {
		return fmt.Errorf("failed to decode resolution event: %w", err)
	}

	notifications := w.buildNotifications(&event)

	admins, err := w.users.FindAdmins(ctx)
	if err != nil {
		return fmt.Errorf("failed to load admins for fan-out: %w", err)
	}
	for _, admin := range admins {
		notifications = append(notifications, &model.Notification{
			Type:        model.NotificationTypeConflict,
			Title:       "Lecture Conflict Detected",
			Message:     fmt.Sprintf("A scheduling conflict was detected and resolved for %s. The lecture has been moved to %s.", courseLabel(event.CourseCode), event.ResolvedVenue),
			AdminID:     admin.ID,
			TimetableID: event.AllocationID,
			Time:        event.ResolvedAt,
		})
	}

	if err := w.notifications.InsertMany(ctx, notifications); err != nil {
		return err
	}

	w.log.Info("Notifications written",
		"allocation_id", event.AllocationID,
		"resolved_venue", event.ResolvedVenue,
		"count", len(notifications),
		"correlation_id", msg.GetCorrelationID(),
	)
	return nil
}

func (w *NotificationWorker) buildNotifications(event *events.AllocationResolved) []*model.Notification {
	var notifications []*model.Notification

	if event.LecturerID != "" {
		notifications = append(notifications, &model.Notification{
			Type:        model.NotificationTypeConflict,
			Title:       fmt.Sprintf("Scheduling Conflict for %s", lectureLabel(event.CourseCode)),
			Message:     fmt.Sprintf("A scheduling conflict occurred. Your lecture has been moved to %s. Please check the new venue details.", event.ResolvedVenue),
			LecturerID:  event.LecturerID,
			TimetableID: event.AllocationID,
			Time:        event.ResolvedAt,
		})
	}

	for _, studentID := range event.Students {
		notifications = append(notifications, &model.Notification{
			Type:        model.NotificationTypeConflict,
			Title:       "Lecture Conflict Notification",
			Message:     fmt.Sprintf("A scheduling conflict occurred for %s. Your lecture has been moved to %s. Please check the new venue details.", courseLabel(event.CourseCode), event.ResolvedVenue),
			StudentID:   studentID,
			TimetableID: event.AllocationID,
			Time:        event.ResolvedAt,
		})
	}

	return notifications
}

func lectureLabel(courseCode string) string {
	if courseCode == "" {
		return "Your Lecture"
	}
	return courseCode
}

func courseLabel(courseCode string) string {
	if courseCode == "" {
		return "a course"
	}
	return courseCode
}
