package testutil

import (
	"aula/pkg/model"
)

type AllocationBuilder struct {
	allocation model.Allocation
}

func NewAllocationBuilder(id string) *AllocationBuilder {
	return &AllocationBuilder{
		allocation: model.Allocation{
			ID:         id,
			CourseCode: "CSC301",
			LecturerID: "lect-1",
			Students:   []string{"stu-1", "stu-2"},
			Room:       "LT1",
			Date:       "2026-09-01",
			StartTime:  "10:00 AM",
			EndTime:    "12:00 PM",
			Conflict:   true,
			Status:     model.StatusPending,
		},
	}
}

func (b *AllocationBuilder) WithRoom(room string) *AllocationBuilder {
	b.allocation.Room = room
	return b
}

func (b *AllocationBuilder) WithDate(date string) *AllocationBuilder {
	b.allocation.Date = date
	return b
}

func (b *AllocationBuilder) WithWindow(start, end string) *AllocationBuilder {
	b.allocation.StartTime = start
	b.allocation.EndTime = end
	return b
}

func (b *AllocationBuilder) Build() model.Allocation {
	return b.allocation
}

func AvailableRoom(name string) model.Room {
	return model.Room{Name: name, Status: model.RoomAvailable}
}

func ResolveRequest(allocationID string) map[string]string {
	return map[string]string{
		"allocationId":    allocationID,
		"conflictDetails": "double booking detected",
		"date":            "2026-09-01",
		"startTime":       "10:00 AM",
		"endTime":         "12:00 PM",
	}
}
