package service

import (
	"aula/pkg/model"
	"aula/pkg/sanitizer"
	"aula/pkg/timeparse"
)

// SelectVenue picks the first available room with no booking overlapping
// the requested window. Rooms are considered in the order given, so a
// name-sorted input yields deterministic first-fit selection.
//
// A room is excluded if any of its same-date bookings overlaps the window
// under the half-open rule; bookings on other dates and bookings whose
// times fail to parse are ignored. The second return value reports whether
// any room qualified.
func SelectVenue(rooms []*model.Room, bookings []*model.Allocation, window *model.TimeWindow) (string, bool) {
	occupied := make(map[string][]model.TimeWindow, len(rooms))
	for _, b := range bookings {
		if b.Date != window.Date {
			continue
		}
		start, err := timeparse.Minutes(b.StartTime)
		if err != nil {
			continue
		}
		end, err := timeparse.Minutes(b.EndTime)
		if err != nil {
			continue
		}
		// Room names come from two collections maintained by hand;
		// normalize both sides before comparing.
		room := sanitizer.SanitizeRoomName(b.Room)
		occupied[room] = append(occupied[room], model.TimeWindow{
			Date:  b.Date,
			Start: start,
			End:   end,
		})
	}

	for _, room := range rooms {
		name := sanitizer.SanitizeRoomName(room.Name)
		if hasOverlap(occupied[name], *window) {
			continue
		}
		return name, true
	}

	return "", false
}

func hasOverlap(windows []model.TimeWindow, requested model.TimeWindow) bool {
	for _, w := range windows {
		if requested.Overlaps(w) {
			return true
		}
	}
	return false
}
