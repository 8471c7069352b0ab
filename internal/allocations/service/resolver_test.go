package service

import (
	"testing"

	"aula/pkg/model"
)

func rooms(names ...string) []*model.Room {
	out := make([]*model.Room, 0, len(names))
	for _, name := range names {
		out = append(out, &model.Room{Name: name, Status: model.RoomAvailable})
	}
	return out
}

func booking(room, date, start, end string) *model.Allocation {
	return &model.Allocation{
		Room:      room,
		Date:      date,
		StartTime: start,
		EndTime:   end,
	}
}

func TestSelectVenue(t *testing.T) {
	const date = "2026-09-01"
	window := &model.TimeWindow{Date: date, Start: 600, End: 720} // 10:00 AM - 12:00 PM

	tests := []struct {
		name      string
		rooms     []*model.Room
		bookings  []*model.Allocation
		wantVenue string
		wantOK    bool
	}{
		{
			name:      "no bookings picks first room",
			rooms:     rooms("LT1", "LT2", "LT3"),
			wantVenue: "LT1",
			wantOK:    true,
		},
		{
			name:  "overlapping booking excludes room",
			rooms: rooms("LT1", "LT2"),
			bookings: []*model.Allocation{
				booking("LT1", date, "11:00 AM", "1:00 PM"),
			},
			wantVenue: "LT2",
			wantOK:    true,
		},
		{
			name:  "touching boundary does not overlap",
			rooms: rooms("LT1"),
			bookings: []*model.Allocation{
				booking("LT1", date, "8:00 AM", "10:00 AM"),
				booking("LT1", date, "12:00 PM", "2:00 PM"),
			},
			wantVenue: "LT1",
			wantOK:    true,
		},
		{
			name:  "booking on another date is ignored",
			rooms: rooms("LT1"),
			bookings: []*model.Allocation{
				booking("LT1", "2026-09-02", "10:00 AM", "12:00 PM"),
			},
			wantVenue: "LT1",
			wantOK:    true,
		},
		{
			name:  "every room occupied",
			rooms: rooms("LT1", "LT2"),
			bookings: []*model.Allocation{
				booking("LT1", date, "9:00 AM", "11:00 AM"),
				booking("LT2", date, "11:30 AM", "12:30 PM"),
			},
			wantOK: false,
		},
		{
			name:  "room excluded by any same-day overlap",
			rooms: rooms("LT1", "LT2"),
			bookings: []*model.Allocation{
				booking("LT1", date, "9:00 AM", "5:00 PM"),
				booking("LT2", date, "8:00 AM", "9:00 AM"),
			},
			wantVenue: "LT2",
			wantOK:    true,
		},
		{
			name:  "unparseable booking times are skipped",
			rooms: rooms("LT1"),
			bookings: []*model.Allocation{
				booking("LT1", date, "25:00", "garbage"),
			},
			wantVenue: "LT1",
			wantOK:    true,
		},
		{
			name:   "no rooms",
			rooms:  nil,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			venue, ok := SelectVenue(tt.rooms, tt.bookings, window)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v (venue=%q)", tt.wantOK, ok, venue)
			}
			if venue != tt.wantVenue {
				t.Errorf("expected venue %q, got %q", tt.wantVenue, venue)
			}
		})
	}
}

func TestSelectVenue_FirstFitIsDeterministic(t *testing.T) {
	window := &model.TimeWindow{Date: "2026-09-01", Start: 540, End: 600}
	candidates := rooms("A101", "B202", "C303")

	for i := 0; i < 10; i++ {
		venue, ok := SelectVenue(candidates, nil, window)
		if !ok || venue != "A101" {
			t.Fatalf("run %d: expected A101, got %q (ok=%v)", i, venue, ok)
		}
	}
}
