package model

// Room statuses as stored in the room directory.
const (
	RoomAvailable   = "Available"
	RoomUnavailable = "Unavailable"
)

// Room is an immutable snapshot fetched per request from the room directory.
type Room struct {
	ID     string `json:"id,omitempty" bson:"_id,omitempty"`
	Name   string `json:"name" bson:"name"`
	Status string `json:"status" bson:"status"`
}
