package domain

import "time"

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "AVAILABLE"
	RoomOccupied    RoomStatus = "OCCUPIED"
	RoomCleaning    RoomStatus = "CLEANING"
	RoomMaintenance RoomStatus = "MAINTENANCE"
	RoomOutOfOrder  RoomStatus = "OUT_OF_ORDER"
)

type Room struct {
	ID         int64      `json:"id"`
	RoomNumber string     `json:"roomNumber"`
	RoomType   string     `json:"roomType"`
	Floor      int        `json:"floor"`
	Capacity   int        `json:"capacity"`
	BasePrice  float64    `json:"basePrice"`
	Status     RoomStatus `json:"status"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

type RoomListOptions struct {
	Status   string `url:"status,omitempty"`
	RoomType string `url:"roomType,omitempty"`
	Floor    int    `url:"floor,omitempty"`
	Page     int    `url:"page,omitempty"`
	Size     int    `url:"size,omitempty"`
}

type RoomStatusUpdateRequest struct {
	Status RoomStatus `json:"status"`
}
