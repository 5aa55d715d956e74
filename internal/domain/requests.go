package domain

import "time"

type RequestStatus string

const (
	RequestOpen       RequestStatus = "OPEN"
	RequestInProgress RequestStatus = "IN_PROGRESS"
	RequestCompleted  RequestStatus = "COMPLETED"
	RequestCanceled   RequestStatus = "CANCELED"
)

// HousekeepingRequest is a room-cleaning order placed by a booked guest,
// guest-owned when CustomerID is zero.
type HousekeepingRequest struct {
	ID         int64         `json:"id"`
	BookingID  int64         `json:"bookingId"`
	CustomerID int64         `json:"customerId,omitempty"`
	GuestEmail string        `json:"guestEmail,omitempty"`
	RoomNumber string        `json:"roomNumber"`
	Status     RequestStatus `json:"status"`
	Notes      string        `json:"notes,omitempty"`
	AssigneeID int64         `json:"assigneeId,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// ServiceRequest is an in-stay order for a hotel service (room service,
// laundry, spa and so on).
type ServiceRequest struct {
	ID          int64         `json:"id"`
	BookingID   int64         `json:"bookingId"`
	CustomerID  int64         `json:"customerId,omitempty"`
	GuestEmail  string        `json:"guestEmail,omitempty"`
	ServiceName string        `json:"serviceName"`
	Quantity    int           `json:"quantity"`
	Status      RequestStatus `json:"status"`
	Notes       string        `json:"notes,omitempty"`
	TotalPrice  float64       `json:"totalPrice"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

type RequestUpdate struct {
	Notes      *string        `json:"notes,omitempty"`
	Quantity   *int           `json:"quantity,omitempty"`
	Status     *RequestStatus `json:"status,omitempty"`
	AssigneeID *int64         `json:"assigneeId,omitempty"`
}

type RequestListOptions struct {
	Status     string `url:"status,omitempty"`
	BookingID  int64  `url:"bookingId,omitempty"`
	AssigneeID int64  `url:"assigneeId,omitempty"`
	Page       int    `url:"page,omitempty"`
	Size       int    `url:"size,omitempty"`
}
