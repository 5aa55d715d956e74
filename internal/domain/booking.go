package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "PENDING"
	BookingConfirmed  BookingStatus = "CONFIRMED"
	BookingCheckedIn  BookingStatus = "CHECKED_IN"
	BookingCheckedOut BookingStatus = "CHECKED_OUT"
	BookingCanceled   BookingStatus = "CANCELED"
)

func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingCheckedIn, BookingCheckedOut, BookingCanceled:
		return BookingStatus(s), true
	default:
		return "", false
	}
}

// Booking is either owned by a registered customer (CustomerID set) or by an
// anonymous guest (CustomerID zero, GuestEmail set). Guest-owned bookings are
// managed through an emailed link token plus an OTP challenge.
type Booking struct {
	ID         int64         `json:"id"`
	CustomerID int64         `json:"customerId,omitempty"`
	GuestEmail string        `json:"guestEmail,omitempty"`
	GuestName  string        `json:"guestName,omitempty"`
	Status     BookingStatus `json:"status"`

	RoomNumber string    `json:"roomNumber"`
	RoomType   string    `json:"roomType"`
	CheckIn    time.Time `json:"checkIn"`
	CheckOut   time.Time `json:"checkOut"`
	Adults     int       `json:"adults"`
	Children   int       `json:"children"`
	Notes      string    `json:"notes,omitempty"`

	TotalAmount float64   `json:"totalAmount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type BookingUpdateRequest struct {
	CheckIn  *time.Time `json:"checkIn,omitempty"`
	CheckOut *time.Time `json:"checkOut,omitempty"`
	Adults   *int       `json:"adults,omitempty"`
	Children *int       `json:"children,omitempty"`
	RoomType *string    `json:"roomType,omitempty"`
	Notes    *string    `json:"notes,omitempty"`
}

// BookingListOptions is encoded onto the query string of list requests.
type BookingListOptions struct {
	Status     string `url:"status,omitempty"`
	CustomerID int64  `url:"customerId,omitempty"`
	RoomNumber string `url:"roomNumber,omitempty"`
	From       string `url:"from,omitempty"`
	To         string `url:"to,omitempty"`
	Page       int    `url:"page,omitempty"`
	Size       int    `url:"size,omitempty"`
}
