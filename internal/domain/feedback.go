package domain

import "time"

// Feedback is a post-stay review. Guest-submitted reviews carry GuestEmail and
// no CustomerID; they are edited and deleted through the guest-token flow.
type Feedback struct {
	ID         int64     `json:"id"`
	BookingID  int64     `json:"bookingId"`
	CustomerID int64     `json:"customerId,omitempty"`
	GuestEmail string    `json:"guestEmail,omitempty"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type FeedbackUpdateRequest struct {
	Rating  *int    `json:"rating,omitempty"`
	Comment *string `json:"comment,omitempty"`
}

type FeedbackListOptions struct {
	BookingID int64 `url:"bookingId,omitempty"`
	MinRating int   `url:"minRating,omitempty"`
	Page      int   `url:"page,omitempty"`
	Size      int   `url:"size,omitempty"`
}
