package domain

import "time"

type FolioStatus string

const (
	FolioOpen    FolioStatus = "OPEN"
	FolioClosed  FolioStatus = "CLOSED"
	FolioSettled FolioStatus = "SETTLED"
)

type FolioCharge struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	PostedBy    int64     `json:"postedBy,omitempty"`
	PostedAt    time.Time `json:"postedAt"`
}

// Folio is the running bill attached to a booking.
type Folio struct {
	ID        int64         `json:"id"`
	BookingID int64         `json:"bookingId"`
	Status    FolioStatus   `json:"status"`
	Charges   []FolioCharge `json:"charges"`
	Balance   float64       `json:"balance"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type PostChargeRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type FolioListOptions struct {
	Status    string `url:"status,omitempty"`
	BookingID int64  `url:"bookingId,omitempty"`
	Page      int    `url:"page,omitempty"`
	Size      int    `url:"size,omitempty"`
}
