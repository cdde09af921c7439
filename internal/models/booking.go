package models

import "time"

// Booking reserves one slot of a class for a user. Client name/email are the
// attendee's details and may differ from the account that booked.
type Booking struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"-"`
	ClassID     int64     `json:"class_id"`
	ClientName  string    `json:"client_name"`
	ClientEmail string    `json:"client_email"`
	CreatedAt   time.Time `json:"created_at"`
}
