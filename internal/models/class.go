package models

import "time"

// FitnessClass is a scheduled studio session. DateTime is stored in IST,
// AvailableSlots starts at the configured capacity and only decreases.
type FitnessClass struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	DateTime       time.Time `json:"dateTime"`
	Instructor     string    `json:"instructor"`
	AvailableSlots int       `json:"availableSlots"`
}
