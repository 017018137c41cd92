// internal/domain/models/cycle.go
package models

import "time"

// Cycle is an internship cycle window set by the office.
type Cycle struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Start  time.Time `json:"start_date"`
	End    time.Time `json:"end_date"`
	Status string    `json:"status"` // active | completed
}

// CycleSet is the current cycle plus history.
type CycleSet struct {
	Current  Cycle   `json:"current"`
	Previous []Cycle `json:"previous"`
}
