// internal/domain/models/workshop.go
package models

import "time"

// Workshop is a live or recorded career workshop offered to PRO students.
type Workshop struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Speaker      string    `json:"speaker"`
	SpeakerBio   string    `json:"speaker_bio"`
	Agenda       string    `json:"agenda"`
	StartsAt     time.Time `json:"starts_at"`
	EndsAt       time.Time `json:"ends_at"`
	IsLive       bool      `json:"is_live"`
	RecordingURL string    `json:"recording_url,omitempty"`
	Registrants  []string  `json:"registrants"`
}

// IsRegistered reports whether actorID is in the registrant set.
func (w Workshop) IsRegistered(actorID string) bool {
	for _, id := range w.Registrants {
		if id == actorID {
			return true
		}
	}
	return false
}

// Clone returns a copy that does not share the registrant slice.
func (w Workshop) Clone() Workshop {
	w.Registrants = append([]string(nil), w.Registrants...)
	return w
}
