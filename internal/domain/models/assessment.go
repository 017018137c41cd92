// internal/domain/models/assessment.go
package models

import "time"

// Assessment is an online skills test available to PRO students.
type Assessment struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Questions   int    `json:"questions"`
	Category    string `json:"category"`
}

// AssessmentResult records one attempt.
type AssessmentResult struct {
	AssessmentID string    `json:"assessment_id"`
	ActorID      string    `json:"actor_id"`
	Score        int       `json:"score"`
	TakenAt      time.Time `json:"taken_at"`
}
