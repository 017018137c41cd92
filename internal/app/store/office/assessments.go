package office

import (
	"github.com/dalemusser/internhub/internal/app/system/authz"
	"github.com/dalemusser/internhub/internal/app/system/outcome"
	"github.com/dalemusser/internhub/internal/domain/models"
	"go.uber.org/zap"
)

// Assessments lists the available assessments.
func (s *Store) Assessments() []models.Assessment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Assessment(nil), s.assessments...)
}

// TakeAssessment scores one attempt by a PRO student and records it.
// Scoring is simulated by the configured Scorer.
func (s *Store) TakeAssessment(actor *models.Actor, id string) (models.AssessmentResult, error) {
	if !authz.Can(actor, authz.TakeAssessments) {
		return models.AssessmentResult{}, outcome.Fail(outcome.ErrUnauthorized, "Only PRO students can take assessments")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for _, a := range s.assessments {
		if a.ID == id {
			found = true
			break
		}
	}
	if !found {
		return models.AssessmentResult{}, outcome.Fail(outcome.ErrNotFound, "Assessment not found")
	}

	res := models.AssessmentResult{
		AssessmentID: id,
		ActorID:      actor.ID,
		Score:        s.score(),
		TakenAt:      s.now(),
	}
	s.results = append(s.results, res)

	s.log.Info("assessment taken",
		zap.String("assessment_id", id),
		zap.String("actor_id", actor.ID),
		zap.Int("score", res.Score))
	return res, nil
}

// AssessmentResults lists the attempts recorded for actorID, oldest first.
func (s *Store) AssessmentResults(actorID string) []models.AssessmentResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.AssessmentResult, 0)
	for _, r := range s.results {
		if r.ActorID == actorID {
			out = append(out, r)
		}
	}
	return out
}
