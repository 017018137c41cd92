package office

import (
	"math"
	"sort"

	"github.com/dalemusser/internhub/internal/app/system/authz"
	"github.com/dalemusser/internhub/internal/domain/models"
)

const topN = 5

// SystemStatistics summarizes reports and postings for the office and
// faculty dashboards. Other actors get nil.
func (s *Store) SystemStatistics(actor *models.Actor) *models.Statistics {
	if !authz.Can(actor, authz.ViewStatistics) {
		return nil
	}

	st := &models.Statistics{
		Reports: map[models.ReportStatus]int{
			models.ReportPending:  0,
			models.ReportAccepted: 0,
			models.ReportRejected: 0,
			models.ReportFlagged:  0,
		},
		TopCourses:            []models.CourseCount{},
		TopCompanies:          []models.CompanyCount{},
		InternshipsByIndustry: map[string]int{},
	}

	s.mu.RLock()
	var days []float64
	courses := map[string]int{}
	for _, r := range s.reports {
		st.Reports[r.Status]++
		if r.ReviewDate != nil {
			days = append(days, r.ReviewDate.Sub(r.SubmissionDate).Hours()/24)
		}
		for _, c := range r.Courses {
			courses[c]++
		}
	}
	s.mu.RUnlock()

	st.ReviewTime = reviewTime(days)
	for name, n := range courses {
		st.TopCourses = append(st.TopCourses, models.CourseCount{Name: name, Count: n})
	}
	sort.Slice(st.TopCourses, func(i, j int) bool {
		a, b := st.TopCourses[i], st.TopCourses[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Name < b.Name
	})
	if len(st.TopCourses) > topN {
		st.TopCourses = st.TopCourses[:topN]
	}

	if s.postings != nil {
		companies := map[string]int{}
		for _, p := range s.postings.Postings() {
			companies[p.CompanyName]++
			industry := p.Industry
			if industry == "" {
				industry = "Other"
			}
			st.InternshipsByIndustry[industry]++
		}
		for name, n := range companies {
			st.TopCompanies = append(st.TopCompanies, models.CompanyCount{Name: name, Count: n})
		}
		sort.Slice(st.TopCompanies, func(i, j int) bool {
			a, b := st.TopCompanies[i], st.TopCompanies[j]
			if a.Count != b.Count {
				return a.Count > b.Count
			}
			return a.Name < b.Name
		})
		if len(st.TopCompanies) > topN {
			st.TopCompanies = st.TopCompanies[:topN]
		}
	}
	return st
}

func reviewTime(days []float64) models.ReviewTime {
	if len(days) == 0 {
		return models.ReviewTime{}
	}
	sort.Float64s(days)
	var sum float64
	for _, d := range days {
		sum += d
	}
	median := days[len(days)/2]
	if len(days)%2 == 0 {
		median = (days[len(days)/2-1] + days[len(days)/2]) / 2
	}
	return models.ReviewTime{
		AverageDays: roundTenth(sum / float64(len(days))),
		MedianDays:  roundTenth(median),
		Reviewed:    len(days),
	}
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
