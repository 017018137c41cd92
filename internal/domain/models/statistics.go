// internal/domain/models/statistics.go
package models

// Statistics is the office dashboard snapshot.
type Statistics struct {
	Reports               map[ReportStatus]int `json:"reports"`
	ReviewTime            ReviewTime           `json:"review_time"`
	TopCourses            []CourseCount        `json:"top_courses"`
	TopCompanies          []CompanyCount       `json:"top_companies"`
	InternshipsByIndustry map[string]int       `json:"internships_by_industry"`
}

// ReviewTime summarizes how long report reviews take, in days.
type ReviewTime struct {
	AverageDays float64 `json:"average_days"`
	MedianDays  float64 `json:"median_days"`
	Reviewed    int     `json:"reviewed"`
}

// CourseCount is a course referenced by reports.
type CourseCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CompanyCount is a company ranked by posting count.
type CompanyCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
