// internal/app/seed/seed.go
//
// Package seed loads the startup catalog (actors, postings, applications
// and the office ledger's content) from YAML. An embedded catalog mirrors
// the sample data the service ships with; a file can replace it.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/dalemusser/internhub/internal/app/store/office"
	"github.com/dalemusser/internhub/internal/app/system/dates"
	"github.com/dalemusser/internhub/internal/domain/models"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultCatalog []byte

// Account is a seeded actor and its plaintext password.
type Account struct {
	Actor    models.Actor
	Password string
}

// Data is a parsed catalog in domain types.
type Data struct {
	Accounts     []Account
	Postings     []models.Posting
	Applications []models.Application
	Office       office.Seed
}

// Default parses the embedded catalog.
func Default() (*Data, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog file. An empty path loads the embedded catalog.
func Load(path string) (*Data, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates a YAML catalog.
func Parse(raw []byte) (*Data, error) {
	var c catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return c.convert()
}

type catalog struct {
	Actors              []actorRecord      `yaml:"actors"`
	Postings            []postingRecord    `yaml:"postings"`
	Applications        []appRecord        `yaml:"applications"`
	CompanyApplications []companyAppRecord `yaml:"company_applications"`
	Reports             []reportRecord     `yaml:"reports"`
	Workshops           []workshopRecord   `yaml:"workshops"`
	Cycles              struct {
		Current  cycleRecord   `yaml:"current"`
		Previous []cycleRecord `yaml:"previous"`
	} `yaml:"cycles"`
	Assessments []models.Assessment `yaml:"assessments"`
}

type actorRecord struct {
	ID       string `yaml:"id"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
	Name     string `yaml:"name"`

	Major                string                       `yaml:"major"`
	Semester             int                          `yaml:"semester"`
	Interests            []string                     `yaml:"interests"`
	CompletedInternships []models.CompletedInternship `yaml:"completed_internships"`

	Industry    string `yaml:"industry"`
	Size        string `yaml:"size"`
	Verified    bool   `yaml:"verified"`
	Logo        string `yaml:"logo"`
	Description string `yaml:"description"`

	Department string `yaml:"department"`
	Position   string `yaml:"position"`
}

type postingRecord struct {
	ID          string   `yaml:"id"`
	CompanyID   string   `yaml:"company_id"`
	CompanyName string   `yaml:"company_name"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Duration    string   `yaml:"duration"`
	IsPaid      bool     `yaml:"is_paid"`
	Salary      string   `yaml:"salary"`
	Industry    string   `yaml:"industry"`
	Skills      []string `yaml:"skills"`
	Status      string   `yaml:"status"`
}

type appRecord struct {
	ID          string   `yaml:"id"`
	PostingID   string   `yaml:"internship_id"`
	StudentID   string   `yaml:"student_id"`
	StudentName string   `yaml:"student_name"`
	Status      string   `yaml:"status"`
	AppliedDate string   `yaml:"applied_date"`
	Documents   []string `yaml:"documents"`
}

type companyAppRecord struct {
	ID             string   `yaml:"id"`
	CompanyID      string   `yaml:"company_id"`
	CompanyName    string   `yaml:"company_name"`
	Industry       string   `yaml:"industry"`
	Size           string   `yaml:"size"`
	Email          string   `yaml:"email"`
	Logo           string   `yaml:"logo"`
	Documents      []string `yaml:"documents"`
	Status         string   `yaml:"status"`
	SubmissionDate string   `yaml:"submission_date"`
}

type reportRecord struct {
	ID             string   `yaml:"id"`
	StudentID      string   `yaml:"student_id"`
	StudentName    string   `yaml:"student_name"`
	CompanyName    string   `yaml:"company_name"`
	Title          string   `yaml:"title"`
	Content        string   `yaml:"content"`
	Courses        []string `yaml:"courses"`
	Status         string   `yaml:"status"`
	SubmissionDate string   `yaml:"submission_date"`
}

type workshopRecord struct {
	ID           string `yaml:"id"`
	Title        string `yaml:"title"`
	Description  string `yaml:"description"`
	Speaker      string `yaml:"speaker"`
	SpeakerBio   string `yaml:"speaker_bio"`
	Agenda       string `yaml:"agenda"`
	StartsAt     string `yaml:"starts_at"`
	EndsAt       string `yaml:"ends_at"`
	IsLive       bool   `yaml:"is_live"`
	RecordingURL string `yaml:"recording_url"`
}

type cycleRecord struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Start  string `yaml:"start"`
	End    string `yaml:"end"`
	Status string `yaml:"status"`
}

func (c *catalog) convert() (*Data, error) {
	d := &Data{}

	for _, r := range c.Actors {
		a, err := r.actor()
		if err != nil {
			return nil, err
		}
		d.Accounts = append(d.Accounts, Account{Actor: a, Password: r.Password})
	}

	for _, r := range c.Postings {
		if r.ID == "" || r.CompanyID == "" {
			return nil, fmt.Errorf("posting %q: id and company_id are required", r.ID)
		}
		status := models.PostingStatus(r.Status)
		if status == "" {
			status = models.PostingActive
		}
		if !status.Valid() {
			return nil, fmt.Errorf("posting %s: unknown status %q", r.ID, r.Status)
		}
		d.Postings = append(d.Postings, models.Posting{
			ID: r.ID, CompanyID: r.CompanyID, CompanyName: r.CompanyName,
			Title: r.Title, Description: r.Description, Duration: r.Duration,
			IsPaid: r.IsPaid, Salary: r.Salary, Industry: r.Industry,
			Skills: r.Skills, Status: status,
		})
	}

	for _, r := range c.Applications {
		applied, err := dates.Parse(r.AppliedDate)
		if err != nil {
			return nil, fmt.Errorf("application %s: %w", r.ID, err)
		}
		status := models.ApplicationStatus(r.Status)
		if status == "" {
			status = models.ApplicationPending
		}
		if !status.Valid() {
			return nil, fmt.Errorf("application %s: unknown status %q", r.ID, r.Status)
		}
		d.Applications = append(d.Applications, models.Application{
			ID: r.ID, PostingID: r.PostingID, StudentID: r.StudentID, StudentName: r.StudentName,
			Status: status, AppliedDate: applied, Documents: r.Documents,
		})
	}

	for _, r := range c.CompanyApplications {
		submitted, err := dates.Parse(r.SubmissionDate)
		if err != nil {
			return nil, fmt.Errorf("company application %s: %w", r.ID, err)
		}
		d.Office.CompanyApplications = append(d.Office.CompanyApplications, models.CompanyApplication{
			ID: r.ID, CompanyID: r.CompanyID, CompanyName: r.CompanyName, Industry: r.Industry,
			Size: r.Size, Email: strings.ToLower(r.Email), Logo: r.Logo, Documents: r.Documents,
			Status: models.ReviewStatus(r.Status), SubmissionDate: submitted,
		})
	}

	for _, r := range c.Reports {
		submitted, err := dates.Parse(r.SubmissionDate)
		if err != nil {
			return nil, fmt.Errorf("report %s: %w", r.ID, err)
		}
		d.Office.Reports = append(d.Office.Reports, models.InternshipReport{
			ID: r.ID, StudentID: r.StudentID, StudentName: r.StudentName, CompanyName: r.CompanyName,
			Title: r.Title, Content: r.Content, Courses: r.Courses, Status: models.ReportStatus(r.Status),
			Comments: []models.ReportComment{}, SubmissionDate: submitted,
		})
	}

	for _, r := range c.Workshops {
		starts, err := dates.Parse(r.StartsAt)
		if err != nil {
			return nil, fmt.Errorf("workshop %s: %w", r.ID, err)
		}
		ends, err := dates.Parse(r.EndsAt)
		if err != nil {
			return nil, fmt.Errorf("workshop %s: %w", r.ID, err)
		}
		if ends.Before(starts) {
			return nil, fmt.Errorf("workshop %s: ends before it starts", r.ID)
		}
		d.Office.Workshops = append(d.Office.Workshops, models.Workshop{
			ID: r.ID, Title: r.Title, Description: r.Description, Speaker: r.Speaker,
			SpeakerBio: r.SpeakerBio, Agenda: r.Agenda, StartsAt: starts, EndsAt: ends,
			IsLive: r.IsLive, RecordingURL: r.RecordingURL, Registrants: []string{},
		})
	}

	cur, err := c.Cycles.Current.cycle()
	if err != nil {
		return nil, err
	}
	d.Office.Cycles.Current = cur
	for _, r := range c.Cycles.Previous {
		p, err := r.cycle()
		if err != nil {
			return nil, err
		}
		d.Office.Cycles.Previous = append(d.Office.Cycles.Previous, p)
	}

	d.Office.Assessments = c.Assessments
	return d, nil
}

func (r actorRecord) actor() (models.Actor, error) {
	role, err := models.ParseRole(r.Role)
	if err != nil {
		return models.Actor{}, fmt.Errorf("actor %q: %w", r.ID, err)
	}
	if r.ID == "" || r.Email == "" || r.Password == "" {
		return models.Actor{}, fmt.Errorf("actor %q: id, email and password are required", r.ID)
	}

	a := models.Actor{ID: r.ID, Email: r.Email, Name: r.Name, Role: role}
	switch role {
	case models.RoleStudent, models.RoleProStudent:
		a.Profile = &models.StudentProfile{
			Major:                r.Major,
			Semester:             r.Semester,
			Interests:            r.Interests,
			CompletedInternships: r.CompletedInternships,
		}
	case models.RoleCompany:
		if r.Size != "" && !models.ValidCompanySize(r.Size) {
			return models.Actor{}, fmt.Errorf("actor %s: unknown company size %q", r.ID, r.Size)
		}
		a.Profile = &models.CompanyProfile{
			Industry:    r.Industry,
			Size:        r.Size,
			Verified:    r.Verified,
			Logo:        r.Logo,
			Description: r.Description,
		}
	case models.RoleOffice, models.RoleFaculty:
		a.Profile = &models.StaffProfile{Department: r.Department, Position: r.Position}
	}
	return a, nil
}

func (r cycleRecord) cycle() (models.Cycle, error) {
	if r.ID == "" {
		return models.Cycle{}, nil
	}
	start, err := dates.Parse(r.Start)
	if err != nil {
		return models.Cycle{}, fmt.Errorf("cycle %s: %w", r.ID, err)
	}
	end, err := dates.Parse(r.End)
	if err != nil {
		return models.Cycle{}, fmt.Errorf("cycle %s: %w", r.ID, err)
	}
	return models.Cycle{ID: r.ID, Name: r.Name, Start: start, End: end, Status: r.Status}, nil
}
