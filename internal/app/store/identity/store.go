// Package identity holds the actor table: login, company registration and
// the company verification flag. The current actor of a client lives in a
// Session (session.go).
package identity

import (
	"net/mail"
	"sort"
	"sync"
	"time"

	"github.com/dalemusser/internhub/internal/app/system/idgen"
	"github.com/dalemusser/internhub/internal/app/system/normalize"
	"github.com/dalemusser/internhub/internal/app/system/outcome"
	"github.com/dalemusser/internhub/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const defaultLogo = "https://via.placeholder.com/150"

// Registration is the company sign-up form.
type Registration struct {
	Name        string
	Email       string
	Password    string
	Industry    string
	Size        string
	Logo        string
	Description string
	Documents   []string
}

// RegistrationListener is told about every successful company
// registration. The office ledger uses it to open a review.
type RegistrationListener func(company models.Actor, documents []string)

// Options configures a Store.
type Options struct {
	// BcryptCost for new password hashes. Zero means bcrypt.DefaultCost.
	BcryptCost int
	// Now returns the current time. Nil means time.Now.
	Now func() time.Time
}

// Store is the actor table. It is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	byEmail   map[string]*models.Actor
	byID      map[string]*models.Actor
	companies *idgen.Sequence
	listeners []RegistrationListener

	cost int
	now  func() time.Time
	log  *zap.Logger
}

// New builds an empty Store.
func New(opts Options, logger *zap.Logger) *Store {
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Store{
		byEmail:   make(map[string]*models.Actor),
		byID:      make(map[string]*models.Actor),
		companies: idgen.New("c"),
		cost:      opts.BcryptCost,
		now:       opts.Now,
		log:       logger,
	}
}

// Seed adds an actor with a plaintext password. It is meant for startup
// data; duplicates are rejected with ErrEmailInUse.
func (s *Store) Seed(a models.Actor, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return err
	}
	a.Email = normalize.Email(a.Email)
	a.PasswordHash = hash
	if a.CreatedAt.IsZero() {
		a.CreatedAt = s.now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[a.Email]; exists {
		return outcome.Fail(outcome.ErrEmailInUse, "Email already in use")
	}
	if _, exists := s.byID[a.ID]; exists {
		return outcome.Failf(outcome.ErrInvalid, "Actor id %s already exists", a.ID)
	}
	s.insertLocked(&a)
	s.companies.Observe(a.ID)
	// New company ids continue from the table size, as c<count+1>.
	s.companies.Skip(len(s.byID))
	return nil
}

// OnCompanyRegistered adds a registration listener.
func (s *Store) OnCompanyRegistered(fn RegistrationListener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// Authenticate checks credentials. Unknown email and wrong password are
// reported identically.
func (s *Store) Authenticate(email, password string) (models.Actor, error) {
	s.mu.RLock()
	a, ok := s.byEmail[normalize.Email(email)]
	var hash []byte
	if ok {
		hash = a.PasswordHash
	}
	s.mu.RUnlock()

	if !ok || bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
		return models.Actor{}, outcome.Fail(outcome.ErrInvalidCredentials, "Invalid email or password")
	}
	return s.snapshot(a), nil
}

// RegisterCompany creates an unverified company actor.
func (s *Store) RegisterCompany(reg Registration) (models.Actor, error) {
	email := normalize.Email(reg.Email)
	name := normalize.Name(reg.Name)

	switch {
	case name == "":
		return models.Actor{}, outcome.Fail(outcome.ErrInvalid, "Company name is required")
	case email == "":
		return models.Actor{}, outcome.Fail(outcome.ErrInvalid, "Email is required")
	case reg.Password == "":
		return models.Actor{}, outcome.Fail(outcome.ErrInvalid, "Password is required")
	case reg.Size != "" && !models.ValidCompanySize(reg.Size):
		return models.Actor{}, outcome.Fail(outcome.ErrInvalid, "Company size must be small, medium, large or corporate")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return models.Actor{}, outcome.Fail(outcome.ErrInvalid, "Email address is not valid")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), s.cost)
	if err != nil {
		return models.Actor{}, err
	}

	logo := reg.Logo
	if logo == "" {
		logo = defaultLogo
	}

	s.mu.Lock()
	if _, exists := s.byEmail[email]; exists {
		s.mu.Unlock()
		return models.Actor{}, outcome.Fail(outcome.ErrEmailInUse, "Email already in use")
	}
	a := &models.Actor{
		ID:           s.companies.Next(),
		Email:        email,
		Name:         name,
		Role:         models.RoleCompany,
		PasswordHash: hash,
		Profile: &models.CompanyProfile{
			Industry:    normalize.Name(reg.Industry),
			Size:        reg.Size,
			Verified:    false,
			Logo:        logo,
			Description: reg.Description,
		},
		CreatedAt: s.now(),
	}
	s.insertLocked(a)
	out := a.Clone()
	listeners := append([]RegistrationListener(nil), s.listeners...)
	s.mu.Unlock()

	s.log.Info("company registered",
		zap.String("company_id", out.ID),
		zap.String("email", out.Email))

	docs := normalize.List(reg.Documents)
	for _, fn := range listeners {
		fn(out, docs)
	}
	return out, nil
}

// SetCompanyVerified flips the verification flag of the company registered
// under email. It reports whether a company actor was found.
func (s *Store) SetCompanyVerified(email string, verified bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.byEmail[normalize.Email(email)]
	if !ok {
		return false
	}
	cp := a.Company()
	if cp == nil {
		return false
	}
	cp.Verified = verified
	return true
}

// Lookup returns the actor with the given id.
func (s *Store) Lookup(id string) (models.Actor, bool) {
	s.mu.RLock()
	a, ok := s.byID[id]
	s.mu.RUnlock()
	if !ok {
		return models.Actor{}, false
	}
	return s.snapshot(a), true
}

// LookupEmail returns the actor registered under email.
func (s *Store) LookupEmail(email string) (models.Actor, bool) {
	s.mu.RLock()
	a, ok := s.byEmail[normalize.Email(email)]
	s.mu.RUnlock()
	if !ok {
		return models.Actor{}, false
	}
	return s.snapshot(a), true
}

// Actors lists every actor ordered by id.
func (s *Store) Actors() []models.Actor {
	s.mu.RLock()
	out := make([]models.Actor, 0, len(s.byID))
	for _, a := range s.byID {
		out = append(out, a.Clone())
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Count is the number of actors.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

func (s *Store) insertLocked(a *models.Actor) {
	s.byEmail[a.Email] = a
	s.byID[a.ID] = a
}

func (s *Store) snapshot(a *models.Actor) models.Actor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return a.Clone()
}
