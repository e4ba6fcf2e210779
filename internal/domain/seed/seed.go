// Package seed populates the fixed demo organization: two executives, two
// team leads and five employees across Engineering and Design, plus three
// teams. Seeding is idempotent by user email, employee user_id and team
// name; the check-then-create sequence is not atomic, so the store-level
// unique indexes are the real guard under concurrent invocation.
package seed

import (
	"context"

	"github.com/rs/zerolog"

	"talentops/internal/domain/entity"
)

type Store interface {
	Insert(ctx context.Context, collection string, doc map[string]any) (string, error)
	Find(ctx context.Context, collection string, filter map[string]any, limit int64) ([]map[string]any, error)
	FindOne(ctx context.Context, collection string, filter map[string]any) (map[string]any, bool, error)
}

// Result reports the identifiers of the seeded organization.
type Result struct {
	Executives []string `json:"executives"`
	TeamLeads  []string `json:"team_leads"`
	Employees  []string `json:"employees"`
	Teams      []string `json:"teams"`
}

type Service struct {
	store Store
	log   zerolog.Logger
}

func NewService(store Store, log zerolog.Logger) *Service {
	return &Service{store: store, log: log}
}

// Available reports whether the seeder has a store to write to.
func (s *Service) Available() bool {
	return s.store != nil
}

// AutoSeedIfEmpty runs the demo seed when the user collection is empty.
// Every failure is logged and swallowed so startup never fails on seeding.
func (s *Service) AutoSeedIfEmpty(ctx context.Context) {
	if s.store == nil {
		return
	}
	users, err := s.store.Find(ctx, string(entity.KindUser), nil, 1)
	if err != nil {
		s.log.Warn().Err(err).Msg("auto-seed skipped: user lookup failed")
		return
	}
	if len(users) > 0 {
		return
	}
	if _, err := s.SeedDemo(ctx); err != nil {
		s.log.Warn().Err(err).Msg("auto-seed failed")
		return
	}
	s.log.Info().Msg("seeded demo organization")
}

// SeedDemo builds the fixed three-level organization and returns the
// resulting identifiers. Existing records are reused, never duplicated.
func (s *Service) SeedDemo(ctx context.Context) (Result, error) {
	if s.store == nil {
		return Result{}, entity.ErrStoreUnavailable
	}

	ceo, err := s.getOrCreateUser(ctx, "Ava Patel", "ava.patel@demo.co", "executive", "Executive")
	if err != nil {
		return Result{}, err
	}
	vpOps, err := s.getOrCreateUser(ctx, "Liam Chen", "liam.chen@demo.co", "executive", "Executive")
	if err != nil {
		return Result{}, err
	}

	engLead, err := s.getOrCreateUser(ctx, "Maya Ross", "maya.ross@demo.co", "team_lead", "Engineering")
	if err != nil {
		return Result{}, err
	}
	designLead, err := s.getOrCreateUser(ctx, "Noah Green", "noah.green@demo.co", "team_lead", "Design")
	if err != nil {
		return Result{}, err
	}

	emma, err := s.getOrCreateUser(ctx, "Emma Johnson", "emma.johnson@demo.co", "employee", "Engineering")
	if err != nil {
		return Result{}, err
	}
	oliver, err := s.getOrCreateUser(ctx, "Oliver Smith", "oliver.smith@demo.co", "employee", "Engineering")
	if err != nil {
		return Result{}, err
	}
	sophia, err := s.getOrCreateUser(ctx, "Sophia Davis", "sophia.davis@demo.co", "employee", "Engineering")
	if err != nil {
		return Result{}, err
	}
	jack, err := s.getOrCreateUser(ctx, "Jack Wilson", "jack.wilson@demo.co", "employee", "Design")
	if err != nil {
		return Result{}, err
	}
	mia, err := s.getOrCreateUser(ctx, "Mia Thompson", "mia.thompson@demo.co", "employee", "Design")
	if err != nil {
		return Result{}, err
	}

	employees := []employeeSpec{
		{ceo, "EMP1001", "Chief Executive Officer", "", "Executive", "NYC", 300000},
		{vpOps, "EMP1002", "VP, Operations", ceo, "Executive", "NYC", 220000},
		{engLead, "EMP2001", "Engineering Lead", vpOps, "Engineering", "Remote", 180000},
		{designLead, "EMP3001", "Design Lead", vpOps, "Design", "Remote", 170000},
		{emma, "EMP2002", "Senior Software Engineer", engLead, "Engineering", "Remote", 150000},
		{oliver, "EMP2003", "Software Engineer", engLead, "Engineering", "Remote", 130000},
		{sophia, "EMP2004", "QA Engineer", engLead, "Engineering", "Remote", 120000},
		{jack, "EMP3002", "Product Designer", designLead, "Design", "Remote", 125000},
		{mia, "EMP3003", "UX Researcher", designLead, "Design", "Remote", 115000},
	}
	for _, spec := range employees {
		if err := s.ensureEmployee(ctx, spec); err != nil {
			return Result{}, err
		}
	}

	teams := []teamSpec{
		{"Engineering", engLead, []string{engLead, emma, oliver, sophia}},
		{"Design", designLead, []string{designLead, jack, mia}},
		{"Executive", ceo, []string{ceo, vpOps}},
	}
	for _, spec := range teams {
		if err := s.ensureTeam(ctx, spec); err != nil {
			return Result{}, err
		}
	}

	return Result{
		Executives: []string{ceo, vpOps},
		TeamLeads:  []string{engLead, designLead},
		Employees:  []string{emma, oliver, sophia, jack, mia},
		Teams:      []string{"Engineering", "Design", "Executive"},
	}, nil
}

type employeeSpec struct {
	userID     string
	employeeID string
	title      string
	managerID  string
	team       string
	location   string
	salary     float64
}

type teamSpec struct {
	name       string
	leadUserID string
	members    []string
}

func (s *Service) getOrCreateUser(ctx context.Context, name, email, role, department string) (string, error) {
	existing, found, err := s.store.FindOne(ctx, string(entity.KindUser), map[string]any{"email": email})
	if err != nil {
		return "", err
	}
	if found {
		return docID(existing), nil
	}

	return s.store.Insert(ctx, string(entity.KindUser), map[string]any{
		"name":       name,
		"email":      email,
		"role":       role,
		"department": department,
		"is_active":  true,
	})
}

func (s *Service) ensureEmployee(ctx context.Context, spec employeeSpec) error {
	_, found, err := s.store.FindOne(ctx, string(entity.KindEmployee), map[string]any{"user_id": spec.userID})
	if err != nil {
		return err
	}
	if found {
		return nil
	}

	doc := map[string]any{
		"user_id":     spec.userID,
		"employee_id": spec.employeeID,
		"title":       spec.title,
		"team":        spec.team,
		"location":    spec.location,
		"salary":      spec.salary,
	}
	if spec.managerID != "" {
		doc["manager_id"] = spec.managerID
	}
	_, err = s.store.Insert(ctx, string(entity.KindEmployee), doc)
	return err
}

func (s *Service) ensureTeam(ctx context.Context, spec teamSpec) error {
	_, found, err := s.store.FindOne(ctx, string(entity.KindTeam), map[string]any{"name": spec.name})
	if err != nil {
		return err
	}
	if found {
		return nil
	}

	_, err = s.store.Insert(ctx, string(entity.KindTeam), map[string]any{
		"name":         spec.name,
		"lead_user_id": spec.leadUserID,
		"members":      spec.members,
	})
	return err
}

func docID(doc map[string]any) string {
	id, _ := doc["id"].(string)
	return id
}
