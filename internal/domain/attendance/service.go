// Package attendance implements the check-in/check-out shortcuts. Every call
// records a fresh attendance document; same-day records are never merged, so
// one check-in plus one check-out yields two documents for the same date.
package attendance

import (
	"context"
	"time"

	"talentops/internal/domain/entity"
)

type Store interface {
	Insert(ctx context.Context, collection string, doc map[string]any) (string, error)
}

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// WithClock overrides the time source. Intended for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CheckIn records a present attendance document for today (UTC) with the
// check_in time set. clock defaults to the current UTC time in HH:MM form.
func (s *Service) CheckIn(ctx context.Context, userID, clock string) (string, error) {
	return s.record(ctx, userID, clock, "check_in")
}

// CheckOut records a present attendance document for today (UTC) with the
// check_out time set.
func (s *Service) CheckOut(ctx context.Context, userID, clock string) (string, error) {
	return s.record(ctx, userID, clock, "check_out")
}

func (s *Service) record(ctx context.Context, userID, clock, field string) (string, error) {
	if s.store == nil {
		return "", entity.ErrStoreUnavailable
	}

	now := s.now().UTC()
	if clock == "" {
		clock = now.Format("15:04")
	}

	doc := map[string]any{
		"user_id": userID,
		"date":    now.Format("2006-01-02"),
		"status":  "present",
		field:     clock,
	}
	return s.store.Insert(ctx, string(entity.KindAttendance), doc)
}
