// Package insights computes the workforce summary: fixed-formula estimates
// over full collection scans, not an aggregation pipeline.
package insights

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"talentops/internal/domain/entity"
)

const (
	// DefaultHorizonDays is used when the request omits horizon_days.
	DefaultHorizonDays = 30
	MinHorizonDays     = 1
	MaxHorizonDays     = 365
)

type Store interface {
	Find(ctx context.Context, collection string, filter map[string]any, limit int64) ([]map[string]any, error)
}

// Summary is the metrics object returned alongside the narrative.
type Summary struct {
	WorkforceSize      int     `json:"workforce_size"`
	TaskCompletionRate float64 `json:"task_completion_rate"`
	OpenRoles          int     `json:"open_roles"`
	TicketsOpen        int     `json:"tickets_open"`
	UtilizationPct     float64 `json:"utilization_pct"`
	TimeHorizonDays    int     `json:"time_horizon_days"`
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Compute aggregates employee, task, job, ticket and timesheet counts for
// the given horizon and renders the fixed narrative sentence.
func (s *Service) Compute(ctx context.Context, horizonDays int) (Summary, string, error) {
	if s.store == nil {
		return Summary{}, "", entity.ErrStoreUnavailable
	}

	employees, err := s.store.Find(ctx, string(entity.KindEmployee), nil, 0)
	if err != nil {
		return Summary{}, "", err
	}
	tasks, err := s.store.Find(ctx, string(entity.KindTask), nil, 0)
	if err != nil {
		return Summary{}, "", err
	}
	jobs, err := s.store.Find(ctx, string(entity.KindJob), nil, 0)
	if err != nil {
		return Summary{}, "", err
	}
	tickets, err := s.store.Find(ctx, string(entity.KindTicket), nil, 0)
	if err != nil {
		return Summary{}, "", err
	}
	timesheets, err := s.store.Find(ctx, string(entity.KindTimesheet), nil, 0)
	if err != nil {
		return Summary{}, "", err
	}

	tasksDone := 0
	for _, task := range tasks {
		if task["status"] == "done" {
			tasksDone++
		}
	}
	openRoles := 0
	for _, job := range jobs {
		if job["status"] == "open" {
			openRoles++
		}
	}
	ticketsOpen := 0
	for _, ticket := range tickets {
		if ticket["status"] == "open" || ticket["status"] == "in_progress" {
			ticketsOpen++
		}
	}

	completionRate := 0.0
	if len(tasks) > 0 {
		completionRate = round2(float64(tasksDone) / float64(len(tasks)) * 100)
	}

	// Naive utilization proxy: average daily hours per employee over the
	// horizon, against an 8-hour day, capped at 100.
	utilization := 0.0
	if len(employees) > 0 {
		totalHours := 0.0
		for _, sheet := range timesheets {
			totalHours += numeric(sheet["hours"])
		}
		denominator := math.Max(1, float64(len(employees)))
		utilization = round2(math.Min(100, totalHours/denominator/float64(horizonDays)*100/8))
	}

	summary := Summary{
		WorkforceSize:      len(employees),
		TaskCompletionRate: completionRate,
		OpenRoles:          openRoles,
		TicketsOpen:        ticketsOpen,
		UtilizationPct:     utilization,
		TimeHorizonDays:    horizonDays,
	}
	return summary, narrative(summary), nil
}

func narrative(s Summary) string {
	return fmt.Sprintf(
		"Team size is %d. Task completion is at %s%%. Utilization estimates at %s%%. "+
			"You have %d open roles and %d active tickets. Consider prioritizing hiring "+
			"where utilization exceeds 85%% and triage tickets older than 7 days.",
		s.WorkforceSize,
		formatPct(s.TaskCompletionRate),
		formatPct(s.UtilizationPct),
		s.OpenRoles,
		s.TicketsOpen,
	)
}

func formatPct(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func numeric(raw any) float64 {
	switch v := raw.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}
