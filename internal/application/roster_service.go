package application

import (
	"context"
	"fmt"

	"github.com/labrota/rota/internal/domain"
	"github.com/labrota/rota/internal/ports"
)

// RosterService validates the roster before a real run and reports who is
// currently eligible for consideration.
type RosterService struct {
	roster ports.RosterSource
	clock  ports.Clock
}

// RosterReport summarises one roster validation pass.
type RosterReport struct {
	Total    int
	Eligible []domain.Member
	Today    float64
}

func NewRosterService(roster ports.RosterSource, clock ports.Clock) *RosterService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &RosterService{roster: roster, clock: clock}
}

func (s *RosterService) Check(ctx context.Context) (RosterReport, error) {
	members, err := s.roster.Load(ctx)
	if err != nil {
		return RosterReport{}, fmt.Errorf("load roster: %w", err)
	}

	today := domain.FracYear(s.clock.Now())
	report := RosterReport{Total: len(members), Today: today}
	for i, member := range members {
		if err := member.Validate(); err != nil {
			return RosterReport{}, fmt.Errorf("roster entry %d: %w", i+1, err)
		}
		if member.EligibleAt(today) {
			report.Eligible = append(report.Eligible, member)
		}
	}

	return report, nil
}
