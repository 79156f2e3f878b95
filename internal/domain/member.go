package domain

import (
	"fmt"
	"strings"
	"time"
)

// MemberID is the canonical "Given Family" identity of a roster member.
type MemberID string

const (
	// TenureLead is the minimum fractional-year gap between a member's
	// start date and today before they can be considered for a slot.
	TenureLead = 1.0 / 6

	// RecentWindow is how long after presenting a member stays out of
	// the active pool.
	RecentWindow = 0.3

	// NeverPresented marks members with no archive match. The elapsed
	// clamp in the recency weighting maps it to maximal weight.
	NeverPresented = 1.0
)

type Member struct {
	GivenName     string
	FamilyName    string
	Affiliation   string
	Consider      bool
	StartDate     time.Time
	LastPresented float64
}

func (m Member) ID() MemberID {
	return MemberID(strings.TrimSpace(m.GivenName) + " " + strings.TrimSpace(m.FamilyName))
}

func (m Member) Validate() error {
	if strings.TrimSpace(m.GivenName) == "" {
		return fmt.Errorf("given name is required")
	}
	if strings.TrimSpace(m.FamilyName) == "" {
		return fmt.Errorf("family name is required")
	}
	return nil
}

// fracYearEps absorbs float error in fractional-year values, which are
// multiples of 1/12 and carry rounding noise far below month resolution.
const fracYearEps = 1e-9

// EligibleAt reports whether the member may be considered for scheduling
// at the given fractional-year instant: flagged and past the tenure lead.
// The boundary is inclusive: exactly TenureLead of tenure qualifies.
func (m Member) EligibleAt(today float64) bool {
	return m.Consider && FracYear(m.StartDate) <= today-TenureLead+fracYearEps
}

// RecentlyPresented reports whether the member presented inside the
// cool-down window ending at today.
func (m Member) RecentlyPresented(today float64) bool {
	return m.LastPresented > today-RecentWindow
}
