package domain

import (
	"math"
	"time"
)

// FracYear converts a calendar instant to fractional years with month
// resolution: year + (month-1)/12. All eligibility and recency math uses
// this scale.
func FracYear(t time.Time) float64 {
	return float64(t.Year()) + float64(int(t.Month())-1)/12
}

// RoundFracYear truncates a fractional year to the three-decimal
// precision the snapshot format stores.
func RoundFracYear(v float64) float64 {
	return math.Round(v*1000) / 1000
}
