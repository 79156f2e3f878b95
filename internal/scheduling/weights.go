// Package scheduling implements the recency weighting and the weighted
// shuffle underlying the rotation queue.
package scheduling

import "math"

// MaxElapsed caps the elapsed span (fractional years) fed into the
// sigmoid, so far-past sentinels saturate instead of overflowing the
// exponent.
const MaxElapsed = 10.0

// RecencyWeights maps last-presentation instants (fractional years) to
// sampling weights, increasing with elapsed time. The curve is
// sigmoid(10*dt - 10): half weight at a one-unit gap, flattening toward 0
// for just-presented and 1 for long-ago speakers. Weights are relative
// sampling mass, not probabilities.
func RecencyWeights(lastPresented []float64, today float64) []float64 {
	weights := make([]float64, len(lastPresented))
	for i, last := range lastPresented {
		dt := math.Min(today-last, MaxElapsed)
		weights[i] = sigmoid(10*dt - 10)
	}
	return weights
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
