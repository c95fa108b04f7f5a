// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import "math"

// ComputeScaleStatistics calculates the count-weighted mean and standard
// deviation over options that have a score. Returns nil when the total
// weight is zero.
//
//	mean     = Σ(score·count) / Σcount
//	variance = Σ(score²·count) / Σcount - mean²
func ComputeScaleStatistics(merged []MergedOption) *ScaleStatistics {
	var total int
	var sum, sumSq float64

	for _, o := range merged {
		if o.Score == nil {
			continue
		}
		c := o.Count
		if c < 0 {
			c = 0
		}
		s := *o.Score
		total += c
		sum += s * float64(c)
		sumSq += s * s * float64(c)
	}

	if total <= 0 {
		return nil
	}

	mean := sum / float64(total)
	// Rounding can push the variance slightly below zero
	variance := math.Max(0, sumSq/float64(total)-mean*mean)

	return &ScaleStatistics{
		N:                 total,
		Mean:              mean,
		StandardDeviation: math.Sqrt(variance),
	}
}
