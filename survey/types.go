// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

// MergedOption is a defined option joined with its observed count and rate.
type MergedOption struct {
	Label string   `json:"label"`
	Order *int     `json:"order,omitempty"`
	Score *float64 `json:"score,omitempty"`
	Count int      `json:"count"`
	Rate  float64  `json:"rate"`
}

// ScaleStatistics is the count-weighted summary of a scale question.
type ScaleStatistics struct {
	N                 int     `json:"n"`
	Mean              float64 `json:"mean"`
	StandardDeviation float64 `json:"standardDeviation"`
}

// Category is the render category of a question.
type Category string

const (
	CategoryText    Category = "TEXT"
	CategoryScale   Category = "SCALE"
	CategoryChoice  Category = "CHOICE"
	CategoryUnknown Category = "UNKNOWN"
)
