// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import "strings"

// ClassifyType maps a raw upstream question type to a render category.
// Rules are checked in order against the uppercased type:
//
//	contains TEXT    -> TEXT
//	contains SCALE   -> SCALE
//	contains UNKNOWN -> SCALE
//	contains CHOICE  -> CHOICE
//
// Any other value is returned uppercased; callers render it like a choice.
//
// UNKNOWN questions are shown as scales for display only. This is a heuristic
// carried over from the form renderer, not a statement about the question.
func ClassifyType(raw string) Category {
	x := strings.ToUpper(raw)
	switch {
	case strings.Contains(x, "TEXT"):
		return CategoryText
	case strings.Contains(x, "SCALE"):
		return CategoryScale
	case strings.Contains(x, "UNKNOWN"):
		return CategoryScale
	case strings.Contains(x, "CHOICE"):
		return CategoryChoice
	case x == "":
		return CategoryUnknown
	default:
		return Category(x)
	}
}

// IsKnown reports whether c is one of the built-in categories.
func (c Category) IsKnown() bool {
	switch c {
	case CategoryText, CategoryScale, CategoryChoice:
		return true
	}
	return false
}
