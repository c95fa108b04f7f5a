// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package googleforms reads the caller's forms and responses from the Google
// Drive and Google Forms REST APIs and normalizes them into the models types.
//
// Every call takes the user's OAuth access token; the package never runs the
// authorization flow itself.
//
// # Question Types
//
// Forms questions are reduced to a small set of types:
//
//   - choice questions become CHOICE, or CHOICE_MULTI for checkboxes
//   - text, date and time questions become TEXT
//   - linear scales become SCALE with one option per step ("1 (bad)", "2", ...)
//   - each grid row becomes its own CHOICE or CHOICE_MULTI question titled "group - row"
//
// Anything else is reported as UNKNOWN.
package googleforms
