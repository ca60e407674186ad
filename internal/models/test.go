package models

import "time"

// TestType distinguishes the two safety tests the club runs.
type TestType string

const (
	TestCapsizeDrill TestType = "Capsize Drill"
	TestSwim         TestType = "Swim Test"
)

// TestOutcome is the recorded result for one slot of a test session.
type TestOutcome string

const (
	OutcomeNoShow TestOutcome = "No Show"
	OutcomeBooked TestOutcome = "Test Booked"
	OutcomeFailed TestOutcome = "Failed"
	OutcomePassed TestOutcome = "Passed"
)

// TestSlot is one bookable place in a test session.
type TestSlot struct {
	Number   int         `json:"number"`
	MemberID string      `json:"memberId,omitempty"`
	Outcome  TestOutcome `json:"outcome,omitempty"`
}

// Test is a swim or capsize test session with bookable slots.
type Test struct {
	ID    string     `json:"id"`
	URL   string     `json:"url,omitempty"`
	Title string     `json:"title"`
	Type  TestType   `json:"type,omitempty"`
	Date  time.Time  `json:"date"`
	Slots []TestSlot `json:"slots,omitempty"`
}
