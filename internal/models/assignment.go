package models

import "time"

// AssignmentState is the draft seat→member mapping a user is editing for an
// outing. It is held in the durable state cache, keyed by outing ID, and
// expires ten minutes after the last save.
type AssignmentState struct {
	Assignments map[string]string `json:"assignments"`
	LastUpdated time.Time         `json:"lastUpdated"`
}
