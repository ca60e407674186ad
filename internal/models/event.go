package models

import "time"

// Event is an entry on the club calendar: socials, races, meetings.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
}
