package models

import "strings"

// FlagStatus is the river-authority safety classification. It restricts which
// experience levels may cox and whether outings run at all.
type FlagStatus string

const (
	FlagGreen     FlagStatus = "green"
	FlagLightBlue FlagStatus = "light-blue"
	FlagDarkBlue  FlagStatus = "dark-blue"
	FlagRed       FlagStatus = "red"
	FlagGrey      FlagStatus = "grey"
	FlagBlack     FlagStatus = "black"
)

// Flag is the current river condition as reported by the flag service.
type Flag struct {
	Status     FlagStatus `json:"status"`
	StatusText string     `json:"statusText"`
	SetDate    string     `json:"setDate,omitempty"`
	Notice     string     `json:"notice,omitempty"`
}

// ParseFlagStatus normalises upstream status text ("Light Blue", "GREEN") to
// the enum. Unrecognised text maps to grey: no restriction data.
func ParseFlagStatus(raw string) FlagStatus {
	normalised := strings.ToLower(strings.TrimSpace(raw))
	normalised = strings.ReplaceAll(normalised, " ", "-")
	normalised = strings.ReplaceAll(normalised, "_", "-")

	switch FlagStatus(normalised) {
	case FlagGreen, FlagLightBlue, FlagDarkBlue, FlagRed, FlagGrey, FlagBlack:
		return FlagStatus(normalised)
	default:
		return FlagGrey
	}
}
