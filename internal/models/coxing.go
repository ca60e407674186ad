package models

import "time"

// TimeSlot is one of the four coarse coxing availability windows per day.
type TimeSlot string

const (
	SlotEarlyAM TimeSlot = "earlyAM" // 06:00-08:00
	SlotMidAM   TimeSlot = "midAM"   // 08:00-12:00
	SlotMidPM   TimeSlot = "midPM"   // 12:00-17:00
	SlotLatePM  TimeSlot = "latePM"  // 17:00-20:00
)

// TimeSlots lists the slots in day order.
var TimeSlots = []TimeSlot{SlotEarlyAM, SlotMidAM, SlotMidPM, SlotLatePM}

// SlotForTime maps an outing start time to its coxing availability slot.
// Times outside the defined windows fall back to midPM.
func SlotForTime(t time.Time) TimeSlot {
	hour := t.Hour()
	switch {
	case hour >= 6 && hour < 8:
		return SlotEarlyAM
	case hour >= 8 && hour < 12:
		return SlotMidAM
	case hour >= 12 && hour < 17:
		return SlotMidPM
	case hour >= 17 && hour < 20:
		return SlotLatePM
	default:
		return SlotMidPM
	}
}

// CoxingDay is one date row of the coxing availability database: per slot, the
// IDs of members who have put themselves down as available to cox.
type CoxingDay struct {
	ID      string   `json:"id"`
	Date    string   `json:"date"` // ISO date, YYYY-MM-DD
	EarlyAM []string `json:"earlyAM"`
	MidAM   []string `json:"midAM"`
	MidPM   []string `json:"midPM"`
	LatePM  []string `json:"latePM"`
}

// Slot returns the member IDs signed up for the given slot.
func (d CoxingDay) Slot(slot TimeSlot) []string {
	switch slot {
	case SlotEarlyAM:
		return d.EarlyAM
	case SlotMidAM:
		return d.MidAM
	case SlotMidPM:
		return d.MidPM
	case SlotLatePM:
		return d.LatePM
	default:
		return nil
	}
}

// SetSlot replaces the member IDs for the given slot.
func (d *CoxingDay) SetSlot(slot TimeSlot, memberIDs []string) {
	switch slot {
	case SlotEarlyAM:
		d.EarlyAM = memberIDs
	case SlotMidAM:
		d.MidAM = memberIDs
	case SlotMidPM:
		d.MidPM = memberIDs
	case SlotLatePM:
		d.LatePM = memberIDs
	}
}
