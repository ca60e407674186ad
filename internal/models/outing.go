package models

import "time"

// Seat is a named crew position on an outing.
type Seat string

const (
	SeatCox       Seat = "Cox"
	SeatStroke    Seat = "Stroke"
	SeatSeven     Seat = "7 Seat"
	SeatSix       Seat = "6 Seat"
	SeatFive      Seat = "5 Seat"
	SeatFour      Seat = "4 Seat"
	SeatThree     Seat = "3 Seat"
	SeatTwo       Seat = "2 Seat"
	SeatBow       Seat = "Bow"
	SeatBankRider Seat = "CoachBankRider"
	SeatSub1      Seat = "Sub1"
	SeatSub2      Seat = "Sub2"
	SeatSub3      Seat = "Sub3"
	SeatSub4      Seat = "Sub4"
)

// CrewSeats lists seats in the order they appear on a crew sheet.
var CrewSeats = []Seat{
	SeatCox, SeatStroke, SeatSeven, SeatSix, SeatFive, SeatFour,
	SeatThree, SeatTwo, SeatBow, SeatBankRider,
	SeatSub1, SeatSub2, SeatSub3, SeatSub4,
}

// SeatStatus tracks a rower's response for a seat.
type SeatStatus string

const (
	SeatAvailable        SeatStatus = "Available"
	SeatMaybeAvailable   SeatStatus = "Maybe Available"
	SeatAwaitingApproval SeatStatus = "Awaiting Approval"
	SeatNotAvailable     SeatStatus = "Not Available"
)

// OutingStatus is the lifecycle state of an outing.
type OutingStatus string

const (
	OutingProvisional OutingStatus = "Provisional Outing"
	OutingConfirmed   OutingStatus = "Outing Confirmed"
	OutingCancelled   OutingStatus = "Outing Cancelled"
)

// SeatAssignment pairs a member with their response status for one seat.
type SeatAssignment struct {
	MemberID string     `json:"memberId"`
	Status   SeatStatus `json:"status,omitempty"`
}

// OutingReport is the post-outing debrief stored on the outing page itself,
// one rich-text column per field.
type OutingReport struct {
	OutingSummary   string `json:"outingSummary"`
	BoatFeel        string `json:"boatFeel"`
	OutingSuccesses string `json:"outingSuccesses"`
	NextFocus       string `json:"nextFocus"`
	CoachFeedback   string `json:"coachFeedback"`
}

// Outing is a scheduled rowing session with assigned seats.
type Outing struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	Term           string                  `json:"term,omitempty"`
	Week           string                  `json:"week,omitempty"`
	Div            string                  `json:"div,omitempty"`
	Type           string                  `json:"type,omitempty"`
	Shell          string                  `json:"shell,omitempty"`
	Status         OutingStatus            `json:"status,omitempty"`
	Published      bool                    `json:"published"`
	Start          time.Time               `json:"start"`
	End            time.Time               `json:"end,omitempty"`
	SessionDetails string                  `json:"sessionDetails,omitempty"`
	Seats          map[Seat]SeatAssignment `json:"seats,omitempty"`
}
