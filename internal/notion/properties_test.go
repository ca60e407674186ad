package notion

import (
	"testing"
	"time"

	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccbc-ox/boathouse-api/internal/models"
)

func title(text string) *notionapi.TitleProperty {
	return &notionapi.TitleProperty{Title: []notionapi.RichText{{PlainText: text}}}
}

func richText(text string) *notionapi.RichTextProperty {
	return &notionapi.RichTextProperty{RichText: []notionapi.RichText{{PlainText: text}}}
}

func selectOpt(name string) *notionapi.SelectProperty {
	return &notionapi.SelectProperty{Select: notionapi.Option{Name: name}}
}

func statusOpt(name string) *notionapi.StatusProperty {
	return &notionapi.StatusProperty{Status: notionapi.Option{Name: name}}
}

func relation(ids ...string) *notionapi.RelationProperty {
	p := &notionapi.RelationProperty{}
	for _, id := range ids {
		p.Relation = append(p.Relation, notionapi.Relation{ID: notionapi.PageID(id)})
	}
	return p
}

func dateAt(t time.Time) *notionapi.DateProperty {
	d := notionapi.Date(t)
	return &notionapi.DateProperty{Date: &notionapi.DateObject{Start: &d}}
}

func page(id string, props notionapi.Properties) notionapi.Page {
	return notionapi.Page{ID: notionapi.ObjectID(id), Properties: props}
}

func TestPropTextJoinsFragments(t *testing.T) {
	props := notionapi.Properties{
		"Notes": &notionapi.RichTextProperty{RichText: []notionapi.RichText{
			{PlainText: "09:00-10:30, "},
			{PlainText: "14:00-15:00"},
		}},
	}
	assert.Equal(t, "09:00-10:30, 14:00-15:00", propText(props, "Notes"))
}

func TestPropHelpersTolerateMissingAndWrongTypes(t *testing.T) {
	props := notionapi.Properties{"Name": title("x")}

	assert.Empty(t, propText(props, "Absent"))
	assert.Empty(t, propSelect(props, "Absent"))
	assert.Empty(t, propStatus(props, "Name"))
	assert.False(t, propCheckbox(props, "Name"))
	assert.Nil(t, propRelationIDs(props, "Name"))

	start, end := propDates(props, "Name")
	assert.True(t, start.IsZero())
	assert.True(t, end.IsZero())
}

func TestMapMember(t *testing.T) {
	member, ok := mapMember(page("m1", notionapi.Properties{
		"Full Name":      title("Ada Lovelace"),
		"Email Address":  &notionapi.EmailProperty{Email: "ada@example.org"},
		"Member Type":    selectOpt("Rower"),
		"Cox Experience": selectOpt("Experienced"),
	}))

	require.True(t, ok)
	assert.Equal(t, "m1", member.ID)
	assert.Equal(t, "Ada Lovelace", member.Name)
	assert.Equal(t, "ada@example.org", member.Email)
	assert.Equal(t, "Rower", member.MemberType)
	assert.Equal(t, models.CoxExperienced, member.CoxExperience)
}

func TestMapMemberSkipsNameless(t *testing.T) {
	_, ok := mapMember(page("m1", notionapi.Properties{
		"Email Address": &notionapi.EmailProperty{Email: "draft@example.org"},
	}))
	assert.False(t, ok)
}

func TestMapMemberEmailFallsBackToText(t *testing.T) {
	member, ok := mapMember(page("m1", notionapi.Properties{
		"Full Name":     title("Ada Lovelace"),
		"Email Address": richText("ada@example.org"),
	}))
	require.True(t, ok)
	assert.Equal(t, "ada@example.org", member.Email)
}

func TestMapAvailability(t *testing.T) {
	week := mapAvailability(page("m1", notionapi.Properties{
		"Full Name":            title("Ada Lovelace"),
		"Unavailable Monday":   richText("09:00-10:30, 14:00-15:00"),
		"Unavailable Thursday": richText("anything the user typed"),
	}))

	assert.Equal(t, "m1", week.MemberID)
	assert.Equal(t, "Ada Lovelace", week.MemberName)
	assert.Equal(t, []models.TimeRange{
		{Start: "09:00", End: "10:30"},
		{Start: "14:00", End: "15:00"},
	}, week.Days[models.Monday])
	assert.Empty(t, week.Days[models.Thursday])
	assert.Empty(t, week.Days[models.Sunday])
}

func TestMapOuting(t *testing.T) {
	start := time.Date(2026, time.September, 9, 7, 0, 0, 0, time.UTC)
	outing := mapOuting(page("o1", notionapi.Properties{
		"Name":           title("W1 Water Outing"),
		"Term":           selectOpt("Michaelmas"),
		"Shell":          selectOpt("Isis"),
		"OutingStatus":   statusOpt("Outing Confirmed"),
		"Publish Outing": &notionapi.CheckboxProperty{Checkbox: true},
		"StartDateTime":  dateAt(start),
		"Cox":            relation("m1"),
		"CoxStatus":      statusOpt("Available"),
		"2 Seat":         relation("m2"),
		"2 Seat Status":  statusOpt("Awaiting Approval"),
		"Sub1":           relation("m3"),
	}))

	assert.Equal(t, "o1", outing.ID)
	assert.Equal(t, "W1 Water Outing", outing.Name)
	assert.Equal(t, models.OutingConfirmed, outing.Status)
	assert.True(t, outing.Published)
	assert.True(t, outing.Start.Equal(start))

	assert.Equal(t, models.SeatAssignment{MemberID: "m1", Status: models.SeatAvailable}, outing.Seats[models.SeatCox])
	assert.Equal(t, models.SeatAssignment{MemberID: "m2", Status: models.SeatAwaitingApproval}, outing.Seats[models.SeatTwo])
	assert.Equal(t, models.SeatAssignment{MemberID: "m3"}, outing.Seats[models.SeatSub1])
	_, filled := outing.Seats[models.SeatBow]
	assert.False(t, filled)
}

func TestSeatStatusColumnNaming(t *testing.T) {
	assert.Equal(t, "CoxStatus", seatStatusColumn(models.SeatCox))
	assert.Equal(t, "StrokeStatus", seatStatusColumn(models.SeatStroke))
	assert.Equal(t, "BowStatus", seatStatusColumn(models.SeatBow))
	assert.Equal(t, "BankRiderStatus", seatStatusColumn(models.SeatBankRider))
	assert.Equal(t, "Sub2Status", seatStatusColumn(models.SeatSub2))
	assert.Equal(t, "7 Seat Status", seatStatusColumn(models.SeatSeven))
}

func TestMapTest(t *testing.T) {
	date := time.Date(2026, time.September, 12, 10, 0, 0, 0, time.UTC)
	test := mapTest(page("t1", notionapi.Properties{
		"OURC Test":      title("Capsize Drill Session"),
		"Test Type":      selectOpt("Capsize Drill"),
		"Date":           dateAt(date),
		"Slot 1":         relation("m1"),
		"Slot 1 Outcome": statusOpt("Passed"),
		"Slot 3":         relation("m2"),
	}))

	assert.Equal(t, "Capsize Drill Session", test.Title)
	assert.Equal(t, models.TestCapsizeDrill, test.Type)
	require.Len(t, test.Slots, 6)
	assert.Equal(t, models.TestSlot{Number: 1, MemberID: "m1", Outcome: models.OutcomePassed}, test.Slots[0])
	assert.Equal(t, models.TestSlot{Number: 2}, test.Slots[1])
	assert.Equal(t, "m2", test.Slots[2].MemberID)
}

func TestMapCoxingDay(t *testing.T) {
	day := mapCoxingDay(page("c1", notionapi.Properties{
		"Date":     dateAt(time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)),
		"Early AM": relation("m1", "m2"),
		"Early PM": relation("m3"),
	}))

	assert.Equal(t, "2026-09-07", day.Date)
	assert.Equal(t, []string{"m1", "m2"}, day.Slot(models.SlotEarlyAM))
	assert.Equal(t, []string{"m3"}, day.Slot(models.SlotMidPM))
	assert.Empty(t, day.Slot(models.SlotLatePM))
}

func TestMapCoxingDayWithoutDate(t *testing.T) {
	day := mapCoxingDay(page("c1", notionapi.Properties{
		"Early AM": relation("m1"),
	}))
	assert.Empty(t, day.Date)
}

func externalFile(url string) *notionapi.FilesProperty {
	return &notionapi.FilesProperty{Files: []notionapi.File{
		{External: &notionapi.FileObject{URL: url}},
	}}
}

func TestMapEvent(t *testing.T) {
	start := time.Date(2026, time.November, 28, 18, 0, 0, 0, time.UTC)
	event, ok := mapEvent(page("e1", notionapi.Properties{
		"Event":         title("Christ Church Regatta"),
		"Description":   richText("Novice racing, all crews entered"),
		"Date":          dateAt(start),
		"Files & media": externalFile("https://example.org/regatta.jpg"),
	}))

	require.True(t, ok)
	assert.Equal(t, "e1", event.ID)
	assert.Equal(t, "Christ Church Regatta", event.Title)
	assert.Equal(t, "Novice racing, all crews entered", event.Description)
	assert.True(t, event.Start.Equal(start))
	assert.Equal(t, "https://example.org/regatta.jpg", event.ImageURL)
}

func TestMapEventSkipsUndatedRows(t *testing.T) {
	_, ok := mapEvent(page("e1", notionapi.Properties{
		"Event": title("Draft announcement"),
	}))
	assert.False(t, ok)
}

func TestPropFileURLPrefersHostedFile(t *testing.T) {
	props := notionapi.Properties{
		"Files & media": &notionapi.FilesProperty{Files: []notionapi.File{
			{File: &notionapi.FileObject{URL: "https://notion.example/hosted.png"}},
		}},
	}
	assert.Equal(t, "https://notion.example/hosted.png", propFileURL(props, "Files & media"))
	assert.Empty(t, propFileURL(props, "Absent"))
}

func TestMapOutingReport(t *testing.T) {
	report := mapOutingReport(page("o1", notionapi.Properties{
		"Outing Summary": richText("Steady state to Iffley"),
		"Boat Feel":      richText("Balanced through the middle"),
		"Next Focus":     richText("Finishes"),
	}))

	assert.Equal(t, "Steady state to Iffley", report.OutingSummary)
	assert.Equal(t, "Balanced through the middle", report.BoatFeel)
	assert.Equal(t, "Finishes", report.NextFocus)
	assert.Empty(t, report.CoachFeedback)
}
