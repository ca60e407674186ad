package notion

import (
	"strings"
	"time"

	"github.com/jomei/notionapi"
)

// Extraction helpers. The Notion schema is maintained by hand in the club's
// workspace, so every accessor tolerates a missing property or an unexpected
// property type and returns a zero value instead.

// propText flattens a title or rich-text property to its plain text.
func propText(props notionapi.Properties, name string) string {
	switch p := props[name].(type) {
	case *notionapi.TitleProperty:
		return joinRichText(p.Title)
	case *notionapi.RichTextProperty:
		return joinRichText(p.RichText)
	default:
		return ""
	}
}

func joinRichText(parts []notionapi.RichText) string {
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(part.PlainText)
	}
	return strings.TrimSpace(b.String())
}

// propEmail reads an email property, falling back to text for workspaces
// where the column was created as rich text.
func propEmail(props notionapi.Properties, name string) string {
	if p, ok := props[name].(*notionapi.EmailProperty); ok {
		return p.Email
	}
	return propText(props, name)
}

// propSelect reads a select option name, falling back to text.
func propSelect(props notionapi.Properties, name string) string {
	if p, ok := props[name].(*notionapi.SelectProperty); ok {
		return p.Select.Name
	}
	return propText(props, name)
}

// propStatus reads a status option name.
func propStatus(props notionapi.Properties, name string) string {
	if p, ok := props[name].(*notionapi.StatusProperty); ok {
		return p.Status.Name
	}
	return ""
}

// propCheckbox reads a checkbox value.
func propCheckbox(props notionapi.Properties, name string) bool {
	if p, ok := props[name].(*notionapi.CheckboxProperty); ok {
		return p.Checkbox
	}
	return false
}

// propNumber reads a number value.
func propNumber(props notionapi.Properties, name string) float64 {
	if p, ok := props[name].(*notionapi.NumberProperty); ok {
		return p.Number
	}
	return 0
}

// propRelationIDs lists the page IDs a relation property points at.
func propRelationIDs(props notionapi.Properties, name string) []string {
	p, ok := props[name].(*notionapi.RelationProperty)
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(p.Relation))
	for _, rel := range p.Relation {
		ids = append(ids, string(rel.ID))
	}
	return ids
}

// propFileURL returns the URL of the first attachment on a files property,
// whether it is hosted by Notion or linked externally.
func propFileURL(props notionapi.Properties, name string) string {
	p, ok := props[name].(*notionapi.FilesProperty)
	if !ok || len(p.Files) == 0 {
		return ""
	}
	file := p.Files[0]
	switch {
	case file.File != nil:
		return file.File.URL
	case file.External != nil:
		return file.External.URL
	}
	return ""
}

// propDates reads a date property's start and end. Zero times mean unset.
func propDates(props notionapi.Properties, name string) (time.Time, time.Time) {
	p, ok := props[name].(*notionapi.DateProperty)
	if !ok || p.Date == nil {
		return time.Time{}, time.Time{}
	}
	var start, end time.Time
	if p.Date.Start != nil {
		start = time.Time(*p.Date.Start)
	}
	if p.Date.End != nil {
		end = time.Time(*p.Date.End)
	}
	return start, end
}

// Builders for update payloads.

func titleProp(text string) notionapi.TitleProperty {
	return notionapi.TitleProperty{Title: []notionapi.RichText{{Text: &notionapi.Text{Content: text}}}}
}

func richTextProp(text string) notionapi.RichTextProperty {
	if text == "" {
		return notionapi.RichTextProperty{RichText: []notionapi.RichText{}}
	}
	return notionapi.RichTextProperty{RichText: []notionapi.RichText{{Text: &notionapi.Text{Content: text}}}}
}

func emailProp(email string) notionapi.EmailProperty {
	return notionapi.EmailProperty{Email: email}
}

func selectProp(option string) notionapi.SelectProperty {
	return notionapi.SelectProperty{Select: notionapi.Option{Name: option}}
}

func statusProp(option string) notionapi.StatusProperty {
	return notionapi.StatusProperty{Status: notionapi.Option{Name: option}}
}

func relationProp(pageIDs ...string) notionapi.RelationProperty {
	relations := make([]notionapi.Relation, 0, len(pageIDs))
	for _, id := range pageIDs {
		if id == "" {
			continue
		}
		relations = append(relations, notionapi.Relation{ID: notionapi.PageID(id)})
	}
	return notionapi.RelationProperty{Relation: relations}
}

func dateProp(day string) notionapi.DateProperty {
	parsed, err := parseDay(day)
	if err != nil {
		return notionapi.DateProperty{}
	}
	start := notionapi.Date(parsed)
	return notionapi.DateProperty{Date: &notionapi.DateObject{Start: &start}}
}

func parseDay(raw string) (time.Time, error) {
	return time.Parse("2006-01-02", raw)
}
