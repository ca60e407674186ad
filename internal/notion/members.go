package notion

import (
	"context"

	"github.com/jomei/notionapi"

	"github.com/ccbc-ox/boathouse-api/internal/models"
)

// Members database column names.
const (
	memberColName       = "Full Name"
	memberColEmail      = "Email Address"
	memberColType       = "Member Type"
	memberColExperience = "Cox Experience"
	memberColRole       = "Role"
	memberColCollege    = "College"
)

// Members returns every member in the roster. Rows without a name are
// skipped: they are half-filled sign-up drafts, not members.
func (c *Client) Members(ctx context.Context) ([]models.Member, error) {
	pages, err := c.queryAll(ctx, c.cfg.MembersDB, nil, "members.query")
	if err != nil {
		return nil, err
	}

	members := make([]models.Member, 0, len(pages))
	for _, page := range pages {
		if member, ok := mapMember(page); ok {
			members = append(members, member)
		}
	}
	return members, nil
}

// NewMember captures the fields of a sign-up.
type NewMember struct {
	Name    string
	Email   string
	Role    string
	College string
}

// CreateMember adds a roster row and returns the mapped member.
func (c *Client) CreateMember(ctx context.Context, input NewMember) (models.Member, error) {
	properties := notionapi.Properties{
		memberColName: titleProp(input.Name),
	}
	if input.Email != "" {
		properties[memberColEmail] = emailProp(input.Email)
	}
	if input.Role != "" {
		properties[memberColRole] = selectProp(input.Role)
	}
	if input.College != "" {
		properties[memberColCollege] = richTextProp(input.College)
	}

	page, err := c.createPage(ctx, c.cfg.MembersDB, properties, "members.create")
	if err != nil {
		return models.Member{}, err
	}

	member, _ := mapMember(*page)
	if member.ID == "" {
		member.ID = string(page.ID)
		member.Name = input.Name
		member.Email = input.Email
	}
	return member, nil
}

func mapMember(page notionapi.Page) (models.Member, bool) {
	name := propText(page.Properties, memberColName)
	if name == "" {
		return models.Member{}, false
	}
	return models.Member{
		ID:            string(page.ID),
		Name:          name,
		Email:         propEmail(page.Properties, memberColEmail),
		MemberType:    propSelect(page.Properties, memberColType),
		CoxExperience: models.CoxExperience(propSelect(page.Properties, memberColExperience)),
	}, true
}
