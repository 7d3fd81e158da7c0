package render

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/Juste120/cvPro/resume/i18n"
	"github.com/Juste120/cvPro/resume/model"
)

const (
	headingSpaceBefore = 10
	headingSpaceAfter  = 5
	entryGap           = 12
)

// sectionContext carries everything a section renderer may consult. One is built
// per export and never shared between exports.
type sectionContext struct {
	palette  Palette
	locale   i18n.Locale
	messages MessageResolver
	dates    DateRangeFormatter
	upper    cases.Caser
}

func newSectionContext(palette Palette, locale i18n.Locale, messages MessageResolver) *sectionContext {
	return &sectionContext{
		palette:  palette,
		locale:   locale,
		messages: messages,
		dates:    DateRangeFormatter{Messages: messages},
		upper:    cases.Upper(locale.Tag()),
	}
}

func (c *sectionContext) heading(key string) Block {
	label := c.messages.Resolve(key, c.locale)
	return Block{
		Kind:        BlockHeading,
		Text:        c.upper.String(label),
		Style:       c.palette.style("sectionHeading"),
		SpaceBefore: headingSpaceBefore,
		SpaceAfter:  headingSpaceAfter,
	}
}

func (c *sectionContext) text(style, value string, spaceAfter float64) Block {
	return Block{Kind: BlockText, Text: value, Style: c.palette.style(style), SpaceAfter: spaceAfter}
}

// section pairs a presence test with a renderer. The composer draws a section only
// when present reports true, so renderers never see absent data.
type section struct {
	name    string
	present func(model.ResumeRecord) bool
	render  func(model.ResumeRecord, *sectionContext) []Block
}

// sections is the fixed drawing order.
var sections = []section{
	{name: "header", present: func(r model.ResumeRecord) bool { return r.PersonalInfo != nil }, render: renderHeader},
	{name: "summary", present: func(r model.ResumeRecord) bool { return r.Summary != "" }, render: renderSummary},
	{name: "experience", present: func(r model.ResumeRecord) bool { return nonEmpty(r.Experiences) }, render: renderExperience},
	{name: "education", present: func(r model.ResumeRecord) bool { return nonEmpty(r.Education) }, render: renderEducation},
	{name: "skills", present: func(r model.ResumeRecord) bool { return nonEmpty(r.Skills) }, render: renderSkills},
	{name: "languages", present: func(r model.ResumeRecord) bool { return nonEmpty(r.Languages) }, render: renderLanguages},
	{name: "volunteer", present: func(r model.ResumeRecord) bool { return nonEmpty(r.VolunteerActivities) }, render: renderVolunteer},
	{name: "interests", present: func(r model.ResumeRecord) bool { return nonEmpty(r.Interests) }, render: renderInterests},
}

func nonEmpty[T any](items []T) bool {
	return len(items) > 0
}

func renderHeader(r model.ResumeRecord, c *sectionContext) []Block {
	info := r.PersonalInfo
	blocks := []Block{
		c.text("name", info.FullName, 0),
		c.text("jobTitle", info.JobTitle, 10),
	}

	if contact := joinPresent(" | ", info.Email, info.Phone, info.Address); contact != "" {
		blocks = append(blocks, c.text("contact", contact, 5))
	}

	var links []string
	if info.LinkedIn != "" {
		links = append(links, "LinkedIn: "+info.LinkedIn)
	}
	if info.Skype != "" {
		links = append(links, "Skype: "+info.Skype)
	}
	if len(links) > 0 {
		blocks = append(blocks, c.text("contact", strings.Join(links, " | "), 20))
	}

	return append(blocks, Block{Kind: BlockRule, Style: c.palette.style("rule"), SpaceBefore: 2, SpaceAfter: entryGap})
}

func renderSummary(r model.ResumeRecord, c *sectionContext) []Block {
	return []Block{
		c.heading(i18n.KeySummary),
		c.text("summary", r.Summary, 10),
	}
}

func renderExperience(r model.ResumeRecord, c *sectionContext) []Block {
	blocks := []Block{c.heading(i18n.KeyExperience)}
	for _, exp := range r.Experiences {
		blocks = append(blocks,
			c.text("entryTitle", exp.Position, 0),
			c.text("entrySubtitle", withLocation(exp.Company, exp.Location), 0),
			c.text("meta", c.dates.Format(exp.StartDate, exp.EndDate, exp.IsCurrent, c.locale), 5),
		)
		if exp.Description != "" {
			blocks = append(blocks, c.text("body", exp.Description, 5))
		}
		if len(exp.Achievements) > 0 {
			blocks = append(blocks, Block{
				Kind:  BlockBullets,
				Items: exp.Achievements,
				Style: c.palette.style("body"),
			})
		}
		blocks[len(blocks)-1].SpaceAfter += entryGap
	}
	return blocks
}

func renderEducation(r model.ResumeRecord, c *sectionContext) []Block {
	blocks := []Block{c.heading(i18n.KeyEducation)}
	for _, edu := range r.Education {
		blocks = append(blocks,
			c.text("entryTitle", edu.Degree, 0),
			c.text("entrySubtitle", withLocation(edu.Institution, edu.Location), 0),
			c.text("meta", c.dates.Format(edu.StartDate, edu.EndDate, false, c.locale), 10),
		)
	}
	return blocks
}

func renderSkills(r model.ResumeRecord, c *sectionContext) []Block {
	blocks := []Block{c.heading(i18n.KeySkills)}
	for _, group := range GroupByCategory(r.Skills) {
		entries := make([]string, 0, len(group.Skills))
		for _, skill := range group.Skills {
			entries = append(entries, skill.Name+" ("+skill.Level.String()+")")
		}
		blocks = append(blocks, Block{
			Kind:       BlockLabeled,
			Label:      group.Category + ": ",
			LabelStyle: c.palette.style("category"),
			Text:       strings.Join(entries, ", "),
			Style:      c.palette.style("body"),
			SpaceAfter: 5,
		})
	}
	blocks[len(blocks)-1].SpaceAfter += entryGap
	return blocks
}

func renderLanguages(r model.ResumeRecord, c *sectionContext) []Block {
	entries := make([]string, 0, len(r.Languages))
	for _, lang := range r.Languages {
		entries = append(entries, lang.Name+" ("+lang.Level.String()+")")
	}
	return []Block{
		c.heading(i18n.KeyLanguages),
		c.text("body", strings.Join(entries, ", "), 10),
	}
}

func renderVolunteer(r model.ResumeRecord, c *sectionContext) []Block {
	blocks := []Block{c.heading(i18n.KeyVolunteer)}
	for _, activity := range r.VolunteerActivities {
		blocks = append(blocks,
			c.text("roleTitle", activity.Role, 0),
			c.text("organization", activity.Organization, 0),
			c.text("meta", c.dates.Format(activity.StartDate, activity.EndDate, activity.IsCurrent, c.locale), 5),
		)
		if activity.Description != "" {
			blocks = append(blocks, c.text("body", activity.Description, 10))
		}
	}
	return blocks
}

func renderInterests(r model.ResumeRecord, c *sectionContext) []Block {
	return []Block{
		c.heading(i18n.KeyInterests),
		c.text("body", strings.Join(r.Interests, ", "), 10),
	}
}

func withLocation(name, location string) string {
	if location == "" {
		return name
	}
	return name + " - " + location
}

func joinPresent(sep string, values ...string) string {
	present := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			present = append(present, v)
		}
	}
	return strings.Join(present, sep)
}
