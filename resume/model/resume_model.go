package model

import "time"

// ResumeRecord is the aggregate a CV export is rendered from.
type ResumeRecord struct {
	ID                  string              `json:"id"`
	UserID              string              `json:"userId"`
	Title               string              `json:"title"`
	PersonalInfo        *PersonalInfo       `json:"personalInfo,omitempty"`
	Summary             string              `json:"summary,omitempty"`
	Experiences         []Experience        `json:"experiences,omitempty"`
	Education           []Education         `json:"education,omitempty"`
	Skills              []Skill             `json:"skills,omitempty"`
	Languages           []Language          `json:"languages,omitempty"`
	VolunteerActivities []VolunteerActivity `json:"volunteerActivities,omitempty"`
	Interests           []string            `json:"interests,omitempty"`
	Styling             *Styling            `json:"styling,omitempty"`
	CreatedAt           time.Time           `json:"createdAt"`
	UpdatedAt           time.Time           `json:"updatedAt"`
}

// PersonalInfo holds identity and contact details. Empty strings are treated as absent.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	JobTitle string `json:"jobTitle"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	LinkedIn string `json:"linkedIn,omitempty"`
	Skype    string `json:"skype,omitempty"`
}

// Experience is a work history entry. IsCurrent wins over EndDate when displayed.
type Experience struct {
	Position     string   `json:"position"`
	Company      string   `json:"company"`
	Location     string   `json:"location,omitempty"`
	StartDate    Date     `json:"startDate"`
	EndDate      *Date    `json:"endDate,omitempty"`
	IsCurrent    bool     `json:"isCurrent,omitempty"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// Education is a degree entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location,omitempty"`
	StartDate   Date   `json:"startDate"`
	EndDate     *Date  `json:"endDate,omitempty"`
}

// Skill is grouped by its free-text Category when rendered.
type Skill struct {
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Level    SkillLevel `json:"level"`
}

// Language is a spoken language and proficiency.
type Language struct {
	Name  string        `json:"name"`
	Level LanguageLevel `json:"level"`
}

// VolunteerActivity mirrors Experience without achievements.
type VolunteerActivity struct {
	Role         string `json:"role"`
	Organization string `json:"organization"`
	StartDate    Date   `json:"startDate"`
	EndDate      *Date  `json:"endDate,omitempty"`
	IsCurrent    bool   `json:"isCurrent,omitempty"`
	Description  string `json:"description,omitempty"`
}

// Styling is the visual directive for a CV.
type Styling struct {
	Theme        Theme  `json:"theme"`
	PrimaryColor string `json:"primaryColor,omitempty"`
	AccentColor  string `json:"accentColor,omitempty"`
}

const (
	DefaultPrimaryColor = "#3B82F6"
	DefaultAccentColor  = "#10B981"
)

// DefaultStyling is applied when a record carries no styling.
func DefaultStyling() Styling {
	return Styling{
		Theme:        ThemeLight,
		PrimaryColor: DefaultPrimaryColor,
		AccentColor:  DefaultAccentColor,
	}
}

// EffectiveStyling returns the record's styling or the defaults when absent.
func (r ResumeRecord) EffectiveStyling() Styling {
	if r.Styling == nil {
		return DefaultStyling()
	}
	return *r.Styling
}

// Timestamp is the instant stamped into exported document metadata. It is derived
// from the record so repeated exports of an unchanged record are identical.
func (r ResumeRecord) Timestamp() time.Time {
	switch {
	case !r.UpdatedAt.IsZero():
		return r.UpdatedAt.UTC()
	case !r.CreatedAt.IsZero():
		return r.CreatedAt.UTC()
	default:
		return time.Unix(0, 0).UTC()
	}
}
