package render

import (
	"github.com/Juste120/cvPro/resume/i18n"
	"github.com/Juste120/cvPro/resume/model"
)

// MessageResolver turns a label key into display text for a locale. Implementations
// return the key unchanged when they have no translation.
type MessageResolver interface {
	Resolve(key string, locale i18n.Locale) string
}

// DateRangeFormatter renders "MM/YYYY - MM/YYYY" style ranges.
type DateRangeFormatter struct {
	Messages MessageResolver
}

// Format renders start and end. An ongoing range ends with the localized "present"
// label whatever end holds; a missing end renders as empty.
func (f DateRangeFormatter) Format(start model.Date, end *model.Date, ongoing bool, locale i18n.Locale) string {
	endText := ""
	switch {
	case ongoing:
		endText = f.Messages.Resolve(i18n.KeyPresent, locale)
	case end != nil:
		endText = end.MonthYear()
	}
	return start.MonthYear() + " - " + endText
}
