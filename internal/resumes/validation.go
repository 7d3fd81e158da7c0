package resumes

import (
	"errors"
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"

	"github.com/Juste120/cvPro/resume/model"
)

const (
	maxTitleLen   = 100
	maxSummaryLen = 1000
)

var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

// getValidator lazily builds the shared validator with the record rules registered.
func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New()
		markup := bluemonday.StrictPolicy()
		// Text is drawn verbatim in the PDF; reject anything that is really markup.
		// Escaping alone (R&D, l'équipe) is not markup.
		_ = validatorInst.RegisterValidation("nomarkup", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return html.UnescapeString(markup.Sanitize(value)) == value
		})
		validatorInst.RegisterStructValidation(recordStructValidation, model.ResumeRecord{})
		validatorInst.RegisterStructValidation(stylingStructValidation, model.Styling{})
		validatorInst.RegisterStructValidation(experienceStructValidation, model.Experience{})
		validatorInst.RegisterStructValidation(educationStructValidation, model.Education{})
		validatorInst.RegisterStructValidation(volunteerStructValidation, model.VolunteerActivity{})
	})
	return validatorInst
}

// Validate applies the write-side rules. Rendering never depends on them; a
// record that slipped past still exports.
func Validate(record model.ResumeRecord) error {
	v := getValidator()
	if err := v.Struct(record); err != nil {
		return validationError("", err)
	}
	for i, exp := range record.Experiences {
		if err := v.Struct(exp); err != nil {
			return validationError(fmt.Sprintf("experiences[%d].", i), err)
		}
	}
	for i, edu := range record.Education {
		if err := v.Struct(edu); err != nil {
			return validationError(fmt.Sprintf("education[%d].", i), err)
		}
	}
	for i, activity := range record.VolunteerActivities {
		if err := v.Struct(activity); err != nil {
			return validationError(fmt.Sprintf("volunteerActivities[%d].", i), err)
		}
	}
	return nil
}

func recordStructValidation(sl validator.StructLevel) {
	record := sl.Current().Interface().(model.ResumeRecord)
	v := sl.Validator()

	title := strings.TrimSpace(record.Title)
	if title == "" {
		sl.ReportError(record.Title, "title", "Title", "required", "")
	} else if v.Var(title, fmt.Sprintf("max=%d", maxTitleLen)) != nil {
		sl.ReportError(record.Title, "title", "Title", "max", fmt.Sprint(maxTitleLen))
	}
	if v.Var(record.Summary, fmt.Sprintf("max=%d", maxSummaryLen)) != nil {
		sl.ReportError(record.Summary, "summary", "Summary", "max", fmt.Sprint(maxSummaryLen))
	}
	if v.Var(record.Summary, "nomarkup") != nil {
		sl.ReportError(record.Summary, "summary", "Summary", "nomarkup", "")
	}
}

func stylingStructValidation(sl validator.StructLevel) {
	styling := sl.Current().Interface().(model.Styling)
	v := sl.Validator()
	if v.Var(styling.PrimaryColor, "hexcolor,len=7") != nil {
		sl.ReportError(styling.PrimaryColor, "primaryColor", "PrimaryColor", "rgbhex", "")
	}
	if v.Var(styling.AccentColor, "hexcolor,len=7") != nil {
		sl.ReportError(styling.AccentColor, "accentColor", "AccentColor", "rgbhex", "")
	}
}

func experienceStructValidation(sl validator.StructLevel) {
	exp := sl.Current().Interface().(model.Experience)
	requireText(sl, exp.Position, "position")
	requireText(sl, exp.Company, "company")
	requireDates(sl, exp.StartDate, exp.EndDate, false)
	if sl.Validator().Var(exp.Description, "nomarkup") != nil {
		sl.ReportError(exp.Description, "description", "Description", "nomarkup", "")
	}
	for i, item := range exp.Achievements {
		if sl.Validator().Var(item, "nomarkup") != nil {
			sl.ReportError(item, fmt.Sprintf("achievements[%d]", i), "Achievements", "nomarkup", "")
		}
	}
}

func educationStructValidation(sl validator.StructLevel) {
	edu := sl.Current().Interface().(model.Education)
	requireText(sl, edu.Degree, "degree")
	requireText(sl, edu.Institution, "institution")
	// Degrees have no ongoing state.
	requireDates(sl, edu.StartDate, edu.EndDate, true)
}

func volunteerStructValidation(sl validator.StructLevel) {
	activity := sl.Current().Interface().(model.VolunteerActivity)
	requireText(sl, activity.Role, "role")
	requireText(sl, activity.Organization, "organization")
	requireDates(sl, activity.StartDate, activity.EndDate, false)
	if sl.Validator().Var(activity.Description, "nomarkup") != nil {
		sl.ReportError(activity.Description, "description", "Description", "nomarkup", "")
	}
}

func requireText(sl validator.StructLevel, value, field string) {
	if strings.TrimSpace(value) == "" {
		sl.ReportError(value, field, field, "required", "")
	}
}

func requireDates(sl validator.StructLevel, start model.Date, end *model.Date, endRequired bool) {
	if start.IsZero() {
		sl.ReportError(start, "startDate", "StartDate", "required", "")
		return
	}
	if endRequired && (end == nil || end.IsZero()) {
		sl.ReportError(end, "endDate", "EndDate", "required", "")
		return
	}
	if end != nil && !end.IsZero() && end.Before(start.Time) {
		sl.ReportError(*end, "endDate", "EndDate", "after_start", "")
	}
}

// validationError reports the first rule that failed as ErrInvalidInput.
func validationError(prefix string, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	fe := fieldErrs[0]
	return fmt.Errorf("%w: %s%s %s", ErrInvalidInput, prefix, fe.Field(), formatValidationMessage(fe))
}

func formatValidationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "rgbhex":
		return "must look like #RRGGBB"
	case "after_start":
		return "must not be before the start date"
	case "nomarkup":
		return "must not contain HTML"
	default:
		return "is invalid"
	}
}
