package render

import "github.com/Juste120/cvPro/resume/model"

// TextColorFor maps a theme to its body text colour. Unknown themes behave like LIGHT.
func TextColorFor(theme model.Theme) RGB {
	switch theme {
	case model.ThemeDark:
		return white
	default:
		return black
	}
}
