package model

import (
	"fmt"
	"strconv"
)

// Theme selects the text colour scheme. The zero value is ThemeLight.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

var themeNames = [...]string{
	ThemeLight: "LIGHT",
	ThemeDark:  "DARK",
}

// SkillLevel is ordered from least to most proficient.
type SkillLevel int

const (
	SkillBeginner SkillLevel = iota
	SkillIntermediate
	SkillAdvanced
	SkillExpert
)

var skillLevelNames = [...]string{
	SkillBeginner:     "BEGINNER",
	SkillIntermediate: "INTERMEDIATE",
	SkillAdvanced:     "ADVANCED",
	SkillExpert:       "EXPERT",
}

// LanguageLevel is ordered from least to most proficient.
type LanguageLevel int

const (
	LanguageBeginner LanguageLevel = iota
	LanguageConversational
	LanguageExpert
	LanguageNative
)

var languageLevelNames = [...]string{
	LanguageBeginner:       "BEGINNER",
	LanguageConversational: "CONVERSATIONAL",
	LanguageExpert:         "EXPERT",
	LanguageNative:         "NATIVE",
}

func (t Theme) String() string {
	return enumName(themeNames[:], int(t), "Theme")
}

func (t Theme) MarshalText() ([]byte, error) {
	return marshalEnum(themeNames[:], int(t), "theme")
}

func (t *Theme) UnmarshalText(text []byte) error {
	idx, err := unmarshalEnum(themeNames[:], string(text), "theme")
	if err != nil {
		return err
	}
	*t = Theme(idx)
	return nil
}

func (l SkillLevel) String() string {
	return enumName(skillLevelNames[:], int(l), "SkillLevel")
}

func (l SkillLevel) MarshalText() ([]byte, error) {
	return marshalEnum(skillLevelNames[:], int(l), "skill level")
}

func (l *SkillLevel) UnmarshalText(text []byte) error {
	idx, err := unmarshalEnum(skillLevelNames[:], string(text), "skill level")
	if err != nil {
		return err
	}
	*l = SkillLevel(idx)
	return nil
}

func (l LanguageLevel) String() string {
	return enumName(languageLevelNames[:], int(l), "LanguageLevel")
}

func (l LanguageLevel) MarshalText() ([]byte, error) {
	return marshalEnum(languageLevelNames[:], int(l), "language level")
}

func (l *LanguageLevel) UnmarshalText(text []byte) error {
	idx, err := unmarshalEnum(languageLevelNames[:], string(text), "language level")
	if err != nil {
		return err
	}
	*l = LanguageLevel(idx)
	return nil
}

func enumName(names []string, idx int, kind string) string {
	if idx >= 0 && idx < len(names) {
		return names[idx]
	}
	return kind + "(" + strconv.Itoa(idx) + ")"
}

func marshalEnum(names []string, idx int, kind string) ([]byte, error) {
	if idx < 0 || idx >= len(names) {
		return nil, fmt.Errorf("invalid %s %d", kind, idx)
	}
	return []byte(names[idx]), nil
}

func unmarshalEnum(names []string, raw string, kind string) (int, error) {
	for i, name := range names {
		if name == raw {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", kind, raw)
}
