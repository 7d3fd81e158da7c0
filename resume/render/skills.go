package render

import "github.com/Juste120/cvPro/resume/model"

// SkillGroup is one category and its skills in input order.
type SkillGroup struct {
	Category string
	Skills   []model.Skill
}

// GroupByCategory buckets skills by category. Groups appear in the order their
// first member was seen; nothing is sorted or deduplicated.
func GroupByCategory(skills []model.Skill) []SkillGroup {
	var groups []SkillGroup
	index := make(map[string]int)
	for _, skill := range skills {
		i, ok := index[skill.Category]
		if !ok {
			i = len(groups)
			index[skill.Category] = i
			groups = append(groups, SkillGroup{Category: skill.Category})
		}
		groups[i].Skills = append(groups[i].Skills, skill)
	}
	return groups
}
