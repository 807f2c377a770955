package matching

import "sort"

// DefaultMissingSkillsLimit caps how many missing skills are surfaced.
const DefaultMissingSkillsLimit = 10

// MissingSkills returns up to limit skills required by the job description
// but absent from the resume, sorted alphabetically. A non-positive limit
// falls back to DefaultMissingSkillsLimit.
func MissingSkills(jobSkills, resumeSkills SkillSet, limit int) []string {
	if limit <= 0 {
		limit = DefaultMissingSkillsLimit
	}

	var missing []string
	for skill := range jobSkills {
		if _, ok := resumeSkills[skill]; !ok {
			missing = append(missing, skill)
		}
	}
	sort.Strings(missing)

	if len(missing) > limit {
		missing = missing[:limit]
	}
	return missing
}
