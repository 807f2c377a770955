package matching

import (
	"regexp"
	"strings"
)

// Names of the four ATS compatibility criteria.
const (
	CriterionSectionHeaders = "Section Headers"
	CriterionKeywordDensity = "Keyword Density"
	CriterionNoTables       = "No Tables/Columns"
	CriterionContactInfo    = "Contact Info"
)

// AtsCriterion describes one compatibility check.
type AtsCriterion struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AtsReport lists the static criteria table together with the criteria that
// failed and one remediation suggestion per failure, in the same order.
type AtsReport struct {
	Criteria    []AtsCriterion `json:"criteria"`
	Issues      []string       `json:"issues"`
	Suggestions []string       `json:"suggestions"`
}

// AtsCriteria returns the static description table included in every report.
func AtsCriteria() []AtsCriterion {
	return []AtsCriterion{
		{CriterionSectionHeaders, "Resume should have clear section headers like Experience, Education, Skills, etc."},
		{CriterionKeywordDensity, "Important keywords from the job description should appear in the resume."},
		{CriterionNoTables, "Avoid using tables, columns, or graphics as they may confuse ATS."},
		{CriterionContactInfo, "Contact information should be in the main body, not in headers/footers."},
	}
}

var sectionHeaders = []string{
	"experience", "education", "skills", "projects", "summary",
	"contact", "certifications", "work history", "profile", "objective",
	"achievements", "publications", "languages", "interests", "references",
}

var (
	headerPatterns = compileHeaderPatterns()

	// A pipe followed by a tab, or a blank line: layout artifacts that
	// survive text extraction of tables and columns.
	tablePattern = regexp.MustCompile(`\|\t|\n\s*\n`)

	// An email-like token, or a digit sequence of 7+ characters with an
	// optional leading + and embedded spaces/hyphens.
	contactPattern = regexp.MustCompile(`([\w.-]+@[\w.-]+)|(\+?\d[\d\s-]{7,}\d)`)
)

func compileHeaderPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(sectionHeaders))
	for _, header := range sectionHeaders {
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(header)+`\b`))
	}
	return patterns
}

// CheckATS applies the four independent compatibility checks against the
// resume text and the already-computed matched skill set. Every check runs
// unconditionally; none of them can fail the analysis itself.
func CheckATS(resumeText, jobText string, matchedSkills SkillSet) AtsReport {
	report := AtsReport{Criteria: AtsCriteria()}

	fail := func(name, suggestion string) {
		report.Issues = append(report.Issues, name)
		report.Suggestions = append(report.Suggestions, suggestion)
	}

	if countSectionHeaders(resumeText) < 3 {
		fail(CriterionSectionHeaders, "Add more clear section headers (e.g., Experience, Education, Skills).")
	}

	if float64(len(matchedSkills)) < 0.5*float64(countDistinctWords(jobText)) {
		fail(CriterionKeywordDensity, "Include more relevant keywords from the job description in your resume.")
	}

	if tablePattern.MatchString(resumeText) {
		fail(CriterionNoTables, "Avoid using tables, columns, or tabular formatting in your resume.")
	}

	if !hasContactInfoInBody(resumeText) {
		fail(CriterionContactInfo, "Make sure your contact info is in the main body, not just in headers/footers.")
	}

	return report
}

func countSectionHeaders(text string) int {
	found := 0
	for _, pattern := range headerPatterns {
		if pattern.MatchString(text) {
			found++
		}
	}
	return found
}

func countDistinctWords(text string) int {
	words := make(map[string]struct{})
	for _, word := range strings.Fields(strings.ToLower(text)) {
		words[word] = struct{}{}
	}
	return len(words)
}

// hasContactInfoInBody looks for an email or phone number in the first five
// or last five lines of the resume.
func hasContactInfoInBody(text string) bool {
	lines := strings.Split(text, "\n")

	top := lines
	if len(top) > 5 {
		top = top[:5]
	}
	bottom := lines
	if len(bottom) > 5 {
		bottom = bottom[len(bottom)-5:]
	}

	return contactPattern.MatchString(strings.Join(top, " ")) ||
		contactPattern.MatchString(strings.Join(bottom, " "))
}
