package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildFeedbackPrompt creates the reviewer prompt for narrative feedback.
// The response is expected to carry an "AI Suggestions" and a "Summary"
// section, which the feedback service splits apart.
func (pb *PromptBuilder) BuildFeedbackPrompt(resumeText, jobText string) string {
	return fmt.Sprintf(`Act as a professional resume reviewer. Given the following resume and job description:

Resume:
%s

Job Description:
%s

1. **AI Suggestions**: Provide detailed, categorized suggestions in these areas:
   - Content Structure & Section Coverage
   - Grammar, Tone & Clarity
   - Role Relevance & Personalization
   - Impact & Achievement Highlighting
   - Formatting & Readability
For each, give specific, actionable feedback with examples.

2. **Summary**: Write a concise executive summary including:
   - Overall impression and readiness for the job
   - 2-3 key strengths
   - 2-3 major areas for improvement
   - (Optional) ATS/readability score and comments

Format your output with clear headings and bullet points for each section.`,
		resumeText, jobText)
}
