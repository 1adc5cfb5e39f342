package genai

import "fmt"

// Prompt builders. Each interpolates record fields into a fixed template; the
// response is returned to the caller as-is.

// JobDescriptionPrompt asks for a full posting from basic job facts.
func JobDescriptionPrompt(title, companyName, industry, jobType, experience, location string) string {
	return fmt.Sprintf(`Generate a detailed job description for a %s position at %s.
Industry: %s
Job Type: %s
Experience Level: %s
Location: %s

Include the following sections:
1. About the company
2. Job overview
3. Key responsibilities
4. Requirements and qualifications
5. Benefits and perks

Make it professional, engaging, and around 400-500 words.`,
		title, companyName, industry, jobType, experience, location)
}

// ResumeAnalysisPrompt asks for a match assessment between a resume and a job.
func ResumeAnalysisPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`Analyze the match between this candidate's resume and the job description.

RESUME:
%s

JOB DESCRIPTION:
%s

Provide the following:
1. Match score (0-100)
2. Key skills that match
3. Skills or experiences that are missing
4. Suggestions for improving the resume for this position
5. Overall recommendation (Highly Recommended, Recommended, Potentially Suitable, Not Recommended)`,
		resumeText, jobDescription)
}

// CoverLetterPrompt asks for a tailored cover letter.
func CoverLetterPrompt(resumeText, jobDescription, userName string) string {
	return fmt.Sprintf(`Write a professional cover letter for %s applying for this job:

JOB DESCRIPTION:
%s

CANDIDATE RESUME INFO:
%s

The cover letter should:
1. Be professionally formatted with today's date
2. Address the hiring manager appropriately
3. Highlight 3-4 key relevant experiences/skills from the resume
4. Explain why the candidate is a good fit for this specific position
5. Include a call to action in the closing paragraph
6. Use professional closing and signature

Keep it concise (300-400 words) and compelling.`,
		userName, jobDescription, resumeText)
}

// SearchRecommendationsPrompt asks for job-search strategy suggestions.
func SearchRecommendationsPrompt(userProfile, jobPreferences string) string {
	return fmt.Sprintf(`Based on this job seeker's profile and preferences, suggest optimal job search strategies:

USER PROFILE:
%s

JOB PREFERENCES:
%s

Please provide:
1. 5-7 recommended job titles to search for
2. 8-10 keywords to include in their job search
3. 3-4 industries that match their background
4. Suggestions for skills they should highlight
5. Recommendations for skills they might want to develop`,
		userProfile, jobPreferences)
}
