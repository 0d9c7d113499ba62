package quizgen

import "fmt"

// SystemPrompt pins the model to bare-JSON output. The response parser still
// strips code fences defensively, since models add them anyway.
const SystemPrompt = "You are a quiz generator. Always respond with valid JSON only, no markdown formatting or code blocks."

const promptTemplate = `Based on the following Wikipedia article content about "%s", generate a comprehensive quiz.

ARTICLE CONTENT:
%s

Please respond with a valid JSON object (no markdown, no code blocks) containing:
1. "summary": A 2-3 sentence summary of the article
2. "key_entities": An object with "people" (array of person names), "organizations" (array of org names), "locations" (array of place names)
3. "sections": An array of main section topics from the article
4. "quiz": An array of 7 quiz questions, each with:
   - "question": The question text
   - "options": Array of 4 options (A, B, C, D style answers)
   - "answer": The correct answer (must match one of the options exactly)
   - "difficulty": "easy", "medium", or "hard"
   - "explanation": Brief explanation of why this is correct
5. "related_topics": Array of 4-6 related Wikipedia topics for further reading

Make questions varied in difficulty and cover different aspects of the article. Ensure all answers are factually correct based on the article content.`

// BuildPrompt assembles the instruction payload for one article. It is a
// pure formatting function: the article text is embedded as given, already
// bounded by the extractor.
func BuildPrompt(title, article string) string {
	return fmt.Sprintf(promptTemplate, title, article)
}
