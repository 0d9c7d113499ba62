package service

import (
	"encoding/json"
	"strings"

	"wikiquiz/internal/domain"
)

// generatedContent is the parsed shape of the model's quiz payload, before
// it is merged with the source URL and extracted title.
type generatedContent struct {
	Summary       string
	KeyEntities   domain.KeyEntities
	Sections      []string
	Questions     []domain.QuizQuestion
	RelatedTopics []string
}

// parseGeneration strips incidental code fences from the model output and
// parses it as a single JSON object. A payload that is not a JSON object is
// a hard MALFORMED_GENERATION carrying the raw text; within a parseable
// object, absent or ill-typed fields fall back to empty defaults. Questions
// are retained as returned, without per-question re-validation.
func parseGeneration(raw string) (*generatedContent, error) {
	cleaned := stripCodeFences(raw)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		return nil, domain.NewMalformedGenerationError(raw, err)
	}

	content := &generatedContent{
		Summary:       decodeString(fields["summary"]),
		KeyEntities:   decodeEntities(fields["key_entities"]),
		Sections:      decodeStrings(fields["sections"]),
		Questions:     decodeQuestions(fields["quiz"]),
		RelatedTopics: decodeStrings(fields["related_topics"]),
	}
	return content, nil
}

// stripCodeFences removes enclosing triple-backtick markers, with or without
// a language tag, that models add around JSON despite instructions.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func decodeString(raw json.RawMessage) string {
	var s string
	if raw == nil || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

func decodeStrings(raw json.RawMessage) []string {
	var items []string
	if raw == nil || json.Unmarshal(raw, &items) != nil || items == nil {
		return []string{}
	}
	return items
}

func decodeQuestions(raw json.RawMessage) []domain.QuizQuestion {
	var questions []domain.QuizQuestion
	if raw == nil || json.Unmarshal(raw, &questions) != nil || questions == nil {
		return []domain.QuizQuestion{}
	}
	return questions
}

func decodeEntities(raw json.RawMessage) domain.KeyEntities {
	var entities domain.KeyEntities
	if raw == nil || json.Unmarshal(raw, &entities) != nil {
		return domain.KeyEntities{}.Normalized()
	}
	return entities.Normalized()
}
