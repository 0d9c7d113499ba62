package dto

import (
	"time"

	"wikiquiz/internal/domain"
)

// GenerateQuizRequest is the inbound request body
type GenerateQuizRequest struct {
	URL string `json:"url"`
}

// QuizQuestionResponse represents one question in the API response
type QuizQuestionResponse struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Difficulty  string   `json:"difficulty"`
	Explanation string   `json:"explanation"`
}

// KeyEntitiesResponse represents the extracted entities in the API response
type KeyEntitiesResponse struct {
	People        []string `json:"people"`
	Organizations []string `json:"organizations"`
	Locations     []string `json:"locations"`
}

// QuizResponse is the persisted quiz record as returned to callers
type QuizResponse struct {
	ID            string                 `json:"id"`
	URL           string                 `json:"url"`
	Title         string                 `json:"title"`
	Summary       string                 `json:"summary"`
	KeyEntities   KeyEntitiesResponse    `json:"key_entities"`
	Sections      []string               `json:"sections"`
	Questions     []QuizQuestionResponse `json:"quiz"`
	RelatedTopics []string               `json:"related_topics"`
	CreatedAt     time.Time              `json:"created_at"`
}

// QuizListResponse wraps the stored quiz history, newest first
type QuizListResponse struct {
	Quizzes []QuizResponse `json:"quizzes"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewQuizResponse converts a stored quiz to its response shape, making sure
// every collection serializes as an array rather than null.
func NewQuizResponse(q *domain.Quiz) *QuizResponse {
	questions := make([]QuizQuestionResponse, 0, len(q.Questions))
	for _, question := range q.Questions {
		options := question.Options
		if options == nil {
			options = []string{}
		}
		questions = append(questions, QuizQuestionResponse{
			Question:    question.Question,
			Options:     options,
			Answer:      question.Answer,
			Difficulty:  question.Difficulty,
			Explanation: question.Explanation,
		})
	}

	entities := q.KeyEntities.Normalized()
	sections := q.Sections
	if sections == nil {
		sections = []string{}
	}
	relatedTopics := q.RelatedTopics
	if relatedTopics == nil {
		relatedTopics = []string{}
	}

	return &QuizResponse{
		ID:      q.ID,
		URL:     q.URL,
		Title:   q.Title,
		Summary: q.Summary,
		KeyEntities: KeyEntitiesResponse{
			People:        entities.People,
			Organizations: entities.Organizations,
			Locations:     entities.Locations,
		},
		Sections:      sections,
		Questions:     questions,
		RelatedTopics: relatedTopics,
		CreatedAt:     q.CreatedAt,
	}
}
