package repository

import (
	"context"
	"time"

	"wikiquiz/internal/domain"
	"wikiquiz/internal/repository/models"
	"wikiquiz/internal/util"

	"github.com/jmoiron/sqlx"
)

// QuizDatabaseAdapter implements domain.QuizRepository using sqlx.DB
type QuizDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuizDatabaseAdapter creates a new instance of QuizDatabaseAdapter
func NewQuizDatabaseAdapter(db *sqlx.DB) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db}
}

// Save implements domain.QuizRepository. It assigns the record identity and
// creation timestamp, inserts exactly one row, and writes both back onto the
// given quiz so the caller returns the stored record.
func (a *QuizDatabaseAdapter) Save(ctx context.Context, quiz *domain.Quiz) error {
	modelQuiz := toModelQuiz(quiz)
	if modelQuiz == nil {
		return domain.NewPersistenceFailedError(nil)
	}
	modelQuiz.ID = util.NewULID()
	modelQuiz.CreatedAt = time.Now().UTC()

	query := `INSERT INTO quizzes (
		id, url, title, summary, key_entities,
		sections, quiz, related_topics, created_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9
	)`

	_, err := a.db.ExecContext(ctx, query,
		modelQuiz.ID,
		modelQuiz.URL,
		modelQuiz.Title,
		modelQuiz.Summary,
		modelQuiz.KeyEntities,
		modelQuiz.Sections,
		modelQuiz.Questions,
		modelQuiz.RelatedTopics,
		modelQuiz.CreatedAt,
	)
	if err != nil {
		return domain.NewPersistenceFailedError(err)
	}

	quiz.ID = modelQuiz.ID
	quiz.CreatedAt = modelQuiz.CreatedAt
	return nil
}

// ListAll implements domain.QuizRepository
func (a *QuizDatabaseAdapter) ListAll(ctx context.Context) ([]*domain.Quiz, error) {
	var modelQuizzes []models.Quiz
	query := `SELECT
		id, url, title, summary, key_entities,
		sections, quiz, related_topics, created_at
	FROM quizzes
	ORDER BY created_at DESC`

	if err := a.db.SelectContext(ctx, &modelQuizzes, query); err != nil {
		return nil, domain.NewPersistenceFailedError(err)
	}

	quizzes := make([]*domain.Quiz, 0, len(modelQuizzes))
	for i := range modelQuizzes {
		quizzes = append(quizzes, toDomainQuiz(&modelQuizzes[i]))
	}
	return quizzes, nil
}

// Helper functions for model conversion
func toModelQuiz(d *domain.Quiz) *models.Quiz {
	if d == nil {
		return nil
	}
	questions := make(models.QuestionSlice, 0, len(d.Questions))
	for _, q := range d.Questions {
		questions = append(questions, models.Question{
			Question:    q.Question,
			Options:     q.Options,
			Answer:      q.Answer,
			Difficulty:  q.Difficulty,
			Explanation: q.Explanation,
		})
	}
	entities := d.KeyEntities.Normalized()
	return &models.Quiz{
		ID:      d.ID,
		URL:     d.URL,
		Title:   d.Title,
		Summary: d.Summary,
		KeyEntities: models.Entities{
			People:        entities.People,
			Organizations: entities.Organizations,
			Locations:     entities.Locations,
		},
		Sections:      models.StringSlice(d.Sections),
		Questions:     questions,
		RelatedTopics: models.StringSlice(d.RelatedTopics),
		CreatedAt:     d.CreatedAt,
	}
}

func toDomainQuiz(m *models.Quiz) *domain.Quiz {
	questions := make([]domain.QuizQuestion, 0, len(m.Questions))
	for _, q := range m.Questions {
		questions = append(questions, domain.QuizQuestion{
			Question:    q.Question,
			Options:     q.Options,
			Answer:      q.Answer,
			Difficulty:  q.Difficulty,
			Explanation: q.Explanation,
		})
	}
	return &domain.Quiz{
		ID:      m.ID,
		URL:     m.URL,
		Title:   m.Title,
		Summary: m.Summary,
		KeyEntities: domain.KeyEntities{
			People:        m.KeyEntities.People,
			Organizations: m.KeyEntities.Organizations,
			Locations:     m.KeyEntities.Locations,
		}.Normalized(),
		Sections:      []string(m.Sections),
		Questions:     questions,
		RelatedTopics: []string(m.RelatedTopics),
		CreatedAt:     m.CreatedAt,
	}
}
