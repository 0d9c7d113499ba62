package service

import (
	"context"
	"strings"

	"wikiquiz/internal/domain"
	"wikiquiz/internal/dto"
	"wikiquiz/internal/logger"

	"go.uber.org/zap"
)

// sourceDomainToken is the accepted source-domain marker; URLs without it
// are rejected before any network I/O.
const sourceDomainToken = "wikipedia.org"

// QuizService defines the interface for quiz-related operations
type QuizService interface {
	// GenerateQuiz runs one pipeline execution: validate the URL, fetch the
	// article, extract its text, generate quiz content, parse it, persist
	// the record and return it.
	GenerateQuiz(ctx context.Context, rawURL string) (*dto.QuizResponse, error)
	// GetQuizHistory returns all previously generated quizzes, newest first.
	GetQuizHistory(ctx context.Context) (*dto.QuizListResponse, error)
}

// quizService implements QuizService
type quizService struct {
	fetcher   domain.ArticleFetcher
	extractor domain.ContentExtractor
	generator domain.QuizGenerator
	repo      domain.QuizRepository
}

// NewQuizService creates a new instance of quizService
func NewQuizService(
	fetcher domain.ArticleFetcher,
	extractor domain.ContentExtractor,
	generator domain.QuizGenerator,
	repo domain.QuizRepository,
) QuizService {
	return &quizService{
		fetcher:   fetcher,
		extractor: extractor,
		generator: generator,
		repo:      repo,
	}
}

// GenerateQuiz implements QuizService. Stages run strictly in sequence and
// the first failure terminates the execution; nothing is persisted until
// every prior stage has succeeded.
func (s *quizService) GenerateQuiz(ctx context.Context, rawURL string) (*dto.QuizResponse, error) {
	l := logger.Get()

	url, err := validateSourceURL(rawURL)
	if err != nil {
		return nil, err
	}
	l.Info("Processing article URL", zap.String("url", url))

	html, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	title := s.extractor.ExtractTitle(html)
	body := s.extractor.ExtractBody(html)
	l.Info("Extracted article content",
		zap.String("title", title),
		zap.Int("body_length", len(body)),
	)

	raw, err := s.generator.Generate(ctx, title, body)
	if err != nil {
		return nil, err
	}

	content, err := parseGeneration(raw)
	if err != nil {
		// Raw model output is operator-side diagnostics only; the error
		// handler logs it and callers get the message alone.
		return nil, err
	}

	quiz := &domain.Quiz{
		URL:           url,
		Title:         title,
		Summary:       content.Summary,
		KeyEntities:   content.KeyEntities,
		Sections:      content.Sections,
		Questions:     content.Questions,
		RelatedTopics: content.RelatedTopics,
	}

	if err := s.repo.Save(ctx, quiz); err != nil {
		return nil, err
	}
	l.Info("Quiz saved", zap.String("quiz_id", quiz.ID), zap.String("title", quiz.Title))

	return dto.NewQuizResponse(quiz), nil
}

// GetQuizHistory implements QuizService
func (s *quizService) GetQuizHistory(ctx context.Context) (*dto.QuizListResponse, error) {
	quizzes, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.QuizResponse, 0, len(quizzes))
	for _, quiz := range quizzes {
		responses = append(responses, *dto.NewQuizResponse(quiz))
	}
	return &dto.QuizListResponse{Quizzes: responses}, nil
}

// validateSourceURL is the pure input predicate: no network access happens
// before it passes. It returns the trimmed URL on success.
func validateSourceURL(rawURL string) (string, error) {
	url := strings.TrimSpace(rawURL)
	if url == "" {
		return "", domain.NewInvalidInputError("Please provide a valid Wikipedia URL")
	}
	if !strings.Contains(url, sourceDomainToken) {
		return "", domain.NewInvalidInputError("Please provide a valid Wikipedia URL")
	}
	return url, nil
}
