package service

import (
	"context"

	"wikiquiz/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockArticleFetcher struct {
	mock.Mock
}

func (m *MockArticleFetcher) Fetch(ctx context.Context, url string) (string, error) {
	args := m.Called(ctx, url)
	return args.String(0), args.Error(1)
}

type MockContentExtractor struct {
	mock.Mock
}

func (m *MockContentExtractor) ExtractTitle(html string) string {
	args := m.Called(html)
	return args.String(0)
}

func (m *MockContentExtractor) ExtractBody(html string) string {
	args := m.Called(html)
	return args.String(0)
}

type MockQuizGenerator struct {
	mock.Mock
}

func (m *MockQuizGenerator) Generate(ctx context.Context, title string, article string) (string, error) {
	args := m.Called(ctx, title, article)
	return args.String(0), args.Error(1)
}

type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) Save(ctx context.Context, quiz *domain.Quiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

func (m *MockQuizRepository) ListAll(ctx context.Context) ([]*domain.Quiz, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Quiz), args.Error(1)
}
