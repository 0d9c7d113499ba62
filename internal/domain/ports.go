package domain

import "context"

// ArticleFetcher retrieves the raw document behind an article URL.
// A failed fetch is terminal for the pipeline execution; retry policy, if
// any, belongs to the caller.
type ArticleFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// ContentExtractor isolates the article title and body text from a raw
// document. Both operations degrade instead of failing: a missing heading
// yields a fallback title, a missing content region yields the whole
// document as body.
type ContentExtractor interface {
	ExtractTitle(html string) string
	ExtractBody(html string) string
}

// QuizGenerator invokes the generative model and returns its raw text
// completion for the given article.
type QuizGenerator interface {
	Generate(ctx context.Context, title string, article string) (string, error)
}

// QuizRepository is the persistence gateway for quiz records.
type QuizRepository interface {
	// Save inserts the quiz and fills in the store-assigned ID and CreatedAt.
	Save(ctx context.Context, quiz *Quiz) error
	// ListAll returns every stored quiz ordered by creation time, newest first.
	ListAll(ctx context.Context) ([]*Quiz, error)
}
