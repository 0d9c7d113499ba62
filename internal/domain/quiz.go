package domain

import "time"

const (
	// QuestionCount is the number of questions a conforming quiz carries.
	QuestionCount = 7
	// OptionCount is the number of answer options per question.
	OptionCount = 4

	RelatedTopicsMin = 4
	RelatedTopicsMax = 6
)

// QuizQuestion is a single multiple-choice question. The answer is expected
// to match one of the options by exact string comparison, but ingestion does
// not enforce it; consumers must check AnswerInOptions before trusting it.
type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Difficulty  string   `json:"difficulty"`
	Explanation string   `json:"explanation"`
}

// AnswerInOptions reports whether the answer exactly matches one option.
func (q QuizQuestion) AnswerInOptions() bool {
	for _, opt := range q.Options {
		if opt == q.Answer {
			return true
		}
	}
	return false
}

// KeyEntities groups the named entities extracted from an article.
type KeyEntities struct {
	People        []string `json:"people"`
	Organizations []string `json:"organizations"`
	Locations     []string `json:"locations"`
}

// Normalized returns a copy with nil lists replaced by empty ones so that
// consumers and JSON encoding never see null entity lists.
func (e KeyEntities) Normalized() KeyEntities {
	if e.People == nil {
		e.People = []string{}
	}
	if e.Organizations == nil {
		e.Organizations = []string{}
	}
	if e.Locations == nil {
		e.Locations = []string{}
	}
	return e
}

// Quiz is the persisted unit produced by one pipeline execution. ID and
// CreatedAt are assigned by the persistence gateway at insert time; a quiz is
// immutable once stored, and regenerating the same URL creates a new record.
type Quiz struct {
	ID            string         `json:"id"`
	URL           string         `json:"url"`
	Title         string         `json:"title"`
	Summary       string         `json:"summary"`
	KeyEntities   KeyEntities    `json:"key_entities"`
	Sections      []string       `json:"sections"`
	Questions     []QuizQuestion `json:"quiz"`
	RelatedTopics []string       `json:"related_topics"`
	CreatedAt     time.Time      `json:"created_at"`
}

// Conforms reports whether the quiz satisfies the strict schema: exactly
// QuestionCount questions, each with OptionCount distinct options and an
// answer matching one of them. Ingestion accepts non-conforming records
// (defaulting, never inventing data); this is the cross-check for consumers
// that want the strict shape.
func (q *Quiz) Conforms() bool {
	if len(q.Questions) != QuestionCount {
		return false
	}
	for _, question := range q.Questions {
		if len(question.Options) != OptionCount {
			return false
		}
		seen := make(map[string]struct{}, OptionCount)
		for _, opt := range question.Options {
			if _, dup := seen[opt]; dup {
				return false
			}
			seen[opt] = struct{}{}
		}
		if !question.AnswerInOptions() {
			return false
		}
	}
	return true
}
