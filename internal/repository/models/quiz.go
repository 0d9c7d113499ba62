package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StringSlice stores a string array as a jsonb column.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	bytesToParse, err := jsonBytes(value)
	if err != nil {
		return fmt.Errorf("StringSlice Scan: %w", err)
	}
	if bytesToParse == nil {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(bytesToParse, s)
}

// Entities stores the key_entities object as a jsonb column.
type Entities struct {
	People        []string `json:"people"`
	Organizations []string `json:"organizations"`
	Locations     []string `json:"locations"`
}

// Value implements the driver.Valuer interface
func (e Entities) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (e *Entities) Scan(value interface{}) error {
	bytesToParse, err := jsonBytes(value)
	if err != nil {
		return fmt.Errorf("Entities Scan: %w", err)
	}
	if bytesToParse == nil {
		*e = Entities{}
		return nil
	}
	return json.Unmarshal(bytesToParse, e)
}

// Question mirrors the quiz question JSON shape stored in the quiz column.
type Question struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Difficulty  string   `json:"difficulty"`
	Explanation string   `json:"explanation"`
}

// QuestionSlice stores the question array as a jsonb column.
type QuestionSlice []Question

// Value implements the driver.Valuer interface
func (q QuestionSlice) Value() (driver.Value, error) {
	if q == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(q)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (q *QuestionSlice) Scan(value interface{}) error {
	bytesToParse, err := jsonBytes(value)
	if err != nil {
		return fmt.Errorf("QuestionSlice Scan: %w", err)
	}
	if bytesToParse == nil {
		*q = QuestionSlice{}
		return nil
	}
	return json.Unmarshal(bytesToParse, q)
}

// jsonBytes normalizes a raw column value to JSON bytes. NULL, empty and the
// literal "null" all map to nil so scanners fall back to empty values.
func jsonBytes(value interface{}) ([]byte, error) {
	if value == nil {
		return nil, nil
	}

	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return nil, errors.New("unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(b) == 0 || string(b) == "null" {
		return nil, nil
	}
	return b, nil
}

// Quiz is the database row shape for a persisted quiz.
type Quiz struct {
	ID            string        `db:"id"`
	URL           string        `db:"url"`
	Title         string        `db:"title"`
	Summary       string        `db:"summary"`
	KeyEntities   Entities      `db:"key_entities"`
	Sections      StringSlice   `db:"sections"`
	Questions     QuestionSlice `db:"quiz"`
	RelatedTopics StringSlice   `db:"related_topics"`
	CreatedAt     time.Time     `db:"created_at"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
