// Package questionbank holds the quiz questions and answer scale shipped with the binary.
package questionbank

import (
	"bytes"
	_ "embed"
	"fmt"
	"sort"

	"via-proposito/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var questionsYAML []byte

// Option is one point of the Likert scale.
type Option struct {
	Value int    `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// Question is one statement of the quiz.
type Question struct {
	ID       int             `yaml:"id" json:"id"`
	Category domain.Category `yaml:"category" json:"category"`
	Text     string          `yaml:"text" json:"text"`
}

// Bank is the full quiz: its answer scale and questions ordered by id.
type Bank struct {
	Options   []Option   `yaml:"options" json:"options"`
	Questions []Question `yaml:"questions" json:"questions"`
}

// Default parses the embedded question file.
func Default() (*Bank, error) {
	return Parse(questionsYAML)
}

// Parse decodes a question file and checks it against the scoring partition:
// ids exactly 1..37, each in the category that scores it, and one option per
// answer value.
func Parse(data []byte) (*Bank, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var bank Bank
	if err := dec.Decode(&bank); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}
	if err := bank.validate(); err != nil {
		return nil, err
	}
	return &bank, nil
}

func (b *Bank) validate() error {
	want := domain.MaxAnswerValue - domain.MinAnswerValue + 1
	if len(b.Options) != want {
		return fmt.Errorf("question bank: expected %d options, got %d", want, len(b.Options))
	}
	sort.Slice(b.Options, func(i, j int) bool { return b.Options[i].Value < b.Options[j].Value })
	for i, opt := range b.Options {
		if opt.Value != domain.MinAnswerValue+i {
			return fmt.Errorf("question bank: option values must be %d..%d", domain.MinAnswerValue, domain.MaxAnswerValue)
		}
		if opt.Label == "" {
			return fmt.Errorf("question bank: option %d has no label", opt.Value)
		}
	}

	if len(b.Questions) != domain.QuestionCount {
		return fmt.Errorf("question bank: expected %d questions, got %d", domain.QuestionCount, len(b.Questions))
	}
	sort.Slice(b.Questions, func(i, j int) bool { return b.Questions[i].ID < b.Questions[j].ID })
	for i, q := range b.Questions {
		if q.ID != i+1 {
			return fmt.Errorf("question bank: question ids must be 1..%d, found %d at position %d", domain.QuestionCount, q.ID, i+1)
		}
		expected, _ := domain.CategoryFor(q.ID)
		if q.Category != expected {
			return fmt.Errorf("question bank: question %d belongs to %s, not %q", q.ID, expected, q.Category)
		}
		if q.Text == "" {
			return fmt.Errorf("question bank: question %d has no text", q.ID)
		}
	}
	return nil
}

// ByCategory returns the questions scored under c.
func (b *Bank) ByCategory(c domain.Category) []Question {
	var out []Question
	for _, q := range b.Questions {
		if q.Category == c {
			out = append(out, q)
		}
	}
	return out
}
