package seedmodels

import (
	"fmt"

	"via-proposito/internal/domain"
	"via-proposito/internal/dto"
)

// SeedResult is one demo submission in the YAML seed file. Every question of
// a category is answered with the value listed for it in Values.
type SeedResult struct {
	Email         string         `yaml:"email"`
	BirthYear     int            `yaml:"birth_year"`
	Gender        string         `yaml:"gender"`
	Occupation    string         `yaml:"occupation"`
	MaritalStatus string         `yaml:"marital_status"`
	Values        map[string]int `yaml:"values"`
}

// SeedFile is the root of the seed file.
type SeedFile struct {
	Results []SeedResult `yaml:"results"`
}

// ToRequest expands the per-category values into a full answer set.
func (s SeedResult) ToRequest() (*dto.SubmitTestRequest, error) {
	answers := make(map[int]int, domain.QuestionCount)
	for _, c := range domain.Categories {
		value, ok := s.Values[c.String()]
		if !ok {
			return nil, fmt.Errorf("seed %s: missing value for category %s", s.Email, c)
		}
		for _, id := range c.QuestionIDs() {
			answers[id] = value
		}
	}
	for name := range s.Values {
		if _, err := domain.ParseCategory(name); err != nil {
			return nil, fmt.Errorf("seed %s: %w", s.Email, err)
		}
	}

	return &dto.SubmitTestRequest{
		Email:         s.Email,
		BirthYear:     s.BirthYear,
		Gender:        s.Gender,
		Occupation:    s.Occupation,
		MaritalStatus: s.MaritalStatus,
		Answers:       answers,
	}, nil
}
