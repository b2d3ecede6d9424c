package service

import (
	"context"
	"fmt"

	"via-proposito/internal/dto"
	"via-proposito/internal/questionbank"

	"github.com/jinzhu/copier"
)

// QuestionService serves the quiz questions and answer scale.
type QuestionService interface {
	Questions(ctx context.Context) (*dto.QuestionsResponse, error)
}

type questionService struct {
	resp *dto.QuestionsResponse
}

// NewQuestionService maps the bank once; the response is immutable afterwards.
func NewQuestionService(bank *questionbank.Bank) (QuestionService, error) {
	resp := &dto.QuestionsResponse{}
	if err := copier.Copy(resp, bank); err != nil {
		return nil, fmt.Errorf("failed to map question bank: %w", err)
	}
	return &questionService{resp: resp}, nil
}

func (s *questionService) Questions(ctx context.Context) (*dto.QuestionsResponse, error) {
	return s.resp, nil
}
