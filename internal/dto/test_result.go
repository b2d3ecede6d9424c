package dto

import "time"

// SubmitTestRequest is the body of a completed quiz.
// @Description Demographics are optional; answers map question id (1..37) to a value 1..4.
type SubmitTestRequest struct {
	Email         string      `json:"email" validate:"required,email,max=255"`
	BirthYear     int         `json:"birthYear,omitempty" validate:"omitempty,birthyear"`
	Gender        string      `json:"gender,omitempty" validate:"omitempty,gender"`
	Occupation    string      `json:"occupation,omitempty" validate:"omitempty,occupation"`
	MaritalStatus string      `json:"maritalStatus,omitempty" validate:"omitempty,marital_status"`
	Answers       map[int]int `json:"answers" validate:"required"`
}

// CategoryScoreResponse is one category of a scored test.
type CategoryScoreResponse struct {
	Category   string  `json:"category"`
	Title      string  `json:"title"`
	Score      int     `json:"score"`
	MaxScore   int     `json:"maxScore"`
	Percentage float64 `json:"percentage"`
}

// SubmitTestResponse is returned after a result is stored.
type SubmitTestResponse struct {
	Success        bool                    `json:"success"`
	ID             string                  `json:"id"`
	Result         string                  `json:"result"`
	ResultTitle    string                  `json:"resultTitle"`
	CategoryScores map[string]int          `json:"categoryScores"`
	Ranking        []CategoryScoreResponse `json:"ranking"`
}

type CheckEmailResponse struct {
	Exists bool `json:"exists"`
}

// SendResultEmailRequest asks for the report of a stored result. The email
// must match the one the result was stored with.
type SendResultEmailRequest struct {
	Email    string `json:"email" validate:"required,email"`
	ResultID string `json:"resultId" validate:"required,ulid"`
}

type SendResultEmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// OptionResponse is one point of the answer scale.
type OptionResponse struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// QuestionResponse is one quiz statement.
type QuestionResponse struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Text     string `json:"text"`
}

// QuestionsResponse is the full quiz as served to the client.
type QuestionsResponse struct {
	Options   []OptionResponse   `json:"options"`
	Questions []QuestionResponse `json:"questions"`
}

// HealthResponse reports dependency status.
type HealthResponse struct {
	Status   string    `json:"status"`
	Database string    `json:"database"`
	Cache    string    `json:"cache,omitempty"`
	Time     time.Time `json:"time"`
}
