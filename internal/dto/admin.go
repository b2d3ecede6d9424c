package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminRole is the only role the dashboard accepts.
const AdminRole = "admin"

// AdminClaims are the claims of a dashboard session token.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// CategoryCountResponse is how many results ended in one category.
type CategoryCountResponse struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Count    int    `json:"count"`
}

// DailyCountResponse is the number of tests on one day (YYYY-MM-DD).
type DailyCountResponse struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// LabelCountResponse is one bucket of a demographic distribution.
type LabelCountResponse struct {
	Code  string `json:"code,omitempty"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// TestSummaryResponse is one row of the admin test listings.
type TestSummaryResponse struct {
	ID             string         `json:"id"`
	Email          string         `json:"email,omitempty"`
	BirthYear      int            `json:"birth_year,omitempty"`
	Gender         string         `json:"gender,omitempty"`
	Occupation     string         `json:"occupation,omitempty"`
	MaritalStatus  string         `json:"marital_status,omitempty"`
	TestDate       time.Time      `json:"test_date"`
	FinalResult    string         `json:"final_result"`
	CategoryScores map[string]int `json:"categoryScores,omitempty"`
}

type StatsResponse struct {
	TotalTests           int                     `json:"totalTests"`
	CategoryDistribution []CategoryCountResponse `json:"categoryDistribution"`
	TestsByDay           []DailyCountResponse    `json:"testsByDay"`
	RecentTests          []TestSummaryResponse   `json:"recentTests"`
}

type DemographicsStats struct {
	Gender        []LabelCountResponse `json:"gender"`
	AgeGroups     []LabelCountResponse `json:"ageGroups"`
	Occupations   []LabelCountResponse `json:"occupations"`
	MaritalStatus []LabelCountResponse `json:"maritalStatus"`
}

type BasicStatsResponse struct {
	TotalTests           int                     `json:"totalTests"`
	TotalUsers           int                     `json:"totalUsers"`
	CategoryDistribution []CategoryCountResponse `json:"categoryDistribution"`
	Demographics         DemographicsStats       `json:"demographics"`
}

type TestsByDayResponse struct {
	TestsByDay []DailyCountResponse `json:"testsByDay"`
}

type AllTestsResponse struct {
	Tests       []TestSummaryResponse `json:"tests"`
	TotalTests  int                   `json:"totalTests"`
	TotalPages  int                   `json:"totalPages"`
	CurrentPage int                   `json:"currentPage"`
}

// DemographicsResponse carries codes and their display labels.
type DemographicsResponse struct {
	BirthYear          int    `json:"birth_year,omitempty"`
	Gender             string `json:"gender,omitempty"`
	GenderLabel        string `json:"gender_label"`
	Occupation         string `json:"occupation,omitempty"`
	OccupationLabel    string `json:"occupation_label"`
	MaritalStatus      string `json:"marital_status,omitempty"`
	MaritalStatusLabel string `json:"marital_status_label"`
}

type UserSummaryResponse struct {
	Email        string                `json:"email"`
	TotalTests   int                   `json:"totalTests"`
	FirstTest    time.Time             `json:"firstTest"`
	LastTest     time.Time             `json:"lastTest"`
	Demographics *DemographicsResponse `json:"demographics"`
	Tests        []TestSummaryResponse `json:"tests"`
}

type AnswerResponse struct {
	QuestionID  int `json:"questionId"`
	AnswerValue int `json:"answerValue"`
}

// TestResultDetailResponse is one stored result with every answer.
type TestResultDetailResponse struct {
	ID           string                  `json:"id"`
	Email        string                  `json:"email"`
	TestDate     time.Time               `json:"testDate"`
	FinalResult  string                  `json:"finalResult"`
	ResultTitle  string                  `json:"resultTitle"`
	Demographics DemographicsResponse    `json:"demographics"`
	Scores       []CategoryScoreResponse `json:"scores"`
	Answers      []AnswerResponse        `json:"answers"`
}
