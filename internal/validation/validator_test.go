package validation

import (
	"testing"
	"time"

	"via-proposito/internal/domain"
	"via-proposito/internal/dto"
	"via-proposito/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator() *Validator {
	v := NewValidator()
	v.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	return v
}

func codesByField(errs domain.ValidationErrors) map[string]domain.ErrorCode {
	out := make(map[string]domain.ErrorCode, len(errs))
	for _, e := range errs {
		out[e.Field] = e.Code
	}
	return out
}

func TestValidateStruct_SubmitTestRequest(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name string
		req  dto.SubmitTestRequest
		want map[string]domain.ErrorCode
	}{
		{
			name: "valid with demographics",
			req: dto.SubmitTestRequest{
				Email: "ana@example.com", BirthYear: 1990, Gender: "femenino",
				Occupation: "maestro", MaritalStatus: "casado", Answers: map[int]int{1: 1},
			},
			want: map[string]domain.ErrorCode{},
		},
		{
			name: "valid without demographics",
			req:  dto.SubmitTestRequest{Email: "ana@example.com", Answers: map[int]int{1: 1}},
			want: map[string]domain.ErrorCode{},
		},
		{
			name: "missing email and answers",
			req:  dto.SubmitTestRequest{},
			want: map[string]domain.ErrorCode{
				"email":   domain.CodeMissingField,
				"answers": domain.CodeMissingField,
			},
		},
		{
			name: "bad codes",
			req: dto.SubmitTestRequest{
				Email: "not-an-email", Gender: "x", Occupation: "astronauta",
				MaritalStatus: "complicado", Answers: map[int]int{},
			},
			want: map[string]domain.ErrorCode{
				"email":         domain.CodeInvalidFormat,
				"gender":        domain.CodeInvalidFormat,
				"occupation":    domain.CodeInvalidFormat,
				"maritalStatus": domain.CodeInvalidFormat,
			},
		},
		{
			name: "birth year in the future",
			req:  dto.SubmitTestRequest{Email: "ana@example.com", BirthYear: 2026, Answers: map[int]int{}},
			want: map[string]domain.ErrorCode{"birthYear": domain.CodeOutOfRange},
		},
		{
			name: "birth year too old",
			req:  dto.SubmitTestRequest{Email: "ana@example.com", BirthYear: 1899, Answers: map[int]int{}},
			want: map[string]domain.ErrorCode{"birthYear": domain.CodeOutOfRange},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.ValidateStruct(tt.req)
			assert.Equal(t, tt.want, codesByField(errs))
		})
	}
}

func TestValidateStruct_SendResultEmailRequest(t *testing.T) {
	v := newTestValidator()

	errs := v.ValidateStruct(dto.SendResultEmailRequest{Email: "ana@example.com", ResultID: util.NewULID()})
	assert.Empty(t, errs)

	errs = v.ValidateStruct(dto.SendResultEmailRequest{Email: "ana@example.com", ResultID: "42"})
	require.Len(t, errs, 1)
	assert.Equal(t, "resultId", errs[0].Field)
	assert.Equal(t, domain.CodeInvalidFormat, errs[0].Code)
}

func TestValidateEmail(t *testing.T) {
	v := newTestValidator()

	assert.Empty(t, v.ValidateEmail("email", "ana@example.com"))

	errs := v.ValidateEmail("email", "  ")
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CodeMissingField, errs[0].Code)

	errs = v.ValidateEmail("email", "ana")
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CodeInvalidFormat, errs[0].Code)
}

func TestValidateResultID(t *testing.T) {
	v := newTestValidator()

	assert.Empty(t, v.ValidateResultID(util.NewULID()))
	assert.Equal(t, domain.CodeMissingField, v.ValidateResultID("")[0].Code)
	assert.Equal(t, domain.CodeInvalidFormat, v.ValidateResultID("abc")[0].Code)
}

func TestParsePagination(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
		wantErrs  int
	}{
		{"defaults", "", "", 1, 20, 0},
		{"explicit", "3", "50", 3, 50, 0},
		{"limit capped", "1", "500", 1, 100, 0},
		{"not numbers", "a", "b", 1, 20, 2},
		{"zero page", "0", "10", 1, 10, 1},
		{"negative limit", "2", "-1", 2, 20, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit, errs := v.ParsePagination(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Len(t, errs, tt.wantErrs)
		})
	}
}
