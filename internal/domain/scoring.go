package domain

import (
	"fmt"
	"sort"
)

// CategoryResult is one ranked line of a scored test.
type CategoryResult struct {
	Category Category `json:"category"`
	Score    int      `json:"score"`
	Order    int      `json:"order"`
}

// Percentage returns the score as a share of the category maximum, 0..100.
func (r CategoryResult) Percentage() float64 {
	max := r.Category.MaxScore()
	if max == 0 {
		return 0
	}
	return float64(r.Score) * 100 / float64(max)
}

// Ranking is the scorer output: always four results, winner first.
type Ranking []CategoryResult

// Result is the winning category.
func (r Ranking) Result() Category {
	if len(r) == 0 {
		return ""
	}
	return r[0].Category
}

// Scores returns the per-category totals keyed by category name.
func (r Ranking) Scores() map[Category]int {
	scores := make(map[Category]int, len(r))
	for _, res := range r {
		scores[res.Category] = res.Score
	}
	return scores
}

// Score sums answers into the four categories and ranks them by score
// descending, then tie-break order ascending.
//
// Score never fails: question ids outside 1..37 are ignored and missing ids
// count as zero. Use ValidateAnswers first when completeness matters.
func Score(answers map[int]int) Ranking {
	totals := make(map[Category]int, len(Categories))
	for questionID, value := range answers {
		category, ok := CategoryFor(questionID)
		if !ok {
			continue
		}
		totals[category] += value
	}

	ranking := make(Ranking, 0, len(Categories))
	for _, c := range Categories {
		ranking = append(ranking, CategoryResult{Category: c, Score: totals[c], Order: c.Order()})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].Score != ranking[j].Score {
			return ranking[i].Score > ranking[j].Score
		}
		return ranking[i].Order < ranking[j].Order
	})
	return ranking
}

// RankingFromScores rebuilds a Ranking from stored category totals.
// Categories absent from scores rank with zero.
func RankingFromScores(scores map[Category]int) Ranking {
	ranking := make(Ranking, 0, len(Categories))
	for _, c := range Categories {
		ranking = append(ranking, CategoryResult{Category: c, Score: scores[c], Order: c.Order()})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].Score != ranking[j].Score {
			return ranking[i].Score > ranking[j].Score
		}
		return ranking[i].Order < ranking[j].Order
	})
	return ranking
}

// MissingQuestions lists the ids in 1..37 that have no answer, ascending.
func MissingQuestions(answers map[int]int) []int {
	var missing []int
	for id := 1; id <= QuestionCount; id++ {
		if _, ok := answers[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// ValidateAnswers checks that every question 1..37 is answered with a value
// in 1..4 and that no unknown ids are present.
func ValidateAnswers(answers map[int]int) ValidationErrors {
	var errs ValidationErrors

	if missing := MissingQuestions(answers); len(missing) > 0 {
		errs = append(errs, ValidationError{
			Field:   "answers",
			Code:    CodeIncompleteAnswers,
			Message: fmt.Sprintf("%d questions are unanswered", len(missing)),
			Value:   missing,
		})
	}

	ids := make([]int, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		field := fmt.Sprintf("answers.%d", id)
		if _, ok := CategoryFor(id); !ok {
			errs = append(errs, NewOutOfRangeError(field, id, 1, QuestionCount))
			continue
		}
		if v := answers[id]; v < MinAnswerValue || v > MaxAnswerValue {
			errs = append(errs, NewOutOfRangeError(field, v, MinAnswerValue, MaxAnswerValue))
		}
	}
	return errs
}
