// Package grade scores a submitted attempt against a quiz's answer keys and
// aggregates per-category statistics. Grading never fails: unanswered or
// out-of-range answers simply count as incorrect.
//
// Percentage and the pass threshold live here and nowhere else; every
// surface that displays a verdict must consume a Result rather than
// recompute it, so score and pass/fail can never disagree.
package grade

import (
	"math"

	"github.com/quizcert/quizcert/internal/assemble"
)

// PassThreshold is the fixed pass/fail policy: a percentage at or above
// this value passes. Not user-configurable.
const PassThreshold = 75

// CategoryScore is the per-category tally.
type CategoryScore struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Result is the immutable scored outcome of an attempt.
type Result struct {
	Score       int                      `json:"score"`
	Total       int                      `json:"total"`
	Percentage  int                      `json:"percentage"`
	Passed      bool                     `json:"passed"`
	PerCategory map[string]CategoryScore `json:"perCategory"`

	CategoryNames      map[string]string `json:"categoryNames"`
	AllCategories      []string          `json:"allCategories"`
	SelectedCategories []string          `json:"selectedCategories"`
}

// Grade scores answers against the quiz. Answers is a partial mapping from
// question id to selected option index; absent entries are unanswered.
// Every category in the quiz's AllCategories gets a counter, so a category
// with no questions in this quiz still reports 0/0 rather than being absent.
func Grade(quiz *assemble.Quiz, answers map[string]int) *Result {
	per := make(map[string]CategoryScore, len(quiz.AllCategories))
	for _, id := range quiz.AllCategories {
		per[id] = CategoryScore{}
	}

	score := 0
	for _, q := range quiz.Questions {
		cs := per[q.CategoryID]
		cs.Total++
		if ans, ok := answers[q.ID]; ok && ans == q.AnswerIndex {
			score++
			cs.Correct++
		}
		per[q.CategoryID] = cs
	}

	total := len(quiz.Questions)
	pct := Percentage(score, total)
	return &Result{
		Score:              score,
		Total:              total,
		Percentage:         pct,
		Passed:             pct >= PassThreshold,
		PerCategory:        per,
		CategoryNames:      quiz.CategoryNames,
		AllCategories:      quiz.AllCategories,
		SelectedCategories: quiz.SelectedCategories,
	}
}

// Percentage returns round-half-up(score/total*100). A zero total yields 0.
// This is the only percentage computation in the engine.
func Percentage(score, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}
