package grade

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/quizcert/quizcert/internal/assemble"
	"github.com/quizcert/quizcert/internal/bank"
)

// newQuiz builds a quiz with 2 questions in A01 and 2 in A02, all with
// answer index 0.
func newQuiz() *assemble.Quiz {
	return &assemble.Quiz{
		ID: "quiz-1",
		Questions: []bank.Question{
			{ID: "q0", Stem: "a01 q1", Options: []string{"a", "b"}, AnswerIndex: 0, CategoryID: "A01"},
			{ID: "q1", Stem: "a01 q2", Options: []string{"a", "b"}, AnswerIndex: 0, CategoryID: "A01"},
			{ID: "q2", Stem: "a02 q1", Options: []string{"a", "b"}, AnswerIndex: 0, CategoryID: "A02"},
			{ID: "q3", Stem: "a02 q2", Options: []string{"a", "b"}, AnswerIndex: 0, CategoryID: "A02"},
		},
		AllCategories:      []string{"A01", "A02"},
		SelectedCategories: []string{"A01", "A02"},
		CategoryNames: map[string]string{
			"A01": "A01: Broken Access Control",
			"A02": "A02: Cryptographic Failures",
		},
	}
}

func TestGrade_ConcreteScenario(t *testing.T) {
	quiz := newQuiz()
	// One right and one wrong in A01, both right in A02.
	answers := map[string]int{"q0": 0, "q1": 1, "q2": 0, "q3": 0}

	result := Grade(quiz, answers)

	if result.Score != 3 {
		t.Errorf("Score = %d, want 3", result.Score)
	}
	if result.Total != 4 {
		t.Errorf("Total = %d, want 4", result.Total)
	}
	if result.Percentage != 75 {
		t.Errorf("Percentage = %d, want 75", result.Percentage)
	}
	if !result.Passed {
		t.Error("Passed = false, want true at exactly the threshold")
	}
	if got := result.PerCategory["A01"]; got.Correct != 1 || got.Total != 2 {
		t.Errorf("PerCategory[A01] = %+v, want 1/2", got)
	}
	if got := result.PerCategory["A02"]; got.Correct != 2 || got.Total != 2 {
		t.Errorf("PerCategory[A02] = %+v, want 2/2", got)
	}
}

func TestGrade_OrderIndependence(t *testing.T) {
	quiz := newQuiz()
	answers := map[string]int{"q0": 0, "q1": 1, "q2": 0, "q3": 0}
	want := Grade(quiz, answers)

	r := rand.New(rand.NewPCG(3, 9))
	for i := 0; i < 10; i++ {
		shuffled := newQuiz()
		r.Shuffle(len(shuffled.Questions), func(a, b int) {
			shuffled.Questions[a], shuffled.Questions[b] = shuffled.Questions[b], shuffled.Questions[a]
		})
		got := Grade(shuffled, answers)

		if got.Score != want.Score || got.Percentage != want.Percentage || got.Passed != want.Passed {
			t.Fatalf("permuted grading diverged: got %d/%d%%, want %d/%d%%",
				got.Score, got.Percentage, want.Score, want.Percentage)
		}
		for id, cs := range want.PerCategory {
			if got.PerCategory[id] != cs {
				t.Fatalf("PerCategory[%s] = %+v, want %+v", id, got.PerCategory[id], cs)
			}
		}
	}
}

func TestGrade_UnansweredAndOutOfRange(t *testing.T) {
	quiz := newQuiz()
	// q0 unanswered, q1 out of range, q2 negative, q3 correct. Grading
	// must not fail; all three defects count as incorrect.
	answers := map[string]int{"q1": 99, "q2": -1, "q3": 0}

	result := Grade(quiz, answers)

	if result.Score != 1 {
		t.Errorf("Score = %d, want 1", result.Score)
	}
	if result.Total != 4 {
		t.Errorf("Total = %d, want 4", result.Total)
	}
	if result.Passed {
		t.Error("Passed = true, want false")
	}
}

func TestGrade_CategoryTotalsSumToTotal(t *testing.T) {
	quiz := newQuiz()
	result := Grade(quiz, map[string]int{"q0": 0})

	sum := 0
	for _, cs := range result.PerCategory {
		sum += cs.Total
	}
	if sum != result.Total {
		t.Errorf("sum of category totals = %d, want %d", sum, result.Total)
	}
}

func TestGrade_EmptyCategoryStillPresent(t *testing.T) {
	quiz := newQuiz()
	quiz.AllCategories = append(quiz.AllCategories, "A03")

	result := Grade(quiz, nil)

	cs, ok := result.PerCategory["A03"]
	if !ok {
		t.Fatal("category with zero questions missing from PerCategory")
	}
	if cs.Correct != 0 || cs.Total != 0 {
		t.Errorf("PerCategory[A03] = %+v, want 0/0", cs)
	}
}

func TestPercentage_RoundHalfUp(t *testing.T) {
	tests := []struct {
		score, total, want int
	}{
		{0, 0, 0},
		{0, 4, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13}, // 12.5 rounds up
		{5, 8, 63}, // 62.5 rounds up
		{3, 4, 75},
		{4, 4, 100},
	}
	for _, tt := range tests {
		if got := Percentage(tt.score, tt.total); got != tt.want {
			t.Errorf("Percentage(%d, %d) = %d, want %d", tt.score, tt.total, got, tt.want)
		}
	}
}

func TestValidateCandidate(t *testing.T) {
	tests := []struct {
		name      string
		candidate Candidate
		wantErr   bool
	}{
		{"valid name only", Candidate{Name: "Ada Lovelace"}, false},
		{"valid with email", Candidate{Name: "Ada", Email: "ada@example.org"}, false},
		{"empty name", Candidate{Name: ""}, true},
		{"whitespace name", Candidate{Name: "   "}, true},
		{"single char name", Candidate{Name: "A"}, true},
		{"name too long", Candidate{Name: strings.Repeat("x", 150)}, true},
		{"bad email", Candidate{Name: "Ada", Email: "not-an-email"}, true},
		{"email without tld", Candidate{Name: "Ada", Email: "a@b"}, true},
		{"optional fields free-form", Candidate{Name: "Ada", JobTitle: "CTO", Department: "R&D"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCandidate(tt.candidate)
			if tt.wantErr && err == nil {
				t.Error("want error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestCandidate_Normalize(t *testing.T) {
	c := Candidate{Name: "  Ada  ", Email: " ada@example.org "}.Normalize()
	if c.Name != "Ada" || c.Email != "ada@example.org" {
		t.Errorf("Normalize = %+v", c)
	}
}
