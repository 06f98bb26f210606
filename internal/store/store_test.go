package store

import (
	"testing"
	"time"

	"github.com/quizcert/quizcert/internal/grade"
)

func TestAttemptStore_PutGet(t *testing.T) {
	s := NewAttemptStore()

	a := Attempt{
		ID:        "attempt-1",
		Candidate: grade.Candidate{Name: "Ada"},
		Result:    &grade.Result{Score: 3, Total: 4},
		CreatedAt: time.Now(),
	}
	s.Put(a)

	got, ok := s.Get("attempt-1")
	if !ok {
		t.Fatal("stored attempt not found")
	}
	if got.Candidate.Name != "Ada" || got.Result.Score != 3 {
		t.Errorf("got %+v", got)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestAttemptStore_MissingID(t *testing.T) {
	s := NewAttemptStore()
	if _, ok := s.Get("nope"); ok {
		t.Error("Get on missing id should report absence")
	}
}
