package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quizcert/quizcert/internal/assemble"
	"github.com/quizcert/quizcert/internal/bank"
	"github.com/quizcert/quizcert/internal/cert"
	"github.com/quizcert/quizcert/internal/envinfo"
	"github.com/quizcert/quizcert/internal/grade"
	"github.com/quizcert/quizcert/internal/store"
)

const defaultCount = 20

func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.bank.Index().Categories)
}

func (s *Server) handleGenerateQuiz(w http.ResponseWriter, r *http.Request) {
	count := defaultCount
	if v := r.URL.Query().Get("count"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			count = n
		}
	}

	var categories []string
	if raw := strings.TrimSpace(r.URL.Query().Get("categories")); raw != "" {
		for _, tok := range strings.Split(raw, ",") {
			if id := strings.TrimSpace(tok); id != "" {
				categories = append(categories, id)
			}
		}
	}

	quiz, err := assemble.Assemble(s.bank, assemble.Options{
		CategoryIDs: categories,
		Count:       count,
		Seed:        r.URL.Query().Get("seed"),
	})
	if err != nil {
		var empty *assemble.EmptyPoolError
		if errors.As(err, &empty) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.log.Error("assemble failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to generate quiz")
		return
	}
	writeJSON(w, http.StatusOK, quiz)
}

// submitRequest round-trips the assembled quiz through the client, exactly
// as the offline flow hands a quiz file back to the grade operation.
type submitRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	JobTitle   string `json:"jobTitle"`
	Department string `json:"department"`

	QuizID             string            `json:"quizId"`
	Questions          []bank.Question   `json:"questions"`
	Answers            map[string]int    `json:"answers"`
	AllCategories      []string          `json:"allCategories"`
	SelectedCategories []string          `json:"selectedCategories"`
	CategoryNames      map[string]string `json:"categoryNames"`

	ExtraDetails *envinfo.Details `json:"extraDetails,omitempty"`
}

type submitResponse struct {
	AttemptID string `json:"attemptId"`
	*grade.Result
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	candidate := grade.Candidate{
		Name:       req.Name,
		Email:      req.Email,
		JobTitle:   req.JobTitle,
		Department: req.Department,
	}
	if err := grade.ValidateCandidate(candidate); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	quiz := &assemble.Quiz{
		ID:                 req.QuizID,
		Questions:          req.Questions,
		AllCategories:      req.AllCategories,
		SelectedCategories: req.SelectedCategories,
		CategoryNames:      req.CategoryNames,
	}
	result := grade.Grade(quiz, req.Answers)

	attempt := store.Attempt{
		ID:        uuid.NewString(),
		Candidate: candidate.Normalize(),
		Result:    result,
		Details:   req.ExtraDetails,
		CreatedAt: time.Now(),
	}
	s.attempts.Put(attempt)

	writeJSON(w, http.StatusOK, submitResponse{AttemptID: attempt.ID, Result: result})
}

func (s *Server) handleCertificate(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("attempt_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "attempt_id required")
		return
	}
	attempt, ok := s.attempts.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "attempt not found")
		return
	}

	details := attempt.Details
	if details.Empty() && s.locator != nil {
		// No client-supplied environment block; collect one here. The
		// location read is bounded and degrades to absent.
		details = envinfo.Collect(attempt.CreatedAt)
		details.Location = envinfo.LocateWithTimeout(r.Context(), s.locator, envinfo.DefaultLocateTimeout)
	}

	name := attempt.Candidate.Name
	if name == "" {
		name = "Candidate"
	}
	pdfBytes, err := s.renderer.Render(attempt.Result, name, details, attempt.CreatedAt)
	if err != nil {
		s.log.Error("certificate render failed", "attempt_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to generate certificate")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename=`+cert.Filename(name, attempt.CreatedAt))
	w.Write(pdfBytes)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
