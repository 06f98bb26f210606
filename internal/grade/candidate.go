package grade

import (
	"regexp"
	"strings"
)

// Candidate identifies who took the quiz. Only the name is required.
type Candidate struct {
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	JobTitle   string `json:"jobTitle,omitempty"`
	Department string `json:"department,omitempty"`
}

const (
	minNameLen  = 2
	maxNameLen  = 100
	maxEmailLen = 254
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateCandidate checks candidate identity before assembly. Name must be
// non-empty after trimming and at least two characters; email is optional
// but must be well-formed when supplied. Returns *ValidationError.
func ValidateCandidate(c Candidate) error {
	name := strings.TrimSpace(c.Name)
	if len(name) < minNameLen {
		return &ValidationError{Field: "name", Reason: "must be at least 2 characters"}
	}
	if len(name) > maxNameLen {
		return &ValidationError{Field: "name", Reason: "must be at most 100 characters"}
	}

	email := strings.TrimSpace(c.Email)
	if email != "" {
		if len(email) > maxEmailLen || !emailPattern.MatchString(email) {
			return &ValidationError{Field: "email", Reason: "invalid email address"}
		}
	}
	return nil
}

// Normalize returns a copy with all fields trimmed.
func (c Candidate) Normalize() Candidate {
	return Candidate{
		Name:       strings.TrimSpace(c.Name),
		Email:      strings.TrimSpace(c.Email),
		JobTitle:   strings.TrimSpace(c.JobTitle),
		Department: strings.TrimSpace(c.Department),
	}
}
