package bank

import "fmt"

// MalformedBankError indicates the bank document is missing required
// structure. It is fatal: a caller must not operate on a partially
// loaded bank.
type MalformedBankError struct {
	Reason string
	Err    error
}

func (e *MalformedBankError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed question bank: %s: %v", e.Reason, e.Err)
	}
	return "malformed question bank: " + e.Reason
}

func (e *MalformedBankError) Unwrap() error { return e.Err }
