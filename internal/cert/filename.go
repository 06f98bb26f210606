package cert

import (
	"fmt"
	"strings"
	"time"
)

// Filename suggests a download name incorporating the candidate's name and
// the issue date. Characters outside [A-Za-z0-9_-] are collapsed to a
// single underscore so the name is safe in Content-Disposition headers and
// on every filesystem.
func Filename(name string, date time.Time) string {
	var b strings.Builder
	lastSafe := true
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
			lastSafe = true
		default:
			if lastSafe {
				b.WriteByte('_')
			}
			lastSafe = false
		}
	}
	safe := strings.Trim(b.String(), "_")
	if safe == "" {
		safe = "Candidate"
	}
	return fmt.Sprintf("Certificate_%s_%s.pdf", safe, date.Format("2006-01-02"))
}
