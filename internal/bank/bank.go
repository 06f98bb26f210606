// Package bank loads a static question-bank document and indexes it into
// categories. A Bank is built once, is immutable afterwards, and is safe to
// share across any number of concurrent quiz assemblies.
package bank

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a bank document.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// Bank is the loaded, indexed question bank.
type Bank struct {
	Meta      Meta
	Questions []Question

	index *Index
}

// Index maps category ids to categories. Categories preserves insertion
// order of first appearance for stable listing.
type Index struct {
	Categories []Category
	byID       map[string]Category
}

// Lookup returns the category for id, if known.
func (ix *Index) Lookup(id string) (Category, bool) {
	c, ok := ix.byID[id]
	return c, ok
}

// Load reads and parses a bank document from path. The format is chosen by
// file extension: .yaml/.yml is YAML, everything else JSON.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank: %w", err)
	}
	format := FormatJSON
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FormatYAML
	}
	return Parse(data, format)
}

// Parse validates and decodes a bank document, then builds the category
// index. Structural problems are reported as *MalformedBankError.
func Parse(data []byte, format Format) (*Bank, error) {
	if format == FormatYAML {
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, &MalformedBankError{Reason: "invalid YAML", Err: err}
		}
		// Re-encode so the schema validator and decoder see plain JSON values.
		var err error
		data, err = json.Marshal(doc)
		if err != nil {
			return nil, &MalformedBankError{Reason: "convert YAML document", Err: err}
		}
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedBankError{Reason: "invalid JSON", Err: err}
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	var raw RawBank
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &MalformedBankError{Reason: "decode document", Err: err}
	}
	return build(raw)
}

// build converts raw questions into indexed bank questions. Duplicate stems
// are dropped (first wins). Answer indices are bounds-checked here because
// the schema cannot relate them to the options length.
func build(raw RawBank) (*Bank, error) {
	b := &Bank{
		Meta: raw.Meta,
		index: &Index{
			byID: make(map[string]Category),
		},
	}

	seenStems := make(map[string]struct{}, len(raw.Questions))
	for i, rq := range raw.Questions {
		if rq.Answer < 0 || rq.Answer >= len(rq.Options) {
			return nil, &MalformedBankError{
				Reason: fmt.Sprintf("question %d: answer index %d out of range for %d options", i, rq.Answer, len(rq.Options)),
			}
		}
		if _, dup := seenStems[rq.Question]; dup {
			continue
		}
		seenStems[rq.Question] = struct{}{}

		catID := CategoryIDFromTopic(rq.Topic)
		if _, known := b.index.byID[catID]; !known {
			cat := Category{ID: catID, DisplayName: rq.Topic}
			b.index.byID[catID] = cat
			b.index.Categories = append(b.index.Categories, cat)
		}

		b.Questions = append(b.Questions, Question{
			ID:            uuid.NewString(),
			Stem:          rq.Question,
			Options:       rq.Options,
			AnswerIndex:   rq.Answer,
			CategoryID:    catID,
			CategoryLabel: rq.Topic,
			Source:        rq.Source,
			Explanation:   rq.Explanation,
		})
	}

	return b, nil
}

// CategoryIDFromTopic derives a category id from a structured topic label:
// the substring before the first ":" separator, trimmed.
func CategoryIDFromTopic(topic string) string {
	id, _, _ := strings.Cut(topic, ":")
	return strings.TrimSpace(id)
}

// Index returns the category index built at load time.
func (b *Bank) Index() *Index { return b.index }

// CategoryIDs returns every category id known to the bank, in first-seen
// order.
func (b *Bank) CategoryIDs() []string {
	ids := make([]string, len(b.index.Categories))
	for i, c := range b.index.Categories {
		ids[i] = c.ID
	}
	return ids
}

// CategoryNames maps category id to display name.
func (b *Bank) CategoryNames() map[string]string {
	names := make(map[string]string, len(b.index.Categories))
	for _, c := range b.index.Categories {
		names[c.ID] = c.DisplayName
	}
	return names
}

// Stats returns the question count per category id.
func (b *Bank) Stats() map[string]int {
	stats := make(map[string]int, len(b.index.Categories))
	for _, q := range b.Questions {
		stats[q.CategoryID]++
	}
	return stats
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int { return len(b.Questions) }
