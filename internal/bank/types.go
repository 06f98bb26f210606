package bank

// RawQuestion is one entry of the ingested bank document.
type RawQuestion struct {
	Topic       string   `json:"topic"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      int      `json:"answer"`
	Source      string   `json:"source"`
	Explanation string   `json:"explanation"`
}

// RawBank is the on-disk bank document shape.
type RawBank struct {
	Meta      Meta          `json:"meta"`
	Questions []RawQuestion `json:"questions"`
}

// Meta carries bank-level attribution.
type Meta struct {
	Title   string   `json:"title"`
	License string   `json:"license"`
	Sources []string `json:"sources"`
}

// Question is an immutable bank question. CategoryID is derived from the
// topic label (substring before the first ":", trimmed); CategoryLabel keeps
// the full topic string.
type Question struct {
	ID            string   `json:"id"`
	Stem          string   `json:"stem"`
	Options       []string `json:"options"`
	AnswerIndex   int      `json:"answerIndex"`
	CategoryID    string   `json:"categoryId"`
	CategoryLabel string   `json:"category"`
	Source        string   `json:"source"`
	Explanation   string   `json:"explanation,omitempty"`
}

// Category is a grouping key discovered while scanning the bank.
// DisplayName is the full topic label of the first question seen with
// this id.
type Category struct {
	ID          string `json:"id"`
	DisplayName string `json:"name"`
}
