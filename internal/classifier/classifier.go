package classifier

import "strings"

// Product is one label of the keyword table with its substring triggers.
type Product struct {
	Label    string   `yaml:"label"`
	Keywords []string `yaml:"keywords"`
}

// KeywordTable is an ordered product table. Earlier products win ties.
type KeywordTable struct {
	Default  string    `yaml:"default"`
	Products []Product `yaml:"products"`
}

// Result explains a classification.
type Result struct {
	Label   string
	Score   int
	Matched []string
}

// Classifier maps free text to a product label by counting keyword hits.
type Classifier struct {
	table KeywordTable
}

// New copies the table and lowercases every trigger.
func New(table KeywordTable) *Classifier {
	products := make([]Product, 0, len(table.Products))
	for _, p := range table.Products {
		kws := make([]string, 0, len(p.Keywords))
		for _, kw := range p.Keywords {
			kws = append(kws, strings.ToLower(kw))
		}
		products = append(products, Product{Label: p.Label, Keywords: kws})
	}
	return &Classifier{table: KeywordTable{Default: table.Default, Products: products}}
}

// Classify returns the label with the strictly highest number of triggers
// contained in text, or the table default when nothing matches.
func (c *Classifier) Classify(text string) string {
	return c.Match(text).Label
}

// Match is Classify plus the score and the triggers that hit.
func (c *Classifier) Match(text string) Result {
	lower := strings.ToLower(text)
	best := Result{Label: c.table.Default}

	for _, p := range c.table.Products {
		var hits []string
		for _, kw := range p.Keywords {
			if strings.Contains(lower, kw) {
				hits = append(hits, kw)
			}
		}
		if len(hits) > best.Score {
			best = Result{Label: p.Label, Score: len(hits), Matched: hits}
		}
	}
	return best
}

// Default returns the catch-all label.
func (c *Classifier) Default() string { return c.table.Default }
