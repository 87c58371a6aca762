// Package classify scores email messages against heuristic signal rules
// built on the wildmatch engine.
//
// Each category (marketing, newsletter, social, spam, work, unsubscribe)
// carries a set of weighted rules; a rule aims a list of wildcard patterns
// at one message field. A rule fires when its patterns appear in the field
// at least once, and the category score is the fired share of the
// category's total weight. The highest-scoring category wins.
//
// Scoring is best-effort by construction: unmatched or malformed patterns
// contribute nothing and never fail, mirroring the engine's total
// semantics.
package classify

import (
	"github.com/samber/lo"

	"github.com/coregx/wildmatch"
)

// Field names a message field a rule applies to.
const (
	FieldSenderEmail = "sender_email"
	FieldSenderName  = "sender_name"
	FieldSubject     = "subject"
	FieldSnippet     = "snippet"
)

// Message holds the text fields of one email message.
type Message struct {
	ID          string
	SenderEmail string
	SenderName  string
	Subject     string
	Snippet     string
}

// field returns the text of the named field; unknown names yield "".
func (m Message) field(name string) string {
	switch name {
	case FieldSenderEmail:
		return m.SenderEmail
	case FieldSenderName:
		return m.SenderName
	case FieldSubject:
		return m.Subject
	case FieldSnippet:
		return m.Snippet
	}
	return ""
}

// Rule is one weighted signal: a list of wildcard patterns aimed at one
// message field.
type Rule struct {
	Name     string   `yaml:"name"`
	Field    string   `yaml:"field"`
	Patterns []string `yaml:"patterns"`
	Weight   float64  `yaml:"weight"`
}

// RuleSet groups the rules of one category.
type RuleSet struct {
	Category string `yaml:"category"`
	Rules    []Rule `yaml:"rules"`
}

// Result is the outcome of scoring one message.
type Result struct {
	// Category is the highest-scoring category, or "" when nothing fired.
	Category string `json:"category"`

	// Score is the winning category's score in [0, 1].
	Score float64 `json:"score"`

	// Scores holds every category's score, fired or not.
	Scores map[string]float64 `json:"scores"`

	// Signals lists the fired rules as "category/rule-name", in rule
	// order, for debugging.
	Signals []string `json:"signals"`
}

// compiledSet is a RuleSet with its patterns compiled once.
type compiledSet struct {
	set         RuleSet
	totalWeight float64
	patterns    [][]*wildmatch.Pattern // parallel to set.Rules
}

// Classifier scores messages against a fixed collection of rule sets.
// Patterns are compiled at construction; scoring is pure and reentrant.
type Classifier struct {
	sets []compiledSet
}

// New builds a Classifier from the given rule sets.
func New(sets ...RuleSet) *Classifier {
	c := &Classifier{sets: make([]compiledSet, 0, len(sets))}
	for _, set := range sets {
		cs := compiledSet{
			set:         set,
			totalWeight: lo.SumBy(set.Rules, func(r Rule) float64 { return r.Weight }),
			patterns:    make([][]*wildmatch.Pattern, len(set.Rules)),
		}
		for i, rule := range set.Rules {
			cs.patterns[i] = lo.Map(rule.Patterns, func(p string, _ int) *wildmatch.Pattern {
				return wildmatch.Compile(p)
			})
		}
		c.sets = append(c.sets, cs)
	}
	return c
}

// Default returns a Classifier loaded with the built-in rule sets.
func Default() *Classifier {
	return New(DefaultRules()...)
}

// Score evaluates every category against the message.
//
// A rule fires when the summed occurrence count of its patterns over the
// target field is at least one; occurrence counting (not mere containment)
// is what lets densely repeated signals fire on the same footing as single
// strong ones once thresholds are layered on top.
func (c *Classifier) Score(msg Message) Result {
	res := Result{
		Scores: make(map[string]float64, len(c.sets)),
	}

	for _, cs := range c.sets {
		fired := 0.0
		for i, rule := range cs.set.Rules {
			text := msg.field(rule.Field)
			if text == "" {
				continue
			}
			if ruleHits(cs.patterns[i], text) == 0 {
				continue
			}
			fired += rule.Weight
			res.Signals = append(res.Signals, cs.set.Category+"/"+rule.Name)
		}

		score := 0.0
		if cs.totalWeight > 0 {
			score = fired / cs.totalWeight
		}
		res.Scores[cs.set.Category] = score

		// First-listed category wins ties, keeping results deterministic.
		if score > res.Score {
			res.Score = score
			res.Category = cs.set.Category
		}
	}

	return res
}

// ruleHits sums occurrence counts over a rule's compiled patterns.
func ruleHits(patterns []*wildmatch.Pattern, text string) int {
	return lo.SumBy(patterns, func(p *wildmatch.Pattern) int {
		return p.Count(text)
	})
}

// Categories returns the category names in rule-set order.
func (c *Classifier) Categories() []string {
	return lo.Map(c.sets, func(cs compiledSet, _ int) string {
		return cs.set.Category
	})
}
