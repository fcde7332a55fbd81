package dateparse

import (
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Match is a single candidate produced by the grammar collaborator.
type Match struct {
	Text  string
	Index int
	Time  time.Time
}

// Grammar recognizes natural-language date/time phrases ("next friday",
// "in 3 days", "at 5pm") in free text. Implementations return the first
// candidate and whether one was found at all.
type Grammar interface {
	Parse(text string, base time.Time) (Match, bool)
}

// WhenGrammar adapts github.com/olebedev/when to the Grammar interface.
type WhenGrammar struct {
	w *when.Parser
}

// NewWhenGrammar builds the production grammar with the English and common
// rule sets.
func NewWhenGrammar() *WhenGrammar {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &WhenGrammar{w: w}
}

// Parse runs the grammar over text. Library errors degrade to "no match";
// they must never propagate to a keystroke handler.
func (g *WhenGrammar) Parse(text string, base time.Time) (Match, bool) {
	r, err := g.w.Parse(text, base)
	if err != nil || r == nil {
		return Match{}, false
	}
	return Match{Text: r.Text, Index: r.Index, Time: r.Time}, true
}
