package dateparse

import (
	"fmt"
	"strings"
	"time"
)

// Parser extracts a date/time phrase embedded in free text, reporting the
// resolved date together with the exact span of the matched substring.
//
// Parsing is two-tier: the natural-language grammar runs first; when it
// finds nothing, a small fixed keyword table is searched as a fallback.
type Parser struct {
	grammar  Grammar
	location *time.Location
	now      func() time.Time
}

// NewParser creates a parser for the given IANA timezone string.
// e.g. "Europe/Berlin"
func NewParser(timezone string, grammar Grammar) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	if grammar == nil {
		grammar = NewWhenGrammar()
	}
	return &Parser{grammar: grammar, location: loc, now: time.Now}, nil
}

// WithClock overrides the reference clock. Intended for tests.
func (p *Parser) WithClock(now func() time.Time) *Parser {
	p.now = now
	return p
}

// keywordRule pairs a fallback keyword with its date offset.
type keywordRule struct {
	keyword string
	apply   func(time.Time) time.Time
}

// keywordTable is searched in declaration order: the first entry found
// anywhere in the text wins, even when another entry occurs earlier in the
// text. Note "tom" precedes "tomorrow", so the short form shadows it.
var keywordTable = []keywordRule{
	{"today", func(t time.Time) time.Time { return t }},
	{"tom", func(t time.Time) time.Time { return t.AddDate(0, 0, 1) }},
	{"tomorrow", func(t time.Time) time.Time { return t.AddDate(0, 0, 1) }},
	{"next week", func(t time.Time) time.Time { return t.AddDate(0, 0, 7) }},
	{"next month", func(t time.Time) time.Time { return t.AddDate(0, 1, 0) }},
	{"next year", func(t time.Time) time.Time { return t.AddDate(1, 0, 0) }},
}

// Parse scans text for a date/time phrase. The returned span always indexes
// the original text, never a normalized copy.
func (p *Parser) Parse(text string) Result {
	if text == "" {
		return NoMatch()
	}

	base := p.now().In(p.location)

	if m, ok := p.grammar.Parse(text, base); ok {
		end := m.Index + len(m.Text)
		if m.Index >= 0 && end <= len(text) && text[m.Index:end] == m.Text {
			return Result{
				Date:           m.Time,
				RecognizedText: m.Text,
				Start:          m.Index,
				End:            end,
			}
		}
		// Grammar reported a span that does not line up with the input;
		// fall through to the keyword table.
	}

	lower := asciiLower(text)
	for _, rule := range keywordTable {
		idx := strings.Index(lower, rule.keyword)
		if idx == -1 {
			continue
		}
		end := idx + len(rule.keyword)
		return Result{
			Date:           rule.apply(base),
			RecognizedText: text[idx:end],
			Start:          idx,
			End:            end,
		}
	}

	return NoMatch()
}

// asciiLower folds only 'A'..'Z'. Folding is length-preserving by
// construction, so keyword offsets found in the lowered copy always index
// the original text, even for non-ASCII input.
func asciiLower(s string) string {
	b := []byte(s)
	for i := 0; i < len(b); i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
